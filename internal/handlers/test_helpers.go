package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/credsink/credsink/internal/models"
	"github.com/credsink/credsink/internal/services"
	pkghttp "github.com/credsink/credsink/pkg/http"
	"github.com/stretchr/testify/assert"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertFailureResponse checks that response is a failure envelope with the expected message
func AssertFailureResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode failure response")
	assert.False(t, resp.Success, "Failure response should have success=false")
	assert.Equal(t, expectedMessage, resp.Message, "Failure message mismatch")
}

// MockCaptureService implements CaptureServiceInterface for testing
type MockCaptureService struct {
	SubmitFunc        func(ctx context.Context, email, password string, client services.ClientContext) (*services.SubmitAck, error)
	ListAttemptsFunc  func(ctx context.Context) ([]models.RedactedLoginAttempt, error)
	PurgeAttemptsFunc func(ctx context.Context) (int64, error)
}

func (m *MockCaptureService) Submit(ctx context.Context, email, password string, client services.ClientContext) (*services.SubmitAck, error) {
	if m.SubmitFunc == nil {
		return nil, models.ErrStoreUnavailable
	}
	return m.SubmitFunc(ctx, email, password, client)
}

func (m *MockCaptureService) ListAttempts(ctx context.Context) ([]models.RedactedLoginAttempt, error) {
	if m.ListAttemptsFunc == nil {
		return []models.RedactedLoginAttempt{}, nil
	}
	return m.ListAttemptsFunc(ctx)
}

func (m *MockCaptureService) PurgeAttempts(ctx context.Context) (int64, error) {
	if m.PurgeAttemptsFunc == nil {
		return 0, nil
	}
	return m.PurgeAttemptsFunc(ctx)
}

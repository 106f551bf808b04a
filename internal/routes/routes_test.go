package routes_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/credsink/credsink/internal/handlers"
	"github.com/credsink/credsink/internal/middleware"
	"github.com/credsink/credsink/internal/routes"
	"github.com/credsink/credsink/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newRouter(service handlers.CaptureServiceInterface) chi.Router {
	router := chi.NewRouter()
	handler := handlers.NewCaptureHandler(service, nil)
	routes.RegisterRoutes(router, handler, middleware.RateLimitConfig{}, "")
	return router
}

func TestRegisterRoutes_Endpoints(t *testing.T) {
	mockService := &handlers.MockCaptureService{
		SubmitFunc: func(ctx context.Context, email, password string, client services.ClientContext) (*services.SubmitAck, error) {
			return &services.SubmitAck{ID: "id-1", Email: email, Timestamp: time.Now()}, nil
		},
	}
	router := newRouter(mockService)

	t.Run("POST /api/login", func(t *testing.T) {
		req := handlers.NewTestRequest(t, "POST", "/api/login", handlers.LoginRequest{
			Email:    "a@x.com",
			Password: "secret1",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("GET /api/login-attempts", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/login-attempts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("DELETE /api/login-attempts", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/login-attempts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/unknown", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, 404, w.Code)
	})
}

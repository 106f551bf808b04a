//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/credsink/credsink/internal/handlers"
	middlewareCustom "github.com/credsink/credsink/internal/middleware"
	"github.com/credsink/credsink/internal/routes"
	"github.com/credsink/credsink/internal/services"
	pkghttp "github.com/credsink/credsink/pkg/http"
)

// TestServer wraps httptest.Server with the full middleware and routing stack
// wired the same way cmd/api/main.go does it.
type TestServer struct {
	Server *httptest.Server
	DB     *TestDB
}

// NewTestServer builds a complete HTTP server backed by the test database
func NewTestServer(db *TestDB, hashCost, listLimit int) *TestServer {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	attemptRepo := db.NewAttemptRepository()
	captureService := services.NewCaptureService(attemptRepo, services.CaptureConfig{
		HashCost:  hashCost,
		ListLimit: listLimit,
	}, logger)
	captureHandler := handlers.NewCaptureHandler(captureService, &pkghttp.IPConfig{})

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: "development"}))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(chiMiddleware.Recoverer)

	routes.RegisterRoutes(router, captureHandler, middlewareCustom.RateLimitConfig{}, "")

	return &TestServer{
		Server: httptest.NewServer(router),
		DB:     db,
	}
}

// Close shuts down the test server
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// PostJSON sends a JSON POST request to the test server
func (ts *TestServer) PostJSON(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.Server.URL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return ts.do(req)
}

// Get sends a GET request to the test server
func (ts *TestServer) Get(ctx context.Context, path string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.Server.URL+path, nil)
	if err != nil {
		return nil, nil, err
	}
	return ts.do(req)
}

// Delete sends a DELETE request to the test server
func (ts *TestServer) Delete(ctx context.Context, path string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, ts.Server.URL+path, nil)
	if err != nil {
		return nil, nil, err
	}
	return ts.do(req)
}

func (ts *TestServer) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := ts.Server.Client().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp, body, nil
}

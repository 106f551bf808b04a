package routes

import (
	"net/http"
	"os"

	"github.com/credsink/credsink/internal/handlers"
	"github.com/credsink/credsink/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all application routes. None of the API endpoints
// are gated by authentication: the open contract is a deliberate property of
// this capture tool.
func RegisterRoutes(
	router chi.Router,
	captureHandler *handlers.CaptureHandler,
	rateLimitConfig middleware.RateLimitConfig,
	staticDir string,
) {
	router.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimitByIP(rateLimitConfig)).Post("/login", captureHandler.Login)
		r.Get("/login-attempts", captureHandler.ListAttempts)
		r.Delete("/login-attempts", captureHandler.PurgeAttempts)
	})

	// Static hosting of the capture front-end, when the directory exists.
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			fs := http.FileServer(http.Dir(staticDir))
			router.Handle("/*", fs)
		}
	}
}

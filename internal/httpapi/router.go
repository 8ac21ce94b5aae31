// Package httpapi exposes the session and user use cases over HTTP.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/nlohrer/practice-tracker/internal/service"
)

// NewRouter wires HTTP routes to the core services.
func NewRouter(sessions service.SessionService, users service.UserService, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(middleware.Recoverer)

	sessionHandler := NewSessionHandler(sessions)
	userHandler := NewUserHandler(users)

	r.Route("/api", func(api chi.Router) {
		sessionHandler.RegisterRoutes(api)
		userHandler.RegisterRoutes(api)
	})

	return r
}

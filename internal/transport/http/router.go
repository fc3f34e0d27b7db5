package http

import (
	"net/http"

	"riftgate-rest-api/internal/transport/http/handler"
	"riftgate-rest-api/internal/transport/http/middleware"
	"riftgate-rest-api/internal/transport/http/response"
	"riftgate-rest-api/pkg/apierror"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// protectedPrefix is the route subtree behind the authentication gate.
// Everything else is public.
const protectedPrefix = "/api/v1/users/"

// NewRouter creates and configures the HTTP router.
func NewRouter(h *handler.Handler, gameDataHandler *handler.GameDataHandler, prefsHandler *handler.PreferencesHandler, authSecret string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RequireAuth(authSecret, protectedPrefix))

	// Anything outside the dispatch table gets the same envelope, method
	// mismatches on known paths included. Set before Route so the
	// subrouter inherits both handlers.
	notFound := func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, apierror.NotFound("Endpoint not found"))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Service info (no auth required)
		r.Get("/", h.Root)

		// Game data pass-through endpoints
		r.Post("/account/fetch", gameDataHandler.FetchAccount)
		r.Get("/{game}/match/{matchId}", gameDataHandler.Match)
		r.Get("/{game}/matches/by-puuid/{puuid}", gameDataHandler.MatchesByPUUID)

		// User preferences endpoints (guarded by RequireAuth)
		r.Put("/users/{userId}/prefs", prefsHandler.UpdatePreferences)
		r.Get("/users/{userId}/prefs", prefsHandler.GetPreferences)
	})

	return r
}

package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"riftgate-rest-api/internal/transport/http/response"
	"riftgate-rest-api/pkg/apierror"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// ContextKeyAuthenticated marks a request that passed the auth gate.
	ContextKeyAuthenticated ContextKey = "authenticated"
)

// RequireAuth guards the protected path prefix with the service's static
// secret. Requests outside the prefix pass through untouched. Credentials
// arrive either as "Authorization: Bearer <token>" or in the X-API-Key
// header; the bearer form wins when both are present.
func RequireAuth(secret, protectedPrefix string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, protectedPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := extractCredential(r)
			if token == "" {
				response.Error(w, apierror.Unauthorized("Authentication required. Use Authorization: Bearer <token> or X-API-Key header."))
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), secretBytes) != 1 {
				response.Error(w, apierror.Unauthorized("Invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAuthenticated, true)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractCredential pulls the caller's credential from the request. An empty
// bearer token falls through to the X-API-Key header; an empty result means
// no credential was presented at all.
func extractCredential(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		if token := strings.TrimPrefix(auth, "Bearer "); token != "" {
			return token
		}
	}
	return r.Header.Get("X-API-Key")
}

// Authenticated reports whether the request passed the authentication gate.
func Authenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(ContextKeyAuthenticated).(bool)
	return ok
}

package handler

import (
	"context"
	"net/http"

	"github.com/msomdec/qa-board/internal/domain"
	"github.com/msomdec/qa-board/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the acting user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring an acting
// user. It resolves HTTP Basic credentials against the registry and
// injects the account into the request context. Returns 401 for missing
// or wrong credentials. No token is involved; the credential is checked
// on every request.
func RequireAuth(registry *service.RegistryService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="qa-board"`)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := registry.Authenticate(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="qa-board"`)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route on the admin role. Permanent deletion
// carries no authorization check inside the services; this middleware
// is the calling layer enforcing that policy.
func RequireAdmin(registry *service.RegistryService, next http.Handler) http.Handler {
	return RequireAuth(registry, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil || !user.IsAdmin() {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// SecurityHeaders sets conservative browser security headers on every
// response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

package httpapi

import (
	"net/http"
	"strings"

	"github.com/wanderplan/travel-planner-api/internal/app/authn"
	"github.com/wanderplan/travel-planner-api/internal/domain"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> on the routes it
// wraps. On success the verified identity is stored in request context.
func NewAuthMiddleware(auth *authn.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := auth.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid bearer token", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// NewDevAuthMiddleware is a local/dev-only auth shim.
//
// It accepts an explicit subject via X-Debug-Subject and stores it in request
// context; absent that it falls back to defaultSubject. This is intended for
// local Docker workflows where standing up token infrastructure is overkill.
// Do NOT use this in production deployments.
func NewDevAuthMiddleware(defaultSubject string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub := strings.TrimSpace(r.Header.Get("X-Debug-Subject"))
			if sub == "" {
				sub = strings.TrimSpace(defaultSubject)
			}
			if sub == "" {
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing subject (set X-Debug-Subject)", nil)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), domain.Identity(sub))))
		})
	}
}

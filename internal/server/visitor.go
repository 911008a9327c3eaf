package server

import (
	"context"
	"net/http"
	"time"

	"github.com/angeloflores/folio/internal/preferences"
)

// VisitorCookie identifies a browser across page loads.
const VisitorCookie = "folio_visitor"

const visitorMaxAge = 365 * 24 * time.Hour

type visitorKey struct{}

// VisitorID returns the visitor id stored in ctx by VisitorMiddleware.
func VisitorID(ctx context.Context) string {
	if id, ok := ctx.Value(visitorKey{}).(string); ok {
		return id
	}
	return ""
}

// VisitorMiddleware assigns each browser a stable visitor id. A missing or
// malformed cookie is replaced with a fresh id.
func VisitorMiddleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(VisitorCookie); err == nil && preferences.ValidVisitorID(c.Value) {
				id = c.Value
			} else {
				id = preferences.NewVisitorID()
				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(visitorMaxAge.Seconds()),
					SameSite: http.SameSiteLaxMode,
					Secure:   secure || r.TLS != nil,
					HttpOnly: true,
				})
			}
			ctx := context.WithValue(r.Context(), visitorKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

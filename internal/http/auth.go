package http

import (
	"net/http"
	"strings"

	"github.com/aaustin-1965/app-ip-address/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.Authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			a.writeUnauthorized(w, r, "missing token")
			return
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")

		principal, err := a.Authenticator.Authenticate(r.Context(), tokenStr)
		if err != nil {
			a.Logger.DebugContext(r.Context(), "rejected bearer token", "err", err.Error())
			a.writeUnauthorized(w, r, "invalid token")
			return
		}

		ctx := auth.WithPrincipal(r.Context(), principal)
		a.Logger.DebugContext(ctx, "request authenticated", "subject", auth.Subject(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) writeUnauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	if err := encode(w, r, http.StatusUnauthorized, ErrorResponse{Error: msg}); err != nil {
		a.Logger.ErrorContext(r.Context(), "cant respond to client", "err", err.Error())
	}
}

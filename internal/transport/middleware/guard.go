package middleware

import (
	"log/slog"
	"net/http"

	"github.com/harisfebriyan12/kehadiran1/internal/auth"
	"github.com/harisfebriyan12/kehadiran1/internal/routes"
)

// PageGuard recomputes the caller's auth state on every page navigation and
// enforces the route classification: unauthenticated callers land on the
// login page, employees are bounced off admin pages, and signed-in callers
// skip the public pages. The decision is a pure function of state and path,
// so a stale verdict from an earlier request can never stick.
func PageGuard(classification routes.Classification, authSvc auth.ServiceAPI, roles auth.RoleResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := stateFor(r, authSvc, roles, logger)

			decision := classification.Decide(state, r.URL.Path)
			if decision.RedirectTo != "" && decision.RedirectTo != r.URL.Path {
				logger.Info("route guard redirect",
					"path", r.URL.Path,
					"state", state.String(),
					"redirect_to", decision.RedirectTo)
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// stateFor derives the auth state for one request. Server-side the state is
// always known synchronously, so the loading state never appears here.
func stateFor(r *http.Request, authSvc auth.ServiceAPI, roles auth.RoleResolver, logger *slog.Logger) routes.AuthState {
	token := tokenFrom(r)
	if token == "" {
		return routes.StateFor(false, "")
	}

	claims, err := authSvc.ValidateAccessToken(r.Context(), token)
	if err != nil {
		logger.Debug("page guard: token rejected", "error", err)
		return routes.StateFor(false, "")
	}

	return routes.StateFor(true, roles.ResolveRole(r.Context(), claims.UserID))
}

func tokenFrom(r *http.Request) string {
	if cookie, err := r.Cookie(auth.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := r.Header.Get("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}

package middleware

import (
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
)

// RequireArea gates a route group on a feature-area permission. Admins pass
// unconditionally; sub-admins pass only when the area is in their granted
// set.
func RequireArea(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := ActorFromContext(r)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.CanAccess(actor, permission) {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin restricts a route group to full administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package http

import (
	"net/http"

	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/utils"
	"github.com/complyra/claimshield/models"
)

// adminOnly is an HTTP middleware that restricts a route to admin sessions.
// It must run after [Handler.auth], which puts the token's role into the
// request context. Non-admin sessions are rejected with HTTP 403 Forbidden.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			log.Error().Str("role", role).Msg("admin route requested without admin role")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

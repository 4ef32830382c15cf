package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/appeals/analyze", h.analyze)
		r.Post("/api/claims", h.saveClaim)
		r.Get("/api/claims", h.claimHistory)
		r.Post("/api/claims/export", h.exportLetter)

		// routes requiring the admin role on top of a valid token
		r.Group(func(ar chi.Router) {
			ar.Use(h.adminOnly)

			ar.Get("/api/admin/analytics", h.analytics)
			ar.Get("/api/admin/analytics/export", h.analyticsExport)
		})
	})

	return router
}

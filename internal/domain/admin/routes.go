package admin

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns admin router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	// Auth routes (no auth required)
	r.Post("/auth/login", h.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(h.jwtSvc, h.service))

		// Current admin
		r.Get("/auth/me", h.Me)

		// Admin management
		r.Route("/admins", func(r chi.Router) {
			r.Use(RequirePermission(PermManageAdmins))
			r.Get("/", h.ListAdmins)
			r.Post("/", h.CreateAdmin)
			r.Patch("/{id}", h.UpdateAdmin)
		})

		// Dashboard
		r.With(RequirePermission(PermViewStats)).Get("/stats", h.Stats)

		// User management
		r.Route("/users", func(r chi.Router) {
			r.With(RequirePermission(PermViewUsers)).Get("/", h.ListUsers)
			r.With(RequirePermission(PermBanUsers)).Post("/{id}/ban", h.BanUser)
			r.With(RequirePermission(PermBanUsers)).Post("/{id}/unban", h.UnbanUser)
		})
	})

	return r
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Post("/refresh", h.refresh)

		r.With(h.auth).Get("/me", h.me)
	})

	router.Route("/employees", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.listEmployees)
		r.Post("/", h.createEmployee)
		r.Get("/statistics", h.employeeStatistics)
		r.Get("/export", h.exportEmployees)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getEmployee)
			r.Put("/", h.updateEmployee)
			r.Delete("/", h.deleteEmployee)
			r.Post("/avatar", h.uploadAvatar)
			r.Get("/avatar", h.getAvatar)
		})
	})

	return router
}

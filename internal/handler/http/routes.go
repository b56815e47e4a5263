package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route tree.
//
// POST /api/users and POST /api/auth/login are the only public API routes;
// everything else requires a valid bearer token. Item routes load the target
// record in a context middleware so that handlers never deal with missing
// records themselves.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.registerUser)
		r.Post("/api/auth/login", h.login)
	})

	// protected routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users", h.getAllUsers)
		r.Route("/api/users/{userid}", func(r chi.Router) {
			r.Use(h.userCtx)
			r.Get("/", h.getUser)
			r.Patch("/", h.updateUser)
			r.Delete("/", h.deleteUser)
		})

		r.Route("/api/households", func(r chi.Router) {
			r.Get("/", h.getAllHouseholds)
			r.Post("/", h.createHousehold)
			r.Route("/{householdid}", func(r chi.Router) {
				r.Use(h.householdCtx)
				r.Get("/", h.getHousehold)
				r.Patch("/", h.updateHousehold)
				r.Delete("/", h.deleteHousehold)
				r.Get("/users", h.getHouseholdUsers)
				r.Get("/chores", h.getHouseholdChores)
			})
		})

		r.Route("/api/chores", func(r chi.Router) {
			r.Get("/", h.getAllChores)
			r.Post("/", h.createChore)
			r.Route("/{choreid}", func(r chi.Router) {
				r.Use(h.choreCtx)
				r.Get("/", h.getChore)
				r.Patch("/", h.updateChore)
				r.Delete("/", h.deleteChore)
			})
		})
	})

	return router
}

package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/api/plan/active", h.activePlan)
	router.Post("/api/workouts/last", h.lastWorkout)
	router.Post("/api/workouts/daily", h.upsertDailyRecord)

	return router
}

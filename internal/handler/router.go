package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BuzzLyutic/task-registry/pkg/respond"
)

// NewRouter mounts the task routes and /health behind the given middlewares.
func NewRouter(h *TaskHandler, middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/priority/{level}", h.ListByPriority)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

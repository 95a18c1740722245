package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-store-api/internal/handler"
	"github.com/BuzzLyutic/task-store-api/internal/repo"
	"github.com/BuzzLyutic/task-store-api/internal/service"
)

// AllowOrigin пропускает локальный фронтенд (http://localhost*) и origin "null".
func AllowOrigin(r *http.Request, origin string) bool {
	return origin == "null" || strings.HasPrefix(origin, "http://localhost")
}

func NewRouter(store *repo.Store, logger *zap.Logger) http.Handler {
	taskHandler := handler.NewTaskHandler(service.NewTaskService(store.Tasks()), logger)
	userHandler := handler.NewUserHandler(service.NewUserService(store.Users()), logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.AccessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  AllowOrigin,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Put("/", taskHandler.Update)
		r.Get("/{id}", taskHandler.Get)
		r.Delete("/{id}", taskHandler.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	return r
}

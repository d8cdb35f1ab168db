package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *HTTPServer) newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handleRoot)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Get("/me", s.handleMe)
		r.Get("/events", s.handleListEvents)
		r.Get("/detections", s.handleListDetections)
		r.Post("/detections", s.handleBulkDetections)
		r.Get("/devices", s.handleListDevices)
		r.Get("/observations", s.handleListObservations)
		r.Post("/observations", s.handleCreateObservation)
		r.Get("/questionnaire-responses", s.handleListQuestionnaires)
		r.Post("/questionnaire-responses", s.handleCreateQuestionnaire)
	})

	return r
}

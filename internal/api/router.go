package api

import (
	"net/http"

	"github.com/dom/garden-manager/internal/api/handlers"
	"github.com/dom/garden-manager/internal/api/middleware"
	"github.com/dom/garden-manager/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	gardenHandler := handlers.NewGardenHandler(services.Plan, services.Garden, services.Diagnosis)
	journalHandler := handlers.NewJournalHandler(services.Journal)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/profile", authHandler.Profile)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/garden", func(r chi.Router) {
				r.Post("/plan", gardenHandler.GeneratePlan)
				r.Get("/profiles", gardenHandler.ListProfiles)
				r.Get("/profiles/{id}", gardenHandler.GetProfile)
				r.Post("/diagnose", gardenHandler.Diagnose)
				r.Get("/diagnoses", gardenHandler.ListDiagnoses)
			})

			r.Route("/journal", func(r chi.Router) {
				r.Post("/", journalHandler.Create)
				r.Get("/garden/{gardenId}", journalHandler.ListByGarden)
				r.Get("/{id}", journalHandler.Get)
				r.Put("/{id}", journalHandler.Update)
				r.Delete("/{id}", journalHandler.Delete)
			})
		})
	})

	return r
}

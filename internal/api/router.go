package api

import (
	"net/http"

	"github.com/adit/movie-catalog-api/internal/api/handlers"
	"github.com/adit/movie-catalog-api/internal/api/middleware"
	"github.com/adit/movie-catalog-api/internal/config"
	"github.com/adit/movie-catalog-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Token)
	movieHandler := handlers.NewMovieHandler(services.Movie)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Catalog routes behind the access gate and a per-client throttle
		r.Route("/movies", func(r chi.Router) {
			r.Use(middleware.Auth(services.Token))
			r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitEnabled))

			r.Get("/", movieHandler.List)
			r.Post("/", movieHandler.Create)
			r.Get("/{id}", movieHandler.Get)
			r.Put("/{id}", movieHandler.Update)
			r.Delete("/{id}", movieHandler.Delete)
		})
	})

	return r
}

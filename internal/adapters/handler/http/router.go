package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vncsmyrnk/careerguide/docs"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Profile *ProfileHandler
	Message *MessageHandler
	Health  *HealthHandler
}

// NewHandler mounts every route. Swagger UI is served only when swaggerHost is set.
func NewHandler(h Handlers, auth ports.AuthService, logger *zap.Logger, swaggerHost string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Metrics)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health.Check)
	r.Handle("/metrics", promhttp.Handler())

	if swaggerHost != "" {
		docs.SwaggerInfo.Host = swaggerHost
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/users", func(r chi.Router) {
		r.Post("/auth", h.Auth.Login)
		r.Post("/new", h.User.Create)

		r.Group(func(r chi.Router) {
			r.Use(Authenticate(auth))
			r.Get("/", h.User.List)
			r.Get("/me", h.User.GetMe)
			r.Get("/{user_id}", h.User.Get)
			r.Patch("/{user_id}", h.User.Update)
			r.Delete("/{user_id}", h.User.Delete)
		})
	})

	r.Route("/profiles", func(r chi.Router) {
		r.Use(Authenticate(auth))
		r.Post("/", h.Profile.Create)
		r.Get("/me", h.Profile.GetMe)
		r.Get("/{user_id}", h.Profile.Get)
		r.Patch("/{user_id}", h.Profile.Update)
		r.Delete("/{user_id}", h.Profile.Delete)
	})

	r.Route("/messages", func(r chi.Router) {
		r.Use(Authenticate(auth))
		r.Post("/career-paths", h.Message.Generate(domain.MessageTypeCareerPath))
		r.Post("/job-insights", h.Message.Generate(domain.MessageTypeJobInsight))
		r.Post("/roadmaps", h.Message.Generate(domain.MessageTypeRoadmap))
		r.Get("/", h.Message.List)
		r.Get("/me", h.Message.ListMine)
		r.Get("/{message_id}", h.Message.Get)
		r.Delete("/{message_id}", h.Message.Delete)
	})

	return r
}

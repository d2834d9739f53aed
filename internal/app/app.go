// Package app wires repositories, services and HTTP handlers together.
package app

import (
	"database/sql"
	"fmt"
	"net/http"

	handler "github.com/vncsmyrnk/careerguide/internal/adapters/handler/http"
	"github.com/vncsmyrnk/careerguide/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/careerguide/internal/config"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"github.com/vncsmyrnk/careerguide/internal/core/services"
	"go.uber.org/zap"
)

type App struct {
	Handler http.Handler
}

// New builds the HTTP application on top of an open database pool and a completion provider.
func New(cfg *config.Config, db *sql.DB, provider ports.CompletionProvider, logger *zap.Logger) (*App, error) {
	tokens, err := services.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	hasher := services.NewBcryptHasher(cfg.Password.HashCost)

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	messageRepo := postgres.NewMessageRepository(db)

	authService, err := services.NewAuthService(userRepo, hasher, tokens, logger)
	if err != nil {
		return nil, err
	}
	userService := services.NewUserService(userRepo, hasher)
	profileService := services.NewProfileService(profileRepo)
	guidanceService := services.NewGuidanceService(profileRepo, messageRepo, provider, cfg.OpenAI.GenerationTimeout, logger)

	router := handler.NewHandler(handler.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Profile: handler.NewProfileHandler(profileService),
		Message: handler.NewMessageHandler(guidanceService),
		Health:  handler.NewHealthHandler(db),
	}, authService, logger, cfg.HTTP.SwaggerHost)

	return &App{
		Handler: router,
	}, nil
}

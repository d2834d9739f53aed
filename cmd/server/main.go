package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/vncsmyrnk/careerguide/internal/adapters/completion/openai"
	"github.com/vncsmyrnk/careerguide/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/careerguide/internal/app"
	"github.com/vncsmyrnk/careerguide/internal/config"
	"github.com/vncsmyrnk/careerguide/internal/logger"
	"go.uber.org/zap"
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

// @title Career Guide API
// @version 1.0
// @description Career guidance generated from user profiles by an LLM completion provider.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog := logger.New(cfg.LogLevel, cfg.IsProduction())
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(cfg.Postgres.DSN(), postgres.Up); err != nil {
			zlog.Fatal("failed to apply migrations", zap.Error(err))
		}
		zlog.Info("migrations applied")
	}

	db, err := postgres.Open(ctx, cfg.Postgres.DSN(), postgres.PoolConfig{
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	provider := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
	})

	application, err := app.New(cfg, db, provider, zlog)
	if err != nil {
		zlog.Fatal("failed to build application", zap.Error(err))
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      application.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("shutdown did not complete", zap.Error(err))
	}
}

// Package app assembles the API server from its parts and owns its
// lifecycle.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/personalvault/synapse-api/internal/auth"
	"github.com/personalvault/synapse-api/internal/config"
	"github.com/personalvault/synapse-api/internal/handler"
	"github.com/personalvault/synapse-api/internal/llm"
	"github.com/personalvault/synapse-api/internal/repository"
	"github.com/personalvault/synapse-api/internal/usecase"
	"github.com/personalvault/synapse-api/internal/validation"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Run starts the API server and blocks until shutdown.
func Run() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	if err := client.Ping(startupCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(startupCtx, &logger, db)
	bookmarkRepo := repository.NewBookmarkMongoRepository(startupCtx, &logger, db)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenIssuer, cfg.TokenTTL)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	bookmarkUsecase := usecase.NewBookmarkUsecase(bookmarkRepo)
	aiUsecase := usecase.NewAIUsecase(bookmarkRepo, newLLMClient(cfg))

	validator, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize validator")
	}

	router := handler.NewRouter(
		handler.NewAuthHandler(authUsecase, validator, &logger),
		handler.NewBookmarkHandler(bookmarkUsecase, validator, &logger),
		handler.NewAIHandler(aiUsecase, validator, &logger),
		authUsecase,
		&logger,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("ai_provider", cfg.AIProvider).Msg("server listening")
		serverErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case <-stopCtx.Done():
		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}

	disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelDisconnect()

	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Error().Err(err).Msg("failed to disconnect from mongodb")
	}
}

// newLLMClient selects the language-model backend from configuration. The
// choice is made once at startup.
func newLLMClient(cfg *config.Config) llm.Client {
	if cfg.AIProvider == config.ProviderClaude {
		return llm.NewClaudeClient(cfg.ClaudeAPIURL, cfg.ClaudeAPIKey, cfg.ClaudeModel)
	}

	return llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
}

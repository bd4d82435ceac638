package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marvelgate/marvelgate/internal/app"
	"github.com/marvelgate/marvelgate/internal/auth"
	"github.com/marvelgate/marvelgate/internal/interactions"
	"github.com/marvelgate/marvelgate/internal/marvel"
	"github.com/marvelgate/marvelgate/internal/observability"
	"github.com/marvelgate/marvelgate/internal/platform/cache"
	"github.com/marvelgate/marvelgate/internal/platform/db"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, relay cache disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	tokenService, err := auth.NewTokenService(cfg.JWTSecretKey, cfg.JWTExpirationMinutes)
	if err != nil {
		logger.Error("token service", slog.Any("error", err))
		os.Exit(1)
	}
	signer, err := marvel.NewSigner(cfg.MarvelPublicKey, cfg.MarvelPrivateKey)
	if err != nil {
		logger.Error("upstream signer", slog.Any("error", err))
		os.Exit(1)
	}

	authRepo := auth.NewRepository(dbpool)
	authService := auth.NewService(authRepo, tokenService)
	authHandler := auth.NewHandler(logger, authService)
	gate := auth.Authenticator(tokenService, authRepo, logger)

	interactionRepo := interactions.NewRepository(dbpool)
	interactionsHandler := interactions.NewHandler(logger, interactionRepo)
	auditRecorder := interactions.Recorder(interactionRepo, authService, logger)

	marvelClient := marvel.NewClient(cfg.MarvelBaseURL, signer, &http.Client{Timeout: cfg.AppRequestTimeout})
	marvelCache := marvel.NewCache(redisClient, cfg.MarvelCacheTTL)
	marvelHandler := marvel.NewHandler(
		logger,
		marvel.NewCharacterRepository(marvelClient, marvelCache),
		marvel.NewComicRepository(marvelClient, marvelCache),
	)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		AuthHandler:         authHandler,
		InteractionsHandler: interactionsHandler,
		MarvelHandler:       marvelHandler,
		Gate:                gate,
		AuditRecorder:       auditRecorder,
		Metrics:             metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

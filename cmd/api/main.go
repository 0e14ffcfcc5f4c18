package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/saucepan-labs/recipebook/backend/config"
	"github.com/saucepan-labs/recipebook/backend/internal/database"
	"github.com/saucepan-labs/recipebook/backend/internal/logging"
	"github.com/saucepan-labs/recipebook/backend/internal/middleware"
	"github.com/saucepan-labs/recipebook/backend/internal/router"
	"github.com/saucepan-labs/recipebook/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	var revoker service.TokenRevoker
	var loginLimiter *middleware.RateLimiter
	if redisClient != nil {
		revoker = service.NewRedisTokenRevoker(redisClient)
		loginLimiter = middleware.NewRateLimiter(redisClient, router.DefaultLoginLimit())
	} else {
		logger.Warn("redis not configured, using in-process session revocation")
		revoker = service.NewMemoryTokenRevoker()
	}

	media, err := newMediaStore(cfg, logger)
	if err != nil {
		logger.Fatal("failed to set up media storage", zap.Error(err))
	}

	engine := router.Setup(router.Deps{
		Config:       cfg,
		Logger:       logger,
		Auth:         service.NewAuthService(db, cfg.JWTSecret, revoker),
		Recipes:      service.NewRecipeService(db),
		Media:        media,
		LoginLimiter: loginLimiter,
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: engine,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Fatal("server error", zap.Error(err))
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newMediaStore(cfg *config.Config, logger *zap.Logger) (service.MediaStore, error) {
	if cfg.S3Bucket != "" {
		s3Cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("using S3 media storage", zap.String("bucket", cfg.S3Bucket))
		return service.NewS3MediaStore(s3Cfg), nil
	}
	return service.NewLocalMediaStore(cfg.MediaRoot)
}

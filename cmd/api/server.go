package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"sanad-backend/internal/config"
	pagehandler "sanad-backend/internal/domains/page/handler"
	pagerepo "sanad-backend/internal/domains/page/repository"
	pageservice "sanad-backend/internal/domains/page/service"
	partnerhandler "sanad-backend/internal/domains/partner/handler"
	partnerrepo "sanad-backend/internal/domains/partner/repository"
	partnerservice "sanad-backend/internal/domains/partner/service"
	posthandler "sanad-backend/internal/domains/post/handler"
	postrepo "sanad-backend/internal/domains/post/repository"
	postservice "sanad-backend/internal/domains/post/service"
	userhandler "sanad-backend/internal/domains/user/handler"
	userrepo "sanad-backend/internal/domains/user/repository"
	userservice "sanad-backend/internal/domains/user/service"
	"sanad-backend/internal/infrastructure/cache"
	"sanad-backend/internal/infrastructure/database"
	"sanad-backend/pkg/jwt"
)

// application holds the wired handlers and the shared infrastructure
// the router and health endpoint need.
type application struct {
	cfg    *config.Config
	db     *database.PostgresDB
	redis  *cache.RedisClient
	tokens *jwt.Manager

	pages    *pagehandler.PageHandler
	posts    *posthandler.PostHandler
	partners *partnerhandler.PartnerHandler
	users    *userhandler.UserHandler
}

func Serve(cfg *config.Config) error {
	ctx := context.Background()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	redis := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			log.Error().Err(err).Msg("close redis")
		}
	}()

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	app := &application{
		cfg:    cfg,
		db:     db,
		redis:  redis,
		tokens: tokens,

		pages:    pagehandler.NewPageHandler(pageservice.NewPageService(pagerepo.NewPageRepository(db.Pool))),
		posts:    posthandler.NewPostHandler(postservice.NewPostService(postrepo.NewPostRepository(db.Pool))),
		partners: partnerhandler.NewPartnerHandler(partnerservice.NewPartnerService(partnerrepo.NewPartnerRepository(db.Pool))),
		users:    userhandler.NewUserHandler(userservice.NewUserService(userrepo.NewUserRepository(db.Pool), tokens, redis)),
	}

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.App.Port),
		Handler:        SetupRouter(app),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.App.Port).
			Str("environment", cfg.App.Environment).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server exited gracefully")
	return nil
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JpHds/client-admin-api/internal/api"
	"github.com/JpHds/client-admin-api/internal/core/auth"
	"github.com/JpHds/client-admin-api/internal/core/service"
	"github.com/JpHds/client-admin-api/internal/infrastructure/config"
	mongodb "github.com/JpHds/client-admin-api/internal/infrastructure/db/mongo"
	redisdb "github.com/JpHds/client-admin-api/internal/infrastructure/db/redis"
	"github.com/JpHds/client-admin-api/pkg/logger"

	_ "github.com/JpHds/client-admin-api/docs" // swagger spec
)

// @title        Client Admin API
// @version      1.0
// @description  Client roster management with admin/super-admin accounts and JWT authentication.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in      header
// @name    Authorization
// @description Enter your JWT with the `Bearer ` prefix, e.g. "Bearer eyJhbGci..."

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	adminRepo := mongodb.NewAdminRepository(db)
	superAdminRepo := mongodb.NewSuperAdminRepository(db)
	clientRepo := mongodb.NewClientRepository(db)

	for _, idx := range []interface {
		EnsureIndexes(context.Context) error
	}{adminRepo, superAdminRepo, clientRepo} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Authentication core ---
	codec, err := auth.NewCodec(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid signing secret")
	}
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Auth.MaxLoginFailures, 15*time.Minute)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute

	authService := service.NewAuthService(adminRepo, superAdminRepo, hasher, codec, throttle, tokenTTL, log)
	adminService := service.NewAdminService(adminRepo, log)
	clientService := service.NewClientService(clientRepo, log)

	// --- Super-admin bootstrap ---
	if cfg.SuperAdmin.Username != "" {
		if err := authService.EnsureSuperAdmin(ctx, cfg.SuperAdmin.Username, cfg.SuperAdmin.Email, cfg.SuperAdmin.Password); err != nil {
			log.Fatal().Err(err).Msg("super admin bootstrap failed")
		}
	} else {
		log.Warn().Msg("SUPER_ADMIN_USERNAME not set, skipping bootstrap")
	}

	// --- HTTP server ---
	e := api.NewRouter(api.Services{
		Auth:   authService,
		Admin:  adminService,
		Client: clientService,
	}, codec, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}

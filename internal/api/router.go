package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/JpHds/client-admin-api/internal/api/handler"
	"github.com/JpHds/client-admin-api/internal/api/middleware"
	"github.com/JpHds/client-admin-api/internal/core/auth"
	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
	"github.com/JpHds/client-admin-api/internal/infrastructure/http/handlers"
)

// Services bundles the use-case implementations the router exposes.
type Services struct {
	Auth   ports.AuthService
	Admin  ports.AdminService
	Client ports.ClientService
}

// NewRouter builds and returns the Echo instance with all routes registered.
// db and rdb are only consumed by the readiness probe; either may be nil in
// tests, which then skip registering /health/ready.
func NewRouter(svcs Services, codec *auth.Codec, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clientadmin"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	adminHandler := handler.NewAdminHandler(svcs.Admin)
	clientHandler := handler.NewClientHandler(svcs.Client)
	authenticated := middleware.Auth(codec)

	// --- Auth routes ---
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, authenticated, middleware.RBAC())

	// --- Admin management (super-admin only) ---
	adminGroup := e.Group("/v1/admins", authenticated, middleware.RBAC(domain.RoleSuperAdmin))
	adminGroup.POST("", authHandler.RegisterAdmin)
	adminGroup.GET("", adminHandler.List)
	adminGroup.GET("/:id", adminHandler.Get)
	adminGroup.PUT("/:id", adminHandler.Update)
	adminGroup.DELETE("/:id", adminHandler.Delete)

	// --- Client roster ---
	clientGroup := e.Group("/v1/clients", authenticated)
	readRoles := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)
	writeRoles := middleware.RBAC(domain.RoleSuperAdmin)
	clientGroup.POST("", clientHandler.Create, writeRoles)
	clientGroup.GET("", clientHandler.List, readRoles)
	clientGroup.GET("/:id", clientHandler.Get, readRoles)
	clientGroup.PUT("/:id", clientHandler.Update, writeRoles)
	clientGroup.DELETE("/:id", clientHandler.Delete, writeRoles)

	// --- Operational endpoints (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if db != nil && rdb != nil {
		healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
		e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	}

	return e
}

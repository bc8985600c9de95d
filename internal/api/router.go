package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/authmgr/auth-service/docs"
	"github.com/authmgr/auth-service/internal/api/handler"
	"github.com/authmgr/auth-service/internal/api/middleware"
	"github.com/authmgr/auth-service/internal/core/service"
	"github.com/authmgr/auth-service/internal/core/token"
	"github.com/authmgr/auth-service/internal/crypto"
	"github.com/authmgr/auth-service/internal/infrastructure/config"
	mongodb "github.com/authmgr/auth-service/internal/infrastructure/db/mongo"
	redisdb "github.com/authmgr/auth-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	codec := token.NewCodec([]byte(cfg.JWTSecret), cfg.TokenTTL, cfg.APIVersion)
	userRepo := mongodb.NewUserRepository(db)
	hasher := crypto.NewBcryptHasher(0)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, hasher, codec, limiter)
	userService := service.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(codec)

	// --- Auth routes (unauthenticated) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify", authHandler.Verify)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Profile routes (bearer token required) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/users/me", userHandler.Me)
	v1.PUT("/users/me", userHandler.UpdateMe)
	v1.PATCH("/users/me", userHandler.UpdateMe)
	v1.DELETE("/users/me", userHandler.DeleteMe)
	v1.GET("/protected", userHandler.Protected)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

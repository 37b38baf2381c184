package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/epfafrica/user-service/docs"
	"github.com/epfafrica/user-service/internal/api/handler"
	"github.com/epfafrica/user-service/internal/api/middleware"
	"github.com/epfafrica/user-service/internal/core/domain"
	"github.com/epfafrica/user-service/internal/core/ports"
	"github.com/epfafrica/user-service/internal/core/token"
)

// Deps carries the constructed collaborators the router wires together.
type Deps struct {
	AuthService ports.AuthService
	Users       ports.UserRepository
	Tokens      *token.Provider
	Mongo       *mongo.Database
	Redis       *redis.Client
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	authHandler := handler.NewAuthHandler(d.AuthService)
	userHandler := handler.NewUserHandler(d.Users)
	healthHandler := handler.NewHealthHandler()
	authMiddleware := middleware.Auth(d.Tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/health", healthHandler.ServiceHealth)

	// --- Authenticated user routes ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.GET("/:username", userHandler.GetByUsername, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	readiness := handler.NewReadinessHandler(d.Mongo, d.Redis)
	e.GET("/health", healthHandler.Liveness)    // liveness  – is the process alive?
	e.GET("/health/ready", readiness.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

package router

import (
	"github.com/anonto42/fb-post/backend/internal/handlers"
	"github.com/anonto42/fb-post/backend/internal/middleware"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the routes are wired to
type Dependencies struct {
	Feed      *services.FeedService
	Users     repositories.UserRepository
	Verifier  handlers.TokenVerifier // nil disables Firebase login
	JWTSecret string
	Logger    *zap.Logger
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Verifier, deps.JWTSecret, deps.Logger)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(deps.JWTSecret))

	handlers.NewPostHandler(deps.Feed).RegisterPostRoutes(api)
	handlers.NewCommentHandler(deps.Feed).RegisterCommentRoutes(api)
	handlers.NewReactionHandler(deps.Feed).RegisterReactionRoutes(api)
	handlers.NewAnalyticsHandler(deps.Feed).RegisterAnalyticsRoutes(api)
	handlers.NewUserHandler(deps.Feed).RegisterUserRoutes(api)

	deps.Logger.Info("routes configured", zap.Int("count", len(e.Routes())))
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/fb-post/backend/internal/events"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/anonto42/fb-post/backend/internal/router"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/anonto42/fb-post/backend/pkg/config"
	"github.com/anonto42/fb-post/backend/pkg/firebase"
	"github.com/anonto42/fb-post/backend/pkg/logger"
	"github.com/anonto42/fb-post/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize database connections
	db, err := config.InitDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	if err := repositories.Migrate(db.SQL); err != nil {
		zlog.Fatal("failed to auto migrate models", zap.Error(err))
	}
	zlog.Info("auto-migrations completed")

	store := repositories.NewGormStore(db.SQL)
	users, err := services.NewUserDirectory(store.Users(), cfg.UserCacheSize)
	if err != nil {
		zlog.Fatal("failed to create user directory", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if db.Mongo != nil {
		publisher = events.NewMongoPublisher(db.Mongo.Database(cfg.MongoDatabase))
	}

	feed := services.NewFeedService(store, users, publisher, zlog)

	deps := router.Dependencies{
		Feed:      feed,
		Users:     store.Users(),
		JWTSecret: cfg.JWTSecret,
		Logger:    zlog,
	}

	// Initialize Firebase
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize firebase", zap.Error(err))
		}
		deps.Verifier = firebaseApp.AuthClient
	} else {
		zlog.Warn("FIREBASE_CREDENTIALS_PATH not set, firebase login disabled")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()

	// Setup global middleware
	config.SetupMiddleware(e, zlog)

	// Setup routes and dependencies
	router.SetupRoutes(e, deps)

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}

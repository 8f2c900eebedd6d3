package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anonto42/fb-post/backend/pkg/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// App carries the Firebase auth client that verifies login ID tokens
type App struct {
	AuthClient *auth.Client
}

// InitFirebase builds the auth client from the service account file named by
// cfg.FirebaseCredentialsPath
func InitFirebase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	creds, err := credentials(cfg)
	if err != nil {
		return nil, err
	}

	fbApp, err := firebase.NewApp(ctx, nil, creds)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}

	logger.Info("firebase login enabled", zap.String("credentials", cfg.FirebaseCredentialsPath))
	return &App{AuthClient: client}, nil
}

func credentials(cfg *config.Config) (option.ClientOption, error) {
	path := cfg.FirebaseCredentialsPath
	if path == "" {
		return nil, errors.New("firebase credentials path not provided")
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("firebase credentials file not found at %s", path)
	case err != nil:
		return nil, fmt.Errorf("firebase credentials %s: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("firebase credentials %s is a directory", path)
	}
	return option.WithCredentialsFile(path), nil
}

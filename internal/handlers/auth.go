package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/anonto42/fb-post/backend/internal/middleware"
	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenVerifier verifies Firebase ID tokens. *auth.Client implements it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository repositories.UserRepository
	verifier       TokenVerifier
	jwtSecret      string
	logger         *zap.Logger
	now            func() time.Time
}

// NewAuthHandler creates a new AuthHandler. With a nil verifier Firebase
// login answers 503.
func NewAuthHandler(userRepo repositories.UserRepository, verifier TokenVerifier, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		verifier:       verifier,
		jwtSecret:      jwtSecret,
		logger:         logger,
		now:            time.Now,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/firebase-login", h.FirebaseLogin)
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin handles Firebase ID token verification and issues a local JWT.
// The first login of a Firebase account creates its user.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	if h.verifier == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Firebase login is not configured")
	}

	var req FirebaseLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	token, err := h.verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	user, err := h.userRepository.GetUserByFirebaseUID(ctx, token.UID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = h.createFirebaseUser(ctx, token)
	}
	if err != nil {
		h.logger.Error("firebase login failed", zap.String("firebase_uid", token.UID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	localJWT, err := middleware.IssueToken(h.jwtSecret, user.ID, h.now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate local JWT")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": localJWT, "user": user.ToSummary()})
}

func (h *AuthHandler) createFirebaseUser(ctx context.Context, token *auth.Token) (*models.User, error) {
	uid := token.UID
	user := &models.User{FirebaseUID: &uid}
	if name, ok := token.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		user.ProfilePic = picture
	}
	if err := h.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	h.logger.Info("user created from firebase login", zap.Uint("user_id", user.ID))
	return user, nil
}

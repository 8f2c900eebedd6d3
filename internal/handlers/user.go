package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserService is what UserHandler needs from the feed
type UserService interface {
	GetUserPosts(ctx context.Context, userID uint) ([]services.PostDetail, error)
	PostsReactedByUser(ctx context.Context, userID uint) ([]uint, error)
}

// UserHandler handles HTTP requests scoped to one user
type UserHandler struct {
	feed UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(feed UserService) *UserHandler {
	return &UserHandler{feed: feed}
}

// RegisterUserRoutes registers user-scoped routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/:id/posts", h.GetUserPosts)
	g.GET("/users/:id/reacted-posts", h.GetReactedPosts)
}

// GetUserPosts returns the detail views of a user's posts, oldest first
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	posts, err := h.feed.GetUserPosts(c.Request().Context(), userID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetReactedPosts returns the ids of the posts a user reacted to
func (h *UserHandler) GetReactedPosts(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ids, err := h.feed.PostsReactedByUser(c.Request().Context(), userID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_ids": ids})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostService is what PostHandler needs from the feed
type PostService interface {
	CreatePost(ctx context.Context, userID uint, content string) (uint, error)
	GetPost(ctx context.Context, postID uint) (services.PostDetail, error)
	GetPosts(ctx context.Context, postIDs []uint) ([]services.PostDetail, error)
	DeletePost(ctx context.Context, userID, postID uint) error
}

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	feed PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(feed PostService) *PostHandler {
	return &PostHandler{feed: feed}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts) // ?ids=1,2,3
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post owned by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	postID, err := h.feed.CreatePost(c.Request().Context(), userID, req.Content)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"post_id": postID})
}

// GetPost retrieves the detail view of a post
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.feed.GetPost(c.Request().Context(), postID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves the detail views of the posts listed in ids
func (h *PostHandler) GetPosts(c echo.Context) error {
	ids, err := idList(c.QueryParam("ids"))
	if err != nil {
		return err
	}

	posts, err := h.feed.GetPosts(c.Request().Context(), ids)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// DeletePost deletes a post the caller owns
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.feed.DeletePost(c.Request().Context(), userID, postID); err != nil {
		return serviceHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

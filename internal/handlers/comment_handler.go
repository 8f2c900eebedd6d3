package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentService is what CommentHandler needs from the feed
type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint, content string) (uint, error)
	ReplyToComment(ctx context.Context, userID, commentID uint, content string) (uint, error)
	GetReplies(ctx context.Context, commentID uint) ([]services.ReplyDetail, error)
}

// CommentHandler handles HTTP requests related to comments and replies
type CommentHandler struct {
	feed CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(feed CommentService) *CommentHandler {
	return &CommentHandler{feed: feed}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.POST("/comments/:id/replies", h.ReplyToComment)
	g.GET("/comments/:id/replies", h.GetReplies)
}

// CreateComment adds a top-level comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	commentID, err := h.feed.CreateComment(c.Request().Context(), userID, postID, req.Content)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"comment_id": commentID})
}

// ReplyToComment adds a reply under a comment
func (h *CommentHandler) ReplyToComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	replyID, err := h.feed.ReplyToComment(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"comment_id": replyID})
}

// GetReplies lists the replies under a comment
func (h *CommentHandler) GetReplies(c echo.Context) error {
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	replies, err := h.feed.GetReplies(c.Request().Context(), commentID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, replies)
}

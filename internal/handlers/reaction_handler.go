package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// ReactionService is what ReactionHandler needs from the feed
type ReactionService interface {
	ReactToPost(ctx context.Context, userID, postID uint, kind models.ReactionKind) (services.ReactionOutcome, error)
	ReactToComment(ctx context.Context, userID, commentID uint, kind models.ReactionKind) (services.ReactionOutcome, error)
	ReactionsToPost(ctx context.Context, postID uint) ([]services.PostReaction, error)
	ReactionMetrics(ctx context.Context, postID uint) (map[models.ReactionKind]int64, error)
}

// ReactionHandler handles HTTP requests that toggle or list reactions
type ReactionHandler struct {
	feed ReactionService
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(feed ReactionService) *ReactionHandler {
	return &ReactionHandler{feed: feed}
}

// RegisterReactionRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/posts/:id/reactions", h.ReactToPost)
	g.POST("/comments/:id/reactions", h.ReactToComment)
	g.GET("/posts/:id/reactions", h.GetPostReactions)
	g.GET("/posts/:id/reactions/metrics", h.GetReactionMetrics)
}

// ReactToPost toggles the caller's reaction on a post
func (h *ReactionHandler) ReactToPost(c echo.Context) error {
	return h.react(c, h.feed.ReactToPost)
}

// ReactToComment toggles the caller's reaction on a comment or reply
func (h *ReactionHandler) ReactToComment(c echo.Context) error {
	return h.react(c, h.feed.ReactToComment)
}

type toggleFunc func(ctx context.Context, userID, targetID uint, kind models.ReactionKind) (services.ReactionOutcome, error)

func (h *ReactionHandler) react(c echo.Context, toggle toggleFunc) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	targetID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateReactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	kind, err := models.ParseReactionKind(req.Reaction)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	outcome, err := toggle(c.Request().Context(), userID, targetID, kind)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"outcome": outcome, "reaction": kind})
}

// GetPostReactions lists a post's reactions with their reactors
func (h *ReactionHandler) GetPostReactions(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	reactions, err := h.feed.ReactionsToPost(c.Request().Context(), postID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, reactions)
}

// GetReactionMetrics returns the per-kind reaction counts of a post
func (h *ReactionHandler) GetReactionMetrics(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	metrics, err := h.feed.ReactionMetrics(c.Request().Context(), postID)
	if err != nil {
		return serviceHTTPError(err)
	}

	return c.JSON(http.StatusOK, metrics)
}

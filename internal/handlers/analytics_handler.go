package handlers

import (
	"context"
	"net/http"

	"github.com/anonto42/fb-post/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AnalyticsService is what AnalyticsHandler needs from the feed
type AnalyticsService interface {
	TotalReactionCount(ctx context.Context) (services.ReactionCount, error)
	PostsWithMorePositiveReactions(ctx context.Context) ([]uint, error)
}

// AnalyticsHandler serves feed-wide reaction statistics
type AnalyticsHandler struct {
	feed AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(feed AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{feed: feed}
}

// RegisterAnalyticsRoutes registers analytics routes
func (h *AnalyticsHandler) RegisterAnalyticsRoutes(g *echo.Group) {
	g.GET("/reactions/count", h.GetTotalReactionCount)
	g.GET("/posts/positive", h.GetPositivePosts)
}

// GetTotalReactionCount returns the number of reactions on posts and comments
func (h *AnalyticsHandler) GetTotalReactionCount(c echo.Context) error {
	count, err := h.feed.TotalReactionCount(c.Request().Context())
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, count)
}

// GetPositivePosts returns the posts with more positive than negative reactions
func (h *AnalyticsHandler) GetPositivePosts(c echo.Context) error {
	ids, err := h.feed.PostsWithMorePositiveReactions(c.Request().Context())
	if err != nil {
		return serviceHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"post_ids": ids})
}

package services

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
)

// ReactionCount is the total number of reactions in the store
type ReactionCount struct {
	Count int64 `json:"count"`
}

// PostReaction is one reaction on a post with its reactor
type PostReaction struct {
	UserID     uint                `json:"user_id"`
	Name       string              `json:"name"`
	ProfilePic string              `json:"profile_pic"`
	Reaction   models.ReactionKind `json:"reaction"`
}

// TotalReactionCount counts reactions on posts and comments alike
func (s *FeedService) TotalReactionCount(ctx context.Context) (ReactionCount, error) {
	count, err := s.store.Reactions().CountAll(ctx)
	if err != nil {
		return ReactionCount{}, s.storeFailure("count reactions", err)
	}
	return ReactionCount{Count: count}, nil
}

// ReactionMetrics returns how many reactions of each kind a post has.
// Kinds nobody used are absent.
func (s *FeedService) ReactionMetrics(ctx context.Context, postID uint) (map[models.ReactionKind]int64, error) {
	if err := s.validatePost(ctx, s.store, postID); err != nil {
		return nil, err
	}
	rows, err := s.store.Reactions().CountByKindForPost(ctx, postID)
	if err != nil {
		return nil, s.storeFailure("count post reactions by kind", err)
	}
	metrics := make(map[models.ReactionKind]int64, len(rows))
	for _, row := range rows {
		metrics[row.Reaction] = row.Count
	}
	return metrics, nil
}

// PostsWithMorePositiveReactions returns, ascending, the posts whose positive
// reactions strictly outnumber their negative ones
func (s *FeedService) PostsWithMorePositiveReactions(ctx context.Context) ([]uint, error) {
	ids, err := s.store.Reactions().PostIDsWithMorePositive(ctx, models.PositiveReactions, models.NegativeReactions)
	if err != nil {
		return nil, s.storeFailure("load positive posts", err)
	}
	return ids, nil
}

// PostsReactedByUser returns, ascending, the posts the user reacted to
func (s *FeedService) PostsReactedByUser(ctx context.Context, userID uint) ([]uint, error) {
	if err := s.validateUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	ids, err := s.store.Reactions().PostIDsReactedByUser(ctx, userID)
	if err != nil {
		return nil, s.storeFailure("load posts reacted by user", err)
	}
	return ids, nil
}

// ReactionsToPost lists a post's reactions with their reactors
func (s *FeedService) ReactionsToPost(ctx context.Context, postID uint) ([]PostReaction, error) {
	if err := s.validatePost(ctx, s.store, postID); err != nil {
		return nil, err
	}
	rows, err := s.store.Reactions().GetReactionsWithUserByPostID(ctx, postID)
	if err != nil {
		return nil, s.storeFailure("load post reactions", err)
	}
	reactions := make([]PostReaction, 0, len(rows))
	for _, row := range rows {
		reactions = append(reactions, PostReaction{
			UserID:     row.UserID,
			Name:       row.Name,
			ProfilePic: row.ProfilePic,
			Reaction:   row.Reaction,
		})
	}
	return reactions, nil
}

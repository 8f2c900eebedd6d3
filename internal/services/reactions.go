package services

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/events"
	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"go.uber.org/zap"
)

// ReactionOutcome is the transition a React call applied to the user's slot on a target
type ReactionOutcome string

const (
	ReactionCreated  ReactionOutcome = "created"
	ReactionSwitched ReactionOutcome = "switched"
	ReactionRemoved  ReactionOutcome = "removed"
)

// ReactToPost toggles the user's reaction on a post
func (s *FeedService) ReactToPost(ctx context.Context, userID, postID uint, kind models.ReactionKind) (ReactionOutcome, error) {
	return s.React(ctx, userID, models.PostTarget(postID), kind)
}

// ReactToComment toggles the user's reaction on a comment or reply
func (s *FeedService) ReactToComment(ctx context.Context, userID, commentID uint, kind models.ReactionKind) (ReactionOutcome, error) {
	return s.React(ctx, userID, models.CommentTarget(commentID), kind)
}

// React applies the toggle to the (user, target) slot:
//
//	absent      -> present(kind)   created
//	present(k)  -> absent          removed, when k == kind
//	present(k)  -> present(kind)   switched, when k != kind
//
// The lookup and the write run in one transaction that holds the reactor's
// row lock, so concurrent toggles by one user are serialized.
func (s *FeedService) React(ctx context.Context, userID uint, target models.Target, kind models.ReactionKind) (ReactionOutcome, error) {
	if err := validateReactionKind(kind); err != nil {
		return "", err
	}

	var outcome ReactionOutcome
	err := s.inTransaction(ctx, "react", func(tx repositories.Store) error {
		if err := s.validateUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.validateTarget(ctx, tx, target); err != nil {
			return err
		}
		if err := tx.Users().LockUser(ctx, userID); err != nil {
			return s.storeFailure("lock reactor", err)
		}

		existing, err := tx.Reactions().FindUserReaction(ctx, userID, target)
		if err != nil {
			return s.storeFailure("find reaction", err)
		}

		now := s.now()
		switch {
		case existing == nil:
			if err := tx.Reactions().CreateReaction(ctx, models.NewReaction(userID, target, kind, now)); err != nil {
				return s.storeFailure("create reaction", err)
			}
			outcome = ReactionCreated
		case existing.Reaction == kind:
			if err := tx.Reactions().DeleteReaction(ctx, existing.ID); err != nil {
				return s.storeFailure("delete reaction", err)
			}
			outcome = ReactionRemoved
		default:
			if err := tx.Reactions().UpdateReaction(ctx, existing.ID, kind, now); err != nil {
				return s.storeFailure("update reaction", err)
			}
			outcome = ReactionSwitched
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("reaction toggled",
		zap.Uint("user_id", userID),
		zap.Stringer("target", target),
		zap.String("reaction", string(kind)),
		zap.String("outcome", string(outcome)))

	event := events.New(events.ReactionToggled, userID, string(target.Kind), target.ID, s.now())
	event.Reaction = string(kind)
	event.Outcome = string(outcome)
	s.publish(ctx, event)
	return outcome, nil
}

func (s *FeedService) validateTarget(ctx context.Context, store repositories.Store, target models.Target) error {
	switch target.Kind {
	case models.TargetPost:
		return s.validatePost(ctx, store, target.ID)
	case models.TargetComment:
		return s.validateComment(ctx, store, target.ID)
	}
	return New(CodeInvalidReaction, "unknown reaction target "+string(target.Kind))
}

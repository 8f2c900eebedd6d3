package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/go-playground/validator/v10"
)

func (s *FeedService) validateUser(ctx context.Context, store repositories.Store, id uint) error {
	ok, err := store.Users().Exists(ctx, id)
	if err != nil {
		return s.storeFailure("validate user", err)
	}
	if !ok {
		return invalidUser(id)
	}
	return nil
}

func (s *FeedService) validatePost(ctx context.Context, store repositories.Store, id uint) error {
	ok, err := store.Posts().Exists(ctx, id)
	if err != nil {
		return s.storeFailure("validate post", err)
	}
	if !ok {
		return invalidPost(id)
	}
	return nil
}

// validatePosts checks every id with one query and reports the first
// missing one in input order
func (s *FeedService) validatePosts(ctx context.Context, store repositories.Store, ids []uint) error {
	found, err := store.Posts().ExistingIDs(ctx, ids)
	if err != nil {
		return s.storeFailure("validate posts", err)
	}
	existing := make(map[uint]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	for _, id := range ids {
		if !existing[id] {
			return invalidPost(id)
		}
	}
	return nil
}

func (s *FeedService) validateComment(ctx context.Context, store repositories.Store, id uint) error {
	ok, err := store.Comments().Exists(ctx, id)
	if err != nil {
		return s.storeFailure("validate comment", err)
	}
	if !ok {
		return invalidComment(id)
	}
	return nil
}

func (s *FeedService) validatePostContent(content string) error {
	switch contentViolation(s.validate, content) {
	case "required":
		return New(CodeInvalidPostContent, "post content is empty")
	case "max":
		return New(CodeInvalidPostContent, fmt.Sprintf("post content exceeds %d characters", models.MaxContentLength))
	}
	return nil
}

func (s *FeedService) validateCommentContent(content string) error {
	switch contentViolation(s.validate, content) {
	case "required":
		return New(CodeInvalidCommentContent, "comment content is empty")
	case "max":
		return New(CodeInvalidCommentContent, fmt.Sprintf("comment content exceeds %d characters", models.MaxContentLength))
	}
	return nil
}

var contentRules = fmt.Sprintf("required,max=%d", models.MaxContentLength)

// contentViolation returns the failing validator tag for content, or ""
func contentViolation(v *validator.Validate, content string) string {
	err := v.Var(content, contentRules)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

func validateReactionKind(kind models.ReactionKind) error {
	if !kind.Valid() {
		return New(CodeInvalidReaction, "unknown reaction "+string(kind))
	}
	return nil
}

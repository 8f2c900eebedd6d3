package services

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/events"
	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"go.uber.org/zap"
)

// CreatePost creates a post owned by userID and returns its id
func (s *FeedService) CreatePost(ctx context.Context, userID uint, content string) (uint, error) {
	var post *models.Post
	err := s.inTransaction(ctx, "create post", func(tx repositories.Store) error {
		if err := s.validateUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.validatePostContent(content); err != nil {
			return err
		}
		post = &models.Post{
			Content:    content,
			PostedAt:   s.now(),
			PostedByID: userID,
		}
		if err := tx.Posts().CreatePost(ctx, post); err != nil {
			return s.storeFailure("create post", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("post created", zap.Uint("post_id", post.ID), zap.Uint("user_id", userID))
	s.publish(ctx, events.New(events.PostCreated, userID, string(models.TargetPost), post.ID, post.PostedAt))
	return post.ID, nil
}

// CreateComment adds a top-level comment to a post and returns its id
func (s *FeedService) CreateComment(ctx context.Context, userID, postID uint, content string) (uint, error) {
	var comment *models.Comment
	err := s.inTransaction(ctx, "create comment", func(tx repositories.Store) error {
		if err := s.validateUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.validatePost(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.validateCommentContent(content); err != nil {
			return err
		}
		comment = models.NewTopLevelComment(postID, userID, content, s.now())
		if err := tx.Comments().CreateComment(ctx, comment); err != nil {
			return s.storeFailure("create comment", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("comment created", zap.Uint("comment_id", comment.ID), zap.Uint("post_id", postID))
	s.publish(ctx, events.New(events.CommentCreated, userID, string(models.TargetPost), postID, comment.CommentedAt))
	return comment.ID, nil
}

// ReplyToComment adds a reply under a comment and returns its id. Replies
// are one level deep: replying to a reply files the new reply under that
// reply's top-level comment.
func (s *FeedService) ReplyToComment(ctx context.Context, userID, commentID uint, content string) (uint, error) {
	var reply *models.Comment
	err := s.inTransaction(ctx, "reply to comment", func(tx repositories.Store) error {
		if err := s.validateUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.validateComment(ctx, tx, commentID); err != nil {
			return err
		}
		if err := s.validateCommentContent(content); err != nil {
			return err
		}

		parent, err := tx.Comments().GetCommentByID(ctx, commentID)
		if err != nil {
			return s.storeFailure("load parent comment", err)
		}
		parentID := parent.ID
		if p, ok := parent.Parent().(models.Reply); ok {
			parentID = p.ParentID
		}

		reply = models.NewReply(parentID, userID, content, s.now())
		if err := tx.Comments().CreateComment(ctx, reply); err != nil {
			return s.storeFailure("create reply", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("reply created", zap.Uint("reply_id", reply.ID), zap.Uint("parent_comment_id", *reply.ParentCommentID))
	s.publish(ctx, events.New(events.ReplyCreated, userID, string(models.TargetComment), *reply.ParentCommentID, reply.CommentedAt))
	return reply.ID, nil
}

// DeletePost deletes a post and everything under it. Only the owner may delete.
func (s *FeedService) DeletePost(ctx context.Context, userID, postID uint) error {
	err := s.inTransaction(ctx, "delete post", func(tx repositories.Store) error {
		if err := s.validateUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.validatePost(ctx, tx, postID); err != nil {
			return err
		}

		post, err := tx.Posts().GetPostByID(ctx, postID)
		if err != nil {
			return s.storeFailure("load post", err)
		}
		if post.PostedByID != userID {
			return ErrUserCannotDeletePost
		}

		if err := tx.Posts().DeletePost(ctx, postID); err != nil {
			return s.storeFailure("delete post", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("post deleted", zap.Uint("post_id", postID), zap.Uint("user_id", userID))
	s.publish(ctx, events.New(events.PostDeleted, userID, string(models.TargetPost), postID, s.now()))
	return nil
}

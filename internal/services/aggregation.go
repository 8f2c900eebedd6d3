package services

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
)

// TimestampLayout formats posted_at and commented_at in read views
const TimestampLayout = "2006-01-02 15:04:05.000000"

// ReactionSummary aggregates all reactions on one target. Type lists the
// distinct kinds in the order they were first seen. Read views carry it as a
// list holding one summary, or none when the target has no reactions.
type ReactionSummary struct {
	Count int                   `json:"count"`
	Type  []models.ReactionKind `json:"type"`
}

// ReplyDetail is a reply as shown under its parent comment
type ReplyDetail struct {
	CommentID      uint               `json:"comment_id"`
	Commenter      models.UserSummary `json:"commenter"`
	CommentedAt    string             `json:"commented_at"`
	CommentContent string             `json:"comment_content"`
	Reactions      []ReactionSummary  `json:"reactions"`
}

// CommentDetail is a top-level comment with its replies
type CommentDetail struct {
	CommentID      uint               `json:"comment_id"`
	Commenter      models.UserSummary `json:"commenter"`
	CommentedAt    string             `json:"commented_at"`
	CommentContent string             `json:"comment_content"`
	Reaction       []ReactionSummary  `json:"reaction"`
	RepliesCount   int                `json:"replies_count"`
	Replies        []ReplyDetail      `json:"replies"`
}

// PostDetail is a post with its comments and reaction summary
type PostDetail struct {
	PostID        uint               `json:"post_id"`
	PostedBy      models.UserSummary `json:"posted_by"`
	PostedAt      string             `json:"posted_at"`
	PostContent   string             `json:"post_content"`
	Reactions     []ReactionSummary  `json:"reactions"`
	Comments      []CommentDetail    `json:"comments"`
	CommentsCount int                `json:"comments_count"`
}

// summarize groups reactions by the id key returns, keeping fetch order
func summarize(reactions []models.Reaction, key func(models.Reaction) uint) map[uint]ReactionSummary {
	summaries := make(map[uint]ReactionSummary)
	for _, r := range reactions {
		id := key(r)
		summary := summaries[id]
		summary.Count++
		if !containsKind(summary.Type, r.Reaction) {
			summary.Type = append(summary.Type, r.Reaction)
		}
		summaries[id] = summary
	}
	return summaries
}

func containsKind(kinds []models.ReactionKind, k models.ReactionKind) bool {
	for _, existing := range kinds {
		if existing == k {
			return true
		}
	}
	return false
}

func summaryFor(summaries map[uint]ReactionSummary, id uint) []ReactionSummary {
	if summary, ok := summaries[id]; ok {
		return []ReactionSummary{summary}
	}
	return []ReactionSummary{}
}

func userFor(users map[uint]models.User, id uint) models.UserSummary {
	if user, ok := users[id]; ok {
		return user.ToSummary()
	}
	return models.UserSummary{UserID: id}
}

// BuildPostReactionSummaries summarizes the reactions on each post with one query
func (s *FeedService) BuildPostReactionSummaries(ctx context.Context, postIDs []uint) (map[uint]ReactionSummary, error) {
	reactions, err := s.store.Reactions().GetReactionsByTargets(ctx, models.TargetPost, postIDs)
	if err != nil {
		return nil, s.storeFailure("load post reactions", err)
	}
	return summarize(reactions, func(r models.Reaction) uint { return *r.PostID }), nil
}

// BuildCommentReactionSummaries summarizes the reactions on each comment or reply with one query
func (s *FeedService) BuildCommentReactionSummaries(ctx context.Context, commentIDs []uint) (map[uint]ReactionSummary, error) {
	reactions, err := s.store.Reactions().GetReactionsByTargets(ctx, models.TargetComment, commentIDs)
	if err != nil {
		return nil, s.storeFailure("load comment reactions", err)
	}
	return summarize(reactions, func(r models.Reaction) uint { return *r.CommentID }), nil
}

// BuildReplyDetails returns the replies of every comment in parentIDs keyed
// by parent id. Replies, their reactions and their authors are each fetched
// once for the whole set.
func (s *FeedService) BuildReplyDetails(ctx context.Context, parentIDs []uint) (map[uint][]ReplyDetail, error) {
	replies, err := s.store.Comments().GetRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, s.storeFailure("load replies", err)
	}

	replyIDs := make([]uint, 0, len(replies))
	authorIDs := make([]uint, 0, len(replies))
	for _, reply := range replies {
		replyIDs = append(replyIDs, reply.ID)
		authorIDs = append(authorIDs, reply.CommentedByID)
	}

	reactions, err := s.BuildCommentReactionSummaries(ctx, replyIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Lookup(ctx, authorIDs)
	if err != nil {
		return nil, s.storeFailure("load reply authors", err)
	}

	details := make(map[uint][]ReplyDetail)
	for _, reply := range replies {
		parentID := *reply.ParentCommentID
		details[parentID] = append(details[parentID], ReplyDetail{
			CommentID:      reply.ID,
			Commenter:      userFor(users, reply.CommentedByID),
			CommentedAt:    reply.CommentedAt.Format(TimestampLayout),
			CommentContent: reply.Content,
			Reactions:      summaryFor(reactions, reply.ID),
		})
	}
	return details, nil
}

// BuildCommentDetails returns the top-level comments of every post in
// postIDs, each with its replies, keyed by post id
func (s *FeedService) BuildCommentDetails(ctx context.Context, postIDs []uint) (map[uint][]CommentDetail, error) {
	comments, err := s.store.Comments().GetCommentsByPostIDs(ctx, postIDs)
	if err != nil {
		return nil, s.storeFailure("load comments", err)
	}

	commentIDs := make([]uint, 0, len(comments))
	authorIDs := make([]uint, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.ID)
		authorIDs = append(authorIDs, comment.CommentedByID)
	}

	replies, err := s.BuildReplyDetails(ctx, commentIDs)
	if err != nil {
		return nil, err
	}
	reactions, err := s.BuildCommentReactionSummaries(ctx, commentIDs)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Lookup(ctx, authorIDs)
	if err != nil {
		return nil, s.storeFailure("load comment authors", err)
	}

	details := make(map[uint][]CommentDetail)
	for _, comment := range comments {
		commentReplies := replies[comment.ID]
		if commentReplies == nil {
			commentReplies = []ReplyDetail{}
		}
		postID := *comment.PostID
		details[postID] = append(details[postID], CommentDetail{
			CommentID:      comment.ID,
			Commenter:      userFor(users, comment.CommentedByID),
			CommentedAt:    comment.CommentedAt.Format(TimestampLayout),
			CommentContent: comment.Content,
			Reaction:       summaryFor(reactions, comment.ID),
			RepliesCount:   len(commentReplies),
			Replies:        commentReplies,
		})
	}
	return details, nil
}

// GetPosts returns the detail view of each post, ordered by post id. Every id
// is validated before anything is assembled.
func (s *FeedService) GetPosts(ctx context.Context, postIDs []uint) ([]PostDetail, error) {
	if len(postIDs) == 0 {
		return []PostDetail{}, nil
	}
	if err := s.validatePosts(ctx, s.store, postIDs); err != nil {
		return nil, err
	}
	return s.assemblePosts(ctx, uniqueIDs(postIDs))
}

// GetPost returns the detail view of one post
func (s *FeedService) GetPost(ctx context.Context, postID uint) (PostDetail, error) {
	posts, err := s.GetPosts(ctx, []uint{postID})
	if err != nil {
		return PostDetail{}, err
	}
	if len(posts) == 0 {
		return PostDetail{}, invalidPost(postID)
	}
	return posts[0], nil
}

// GetUserPosts returns the detail view of every post the user owns, oldest first
func (s *FeedService) GetUserPosts(ctx context.Context, userID uint) ([]PostDetail, error) {
	if err := s.validateUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	ids, err := s.store.Posts().GetPostIDsByUserID(ctx, userID)
	if err != nil {
		return nil, s.storeFailure("load user post ids", err)
	}
	return s.assemblePosts(ctx, ids)
}

// GetReplies returns the replies under one comment
func (s *FeedService) GetReplies(ctx context.Context, commentID uint) ([]ReplyDetail, error) {
	if err := s.validateComment(ctx, s.store, commentID); err != nil {
		return nil, err
	}
	details, err := s.BuildReplyDetails(ctx, []uint{commentID})
	if err != nil {
		return nil, err
	}
	if replies := details[commentID]; replies != nil {
		return replies, nil
	}
	return []ReplyDetail{}, nil
}

func (s *FeedService) assemblePosts(ctx context.Context, postIDs []uint) ([]PostDetail, error) {
	result := []PostDetail{}
	if len(postIDs) == 0 {
		return result, nil
	}

	posts, err := s.store.Posts().GetPostsByIDs(ctx, postIDs)
	if err != nil {
		return nil, s.storeFailure("load posts", err)
	}
	comments, err := s.BuildCommentDetails(ctx, postIDs)
	if err != nil {
		return nil, err
	}
	reactions, err := s.BuildPostReactionSummaries(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	ownerIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		ownerIDs = append(ownerIDs, post.PostedByID)
	}
	users, err := s.users.Lookup(ctx, ownerIDs)
	if err != nil {
		return nil, s.storeFailure("load post owners", err)
	}

	for _, post := range posts {
		postComments := comments[post.ID]
		if postComments == nil {
			postComments = []CommentDetail{}
		}
		result = append(result, PostDetail{
			PostID:        post.ID,
			PostedBy:      userFor(users, post.PostedByID),
			PostedAt:      post.PostedAt.Format(TimestampLayout),
			PostContent:   post.Content,
			Reactions:     summaryFor(reactions, post.ID),
			Comments:      postComments,
			CommentsCount: len(postComments),
		})
	}
	return result, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

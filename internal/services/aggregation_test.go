package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPostsEmptyInput(t *testing.T) {
	f := newFixture(t)

	posts, err := f.svc.GetPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestGetPostsFailsOnFirstMissingID(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	post := testutil.SeedPost(t, f.db, alice.ID, "hello")

	_, err := f.svc.GetPosts(context.Background(), []uint{post.ID, 99, 98})
	assert.ErrorIs(t, err, ErrInvalidPost)
	assert.EqualError(t, err, "post 99 does not exist")
}

func TestGetPostsOrdersAndDeduplicates(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	p1 := testutil.SeedPost(t, f.db, alice.ID, "one")
	p2 := testutil.SeedPost(t, f.db, alice.ID, "two")

	posts, err := f.svc.GetPosts(context.Background(), []uint{p2.ID, p1.ID, p2.ID})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p1.ID, posts[0].PostID)
	assert.Equal(t, p2.ID, posts[1].PostID)
}

func TestGetPostAssemblesNestedView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")

	postID, err := f.svc.CreatePost(ctx, alice.ID, "hello feed")
	require.NoError(t, err)
	c1, err := f.svc.CreateComment(ctx, bob.ID, postID, "first")
	require.NoError(t, err)
	c2, err := f.svc.CreateComment(ctx, carol.ID, postID, "second")
	require.NoError(t, err)
	r1, err := f.svc.ReplyToComment(ctx, alice.ID, c1, "thanks")
	require.NoError(t, err)

	_, err = f.svc.ReactToPost(ctx, bob.ID, postID, models.ReactionHaha)
	require.NoError(t, err)
	_, err = f.svc.ReactToPost(ctx, carol.ID, postID, models.ReactionWow)
	require.NoError(t, err)
	_, err = f.svc.ReactToPost(ctx, alice.ID, postID, models.ReactionHaha)
	require.NoError(t, err)
	_, err = f.svc.ReactToComment(ctx, alice.ID, c1, models.ReactionLove)
	require.NoError(t, err)
	_, err = f.svc.ReactToComment(ctx, bob.ID, r1, models.ReactionLit)
	require.NoError(t, err)

	post, err := f.svc.GetPost(ctx, postID)
	require.NoError(t, err)

	assert.Equal(t, postID, post.PostID)
	assert.Equal(t, "hello feed", post.PostContent)
	assert.Equal(t, alice.ToSummary(), post.PostedBy)
	assert.Equal(t, "2024-03-09 14:30:15.123456", post.PostedAt)
	assert.Equal(t, []ReactionSummary{{Count: 3, Type: []models.ReactionKind{models.ReactionHaha, models.ReactionWow}}}, post.Reactions)

	require.Equal(t, 2, post.CommentsCount)
	require.Len(t, post.Comments, 2)

	first := post.Comments[0]
	assert.Equal(t, c1, first.CommentID)
	assert.Equal(t, bob.ToSummary(), first.Commenter)
	assert.Equal(t, []ReactionSummary{{Count: 1, Type: []models.ReactionKind{models.ReactionLove}}}, first.Reaction)
	require.Equal(t, 1, first.RepliesCount)
	assert.Equal(t, r1, first.Replies[0].CommentID)
	assert.Equal(t, alice.ToSummary(), first.Replies[0].Commenter)
	assert.Equal(t, []ReactionSummary{{Count: 1, Type: []models.ReactionKind{models.ReactionLit}}}, first.Replies[0].Reactions)

	second := post.Comments[1]
	assert.Equal(t, c2, second.CommentID)
	assert.Equal(t, 0, second.RepliesCount)
	assert.NotNil(t, second.Replies)
	assert.NotNil(t, second.Reaction)
	assert.Empty(t, second.Reaction)
}

func TestPostDetailJSONShape(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	post := testutil.SeedPost(t, f.db, alice.ID, "hello")
	liked := testutil.SeedComment(t, f.db, post.ID, alice.ID, "hi")
	testutil.SeedComment(t, f.db, post.ID, bob.ID, "quiet")
	testutil.SeedReply(t, f.db, liked.ID, alice.ID, "hey")
	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(post.ID), models.ReactionWow)
	testutil.SeedReaction(t, f.db, bob.ID, models.CommentTarget(liked.ID), models.ReactionHaha)

	detail, err := f.svc.GetPost(ctx, post.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, key := range []string{"post_id", "posted_by", "posted_at", "post_content", "reactions", "comments", "comments_count"} {
		assert.Contains(t, body, key)
	}
	assert.JSONEq(t, `[{"count":1,"type":["WO"]}]`, marshal(t, body["reactions"]))

	comments := body["comments"].([]interface{})
	require.Len(t, comments, 2)
	commentBody := comments[0].(map[string]interface{})
	for _, key := range []string{"comment_id", "commenter", "commented_at", "comment_content", "reaction", "replies_count", "replies"} {
		assert.Contains(t, commentBody, key)
	}
	assert.JSONEq(t, `[{"count":1,"type":["HA"]}]`, marshal(t, commentBody["reaction"]))
	assert.JSONEq(t, `[]`, marshal(t, comments[1].(map[string]interface{})["reaction"]))

	replyBody := commentBody["replies"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"comment_id", "commenter", "commented_at", "comment_content", "reactions"} {
		assert.Contains(t, replyBody, key)
	}
	assert.JSONEq(t, `[]`, marshal(t, replyBody["reactions"]))

	commenter := replyBody["commenter"].(map[string]interface{})
	assert.Equal(t, "alice", commenter["name"])
	assert.Contains(t, commenter, "user_id")
	assert.Contains(t, commenter, "profile_pic")
}

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestBuildersReturnEmptyMapsForChildlessIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	post := testutil.SeedPost(t, f.db, alice.ID, "hello")

	summaries, err := f.svc.BuildPostReactionSummaries(ctx, []uint{post.ID})
	require.NoError(t, err)
	assert.Empty(t, summaries)

	comments, err := f.svc.BuildCommentDetails(ctx, []uint{post.ID})
	require.NoError(t, err)
	assert.Empty(t, comments)

	replies, err := f.svc.BuildReplyDetails(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func TestReactionSummaryFirstSeenOrder(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")
	post := testutil.SeedPost(t, f.db, alice.ID, "hello")
	comment := testutil.SeedComment(t, f.db, post.ID, alice.ID, "hi")

	testutil.SeedReaction(t, f.db, alice.ID, models.CommentTarget(comment.ID), models.ReactionSad)
	testutil.SeedReaction(t, f.db, bob.ID, models.CommentTarget(comment.ID), models.ReactionThumbsUp)
	testutil.SeedReaction(t, f.db, carol.ID, models.CommentTarget(comment.ID), models.ReactionSad)

	summaries, err := f.svc.BuildCommentReactionSummaries(context.Background(), []uint{comment.ID})
	require.NoError(t, err)
	assert.Equal(t, ReactionSummary{
		Count: 3,
		Type:  []models.ReactionKind{models.ReactionSad, models.ReactionThumbsUp},
	}, summaries[comment.ID])
}

func TestGetUserPosts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	p1 := testutil.SeedPost(t, f.db, alice.ID, "one")
	testutil.SeedPost(t, f.db, bob.ID, "not mine")
	p3 := testutil.SeedPost(t, f.db, alice.ID, "three")

	posts, err := f.svc.GetUserPosts(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, p1.ID, posts[0].PostID)
	assert.Equal(t, p3.ID, posts[1].PostID)

	carol := f.user(t, "carol")
	posts, err = f.svc.GetUserPosts(ctx, carol.ID)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	_, err = f.svc.GetUserPosts(ctx, 404)
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestGetReplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	post := testutil.SeedPost(t, f.db, alice.ID, "hello")
	comment := testutil.SeedComment(t, f.db, post.ID, alice.ID, "hi")
	quiet := testutil.SeedComment(t, f.db, post.ID, alice.ID, "nobody answers")
	r1 := testutil.SeedReply(t, f.db, comment.ID, alice.ID, "one")
	r2 := testutil.SeedReply(t, f.db, comment.ID, alice.ID, "two")

	replies, err := f.svc.GetReplies(ctx, comment.ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].CommentID)
	assert.Equal(t, r2.ID, replies[1].CommentID)

	replies, err = f.svc.GetReplies(ctx, quiet.ID)
	require.NoError(t, err)
	assert.NotNil(t, replies)
	assert.Empty(t, replies)

	_, err = f.svc.GetReplies(ctx, 404)
	assert.ErrorIs(t, err, ErrInvalidComment)
}

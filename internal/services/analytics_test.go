package services

import (
	"context"
	"testing"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalytics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")

	liked := testutil.SeedPost(t, f.db, alice.ID, "liked")
	disliked := testutil.SeedPost(t, f.db, alice.ID, "disliked")
	comment := testutil.SeedComment(t, f.db, disliked.ID, alice.ID, "cheer up")

	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(liked.ID), models.ReactionThumbsUp)
	testutil.SeedReaction(t, f.db, carol.ID, models.PostTarget(liked.ID), models.ReactionThumbsUp)
	testutil.SeedReaction(t, f.db, alice.ID, models.PostTarget(liked.ID), models.ReactionAngry)
	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(disliked.ID), models.ReactionSad)
	testutil.SeedReaction(t, f.db, bob.ID, models.CommentTarget(comment.ID), models.ReactionLove)

	total, err := f.svc.TotalReactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, ReactionCount{Count: 5}, total)

	metrics, err := f.svc.ReactionMetrics(ctx, liked.ID)
	require.NoError(t, err)
	assert.Equal(t, map[models.ReactionKind]int64{
		models.ReactionThumbsUp: 2,
		models.ReactionAngry:    1,
	}, metrics)

	positive, err := f.svc.PostsWithMorePositiveReactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{liked.ID}, positive)

	reacted, err := f.svc.PostsReactedByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{liked.ID, disliked.ID}, reacted)

	reactions, err := f.svc.ReactionsToPost(ctx, liked.ID)
	require.NoError(t, err)
	assert.Equal(t, []PostReaction{
		{UserID: bob.ID, Name: "bob", ProfilePic: bob.ProfilePic, Reaction: models.ReactionThumbsUp},
		{UserID: carol.ID, Name: "carol", ProfilePic: carol.ProfilePic, Reaction: models.ReactionThumbsUp},
		{UserID: alice.ID, Name: "alice", ProfilePic: alice.ProfilePic, Reaction: models.ReactionAngry},
	}, reactions)
}

func TestAnalyticsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.ReactionMetrics(ctx, 404)
	assert.ErrorIs(t, err, ErrInvalidPost)

	_, err = f.svc.ReactionsToPost(ctx, 404)
	assert.ErrorIs(t, err, ErrInvalidPost)

	_, err = f.svc.PostsReactedByUser(ctx, 404)
	assert.ErrorIs(t, err, ErrInvalidUser)

	total, err := f.svc.TotalReactionCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total.Count)

	positive, err := f.svc.PostsWithMorePositiveReactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, positive)
}

func TestPostsWithMorePositiveReactionsBoundaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	tied := testutil.SeedPost(t, f.db, alice.ID, "tied")
	testutil.SeedReaction(t, f.db, alice.ID, models.PostTarget(tied.ID), models.ReactionHaha)
	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(tied.ID), models.ReactionSad)

	positive, err := f.svc.PostsWithMorePositiveReactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, positive)

	funny := testutil.SeedPost(t, f.db, alice.ID, "funny")
	surprising := testutil.SeedPost(t, f.db, alice.ID, "surprising")
	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(surprising.ID), models.ReactionWow)
	testutil.SeedReaction(t, f.db, bob.ID, models.PostTarget(funny.ID), models.ReactionHaha)

	positive, err = f.svc.PostsWithMorePositiveReactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{funny.ID, surprising.ID}, positive)
}

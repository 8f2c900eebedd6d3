// Package testutil builds throwaway databases for tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
// All work goes through one connection, so never issue a query on the
// returned handle while a transaction on it is open.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repositories.Migrate(db))
	return db
}

// SeedUser inserts a user and returns it
func SeedUser(t testing.TB, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, ProfilePic: fmt.Sprintf("https://pics.example/%s.png", name)}
	require.NoError(t, db.Create(user).Error)
	return user
}

// SeedPost inserts a post owned by userID
func SeedPost(t testing.TB, db *gorm.DB, userID uint, content string) *models.Post {
	t.Helper()
	post := &models.Post{Content: content, PostedAt: time.Now(), PostedByID: userID}
	require.NoError(t, db.Omit("PostedBy").Create(post).Error)
	return post
}

// SeedComment inserts a top-level comment on postID
func SeedComment(t testing.TB, db *gorm.DB, postID, userID uint, content string) *models.Comment {
	t.Helper()
	comment := models.NewTopLevelComment(postID, userID, content, time.Now())
	require.NoError(t, db.Omit("CommentedBy", "Post", "ParentComment").Create(comment).Error)
	return comment
}

// SeedReply inserts a reply under parentID
func SeedReply(t testing.TB, db *gorm.DB, parentID, userID uint, content string) *models.Comment {
	t.Helper()
	reply := models.NewReply(parentID, userID, content, time.Now())
	require.NoError(t, db.Omit("CommentedBy", "Post", "ParentComment").Create(reply).Error)
	return reply
}

// SeedReaction inserts a reaction of kind by userID on target
func SeedReaction(t testing.TB, db *gorm.DB, userID uint, target models.Target, kind models.ReactionKind) *models.Reaction {
	t.Helper()
	reaction := models.NewReaction(userID, target, kind, time.Now())
	require.NoError(t, db.Omit("ReactedBy", "Post", "Comment").Create(reaction).Error)
	return reaction
}

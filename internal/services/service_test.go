package services

import (
	"testing"
	"time"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	"github.com/anonto42/fb-post/backend/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 3, 9, 14, 30, 15, 123456000, time.UTC)

type fixture struct {
	svc    *FeedService
	db     *gorm.DB
	events *testutil.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	store := repositories.NewGormStore(db)
	users, err := NewUserDirectory(store.Users(), 16)
	require.NoError(t, err)

	recorder := &testutil.Recorder{}
	svc := NewFeedService(store, users, recorder, zap.NewNop())
	svc.now = func() time.Time { return fixedNow }
	return &fixture{svc: svc, db: db, events: recorder}
}

func (f *fixture) user(t *testing.T, name string) *models.User {
	return testutil.SeedUser(t, f.db, name)
}

func (f *fixture) reactionCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.Reaction{}).Count(&n).Error)
	return n
}

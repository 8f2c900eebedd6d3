package services

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
	"github.com/anonto42/fb-post/backend/internal/repositories"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultUserCacheSize is used when NewUserDirectory is given a size below one
const DefaultUserCacheSize = 1024

// UserDirectory resolves user ids to users in batches. Users never change,
// so resolved rows are kept in an LRU cache.
type UserDirectory struct {
	users repositories.UserRepository
	cache *lru.Cache[uint, models.User]
}

// NewUserDirectory creates a new UserDirectory
func NewUserDirectory(users repositories.UserRepository, size int) (*UserDirectory, error) {
	if size < 1 {
		size = DefaultUserCacheSize
	}
	cache, err := lru.New[uint, models.User](size)
	if err != nil {
		return nil, err
	}
	return &UserDirectory{users: users, cache: cache}, nil
}

// Lookup returns the users for ids. Cache misses are fetched with one query.
// Unknown ids are absent from the result.
func (d *UserDirectory) Lookup(ctx context.Context, ids []uint) (map[uint]models.User, error) {
	found := make(map[uint]models.User, len(ids))
	seen := make(map[uint]bool, len(ids))
	var missing []uint
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if user, ok := d.cache.Get(id); ok {
			found[id] = user
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return found, nil
	}

	users, err := d.users.GetUsersByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		d.cache.Add(user.ID, user)
		found[user.ID] = user
	}
	return found, nil
}

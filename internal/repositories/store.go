package repositories

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
	"gorm.io/gorm"
)

// Store groups the repositories over one database handle. A Store obtained
// inside Transaction is bound to that transaction.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Comments() CommentRepository
	Reactions() ReactionRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// GormStore implements Store over a gorm database or transaction
type GormStore struct {
	db        *gorm.DB
	users     *PostgresUserRepository
	posts     *PostgresPostRepository
	comments  *PostgresCommentRepository
	reactions *PostgresReactionRepository
}

// NewGormStore creates a new GormStore
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:        db,
		users:     NewPostgresUserRepository(db),
		posts:     NewPostgresPostRepository(db),
		comments:  NewPostgresCommentRepository(db),
		reactions: NewPostgresReactionRepository(db),
	}
}

func (s *GormStore) Users() UserRepository         { return s.users }
func (s *GormStore) Posts() PostRepository         { return s.posts }
func (s *GormStore) Comments() CommentRepository   { return s.comments }
func (s *GormStore) Reactions() ReactionRepository { return s.reactions }

// Transaction runs fn in a database transaction. fn's error rolls it back.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// Migrate creates or updates the four relations
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Reaction{},
	)
}

package repositories

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error)
	GetPostIDsByUserID(ctx context.Context, userID uint) ([]uint, error)
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
	DeletePost(ctx context.Context, id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a post. The owner row is not touched.
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByIDs retrieves the posts in ids ordered by id
func (r *PostgresPostRepository) GetPostsByIDs(ctx context.Context, ids []uint) ([]models.Post, error) {
	var posts []models.Post
	if len(ids) == 0 {
		return posts, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostIDsByUserID retrieves the ids of a user's posts in creation order
func (r *PostgresPostRepository) GetPostIDsByUserID(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("posted_by_id = ?", userID).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// ExistingIDs returns the subset of ids that exist
func (r *PostgresPostRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	found := []uint{}
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

// Exists checks whether a post with id exists
func (r *PostgresPostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeletePost deletes a post together with its comments, replies and every
// reaction on any of them. Children go first so the delete does not depend
// on the foreign keys being created with ON DELETE CASCADE. Call it inside a
// transaction.
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	commentIDs := db.Model(&models.Comment{}).Select("id").Where("post_id = ?", id)
	replyIDs := db.Model(&models.Comment{}).Select("id").Where("parent_comment_id IN (?)", commentIDs)

	steps := []struct {
		model interface{}
		query string
		arg   interface{}
	}{
		{&models.Reaction{}, "comment_id IN (?)", replyIDs},
		{&models.Comment{}, "parent_comment_id IN (?)", commentIDs},
		{&models.Reaction{}, "comment_id IN (?)", commentIDs},
		{&models.Reaction{}, "post_id = ?", id},
		{&models.Comment{}, "post_id = ?", id},
	}
	for _, step := range steps {
		if err := db.Where(step.query, step.arg).Delete(step.model).Error; err != nil {
			return err
		}
	}

	res := db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

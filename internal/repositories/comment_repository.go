package repositories

import (
	"context"

	"github.com/anonto42/fb-post/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository defines the interface for comment and reply data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id uint) (*models.Comment, error)
	GetCommentsByPostIDs(ctx context.Context, postIDs []uint) ([]models.Comment, error)
	GetRepliesByParentIDs(ctx context.Context, parentIDs []uint) ([]models.Comment, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a comment or a reply
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// GetCommentByID retrieves a comment by ID
func (r *PostgresCommentRepository) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostIDs retrieves the top-level comments of all posts in postIDs with one query
func (r *PostgresCommentRepository) GetCommentsByPostIDs(ctx context.Context, postIDs []uint) ([]models.Comment, error) {
	var comments []models.Comment
	if len(postIDs) == 0 {
		return comments, nil
	}
	if err := r.db.WithContext(ctx).Where("post_id IN ?", postIDs).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetRepliesByParentIDs retrieves the replies of all comments in parentIDs with one query
func (r *PostgresCommentRepository) GetRepliesByParentIDs(ctx context.Context, parentIDs []uint) ([]models.Comment, error) {
	var replies []models.Comment
	if len(parentIDs) == 0 {
		return replies, nil
	}
	if err := r.db.WithContext(ctx).Where("parent_comment_id IN ?", parentIDs).Order("id").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// Exists checks whether a comment or reply with id exists
func (r *PostgresCommentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

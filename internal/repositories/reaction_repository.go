package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/anonto42/fb-post/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KindCount is one row of a per-kind histogram
type KindCount struct {
	Reaction models.ReactionKind
	Count    int64
}

// ReactionWithUser is a reaction joined with its reactor
type ReactionWithUser struct {
	UserID     uint
	Name       string
	ProfilePic string
	Reaction   models.ReactionKind
}

// ReactionRepository defines the interface for reaction data operations
type ReactionRepository interface {
	FindUserReaction(ctx context.Context, userID uint, target models.Target) (*models.Reaction, error)
	CreateReaction(ctx context.Context, reaction *models.Reaction) error
	UpdateReaction(ctx context.Context, id uint, kind models.ReactionKind, at time.Time) error
	DeleteReaction(ctx context.Context, id uint) error
	GetReactionsByTargets(ctx context.Context, kind models.TargetKind, ids []uint) ([]models.Reaction, error)
	GetReactionsWithUserByPostID(ctx context.Context, postID uint) ([]ReactionWithUser, error)
	CountAll(ctx context.Context) (int64, error)
	CountByKindForPost(ctx context.Context, postID uint) ([]KindCount, error)
	PostIDsReactedByUser(ctx context.Context, userID uint) ([]uint, error)
	PostIDsWithMorePositive(ctx context.Context, positive, negative []models.ReactionKind) ([]uint, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

func targetColumn(kind models.TargetKind) (string, error) {
	switch kind {
	case models.TargetPost:
		return "post_id", nil
	case models.TargetComment:
		return "comment_id", nil
	}
	return "", fmt.Errorf("unknown reaction target kind %q", kind)
}

// FindUserReaction returns the user's reaction on target, or nil when there is none
func (r *PostgresReactionRepository) FindUserReaction(ctx context.Context, userID uint, target models.Target) (*models.Reaction, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return nil, err
	}
	var reactions []models.Reaction
	err = r.db.WithContext(ctx).
		Where("reacted_by_id = ? AND "+column+" = ?", userID, target.ID).
		Limit(1).
		Find(&reactions).Error
	if err != nil || len(reactions) == 0 {
		return nil, err
	}
	return &reactions[0], nil
}

// CreateReaction inserts a reaction row
func (r *PostgresReactionRepository) CreateReaction(ctx context.Context, reaction *models.Reaction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(reaction).Error
}

// UpdateReaction switches the kind of an existing reaction and stamps it
func (r *PostgresReactionRepository) UpdateReaction(ctx context.Context, id uint, kind models.ReactionKind, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Reaction{}).Where("id = ?", id).
		Updates(map[string]interface{}{"reaction": kind, "reacted_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteReaction deletes a reaction by ID
func (r *PostgresReactionRepository) DeleteReaction(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Reaction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetReactionsByTargets retrieves every reaction on the given posts or comments with one query
func (r *PostgresReactionRepository) GetReactionsByTargets(ctx context.Context, kind models.TargetKind, ids []uint) ([]models.Reaction, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return nil, err
	}
	var reactions []models.Reaction
	if len(ids) == 0 {
		return reactions, nil
	}
	if err := r.db.WithContext(ctx).Where(column+" IN ?", ids).Order("id").Find(&reactions).Error; err != nil {
		return nil, err
	}
	return reactions, nil
}

// GetReactionsWithUserByPostID retrieves the reactions on a post together with their reactors
func (r *PostgresReactionRepository) GetReactionsWithUserByPostID(ctx context.Context, postID uint) ([]ReactionWithUser, error) {
	rows := []ReactionWithUser{}
	err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Select("users.id AS user_id, users.name AS name, users.profile_pic AS profile_pic, reactions.reaction AS reaction").
		Joins("JOIN users ON users.id = reactions.reacted_by_id").
		Where("reactions.post_id = ?", postID).
		Order("reactions.id").
		Scan(&rows).Error
	return rows, err
}

// CountAll counts every reaction row
func (r *PostgresReactionRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Reaction{}).Count(&count).Error
	return count, err
}

// CountByKindForPost groups a post's reactions by kind
func (r *PostgresReactionRepository) CountByKindForPost(ctx context.Context, postID uint) ([]KindCount, error) {
	rows := []KindCount{}
	err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Select("reaction, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("reaction").
		Order("reaction").
		Scan(&rows).Error
	return rows, err
}

// PostIDsReactedByUser returns the posts the user reacted to, ascending
func (r *PostgresReactionRepository) PostIDsReactedByUser(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Distinct("post_id").
		Where("reacted_by_id = ? AND post_id IS NOT NULL", userID).
		Order("post_id").
		Pluck("post_id", &ids).Error
	return ids, err
}

// PostIDsWithMorePositive returns the posts whose positive reactions
// strictly outnumber their negative ones, ascending
func (r *PostgresReactionRepository) PostIDsWithMorePositive(ctx context.Context, positive, negative []models.ReactionKind) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&models.Reaction{}).
		Where("post_id IS NOT NULL").
		Group("post_id").
		Having("SUM(CASE WHEN reaction IN ? THEN 1 ELSE 0 END) > SUM(CASE WHEN reaction IN ? THEN 1 ELSE 0 END)", positive, negative).
		Order("post_id").
		Pluck("post_id", &ids).Error
	return ids, err
}

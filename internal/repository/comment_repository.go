package repository

import (
	"context"

	"gorm.io/gorm"

	"hireflow/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *models.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByCandidate returns comments oldest first. The ascending order is
// load-bearing for the conversation view.
func (r *CommentRepository) ListByCandidate(ctx context.Context, candidateID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Preload("CreatedBy").
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireflow/internal/apperrors"
	"hireflow/internal/models"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Job not found")
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// FindWithAssignees loads the job along with the users notified about its
// candidates.
func (r *JobRepository) FindWithAssignees(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).Preload("Assignees").First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Job not found")
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

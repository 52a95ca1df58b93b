// Package repository implements persistence on top of GORM.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hireflow/internal/apperrors"
	"hireflow/internal/models"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFound("Candidate not found")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepository) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *CandidateRepository) Save(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// DeleteWithComments removes the candidate and its comments as a single
// transaction so a failure partway leaves no half-deleted state.
func (r *CandidateRepository) DeleteWithComments(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Candidate{}, "id = ?", id).Error
	})
}

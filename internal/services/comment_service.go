package services

import (
	"context"

	"hireflow/internal/apperrors"
	"hireflow/internal/models"
)

// CommentService owns the free-text annotations attached to candidates.
type CommentService struct {
	comments   CommentRepository
	candidates CandidateRepository
	users      UserRepository
}

func NewCommentService(comments CommentRepository, candidates CandidateRepository, users UserRepository) *CommentService {
	return &CommentService{
		comments:   comments,
		candidates: candidates,
		users:      users,
	}
}

// Create persists a comment authored by the given user on the candidate.
func (s *CommentService) Create(ctx context.Context, candidateID, text, authorID string) (*models.Comment, error) {
	if text == "" {
		return nil, apperrors.NewValidation("Text is required")
	}

	candidate, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:        text,
		CandidateID: candidate.ID,
		CreatedByID: author.ID,
		CreatedBy:   author,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.NewInternal("Error creating comment", err)
	}
	return comment, nil
}

// ListByCandidate returns the candidate's comments oldest first.
func (s *CommentService) ListByCandidate(ctx context.Context, candidateID string) ([]models.Comment, error) {
	comments, err := s.comments.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, apperrors.NewInternal("Error fetching comments", err)
	}
	return comments, nil
}

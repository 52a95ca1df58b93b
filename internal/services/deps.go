package services

import (
	"context"
	"io"

	"hireflow/internal/models"
	"hireflow/internal/storage"
)

// Repositories and collaborators the services depend on. Implementations
// live in internal/repository, internal/storage and internal/notify.

type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	FindByID(ctx context.Context, id string) (*models.Candidate, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error)
	Save(ctx context.Context, c *models.Candidate) error
	DeleteWithComments(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Comment, error)
}

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindWithAssignees(ctx context.Context, id string) (*models.Job, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// AssetStore persists uploaded binaries and serves them back by locator.
type AssetStore interface {
	Save(filename string, r io.Reader, category storage.Category) (string, error)
	Read(locator string) ([]byte, string, error)
	Remove(locator string) error
}

// Notifier delivers assignee emails. Implementations must never block the
// caller on delivery and never surface delivery errors.
type Notifier interface {
	NotifyCandidateUpload(assigneeEmail, candidateName, jobTitle string)
	NotifyStatusChange(assigneeEmail, candidateName, newStatus, jobTitle string)
}

// FileUpload is one incoming multipart file.
type FileUpload struct {
	Filename string
	Reader   io.Reader
}

// CandidateFiles groups the uploads accepted at candidate creation.
// CV is mandatory; the other two are optional.
type CandidateFiles struct {
	CV             *FileUpload
	CoverLetter    *FileUpload
	ProfilePicture *FileUpload
}

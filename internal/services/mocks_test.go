package services

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"hireflow/internal/models"
	"hireflow/internal/storage"
)

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCandidateRepo) FindByID(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *mockCandidateRepo) Save(ctx context.Context, c *models.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCandidateRepo) DeleteWithComments(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Comment, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type mockJobRepo struct {
	mock.Mock
}

func (m *mockJobRepo) FindByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobRepo) FindWithAssignees(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(filename string, r io.Reader, category storage.Category) (string, error) {
	args := m.Called(filename, r, category)
	return args.String(0), args.Error(1)
}

func (m *mockStore) Read(locator string) ([]byte, string, error) {
	args := m.Called(locator)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *mockStore) Remove(locator string) error {
	return m.Called(locator).Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyCandidateUpload(assigneeEmail, candidateName, jobTitle string) {
	m.Called(assigneeEmail, candidateName, jobTitle)
}

func (m *mockNotifier) NotifyStatusChange(assigneeEmail, candidateName, newStatus, jobTitle string) {
	m.Called(assigneeEmail, candidateName, newStatus, jobTitle)
}

package handlers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hireflow/internal/apperrors"
	"hireflow/internal/models"
)

// In-memory persistence used to exercise the full handler -> service path
// without a database.

type memData struct {
	mu         sync.Mutex
	candidates map[string]*models.Candidate
	comments   map[string]*models.Comment
	jobs       map[string]*models.Job
	users      map[string]*models.User
}

func newMemData() *memData {
	return &memData{
		candidates: map[string]*models.Candidate{},
		comments:   map[string]*models.Comment{},
		jobs:       map[string]*models.Job{},
		users:      map[string]*models.User{},
	}
}

type memCandidates struct{ d *memData }

func (r *memCandidates) Create(ctx context.Context, c *models.Candidate) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now()
	cp := *c
	r.d.candidates[c.ID] = &cp
	return nil
}

func (r *memCandidates) FindByID(ctx context.Context, id string) (*models.Candidate, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	c, ok := r.d.candidates[id]
	if !ok {
		return nil, apperrors.NewNotFound("Candidate not found")
	}
	cp := *c
	return &cp, nil
}

func (r *memCandidates) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var out []models.Candidate
	for _, c := range r.d.candidates {
		if c.JobID == jobID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCandidates) Save(ctx context.Context, c *models.Candidate) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	cp := *c
	r.d.candidates[c.ID] = &cp
	return nil
}

func (r *memCandidates) DeleteWithComments(ctx context.Context, id string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for cid, comment := range r.d.comments {
		if comment.CandidateID == id {
			delete(r.d.comments, cid)
		}
	}
	delete(r.d.candidates, id)
	return nil
}

type memComments struct{ d *memData }

func (r *memComments) Create(ctx context.Context, c *models.Comment) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	cp := *c
	r.d.comments[c.ID] = &cp
	return nil
}

func (r *memComments) ListByCandidate(ctx context.Context, candidateID string) ([]models.Comment, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	var out []models.Comment
	for _, c := range r.d.comments {
		if c.CandidateID == candidateID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type memJobs struct{ d *memData }

func (r *memJobs) FindByID(ctx context.Context, id string) (*models.Job, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	j, ok := r.d.jobs[id]
	if !ok {
		return nil, apperrors.NewNotFound("Job not found")
	}
	cp := *j
	return &cp, nil
}

func (r *memJobs) FindWithAssignees(ctx context.Context, id string) (*models.Job, error) {
	return r.FindByID(ctx, id)
}

type memUsers struct{ d *memData }

func (r *memUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	u, ok := r.d.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

// nopNotifier satisfies services.Notifier without delivering anything.
type nopNotifier struct{}

func (nopNotifier) NotifyCandidateUpload(assigneeEmail, candidateName, jobTitle string) {}

func (nopNotifier) NotifyStatusChange(assigneeEmail, candidateName, newStatus, jobTitle string) {}

package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"hireflow/internal/apperrors"
	"hireflow/internal/dtos"
	"hireflow/internal/metrics"
	"hireflow/internal/models"
	"hireflow/internal/storage"
)

// AssetKind selects which candidate asset to fetch.
type AssetKind string

const (
	AssetCV             AssetKind = "cv"
	AssetProfilePicture AssetKind = "profile_picture"
)

// CandidateService owns the candidate lifecycle: creation with file intake,
// status transitions, notes, deletion with comment cascade, and asset
// retrieval.
type CandidateService struct {
	candidates CandidateRepository
	jobs       JobRepository
	store      AssetStore
	notifier   Notifier
	log        *zap.Logger
}

func NewCandidateService(
	candidates CandidateRepository,
	jobs JobRepository,
	store AssetStore,
	notifier Notifier,
	log *zap.Logger,
) *CandidateService {
	return &CandidateService{
		candidates: candidates,
		jobs:       jobs,
		store:      store,
		notifier:   notifier,
		log:        log,
	}
}

// Create validates the submission, stores the uploaded files and persists
// the candidate with status "new". Assignee notification is a best-effort
// side effect; its failure never fails the creation.
func (s *CandidateService) Create(ctx context.Context, req *dtos.CandidateCreateRequest, files CandidateFiles) (*models.Candidate, error) {
	if req.Name == "" || req.JobID == "" || files.CV == nil {
		return nil, apperrors.NewValidation("Name, jobId, and CV file are required")
	}

	job, err := s.jobs.FindByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	education, err := parseRecordList(req.Education, "education")
	if err != nil {
		return nil, err
	}
	experience, err := parseRecordList(req.Experience, "experience")
	if err != nil {
		return nil, err
	}
	salary, err := parseSalary(req.DesiredSalary)
	if err != nil {
		return nil, err
	}

	// All validation passed; only now touch storage.
	var stored []string
	cleanup := func() {
		for _, locator := range stored {
			if rmErr := s.store.Remove(locator); rmErr != nil {
				s.log.Warn("failed to clean up stored asset", zap.String("locator", locator), zap.Error(rmErr))
			}
		}
	}

	cvLocator, err := s.store.Save(files.CV.Filename, files.CV.Reader, storage.CategoryCV)
	if err != nil {
		return nil, err
	}
	stored = append(stored, cvLocator)

	candidate := &models.Candidate{
		Name:             req.Name,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		CurrentAddress:   req.CurrentAddress,
		PermanentAddress: req.PermanentAddress,
		Education:        education,
		Experience:       experience,
		DesiredSalary:    salary,
		ReferredBy:       req.ReferredBy,
		Website:          req.Website,
		CVFilePath:       cvLocator,
		Status:           models.StatusNew,
		JobID:            job.ID,
	}
	if req.CreatedByID != "" {
		id := req.CreatedByID
		candidate.CreatedByID = &id
	}

	if files.CoverLetter != nil {
		locator, err := s.store.Save(files.CoverLetter.Filename, files.CoverLetter.Reader, storage.CategoryCoverLetter)
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, locator)
		candidate.CoverLetterPath = locator
	}

	if files.ProfilePicture != nil {
		locator, err := s.store.Save(files.ProfilePicture.Filename, files.ProfilePicture.Reader, storage.CategoryProfilePicture)
		if err != nil {
			cleanup()
			return nil, err
		}
		stored = append(stored, locator)
		candidate.ProfilePicture = locator
	}

	if err := s.candidates.Create(ctx, candidate); err != nil {
		cleanup()
		return nil, apperrors.NewInternal("Error creating candidate", err)
	}
	metrics.CandidatesCreated.Inc()

	s.notifyAssignees(ctx, job.ID, func(email, jobTitle string) {
		s.notifier.NotifyCandidateUpload(email, candidate.Name, jobTitle)
	})

	return candidate, nil
}

// ListByJob returns every candidate referencing the job.
func (s *CandidateService) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	candidates, err := s.candidates.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.NewInternal("Error fetching candidates", err)
	}
	return candidates, nil
}

// Get returns a single candidate by id.
func (s *CandidateService) Get(ctx context.Context, id string) (*models.Candidate, error) {
	return s.candidates.FindByID(ctx, id)
}

// UpdateStatus sets the candidate's pipeline status to the supplied value
// unconditionally: no transition graph and no membership check, matching
// the open-ended status set. Interview fields are only overwritten when
// supplied.
func (s *CandidateService) UpdateStatus(ctx context.Context, id string, req *dtos.StatusUpdateRequest) (*models.Candidate, error) {
	if req.Status == "" {
		return nil, apperrors.NewValidation("Status is required")
	}

	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate.Status = req.Status
	if req.InterviewDate != "" {
		t, err := time.Parse(time.RFC3339, req.InterviewDate)
		if err != nil {
			return nil, apperrors.NewValidation("interview_date must be an RFC 3339 timestamp")
		}
		candidate.InterviewDate = &t
	}
	if req.InterviewLink != "" {
		candidate.InterviewLink = req.InterviewLink
	}

	if err := s.candidates.Save(ctx, candidate); err != nil {
		return nil, apperrors.NewInternal("Error updating status", err)
	}
	metrics.StatusChanges.WithLabelValues(req.Status).Inc()

	s.notifyAssignees(ctx, candidate.JobID, func(email, jobTitle string) {
		s.notifier.NotifyStatusChange(email, candidate.Name, req.Status, jobTitle)
	})

	return candidate, nil
}

// UpdateNotes replaces the free-text notes on the candidate.
func (s *CandidateService) UpdateNotes(ctx context.Context, id, notes string) (*models.Candidate, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate.Notes = notes
	if err := s.candidates.Save(ctx, candidate); err != nil {
		return nil, apperrors.NewInternal("Error updating notes", err)
	}
	return candidate, nil
}

// Delete removes the candidate and its comments in one transaction, then
// best-effort removes the stored assets.
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.candidates.DeleteWithComments(ctx, id); err != nil {
		return apperrors.NewInternal("Error deleting candidate", err)
	}
	metrics.CandidatesDeleted.Inc()

	for _, locator := range []string{candidate.CVFilePath, candidate.CoverLetterPath, candidate.ProfilePicture} {
		if locator == "" {
			continue
		}
		if err := s.store.Remove(locator); err != nil {
			s.log.Warn("failed to remove candidate asset",
				zap.String("candidate_id", id),
				zap.String("locator", locator),
				zap.Error(err))
		}
	}
	return nil
}

// FetchAsset returns the raw bytes and content type for the candidate's CV
// or profile picture.
func (s *CandidateService) FetchAsset(ctx context.Context, id string, kind AssetKind) ([]byte, string, error) {
	candidate, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var locator string
	switch kind {
	case AssetCV:
		locator = candidate.CVFilePath
		if locator == "" {
			return nil, "", apperrors.NewNotFound("CV not found")
		}
	case AssetProfilePicture:
		locator = candidate.ProfilePicture
		if locator == "" {
			return nil, "", apperrors.NewNotFound("Profile picture not found")
		}
	default:
		return nil, "", apperrors.NewValidationf("Unknown asset kind %q", string(kind))
	}

	return s.store.Read(locator)
}

// notifyAssignees resolves the job's assignees and applies fn to each. Any
// failure here is logged and swallowed: notification never fails the write
// that triggered it.
func (s *CandidateService) notifyAssignees(ctx context.Context, jobID string, fn func(email, jobTitle string)) {
	job, err := s.jobs.FindWithAssignees(ctx, jobID)
	if err != nil {
		s.log.Warn("failed to resolve job assignees for notification",
			zap.String("job_id", jobID),
			zap.Error(err))
		return
	}
	for _, assignee := range job.Assignees {
		fn(assignee.Email, job.Title)
	}
}

// parseRecordList validates that raw is a JSON list of record-like objects.
// No inner schema is enforced beyond "list of objects".
func parseRecordList(raw, field string) (datatypes.JSON, error) {
	if raw == "" {
		return nil, nil
	}
	var records []map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, apperrors.NewValidationf("%s must be a JSON list of objects", field)
	}
	return datatypes.JSON(raw), nil
}

func parseSalary(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewValidation("desired_salary must be a number")
	}
	if v < 0 {
		return nil, apperrors.NewValidation("desired_salary must not be negative")
	}
	return &v, nil
}

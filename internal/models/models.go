package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Candidate pipeline statuses. The set is open-ended: status changes are
// stored as supplied, and any status may follow any other.
const (
	StatusNew                = "new"
	StatusReviewing          = "reviewing"
	StatusInterviewScheduled = "interview_scheduled"
	StatusInterviewCompleted = "interview_completed"
	StatusOffer              = "offer"
	StatusHired              = "hired"
	StatusRejected           = "rejected"
)

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Job struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"not null" json:"title"`

	// Assignees receive an email on every candidate lifecycle event.
	// GORM needs Preload() to fill this.
	Assignees []User `gorm:"many2many:job_assignees" json:"assignees,omitempty"`

	Candidates []Candidate `json:"candidates,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type Candidate struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name      string `gorm:"not null" json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CurrentAddress   string `json:"current_address"`
	PermanentAddress string `json:"permanent_address"`

	// Free-form lists of record-like objects; no inner schema is enforced.
	Education  datatypes.JSON `gorm:"type:jsonb" json:"education,omitempty"`
	Experience datatypes.JSON `gorm:"type:jsonb" json:"experience,omitempty"`

	DesiredSalary *float64 `json:"desired_salary,omitempty"`
	ReferredBy    string   `json:"referred_by"`
	Website       string   `json:"website"`
	Notes         string   `gorm:"type:text" json:"notes"`

	// Asset locators. The CV locator is always set once creation succeeds.
	CVFilePath      string `gorm:"not null" json:"cv_file_path"`
	CoverLetterPath string `json:"cover_letter_path"`
	ProfilePicture  string `json:"profile_picture"`

	Status        string     `gorm:"default:'new'" json:"status"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	InterviewLink string     `json:"interview_link"`

	JobID string `gorm:"type:uuid;not null;index" json:"job_id"`
	Job   *Job   `json:"job,omitempty"`

	CreatedByID *string `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedBy   *User   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	Comments []Comment `json:"comments,omitempty"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Comment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Text string `gorm:"type:text;not null" json:"text"`

	CreatedByID string `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`

	CandidateID string `gorm:"type:uuid;not null;index" json:"candidate_id"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

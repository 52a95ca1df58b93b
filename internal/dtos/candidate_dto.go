package dtos

// CandidateCreateRequest carries the text fields of the multipart candidate
// submission. Education, Experience and DesiredSalary arrive as serialized
// text and are parsed by the service.
type CandidateCreateRequest struct {
	Name             string `form:"name"`
	FirstName        string `form:"first_name"`
	LastName         string `form:"last_name"`
	Email            string `form:"email"`
	Phone            string `form:"phone"`
	CurrentAddress   string `form:"current_address"`
	PermanentAddress string `form:"permanent_address"`
	Education        string `form:"education"`
	Experience       string `form:"experience"`
	DesiredSalary    string `form:"desired_salary"`
	ReferredBy       string `form:"referred_by"`
	Website          string `form:"website"`

	// Set by the handler, not bound from the form.
	JobID       string `form:"-"`
	CreatedByID string `form:"-"`
}

type StatusUpdateRequest struct {
	Status        string `json:"status" binding:"required"`
	InterviewDate string `json:"interview_date"`
	InterviewLink string `json:"interview_link"`
}

type NotesUpdateRequest struct {
	Notes string `json:"notes"`
}

type CommentCreateRequest struct {
	Text string `json:"text"`
}

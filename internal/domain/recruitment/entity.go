package recruitment

import (
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type Status string

const (
	StatusScreening          Status = "Screening"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusFinalInterview     Status = "Final Interview"
	StatusHired              Status = "Hired"
	StatusRejected           Status = "Rejected"
)

type Candidate struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	PositionApplied string     `json:"position_applied"`
	Department      string     `json:"department"`
	ExperienceYears float64    `json:"experience_years"`
	Status          Status     `json:"status"`
	AppliedDate     date.Date  `json:"applied_date"`
	ResumeURL       string     `json:"resume_url"`
	Skills          []string   `json:"skills"`
	ExpectedSalary  float64    `json:"expected_salary"`
	InterviewDate   *date.Date `json:"interview_date"`
	Interviewer     *string    `json:"interviewer"`
	Notes           string     `json:"notes"`
}

// IsOpen reports whether the candidate is still in the pipeline.
func (c Candidate) IsOpen() bool {
	return c.Status != StatusHired && c.Status != StatusRejected
}

// IsInterviewing covers every interview stage.
func (c Candidate) IsInterviewing() bool {
	return strings.Contains(string(c.Status), "Interview")
}

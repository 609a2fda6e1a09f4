package training

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusScheduled  Status = "Scheduled"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

type ParticipantStatus string

const (
	ParticipantEnrolled  ParticipantStatus = "Enrolled"
	ParticipantAttending ParticipantStatus = "Attending"
	ParticipantCompleted ParticipantStatus = "Completed"
	ParticipantCancelled ParticipantStatus = "Cancelled"
)

type Participant struct {
	EmployeeID     int64             `json:"employee_id"`
	EmployeeName   string            `json:"employee_name"`
	EnrollmentDate date.Date         `json:"enrollment_date"`
	Status         ParticipantStatus `json:"status"`
}

// Training is a course with a fixed capacity. Cancelled participants stay
// listed but do not take a seat.
type Training struct {
	ID                 int64           `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Category           string          `json:"category"`
	Instructor         string          `json:"instructor"`
	StartDate          date.Date       `json:"start_date"`
	EndDate            date.Date       `json:"end_date"`
	DurationHours      float64         `json:"duration_hours"`
	MaxParticipants    int             `json:"max_participants"`
	Location           string          `json:"location"`
	Status             Status          `json:"status"`
	Participants       []Participant   `json:"participants"`
	CostPerParticipant decimal.Decimal `json:"cost_per_participant"`
	TotalCost          decimal.Decimal `json:"total_cost"`
}

// IsOpen reports whether the training accepts enrollments.
func (t Training) IsOpen() bool {
	return t.Status == StatusScheduled || t.Status == StatusInProgress
}

// Seated counts participants holding a seat.
func (t Training) Seated() int {
	n := 0
	for _, p := range t.Participants {
		if p.Status != ParticipantCancelled {
			n++
		}
	}
	return n
}

// Participant returns the index of employeeID in the roster, or -1.
func (t Training) Participant(employeeID int64) int {
	for i, p := range t.Participants {
		if p.EmployeeID == employeeID {
			return i
		}
	}
	return -1
}

// CancelledSlot returns the index of the first cancelled participant, or -1.
func (t Training) CancelledSlot() int {
	for i, p := range t.Participants {
		if p.Status == ParticipantCancelled {
			return i
		}
	}
	return -1
}

// RecalculateCost sets TotalCost from the seated participants.
func (t *Training) RecalculateCost() {
	t.TotalCost = t.CostPerParticipant.Mul(decimal.NewFromInt(int64(t.Seated())))
}

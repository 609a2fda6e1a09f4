package performance

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type GoalStatus string

const (
	GoalCompleted          GoalStatus = "Completed"
	GoalPartiallyCompleted GoalStatus = "Partially Completed"
	GoalNotStarted         GoalStatus = "Not Started"
)

// TopPerformerRating is the overall rating from which a review counts as a
// top performer.
const TopPerformerRating = 4.5

// Goal scores run 0 to 5.
type Goal struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TargetDate  date.Date  `json:"target_date"`
	Status      GoalStatus `json:"status"`
	Score       float64    `json:"score"`
}

// Performance is a review. All ratings run 0 to 5.
type Performance struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	ReviewPeriod     string    `json:"review_period"`
	Goals            []Goal    `json:"goals"`
	OverallRating    float64   `json:"overall_rating"`
	TechnicalSkills  float64   `json:"technical_skills"`
	Communication    float64   `json:"communication"`
	Teamwork         float64   `json:"teamwork"`
	Leadership       float64   `json:"leadership"`
	ManagerFeedback  string    `json:"manager_feedback"`
	EmployeeFeedback string    `json:"employee_feedback"`
	ReviewedBy       int64     `json:"reviewed_by"`
	ReviewDate       date.Date `json:"review_date"`
}

func (p Performance) IsTopPerformer() bool {
	return p.OverallRating >= TopPerformerRating
}

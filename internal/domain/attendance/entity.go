package attendance

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
)

// TimeLog is one employee's attendance for a day. CheckIn and CheckOut are
// wall-clock strings ("09:05") and are nil when the employee was absent.
type TimeLog struct {
	ID            int64     `json:"id"`
	EmployeeID    int64     `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	Date          date.Date `json:"date"`
	CheckIn       *string   `json:"check_in"`
	CheckOut      *string   `json:"check_out"`
	BreakDuration float64   `json:"break_duration"` // minutes
	TotalHours    float64   `json:"total_hours"`
	OvertimeHours float64   `json:"overtime_hours"`
	Status        Status    `json:"status"`
}

// Attended reports whether the employee showed up, late or not.
func (t TimeLog) Attended() bool {
	return t.Status == StatusPresent || t.Status == StatusLate
}

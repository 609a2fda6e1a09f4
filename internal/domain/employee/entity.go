package employee

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type Employee struct {
	ID         int64     `json:"id"`
	EmpCode    string    `json:"emp_code"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Status     Status    `json:"status"`
	HireDate   date.Date `json:"hire_date"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	ManagerID  *int64    `json:"manager_id"`
	Salary     float64   `json:"salary"` // annual
	Avatar     *string   `json:"avatar,omitempty"`
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsActive reports whether the employee counts towards headcount. Any status
// other than Active is treated as inactive.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}

// Filter narrows an employee listing. Empty fields match everything; set
// fields combine with AND.
type Filter struct {
	Query      string `json:"q,omitempty"` // name, email, emp_code, position
	Department string `json:"department,omitempty"`
	Status     string `json:"status,omitempty"`
}

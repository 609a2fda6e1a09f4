package leave

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Type string

const (
	TypeAnnual    Type = "Annual Leave"
	TypeSick      Type = "Sick Leave"
	TypePersonal  Type = "Personal Leave"
	TypeEmergency Type = "Emergency Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
)

// Types lists the accepted leave categories.
var Types = []Type{TypeAnnual, TypeSick, TypePersonal, TypeEmergency, TypeMaternity, TypePaternity}

// MinReasonLength is the shortest reason accepted at submission.
const MinReasonLength = 10

// Leave is a leave request. EmployeeName is a display snapshot taken at
// submission; EmployeeID is authoritative.
type Leave struct {
	ID              int64      `json:"id"`
	EmployeeID      int64      `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	Type            Type       `json:"type"`
	StartDate       date.Date  `json:"start_date"`
	EndDate         date.Date  `json:"end_date"`
	Days            int        `json:"days"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	AppliedDate     date.Date  `json:"applied_date"`
	ApprovedBy      *int64     `json:"approved_by"`
	ApprovedDate    *date.Date `json:"approved_date"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

// IsDecided reports whether the request has left Pending.
func (l Leave) IsDecided() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}

// Filter narrows a leave listing. Zero values match everything.
type Filter struct {
	Status     string
	Type       string
	EmployeeID int64
}

// Match reports whether l passes every set field. Status and type compare
// case-insensitively.
func (f Filter) Match(l Leave) bool {
	return aggregate.EqualFold(string(l.Status), f.Status) &&
		aggregate.EqualFold(string(l.Type), f.Type) &&
		(f.EmployeeID == 0 || l.EmployeeID == f.EmployeeID)
}

package leave

import (
	"strconv"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Type       string `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "employee_id is required")
	}

	if validator.IsEmpty(r.Type) {
		errs.Add("type", "type is required")
	} else if !IsValidType(r.Type) {
		errs.Add("type", "type must be one of the supported leave types")
	}

	start, startOK := validator.RequiredDate(&errs, "start_date", r.StartDate)
	end, endOK := validator.RequiredDate(&errs, "end_date", r.EndDate)
	if startOK && endOK && end.Before(start) {
		errs.Add("end_date", "end_date must be on or after start_date")
	}

	if !validator.MinLength(r.Reason, MinReasonLength) {
		errs.Add("reason", "reason must be at least "+strconv.Itoa(MinReasonLength)+" characters")
	}

	return errs.Err()
}

type ApproveLeaveRequest struct {
	LeaveID    int64 `json:"-"`
	ReviewerID int64 `json:"reviewer_id"`
}

func (r *ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveID <= 0 {
		errs.Add("leave_id", "leave_id is required")
	}
	if r.ReviewerID <= 0 {
		errs.Add("reviewer_id", "reviewer_id is required")
	}

	return errs.Err()
}

type RejectLeaveRequest struct {
	LeaveID    int64  `json:"-"`
	ReviewerID int64  `json:"reviewer_id"`
	Reason     string `json:"reason"`
}

func (r *RejectLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveID <= 0 {
		errs.Add("leave_id", "leave_id is required")
	}
	if r.ReviewerID <= 0 {
		errs.Add("reviewer_id", "reviewer_id is required")
	}
	if validator.IsEmpty(r.Reason) {
		errs.Add("reason", "reason is required")
	}

	return errs.Err()
}

// IsValidType reports whether t names a supported leave category.
func IsValidType(t string) bool {
	for _, known := range Types {
		if string(known) == t {
			return true
		}
	}
	return false
}

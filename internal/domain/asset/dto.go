package asset

import (
	"encoding/json"
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
)

type AssignAssetRequest struct {
	AssetID            int64   `json:"-"`
	AssignmentType     string  `json:"assignment_type"`
	EmployeeID         *int64  `json:"employee_id,omitempty"`
	Department         string  `json:"department,omitempty"`
	AssignedDate       string  `json:"assigned_date"`
	AssignedBy         int64   `json:"assigned_by"`
	Notes              string  `json:"notes,omitempty"`
	ExpectedReturnDate *string `json:"expected_return_date,omitempty"`
}

// Target returns the assignment type, defaulting to employee.
func (r *AssignAssetRequest) Target() AssignmentType {
	if validator.IsEmpty(r.AssignmentType) {
		return AssignToEmployee
	}
	return AssignmentType(r.AssignmentType)
}

func (r *AssignAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AssetID <= 0 {
		errs.Add("asset_id", "asset_id is required")
	}

	switch r.Target() {
	case AssignToEmployee:
		if r.EmployeeID == nil || *r.EmployeeID <= 0 {
			errs.Add("employee_id", "employee_id is required for employee assignments")
		}
	case AssignToDepartment:
		if validator.IsEmpty(r.Department) {
			errs.Add("department", "department is required for department assignments")
		}
	default:
		errs.Add("assignment_type", "assignment_type must be employee or department")
	}

	if r.AssignedBy <= 0 {
		errs.Add("assigned_by", "assigned_by is required")
	}

	assigned, ok := validator.RequiredDate(&errs, "assigned_date", r.AssignedDate)
	expected, expectedOK := validator.OptionalDate(&errs, "expected_return_date", r.ExpectedReturnDate)
	if ok && expectedOK && expected != nil && expected.Before(assigned) {
		errs.Add("expected_return_date", "expected_return_date must be on or after assigned_date")
	}

	return errs.Err()
}

type ReturnAssetRequest struct {
	AssignmentID int64  `json:"-"`
	ReturnDate   string `json:"return_date"`
	Condition    string `json:"condition"`
	Notes        string `json:"notes,omitempty"`
}

func (r *ReturnAssetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AssignmentID <= 0 {
		errs.Add("assignment_id", "assignment_id is required")
	}
	validator.RequiredDate(&errs, "return_date", r.ReturnDate)
	if !isCondition(r.Condition) {
		errs.Add("condition", "condition must be one of Excellent, Good, Fair, Poor")
	}

	return errs.Err()
}

// PartsList accepts either a JSON array or a comma-separated string.
type PartsList []string

func (p *PartsList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*p = ParseParts(strings.Join(list, ","))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParseParts(s)
	return nil
}

// ParseParts splits a comma-separated list, dropping blanks.
func ParseParts(s string) []string {
	parts := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

type ScheduleMaintenanceRequest struct {
	AssetID         int64     `json:"-"`
	MaintenanceType string    `json:"maintenance_type"`
	Description     string    `json:"description"`
	ScheduledDate   string    `json:"scheduled_date"`
	Priority        string    `json:"priority"`
	Technician      string    `json:"technician,omitempty"`
	EstimatedCost   *float64  `json:"estimated_cost,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	PartsUsed       PartsList `json:"parts_used,omitempty"`
}

func (r *ScheduleMaintenanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AssetID <= 0 {
		errs.Add("asset_id", "asset_id is required")
	}
	if !isMaintenanceType(r.MaintenanceType) {
		errs.Add("maintenance_type", "maintenance_type must be one of Preventive, Corrective, Emergency")
	}
	if validator.IsEmpty(r.Description) {
		errs.Add("description", "description is required")
	}
	validator.RequiredDate(&errs, "scheduled_date", r.ScheduledDate)
	if !isPriority(r.Priority) {
		errs.Add("priority", "priority must be one of Low, Medium, High, Critical")
	}
	if r.EstimatedCost != nil && *r.EstimatedCost < 0 {
		errs.Add("estimated_cost", "estimated_cost must be non-negative")
	}

	return errs.Err()
}

type CompleteMaintenanceRequest struct {
	LogID               int64    `json:"-"`
	CompletedDate       string   `json:"completed_date"`
	Cost                float64  `json:"cost"`
	DowntimeHours       *float64 `json:"downtime_hours,omitempty"`
	NextMaintenanceDate *string  `json:"next_maintenance_date,omitempty"`
}

func (r *CompleteMaintenanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LogID <= 0 {
		errs.Add("log_id", "log_id is required")
	}
	completed, ok := validator.RequiredDate(&errs, "completed_date", r.CompletedDate)
	if r.Cost < 0 {
		errs.Add("cost", "cost must be non-negative")
	}
	if r.DowntimeHours != nil && *r.DowntimeHours < 0 {
		errs.Add("downtime_hours", "downtime_hours must be non-negative")
	}
	next, nextOK := validator.OptionalDate(&errs, "next_maintenance_date", r.NextMaintenanceDate)
	if ok && nextOK && next != nil && next.Before(completed) {
		errs.Add("next_maintenance_date", "next_maintenance_date must be on or after completed_date")
	}

	return errs.Err()
}

func isCondition(s string) bool {
	for _, c := range Conditions {
		if string(c) == s {
			return true
		}
	}
	return false
}

func isMaintenanceType(s string) bool {
	for _, t := range MaintenanceTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

func isPriority(s string) bool {
	for _, p := range Priorities {
		if string(p) == s {
			return true
		}
	}
	return false
}

package asset

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
)

type Status string

const (
	StatusAvailable        Status = "Available"
	StatusAssigned         Status = "Assigned"
	StatusUnderMaintenance Status = "Under Maintenance"
	StatusDisposed         Status = "Disposed"
)

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

var Conditions = []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}

// AssignedTo is the display snapshot of the current holder. EmployeeID and
// EmployeeName are nil for department assignments.
type AssignedTo struct {
	EmployeeID   *int64    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name"`
	Department   string    `json:"department"`
	AssignedDate date.Date `json:"assigned_date"`
}

// Asset is a tracked company asset. AssignedTo is set iff Status is
// Assigned. CurrentValue never exceeds PurchasePrice.
type Asset struct {
	ID               int64       `json:"id"`
	AssetCode        string      `json:"asset_code"`
	Name             string      `json:"name"`
	Category         string      `json:"category"`
	Brand            string      `json:"brand"`
	Model            string      `json:"model"`
	SerialNumber     string      `json:"serial_number"`
	Status           Status      `json:"status"`
	Condition        Condition   `json:"condition"`
	PurchaseDate     date.Date   `json:"purchase_date"`
	PurchasePrice    float64     `json:"purchase_price"`
	WarrantyExpiry   *date.Date  `json:"warranty_expiry"`
	Location         string      `json:"location"`
	AssignedTo       *AssignedTo `json:"assigned_to"`
	Supplier         string      `json:"supplier"`
	Notes            string      `json:"notes"`
	LastMaintenance  *date.Date  `json:"last_maintenance"`
	NextMaintenance  *date.Date  `json:"next_maintenance"`
	DepreciationRate float64     `json:"depreciation_rate"`
	CurrentValue     float64     `json:"current_value"`
}

// Depreciation is the value lost since purchase.
func (a Asset) Depreciation() float64 {
	return a.PurchasePrice - a.CurrentValue
}

type AssignmentType string

const (
	AssignToEmployee   AssignmentType = "employee"
	AssignToDepartment AssignmentType = "department"
)

type AssignmentStatus string

const (
	AssignmentActive           AssignmentStatus = "Active"
	AssignmentReturned         AssignmentStatus = "Returned"
	AssignmentUnderMaintenance AssignmentStatus = "Under Maintenance"
)

// AssetAssignment records one hand-over of an asset. An asset has at most
// one Active assignment. An assignment is Under Maintenance while its asset
// is being serviced and becomes Active again afterwards.
type AssetAssignment struct {
	ID                 int64            `json:"id"`
	AssetID            int64            `json:"asset_id"`
	AssetCode          string           `json:"asset_code"`
	AssetName          string           `json:"asset_name"`
	AssignmentType     AssignmentType   `json:"assignment_type"`
	EmployeeID         *int64           `json:"employee_id"`
	EmployeeName       *string          `json:"employee_name"`
	Department         string           `json:"department"`
	AssignedDate       date.Date        `json:"assigned_date"`
	AssignedBy         int64            `json:"assigned_by"`
	AssignedByName     string           `json:"assigned_by_name"`
	Status             AssignmentStatus `json:"status"`
	Notes              string           `json:"notes"`
	ExpectedReturnDate *date.Date       `json:"expected_return_date"`
	ReturnDate         *date.Date       `json:"return_date"`
	ReturnCondition    *Condition       `json:"return_condition"`
	ReturnNotes        *string          `json:"return_notes"`
}

// Holder rebuilds the asset snapshot for this assignment.
func (a AssetAssignment) Holder() *AssignedTo {
	return &AssignedTo{
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
		AssignedDate: a.AssignedDate,
	}
}

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "Preventive"
	MaintenanceCorrective MaintenanceType = "Corrective"
	MaintenanceEmergency  MaintenanceType = "Emergency"
)

var MaintenanceTypes = []MaintenanceType{MaintenancePreventive, MaintenanceCorrective, MaintenanceEmergency}

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceInProgress MaintenanceStatus = "In Progress"
	MaintenanceCompleted  MaintenanceStatus = "Completed"
	MaintenanceFailed     MaintenanceStatus = "Failed"
	MaintenanceCancelled  MaintenanceStatus = "Cancelled"
)

var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceScheduled:  {MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled, MaintenanceFailed},
	MaintenanceInProgress: {MaintenanceCompleted, MaintenanceFailed},
}

// MaintenanceLog is a scheduled or performed service. CompletedDate is set
// only when Status is Completed.
type MaintenanceLog struct {
	ID              int64             `json:"id"`
	AssetID         int64             `json:"asset_id"`
	AssetCode       string            `json:"asset_code"`
	AssetName       string            `json:"asset_name"`
	MaintenanceType MaintenanceType   `json:"maintenance_type"`
	Description     string            `json:"description"`
	ScheduledDate   date.Date         `json:"scheduled_date"`
	CompletedDate   *date.Date        `json:"completed_date"`
	Technician      string            `json:"technician"`
	Cost            float64           `json:"cost"`
	Status          MaintenanceStatus `json:"status"`
	Notes           string            `json:"notes"`
	NextMaintenance *date.Date        `json:"next_maintenance"`
	DowntimeHours   *float64          `json:"downtime_hours"`
	PartsUsed       []string          `json:"parts_used"`
	Priority        Priority          `json:"priority"`
}

// CanTransition reports whether the log may move to next.
func (m MaintenanceLog) CanTransition(next MaintenanceStatus) bool {
	for _, s := range maintenanceTransitions[m.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsOpen reports whether the log is still Scheduled or In Progress.
func (m MaintenanceLog) IsOpen() bool {
	return m.Status == MaintenanceScheduled || m.Status == MaintenanceInProgress
}

// Filter narrows an asset listing. Query matches name, asset code, brand and
// model.
type Filter struct {
	Query    string
	Category string
	Status   string
}

func (f Filter) Match(a Asset) bool {
	return aggregate.MatchesAny(f.Query, a.Name, a.AssetCode, a.Brand, a.Model) &&
		aggregate.EqualFold(a.Category, f.Category) &&
		aggregate.EqualFold(string(a.Status), f.Status)
}

// Detail is an asset with its full history.
type Detail struct {
	Asset       Asset             `json:"asset"`
	Assignments []AssetAssignment `json:"assignments"`
	Maintenance []MaintenanceLog  `json:"maintenance"`
}

package dashboard

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/shopspring/decimal"
)

// ========== HOME KPIs ==========

// KPIResponse is the headline row of the home dashboard
type KPIResponse struct {
	Headcount            int             `json:"headcount"`
	TurnoverRate         float64         `json:"turnover_rate"` // non-active / total x 100
	PendingLeaves        int             `json:"pending_leaves"`
	TrainingsThisMonth   int             `json:"trainings_this_month"` // Scheduled or In Progress
	PayrollProcessed     decimal.Decimal `json:"payroll_processed"`    // sum of net pay
	OpenPositions        int             `json:"open_positions"`
	AvgPerformanceRating float64         `json:"avg_performance_rating"`
	BenefitsCost         decimal.Decimal `json:"benefits_cost"`
}

// ========== EMPLOYEES ==========

type EmployeeSummaryResponse struct {
	Total        int               `json:"total"`
	Active       int               `json:"active"`
	Inactive     int               `json:"inactive"`
	ByDepartment []aggregate.Group `json:"by_department"`
}

// ========== LEAVES ==========

type LeaveSummaryResponse struct {
	Total        int               `json:"total"`
	Pending      int               `json:"pending"`
	Approved     int               `json:"approved"`
	Rejected     int               `json:"rejected"`
	ApprovedDays int               `json:"approved_days"`
	ByType       []aggregate.Group `json:"by_type"` // Sum is requested days
}

// ========== ATTENDANCE ==========

type AttendanceSummaryResponse struct {
	Entries        int     `json:"entries"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	Absent         int     `json:"absent"`
	TotalHours     float64 `json:"total_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
	AttendanceRate float64 `json:"attendance_rate"` // present / entries x 100
}

// ========== PAYROLL ==========

type PayrollSummaryResponse struct {
	Slips           int               `json:"slips"`
	TotalGross      decimal.Decimal   `json:"total_gross"`
	TotalNet        decimal.Decimal   `json:"total_net"`
	TotalDeductions decimal.Decimal   `json:"total_deductions"`
	TotalOvertime   decimal.Decimal   `json:"total_overtime"`
	ByMonth         []aggregate.Group `json:"by_month"` // Sum is net pay
}

// ========== RECRUITMENT ==========

type RecruitmentSummaryResponse struct {
	Total        int               `json:"total"`
	Screening    int               `json:"screening"`
	Interviewing int               `json:"interviewing"`
	Hired        int               `json:"hired"`
	Rejected     int               `json:"rejected"`
	Open         int               `json:"open"`
	ByDepartment []aggregate.Group `json:"by_department"`
}

// ========== PERFORMANCE ==========

type PerformanceSummaryResponse struct {
	Reviews            int     `json:"reviews"`
	AverageRating      float64 `json:"average_rating"`
	Goals              int     `json:"goals"`
	CompletedGoals     int     `json:"completed_goals"`
	GoalCompletionRate float64 `json:"goal_completion_rate"`
	TopPerformers      int     `json:"top_performers"` // overall rating >= 4.5
}

// ========== TRAINING ==========

type TrainingSummaryResponse struct {
	Total        int             `json:"total"`
	Active       int             `json:"active"` // Scheduled or In Progress
	Completed    int             `json:"completed"`
	Participants int             `json:"participants"`
	Capacity     int             `json:"capacity"`
	Utilisation  float64         `json:"utilisation"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// ========== BENEFITS ==========

type BenefitsSummaryResponse struct {
	EnrolledEmployees    int             `json:"enrolled_employees"`
	TotalMonthlyCost     decimal.Decimal `json:"total_monthly_cost"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	CompanyContribution  decimal.Decimal `json:"company_contribution"`
	CompanyShare         float64         `json:"company_share"` // company / total x 100
}

// ========== ASSETS ==========

// AssetReportResponse backs the asset reports page
type AssetReportResponse struct {
	Total               int               `json:"total"`
	Assigned            int               `json:"assigned"`
	Available           int               `json:"available"`
	UnderMaintenance    int               `json:"under_maintenance"`
	Disposed            int               `json:"disposed"`
	TotalValue          float64           `json:"total_value"`
	OriginalValue       float64           `json:"original_value"`
	UpcomingMaintenance int               `json:"upcoming_maintenance"` // next_maintenance within the window
	OverdueMaintenance  int               `json:"overdue_maintenance"`
	ByCategory          []aggregate.Group `json:"by_category"` // Sum is current value
	ByStatus            []aggregate.Group `json:"by_status"`
	ByCondition         []aggregate.Group `json:"by_condition"`
	MaintenanceCost     float64           `json:"maintenance_cost"` // Completed logs only
	AvgMaintenanceCost  float64           `json:"avg_maintenance_cost"`
	TotalDepreciation   float64           `json:"total_depreciation"`
	DepreciationRate    float64           `json:"depreciation_rate"` // depreciation / original x 100
}

// ========== SELF SERVICE ==========

// SelfServiceResponse is everything an employee sees about themselves
type SelfServiceResponse struct {
	Employee      employee.Employee `json:"employee"`
	Leaves        []leave.Leave     `json:"leaves"`
	Payslips      []payroll.Payroll `json:"payslips"`
	PendingLeaves int               `json:"pending_leaves"`
	ApprovedDays  int               `json:"approved_days"`
}

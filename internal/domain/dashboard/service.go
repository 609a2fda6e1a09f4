package dashboard

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
)

// DashboardService computes every summary from a fresh snapshot on each call
type DashboardService interface {
	GetKPIs(ctx context.Context) (KPIResponse, error)
	GetEmployeeSummary(ctx context.Context) (EmployeeSummaryResponse, error)
	GetLeaveSummary(ctx context.Context) (LeaveSummaryResponse, error)
	GetAttendanceSummary(ctx context.Context) (AttendanceSummaryResponse, error)
	GetPayrollSummary(ctx context.Context) (PayrollSummaryResponse, error)
	GetRecruitmentSummary(ctx context.Context) (RecruitmentSummaryResponse, error)
	GetPerformanceSummary(ctx context.Context) (PerformanceSummaryResponse, error)
	GetTrainingSummary(ctx context.Context) (TrainingSummaryResponse, error)
	GetBenefitsSummary(ctx context.Context) (BenefitsSummaryResponse, error)
	GetAssetReport(ctx context.Context) (AssetReportResponse, error)

	// ListEmployees applies search and equality filters to the employee list
	ListEmployees(ctx context.Context, filter employee.Filter) ([]employee.Employee, error)

	// GetEmployeeSelfService returns an employee with their leaves and payslips
	GetEmployeeSelfService(ctx context.Context, employeeID int64) (SelfServiceResponse, error)
}

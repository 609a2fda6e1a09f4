package catalog

import (
	"context"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
)

// Source loads whole record collections. Implementations return an error
// rather than a partial collection when they cannot be read.
type Source interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	ListLeaves(ctx context.Context) ([]leave.Leave, error)
	ListTimeLogs(ctx context.Context) ([]attendance.TimeLog, error)
	ListPayrolls(ctx context.Context) ([]payroll.Payroll, error)
	ListCandidates(ctx context.Context) ([]recruitment.Candidate, error)
	ListPerformance(ctx context.Context) ([]performance.Performance, error)
	ListTrainings(ctx context.Context) ([]training.Training, error)
	ListBenefits(ctx context.Context) ([]benefit.Benefits, error)
	ListAssets(ctx context.Context) ([]asset.Asset, error)
	ListAssetAssignments(ctx context.Context) ([]asset.AssetAssignment, error)
	ListMaintenanceLogs(ctx context.Context) ([]asset.MaintenanceLog, error)
}

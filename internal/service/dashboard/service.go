package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
	"golang.org/x/sync/errgroup"
)

// DefaultUpcomingWindowDays is how far ahead maintenance counts as upcoming.
const DefaultUpcomingWindowDays = 30

var _ dashboard.DashboardService = (*DashboardServiceImpl)(nil)

type DashboardServiceImpl struct {
	catalog      *catalog.Catalog
	upcomingDays int
	now          func() time.Time
}

func NewDashboardService(c *catalog.Catalog, upcomingDays int) *DashboardServiceImpl {
	if upcomingDays <= 0 {
		upcomingDays = DefaultUpcomingWindowDays
	}
	return &DashboardServiceImpl{
		catalog:      c,
		upcomingDays: upcomingDays,
		now:          time.Now,
	}
}

// WithClock replaces the time source.
func (s *DashboardServiceImpl) WithClock(now func() time.Time) *DashboardServiceImpl {
	s.now = now
	return s
}

// GetKPIs loads every collection in parallel and computes the headline row
func (s *DashboardServiceImpl) GetKPIs(ctx context.Context) (dashboard.KPIResponse, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return dashboard.KPIResponse{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}
	return KPIs(snapshot), nil
}

func (s *DashboardServiceImpl) GetEmployeeSummary(ctx context.Context) (dashboard.EmployeeSummaryResponse, error) {
	employees := s.catalog.Employees(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.EmployeeSummaryResponse{}, err
	}
	return EmployeeSummary(employees), nil
}

func (s *DashboardServiceImpl) GetLeaveSummary(ctx context.Context) (dashboard.LeaveSummaryResponse, error) {
	leaves := s.catalog.Leaves(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.LeaveSummaryResponse{}, err
	}
	return LeaveSummary(leaves), nil
}

func (s *DashboardServiceImpl) GetAttendanceSummary(ctx context.Context) (dashboard.AttendanceSummaryResponse, error) {
	logs := s.catalog.TimeLogs(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.AttendanceSummaryResponse{}, err
	}
	return AttendanceSummary(logs), nil
}

func (s *DashboardServiceImpl) GetPayrollSummary(ctx context.Context) (dashboard.PayrollSummaryResponse, error) {
	slips := s.catalog.Payrolls(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.PayrollSummaryResponse{}, err
	}
	return PayrollSummary(slips), nil
}

func (s *DashboardServiceImpl) GetRecruitmentSummary(ctx context.Context) (dashboard.RecruitmentSummaryResponse, error) {
	candidates := s.catalog.Candidates(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.RecruitmentSummaryResponse{}, err
	}
	return RecruitmentSummary(candidates), nil
}

func (s *DashboardServiceImpl) GetPerformanceSummary(ctx context.Context) (dashboard.PerformanceSummaryResponse, error) {
	reviews := s.catalog.Performance(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.PerformanceSummaryResponse{}, err
	}
	return PerformanceSummary(reviews), nil
}

func (s *DashboardServiceImpl) GetTrainingSummary(ctx context.Context) (dashboard.TrainingSummaryResponse, error) {
	trainings := s.catalog.Trainings(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.TrainingSummaryResponse{}, err
	}
	return TrainingSummary(trainings), nil
}

func (s *DashboardServiceImpl) GetBenefitsSummary(ctx context.Context) (dashboard.BenefitsSummaryResponse, error) {
	records := s.catalog.Benefits(ctx)
	if err := ctx.Err(); err != nil {
		return dashboard.BenefitsSummaryResponse{}, err
	}
	return BenefitsSummary(records), nil
}

// GetAssetReport reads assets and maintenance logs in parallel
func (s *DashboardServiceImpl) GetAssetReport(ctx context.Context) (dashboard.AssetReportResponse, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var snapshot catalog.Snapshot
	g.Go(func() error { snapshot.Assets = s.catalog.Assets(gCtx); return nil })
	g.Go(func() error { snapshot.MaintenanceLogs = s.catalog.MaintenanceLogs(gCtx); return nil })
	if err := g.Wait(); err != nil {
		return dashboard.AssetReportResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return dashboard.AssetReportResponse{}, err
	}
	return AssetReport(snapshot.Assets, snapshot.MaintenanceLogs, date.Of(s.now()), s.upcomingDays), nil
}

func (s *DashboardServiceImpl) ListEmployees(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	employees := s.catalog.Employees(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return FilterEmployees(employees, filter), nil
}

// FilterEmployees applies the search term and equality filters with AND.
func FilterEmployees(employees []employee.Employee, filter employee.Filter) []employee.Employee {
	return aggregate.Filter(employees,
		func(e employee.Employee) bool {
			return aggregate.MatchesAny(filter.Query, e.Name, e.Email, e.EmpCode, e.Position)
		},
		func(e employee.Employee) bool { return aggregate.EqualFold(e.Department, filter.Department) },
		func(e employee.Employee) bool { return aggregate.EqualFold(string(e.Status), filter.Status) },
	)
}

func (s *DashboardServiceImpl) GetEmployeeSelfService(ctx context.Context, employeeID int64) (dashboard.SelfServiceResponse, error) {
	var (
		employees []employee.Employee
		leaves    []leave.Leave
		slips     []payroll.Payroll
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error { employees = s.catalog.Employees(gCtx); return nil })
	g.Go(func() error { leaves = s.catalog.Leaves(gCtx); return nil })
	g.Go(func() error { slips = s.catalog.Payrolls(gCtx); return nil })
	if err := g.Wait(); err != nil {
		return dashboard.SelfServiceResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return dashboard.SelfServiceResponse{}, err
	}

	var (
		self  employee.Employee
		found bool
	)
	for _, e := range employees {
		if e.ID == employeeID {
			self, found = e, true
			break
		}
	}
	if !found {
		return dashboard.SelfServiceResponse{}, employee.ErrEmployeeNotFound
	}

	own := aggregate.Filter(leaves, func(l leave.Leave) bool { return l.EmployeeID == employeeID })
	approved := aggregate.Filter(own, leaveStatus(leave.StatusApproved))
	return dashboard.SelfServiceResponse{
		Employee:      self,
		Leaves:        own,
		Payslips:      aggregate.Filter(slips, func(p payroll.Payroll) bool { return p.EmployeeID == employeeID }),
		PendingLeaves: aggregate.Count(own, leaveStatus(leave.StatusPending)),
		ApprovedDays:  aggregate.SumInt(approved, func(l leave.Leave) int { return l.Days }),
	}, nil
}

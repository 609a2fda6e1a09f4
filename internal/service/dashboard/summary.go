package dashboard

import (
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
	"github.com/shopspring/decimal"
)

// The summaries below are pure: they read the collections they are handed
// and nothing else.

func KPIs(s catalog.Snapshot) dashboard.KPIResponse {
	return dashboard.KPIResponse{
		Headcount:          aggregate.Count(s.Employees, employee.Employee.IsActive),
		TurnoverRate:       aggregate.Round2(aggregate.Percentage(aggregate.Count(s.Employees, inactive), len(s.Employees))),
		PendingLeaves:      aggregate.Count(s.Leaves, leaveStatus(leave.StatusPending)),
		TrainingsThisMonth: aggregate.Count(s.Trainings, training.Training.IsOpen),
		PayrollProcessed: aggregate.SumDecimal(s.Payrolls, func(p payroll.Payroll) decimal.Decimal {
			return p.NetPay
		}),
		OpenPositions:        aggregate.Count(s.Candidates, recruitment.Candidate.IsOpen),
		AvgPerformanceRating: aggregate.Round2(aggregate.Average(s.Performance, overallRating)),
		BenefitsCost: aggregate.SumDecimal(recalculated(s.Benefits), func(b benefit.Benefits) decimal.Decimal {
			return b.TotalMonthlyCost
		}),
	}
}

func EmployeeSummary(employees []employee.Employee) dashboard.EmployeeSummaryResponse {
	active := aggregate.Count(employees, employee.Employee.IsActive)
	return dashboard.EmployeeSummaryResponse{
		Total:    len(employees),
		Active:   active,
		Inactive: len(employees) - active,
		ByDepartment: aggregate.GroupBy(employees, func(e employee.Employee) string {
			return e.Department
		}, nil),
	}
}

func LeaveSummary(leaves []leave.Leave) dashboard.LeaveSummaryResponse {
	approved := aggregate.Filter(leaves, leaveStatus(leave.StatusApproved))
	return dashboard.LeaveSummaryResponse{
		Total:        len(leaves),
		Pending:      aggregate.Count(leaves, leaveStatus(leave.StatusPending)),
		Approved:     len(approved),
		Rejected:     aggregate.Count(leaves, leaveStatus(leave.StatusRejected)),
		ApprovedDays: aggregate.SumInt(approved, func(l leave.Leave) int { return l.Days }),
		ByType: aggregate.GroupBy(leaves,
			func(l leave.Leave) string { return string(l.Type) },
			func(l leave.Leave) float64 { return float64(l.Days) },
		),
	}
}

func AttendanceSummary(logs []attendance.TimeLog) dashboard.AttendanceSummaryResponse {
	present := aggregate.Count(logs, timeLogStatus(attendance.StatusPresent))
	return dashboard.AttendanceSummaryResponse{
		Entries:        len(logs),
		Present:        present,
		Late:           aggregate.Count(logs, timeLogStatus(attendance.StatusLate)),
		Absent:         aggregate.Count(logs, timeLogStatus(attendance.StatusAbsent)),
		TotalHours:     aggregate.Round2(aggregate.Sum(logs, func(t attendance.TimeLog) float64 { return t.TotalHours })),
		OvertimeHours:  aggregate.Round2(aggregate.Sum(logs, func(t attendance.TimeLog) float64 { return t.OvertimeHours })),
		AttendanceRate: aggregate.Round2(aggregate.Percentage(present, len(logs))),
	}
}

func PayrollSummary(slips []payroll.Payroll) dashboard.PayrollSummaryResponse {
	sum := func(field func(payroll.Payroll) decimal.Decimal) decimal.Decimal {
		return aggregate.SumDecimal(slips, field)
	}
	return dashboard.PayrollSummaryResponse{
		Slips:           len(slips),
		TotalGross:      sum(func(p payroll.Payroll) decimal.Decimal { return p.GrossPay }),
		TotalNet:        sum(func(p payroll.Payroll) decimal.Decimal { return p.NetPay }),
		TotalDeductions: sum(func(p payroll.Payroll) decimal.Decimal { return p.TotalDeductions }),
		TotalOvertime:   sum(func(p payroll.Payroll) decimal.Decimal { return p.OvertimePay }),
		ByMonth: aggregate.GroupBy(slips,
			func(p payroll.Payroll) string { return p.Month },
			func(p payroll.Payroll) float64 { return p.NetPay.InexactFloat64() },
		),
	}
}

func RecruitmentSummary(candidates []recruitment.Candidate) dashboard.RecruitmentSummaryResponse {
	return dashboard.RecruitmentSummaryResponse{
		Total:        len(candidates),
		Screening:    aggregate.Count(candidates, candidateStatus(recruitment.StatusScreening)),
		Interviewing: aggregate.Count(candidates, recruitment.Candidate.IsInterviewing),
		Hired:        aggregate.Count(candidates, candidateStatus(recruitment.StatusHired)),
		Rejected:     aggregate.Count(candidates, candidateStatus(recruitment.StatusRejected)),
		Open:         aggregate.Count(candidates, recruitment.Candidate.IsOpen),
		ByDepartment: aggregate.GroupBy(candidates, func(c recruitment.Candidate) string {
			return c.Department
		}, nil),
	}
}

func PerformanceSummary(reviews []performance.Performance) dashboard.PerformanceSummaryResponse {
	var goals, completed int
	for _, r := range reviews {
		goals += len(r.Goals)
		for _, g := range r.Goals {
			if g.Status == performance.GoalCompleted {
				completed++
			}
		}
	}
	return dashboard.PerformanceSummaryResponse{
		Reviews:            len(reviews),
		AverageRating:      aggregate.Round2(aggregate.Average(reviews, overallRating)),
		Goals:              goals,
		CompletedGoals:     completed,
		GoalCompletionRate: aggregate.Round2(aggregate.Percentage(completed, goals)),
		TopPerformers:      aggregate.Count(reviews, performance.Performance.IsTopPerformer),
	}
}

func TrainingSummary(trainings []training.Training) dashboard.TrainingSummaryResponse {
	participants := aggregate.SumInt(trainings, training.Training.Seated)
	capacity := aggregate.SumInt(trainings, func(t training.Training) int { return t.MaxParticipants })
	return dashboard.TrainingSummaryResponse{
		Total:        len(trainings),
		Active:       aggregate.Count(trainings, training.Training.IsOpen),
		Completed:    aggregate.Count(trainings, func(t training.Training) bool { return t.Status == training.StatusCompleted }),
		Participants: participants,
		Capacity:     capacity,
		Utilisation:  aggregate.Round2(aggregate.Percentage(participants, capacity)),
		TotalCost: aggregate.SumDecimal(trainings, func(t training.Training) decimal.Decimal {
			return t.TotalCost
		}),
	}
}

// BenefitsSummary totals Active plans only. Stored totals are recomputed so a
// stale record cannot skew the figures.
func BenefitsSummary(records []benefit.Benefits) dashboard.BenefitsSummaryResponse {
	records = recalculated(records)
	total := aggregate.SumDecimal(records, func(b benefit.Benefits) decimal.Decimal { return b.TotalMonthlyCost })
	company := aggregate.SumDecimal(records, func(b benefit.Benefits) decimal.Decimal { return b.CompanyTotalContribution })

	var share float64
	if !total.IsZero() {
		share = company.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	return dashboard.BenefitsSummaryResponse{
		EnrolledEmployees: aggregate.Count(records, benefit.Benefits.HasActive),
		TotalMonthlyCost:  total,
		EmployeeContribution: aggregate.SumDecimal(records, func(b benefit.Benefits) decimal.Decimal {
			return b.EmployeeTotalContribution
		}),
		CompanyContribution: company,
		CompanyShare:        share,
	}
}

// AssetReport builds the asset reports page. Maintenance falls in the
// upcoming window when next_maintenance is within windowDays of today.
func AssetReport(assets []asset.Asset, logs []asset.MaintenanceLog, today date.Date, windowDays int) dashboard.AssetReportResponse {
	currentValue := func(a asset.Asset) float64 { return a.CurrentValue }
	purchasePrice := func(a asset.Asset) float64 { return a.PurchasePrice }

	total := aggregate.Sum(assets, currentValue)
	original := aggregate.Sum(assets, purchasePrice)
	depreciation := original - total

	completed := aggregate.Filter(logs, func(m asset.MaintenanceLog) bool {
		return m.Status == asset.MaintenanceCompleted
	})
	maintenanceCost := func(m asset.MaintenanceLog) float64 { return m.Cost }

	return dashboard.AssetReportResponse{
		Total:            len(assets),
		Assigned:         aggregate.Count(assets, assetStatus(asset.StatusAssigned)),
		Available:        aggregate.Count(assets, assetStatus(asset.StatusAvailable)),
		UnderMaintenance: aggregate.Count(assets, assetStatus(asset.StatusUnderMaintenance)),
		Disposed:         aggregate.Count(assets, assetStatus(asset.StatusDisposed)),
		TotalValue:       aggregate.Round2(total),
		OriginalValue:    aggregate.Round2(original),
		UpcomingMaintenance: aggregate.Count(assets, func(a asset.Asset) bool {
			return aggregate.UpcomingWithin(a.NextMaintenance, today, windowDays)
		}),
		OverdueMaintenance: aggregate.Count(assets, func(a asset.Asset) bool {
			return aggregate.Overdue(a.NextMaintenance, today)
		}),
		ByCategory:         aggregate.GroupBy(assets, func(a asset.Asset) string { return a.Category }, currentValue),
		ByStatus:           aggregate.GroupBy(assets, func(a asset.Asset) string { return string(a.Status) }, nil),
		ByCondition:        aggregate.GroupBy(assets, func(a asset.Asset) string { return string(a.Condition) }, nil),
		MaintenanceCost:    aggregate.Round2(aggregate.Sum(completed, maintenanceCost)),
		AvgMaintenanceCost: aggregate.Round2(aggregate.Average(completed, maintenanceCost)),
		TotalDepreciation:  aggregate.Round2(depreciation),
		DepreciationRate:   aggregate.Round2(aggregate.Ratio(depreciation, original)),
	}
}

func recalculated(records []benefit.Benefits) []benefit.Benefits {
	out := make([]benefit.Benefits, len(records))
	for i, b := range records {
		out[i] = benefit.Recalculate(b)
	}
	return out
}

func inactive(e employee.Employee) bool { return !e.IsActive() }

func overallRating(p performance.Performance) float64 { return p.OverallRating }

func leaveStatus(s leave.Status) aggregate.Predicate[leave.Leave] {
	return func(l leave.Leave) bool { return l.Status == s }
}

func timeLogStatus(s attendance.Status) aggregate.Predicate[attendance.TimeLog] {
	return func(t attendance.TimeLog) bool { return t.Status == s }
}

func candidateStatus(s recruitment.Status) aggregate.Predicate[recruitment.Candidate] {
	return func(c recruitment.Candidate) bool { return c.Status == s }
}

func assetStatus(s asset.Status) aggregate.Predicate[asset.Asset] {
	return func(a asset.Asset) bool { return a.Status == s }
}

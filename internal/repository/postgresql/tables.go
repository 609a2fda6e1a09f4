package postgresql

import (
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

var employees = table[employee.Employee]{
	name: "employees",
	columns: []string{
		"emp_code", "name", "email", "department", "position", "status",
		"hire_date", "phone", "address", "manager_id", "salary", "avatar",
	},
	dest: func(e *employee.Employee) []any {
		return []any{
			&e.ID, &e.EmpCode, &e.Name, &e.Email, &e.Department, &e.Position, &e.Status,
			&e.HireDate, &e.Phone, &e.Address, &e.ManagerID, &e.Salary, &e.Avatar,
		}
	},
	values: func(e employee.Employee) []any {
		return []any{
			e.EmpCode, e.Name, e.Email, e.Department, e.Position, string(e.Status),
			e.HireDate, e.Phone, e.Address, e.ManagerID, e.Salary, e.Avatar,
		}
	},
	id:       func(e employee.Employee) int64 { return e.ID },
	notFound: employee.ErrEmployeeNotFound,
}

var leaves = table[leave.Leave]{
	name: "leaves",
	columns: []string{
		"employee_id", "employee_name", "type", "start_date", "end_date", "days", "reason",
		"status", "applied_date", "approved_by", "approved_date", "rejection_reason",
	},
	dest: func(l *leave.Leave) []any {
		return []any{
			&l.ID, &l.EmployeeID, &l.EmployeeName, &l.Type, &l.StartDate, &l.EndDate, &l.Days, &l.Reason,
			&l.Status, &l.AppliedDate, &l.ApprovedBy, &l.ApprovedDate, &l.RejectionReason,
		}
	},
	values: func(l leave.Leave) []any {
		return []any{
			l.EmployeeID, l.EmployeeName, string(l.Type), l.StartDate, l.EndDate, l.Days, l.Reason,
			string(l.Status), l.AppliedDate, l.ApprovedBy, l.ApprovedDate, l.RejectionReason,
		}
	},
	id:       func(l leave.Leave) int64 { return l.ID },
	notFound: leave.ErrLeaveRequestNotFound,
}

var timeLogs = table[attendance.TimeLog]{
	name: "time_logs",
	columns: []string{
		"employee_id", "employee_name", "date", "check_in", "check_out",
		"break_duration", "total_hours", "overtime_hours", "status",
	},
	dest: func(t *attendance.TimeLog) []any {
		return []any{
			&t.ID, &t.EmployeeID, &t.EmployeeName, &t.Date, &t.CheckIn, &t.CheckOut,
			&t.BreakDuration, &t.TotalHours, &t.OvertimeHours, &t.Status,
		}
	},
	values: func(t attendance.TimeLog) []any {
		return []any{
			t.EmployeeID, t.EmployeeName, t.Date, t.CheckIn, t.CheckOut,
			t.BreakDuration, t.TotalHours, t.OvertimeHours, string(t.Status),
		}
	},
	id: func(t attendance.TimeLog) int64 { return t.ID },
}

var payrolls = table[payroll.Payroll]{
	name: "payrolls",
	columns: []string{
		"employee_id", "employee_name", "emp_code", "month", "base_salary", "monthly_salary",
		"overtime_hours", "overtime_rate", "overtime_pay", "allowances", "total_allowances",
		"gross_pay", "deductions", "total_deductions", "net_pay",
	},
	dest: func(p *payroll.Payroll) []any {
		return []any{
			&p.ID, &p.EmployeeID, &p.EmployeeName, &p.EmpCode, &p.Month, &p.BaseSalary, &p.MonthlySalary,
			&p.OvertimeHours, &p.OvertimeRate, &p.OvertimePay, &p.Allowances, &p.TotalAllowances,
			&p.GrossPay, &p.Deductions, &p.TotalDeductions, &p.NetPay,
		}
	},
	values: func(p payroll.Payroll) []any {
		return []any{
			p.EmployeeID, p.EmployeeName, p.EmpCode, p.Month, p.BaseSalary, p.MonthlySalary,
			p.OvertimeHours, p.OvertimeRate, p.OvertimePay, p.Allowances, p.TotalAllowances,
			p.GrossPay, p.Deductions, p.TotalDeductions, p.NetPay,
		}
	},
	id:       func(p payroll.Payroll) int64 { return p.ID },
	notFound: payroll.ErrPayrollRecordNotFound,
}

var candidates = table[recruitment.Candidate]{
	name: "candidates",
	columns: []string{
		"name", "email", "phone", "position_applied", "department", "experience_years", "status",
		"applied_date", "resume_url", "skills", "expected_salary", "interview_date", "interviewer", "notes",
	},
	dest: func(c *recruitment.Candidate) []any {
		return []any{
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.PositionApplied, &c.Department, &c.ExperienceYears, &c.Status,
			&c.AppliedDate, &c.ResumeURL, &c.Skills, &c.ExpectedSalary, &c.InterviewDate, &c.Interviewer, &c.Notes,
		}
	},
	values: func(c recruitment.Candidate) []any {
		return []any{
			c.Name, c.Email, c.Phone, c.PositionApplied, c.Department, c.ExperienceYears, string(c.Status),
			c.AppliedDate, c.ResumeURL, jsonList(c.Skills), c.ExpectedSalary, c.InterviewDate, c.Interviewer, c.Notes,
		}
	},
	id: func(c recruitment.Candidate) int64 { return c.ID },
}

var performanceReviews = table[performance.Performance]{
	name: "performance_reviews",
	columns: []string{
		"employee_id", "employee_name", "review_period", "goals", "overall_rating",
		"technical_skills", "communication", "teamwork", "leadership",
		"manager_feedback", "employee_feedback", "reviewed_by", "review_date",
	},
	dest: func(p *performance.Performance) []any {
		return []any{
			&p.ID, &p.EmployeeID, &p.EmployeeName, &p.ReviewPeriod, &p.Goals, &p.OverallRating,
			&p.TechnicalSkills, &p.Communication, &p.Teamwork, &p.Leadership,
			&p.ManagerFeedback, &p.EmployeeFeedback, &p.ReviewedBy, &p.ReviewDate,
		}
	},
	values: func(p performance.Performance) []any {
		return []any{
			p.EmployeeID, p.EmployeeName, p.ReviewPeriod, jsonList(p.Goals), p.OverallRating,
			p.TechnicalSkills, p.Communication, p.Teamwork, p.Leadership,
			p.ManagerFeedback, p.EmployeeFeedback, p.ReviewedBy, p.ReviewDate,
		}
	},
	id: func(p performance.Performance) int64 { return p.ID },
}

var trainings = table[training.Training]{
	name: "trainings",
	columns: []string{
		"title", "description", "category", "instructor", "start_date", "end_date", "duration_hours",
		"max_participants", "location", "status", "participants", "cost_per_participant", "total_cost",
	},
	dest: func(t *training.Training) []any {
		return []any{
			&t.ID, &t.Title, &t.Description, &t.Category, &t.Instructor, &t.StartDate, &t.EndDate, &t.DurationHours,
			&t.MaxParticipants, &t.Location, &t.Status, &t.Participants, &t.CostPerParticipant, &t.TotalCost,
		}
	},
	values: func(t training.Training) []any {
		return []any{
			t.Title, t.Description, t.Category, t.Instructor, t.StartDate, t.EndDate, t.DurationHours,
			t.MaxParticipants, t.Location, string(t.Status), jsonList(t.Participants), t.CostPerParticipant, t.TotalCost,
		}
	},
	id:       func(t training.Training) int64 { return t.ID },
	notFound: training.ErrTrainingNotFound,
}

var benefits = table[benefit.Benefits]{
	name: "benefits",
	columns: []string{
		"employee_id", "employee_name", "entries", "total_monthly_cost",
		"employee_total_contribution", "company_total_contribution",
	},
	dest: func(b *benefit.Benefits) []any {
		return []any{
			&b.ID, &b.EmployeeID, &b.EmployeeName, &b.Benefits, &b.TotalMonthlyCost,
			&b.EmployeeTotalContribution, &b.CompanyTotalContribution,
		}
	},
	values: func(b benefit.Benefits) []any {
		return []any{
			b.EmployeeID, b.EmployeeName, jsonList(b.Benefits), b.TotalMonthlyCost,
			b.EmployeeTotalContribution, b.CompanyTotalContribution,
		}
	},
	id: func(b benefit.Benefits) int64 { return b.ID },
}

var assets = table[asset.Asset]{
	name: "assets",
	columns: []string{
		"asset_code", "name", "category", "brand", "model", "serial_number", "status", "condition",
		"purchase_date", "purchase_price", "warranty_expiry", "location", "assigned_to", "supplier", "notes",
		"last_maintenance", "next_maintenance", "depreciation_rate", "current_value",
	},
	dest: func(a *asset.Asset) []any {
		return []any{
			&a.ID, &a.AssetCode, &a.Name, &a.Category, &a.Brand, &a.Model, &a.SerialNumber, &a.Status, &a.Condition,
			&a.PurchaseDate, &a.PurchasePrice, &a.WarrantyExpiry, &a.Location, &a.AssignedTo, &a.Supplier, &a.Notes,
			&a.LastMaintenance, &a.NextMaintenance, &a.DepreciationRate, &a.CurrentValue,
		}
	},
	values: func(a asset.Asset) []any {
		return []any{
			a.AssetCode, a.Name, a.Category, a.Brand, a.Model, a.SerialNumber, string(a.Status), string(a.Condition),
			a.PurchaseDate, a.PurchasePrice, a.WarrantyExpiry, a.Location, a.AssignedTo, a.Supplier, a.Notes,
			a.LastMaintenance, a.NextMaintenance, a.DepreciationRate, a.CurrentValue,
		}
	},
	id:       func(a asset.Asset) int64 { return a.ID },
	notFound: asset.ErrAssetNotFound,
}

var assignments = table[asset.AssetAssignment]{
	name: "asset_assignments",
	columns: []string{
		"asset_id", "asset_code", "asset_name", "assignment_type", "employee_id", "employee_name",
		"department", "assigned_date", "assigned_by", "assigned_by_name", "status", "notes",
		"expected_return_date", "return_date", "return_condition", "return_notes",
	},
	dest: func(a *asset.AssetAssignment) []any {
		return []any{
			&a.ID, &a.AssetID, &a.AssetCode, &a.AssetName, &a.AssignmentType, &a.EmployeeID, &a.EmployeeName,
			&a.Department, &a.AssignedDate, &a.AssignedBy, &a.AssignedByName, &a.Status, &a.Notes,
			&a.ExpectedReturnDate, &a.ReturnDate, &a.ReturnCondition, &a.ReturnNotes,
		}
	},
	values: func(a asset.AssetAssignment) []any {
		var condition *string
		if a.ReturnCondition != nil {
			c := string(*a.ReturnCondition)
			condition = &c
		}
		return []any{
			a.AssetID, a.AssetCode, a.AssetName, string(a.AssignmentType), a.EmployeeID, a.EmployeeName,
			a.Department, a.AssignedDate, a.AssignedBy, a.AssignedByName, string(a.Status), a.Notes,
			a.ExpectedReturnDate, a.ReturnDate, condition, a.ReturnNotes,
		}
	},
	id:       func(a asset.AssetAssignment) int64 { return a.ID },
	notFound: asset.ErrAssignmentNotFound,
}

var maintenanceLogs = table[asset.MaintenanceLog]{
	name: "maintenance_logs",
	columns: []string{
		"asset_id", "asset_code", "asset_name", "maintenance_type", "description", "scheduled_date",
		"completed_date", "technician", "cost", "status", "notes", "next_maintenance",
		"downtime_hours", "parts_used", "priority",
	},
	dest: func(m *asset.MaintenanceLog) []any {
		return []any{
			&m.ID, &m.AssetID, &m.AssetCode, &m.AssetName, &m.MaintenanceType, &m.Description, &m.ScheduledDate,
			&m.CompletedDate, &m.Technician, &m.Cost, &m.Status, &m.Notes, &m.NextMaintenance,
			&m.DowntimeHours, &m.PartsUsed, &m.Priority,
		}
	},
	values: func(m asset.MaintenanceLog) []any {
		return []any{
			m.AssetID, m.AssetCode, m.AssetName, string(m.MaintenanceType), m.Description, m.ScheduledDate,
			m.CompletedDate, m.Technician, m.Cost, string(m.Status), m.Notes, m.NextMaintenance,
			m.DowntimeHours, jsonList(m.PartsUsed), string(m.Priority),
		}
	},
	id:       func(m asset.MaintenanceLog) int64 { return m.ID },
	notFound: asset.ErrMaintenanceNotFound,
}

// jsonList keeps nil slices from being stored as JSON null.
func jsonList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

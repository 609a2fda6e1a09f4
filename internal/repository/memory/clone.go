package memory

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

// Records leave the store as deep copies so callers can mutate them freely.

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func ptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func slice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneEmployee(e employee.Employee) employee.Employee {
	e.ManagerID = ptr(e.ManagerID)
	e.Avatar = ptr(e.Avatar)
	return e
}

func cloneLeave(l leave.Leave) leave.Leave {
	l.ApprovedBy = ptr(l.ApprovedBy)
	l.ApprovedDate = ptr(l.ApprovedDate)
	l.RejectionReason = ptr(l.RejectionReason)
	return l
}

func cloneTimeLog(t attendance.TimeLog) attendance.TimeLog {
	t.CheckIn = ptr(t.CheckIn)
	t.CheckOut = ptr(t.CheckOut)
	return t
}

func clonePayroll(p payroll.Payroll) payroll.Payroll {
	return p
}

func cloneCandidate(c recruitment.Candidate) recruitment.Candidate {
	c.Skills = slice(c.Skills)
	c.InterviewDate = ptr(c.InterviewDate)
	c.Interviewer = ptr(c.Interviewer)
	return c
}

func clonePerformance(p performance.Performance) performance.Performance {
	p.Goals = slice(p.Goals)
	return p
}

func cloneTraining(t training.Training) training.Training {
	t.Participants = slice(t.Participants)
	return t
}

func cloneBenefits(b benefit.Benefits) benefit.Benefits {
	b.Benefits = slice(b.Benefits)
	return b
}

func cloneAsset(a asset.Asset) asset.Asset {
	a.WarrantyExpiry = ptr(a.WarrantyExpiry)
	a.LastMaintenance = ptr(a.LastMaintenance)
	a.NextMaintenance = ptr(a.NextMaintenance)
	if a.AssignedTo != nil {
		to := *a.AssignedTo
		to.EmployeeID = ptr(to.EmployeeID)
		to.EmployeeName = ptr(to.EmployeeName)
		a.AssignedTo = &to
	}
	return a
}

func cloneAssignment(a asset.AssetAssignment) asset.AssetAssignment {
	a.EmployeeID = ptr(a.EmployeeID)
	a.EmployeeName = ptr(a.EmployeeName)
	a.ExpectedReturnDate = ptr(a.ExpectedReturnDate)
	a.ReturnDate = ptr(a.ReturnDate)
	a.ReturnCondition = ptr(a.ReturnCondition)
	a.ReturnNotes = ptr(a.ReturnNotes)
	return a
}

func cloneMaintenance(m asset.MaintenanceLog) asset.MaintenanceLog {
	m.CompletedDate = ptr(m.CompletedDate)
	m.NextMaintenance = ptr(m.NextMaintenance)
	m.DowntimeHours = ptr(m.DowntimeHours)
	m.PartsUsed = slice(m.PartsUsed)
	return m
}

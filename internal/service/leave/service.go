package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	tx        database.Transactor
	leaves    leave.LeaveRepository
	employees employee.EmployeeRepository
	events    sse.Publisher
	now       func() time.Time
}

func NewLeaveService(tx database.Transactor, leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository, events sse.Publisher) *LeaveServiceImpl {
	if events == nil {
		events = sse.Discard{}
	}
	return &LeaveServiceImpl{
		tx:        tx,
		leaves:    leaveRepository,
		employees: employeeRepository,
		events:    events,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for applied and decision dates.
func (s *LeaveServiceImpl) WithClock(now func() time.Time) *LeaveServiceImpl {
	s.now = now
	return s
}

func (s *LeaveServiceImpl) today() date.Date {
	return date.Of(s.now())
}

func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	// Validate guarantees both parse.
	start := date.MustParse(req.StartDate)
	end := date.MustParse(req.EndDate)

	var created leave.Leave
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		created, err = s.leaves.Create(ctx, leave.Leave{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Type:         leave.Type(req.Type),
			StartDate:    start,
			EndDate:      end,
			Days:         date.InclusiveDays(start, end),
			Reason:       strings.TrimSpace(req.Reason),
			Status:       leave.StatusPending,
			AppliedDate:  s.today(),
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}

	slog.Info("Leave request submitted", "leave_id", created.ID, "employee_id", created.EmployeeID, "days", created.Days)
	s.events.Publish(sse.Event{Topic: sse.TopicLeave, Event: "leave.submitted", Data: created})
	return created, nil
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	updated, err := s.decide(ctx, req.LeaveID, req.ReviewerID, func(l *leave.Leave) {
		l.Status = leave.StatusApproved
	})
	if err != nil {
		return leave.Leave{}, err
	}

	slog.Info("Leave request approved", "leave_id", updated.ID, "reviewer_id", req.ReviewerID)
	s.events.Publish(sse.Event{Topic: sse.TopicLeave, Event: "leave.approved", Data: updated})
	return updated, nil
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.Leave, error) {
	if err := req.Validate(); err != nil {
		return leave.Leave{}, err
	}

	reason := strings.TrimSpace(req.Reason)
	updated, err := s.decide(ctx, req.LeaveID, req.ReviewerID, func(l *leave.Leave) {
		l.Status = leave.StatusRejected
		l.RejectionReason = &reason
	})
	if err != nil {
		return leave.Leave{}, err
	}

	slog.Info("Leave request rejected", "leave_id", updated.ID, "reviewer_id", req.ReviewerID)
	s.events.Publish(sse.Event{Topic: sse.TopicLeave, Event: "leave.rejected", Data: updated})
	return updated, nil
}

// decide moves a Pending request out of Pending and stamps the reviewer.
func (s *LeaveServiceImpl) decide(ctx context.Context, leaveID, reviewerID int64, apply func(*leave.Leave)) (leave.Leave, error) {
	var request leave.Leave
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.leaves.GetByIDForUpdate(ctx, leaveID)
		if err != nil {
			return fmt.Errorf("failed to get leave request by ID: %w", err)
		}

		if request.Status != leave.StatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if _, err := s.employees.GetByID(ctx, reviewerID); err != nil {
			return fmt.Errorf("failed to get reviewer: %w", err)
		}

		decidedOn := s.today()
		apply(&request)
		request.ApprovedBy = &reviewerID
		request.ApprovedDate = &decidedOn

		if err := s.leaves.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}
	return request, nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id int64) (leave.Leave, error) {
	l, err := s.leaves.GetByID(ctx, id)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	return l, nil
}

var _ leave.LeaveService = (*LeaveServiceImpl)(nil)

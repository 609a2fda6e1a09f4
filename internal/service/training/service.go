package training

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

var _ training.TrainingService = (*TrainingServiceImpl)(nil)

type TrainingServiceImpl struct {
	tx        database.Transactor
	trainings training.TrainingRepository
	employees employee.EmployeeRepository
	events    sse.Publisher
	now       func() time.Time
}

func NewTrainingService(
	tx database.Transactor,
	trainingRepository training.TrainingRepository,
	employeeRepository employee.EmployeeRepository,
	events sse.Publisher,
) *TrainingServiceImpl {
	if events == nil {
		events = sse.Discard{}
	}
	return &TrainingServiceImpl{
		tx:        tx,
		trainings: trainingRepository,
		employees: employeeRepository,
		events:    events,
		now:       time.Now,
	}
}

// WithClock replaces the time source.
func (s *TrainingServiceImpl) WithClock(now func() time.Time) *TrainingServiceImpl {
	s.now = now
	return s
}

// Enroll seats an employee. A participant who cancelled earlier takes a seat
// again under a fresh enrollment date.
func (s *TrainingServiceImpl) Enroll(ctx context.Context, req training.EnrollRequest) (training.Training, error) {
	if err := req.Validate(); err != nil {
		return training.Training{}, err
	}

	enrolled := date.Of(s.now())
	if req.EnrollmentDate != "" {
		enrolled = date.MustParse(req.EnrollmentDate)
	}

	var updated training.Training
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		t, err := s.trainings.GetByIDForUpdate(ctx, req.TrainingID)
		if err != nil {
			return fmt.Errorf("failed to get training by ID: %w", err)
		}
		if !t.IsOpen() {
			return training.ErrTrainingClosed
		}

		idx := t.Participant(req.EmployeeID)
		if idx >= 0 && t.Participants[idx].Status != training.ParticipantCancelled {
			return training.ErrAlreadyEnrolled
		}
		if t.Seated() >= t.MaxParticipants {
			return training.ErrTrainingFull
		}
		// A full roster hands a cancelled entry's slot to the newcomer.
		if idx < 0 && len(t.Participants) >= t.MaxParticipants {
			if idx = t.CancelledSlot(); idx < 0 {
				return training.ErrTrainingFull
			}
		}

		emp, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}
		if !emp.IsActive() {
			return employee.ErrEmployeeInactive
		}

		seat := training.Participant{
			EmployeeID:     emp.ID,
			EmployeeName:   emp.Name,
			EnrollmentDate: enrolled,
			Status:         training.ParticipantEnrolled,
		}
		if idx >= 0 {
			t.Participants[idx] = seat
		} else {
			t.Participants = append(t.Participants, seat)
		}
		t.RecalculateCost()

		if err := s.trainings.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to update training: %w", err)
		}
		updated = t
		return nil
	})
	if err != nil {
		return training.Training{}, err
	}

	slog.Info("Employee enrolled in training", "training_id", updated.ID, "employee_id", req.EmployeeID, "seated", updated.Seated())
	s.events.Publish(sse.Event{Topic: sse.TopicTraining, Event: "training.enrolled", Data: updated})
	return updated, nil
}

func (s *TrainingServiceImpl) CancelEnrollment(ctx context.Context, trainingID, employeeID int64) (training.Training, error) {
	var updated training.Training
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		t, err := s.trainings.GetByIDForUpdate(ctx, trainingID)
		if err != nil {
			return fmt.Errorf("failed to get training by ID: %w", err)
		}
		if !t.IsOpen() {
			return training.ErrTrainingClosed
		}

		idx := t.Participant(employeeID)
		if idx < 0 || t.Participants[idx].Status == training.ParticipantCancelled {
			return training.ErrParticipantNotFound
		}
		t.Participants[idx].Status = training.ParticipantCancelled
		t.RecalculateCost()

		if err := s.trainings.Update(ctx, t); err != nil {
			return fmt.Errorf("failed to update training: %w", err)
		}
		updated = t
		return nil
	})
	if err != nil {
		return training.Training{}, err
	}

	slog.Info("Training enrollment cancelled", "training_id", updated.ID, "employee_id", employeeID)
	s.events.Publish(sse.Event{Topic: sse.TopicTraining, Event: "training.cancelled", Data: updated})
	return updated, nil
}

func (s *TrainingServiceImpl) Get(ctx context.Context, id int64) (training.Training, error) {
	t, err := s.trainings.GetByID(ctx, id)
	if err != nil {
		return training.Training{}, fmt.Errorf("failed to get training by ID: %w", err)
	}
	return t, nil
}

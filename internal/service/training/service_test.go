package training

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*TrainingServiceImpl, *sse.Hub) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), fixture.NewEmbedded()))

	hub := sse.NewHub()
	svc := NewTrainingService(store, memory.NewTrainingRepository(store), memory.NewEmployeeRepository(store), hub).
		WithClock(func() time.Time { return time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC) })
	return svc, hub
}

func TestEnroll(t *testing.T) {
	svc, hub := newService(t)
	events, stop := hub.Subscribe(sse.TopicTraining)
	defer stop()
	ctx := context.Background()

	got, err := svc.Enroll(ctx, training.EnrollRequest{TrainingID: 1, EmployeeID: 5})
	require.NoError(t, err)
	require.Len(t, got.Participants, 3)
	assert.Equal(t, "David Wilson", got.Participants[2].EmployeeName)
	assert.Equal(t, "2024-02-28", got.Participants[2].EnrollmentDate.String())
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(1350)))

	_, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 1, EmployeeID: 5})
	assert.ErrorIs(t, err, training.ErrAlreadyEnrolled)

	assert.Equal(t, "training.enrolled", (<-events).Event)
}

func TestEnroll_Rejections(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Enroll(ctx, training.EnrollRequest{TrainingID: 3, EmployeeID: 5})
	assert.ErrorIs(t, err, training.ErrTrainingClosed)

	_, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 1, EmployeeID: 7})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)

	_, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 99, EmployeeID: 5})
	assert.ErrorIs(t, err, training.ErrTrainingNotFound)

	_, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 1, EmployeeID: 5, EnrollmentDate: "28/02/2024"})
	assert.Error(t, err)
}

func TestCancelledSeatIsReusable(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// Advanced Go seats 3 with one cancellation on the roster.
	got, err := svc.Enroll(ctx, training.EnrollRequest{TrainingID: 2, EmployeeID: 10, EnrollmentDate: "2024-02-27"})
	require.NoError(t, err)
	assert.Len(t, got.Participants, 3)
	assert.Equal(t, 3, got.Seated())
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(1800)))

	_, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 2, EmployeeID: 5})
	assert.ErrorIs(t, err, training.ErrTrainingFull)

	got, err = svc.CancelEnrollment(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Seated())
	assert.True(t, got.TotalCost.Equal(decimal.NewFromInt(1200)))

	_, err = svc.CancelEnrollment(ctx, 2, 3)
	assert.ErrorIs(t, err, training.ErrParticipantNotFound)

	got, err = svc.Enroll(ctx, training.EnrollRequest{TrainingID: 2, EmployeeID: 5})
	require.NoError(t, err)
	assert.Len(t, got.Participants, got.MaxParticipants)
	assert.Equal(t, -1, got.Participant(3))
}

func TestEnroll_RosterNeverExceedsCapacity(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// Two attending plus one cancellation already fill the roster of three.
	got, err := svc.Enroll(ctx, training.EnrollRequest{TrainingID: 2, EmployeeID: 5})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got.Participants), got.MaxParticipants)
	assert.Equal(t, 3, got.Seated())
	assert.Equal(t, -1, got.Participant(10))

	idx := got.Participant(5)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, training.ParticipantEnrolled, got.Participants[idx].Status)

	stored, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, stored.Participants, 3)
}

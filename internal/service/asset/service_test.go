package asset

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*AssetServiceImpl, *sse.Hub) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background(), fixture.NewEmbedded()))

	hub := sse.NewHub()
	svc := NewAssetService(
		store,
		memory.NewAssetRepository(store),
		memory.NewAssignmentRepository(store),
		memory.NewMaintenanceRepository(store),
		memory.NewEmployeeRepository(store),
		hub,
	).WithClock(func() time.Time { return fixedNow })
	return svc, hub
}

func int64Ptr(v int64) *int64 { return &v }

func assignLaptop() asset.AssignAssetRequest {
	return asset.AssignAssetRequest{
		AssetID:        10,
		AssignmentType: "employee",
		EmployeeID:     int64Ptr(2),
		AssignedDate:   "2024-06-01",
		AssignedBy:     8,
		Notes:          "Replacement laptop",
	}
}

func TestAssign(t *testing.T) {
	svc, hub := newService(t)
	events, stop := hub.Subscribe(sse.TopicAsset)
	defer stop()
	ctx := context.Background()

	created, err := svc.Assign(ctx, assignLaptop())
	require.NoError(t, err)
	assert.Equal(t, asset.AssignmentActive, created.Status)
	assert.Equal(t, "ThinkPad X1 Carbon", created.AssetName)
	assert.Equal(t, "Jennifer Martinez", created.AssignedByName)
	require.NotNil(t, created.EmployeeName)
	assert.Equal(t, "Sarah Johnson", *created.EmployeeName)
	assert.Equal(t, "Marketing", created.Department)

	a, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAssigned, a.Status)
	require.NotNil(t, a.AssignedTo)
	require.NotNil(t, a.AssignedTo.EmployeeID)
	assert.Equal(t, int64(2), *a.AssignedTo.EmployeeID)
	assert.Equal(t, "2024-06-01", a.AssignedTo.AssignedDate.String())

	_, err = svc.Assign(ctx, assignLaptop())
	assert.ErrorIs(t, err, asset.ErrAssetNotAvailable)
	assert.True(t, apperror.IsInvalidState(err))

	active, err := svc.ListAssignments(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	assert.Equal(t, "asset.assigned", (<-events).Event)
}

func TestAssign_RejectsBadTargets(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	inactive := assignLaptop()
	inactive.EmployeeID = int64Ptr(7)
	_, err := svc.Assign(ctx, inactive)
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)

	ghost := assignLaptop()
	ghost.AssignedBy = 999
	_, err = svc.Assign(ctx, ghost)
	assert.True(t, apperror.IsNotFound(err))

	disposed := assignLaptop()
	disposed.AssetID = 7
	_, err = svc.Assign(ctx, disposed)
	assert.ErrorIs(t, err, asset.ErrAssetNotAvailable)

	missing := assignLaptop()
	missing.EmployeeID = nil
	_, err = svc.Assign(ctx, missing)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("employee_id"))

	a, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	assert.Nil(t, a.AssignedTo)
}

func TestAssign_Department(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Assign(ctx, asset.AssignAssetRequest{
		AssetID:        5,
		AssignmentType: "department",
		Department:     "Sales",
		AssignedDate:   "2024-06-01",
		AssignedBy:     4,
	})
	require.NoError(t, err)
	assert.Nil(t, created.EmployeeID)
	assert.Nil(t, created.EmployeeName)

	a, err := svc.Get(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, a.AssignedTo)
	assert.Nil(t, a.AssignedTo.EmployeeID)
	assert.Equal(t, "Sales", a.AssignedTo.Department)
}

func TestAssignThenReturn(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Assign(ctx, assignLaptop())
	require.NoError(t, err)

	_, err = svc.Return(ctx, asset.ReturnAssetRequest{AssignmentID: created.ID, ReturnDate: "2024-05-01", Condition: "Good"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("return_date"))

	returned, err := svc.Return(ctx, asset.ReturnAssetRequest{
		AssignmentID: created.ID,
		ReturnDate:   "2024-06-20",
		Condition:    "Fair",
		Notes:        "Scratched lid",
	})
	require.NoError(t, err)
	assert.Equal(t, asset.AssignmentReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, "2024-06-20", returned.ReturnDate.String())
	require.NotNil(t, returned.ReturnCondition)
	assert.Equal(t, asset.ConditionFair, *returned.ReturnCondition)
	require.NotNil(t, returned.ReturnNotes)
	assert.Equal(t, "Scratched lid", *returned.ReturnNotes)

	a, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	assert.Equal(t, asset.ConditionFair, a.Condition)
	assert.Nil(t, a.AssignedTo)

	_, err = svc.Return(ctx, asset.ReturnAssetRequest{AssignmentID: created.ID, ReturnDate: "2024-06-21", Condition: "Fair"})
	assert.ErrorIs(t, err, asset.ErrAssignmentNotActive)

	_, err = svc.Assign(ctx, assignLaptop())
	assert.NoError(t, err)
}

func TestAssign_ConcurrentExactlyOneWins(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Assign(ctx, assignLaptop())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case apperror.IsInvalidState(err):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)

	assignments, err := svc.ListAssignments(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, assignments, 1)
}

func TestScheduleThenComplete(t *testing.T) {
	svc, hub := newService(t)
	events, stop := hub.Subscribe(sse.TopicMaintenance)
	defer stop()
	ctx := context.Background()

	cost := 120.0
	scheduled, err := svc.ScheduleMaintenance(ctx, asset.ScheduleMaintenanceRequest{
		AssetID:         10,
		MaintenanceType: "Preventive",
		Description:     "Annual inspection",
		ScheduledDate:   "2024-06-01",
		Priority:        "Medium",
		EstimatedCost:   &cost,
		PartsUsed:       asset.PartsList{"battery"},
	})
	require.NoError(t, err)
	assert.Equal(t, asset.MaintenanceScheduled, scheduled.Status)
	assert.Equal(t, 120.0, scheduled.Cost)
	assert.Nil(t, scheduled.CompletedDate)

	a, err := svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	require.NotNil(t, a.NextMaintenance)
	assert.Equal(t, "2024-06-01", a.NextMaintenance.String())

	next := "2024-12-02"
	completed, err := svc.CompleteMaintenance(ctx, asset.CompleteMaintenanceRequest{
		LogID:               scheduled.ID,
		CompletedDate:       "2024-06-02",
		Cost:                150,
		NextMaintenanceDate: &next,
	})
	require.NoError(t, err)
	assert.Equal(t, asset.MaintenanceCompleted, completed.Status)
	require.NotNil(t, completed.CompletedDate)
	assert.Equal(t, 150.0, completed.Cost)

	a, err = svc.Get(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	require.NotNil(t, a.LastMaintenance)
	assert.Equal(t, "2024-06-02", a.LastMaintenance.String())
	require.NotNil(t, a.NextMaintenance)
	assert.Equal(t, "2024-12-02", a.NextMaintenance.String())

	_, err = svc.CompleteMaintenance(ctx, asset.CompleteMaintenanceRequest{LogID: scheduled.ID, CompletedDate: "2024-06-03"})
	assert.ErrorIs(t, err, asset.ErrMaintenanceInvalidTransition)

	assert.Equal(t, "maintenance.scheduled", (<-events).Event)
	assert.Equal(t, "maintenance.completed", (<-events).Event)
}

func TestStartSuspendsAssignmentUntilComplete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	entry, err := svc.ScheduleMaintenance(ctx, asset.ScheduleMaintenanceRequest{
		AssetID:         1,
		MaintenanceType: "Corrective",
		Description:     "Keyboard replacement",
		ScheduledDate:   "2024-05-20",
		Priority:        "High",
	})
	require.NoError(t, err)

	_, err = svc.StartMaintenance(ctx, entry.ID)
	require.NoError(t, err)

	detail, err := svc.GetDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusUnderMaintenance, detail.Asset.Status)
	assert.Nil(t, detail.Asset.AssignedTo)
	require.Len(t, detail.Assignments, 1)
	assert.Equal(t, asset.AssignmentUnderMaintenance, detail.Assignments[0].Status)

	_, err = svc.CompleteMaintenance(ctx, asset.CompleteMaintenanceRequest{LogID: entry.ID, CompletedDate: "2024-05-22", Cost: 80})
	require.NoError(t, err)

	detail, err = svc.GetDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAssigned, detail.Asset.Status)
	require.NotNil(t, detail.Asset.AssignedTo)
	require.NotNil(t, detail.Asset.AssignedTo.EmployeeID)
	assert.Equal(t, int64(1), *detail.Asset.AssignedTo.EmployeeID)
	assert.Equal(t, asset.AssignmentActive, detail.Assignments[0].Status)
	assert.Nil(t, detail.Asset.NextMaintenance)
}

func TestFailRestoresAvailability(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	failed, err := svc.FailMaintenance(ctx, 1, "Lamp unit out of stock")
	require.NoError(t, err)
	assert.Equal(t, asset.MaintenanceFailed, failed.Status)
	assert.Contains(t, failed.Notes, "Lamp unit out of stock")
	assert.Nil(t, failed.CompletedDate)

	a, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)
	assert.Nil(t, a.NextMaintenance)
}

func TestCancelOnlyFromScheduled(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cancelled, err := svc.CancelMaintenance(ctx, 5, "Switch replaced instead")
	require.NoError(t, err)
	assert.Equal(t, asset.MaintenanceCancelled, cancelled.Status)
	assert.Contains(t, cancelled.Notes, "Cancelled: Switch replaced instead")

	a, err := svc.Get(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, a.NextMaintenance)

	_, err = svc.CancelMaintenance(ctx, 5, "again")
	assert.ErrorIs(t, err, asset.ErrMaintenanceInvalidTransition)

	_, err = svc.CancelMaintenance(ctx, 1, "too late")
	assert.ErrorIs(t, err, asset.ErrMaintenanceInvalidTransition)

	_, err = svc.StartMaintenance(ctx, 2)
	assert.True(t, apperror.IsInvalidState(err))

	_, err = svc.StartMaintenance(ctx, 999)
	assert.ErrorIs(t, err, asset.ErrMaintenanceNotFound)
}

func TestScheduleRejectsDisposedAsset(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ScheduleMaintenance(context.Background(), asset.ScheduleMaintenanceRequest{
		AssetID:         7,
		MaintenanceType: "Preventive",
		Description:     "Clean print head",
		ScheduledDate:   "2024-06-10",
		Priority:        "Low",
	})
	assert.ErrorIs(t, err, asset.ErrAssetDisposed)
}

func TestListMaintenance(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	all, err := svc.ListMaintenance(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

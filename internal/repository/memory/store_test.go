package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.Seed(context.Background(), fixture.NewEmbedded()))
	return s
}

func TestSeedLoadsFixtures(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	employees, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, employees)

	a, err := NewAssetRepository(s).GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)

	_, err = NewAssetRepository(s).GetByID(ctx, 999)
	assert.ErrorIs(t, err, asset.ErrAssetNotFound)
}

func TestCreateAssignsNextID(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	repo := NewLeaveRepository(s)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	created, err := repo.Create(ctx, leave.Leave{EmployeeID: 1, Status: leave.StatusPending})
	require.NoError(t, err)

	var max int64
	for _, l := range before {
		if l.ID > max {
			max = l.ID
		}
	}
	assert.Equal(t, max+1, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	assets := NewAssetRepository(s)
	logs := NewMaintenanceRepository(s)

	before, err := logs.List(ctx)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := assets.GetByIDForUpdate(ctx, 10)
		if err != nil {
			return err
		}
		a.Status = asset.StatusUnderMaintenance
		if err := assets.Update(ctx, a); err != nil {
			return err
		}
		if _, err := logs.Create(ctx, asset.MaintenanceLog{AssetID: 10, Status: asset.MaintenanceScheduled}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	a, err := assets.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, asset.StatusAvailable, a.Status)

	after, err := logs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestTransactionCommits(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	assets := NewAssetRepository(s)

	err := s.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := assets.GetByIDForUpdate(ctx, 10)
		if err != nil {
			return err
		}
		a.LastMaintenance = date.Ptr(date.MustParse("2024-06-02"))
		// nested transactions join the outer one
		return s.WithinTransaction(ctx, func(ctx context.Context) error {
			return assets.Update(ctx, a)
		})
	})
	require.NoError(t, err)

	a, err := assets.GetByID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, a.LastMaintenance)
	assert.Equal(t, "2024-06-02", a.LastMaintenance.String())
}

func TestRecordsAreCopies(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	repo := NewTrainingRepository(s)

	tr, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, tr.Participants)
	tr.Participants[0].Status = training.ParticipantCancelled

	again, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, training.ParticipantCancelled, again.Participants[0].Status)
}

func TestConcurrentTransactionsSerialise(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	assets := NewAssetRepository(s)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.WithinTransaction(ctx, func(ctx context.Context) error {
				a, err := assets.GetByIDForUpdate(ctx, 10)
				if err != nil {
					return err
				}
				if a.Status != asset.StatusAvailable {
					return asset.ErrAssetNotAvailable
				}
				a.Status = asset.StatusAssigned
				return assets.Update(ctx, a)
			})
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestCancelledContext(t *testing.T) {
	s := seeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListAssets(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package postgresql

import (
	"context"
	"os"
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/repository/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB connects to TEST_DATABASE_URL and reloads the fixtures. The
// database is wiped, so point it at a throwaway instance.
func openTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(ctx, `DROP TABLE IF EXISTS maintenance_logs, asset_assignments, assets, benefits,
		trainings, performance_reviews, candidates, payrolls, time_logs, leaves, employees`)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Seed(ctx, db, fixture.NewEmbedded()))
	return db
}

func TestSeedRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	want := fixture.NewEmbedded()
	src := NewSource(db)

	require.NoError(t, src.Ping(ctx))

	gotAssets, err := src.ListAssets(ctx)
	require.NoError(t, err)
	wantAssets, err := want.ListAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantAssets, gotAssets)

	gotPayroll, err := src.ListPayrolls(ctx)
	require.NoError(t, err)
	wantPayroll, err := want.ListPayrolls(ctx)
	require.NoError(t, err)
	require.Len(t, gotPayroll, len(wantPayroll))
	for i := range wantPayroll {
		assert.True(t, wantPayroll[i].NetPay.Equal(gotPayroll[i].NetPay), "payroll %d", wantPayroll[i].ID)
	}

	// A second seed is a no-op.
	require.NoError(t, Seed(ctx, db, want))
	again, err := src.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(wantAssets))
}

func TestCreateContinuesSequence(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewLeaveRepository(db)

	before, err := repo.List(ctx)
	require.NoError(t, err)

	created, err := repo.Create(ctx, leave.Leave{
		EmployeeID:   1,
		EmployeeName: "John Smith",
		Type:         leave.TypeAnnual,
		StartDate:    date.MustParse("2024-07-01"),
		EndDate:      date.MustParse("2024-07-02"),
		Days:         2,
		Reason:       "Family trip to the coast",
		Status:       leave.StatusPending,
		AppliedDate:  date.MustParse("2024-06-01"),
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, before[len(before)-1].ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewAssetRepository(db)

	original, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)

	err = NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := repo.GetByIDForUpdate(ctx, 10)
		if err != nil {
			return err
		}
		a.Notes = "changed"
		if err := repo.Update(ctx, a); err != nil {
			return err
		}
		return asset.ErrAssetNotAvailable
	})
	assert.ErrorIs(t, err, asset.ErrAssetNotAvailable)

	after, err := repo.GetByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, original.Notes, after.Notes)

	assignments, err := NewAssignmentRepository(db).ListByAsset(ctx, 10)
	require.NoError(t, err)
	assert.NotNil(t, assignments)

	assert.ErrorIs(t, repo.Update(ctx, asset.Asset{ID: 999}), asset.ErrAssetNotFound)
}

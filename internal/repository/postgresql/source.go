package postgresql

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/service/catalog"
)

//go:embed schema.sql
var schema string

// Source reads every collection straight from PostgreSQL. It is the primary
// source of the catalog when a database is configured.
type Source struct {
	db *database.DB
}

var _ catalog.Source = (*Source)(nil)

func NewSource(db *database.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Source) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return employees.list(ctx, s.db, "")
}

func (s *Source) ListLeaves(ctx context.Context) ([]leave.Leave, error) {
	return leaves.list(ctx, s.db, "")
}

func (s *Source) ListTimeLogs(ctx context.Context) ([]attendance.TimeLog, error) {
	return timeLogs.list(ctx, s.db, "")
}

func (s *Source) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	return payrolls.list(ctx, s.db, "")
}

func (s *Source) ListCandidates(ctx context.Context) ([]recruitment.Candidate, error) {
	return candidates.list(ctx, s.db, "")
}

func (s *Source) ListPerformance(ctx context.Context) ([]performance.Performance, error) {
	return performanceReviews.list(ctx, s.db, "")
}

func (s *Source) ListTrainings(ctx context.Context) ([]training.Training, error) {
	return trainings.list(ctx, s.db, "")
}

func (s *Source) ListBenefits(ctx context.Context) ([]benefit.Benefits, error) {
	return benefits.list(ctx, s.db, "")
}

func (s *Source) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	return assets.list(ctx, s.db, "")
}

func (s *Source) ListAssetAssignments(ctx context.Context) ([]asset.AssetAssignment, error) {
	return assignments.list(ctx, s.db, "")
}

func (s *Source) ListMaintenanceLogs(ctx context.Context) ([]asset.MaintenanceLog, error) {
	return maintenanceLogs.list(ctx, s.db, "")
}

// Migrate creates any missing tables. The schema is idempotent.
func Migrate(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Seed copies every collection of src into an empty database. A database
// that already holds employees is left untouched.
func Seed(ctx context.Context, db *database.DB, src catalog.Source) error {
	var existing int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM employees").Scan(&existing); err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if existing > 0 {
		return nil
	}

	return NewTransactor(db).WithinTransaction(ctx, func(ctx context.Context) error {
		if err := seedTable(ctx, db, employees, src.ListEmployees); err != nil {
			return err
		}
		if err := seedTable(ctx, db, leaves, src.ListLeaves); err != nil {
			return err
		}
		if err := seedTable(ctx, db, timeLogs, src.ListTimeLogs); err != nil {
			return err
		}
		if err := seedTable(ctx, db, payrolls, src.ListPayrolls); err != nil {
			return err
		}
		if err := seedTable(ctx, db, candidates, src.ListCandidates); err != nil {
			return err
		}
		if err := seedTable(ctx, db, performanceReviews, src.ListPerformance); err != nil {
			return err
		}
		if err := seedTable(ctx, db, trainings, src.ListTrainings); err != nil {
			return err
		}
		if err := seedTable(ctx, db, benefits, src.ListBenefits); err != nil {
			return err
		}
		if err := seedTable(ctx, db, assets, src.ListAssets); err != nil {
			return err
		}
		if err := seedTable(ctx, db, assignments, src.ListAssetAssignments); err != nil {
			return err
		}
		return seedTable(ctx, db, maintenanceLogs, src.ListMaintenanceLogs)
	})
}

func seedTable[T any](ctx context.Context, db *database.DB, t table[T], load func(context.Context) ([]T, error)) error {
	rows, err := load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", t.name, err)
	}
	return t.insertAll(ctx, db, rows)
}

// Package catalog reads record collections through a fallback chain: the
// primary source, then the fixture source, then an empty collection. Callers
// never see a read error.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
	"golang.org/x/sync/errgroup"
)

type Catalog struct {
	primary  Source
	fallback Source
}

// New builds a catalog. fallback may be nil, in which case a failing primary
// yields empty collections.
func New(primary, fallback Source) *Catalog {
	return &Catalog{primary: primary, fallback: fallback}
}

func load[T any](ctx context.Context, c *Catalog, collection string, list func(Source, context.Context) ([]T, error)) []T {
	items, err := list(c.primary, ctx)
	if err == nil {
		return nonNil(items)
	}
	slog.Warn("primary source unavailable, using fixtures",
		"collection", collection,
		"error", fmt.Errorf("%w: %w", apperror.ErrSourceUnavailable, err),
	)

	if c.fallback == nil {
		return []T{}
	}
	items, err = list(c.fallback, ctx)
	if err != nil {
		slog.Error("fixture source unavailable, returning empty collection",
			"collection", collection,
			"error", err,
		)
		return []T{}
	}
	return nonNil(items)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (c *Catalog) Employees(ctx context.Context) []employee.Employee {
	return load(ctx, c, "employees", Source.ListEmployees)
}

func (c *Catalog) Leaves(ctx context.Context) []leave.Leave {
	return load(ctx, c, "leaves", Source.ListLeaves)
}

func (c *Catalog) TimeLogs(ctx context.Context) []attendance.TimeLog {
	return load(ctx, c, "time_logs", Source.ListTimeLogs)
}

func (c *Catalog) Payrolls(ctx context.Context) []payroll.Payroll {
	return load(ctx, c, "payroll", Source.ListPayrolls)
}

func (c *Catalog) Candidates(ctx context.Context) []recruitment.Candidate {
	return load(ctx, c, "candidates", Source.ListCandidates)
}

func (c *Catalog) Performance(ctx context.Context) []performance.Performance {
	return load(ctx, c, "performance", Source.ListPerformance)
}

func (c *Catalog) Trainings(ctx context.Context) []training.Training {
	return load(ctx, c, "trainings", Source.ListTrainings)
}

func (c *Catalog) Benefits(ctx context.Context) []benefit.Benefits {
	return load(ctx, c, "benefits", Source.ListBenefits)
}

func (c *Catalog) Assets(ctx context.Context) []asset.Asset {
	return load(ctx, c, "assets", Source.ListAssets)
}

func (c *Catalog) AssetAssignments(ctx context.Context) []asset.AssetAssignment {
	return load(ctx, c, "asset_assignments", Source.ListAssetAssignments)
}

func (c *Catalog) MaintenanceLogs(ctx context.Context) []asset.MaintenanceLog {
	return load(ctx, c, "maintenance_logs", Source.ListMaintenanceLogs)
}

// Snapshot is every collection loaded for one aggregation pass.
type Snapshot struct {
	Employees        []employee.Employee
	Leaves           []leave.Leave
	TimeLogs         []attendance.TimeLog
	Payrolls         []payroll.Payroll
	Candidates       []recruitment.Candidate
	Performance      []performance.Performance
	Trainings        []training.Training
	Benefits         []benefit.Benefits
	Assets           []asset.Asset
	AssetAssignments []asset.AssetAssignment
	MaintenanceLogs  []asset.MaintenanceLog
}

// Snapshot loads all collections in parallel. The only error it returns is
// the context's.
func (c *Catalog) Snapshot(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error { s.Employees = c.Employees(gCtx); return nil })
	g.Go(func() error { s.Leaves = c.Leaves(gCtx); return nil })
	g.Go(func() error { s.TimeLogs = c.TimeLogs(gCtx); return nil })
	g.Go(func() error { s.Payrolls = c.Payrolls(gCtx); return nil })
	g.Go(func() error { s.Candidates = c.Candidates(gCtx); return nil })
	g.Go(func() error { s.Performance = c.Performance(gCtx); return nil })
	g.Go(func() error { s.Trainings = c.Trainings(gCtx); return nil })
	g.Go(func() error { s.Benefits = c.Benefits(gCtx); return nil })
	g.Go(func() error { s.Assets = c.Assets(gCtx); return nil })
	g.Go(func() error { s.AssetAssignments = c.AssetAssignments(gCtx); return nil })
	g.Go(func() error { s.MaintenanceLogs = c.MaintenanceLogs(gCtx); return nil })

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return s, nil
}

// Ping checks the primary source. Sources without a Ping method are probed
// with an employee read.
func (c *Catalog) Ping(ctx context.Context) error {
	if p, ok := c.primary.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	if _, err := c.primary.ListEmployees(ctx); err != nil {
		return errors.Join(apperror.ErrSourceUnavailable, err)
	}
	return nil
}

// Package fixture serves record collections from JSON files, one array per
// file. The embedded set ships with the binary; a directory on disk can
// replace it.
package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

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

//go:embed data/*.json
var embedded embed.FS

const (
	FileEmployees        = "employees.json"
	FileLeaves           = "leaves.json"
	FileTimeLogs         = "time_logs.json"
	FilePayroll          = "payroll.json"
	FileCandidates       = "candidates.json"
	FilePerformance      = "performance.json"
	FileTrainings        = "trainings.json"
	FileBenefits         = "benefits.json"
	FileAssets           = "assets.json"
	FileAssetAssignments = "asset_assignments.json"
	FileMaintenanceLogs  = "maintenance_logs.json"
)

type Source struct {
	files fs.FS
}

// NewEmbedded serves the fixtures compiled into the binary.
func NewEmbedded() *Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("fixture: embedded data missing: %v", err))
	}
	return &Source{files: sub}
}

// NewDir serves fixtures from dir. Missing files surface as read errors.
func NewDir(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture dir: %s is not a directory", dir)
	}
	return &Source{files: os.DirFS(dir)}, nil
}

// New serves dir when set, otherwise the embedded fixtures.
func New(dir string) (*Source, error) {
	if dir == "" {
		return NewEmbedded(), nil
	}
	return NewDir(dir)
}

func read[T any](ctx context.Context, s *Source, name string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.files, name)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Source) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	return read[employee.Employee](ctx, s, FileEmployees)
}

func (s *Source) ListLeaves(ctx context.Context) ([]leave.Leave, error) {
	return read[leave.Leave](ctx, s, FileLeaves)
}

func (s *Source) ListTimeLogs(ctx context.Context) ([]attendance.TimeLog, error) {
	return read[attendance.TimeLog](ctx, s, FileTimeLogs)
}

// ListPayrolls drops slips whose totals do not add up, logging each one.
func (s *Source) ListPayrolls(ctx context.Context) ([]payroll.Payroll, error) {
	slips, err := read[payroll.Payroll](ctx, s, FilePayroll)
	if err != nil {
		return nil, err
	}
	valid, rejected := payroll.Consistent(slips)
	if rejected != nil {
		slog.Warn("Skipping inconsistent payroll fixtures", "file", FilePayroll, "skipped", len(slips)-len(valid), "error", rejected)
	}
	return valid, nil
}

func (s *Source) ListCandidates(ctx context.Context) ([]recruitment.Candidate, error) {
	return read[recruitment.Candidate](ctx, s, FileCandidates)
}

func (s *Source) ListPerformance(ctx context.Context) ([]performance.Performance, error) {
	return read[performance.Performance](ctx, s, FilePerformance)
}

func (s *Source) ListTrainings(ctx context.Context) ([]training.Training, error) {
	return read[training.Training](ctx, s, FileTrainings)
}

func (s *Source) ListBenefits(ctx context.Context) ([]benefit.Benefits, error) {
	return read[benefit.Benefits](ctx, s, FileBenefits)
}

func (s *Source) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	return read[asset.Asset](ctx, s, FileAssets)
}

func (s *Source) ListAssetAssignments(ctx context.Context) ([]asset.AssetAssignment, error) {
	return read[asset.AssetAssignment](ctx, s, FileAssetAssignments)
}

func (s *Source) ListMaintenanceLogs(ctx context.Context) ([]asset.MaintenanceLog, error) {
	return read[asset.MaintenanceLog](ctx, s, FileMaintenanceLogs)
}

package asset

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

var _ asset.AssetService = (*AssetServiceImpl)(nil)

type AssetServiceImpl struct {
	tx          database.Transactor
	assets      asset.AssetRepository
	assignments asset.AssignmentRepository
	maintenance asset.MaintenanceRepository
	employees   employee.EmployeeRepository
	events      sse.Publisher
	now         func() time.Time
}

func NewAssetService(
	tx database.Transactor,
	assetRepository asset.AssetRepository,
	assignmentRepository asset.AssignmentRepository,
	maintenanceRepository asset.MaintenanceRepository,
	employeeRepository employee.EmployeeRepository,
	events sse.Publisher,
) *AssetServiceImpl {
	if events == nil {
		events = sse.Discard{}
	}
	return &AssetServiceImpl{
		tx:          tx,
		assets:      assetRepository,
		assignments: assignmentRepository,
		maintenance: maintenanceRepository,
		employees:   employeeRepository,
		events:      events,
		now:         time.Now,
	}
}

// WithClock replaces the time source.
func (s *AssetServiceImpl) WithClock(now func() time.Time) *AssetServiceImpl {
	s.now = now
	return s
}

func (s *AssetServiceImpl) Get(ctx context.Context, id int64) (asset.Asset, error) {
	a, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return asset.Asset{}, fmt.Errorf("failed to get asset by ID: %w", err)
	}
	return a, nil
}

func (s *AssetServiceImpl) GetDetail(ctx context.Context, id int64) (asset.Detail, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return asset.Detail{}, err
	}
	assignments, err := s.assignments.ListByAsset(ctx, id)
	if err != nil {
		return asset.Detail{}, fmt.Errorf("failed to list assignments: %w", err)
	}
	logs, err := s.maintenance.ListByAsset(ctx, id)
	if err != nil {
		return asset.Detail{}, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	return asset.Detail{Asset: a, Assignments: assignments, Maintenance: logs}, nil
}

// ListAssignments lists the assignments of assetID, or all of them when
// assetID is 0.
func (s *AssetServiceImpl) ListAssignments(ctx context.Context, assetID int64) ([]asset.AssetAssignment, error) {
	var (
		items []asset.AssetAssignment
		err   error
	)
	if assetID == 0 {
		items, err = s.assignments.List(ctx)
	} else {
		items, err = s.assignments.ListByAsset(ctx, assetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return items, nil
}

// ListMaintenance lists the maintenance logs of assetID, or all of them when
// assetID is 0.
func (s *AssetServiceImpl) ListMaintenance(ctx context.Context, assetID int64) ([]asset.MaintenanceLog, error) {
	var (
		items []asset.MaintenanceLog
		err   error
	)
	if assetID == 0 {
		items, err = s.maintenance.List(ctx)
	} else {
		items, err = s.maintenance.ListByAsset(ctx, assetID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	return items, nil
}

func (s *AssetServiceImpl) today() date.Date {
	return date.Of(s.now())
}

func appendNote(existing, note string) string {
	switch {
	case note == "":
		return existing
	case existing == "":
		return note
	default:
		return existing + "\n" + note
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

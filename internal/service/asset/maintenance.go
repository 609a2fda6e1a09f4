package asset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

func (s *AssetServiceImpl) ScheduleMaintenance(ctx context.Context, req asset.ScheduleMaintenanceRequest) (asset.MaintenanceLog, error) {
	if err := req.Validate(); err != nil {
		return asset.MaintenanceLog{}, err
	}

	scheduled := date.MustParse(req.ScheduledDate)
	var cost float64
	if req.EstimatedCost != nil {
		cost = *req.EstimatedCost
	}
	parts := []string(req.PartsUsed)
	if parts == nil {
		parts = []string{}
	}

	var created asset.MaintenanceLog
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := s.assets.GetByIDForUpdate(ctx, req.AssetID)
		if err != nil {
			return fmt.Errorf("failed to get asset by ID: %w", err)
		}
		if a.Status == asset.StatusDisposed {
			return asset.ErrAssetDisposed
		}

		created, err = s.maintenance.Create(ctx, asset.MaintenanceLog{
			AssetID:         a.ID,
			AssetCode:       a.AssetCode,
			AssetName:       a.Name,
			MaintenanceType: asset.MaintenanceType(req.MaintenanceType),
			Description:     strings.TrimSpace(req.Description),
			ScheduledDate:   scheduled,
			Technician:      strings.TrimSpace(req.Technician),
			Cost:            cost,
			Status:          asset.MaintenanceScheduled,
			Notes:           strings.TrimSpace(req.Notes),
			PartsUsed:       parts,
			Priority:        asset.Priority(req.Priority),
		})
		if err != nil {
			return fmt.Errorf("failed to create maintenance log: %w", err)
		}

		// Scheduling leaves the asset status alone; only the next due date moves.
		if a.NextMaintenance == nil || scheduled.Before(*a.NextMaintenance) {
			a.NextMaintenance = &scheduled
			if err := s.assets.Update(ctx, a); err != nil {
				return fmt.Errorf("failed to update asset: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}

	slog.Info("Maintenance scheduled", "asset_id", created.AssetID, "log_id", created.ID, "scheduled_date", created.ScheduledDate)
	s.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.scheduled", Data: created})
	return created, nil
}

func (s *AssetServiceImpl) StartMaintenance(ctx context.Context, logID int64) (asset.MaintenanceLog, error) {
	entry, err := s.transition(ctx, logID, asset.MaintenanceInProgress, func(ctx context.Context, a *asset.Asset, m *asset.MaintenanceLog) error {
		if a.Status == asset.StatusDisposed {
			return asset.ErrAssetDisposed
		}
		if a.Status == asset.StatusAssigned {
			if err := s.suspendAssignment(ctx, a.ID); err != nil {
				return err
			}
			a.AssignedTo = nil
		}
		a.Status = asset.StatusUnderMaintenance
		return nil
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}

	slog.Info("Maintenance started", "asset_id", entry.AssetID, "log_id", entry.ID)
	s.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.started", Data: entry})
	return entry, nil
}

func (s *AssetServiceImpl) CompleteMaintenance(ctx context.Context, req asset.CompleteMaintenanceRequest) (asset.MaintenanceLog, error) {
	if err := req.Validate(); err != nil {
		return asset.MaintenanceLog{}, err
	}

	completed := date.MustParse(req.CompletedDate)
	var next *date.Date
	if req.NextMaintenanceDate != nil && strings.TrimSpace(*req.NextMaintenanceDate) != "" {
		next = date.Ptr(date.MustParse(*req.NextMaintenanceDate))
	}

	entry, err := s.transition(ctx, req.LogID, asset.MaintenanceCompleted, func(ctx context.Context, a *asset.Asset, m *asset.MaintenanceLog) error {
		m.CompletedDate = &completed
		m.Cost = req.Cost
		m.DowntimeHours = req.DowntimeHours
		m.NextMaintenance = next

		a.LastMaintenance = &completed
		if err := s.refreshNextMaintenance(ctx, a, *m); err != nil {
			return err
		}
		if next != nil {
			a.NextMaintenance = next
		}
		return s.restore(ctx, a, m.ID)
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}

	slog.Info("Maintenance completed", "asset_id", entry.AssetID, "log_id", entry.ID, "cost", entry.Cost)
	s.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.completed", Data: entry})
	return entry, nil
}

func (s *AssetServiceImpl) CancelMaintenance(ctx context.Context, logID int64, reason string) (asset.MaintenanceLog, error) {
	entry, err := s.transition(ctx, logID, asset.MaintenanceCancelled, func(ctx context.Context, a *asset.Asset, m *asset.MaintenanceLog) error {
		if reason = strings.TrimSpace(reason); reason != "" {
			m.Notes = appendNote(m.Notes, "Cancelled: "+reason)
		}
		return s.refreshNextMaintenance(ctx, a, *m)
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}

	slog.Info("Maintenance cancelled", "asset_id", entry.AssetID, "log_id", entry.ID)
	s.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.cancelled", Data: entry})
	return entry, nil
}

func (s *AssetServiceImpl) FailMaintenance(ctx context.Context, logID int64, notes string) (asset.MaintenanceLog, error) {
	entry, err := s.transition(ctx, logID, asset.MaintenanceFailed, func(ctx context.Context, a *asset.Asset, m *asset.MaintenanceLog) error {
		m.Notes = appendNote(m.Notes, strings.TrimSpace(notes))
		if err := s.refreshNextMaintenance(ctx, a, *m); err != nil {
			return err
		}
		return s.restore(ctx, a, m.ID)
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}

	slog.Warn("Maintenance failed", "asset_id", entry.AssetID, "log_id", entry.ID)
	s.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.failed", Data: entry})
	return entry, nil
}

// transition locks the asset then the log, checks the move is legal, lets
// apply adjust both and writes them back.
func (s *AssetServiceImpl) transition(
	ctx context.Context,
	logID int64,
	to asset.MaintenanceStatus,
	apply func(ctx context.Context, a *asset.Asset, m *asset.MaintenanceLog) error,
) (asset.MaintenanceLog, error) {
	current, err := s.maintenance.GetByID(ctx, logID)
	if err != nil {
		return asset.MaintenanceLog{}, fmt.Errorf("failed to get maintenance log by ID: %w", err)
	}

	var entry asset.MaintenanceLog
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, err := s.assets.GetByIDForUpdate(ctx, current.AssetID)
		if err != nil {
			return fmt.Errorf("failed to get asset by ID: %w", err)
		}
		entry, err = s.maintenance.GetByIDForUpdate(ctx, logID)
		if err != nil {
			return fmt.Errorf("failed to get maintenance log by ID: %w", err)
		}
		if !entry.CanTransition(to) {
			return fmt.Errorf("%w: %s to %s", asset.ErrMaintenanceInvalidTransition, entry.Status, to)
		}

		entry.Status = to
		if err := apply(ctx, &a, &entry); err != nil {
			return err
		}

		if err := s.maintenance.Update(ctx, entry); err != nil {
			return fmt.Errorf("failed to update maintenance log: %w", err)
		}
		if err := s.assets.Update(ctx, a); err != nil {
			return fmt.Errorf("failed to update asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return asset.MaintenanceLog{}, err
	}
	return entry, nil
}

// suspendAssignment parks the asset's Active assignment while it is serviced.
func (s *AssetServiceImpl) suspendAssignment(ctx context.Context, assetID int64) error {
	assignments, err := s.assignments.ListByAsset(ctx, assetID)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}
	for _, asg := range assignments {
		if asg.Status != asset.AssignmentActive {
			continue
		}
		asg.Status = asset.AssignmentUnderMaintenance
		if err := s.assignments.Update(ctx, asg); err != nil {
			return fmt.Errorf("failed to suspend assignment: %w", err)
		}
	}
	return nil
}

// restore takes an asset out of maintenance once no other log is in
// progress. A suspended assignment becomes Active again; otherwise the asset
// is Available.
func (s *AssetServiceImpl) restore(ctx context.Context, a *asset.Asset, finishedLogID int64) error {
	if a.Status != asset.StatusUnderMaintenance {
		return nil
	}

	logs, err := s.maintenance.ListByAsset(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	for _, other := range logs {
		if other.ID != finishedLogID && other.Status == asset.MaintenanceInProgress {
			return nil
		}
	}

	assignments, err := s.assignments.ListByAsset(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}
	for _, asg := range assignments {
		if asg.Status != asset.AssignmentUnderMaintenance {
			continue
		}
		asg.Status = asset.AssignmentActive
		if err := s.assignments.Update(ctx, asg); err != nil {
			return fmt.Errorf("failed to resume assignment: %w", err)
		}
		a.Status = asset.StatusAssigned
		a.AssignedTo = asg.Holder()
		return nil
	}

	a.Status = asset.StatusAvailable
	a.AssignedTo = nil
	return nil
}

// refreshNextMaintenance moves the asset's next due date off a log that is
// no longer open, to the earliest remaining open log (or nil).
func (s *AssetServiceImpl) refreshNextMaintenance(ctx context.Context, a *asset.Asset, closed asset.MaintenanceLog) error {
	if a.NextMaintenance == nil || !a.NextMaintenance.Equal(closed.ScheduledDate) {
		return nil
	}

	logs, err := s.maintenance.ListByAsset(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("failed to list maintenance logs: %w", err)
	}
	var earliest *date.Date
	for _, other := range logs {
		if other.ID == closed.ID || !other.IsOpen() {
			continue
		}
		if earliest == nil || other.ScheduledDate.Before(*earliest) {
			d := other.ScheduledDate
			earliest = &d
		}
	}
	a.NextMaintenance = earliest
	return nil
}

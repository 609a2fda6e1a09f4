package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/sse"
)

// AssetLister is the read side the reminder job needs.
type AssetLister interface {
	Assets(ctx context.Context) []asset.Asset
}

// ReminderNotifier delivers the reminder outside the process, e.g. by email.
type ReminderNotifier interface {
	SendMaintenanceReminder(day string, windowDays int, upcoming, overdue []string) error
}

// MaintenanceReminder is published on the maintenance topic.
type MaintenanceReminder struct {
	Date     date.Date `json:"date"`
	Upcoming []string  `json:"upcoming"` // asset codes
	Overdue  []string  `json:"overdue"`
}

// AssetJobs contains asset-related cron jobs
type AssetJobs struct {
	catalog      AssetLister
	assetRepo    asset.AssetRepository
	tx           database.Transactor
	events       sse.Publisher
	notifier     ReminderNotifier
	upcomingDays int
	now          func() time.Time

	reminderInterval time.Duration
	revalueInterval  time.Duration
}

// NewAssetJobs creates asset cron jobs
func NewAssetJobs(
	catalog AssetLister,
	assetRepo asset.AssetRepository,
	tx database.Transactor,
	events sse.Publisher,
	upcomingDays int,
	reminderInterval, revalueInterval time.Duration,
) *AssetJobs {
	if events == nil {
		events = sse.Discard{}
	}
	return &AssetJobs{
		catalog:          catalog,
		assetRepo:        assetRepo,
		tx:               tx,
		events:           events,
		upcomingDays:     upcomingDays,
		now:              time.Now,
		reminderInterval: reminderInterval,
		revalueInterval:  revalueInterval,
	}
}

// WithClock replaces the time source.
func (j *AssetJobs) WithClock(now func() time.Time) *AssetJobs {
	j.now = now
	return j
}

// WithNotifier sends each reminder through n as well as the event hub.
func (j *AssetJobs) WithNotifier(n ReminderNotifier) *AssetJobs {
	j.notifier = n
	return j
}

// RegisterJobs registers all asset-related cron jobs
func (j *AssetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("maintenance_reminders", j.reminderInterval, j.MaintenanceReminders)
	scheduler.AddJob("revalue_assets", j.revalueInterval, j.RevalueAssets)
}

// MaintenanceReminders reports assets whose next maintenance is due soon or
// already past.
func (j *AssetJobs) MaintenanceReminders(ctx context.Context) error {
	today := date.Of(j.now())
	reminder := MaintenanceReminder{Date: today, Upcoming: []string{}, Overdue: []string{}}

	for _, a := range j.catalog.Assets(ctx) {
		if a.Status == asset.StatusDisposed {
			continue
		}
		switch {
		case aggregate.Overdue(a.NextMaintenance, today):
			reminder.Overdue = append(reminder.Overdue, a.AssetCode)
		case aggregate.UpcomingWithin(a.NextMaintenance, today, j.upcomingDays):
			reminder.Upcoming = append(reminder.Upcoming, a.AssetCode)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reminder.Upcoming) == 0 && len(reminder.Overdue) == 0 {
		slog.Debug("Cron: No maintenance due")
		return nil
	}

	slog.Info("Cron: Maintenance due",
		"upcoming", len(reminder.Upcoming),
		"overdue", len(reminder.Overdue),
		"window_days", j.upcomingDays)
	j.events.Publish(sse.Event{Topic: sse.TopicMaintenance, Event: "maintenance.reminder", Data: reminder})

	if j.notifier != nil {
		if err := j.notifier.SendMaintenanceReminder(today.String(), j.upcomingDays, reminder.Upcoming, reminder.Overdue); err != nil {
			return fmt.Errorf("failed to send maintenance reminder: %w", err)
		}
	}
	return nil
}

// RevalueAssets recomputes current_value for every non-disposed asset. Each
// asset is updated in its own transaction so a failure only skips that asset.
func (j *AssetJobs) RevalueAssets(ctx context.Context) error {
	assets, err := j.assetRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}

	today := date.Of(j.now())
	updated := 0
	for _, a := range assets {
		if a.Status == asset.StatusDisposed {
			continue
		}
		changed := false
		err := j.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			current, err := j.assetRepo.GetByIDForUpdate(ctx, a.ID)
			if err != nil {
				return err
			}
			revalued, ok := asset.Revalue(current, today)
			if !ok {
				return nil
			}
			changed = true
			return j.assetRepo.Update(ctx, revalued)
		})
		if err != nil {
			slog.Error("Cron: Failed to revalue asset", "asset_id", a.ID, "error", err)
			continue
		}
		if changed {
			updated++
		}
	}

	slog.Info("Cron: Revalued assets", "count", updated)
	return nil
}

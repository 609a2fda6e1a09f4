package asset

import (
	"testing"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/stretchr/testify/assert"
)

func TestDepreciatedValue(t *testing.T) {
	purchased := date.MustParse("2022-01-01")

	cases := []struct {
		name  string
		price float64
		rate  float64
		asOf  string
		want  float64
	}{
		{"one year at 20%", 1000, 0.2, "2023-01-01", 800.12},
		{"two years at 20%", 1000, 0.2, "2024-01-01", 640.20},
		{"purchase day", 1000, 0.2, "2022-01-01", 1000},
		{"before purchase", 1000, 0.2, "2021-06-01", 1000},
		{"no depreciation", 1000, 0, "2024-01-01", 1000},
		{"negative rate is ignored", 1000, -0.5, "2024-01-01", 1000},
		{"full write-off", 1000, 1, "2022-01-02", 0},
		{"zero price", 0, 0.2, "2024-01-01", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DepreciatedValue(c.price, c.rate, purchased, date.MustParse(c.asOf))
			assert.InDelta(t, c.want, got, 0.01)
			assert.LessOrEqual(t, got, c.price)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestRevalue(t *testing.T) {
	a := Asset{
		Status:           StatusAssigned,
		PurchaseDate:     date.MustParse("2022-01-01"),
		PurchasePrice:    1000,
		DepreciationRate: 0.2,
		CurrentValue:     1000,
	}

	got, changed := Revalue(a, date.MustParse("2023-01-01"))
	assert.True(t, changed)
	assert.InDelta(t, 800.12, got.CurrentValue, 0.01)

	_, changed = Revalue(got, date.MustParse("2023-01-01"))
	assert.False(t, changed)

	a.Status = StatusDisposed
	got, changed = Revalue(a, date.MustParse("2023-01-01"))
	assert.False(t, changed)
	assert.Equal(t, 1000.0, got.CurrentValue)
}

func TestMaintenanceTransitions(t *testing.T) {
	scheduled := MaintenanceLog{Status: MaintenanceScheduled}
	assert.True(t, scheduled.CanTransition(MaintenanceInProgress))
	assert.True(t, scheduled.CanTransition(MaintenanceCancelled))
	assert.True(t, scheduled.CanTransition(MaintenanceCompleted))

	inProgress := MaintenanceLog{Status: MaintenanceInProgress}
	assert.False(t, inProgress.CanTransition(MaintenanceCancelled))
	assert.True(t, inProgress.CanTransition(MaintenanceFailed))

	for _, terminal := range []MaintenanceStatus{MaintenanceCompleted, MaintenanceFailed, MaintenanceCancelled} {
		log := MaintenanceLog{Status: terminal}
		assert.False(t, log.IsOpen())
		assert.False(t, log.CanTransition(MaintenanceFailed), terminal)
	}
}

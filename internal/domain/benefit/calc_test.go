package benefit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(kind string, employee, company string, status Status) Entry {
	e := decimal.RequireFromString(employee)
	c := decimal.RequireFromString(company)
	return Entry{Type: kind, MonthlyPremium: e.Add(c), EmployeeContribution: e, CompanyContribution: c, Status: status}
}

func TestRecalculate_ActiveEntriesOnly(t *testing.T) {
	b := Recalculate(Benefits{
		ID: 1,
		Benefits: []Entry{
			entry("Health Insurance", "100", "350", StatusActive),
			entry("Dental", "20", "30", StatusActive),
			entry("Vision", "10", "15", StatusInactive),
		},
	})

	assert.True(t, b.TotalMonthlyCost.Equal(decimal.NewFromInt(500)))
	assert.True(t, b.EmployeeTotalContribution.Equal(decimal.NewFromInt(120)))
	assert.True(t, b.CompanyTotalContribution.Equal(decimal.NewFromInt(380)))
	require.NoError(t, b.Validate())
	assert.True(t, b.HasActive())
}

func TestValidate_DetectsSplitAndTotals(t *testing.T) {
	bad := entry("Life", "10", "10", StatusActive)
	bad.MonthlyPremium = decimal.NewFromInt(25)
	assert.ErrorIs(t, bad.Validate(), ErrPremiumSplitMismatch)

	b := Recalculate(Benefits{Benefits: []Entry{entry("Life", "10", "10", StatusActive)}})
	b.TotalMonthlyCost = decimal.NewFromInt(99)
	assert.Error(t, b.Validate())

	neg := entry("Gym", "-5", "5", StatusActive)
	assert.ErrorIs(t, neg.Validate(), ErrNegativeContribution)
}

func TestRecalculate_NoActiveEntries(t *testing.T) {
	b := Recalculate(Benefits{Benefits: []Entry{entry("Vision", "10", "15", StatusInactive)}})
	assert.True(t, b.TotalMonthlyCost.IsZero())
	assert.False(t, b.HasActive())
}

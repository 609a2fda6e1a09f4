package asset

import (
	"math"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/date"
	"github.com/shopspring/decimal"
)

// daysPerYear averages leap years into the elapsed-time fraction.
const daysPerYear = 365.25

// DepreciatedValue applies declining-balance depreciation:
//
//	value = price × (1 − rate)^(elapsed days / 365.25)
//
// The result is clamped to [0, price] and rounded to cents. A rate outside
// (0, 1] or an asOf before purchase leaves the price untouched, except that a
// rate of 1 or more writes the asset off entirely once any time has passed.
func DepreciatedValue(price, rate float64, purchased, asOf date.Date) float64 {
	if price <= 0 {
		return 0
	}
	days := purchased.DaysUntil(asOf)
	if days <= 0 || rate <= 0 {
		return price
	}
	if rate >= 1 {
		return 0
	}

	value := price * math.Pow(1-rate, float64(days)/daysPerYear)
	value = math.Max(0, math.Min(price, value))

	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// Revalue returns the asset with CurrentValue recomputed as of asOf and
// whether it changed. Disposed assets keep their last value.
func Revalue(a Asset, asOf date.Date) (Asset, bool) {
	if a.Status == StatusDisposed {
		return a, false
	}
	value := DepreciatedValue(a.PurchasePrice, a.DepreciationRate, a.PurchaseDate, asOf)
	if value == a.CurrentValue {
		return a, false
	}
	a.CurrentValue = value
	return a, true
}

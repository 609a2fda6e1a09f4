package benefit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrPremiumSplitMismatch = errors.New("monthly_premium must equal employee_contribution + company_contribution")
	ErrNegativeContribution = errors.New("premium and contributions must be non-negative")
)

func (e Entry) Validate() error {
	if e.MonthlyPremium.IsNegative() || e.EmployeeContribution.IsNegative() || e.CompanyContribution.IsNegative() {
		return fmt.Errorf("%s: %w", e.Type, ErrNegativeContribution)
	}
	if !e.MonthlyPremium.Equal(e.EmployeeContribution.Add(e.CompanyContribution)) {
		return fmt.Errorf("%s: %w", e.Type, ErrPremiumSplitMismatch)
	}
	return nil
}

// Recalculate returns b with its totals recomputed over Active entries.
// Inactive plans stay listed but cost nothing.
func Recalculate(b Benefits) Benefits {
	total, employee, company := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range b.Benefits {
		if e.Status != StatusActive {
			continue
		}
		total = total.Add(e.MonthlyPremium)
		employee = employee.Add(e.EmployeeContribution)
		company = company.Add(e.CompanyContribution)
	}
	b.TotalMonthlyCost = total
	b.EmployeeTotalContribution = employee
	b.CompanyTotalContribution = company
	return b
}

// Validate checks every entry and that the stored totals match Recalculate.
func (b Benefits) Validate() error {
	var errs []error
	for _, e := range b.Benefits {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	want := Recalculate(b)
	if !want.TotalMonthlyCost.Equal(b.TotalMonthlyCost) ||
		!want.EmployeeTotalContribution.Equal(b.EmployeeTotalContribution) ||
		!want.CompanyTotalContribution.Equal(b.CompanyTotalContribution) {
		errs = append(errs, fmt.Errorf("benefits %d: totals do not match active entries", b.ID))
	}
	return errors.Join(errs...)
}

// HasActive reports whether the employee is enrolled in at least one plan.
func (b Benefits) HasActive() bool {
	for _, e := range b.Benefits {
		if e.Status == StatusActive {
			return true
		}
	}
	return false
}

package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Validate checks the arithmetic invariants of a slip and returns every
// violation joined together, or nil.
func (p Payroll) Validate() error {
	var errs []error

	amounts := []decimal.Decimal{
		p.MonthlySalary, p.OvertimeHours, p.OvertimeRate,
		p.Allowances.Transport, p.Allowances.Meal, p.Allowances.Mobile,
		p.Deductions.Tax, p.Deductions.SocialSecurity, p.Deductions.HealthInsurance, p.Deductions.ProvidentFund,
	}
	for _, a := range amounts {
		if a.IsNegative() {
			errs = append(errs, ErrNegativeAmount)
			break
		}
	}

	if !p.OvertimePay.Equal(cents(p.OvertimeHours.Mul(p.OvertimeRate))) {
		errs = append(errs, ErrOvertimePayMismatch)
	}
	if !p.TotalAllowances.Equal(p.Allowances.Total()) {
		errs = append(errs, ErrAllowancesMismatch)
	}
	if !p.TotalDeductions.Equal(p.Deductions.Total()) {
		errs = append(errs, ErrDeductionsMismatch)
	}
	if !p.GrossPay.Equal(p.MonthlySalary.Add(p.OvertimePay).Add(p.TotalAllowances)) {
		errs = append(errs, ErrGrossPayMismatch)
	}
	if !p.NetPay.Equal(p.GrossPay.Sub(p.TotalDeductions)) {
		errs = append(errs, ErrNetPayMismatch)
	}

	return errors.Join(errs...)
}

// Consistent keeps the slips that pass Validate. The failures of the rest
// come back joined, each tagged with its slip id.
func Consistent(slips []Payroll) ([]Payroll, error) {
	valid := make([]Payroll, 0, len(slips))
	var errs []error
	for _, p := range slips {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("payroll %d: %w", p.ID, err))
			continue
		}
		valid = append(valid, p)
	}
	return valid, errors.Join(errs...)
}

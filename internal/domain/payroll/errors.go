package payroll

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/apperror"
)

var (
	ErrPayrollRecordNotFound = fmt.Errorf("payroll record %w", apperror.ErrNotFound)
	ErrInconsistentSlip      = fmt.Errorf("%w: payroll slip totals are inconsistent", apperror.ErrInvalidState)

	ErrNegativeAmount      = errors.New("amounts must be non-negative")
	ErrOvertimePayMismatch = errors.New("overtime_pay must equal overtime_hours x overtime_rate")
	ErrAllowancesMismatch  = errors.New("total_allowances must equal the sum of allowances")
	ErrDeductionsMismatch  = errors.New("total_deductions must equal the sum of deductions")
	ErrGrossPayMismatch    = errors.New("gross_pay must equal monthly_salary + overtime_pay + total_allowances")
	ErrNetPayMismatch      = errors.New("net_pay must equal gross_pay - total_deductions")
)

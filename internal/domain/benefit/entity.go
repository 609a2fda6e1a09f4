package benefit

import (
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Entry is one enrolled plan. MonthlyPremium is split between the employee
// and the company.
type Entry struct {
	Type                 string          `json:"type"`
	Provider             string          `json:"provider"`
	Coverage             string          `json:"coverage"`
	MonthlyPremium       decimal.Decimal `json:"monthly_premium"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	CompanyContribution  decimal.Decimal `json:"company_contribution"`
	Status               Status          `json:"status"`
}

// Benefits groups an employee's plans. The three totals cover Active entries
// only; see Recalculate.
type Benefits struct {
	ID                        int64           `json:"id"`
	EmployeeID                int64           `json:"employee_id"`
	EmployeeName              string          `json:"employee_name"`
	Benefits                  []Entry         `json:"benefits"`
	TotalMonthlyCost          decimal.Decimal `json:"total_monthly_cost"`
	EmployeeTotalContribution decimal.Decimal `json:"employee_total_contribution"`
	CompanyTotalContribution  decimal.Decimal `json:"company_total_contribution"`
}

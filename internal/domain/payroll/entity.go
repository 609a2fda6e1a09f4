package payroll

import (
	"github.com/shopspring/decimal"
)

type Allowances struct {
	Transport decimal.Decimal `json:"transport"`
	Meal      decimal.Decimal `json:"meal"`
	Mobile    decimal.Decimal `json:"mobile"`
}

func (a Allowances) Total() decimal.Decimal {
	return a.Transport.Add(a.Meal).Add(a.Mobile)
}

type Deductions struct {
	Tax             decimal.Decimal `json:"tax"`
	SocialSecurity  decimal.Decimal `json:"social_security"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.Tax.Add(d.SocialSecurity).Add(d.HealthInsurance).Add(d.ProvidentFund)
}

// Payroll is one employee's slip for a period. Month is a free-form period
// label such as "2024-01" or "January 2024".
type Payroll struct {
	ID              int64           `json:"id"`
	EmployeeID      int64           `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	EmpCode         string          `json:"emp_code"`
	Month           string          `json:"month"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	Allowances      Allowances      `json:"allowances"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	Deductions      Deductions      `json:"deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

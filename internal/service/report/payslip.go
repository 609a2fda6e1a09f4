package report

import (
	"bytes"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type payslipLine struct {
	label  string
	amount decimal.Decimal
}

func buildPayslip(p payroll.Payroll) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payslip "+p.EmpCode+" "+p.Month, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Employee: "+p.EmployeeName+" ("+p.EmpCode+")")
	pdf.Ln(6)
	pdf.Cell(0, 7, "Period: "+p.Month)
	pdf.Ln(10)

	section := func(title string, lines []payslipLine, total string, amount decimal.Decimal) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.CellFormat(120, 7, l.label, "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 7, l.amount.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(120, 7, total, "T", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, amount.StringFixed(2), "T", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	section("Earnings", []payslipLine{
		{"Monthly salary", p.MonthlySalary},
		{"Overtime (" + p.OvertimeHours.String() + " h x " + p.OvertimeRate.StringFixed(2) + ")", p.OvertimePay},
		{"Transport allowance", p.Allowances.Transport},
		{"Meal allowance", p.Allowances.Meal},
		{"Mobile allowance", p.Allowances.Mobile},
	}, "Gross pay", p.GrossPay)

	section("Deductions", []payslipLine{
		{"Tax", p.Deductions.Tax},
		{"Social security", p.Deductions.SocialSecurity},
		{"Health insurance", p.Deductions.HealthInsurance},
		{"Provident fund", p.Deductions.ProvidentFund},
	}, "Total deductions", p.TotalDeductions)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(120, 9, "Net pay", "TB", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, p.NetPay.StringFixed(2), "TB", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

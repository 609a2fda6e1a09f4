package report

import "context"

// ReportService renders documents and writes them to file storage
type ReportService interface {
	// ExportAssetRegister writes every asset plus the asset report to an XLSX workbook
	ExportAssetRegister(ctx context.Context) (Document, error)

	// GeneratePayslip renders one payroll slip as a PDF
	GeneratePayslip(ctx context.Context, payrollID int64) (Document, error)
}

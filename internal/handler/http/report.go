package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	// ExportAssets writes the asset register workbook
	ExportAssets(w http.ResponseWriter, r *http.Request)

	// GeneratePayslip renders one payroll record as a PDF
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAssets handles POST /reports/assets
func (h *reportHandlerImpl) ExportAssets(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportService.ExportAssetRegister(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, doc)
}

// GeneratePayslip handles POST /payroll/{id}/payslip
func (h *reportHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	doc, err := h.reportService.GeneratePayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, doc)
}

package http

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/benefit"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/performance"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

// RecordLister serves the read-only collections. *catalog.Catalog satisfies
// it; its accessors never fail, falling back to fixtures instead.
type RecordLister interface {
	Leaves(ctx context.Context) []leave.Leave
	Trainings(ctx context.Context) []training.Training
	Assets(ctx context.Context) []asset.Asset
	TimeLogs(ctx context.Context) []attendance.TimeLog
	Payrolls(ctx context.Context) []payroll.Payroll
	Candidates(ctx context.Context) []recruitment.Candidate
	Performance(ctx context.Context) []performance.Performance
	Benefits(ctx context.Context) []benefit.Benefits
	AssetAssignments(ctx context.Context) []asset.AssetAssignment
	MaintenanceLogs(ctx context.Context) []asset.MaintenanceLog
}

type RecordHandler interface {
	ListTimeLogs(w http.ResponseWriter, r *http.Request)
	ListPayroll(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	ListPerformance(w http.ResponseWriter, r *http.Request)
	ListBenefits(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	records RecordLister
}

func NewRecordHandler(records RecordLister) RecordHandler {
	return &recordHandlerImpl{records: records}
}

func (h *recordHandlerImpl) ListTimeLogs(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.records.TimeLogs(r.Context()))
}

func (h *recordHandlerImpl) ListPayroll(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.records.Payrolls(r.Context()))
}

func (h *recordHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.records.Candidates(r.Context()))
}

func (h *recordHandlerImpl) ListPerformance(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.records.Performance(r.Context()))
}

func (h *recordHandlerImpl) ListBenefits(w http.ResponseWriter, r *http.Request) {
	stored := h.records.Benefits(r.Context())
	records := make([]benefit.Benefits, len(stored))
	for i, b := range stored {
		records[i] = benefit.Recalculate(b)
	}
	response.JSON(w, http.StatusOK, records)
}

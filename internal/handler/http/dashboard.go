package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetKPIs returns the headline numbers across every module
	GetKPIs(w http.ResponseWriter, r *http.Request)
	GetEmployees(w http.ResponseWriter, r *http.Request)
	GetLeaves(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	GetRecruitment(w http.ResponseWriter, r *http.Request)
	GetPerformance(w http.ResponseWriter, r *http.Request)
	GetTrainings(w http.ResponseWriter, r *http.Request)
	GetBenefits(w http.ResponseWriter, r *http.Request)
	// GetAssets returns the asset report with depreciation and maintenance windows
	GetAssets(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetKPIs handles GET /dashboard/kpis
func (h *dashboardHandlerImpl) GetKPIs(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetKPIs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetEmployeeSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetLeaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetLeaveSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAttendanceSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetPayrollSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetRecruitment(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetRecruitmentSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetPerformance(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetPerformanceSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetTrainings(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTrainingSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *dashboardHandlerImpl) GetBenefits(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetBenefitsSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// GetAssets handles GET /dashboard/assets
func (h *dashboardHandlerImpl) GetAssets(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAssetReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

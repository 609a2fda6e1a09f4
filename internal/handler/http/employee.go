package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetSelfService(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewEmployeeHandler(dashboardService dashboard.DashboardService) EmployeeHandler {
	return &employeeHandlerImpl{dashboardService: dashboardService}
}

// List handles GET /employees?q=&department=&status=
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := employee.Filter{
		Query:      q.Get("q"),
		Department: q.Get("department"),
		Status:     q.Get("status"),
	}

	employees, err := h.dashboardService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, employees)
}

// Get handles GET /employees/{id}
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeSelfService(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result.Employee)
}

// GetSelfService handles GET /employees/{id}/self-service
func (h *employeeHandlerImpl) GetSelfService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeSelfService(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

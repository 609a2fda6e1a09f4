package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
	records      RecordLister
}

func NewLeaveHandler(leaveService leave.LeaveService, records RecordLister) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService, records: records}
}

// List handles GET /leaves?status=&type=&employee_id=
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := queryID(w, r, "employee_id")
	if !ok {
		return
	}
	filter := leave.Filter{
		Status:     r.URL.Query().Get("status"),
		Type:       r.URL.Query().Get("type"),
		EmployeeID: employeeID,
	}

	response.JSON(w, http.StatusOK, aggregate.Filter(l.records.Leaves(r.Context()), filter.Match))
}

// Get handles GET /leaves/{id}
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := l.leaveService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Submit handles POST /leaves
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := l.leaveService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Approve handles POST /leaves/{id}/approve
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req leave.ApproveLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.LeaveID = id

	result, err := l.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

// Reject handles POST /leaves/{id}/reject
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req leave.RejectLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.LeaveID = id

	result, err := l.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

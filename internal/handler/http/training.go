package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/training"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
)

type TrainingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Enroll(w http.ResponseWriter, r *http.Request)
	CancelEnrollment(w http.ResponseWriter, r *http.Request)
}

type trainingHandlerImpl struct {
	trainingService training.TrainingService
	records         RecordLister
}

func NewTrainingHandler(trainingService training.TrainingService, records RecordLister) TrainingHandler {
	return &trainingHandlerImpl{trainingService: trainingService, records: records}
}

func (h *trainingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.records.Trainings(r.Context()))
}

func (h *trainingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	t, err := h.trainingService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, t)
}

// Enroll handles POST /trainings/{id}/enroll
func (h *trainingHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req training.EnrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.TrainingID = id

	t, err := h.trainingService.Enroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, t)
}

// CancelEnrollment handles DELETE /trainings/{id}/participants/{employeeID}
func (h *trainingHandlerImpl) CancelEnrollment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "employeeID")
	if !ok {
		return
	}

	t, err := h.trainingService.CancelEnrollment(r.Context(), id, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, t)
}

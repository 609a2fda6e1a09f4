package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/domain/asset"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-dashboard-go/internal/pkg/aggregate"
)

type AssetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	ScheduleMaintenance(w http.ResponseWriter, r *http.Request)

	ListAssignments(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)

	ListMaintenance(w http.ResponseWriter, r *http.Request)
	StartMaintenance(w http.ResponseWriter, r *http.Request)
	CompleteMaintenance(w http.ResponseWriter, r *http.Request)
	CancelMaintenance(w http.ResponseWriter, r *http.Request)
	FailMaintenance(w http.ResponseWriter, r *http.Request)
}

type assetHandlerImpl struct {
	assetService asset.AssetService
	records      RecordLister
}

func NewAssetHandler(assetService asset.AssetService, records RecordLister) AssetHandler {
	return &assetHandlerImpl{assetService: assetService, records: records}
}

// ========== ASSETS ==========

// List handles GET /assets?q=&category=&status=
func (h *assetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := asset.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}

	response.JSON(w, http.StatusOK, aggregate.Filter(h.records.Assets(r.Context()), filter.Match))
}

// Get handles GET /assets/{id}, returning the asset with its history
func (h *assetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.assetService.GetDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, detail)
}

// Assign handles POST /assets/{id}/assign
func (h *assetHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req asset.AssignAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.AssetID = id

	assignment, err := h.assetService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, assignment)
}

// ScheduleMaintenance handles POST /assets/{id}/maintenance
func (h *assetHandlerImpl) ScheduleMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req asset.ScheduleMaintenanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.AssetID = id

	entry, err := h.assetService.ScheduleMaintenance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, entry)
}

// ========== ASSIGNMENTS ==========

// ListAssignments handles GET /asset-assignments?asset_id=
func (h *assetHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	assetID, ok := queryID(w, r, "asset_id")
	if !ok {
		return
	}
	if assetID == 0 {
		response.JSON(w, http.StatusOK, h.records.AssetAssignments(r.Context()))
		return
	}

	assignments, err := h.assetService.ListAssignments(r.Context(), assetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, assignments)
}

// Return handles POST /asset-assignments/{id}/return
func (h *assetHandlerImpl) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req asset.ReturnAssetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.AssignmentID = id

	assignment, err := h.assetService.Return(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, assignment)
}

// ========== MAINTENANCE ==========

// ListMaintenance handles GET /maintenance-logs?asset_id=
func (h *assetHandlerImpl) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	assetID, ok := queryID(w, r, "asset_id")
	if !ok {
		return
	}
	if assetID == 0 {
		response.JSON(w, http.StatusOK, h.records.MaintenanceLogs(r.Context()))
		return
	}

	logs, err := h.assetService.ListMaintenance(r.Context(), assetID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, logs)
}

// StartMaintenance handles POST /maintenance-logs/{id}/start
func (h *assetHandlerImpl) StartMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	entry, err := h.assetService.StartMaintenance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

// CompleteMaintenance handles POST /maintenance-logs/{id}/complete
func (h *assetHandlerImpl) CompleteMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req asset.CompleteMaintenanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.LogID = id

	entry, err := h.assetService.CompleteMaintenance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

// CancelMaintenance handles POST /maintenance-logs/{id}/cancel
func (h *assetHandlerImpl) CancelMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.assetService.CancelMaintenance(r.Context(), id, req.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

// FailMaintenance handles POST /maintenance-logs/{id}/fail
func (h *assetHandlerImpl) FailMaintenance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.assetService.FailMaintenance(r.Context(), id, req.Notes)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entry)
}

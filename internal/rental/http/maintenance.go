package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type MaintenanceHandler struct {
	MaintenanceService *service.MaintenanceService
	UserService        *service.UserService
}

// HandleCreate godoc
//
//	@Summary		File Maintenance Request
//	@Description	Files a maintenance request against the caller's unit.
//	@Tags			Maintenance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rentsdk.MaintenanceCreateRequest	true	"Request details"
//	@Success		201		{object}	rentsdk.MaintenanceResponse
//	@Failure		409		{object}	rentsdk.ErrorResponse	"caller has no unit"
//	@Security		BearerAuth
//	@Router			/v1/maintenance [post].
func (h *MaintenanceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.MaintenanceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	created, err := h.MaintenanceService.Create(r.Context(), caller, domain.MaintenanceRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.MaintenancePriority(req.Priority),
		Category:    domain.MaintenanceCategory(req.Category),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMaintenanceResponse(created))
}

func (h *MaintenanceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	requests, err := h.MaintenanceService.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.MaintenanceResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, toMaintenanceResponse(req))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleUpdate lets the landlord progress a request through its lifecycle
// and attach a response for the tenant.
func (h *MaintenanceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.MaintenanceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated, err := h.MaintenanceService.Update(r.Context(), caller, r.PathValue("id"), domain.MaintenanceStatus(req.Status), req.Response)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMaintenanceResponse(updated))
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type UnitsHandler struct {
	UnitService *service.UnitService
	UserService *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Create Unit
//	@Tags			Units
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Property ID"
//	@Param			request	body		rentsdk.UnitRequest	true	"Unit details"
//	@Success		201		{object}	rentsdk.UnitResponse
//	@Failure		400		{object}	rentsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/properties/{id}/units [post].
func (h *UnitsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	created, err := h.UnitService.Create(r.Context(), caller, domain.Unit{
		PropertyID:       r.PathValue("id"),
		UnitNumber:       req.UnitNumber,
		RentAmount:       req.RentAmount,
		PaymentFrequency: domain.PaymentFrequency(req.PaymentFrequency),
		LeaseStart:       req.LeaseStart,
		LeaseEnd:         req.LeaseEnd,
		Amenities:        req.Amenities,
		Description:      req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUnitResponse(created))
}

func (h *UnitsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	units, err := h.UnitService.ListByProperty(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UnitsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.UnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated, err := h.UnitService.Update(r.Context(), caller, domain.Unit{
		ID:               r.PathValue("id"),
		UnitNumber:       req.UnitNumber,
		RentAmount:       req.RentAmount,
		PaymentFrequency: domain.PaymentFrequency(req.PaymentFrequency),
		Amenities:        req.Amenities,
		Description:      req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUnitResponse(updated))
}

func (h *UnitsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	if err := h.UnitService.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAssign godoc
//
//	@Summary		Assign Tenant
//	@Description	Assigns a tenant to an available unit. The write is
//	@Description	conditional on the unit still being available, so a unit
//	@Description	taken in the meantime yields 409.
//	@Tags			Units
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Unit ID"
//	@Param			request	body		rentsdk.AssignRequest	true	"Tenant and lease dates"
//	@Success		200		{object}	rentsdk.UnitResponse
//	@Failure		409		{object}	rentsdk.ErrorResponse	"unit is not available"
//	@Security		BearerAuth
//	@Router			/v1/units/{id}/assign [post].
func (h *UnitsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	unit, err := h.UnitService.Assign(r.Context(), caller, r.PathValue("id"), req.TenantID, req.LeaseStart, req.LeaseEnd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitsHandler) HandleRemoveTenant(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	unit, err := h.UnitService.Remove(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitsHandler) HandleSetMaintenance(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	unit, err := h.UnitService.SetMaintenance(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUnitResponse(unit))
}

func (h *UnitsHandler) HandleSetAvailable(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	unit, err := h.UnitService.SetAvailable(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUnitResponse(unit))
}

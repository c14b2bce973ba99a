package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type PropertiesHandler struct {
	PropertyService *service.PropertyService
	UserService     *service.UserService
}

func propertyFromRequest(req rentsdk.PropertyRequest) domain.Property {
	return domain.Property{
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		ZipCode:          req.ZipCode,
		TotalUnits:       req.TotalUnits,
		TotalRentAmount:  req.TotalRentAmount,
		PaymentFrequency: domain.PaymentFrequency(req.PaymentFrequency),
		ElectricIncluded: req.ElectricIncluded,
		WaterIncluded:    req.WaterIncluded,
		InternetIncluded: req.InternetIncluded,
		GasIncluded:      req.GasIncluded,
		Amenities:        req.Amenities,
		Description:      req.Description,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Property
//	@Tags			Properties
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rentsdk.PropertyRequest	true	"Property details"
//	@Success		201		{object}	rentsdk.PropertyResponse
//	@Failure		403		{object}	rentsdk.ErrorResponse	"caller is not a landlord"
//	@Security		BearerAuth
//	@Router			/v1/properties [post].
func (h *PropertiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	created, err := h.PropertyService.Create(r.Context(), caller, propertyFromRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPropertyResponse(created))
}

func (h *PropertiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	props, err := h.PropertyService.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *PropertiesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	prop, err := h.PropertyService.Get(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPropertyResponse(prop))
}

func (h *PropertiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.PropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated := propertyFromRequest(req)
	updated.ID = r.PathValue("id")
	prop, err := h.PropertyService.Update(r.Context(), caller, updated)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPropertyResponse(prop))
}

// HandleDelete godoc
//
//	@Summary		Delete Property
//	@Description	Deletes a property and its units. Fails while any unit is
//	@Description	occupied.
//	@Tags			Properties
//	@Param			id	path	string	true	"Property ID"
//	@Success		204
//	@Failure		409	{object}	rentsdk.ErrorResponse	"property has occupied units"
//	@Security		BearerAuth
//	@Router			/v1/properties/{id} [delete].
func (h *PropertiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	if err := h.PropertyService.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

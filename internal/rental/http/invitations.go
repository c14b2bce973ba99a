package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type InvitationsHandler struct {
	InviteService *service.InviteService
	UserService   *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Issue Invitation
//	@Description	Creates a pending invitation to the given email address and
//	@Description	sends a notification. If the email fails to send the
//	@Description	invitation is still created and the response carries a
//	@Description	warning.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rentsdk.InviteRequest	true	"Invitation details"
//	@Success		201		{object}	rentsdk.InvitationResponse
//	@Failure		400		{object}	rentsdk.ErrorResponse
//	@Failure		403		{object}	rentsdk.ErrorResponse	"caller is not a landlord"
//	@Failure		409		{object}	rentsdk.ErrorResponse	"email already registered"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	inv, err := h.InviteService.Issue(r.Context(), caller, req.Email, req.Message, req.PropertyID, req.UnitID)
	if err != nil && !errors.Is(err, service.ErrNotificationFailed) {
		writeServiceError(w, r, err)
		return
	}

	resp := toInvitationResponse(inv)
	if err != nil {
		resp.Warning = "invitation created but the notification email could not be sent"
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

// HandleList godoc
//
//	@Summary		List Invitations
//	@Description	Returns the caller's invitations newest first, with expiry
//	@Description	applied to the presented status.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{array}	rentsdk.InvitationResponse
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	invs, err := h.InviteService.ListInvitations(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.InvitationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	if err := h.InviteService.Cancel(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Accepts a pending invitation addressed to the caller's
//	@Description	email. When the invitation references a unit the caller is
//	@Description	assigned to it in the same transaction.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string	true	"Invitation ID"
//	@Success		200	{object}	rentsdk.AcceptResponse
//	@Failure		403	{object}	rentsdk.ErrorResponse	"invitation addressed to someone else"
//	@Failure		409	{object}	rentsdk.ErrorResponse	"expired, cancelled or unit taken"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	result, err := h.InviteService.Accept(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := rentsdk.AcceptResponse{Invitation: toInvitationResponse(result.Invitation)}
	if result.Unit != nil {
		unit := toUnitResponse(*result.Unit)
		resp.Unit = &unit
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

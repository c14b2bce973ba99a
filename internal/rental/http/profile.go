package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type ProfileHandler struct {
	UserService *service.UserService
}

// HandleGet godoc
//
//	@Summary		Get Own Profile
//	@Description	Returns the authenticated caller's profile.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	rentsdk.UserResponse
//	@Failure		403	{object}	rentsdk.ErrorResponse	"no profile yet"
//	@Security		BearerAuth
//	@Router			/v1/profile [get].
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleSave godoc
//
//	@Summary		Create or Update Profile
//	@Description	Upserts the caller's profile. The first save creates the
//	@Description	account and fixes its role (owner or tenant).
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rentsdk.ProfileRequest	true	"Profile fields"
//	@Success		200		{object}	rentsdk.UserResponse
//	@Failure		400		{object}	rentsdk.ErrorResponse
//	@Security		BearerAuth
//	@Router			/v1/profile [post].
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	subject := httpx.SubjectFromContext(ctx)
	email := httpx.EmailFromContext(ctx)
	if subject == "" || email == "" {
		httpx.WriteError(w, http.StatusUnauthorized, rentsdk.ErrorCodeUnauthorized, "authentication required")
		return
	}

	var req rentsdk.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	user, err := h.UserService.SaveProfile(ctx, subject, email, service.ProfileInput{
		Name:    req.Name,
		Role:    domain.Role(req.Role),
		Phone:   req.Phone,
		Bio:     req.Bio,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *ProfileHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated, err := h.UserService.UpdateNotificationSettings(r.Context(), user, req.EmailNotifications, req.SMSNotifications)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}

func (h *ProfileHandler) HandlePhoto(w http.ResponseWriter, r *http.Request) {
	user, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.PhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	updated, err := h.UserService.UpdateProfilePhoto(r.Context(), user, req.PhotoURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}

type UsersHandler struct {
	UserService *service.UserService
}

// HandleGet returns the public view of any user by id.
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := principal(w, r, h.UserService); !ok {
		return
	}

	user, err := h.UserService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPublicUserResponse(user))
}

type TenantsHandler struct {
	UserService *service.UserService
}

// HandleList returns the tenant directory. Owner-only.
func (h *TenantsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	tenants, err := h.UserService.ListTenants(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, usersToResponses(tenants))
}

// HandleListAvailable returns tenants not assigned to any unit. Owner-only.
func (h *TenantsHandler) HandleListAvailable(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	tenants, err := h.UserService.ListAvailableTenants(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, usersToResponses(tenants))
}

func usersToResponses(users []domain.User) []rentsdk.UserResponse {
	out := make([]rentsdk.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toPublicUserResponse(u))
	}
	return out
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type MessagesHandler struct {
	MessageService *service.MessageService
	UserService    *service.UserService
}

func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	msg, err := h.MessageService.Send(r.Context(), caller, req.ReceiverID, req.PropertyID, req.Content)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// HandleConversation returns the two-way conversation between the caller
// and the user in the "with" query parameter, oldest first.
func (h *MessagesHandler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	other := r.URL.Query().Get("with")
	if other == "" {
		httpx.WriteError(w, http.StatusBadRequest, rentsdk.ErrorCodeInvalidRequest, "missing 'with' query parameter")
		return
	}

	msgs, err := h.MessageService.Conversation(r.Context(), caller, other)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *MessagesHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	if err := h.MessageService.MarkRead(r.Context(), caller, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/rentlinkhq/rentlink/internal/rental/domain"
	"github.com/rentlinkhq/rentlink/internal/rental/service"
	"github.com/rentlinkhq/rentlink/pkg/httpx"
	"github.com/rentlinkhq/rentlink/pkg/rentsdk"
)

type PaymentsHandler struct {
	PaymentService *service.PaymentService
	UserService    *service.UserService
}

// HandleCreate godoc
//
//	@Summary		Record Payment
//	@Description	Records a pending payment against the caller's unit. The
//	@Description	unit, property and landlord are derived from the caller's
//	@Description	current occupancy.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rentsdk.PaymentRequest	true	"Payment details"
//	@Success		201		{object}	rentsdk.PaymentResponse
//	@Failure		409		{object}	rentsdk.ErrorResponse	"caller has no unit"
//	@Security		BearerAuth
//	@Router			/v1/payments [post].
func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	created, err := h.PaymentService.Create(r.Context(), caller, domain.Payment{
		Type:        domain.PaymentType(req.Type),
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPaymentResponse(created))
}

func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	payments, err := h.PaymentService.List(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rentsdk.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMarkPaid marks the caller's own payment as paid, optionally
// attaching proof of payment.
func (h *PaymentsHandler) HandleMarkPaid(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	var req rentsdk.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w)
		return
	}

	payment, err := h.PaymentService.MarkPaid(r.Context(), caller, r.PathValue("id"), req.ProofURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// HandleVerify lets the landlord confirm a paid payment was received.
func (h *PaymentsHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	caller, ok := principal(w, r, h.UserService)
	if !ok {
		return
	}

	payment, err := h.PaymentService.Verify(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentResponse(payment))
}

package http

import (
	"net/http"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/service"
	"rentline-backend/internal/utils"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type listPaymentsResponse struct {
	Payments []domain.Payment `json:"payments"`
	Total    int32            `json:"total"`
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	payments, total, err := h.paymentSvc.ListPayments(
		r.Context(),
		CapabilityFrom(r.Context()),
		queryInt32(q.Get("customer_id")),
		queryInt32(q.Get("rental_id")),
		queryInt32(q.Get("page")),
		queryInt32(q.Get("page_size")),
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listPaymentsResponse{Payments: payments, Total: total})
}

func (h *PaymentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := utils.ParseDate(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date: "+err.Error())
		return
	}
	to, err := utils.ParseDate(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date: "+err.Error())
		return
	}

	summary, err := h.paymentSvc.PaymentSummary(r.Context(), CapabilityFrom(r.Context()), from, to)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

package http

import (
	"net/http"
	"strconv"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	CustomerID int32                    `json:"customer_id"`
	StartDate  string                   `json:"start_date"`
	EndDate    string                   `json:"end_date"`
	Items      []domain.RentalLineInput `json:"items"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rental, err := h.rentalSvc.CreateRental(r.Context(), CapabilityFrom(r.Context()), req.CustomerID, req.StartDate, req.EndDate, req.Items)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), rentalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type listRentalsResponse struct {
	Rentals []domain.Rental `json:"rentals"`
	Total   int32           `json:"total"`
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	customerID := queryInt32(q.Get("customer_id"))
	page := queryInt32(q.Get("page"))
	pageSize := queryInt32(q.Get("page_size"))

	rentals, total, err := h.rentalSvc.ListRentals(r.Context(), customerID, q.Get("status"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listRentalsResponse{Rentals: rentals, Total: total})
}

type cancelRentalRequest struct {
	Reason string `json:"reason"`
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req cancelRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rental, err := h.rentalSvc.CancelRental(r.Context(), CapabilityFrom(r.Context()), rentalID, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rental, err := h.rentalSvc.CompleteRental(r.Context(), CapabilityFrom(r.Context()), rentalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func queryInt32(raw string) int32 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}

package http

import (
	"net/http"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/service"
)

type StockHandler struct {
	stockSvc service.StockService
}

func NewStockHandler(stockSvc service.StockService) *StockHandler {
	return &StockHandler{stockSvc: stockSvc}
}

type adjustStockRequest struct {
	Delta  int32  `json:"delta"`
	Reason string `json:"reason"`
}

func (h *StockHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.stockSvc.AdjustStock(r.Context(), CapabilityFrom(r.Context()), itemID, req.Delta, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type transferStockRequest struct {
	Quantity     int32  `json:"quantity"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
}

func (h *StockHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	var req transferStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.stockSvc.TransferStock(r.Context(), CapabilityFrom(r.Context()), itemID, req.Quantity, req.FromLocation, req.ToLocation)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type listMovementsResponse struct {
	Movements []domain.StockMovement `json:"movements"`
	Total     int32                  `json:"total"`
}

func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	q := r.URL.Query()
	movements, total, err := h.stockSvc.ListMovements(r.Context(), itemID, queryInt32(q.Get("page")), queryInt32(q.Get("page_size")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listMovementsResponse{Movements: movements, Total: total})
}

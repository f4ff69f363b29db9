package http

import (
	"net/http"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/service"
)

type AuditHandler struct {
	auditSvc service.AuditService
}

func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

type listAuditResponse struct {
	Entries []domain.AuditEntry `json:"entries"`
	Total   int32               `json:"total"`
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	entries, total, err := h.auditSvc.ListEntries(r.Context(), CapabilityFrom(r.Context()), queryInt32(q.Get("page")), queryInt32(q.Get("page_size")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listAuditResponse{Entries: entries, Total: total})
}

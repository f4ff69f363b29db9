package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentline-backend/internal/domain"
	"rentline-backend/internal/service"
)

// ExtensionHandler exposes the extension availability check, the
// conflict-resolution dialog and the final extension submission.
type ExtensionHandler struct {
	extensionSvc service.ExtensionService
}

func NewExtensionHandler(extensionSvc service.ExtensionService) *ExtensionHandler {
	return &ExtensionHandler{extensionSvc: extensionSvc}
}

func (h *ExtensionHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ExtensionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.extensionSvc.CheckAvailability(r.Context(), rentalID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ExtensionHandler) Quote(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ExtensionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	quote, err := h.extensionSvc.QuoteExtension(r.Context(), rentalID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type selectSolutionRequest struct {
	SolutionIndex int `json:"solution_index"`
}

func (h *ExtensionHandler) SelectSolution(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	var req selectSolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	solution, err := h.extensionSvc.SelectSolution(r.Context(), sessionID, req.SolutionIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, solution)
}

func (h *ExtensionHandler) CancelDialog(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionID"]

	if err := h.extensionSvc.CancelDialog(r.Context(), sessionID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ExtensionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	rentalID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var sub domain.ExtensionSubmission
	if err := decodeJSON(r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	rental, err := h.extensionSvc.SubmitExtension(r.Context(), CapabilityFrom(r.Context()), rentalID, sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// pathID parses an int32 path variable, writing a 400 response on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name+" path parameter")
		return 0, false
	}
	return int32(id), true
}

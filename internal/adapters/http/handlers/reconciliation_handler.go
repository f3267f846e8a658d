package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// ReconciliationHandler lists and resolves operations that were only
// partially rolled back.
type ReconciliationHandler struct {
	svc ports.ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(svc ports.ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{svc: svc}
}

// List handles GET /api/v1/reconciliation?all=true.
func (h *ReconciliationHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := queryBool(r, "all")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), all)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(entries, dto.ToReconciliationEntryResponse))
}

// Resolve handles POST /api/v1/reconciliation/{id}/resolve.
func (h *ReconciliationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Resolve(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

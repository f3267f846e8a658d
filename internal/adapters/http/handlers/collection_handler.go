package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// CollectionHandler handles HTTP requests for collections, their tabs and
// their items.
type CollectionHandler struct {
	svc ports.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler with the given service port.
func NewCollectionHandler(svc ports.CollectionService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// ListCollections handles GET /api/v1/collections.
func (h *CollectionHandler) ListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := h.svc.ListCollections(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(collections, dto.ToCollectionResponse))
}

// CreateCollection handles POST /api/v1/collections.
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCollectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c := &catalog.Collection{Title: req.Title, Handle: req.Handle, Enabled: req.Enabled}
	tabs := make([]catalog.CollectionTab, len(req.Tabs))
	for i, t := range req.Tabs {
		tabs[i] = catalog.CollectionTab{Title: t.Title, SortKey: t.SortKey}
	}

	view, err := h.svc.CreateCollection(r.Context(), c, tabs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCollectionViewResponse(view))
}

// GetCollection handles GET /api/v1/collections/{id}.
func (h *CollectionHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.GetCollection(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCollectionViewResponse(view))
}

// DeleteCollection handles DELETE /api/v1/collections/{id}.
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteCollection(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/v1/collections/{id}/items.
func (h *CollectionHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CollectionItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), id, &catalog.CollectionItem{
		TabID:     req.TabID,
		ProductID: req.ProductID,
		SortKey:   req.SortKey,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCollectionItemResponse(item))
}

// RemoveItem handles DELETE /api/v1/collections/{id}/items/{itemId}.
func (h *CollectionHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.RemoveItem(r.Context(), id, itemID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SwapItems handles POST /api/v1/collections/{id}/items/swap.
func (h *CollectionHandler) SwapItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SwapItemsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items, err := h.svc.SwapItems(r.Context(), id, req.A, req.B)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(items, dto.ToCollectionItemResponse))
}

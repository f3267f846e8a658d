package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// MenuHandler handles HTTP requests for menus and their item trees.
type MenuHandler struct {
	svc ports.MenuService
}

// NewMenuHandler creates a new MenuHandler with the given service port.
func NewMenuHandler(svc ports.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func menuItemFromRequest(req *dto.MenuItemRequest) *catalog.MenuItem {
	return &catalog.MenuItem{
		ParentID: req.ParentID,
		Label:    req.Label,
		URL:      req.URL,
		SortKey:  req.SortKey,
		Enabled:  req.IsEnabled(),
	}
}

// ListMenus handles GET /api/v1/menus.
func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.svc.ListMenus(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(menus, dto.ToMenuResponse))
}

// CreateMenu handles POST /api/v1/menus.
func (h *MenuHandler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	var req dto.MenuRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := h.svc.CreateMenu(r.Context(), &catalog.Menu{Title: req.Title, Handle: req.Handle})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMenuResponse(m))
}

// GetMenu handles GET /api/v1/menus/{id}.
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	m, err := h.svc.GetMenu(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMenuResponse(m))
}

// DeleteMenu handles DELETE /api/v1/menus/{id}.
func (h *MenuHandler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteMenu(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTree handles GET /api/v1/menus/{id}/tree?enabled=true.
func (h *MenuHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	enabledOnly, err := queryBool(r, "enabled")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	roots, err := h.svc.Tree(r.Context(), id, enabledOnly)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMenuTreeResponse(roots))
}

// AddItem handles POST /api/v1/menus/{id}/items.
func (h *MenuHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MenuItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.svc.AddItem(r.Context(), id, menuItemFromRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMenuItemResponse(item))
}

// UpdateItem handles PUT /api/v1/menus/{id}/items/{itemId}.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
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

	var req dto.MenuItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, itemID, menuItemFromRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMenuItemResponse(item))
}

// RemoveItem handles DELETE /api/v1/menus/{id}/items/{itemId}.
func (h *MenuHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
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

// Reorder handles POST /api/v1/menus/{id}/reorder.
func (h *MenuHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	items, err := h.svc.Reorder(r.Context(), id, req.ToPlacements())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(items, dto.ToMenuItemResponse))
}

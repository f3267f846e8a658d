package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// TagHandler handles HTTP requests for custom tags.
type TagHandler struct {
	svc ports.LinkedService[catalog.Tag]
}

// NewTagHandler creates a new TagHandler with the given service port.
func NewTagHandler(svc ports.LinkedService[catalog.Tag]) *TagHandler {
	return &TagHandler{svc: svc}
}

// ListTags handles GET /api/v1/tags.
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(tags, dto.ToTagResponse))
}

// CreateTag handles POST /api/v1/tags.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req dto.TagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), &catalog.Tag{Value: req.Value}, req.ProductIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToLinkedTagResponse(created))
}

// GetTag handles GET /api/v1/tags/{id}.
func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	tag, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLinkedTagResponse(tag))
}

// UpdateTag handles PUT /api/v1/tags/{id}.
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.TagRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, &catalog.Tag{Value: req.Value}, req.ProductIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLinkedTagResponse(updated))
}

// DeleteTag handles DELETE /api/v1/tags/{id}.
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

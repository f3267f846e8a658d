// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// BrandHandler handles HTTP requests for brands and their product links.
type BrandHandler struct {
	svc ports.LinkedService[catalog.Brand]
}

// NewBrandHandler creates a new BrandHandler with the given service port.
func NewBrandHandler(svc ports.LinkedService[catalog.Brand]) *BrandHandler {
	return &BrandHandler{svc: svc}
}

func brandFromRequest(req *dto.BrandRequest) *catalog.Brand {
	return &catalog.Brand{Name: req.Name, Handle: req.Handle, Description: req.Description}
}

// ListBrands handles GET /api/v1/brands.
func (h *BrandHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.svc.List(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListResponse(brands, dto.ToBrandResponse))
}

// CreateBrand handles POST /api/v1/brands.
func (h *BrandHandler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req dto.BrandRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), brandFromRequest(&req), req.ProductIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToLinkedBrandResponse(created))
}

// GetBrand handles GET /api/v1/brands/{id}.
func (h *BrandHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLinkedBrandResponse(b))
}

// UpdateBrand handles PUT /api/v1/brands/{id}.
func (h *BrandHandler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BrandRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, brandFromRequest(&req), req.ProductIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToLinkedBrandResponse(updated))
}

// DeleteBrand handles DELETE /api/v1/brands/{id}.
func (h *BrandHandler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
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

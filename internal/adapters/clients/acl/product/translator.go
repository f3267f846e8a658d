package product

import (
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
)

// Downstream product states.
const (
	stateActive   = "ACTIVE"
	stateDraft    = "DRAFT"
	stateArchived = "ARCHIVED"
)

// ToDomainProduct converts a downstream ProductDTO to the read-only domain
// view. Unknown states map to catalog.ProductStatusUnknown.
func ToDomainProduct(dto *ProductDTO) catalog.Product {
	return catalog.Product{
		ID:     dto.ID,
		Title:  strings.TrimSpace(dto.Title),
		Status: toDomainStatus(dto.State),
	}
}

func toDomainStatus(state string) string {
	switch strings.ToUpper(state) {
	case stateActive:
		return catalog.ProductStatusActive
	case stateDraft:
		return catalog.ProductStatusDraft
	case stateArchived:
		return catalog.ProductStatusArchived
	default:
		return catalog.ProductStatusUnknown
	}
}

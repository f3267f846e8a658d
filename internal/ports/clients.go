package ports

import (
	"context"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
)

// ProductClient defines the client port for the downstream product catalog.
// Products are owned by another subsystem; this service only checks that
// the ids it links to exist.
type ProductClient interface {
	// GetProduct returns a product summary by id.
	// Returns domain.ErrNotFound if the product does not exist.
	GetProduct(ctx context.Context, id string) (*catalog.Product, error)
}

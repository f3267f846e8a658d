package ports

import (
	"context"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
)

// Linked pairs a record with the ids of the products it is linked to.
type Linked[T any] struct {
	Record     T
	ProductIDs []string
}

// LinkedService manages a top-level record type whose products are tracked
// as soft links (brands, tags). Every mutation runs as one saga operation.
type LinkedService[T any] interface {
	// Create stores the record and links it to productIDs.
	// Returns domain.ErrValidation if the record is invalid, or
	// domain.ErrNotFound if a product does not exist.
	Create(ctx context.Context, rec *T, productIDs []string) (*Linked[T], error)

	// Get returns a record with its linked product ids.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, id string) (*Linked[T], error)

	// List returns every record without product ids.
	List(ctx context.Context) ([]T, error)

	// Update replaces the record and reconciles its product links: links to
	// products no longer listed are removed, new ones are added.
	// A nil productIDs leaves links unchanged.
	Update(ctx context.Context, id string, rec *T, productIDs []string) (*Linked[T], error)

	// Delete dismisses every link of the record and deletes it.
	// Returns domain.ErrNotFound if the record does not exist.
	Delete(ctx context.Context, id string) error
}

// CollectionView is a collection with its tabs and items in display order.
type CollectionView struct {
	Collection catalog.Collection
	Tabs       []catalog.CollectionTab
	Items      []catalog.CollectionItem
}

// CollectionService defines the service port for curated collections.
type CollectionService interface {
	// CreateCollection stores a collection and its initial tabs.
	CreateCollection(ctx context.Context, c *catalog.Collection, tabs []catalog.CollectionTab) (*CollectionView, error)

	// GetCollection returns a collection with tabs and items.
	// Returns domain.ErrNotFound if the collection does not exist.
	GetCollection(ctx context.Context, id string) (*CollectionView, error)

	// ListCollections returns every collection without tabs or items.
	ListCollections(ctx context.Context) ([]catalog.Collection, error)

	// DeleteCollection dismisses item links, deletes items and tabs, then
	// deletes the collection.
	DeleteCollection(ctx context.Context, id string) error

	// AddItem verifies the product, stores the item and links it.
	AddItem(ctx context.Context, collectionID string, item *catalog.CollectionItem) (*catalog.CollectionItem, error)

	// RemoveItem dismisses the item's product link and deletes it.
	RemoveItem(ctx context.Context, collectionID, itemID string) error

	// SwapItems exchanges the sort keys of two items of the same collection.
	SwapItems(ctx context.Context, collectionID, a, b string) ([]catalog.CollectionItem, error)
}

// MenuService defines the service port for navigation menus.
type MenuService interface {
	CreateMenu(ctx context.Context, m *catalog.Menu) (*catalog.Menu, error)
	GetMenu(ctx context.Context, id string) (*catalog.Menu, error)
	ListMenus(ctx context.Context) ([]catalog.Menu, error)

	// DeleteMenu deletes every item of the menu, then the menu.
	DeleteMenu(ctx context.Context, id string) error

	AddItem(ctx context.Context, menuID string, item *catalog.MenuItem) (*catalog.MenuItem, error)
	UpdateItem(ctx context.Context, menuID, itemID string, item *catalog.MenuItem) (*catalog.MenuItem, error)

	// RemoveItem deletes an item together with its whole subtree.
	RemoveItem(ctx context.Context, menuID, itemID string) error

	// Tree returns the menu's items as an ordered forest. With enabledOnly,
	// disabled items and their subtrees are omitted.
	Tree(ctx context.Context, menuID string, enabledOnly bool) ([]*tree.Node[catalog.MenuItem], error)

	// Reorder moves items as one operation. Either every placement is
	// applied or every item is restored to its prior position.
	// Returns domain.ErrValidation for duplicate ids or a resulting cycle.
	Reorder(ctx context.Context, menuID string, placements []tree.Placement) ([]catalog.MenuItem, error)
}

// ReconciliationService exposes the reconciliation log to operators.
type ReconciliationService interface {
	List(ctx context.Context, includeResolved bool) ([]ReconciliationEntry, error)
	Resolve(ctx context.Context, id string) error
}

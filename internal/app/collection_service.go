package app

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/links"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/reorder"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Compile-time check that CollectionService implements ports.CollectionService.
var _ ports.CollectionService = (*CollectionService)(nil)

// CollectionService implements ports.CollectionService. Collection items
// reference products by id and mirror that reference as a soft link.
type CollectionService struct {
	collections ports.EntityStore[catalog.Collection]
	tabs        ports.EntityStore[catalog.CollectionTab]
	items       ports.EntityStore[catalog.CollectionItem]
	deps        Deps
	swapper     *reorder.Coordinator[catalog.CollectionItem]
	logger      *slog.Logger
}

// NewCollectionService creates a CollectionService.
func NewCollectionService(
	collections ports.EntityStore[catalog.Collection],
	tabs ports.EntityStore[catalog.CollectionTab],
	items ports.EntityStore[catalog.CollectionItem],
	deps Deps,
) *CollectionService {
	return &CollectionService{
		collections: collections,
		tabs:        tabs,
		items:       items,
		deps:        deps,
		swapper:     reorder.New("SwapCollectionItems", items, collectionItemAccessor, deps.Exec, deps.Workers),
		logger:      deps.logger(),
	}
}

var collectionItemAccessor = reorder.Accessor[catalog.CollectionItem]{
	ID:       func(i *catalog.CollectionItem) string { return i.ID },
	Position: func(i *catalog.CollectionItem) tree.Position { return tree.Position{SortKey: i.SortKey} },
	SetPosition: func(i *catalog.CollectionItem, p tree.Position) {
		i.SortKey = p.SortKey
	},
}

func collectionID(c *catalog.Collection) string { return c.ID }
func tabID(t *catalog.CollectionTab) string     { return t.ID }
func itemID(i *catalog.CollectionItem) string   { return i.ID }

func itemRef(id string) link.Ref {
	return link.Ref{Entity: catalog.KindCollectionItem, Key: link.CollectionItemProduct.From.Key, Value: id}
}

func sortTabs(tabs []catalog.CollectionTab) {
	slices.SortStableFunc(tabs, func(a, b catalog.CollectionTab) int {
		return cmp.Or(cmp.Compare(a.SortKey, b.SortKey), cmp.Compare(a.ID, b.ID))
	})
}

func sortItems(items []catalog.CollectionItem) {
	slices.SortStableFunc(items, func(a, b catalog.CollectionItem) int {
		return cmp.Or(cmp.Compare(a.SortKey, b.SortKey), cmp.Compare(a.ID, b.ID))
	})
}

type createCollectionRun struct {
	collection *catalog.Collection
	tabs       []catalog.CollectionTab
}

// CreateCollection stores a collection and its initial tabs.
func (s *CollectionService) CreateCollection(ctx context.Context, c *catalog.Collection, tabs []catalog.CollectionTab) (*ports.CollectionView, error) {
	s.logger.InfoContext(ctx, "creating collection", slog.String("handle", c.Handle), slog.Int("tabs", len(tabs)))

	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	prepared := make([]catalog.CollectionTab, len(tabs))
	for i, t := range tabs {
		t.CollectionID = c.ID
		if err := t.Validate(); err != nil {
			return nil, err
		}
		prepared[i] = t
	}

	out, err := saga.New[*createCollectionRun, *ports.CollectionView]("CreateCollection",
		saga.CreateRecord("create collection", s.collections,
			func(r *createCollectionRun) *catalog.Collection { return r.collection }, collectionID),
		saga.CreateRecords("create tabs", s.tabs,
			func(r *createCollectionRun) []catalog.CollectionTab { return r.tabs }, tabID),
	).WithResult(func(_ *createCollectionRun, results []any) (*ports.CollectionView, error) {
		view := &ports.CollectionView{Collection: *results[0].(*catalog.Collection)}
		view.Tabs = results[1].([]catalog.CollectionTab)
		sortTabs(view.Tabs)
		return view, nil
	}).Run(ctx, s.deps.Exec, &createCollectionRun{collection: c, tabs: prepared})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create collection",
			slog.String("operation", "CreateCollection"),
			slog.String("collection_id", c.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// GetCollection returns a collection with its tabs and items in display order.
func (s *CollectionService) GetCollection(ctx context.Context, id string) (*ports.CollectionView, error) {
	c, err := s.collections.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}

	tabs, err := s.tabs.List(ctx, ports.ListFilter{OwnerID: id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list collection tabs",
			slog.String("operation", "GetCollection"),
			slog.String("collection_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	items, err := s.items.List(ctx, ports.ListFilter{OwnerID: id})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list collection items",
			slog.String("operation", "GetCollection"),
			slog.String("collection_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	sortTabs(tabs)
	sortItems(items)
	return &ports.CollectionView{Collection: *c, Tabs: tabs, Items: items}, nil
}

// ListCollections returns every collection without tabs or items.
func (s *CollectionService) ListCollections(ctx context.Context) ([]catalog.Collection, error) {
	return s.collections.List(ctx, ports.ListFilter{})
}

type deleteCollectionRun struct {
	id      string
	itemIDs []string
}

// DeleteCollection dismisses the product links of every item, deletes the
// items and tabs, then deletes the collection.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting collection", slog.String("collection_id", id))

	if _, err := s.collections.Retrieve(ctx, id); err != nil {
		return err
	}
	items, err := s.items.List(ctx, ports.ListFilter{OwnerID: id})
	if err != nil {
		return err
	}
	r := &deleteCollectionRun{id: id}
	for _, it := range items {
		r.itemIDs = append(r.itemIDs, it.ID)
	}

	_, err = saga.New[*deleteCollectionRun, struct{}]("DeleteCollection",
		links.DismissStep(s.deps.Registry, "dismiss item links", func(r *deleteCollectionRun) []link.Ref {
			refs := make([]link.Ref, 0, len(r.itemIDs))
			for _, id := range r.itemIDs {
				refs = append(refs, itemRef(id))
			}
			return refs
		}),
		saga.DeleteRecords("delete items", s.items, func(r *deleteCollectionRun) string { return r.id }, itemID),
		saga.DeleteRecords("delete tabs", s.tabs, func(r *deleteCollectionRun) string { return r.id }, tabID),
		saga.DeleteRecord[catalog.Collection]("delete collection", s.collections, func(r *deleteCollectionRun) string { return r.id }),
	).Run(ctx, s.deps.Exec, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete collection",
			slog.String("operation", "DeleteCollection"),
			slog.String("collection_id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// AddItem verifies the product, stores the item and links it to the product.
func (s *CollectionService) AddItem(ctx context.Context, collectionID string, item *catalog.CollectionItem) (*catalog.CollectionItem, error) {
	s.logger.InfoContext(ctx, "adding collection item",
		slog.String("collection_id", collectionID),
		slog.String("product_id", item.ProductID),
	)

	item.CollectionID = collectionID
	if err := item.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.collections.Retrieve(ctx, collectionID); err != nil {
		return nil, err
	}
	if item.TabID != "" {
		tab, err := s.tabs.Retrieve(ctx, item.TabID)
		if err != nil || tab.CollectionID != collectionID {
			return nil, domain.NewValidationError("tab_id", "must reference a tab of the collection")
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	out, err := saga.New[*catalog.CollectionItem, *catalog.CollectionItem]("AddCollectionItem",
		links.VerifyProducts(s.deps.Products, 1, func(i *catalog.CollectionItem) []string { return []string{i.ProductID} }),
		saga.CreateRecord("create item", s.items, func(i *catalog.CollectionItem) *catalog.CollectionItem { return i }, itemID),
		links.LinkStep(s.deps.Registry, "link product", func(i *catalog.CollectionItem) []link.Attributes {
			return []link.Attributes{link.Between(link.CollectionItemProduct, i.ID, i.ProductID)}
		}),
	).WithResult(func(_ *catalog.CollectionItem, results []any) (*catalog.CollectionItem, error) {
		return results[1].(*catalog.CollectionItem), nil
	}).Run(ctx, s.deps.Exec, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add collection item",
			slog.String("operation", "AddCollectionItem"),
			slog.String("collection_id", collectionID),
			slog.String("item_id", item.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// RemoveItem dismisses the item's product link and deletes the item.
func (s *CollectionService) RemoveItem(ctx context.Context, collectionID, itemID string) error {
	s.logger.InfoContext(ctx, "removing collection item",
		slog.String("collection_id", collectionID),
		slog.String("item_id", itemID),
	)

	if _, err := s.itemOf(ctx, collectionID, itemID); err != nil {
		return err
	}

	_, err := saga.New[string, struct{}]("RemoveCollectionItem",
		links.DismissStep(s.deps.Registry, "dismiss product link", func(id string) []link.Ref {
			return []link.Ref{itemRef(id)}
		}),
		saga.DeleteRecord[catalog.CollectionItem]("delete item", s.items, func(id string) string { return id }),
	).Run(ctx, s.deps.Exec, itemID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove collection item",
			slog.String("operation", "RemoveCollectionItem"),
			slog.String("collection_id", collectionID),
			slog.String("item_id", itemID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// SwapItems exchanges the sort keys of two items of the same collection.
func (s *CollectionService) SwapItems(ctx context.Context, collectionID, a, b string) ([]catalog.CollectionItem, error) {
	s.logger.InfoContext(ctx, "swapping collection items",
		slog.String("collection_id", collectionID),
		slog.String("a", a),
		slog.String("b", b),
	)

	for _, id := range []string{a, b} {
		if _, err := s.itemOf(ctx, collectionID, id); err != nil {
			return nil, err
		}
	}

	out, err := s.swapper.Swap(ctx, a, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to swap collection items",
			slog.String("operation", "SwapCollectionItems"),
			slog.String("collection_id", collectionID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// itemOf returns the item if it belongs to the collection.
func (s *CollectionService) itemOf(ctx context.Context, collectionID, itemID string) (*catalog.CollectionItem, error) {
	item, err := s.items.Retrieve(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.CollectionID != collectionID {
		return nil, domain.NotFoundError(catalog.KindCollectionItem, itemID)
	}
	return item, nil
}

package app

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/reorder"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Compile-time check that MenuService implements ports.MenuService.
var _ ports.MenuService = (*MenuService)(nil)

// MenuService implements ports.MenuService. Menu items form a tree through
// their parent ids; reads rebuild it with package tree.
type MenuService struct {
	menus    ports.EntityStore[catalog.Menu]
	items    ports.EntityStore[catalog.MenuItem]
	deps     Deps
	reorders *reorder.Coordinator[catalog.MenuItem]
	logger   *slog.Logger
}

// NewMenuService creates a MenuService.
func NewMenuService(menus ports.EntityStore[catalog.Menu], items ports.EntityStore[catalog.MenuItem], deps Deps) *MenuService {
	return &MenuService{
		menus:    menus,
		items:    items,
		deps:     deps,
		reorders: reorder.New("ReorderMenu", items, MenuItemAccessor, deps.Exec, deps.Workers),
		logger:   deps.logger(),
	}
}

// MenuItemAccessor exposes the position of a menu item to the reorder
// coordinator.
var MenuItemAccessor = reorder.Accessor[catalog.MenuItem]{
	ID: func(m *catalog.MenuItem) string { return m.ID },
	Position: func(m *catalog.MenuItem) tree.Position {
		return tree.Position{SortKey: m.SortKey, ParentID: catalog.MenuItemAttrs(*m).ParentID}
	},
	SetPosition: func(m *catalog.MenuItem, p tree.Position) {
		m.SortKey = p.SortKey
		m.ParentID = nil
		if p.ParentID != "" {
			parent := p.ParentID
			m.ParentID = &parent
		}
	},
}

func menuID(m *catalog.Menu) string         { return m.ID }
func menuItemID(m *catalog.MenuItem) string { return m.ID }

// CreateMenu validates and stores a menu.
func (s *MenuService) CreateMenu(ctx context.Context, m *catalog.Menu) (*catalog.Menu, error) {
	s.logger.InfoContext(ctx, "creating menu", slog.String("handle", m.Handle))

	if err := m.Validate(); err != nil {
		return nil, err
	}

	out, err := saga.New[*catalog.Menu, *catalog.Menu]("CreateMenu",
		saga.CreateRecord("create menu", s.menus, func(m *catalog.Menu) *catalog.Menu { return m }, menuID),
	).Run(ctx, s.deps.Exec, m)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create menu",
			slog.String("operation", "CreateMenu"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return out, nil
}

// GetMenu returns a menu without its items.
func (s *MenuService) GetMenu(ctx context.Context, id string) (*catalog.Menu, error) {
	return s.menus.Retrieve(ctx, id)
}

// ListMenus returns every menu.
func (s *MenuService) ListMenus(ctx context.Context) ([]catalog.Menu, error) {
	return s.menus.List(ctx, ports.ListFilter{})
}

// DeleteMenu deletes every item of the menu, then the menu.
func (s *MenuService) DeleteMenu(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting menu", slog.String("menu_id", id))

	if _, err := s.menus.Retrieve(ctx, id); err != nil {
		return err
	}

	_, err := saga.New[string, struct{}]("DeleteMenu",
		saga.DeleteRecords("delete items", s.items, func(id string) string { return id }, menuItemID),
		saga.DeleteRecord[catalog.Menu]("delete menu", s.menus, func(id string) string { return id }),
	).Run(ctx, s.deps.Exec, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete menu",
			slog.String("operation", "DeleteMenu"),
			slog.String("menu_id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// AddItem stores a new item. A parent, when given, must be an item of the
// same menu.
func (s *MenuService) AddItem(ctx context.Context, menuID string, item *catalog.MenuItem) (*catalog.MenuItem, error) {
	s.logger.InfoContext(ctx, "adding menu item", slog.String("menu_id", menuID))

	item.MenuID = menuID
	if err := item.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.menuItems(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := checkParent(item, existing); err != nil {
		return nil, err
	}

	out, err := saga.New[*catalog.MenuItem, *catalog.MenuItem]("AddMenuItem",
		saga.CreateRecord("create item", s.items, func(m *catalog.MenuItem) *catalog.MenuItem { return m }, menuItemID),
	).Run(ctx, s.deps.Exec, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to add menu item",
			slog.String("operation", "AddMenuItem"),
			slog.String("menu_id", menuID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return out, nil
}

// UpdateItem replaces an item. Moving it under one of its own descendants
// is rejected.
func (s *MenuService) UpdateItem(ctx context.Context, menuID, itemID string, item *catalog.MenuItem) (*catalog.MenuItem, error) {
	s.logger.InfoContext(ctx, "updating menu item", slog.String("menu_id", menuID), slog.String("item_id", itemID))

	item.ID = itemID
	item.MenuID = menuID
	if err := item.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.menuItems(ctx, menuID)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(existing, func(m catalog.MenuItem) bool { return m.ID == itemID })
	if idx < 0 {
		return nil, domain.NotFoundError(catalog.KindMenuItem, itemID)
	}
	if err := checkParent(item, existing); err != nil {
		return nil, err
	}
	existing[idx] = *item
	if err := tree.Validate(existing, catalog.MenuItemAttrs); err != nil {
		return nil, err
	}

	out, err := saga.New[*catalog.MenuItem, *catalog.MenuItem]("UpdateMenuItem",
		saga.UpdateRecord("update item", s.items, func(m *catalog.MenuItem) *catalog.MenuItem { return m }, menuItemID),
	).Run(ctx, s.deps.Exec, item)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update menu item",
			slog.String("operation", "UpdateMenuItem"),
			slog.String("item_id", itemID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return out, nil
}

// RemoveItem deletes an item and its whole subtree, deepest items first.
func (s *MenuService) RemoveItem(ctx context.Context, menuID, itemID string) error {
	s.logger.InfoContext(ctx, "removing menu item", slog.String("menu_id", menuID), slog.String("item_id", itemID))

	existing, err := s.menuItems(ctx, menuID)
	if err != nil {
		return err
	}
	node := tree.Find(tree.Build(existing, catalog.MenuItemAttrs), itemID)
	if node == nil {
		return domain.NotFoundError(catalog.KindMenuItem, itemID)
	}

	subtree := tree.Flatten([]*tree.Node[catalog.MenuItem]{node})
	ids := make([]string, 0, len(subtree))
	for _, m := range slices.Backward(subtree) {
		ids = append(ids, m.ID)
	}

	_, err = saga.New[[]string, struct{}]("RemoveMenuItem",
		saga.DeleteSelected[catalog.MenuItem]("delete subtree", s.items, func(ids []string) []string { return ids }, menuItemID),
	).Run(ctx, s.deps.Exec, ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove menu item",
			slog.String("operation", "RemoveMenuItem"),
			slog.String("item_id", itemID),
			slog.Int("subtree", len(ids)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Tree returns the menu as an ordered forest.
func (s *MenuService) Tree(ctx context.Context, menuID string, enabledOnly bool) ([]*tree.Node[catalog.MenuItem], error) {
	items, err := s.menuItems(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if enabledOnly {
		return tree.BuildEnabled(items, catalog.MenuItemAttrs), nil
	}
	return tree.Build(items, catalog.MenuItemAttrs), nil
}

// Reorder moves items of one menu as a single operation. Every placement
// must name an item of the menu, and the resulting hierarchy must be
// acyclic.
func (s *MenuService) Reorder(ctx context.Context, menuID string, placements []tree.Placement) ([]catalog.MenuItem, error) {
	s.logger.InfoContext(ctx, "reordering menu", slog.String("menu_id", menuID), slog.Int("placements", len(placements)))

	if err := reorder.ValidatePlacements(placements); err != nil {
		return nil, err
	}

	existing, err := s.menuItems(ctx, menuID)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(existing))
	for i, m := range existing {
		index[m.ID] = i
	}
	for _, p := range placements {
		i, ok := index[p.ID]
		if !ok {
			return nil, domain.NotFoundError(catalog.KindMenuItem, p.ID)
		}
		if p.ParentID != nil && *p.ParentID != "" {
			if _, ok := index[*p.ParentID]; !ok {
				return nil, domain.NewValidationError("parent_id", "must reference an item of the menu: "+*p.ParentID)
			}
		}
		MenuItemAccessor.SetPosition(&existing[i], p.Apply(MenuItemAccessor.Position(&existing[i])))
	}
	if err := tree.Validate(existing, catalog.MenuItemAttrs); err != nil {
		return nil, err
	}

	out, err := s.reorders.Reorder(ctx, placements)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to reorder menu",
			slog.String("operation", "ReorderMenu"),
			slog.String("menu_id", menuID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return out, nil
}

func (s *MenuService) menuItems(ctx context.Context, menuID string) ([]catalog.MenuItem, error) {
	if _, err := s.menus.Retrieve(ctx, menuID); err != nil {
		return nil, err
	}
	return s.items.List(ctx, ports.ListFilter{OwnerID: menuID})
}

// checkParent requires item's parent, when set, to be another item of the
// same menu.
func checkParent(item *catalog.MenuItem, existing []catalog.MenuItem) error {
	if item.ParentID == nil || *item.ParentID == "" {
		item.ParentID = nil
		return nil
	}
	for _, m := range existing {
		if m.ID == *item.ParentID && m.ID != item.ID {
			return nil
		}
	}
	return domain.NewValidationError("parent_id", "must reference another item of the menu")
}

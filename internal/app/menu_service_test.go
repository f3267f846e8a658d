package app

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

type menuFixture struct {
	svc   *MenuService
	items *memory.Store[catalog.MenuItem, *catalog.MenuItem]
	menu  *catalog.Menu
	// shop, sale, shoes (child of shop), hidden (disabled child of sale)
	ids map[string]string
}

func newMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	f := newFixture(t)
	items := memory.NewStore[catalog.MenuItem]()
	svc := NewMenuService(memory.NewStore[catalog.Menu](), items, f.deps)
	ctx := context.Background()

	menu, err := svc.CreateMenu(ctx, &catalog.Menu{Title: "Header", Handle: "header"})
	if err != nil {
		t.Fatalf("CreateMenu() error = %v", err)
	}

	mf := &menuFixture{svc: svc, items: items, menu: menu, ids: make(map[string]string)}
	add := func(label string, parent string, sortKey int, enabled bool) {
		item := &catalog.MenuItem{Label: label, SortKey: sortKey, Enabled: enabled}
		if parent != "" {
			item.ParentID = strPtr(mf.ids[parent])
		}
		out, err := svc.AddItem(ctx, menu.ID, item)
		if err != nil {
			t.Fatalf("AddItem(%s) error = %v", label, err)
		}
		mf.ids[label] = out.ID
	}
	add("shop", "", 1, true)
	add("sale", "", 2, true)
	add("shoes", "shop", 1, true)
	add("hidden", "sale", 1, false)
	return mf
}

func labels(nodes []*tree.Node[catalog.MenuItem]) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Value.Label)
		for _, c := range labels(n.Children) {
			out = append(out, n.Value.Label+"/"+c)
		}
	}
	return out
}


func TestMenuService_Tree(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)

	tests := []struct {
		name        string
		enabledOnly bool
		want        []string
	}{
		{name: "full", want: []string{"shop", "shop/shoes", "sale", "sale/hidden"}},
		{name: "enabled only", enabledOnly: true, want: []string{"shop", "shop/shoes", "sale"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, err := mf.svc.Tree(context.Background(), mf.menu.ID, tt.enabledOnly)
			if err != nil {
				t.Fatalf("Tree() error = %v", err)
			}
			if got := labels(roots); !slices.Equal(got, tt.want) {
				t.Errorf("Tree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuService_AddItemUnknownParent(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)

	_, err := mf.svc.AddItem(context.Background(), mf.menu.ID, &catalog.MenuItem{
		Label: "orphan", ParentID: strPtr("missing"),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("AddItem() error = %v, want ErrValidation", err)
	}
}

func TestMenuService_UpdateItemRejectsCycle(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)

	_, err := mf.svc.UpdateItem(context.Background(), mf.menu.ID, mf.ids["shop"], &catalog.MenuItem{
		Label: "shop", SortKey: 1, Enabled: true, ParentID: strPtr(mf.ids["shoes"]),
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateItem() error = %v, want ErrValidation", err)
	}
}

func TestMenuService_Reorder(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)
	ctx := context.Background()

	_, err := mf.svc.Reorder(ctx, mf.menu.ID, []tree.Placement{
		{ID: mf.ids["shop"], SortKey: 2},
		{ID: mf.ids["sale"], SortKey: 1},
		{ID: mf.ids["shoes"], SortKey: 3, ParentID: strPtr("")},
	})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}

	roots, _ := mf.svc.Tree(ctx, mf.menu.ID, false)
	want := []string{"sale", "sale/hidden", "shop", "shoes"}
	if got := labels(roots); !slices.Equal(got, want) {
		t.Errorf("Tree() after reorder = %v, want %v", got, want)
	}
}

func TestMenuService_ReorderRejected(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)

	tests := []struct {
		name       string
		placements func() []tree.Placement
		want       error
	}{
		{
			name: "cycle",
			placements: func() []tree.Placement {
				return []tree.Placement{{ID: mf.ids["shop"], SortKey: 1, ParentID: strPtr(mf.ids["shoes"])}}
			},
			want: domain.ErrValidation,
		},
		{
			name: "duplicate ids",
			placements: func() []tree.Placement {
				return []tree.Placement{{ID: mf.ids["shop"], SortKey: 1}, {ID: mf.ids["shop"], SortKey: 2}}
			},
			want: domain.ErrValidation,
		},
		{
			name: "parent outside menu",
			placements: func() []tree.Placement {
				return []tree.Placement{{ID: mf.ids["shop"], SortKey: 1, ParentID: strPtr("elsewhere")}}
			},
			want: domain.ErrValidation,
		},
		{
			name: "unknown item",
			placements: func() []tree.Placement {
				return []tree.Placement{{ID: "missing", SortKey: 1}}
			},
			want: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mf.svc.Reorder(context.Background(), mf.menu.ID, tt.placements())
			if !errors.Is(err, tt.want) {
				t.Fatalf("Reorder() error = %v, want %v", err, tt.want)
			}
		})
	}

	roots, _ := mf.svc.Tree(context.Background(), mf.menu.ID, false)
	if got := labels(roots); !slices.Equal(got, []string{"shop", "shop/shoes", "sale", "sale/hidden"}) {
		t.Errorf("Tree() after rejected reorders = %v, want unchanged", got)
	}
}

func TestMenuService_RemoveItemDeletesSubtree(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)
	ctx := context.Background()

	if err := mf.svc.RemoveItem(ctx, mf.menu.ID, mf.ids["shop"]); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	for _, label := range []string{"shop", "shoes"} {
		if _, err := mf.items.Retrieve(ctx, mf.ids[label]); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Retrieve(%s) error = %v, want ErrNotFound", label, err)
		}
	}
	if err := mf.svc.RemoveItem(ctx, mf.menu.ID, mf.ids["shop"]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RemoveItem() twice error = %v, want ErrNotFound", err)
	}
}

func TestMenuService_DeleteMenu(t *testing.T) {
	t.Parallel()
	mf := newMenuFixture(t)
	ctx := context.Background()

	if err := mf.svc.DeleteMenu(ctx, mf.menu.ID); err != nil {
		t.Fatalf("DeleteMenu() error = %v", err)
	}
	if left, _ := mf.items.List(ctx, ports.ListFilter{}); len(left) != 0 {
		t.Errorf("items left = %d, want 0", len(left))
	}
	if _, err := mf.svc.Tree(ctx, mf.menu.ID, false); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Tree() error = %v, want ErrNotFound", err)
	}
}

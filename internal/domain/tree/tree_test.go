package tree_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
)

type item struct {
	id      string
	parent  string
	key     int
	enabled bool
	label   string
}

func attrsOf(i item) tree.Attrs {
	return tree.Attrs{ID: i.id, ParentID: i.parent, SortKey: i.key, Enabled: i.enabled}
}

func labelOf(i item) string { return i.label }

func menuFixture() []item {
	return []item{
		{id: "shoes", parent: "women", key: 5, enabled: true, label: "Shoes"},
		{id: "shop", key: 1, enabled: true, label: "Shop"},
		{id: "sale", parent: "shop", key: 1, enabled: false, label: "Sale"},
		{id: "about", key: 9, enabled: true, label: "About"},
		{id: "men", parent: "shop", key: 1, enabled: true, label: "Men"},
		{id: "orphan", parent: "deleted", key: 0, enabled: true, label: "Orphan"},
		{id: "women", parent: "shop", key: 0, enabled: true, label: "Women"},
		{id: "home", key: 0, enabled: true, label: "Home"},
		{id: "bags", parent: "women", key: 5, enabled: true, label: "Bags"},
	}
}

func ids(nodes []*tree.Node[item]) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Value.id)
	}
	return out
}

func render(t *testing.T, roots []*tree.Node[item]) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := tree.Render(&buf, roots, labelOf); err != nil {
		t.Fatalf("Render() error = %v, want nil", err)
	}
	return buf.Bytes()
}

func TestBuild_Golden(t *testing.T) {
	t.Parallel()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	g.Assert(t, "menu_full", render(t, tree.Build(menuFixture(), attrsOf)))
	g.Assert(t, "menu_enabled", render(t, tree.BuildEnabled(menuFixture(), attrsOf)))
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	if got := tree.Build(nil, attrsOf); len(got) != 0 {
		t.Errorf("Build(nil) = %v, want empty", ids(got))
	}
}

func TestBuild_DanglingParentIsRoot(t *testing.T) {
	t.Parallel()

	roots := tree.Build([]item{
		{id: "a", parent: "gone", key: 1},
		{id: "b", key: 0},
	}, attrsOf)

	if got, want := ids(roots), []string{"b", "a"}; !slices.Equal(got, want) {
		t.Errorf("roots = %v, want %v", got, want)
	}
}

func TestBuild_DeterministicAcrossInputOrder(t *testing.T) {
	t.Parallel()

	want := render(t, tree.Build(menuFixture(), attrsOf))

	rng := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		items := menuFixture()
		rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

		if got := render(t, tree.Build(items, attrsOf)); !bytes.Equal(got, want) {
			t.Fatalf("Build() over shuffled input =\n%s\nwant\n%s", got, want)
		}
	}
}

func TestBuild_EveryNodeOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []item
	}{
		{name: "fixture", items: menuFixture()},
		{name: "self parent", items: []item{{id: "a", parent: "a"}, {id: "b", parent: "a"}}},
		{
			name: "two node cycle",
			items: []item{
				{id: "a", parent: "b", key: 2},
				{id: "b", parent: "a", key: 1},
				{id: "c", parent: "a"},
			},
		},
		{
			name: "three node cycle with tail",
			items: []item{
				{id: "x", parent: "z"},
				{id: "y", parent: "x"},
				{id: "z", parent: "y"},
				{id: "tail", parent: "y"},
				{id: "root"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flat := tree.Flatten(tree.Build(tt.items, attrsOf))
			if len(flat) != len(tt.items) {
				t.Fatalf("Flatten() len = %d, want %d", len(flat), len(tt.items))
			}

			seen := make(map[string]int)
			for _, it := range flat {
				seen[it.id]++
			}
			for _, it := range tt.items {
				if seen[it.id] != 1 {
					t.Errorf("node %q appears %d times, want 1", it.id, seen[it.id])
				}
			}
		})
	}
}

func TestBuild_CyclePromotesSmallestSortKey(t *testing.T) {
	t.Parallel()

	roots := tree.Build([]item{
		{id: "a", parent: "b", key: 2},
		{id: "b", parent: "a", key: 1},
	}, attrsOf)

	if got, want := ids(roots), []string{"b"}; !slices.Equal(got, want) {
		t.Fatalf("roots = %v, want %v", got, want)
	}
	if got, want := ids(roots[0].Children), []string{"a"}; !slices.Equal(got, want) {
		t.Errorf("children of b = %v, want %v", got, want)
	}
}

func TestBuildEnabled_DisabledSubtreeHidden(t *testing.T) {
	t.Parallel()

	roots := tree.BuildEnabled([]item{
		{id: "R", enabled: true},
		{id: "A", parent: "R", enabled: false},
		{id: "B", parent: "A", enabled: true},
	}, attrsOf)

	if got, want := ids(roots), []string{"R"}; !slices.Equal(got, want) {
		t.Fatalf("roots = %v, want %v", got, want)
	}
	if len(roots[0].Children) != 0 {
		t.Errorf("R children = %v, want none", ids(roots[0].Children))
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	roots := tree.Build(menuFixture(), attrsOf)

	n := tree.Find(roots, "women")
	if n == nil {
		t.Fatal("Find(women) = nil")
	}
	if got, want := ids(n.Children), []string{"bags", "shoes"}; !slices.Equal(got, want) {
		t.Errorf("women children = %v, want %v", got, want)
	}
	if tree.Find(roots, "missing") != nil {
		t.Error("Find(missing) != nil")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		items      []item
		wantFields []string
	}{
		{name: "valid with dangling parent", items: menuFixture()},
		{name: "self parent", items: []item{{id: "a", parent: "a"}}, wantFields: []string{"a.parent_id"}},
		{
			name: "cycle",
			items: []item{
				{id: "a", parent: "b"},
				{id: "b", parent: "a"},
				{id: "c", parent: "a"},
			},
			wantFields: []string{"a.parent_id", "b.parent_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tree.Validate(tt.items, attrsOf)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *domain.ValidationError", err)
			}
			if len(ve.Fields) != len(tt.wantFields) {
				t.Errorf("Fields = %v, want keys %v", ve.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if _, ok := ve.Fields[f]; !ok {
					t.Errorf("Fields missing %q: %v", f, ve.Fields)
				}
			}
		})
	}
}

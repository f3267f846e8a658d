// Package storetest holds behavior tests shared by every ports.LinkStore
// backend.
package storetest

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

var (
	tagP1   = link.Link{Definition: link.TagProduct, FromValue: "t1", ToValue: "p1"}
	brandP1 = link.Link{Definition: link.BrandProduct, FromValue: "b1", ToValue: "p1"}
	tagP2   = link.Link{Definition: link.TagProduct, FromValue: "t1", ToValue: "p2"}
)

// LinkStore runs the link store behavior table against stores built by
// newStore. Every case gets a fresh, empty store.
func LinkStore(t *testing.T, newStore func(t *testing.T) ports.LinkStore) {
	t.Helper()

	tests := []struct {
		name string
		run  func(t *testing.T, ctx context.Context, s ports.LinkStore)
	}{
		{
			name: "put twice stores one link",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				mustPut(t, ctx, s, tagP1, true)
				mustPut(t, ctx, s, tagP1, false)
				requireFind(t, ctx, s, tagP1.From(), tagP1)
			},
		},
		{
			name: "remove of a missing link is a no-op",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				mustRemove(t, ctx, s, tagP1, false)
				mustPut(t, ctx, s, brandP1, true)
				mustRemove(t, ctx, s, tagP1, false)
				requireFind(t, ctx, s, brandP1.To(), brandP1)
			},
		},
		{
			name: "remove twice reports existence once",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				mustPut(t, ctx, s, tagP1, true)
				mustRemove(t, ctx, s, tagP1, true)
				mustRemove(t, ctx, s, tagP1, false)
				requireFind(t, ctx, s, tagP1.To())
				requireFind(t, ctx, s, tagP1.From())
			},
		},
		{
			name: "put after remove links again",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				mustPut(t, ctx, s, tagP1, true)
				mustRemove(t, ctx, s, tagP1, true)
				mustPut(t, ctx, s, tagP1, true)
				requireFind(t, ctx, s, tagP1.To(), tagP1)
			},
		},
		{
			name: "find matches either side ordered by key",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				for _, l := range []link.Link{tagP2, tagP1, brandP1} {
					mustPut(t, ctx, s, l, true)
				}
				requireFind(t, ctx, s, tagP1.To(), brandP1, tagP1)
				requireFind(t, ctx, s, tagP1.From(), tagP1, tagP2)
			},
		},
		{
			name: "find of an unknown ref is empty",
			run: func(t *testing.T, ctx context.Context, s ports.LinkStore) {
				mustPut(t, ctx, s, tagP1, true)
				requireFind(t, ctx, s, link.Ref{Entity: "product", Key: "product_id", Value: "p9"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.run(t, context.Background(), newStore(t))
		})
	}
}

func mustPut(t *testing.T, ctx context.Context, s ports.LinkStore, l link.Link, want bool) {
	t.Helper()
	added, err := s.Put(ctx, l)
	if err != nil {
		t.Fatalf("Put(%s) error = %v", l.Key(), err)
	}
	if added != want {
		t.Errorf("Put(%s) = %v, want %v", l.Key(), added, want)
	}
}

func mustRemove(t *testing.T, ctx context.Context, s ports.LinkStore, l link.Link, want bool) {
	t.Helper()
	removed, err := s.Remove(ctx, l)
	if err != nil {
		t.Fatalf("Remove(%s) error = %v", l.Key(), err)
	}
	if removed != want {
		t.Errorf("Remove(%s) = %v, want %v", l.Key(), removed, want)
	}
}

func requireFind(t *testing.T, ctx context.Context, s ports.LinkStore, ref link.Ref, want ...link.Link) {
	t.Helper()
	got, err := s.Find(ctx, ref)
	if err != nil {
		t.Fatalf("Find(%+v) error = %v", ref, err)
	}
	if len(got) != len(want) {
		t.Fatalf("Find(%+v) = %v, want %v", ref, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Find(%+v)[%d] = %v, want %v", ref, i, got[i], want[i])
		}
	}
}

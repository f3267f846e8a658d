package redislink

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/storetest"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// newTestStore starts an in-process Redis server for one test.
func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb), mr
}

func TestRefKey(t *testing.T) {
	t.Parallel()

	s := New(nil)
	got := s.refKey(link.Ref{Entity: "tag", Key: "custom_tag_id", Value: "t1"})
	want := "catalog:links:ref:tag.custom_tag_id=t1"
	if got != want {
		t.Errorf("refKey() = %q, want %q", got, want)
	}
	if s.Name() != "redis" {
		t.Errorf("Name() = %q, want redis", s.Name())
	}
}

func TestLinkStore(t *testing.T) {
	t.Parallel()
	storetest.LinkStore(t, func(t *testing.T) ports.LinkStore {
		s, _ := newTestStore(t)
		return s
	})
}

func TestStore_KeyLayout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mr := newTestStore(t)

	l := link.Link{Definition: link.TagProduct, FromValue: "t1", ToValue: "p1"}
	if _, err := s.Put(ctx, l); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if !mr.Exists("catalog:links:all") {
		t.Error("links hash missing")
	}
	for _, key := range []string{
		"catalog:links:ref:tag.custom_tag_id=t1",
		"catalog:links:ref:product.product_id=p1",
	} {
		members, err := mr.Members(key)
		if err != nil || len(members) != 1 || members[0] != l.Key() {
			t.Errorf("Members(%s) = %v, %v; want [%s]", key, members, err, l.Key())
		}
	}

	if _, err := s.Remove(ctx, l); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if mr.Exists("catalog:links:ref:product.product_id=p1") {
		t.Error("ref set still present after Remove")
	}
}

func TestStore_FindSkipsDanglingIndex(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mr := newTestStore(t)

	l := link.Link{Definition: link.TagProduct, FromValue: "t1", ToValue: "p1"}
	if _, err := s.Put(ctx, l); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	mr.HDel("catalog:links:all", l.Key())

	got, err := s.Find(ctx, l.To())
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Find() = %v, want none", got)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, mr := newTestStore(t)

	if err := s.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}

	mr.Close()
	if err := s.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() after shutdown = nil, want error")
	}
}

package app

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/links"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
	"github.com/jsamuelsen11/catalog-admin-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }

type fixture struct {
	links    *memory.LinkStore
	recon    *memory.ReconciliationLog
	products *mocks.MockProductClient
	deps     Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		links:    memory.NewLinkStore(),
		recon:    memory.NewReconciliationLog(),
		products: mocks.NewMockProductClient(t),
	}
	f.deps = Deps{
		Registry: links.NewRegistry(link.CatalogSchema(), f.links, discardLogger()),
		Products: f.products,
		Exec:     saga.NewExecutor(discardLogger(), saga.WithReconciliationLog(f.recon)),
		Workers:  4,
		Logger:   discardLogger(),
	}
	return f
}

func (f *fixture) productsExist(ids ...string) {
	for _, id := range ids {
		f.products.EXPECT().GetProduct(mock.Anything, id).Return(&catalog.Product{ID: id}, nil).Maybe()
	}
}

// failingDelete fails Delete for one id.
type failingDelete[T any] struct {
	ports.EntityStore[T]
	id  string
	err error
}

func (s *failingDelete[T]) Delete(ctx context.Context, id string) error {
	if id == s.id {
		return s.err
	}
	return s.EntityStore.Delete(ctx, id)
}

// --- LinkedService ---

func TestBrandService_CreateLinksProducts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.productsExist("p1", "p2")
	svc := NewBrandService(memory.NewStore[catalog.Brand](), f.deps)

	got, err := svc.Create(context.Background(), &catalog.Brand{Name: "Acme", Handle: "acme"}, []string{"p2", "p1", "p2"})
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if got.Record.ID == "" || got.Record.Name != "Acme" {
		t.Errorf("Create() record = %+v", got.Record)
	}
	if want := []string{"p1", "p2"}; !slices.Equal(got.ProductIDs, want) {
		t.Errorf("Create() ProductIDs = %v, want %v", got.ProductIDs, want)
	}
	if f.links.Len() != 2 {
		t.Errorf("stored links = %d, want 2", f.links.Len())
	}

	fetched, err := svc.Get(context.Background(), got.Record.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !slices.Equal(fetched.ProductIDs, []string{"p1", "p2"}) {
		t.Errorf("Get() ProductIDs = %v", fetched.ProductIDs)
	}
}

func TestBrandService_CreateValidation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	store := memory.NewStore[catalog.Brand]()
	svc := NewBrandService(store, f.deps)

	tests := []struct {
		name     string
		brand    catalog.Brand
		products []string
	}{
		{name: "missing name", brand: catalog.Brand{Handle: "acme"}},
		{name: "bad handle", brand: catalog.Brand{Name: "Acme", Handle: "Acme Inc"}},
		{name: "empty product id", brand: catalog.Brand{Name: "Acme", Handle: "acme"}, products: []string{"p1", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.brand, tt.products)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}
		})
	}

	if all, _ := store.List(context.Background(), ports.ListFilter{}); len(all) != 0 {
		t.Errorf("stored brands = %d, want 0", len(all))
	}
}

func TestBrandService_CreateUnknownProduct(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.productsExist("p1")
	f.products.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, domain.NotFoundError("product", "ghost"))
	store := memory.NewStore[catalog.Brand]()
	svc := NewBrandService(store, f.deps)

	_, err := svc.Create(context.Background(), &catalog.Brand{Name: "Acme", Handle: "acme"}, []string{"p1", "ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}
	if all, _ := store.List(context.Background(), ports.ListFilter{}); len(all) != 0 {
		t.Errorf("stored brands = %d, want 0", len(all))
	}
	if f.links.Len() != 0 {
		t.Errorf("stored links = %d, want 0", f.links.Len())
	}
}

func TestTagService_UpdateReconcilesLinks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.productsExist("p1", "p2", "p3")
	svc := NewTagService(memory.NewStore[catalog.Tag](), f.deps)
	ctx := context.Background()

	created, err := svc.Create(ctx, &catalog.Tag{Value: "summer"}, []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	id := created.Record.ID

	updated, err := svc.Update(ctx, id, &catalog.Tag{Value: "summer-25"}, []string{"p2", "p3"})
	if err != nil {
		t.Fatalf("Update() error = %v, want nil", err)
	}
	if updated.Record.Value != "summer-25" {
		t.Errorf("Update() value = %q", updated.Record.Value)
	}
	if !slices.Equal(updated.ProductIDs, []string{"p2", "p3"}) {
		t.Errorf("Update() ProductIDs = %v, want [p2 p3]", updated.ProductIDs)
	}

	got, _ := f.deps.Registry.Linked(ctx, link.TagProduct, id)
	if !slices.Equal(got, []string{"p2", "p3"}) {
		t.Errorf("linked = %v, want [p2 p3]", got)
	}

	kept, err := svc.Update(ctx, id, &catalog.Tag{Value: "summer-26"}, nil)
	if err != nil {
		t.Fatalf("Update(nil products) error = %v", err)
	}
	if !slices.Equal(kept.ProductIDs, []string{"p2", "p3"}) {
		t.Errorf("Update(nil products) ProductIDs = %v, want unchanged", kept.ProductIDs)
	}
}

func TestTagService_UpdateNotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	svc := NewTagService(memory.NewStore[catalog.Tag](), f.deps)

	_, err := svc.Update(context.Background(), "missing", &catalog.Tag{Value: "x"}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestBrandService_DeleteDismissesLinks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.productsExist("p1", "p2")
	store := memory.NewStore[catalog.Brand]()
	svc := NewBrandService(store, f.deps)
	ctx := context.Background()

	created, err := svc.Create(ctx, &catalog.Brand{Name: "Acme", Handle: "acme"}, []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(ctx, created.Record.ID); err != nil {
		t.Fatalf("Delete() error = %v, want nil", err)
	}
	if f.links.Len() != 0 {
		t.Errorf("stored links = %d, want 0", f.links.Len())
	}
	if _, err := svc.Get(ctx, created.Record.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, created.Record.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestBrandService_DeleteFailureRestoresLinks(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.productsExist("p1", "p2")
	mem := memory.NewStore[catalog.Brand]()
	ctx := context.Background()

	created, err := NewBrandService(mem, f.deps).Create(ctx, &catalog.Brand{Name: "Acme", Handle: "acme"}, []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleteErr := errors.New("store offline")
	svc := NewBrandService(&failingDelete[catalog.Brand]{EntityStore: mem, id: created.Record.ID, err: deleteErr}, f.deps)

	if err := svc.Delete(ctx, created.Record.ID); !errors.Is(err, deleteErr) {
		t.Fatalf("Delete() error = %v, want %v", err, deleteErr)
	}
	got, err := svc.Get(ctx, created.Record.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !slices.Equal(got.ProductIDs, []string{"p1", "p2"}) {
		t.Errorf("ProductIDs after rollback = %v, want [p1 p2]", got.ProductIDs)
	}
}

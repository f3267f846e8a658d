package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/links"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Compile-time checks for the two instantiations the service wires.
var (
	_ ports.LinkedService[catalog.Brand] = (*LinkedService[catalog.Brand, *catalog.Brand])(nil)
	_ ports.LinkedService[catalog.Tag]   = (*LinkedService[catalog.Tag, *catalog.Tag])(nil)
)

// LinkedService implements ports.LinkedService for one record type. The
// record is the source side of def; its products are the target side.
type LinkedService[T any, P catalog.RecordPtr[T]] struct {
	def   link.Definition
	store ports.EntityStore[T]
	deps  Deps
	label string

	logger *slog.Logger
}

// NewLinkedService creates a LinkedService for the records of store linked
// to products through def.
func NewLinkedService[T any, P catalog.RecordPtr[T]](def link.Definition, store ports.EntityStore[T], deps Deps) *LinkedService[T, P] {
	kind := def.From.Entity
	return &LinkedService[T, P]{
		def:    def,
		store:  store,
		deps:   deps,
		label:  strings.ToUpper(kind[:1]) + kind[1:],
		logger: deps.logger(),
	}
}

// NewBrandService creates the brand service.
func NewBrandService(store ports.EntityStore[catalog.Brand], deps Deps) *LinkedService[catalog.Brand, *catalog.Brand] {
	return NewLinkedService[catalog.Brand, *catalog.Brand](link.BrandProduct, store, deps)
}

// NewTagService creates the tag service.
func NewTagService(store ports.EntityStore[catalog.Tag], deps Deps) *LinkedService[catalog.Tag, *catalog.Tag] {
	return NewLinkedService[catalog.Tag, *catalog.Tag](link.TagProduct, store, deps)
}

type linkedRun[T any] struct {
	id      string
	rec     *T
	added   []string
	removed []string
	// final is the product id set after a successful run.
	final []string
}

func (s *LinkedService[T, P]) idOf(rec *T) string { return P(rec).Meta().ID }

func (s *LinkedService[T, P]) ref(id string) link.Ref {
	return link.Ref{Entity: s.def.From.Entity, Key: s.def.From.Key, Value: id}
}

func (s *LinkedService[T, P]) verifyStep() saga.Step[*linkedRun[T]] {
	return links.VerifyProducts(s.deps.Products, s.deps.Workers, func(r *linkedRun[T]) []string { return r.added })
}

func (s *LinkedService[T, P]) linkStep() saga.Step[*linkedRun[T]] {
	return links.LinkStep(s.deps.Registry, "link products", func(r *linkedRun[T]) []link.Attributes {
		return links.ProductLinks(s.def, r.id, r.added)
	})
}

func (s *LinkedService[T, P]) unlinkStep() saga.Step[*linkedRun[T]] {
	return links.UnlinkStep(s.deps.Registry, "unlink products", func(r *linkedRun[T]) []link.Attributes {
		return links.ProductLinks(s.def, r.id, r.removed)
	})
}

func (s *LinkedService[T, P]) result(r *linkedRun[T], results []any) (*ports.Linked[T], error) {
	out := &ports.Linked[T]{ProductIDs: r.final}
	for _, res := range results {
		if rec, ok := res.(*T); ok {
			out.Record = *rec
		}
	}
	return out, nil
}

// Create validates rec, verifies every product, stores the record and
// links it to the products.
func (s *LinkedService[T, P]) Create(ctx context.Context, rec *T, productIDs []string) (*ports.Linked[T], error) {
	op := "Create" + s.label
	s.logger.InfoContext(ctx, "creating "+s.def.From.Entity, slog.Int("products", len(productIDs)))

	if err := P(rec).Validate(); err != nil {
		return nil, err
	}
	ids, err := normalizeIDs("product_ids", productIDs)
	if err != nil {
		return nil, err
	}

	meta := P(rec).Meta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	r := &linkedRun[T]{id: meta.ID, rec: rec, added: ids, final: ids}

	out, err := saga.New[*linkedRun[T], *ports.Linked[T]](op,
		s.verifyStep(),
		saga.CreateRecord("create "+s.def.From.Entity, s.store, func(r *linkedRun[T]) *T { return r.rec }, s.idOf),
		s.linkStep(),
	).WithResult(s.result).Run(ctx, s.deps.Exec, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create "+s.def.From.Entity,
			slog.String("operation", op),
			slog.String("id", r.id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// Get returns a record with its linked product ids.
func (s *LinkedService[T, P]) Get(ctx context.Context, id string) (*ports.Linked[T], error) {
	rec, err := s.store.Retrieve(ctx, id)
	if err != nil {
		return nil, err
	}
	ids, err := s.deps.Registry.Linked(ctx, s.def, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read links",
			slog.String("operation", "Get"+s.label),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &ports.Linked[T]{Record: *rec, ProductIDs: ids}, nil
}

// List returns every record without product ids.
func (s *LinkedService[T, P]) List(ctx context.Context) ([]T, error) {
	recs, err := s.store.List(ctx, ports.ListFilter{})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list "+s.def.From.Entity,
			slog.String("operation", "List"+s.label),
			slog.Any("error", err),
		)
		return nil, err
	}
	return recs, nil
}

// Update replaces the record and reconciles its product links. Products
// that are newly linked are verified first.
func (s *LinkedService[T, P]) Update(ctx context.Context, id string, rec *T, productIDs []string) (*ports.Linked[T], error) {
	op := "Update" + s.label
	s.logger.InfoContext(ctx, "updating "+s.def.From.Entity, slog.String("id", id))

	if err := P(rec).Validate(); err != nil {
		return nil, err
	}
	P(rec).Meta().ID = id

	if _, err := s.store.Retrieve(ctx, id); err != nil {
		return nil, err
	}

	current, err := s.deps.Registry.Linked(ctx, s.def, id)
	if err != nil {
		return nil, err
	}

	r := &linkedRun[T]{id: id, rec: rec, final: current}
	if productIDs != nil {
		ids, err := normalizeIDs("product_ids", productIDs)
		if err != nil {
			return nil, err
		}
		r.added, r.removed = links.Diff(current, ids)
		r.final = ids
	}

	out, err := saga.New[*linkedRun[T], *ports.Linked[T]](op,
		s.verifyStep(),
		saga.UpdateRecord("update "+s.def.From.Entity, s.store, func(r *linkedRun[T]) *T { return r.rec }, s.idOf),
		s.unlinkStep(),
		s.linkStep(),
	).WithResult(s.result).Run(ctx, s.deps.Exec, r)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update "+s.def.From.Entity,
			slog.String("operation", op),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return out, nil
}

// Delete dismisses every link of the record, then deletes it.
func (s *LinkedService[T, P]) Delete(ctx context.Context, id string) error {
	op := "Delete" + s.label
	s.logger.InfoContext(ctx, "deleting "+s.def.From.Entity, slog.String("id", id))

	if _, err := s.store.Retrieve(ctx, id); err != nil {
		return err
	}

	_, err := saga.New[string, struct{}](op,
		links.DismissStep(s.deps.Registry, "dismiss links", func(id string) []link.Ref {
			return []link.Ref{s.ref(id)}
		}),
		saga.DeleteRecord[T]("delete "+s.def.From.Entity, s.store, func(id string) string { return id }),
	).Run(ctx, s.deps.Exec, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete "+s.def.From.Entity,
			slog.String("operation", op),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

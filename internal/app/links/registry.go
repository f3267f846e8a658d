// Package links is the soft-link registry: it records associations between
// records of independent stores by attribute tuple and provides the saga
// steps that create and dismiss them.
package links

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Registry validates attribute tuples against a schema and persists them
// in a ports.LinkStore.
type Registry struct {
	schema *link.Schema
	store  ports.LinkStore
	logger *slog.Logger
}

// NewRegistry creates a Registry. If logger is nil, a no-op logger is used.
func NewRegistry(schema *link.Schema, store ports.LinkStore, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{schema: schema, store: store, logger: logger}
}

// Link records the association described by attrs. Linking an existing
// association is a no-op.
func (r *Registry) Link(ctx context.Context, attrs link.Attributes) error {
	_, _, err := r.link(ctx, attrs)
	return err
}

// Unlink removes the association described by attrs. Unlinking a missing
// association is a no-op.
func (r *Registry) Unlink(ctx context.Context, attrs link.Attributes) error {
	_, _, err := r.unlink(ctx, attrs)
	return err
}

// Referencing returns the attribute tuples of every link whose endpoint
// (entity, key) equals value.
func (r *Registry) Referencing(ctx context.Context, entity, key, value string) ([]link.Attributes, error) {
	found, err := r.Find(ctx, link.Ref{Entity: entity, Key: key, Value: value})
	if err != nil {
		return nil, err
	}
	out := make([]link.Attributes, 0, len(found))
	for _, l := range found {
		out = append(out, l.Attributes())
	}
	return out, nil
}

// Find returns every link touching ref.
func (r *Registry) Find(ctx context.Context, ref link.Ref) ([]link.Link, error) {
	found, err := r.store.Find(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("finding links of %s.%s=%s: %w", ref.Entity, ref.Key, ref.Value, err)
	}
	return found, nil
}

// Linked returns the values on the other side of def for links whose
// source endpoint equals from.
func (r *Registry) Linked(ctx context.Context, def link.Definition, from string) ([]string, error) {
	found, err := r.Find(ctx, link.Ref{Entity: def.From.Entity, Key: def.From.Key, Value: from})
	if err != nil {
		return nil, err
	}
	var out []string
	for _, l := range found {
		if l.Definition == def && l.FromValue == from {
			out = append(out, l.ToValue)
		}
	}
	return out, nil
}

func (r *Registry) link(ctx context.Context, attrs link.Attributes) (link.Link, bool, error) {
	l, err := r.schema.Resolve(attrs)
	if err != nil {
		return link.Link{}, false, err
	}
	created, err := r.put(ctx, l)
	return l, created, err
}

func (r *Registry) unlink(ctx context.Context, attrs link.Attributes) (link.Link, bool, error) {
	l, err := r.schema.Resolve(attrs)
	if err != nil {
		return link.Link{}, false, err
	}
	removed, err := r.remove(ctx, l)
	return l, removed, err
}

func (r *Registry) put(ctx context.Context, l link.Link) (bool, error) {
	created, err := r.store.Put(ctx, l)
	if err != nil {
		return false, fmt.Errorf("linking %s: %w", l.Key(), err)
	}
	if created {
		r.logger.DebugContext(ctx, "link created", slog.String("link", l.Key()))
	}
	return created, nil
}

func (r *Registry) remove(ctx context.Context, l link.Link) (bool, error) {
	removed, err := r.store.Remove(ctx, l)
	if err != nil {
		return false, fmt.Errorf("unlinking %s: %w", l.Key(), err)
	}
	if removed {
		r.logger.DebugContext(ctx, "link removed", slog.String("link", l.Key()))
	}
	return removed, nil
}

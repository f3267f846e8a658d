package links

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/fanout"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// LinkStep links every attribute tuple returned by attrsFrom. The undo
// token is the set of links that did not exist before; compensation
// unlinks exactly those, so pre-existing links survive a rollback. On a
// partial failure the links created so far are the undo token.
func LinkStep[I any](r *Registry, name string, attrsFrom func(I) []link.Attributes) saga.Step[I] {
	return saga.NewStep(name,
		func(ctx context.Context, input I) ([]link.Link, []link.Link, error) {
			var created []link.Link
			for _, attrs := range attrsFrom(input) {
				l, isNew, err := r.link(ctx, attrs)
				if err != nil {
					return nil, created, err
				}
				if isNew {
					created = append(created, l)
				}
			}
			return created, created, nil
		},
		r.removeAll,
	)
}

// UnlinkStep unlinks every attribute tuple returned by attrsFrom. The undo
// token is the set of links that actually existed; compensation relinks
// them, including those removed before a partial failure.
func UnlinkStep[I any](r *Registry, name string, attrsFrom func(I) []link.Attributes) saga.Step[I] {
	return saga.NewStep(name,
		func(ctx context.Context, input I) ([]link.Link, []link.Link, error) {
			var removed []link.Link
			for _, attrs := range attrsFrom(input) {
				l, existed, err := r.unlink(ctx, attrs)
				if err != nil {
					return nil, removed, err
				}
				if existed {
					removed = append(removed, l)
				}
			}
			return removed, removed, nil
		},
		r.putAll,
	)
}

// DismissStep removes every link touching any of the endpoints returned by
// refsFrom. The undo token holds all removed links, including those
// removed before a partial failure; compensation relinks them with the
// same attributes.
func DismissStep[I any](r *Registry, name string, refsFrom func(I) []link.Ref) saga.Step[I] {
	return saga.NewStep(name,
		func(ctx context.Context, input I) ([]link.Link, []link.Link, error) {
			seen := make(map[string]bool)
			var removed []link.Link
			for _, ref := range refsFrom(input) {
				found, err := r.Find(ctx, ref)
				if err != nil {
					return nil, removed, err
				}
				for _, l := range found {
					if seen[l.Key()] {
						continue
					}
					seen[l.Key()] = true

					existed, err := r.remove(ctx, l)
					if err != nil {
						return nil, removed, err
					}
					if existed {
						removed = append(removed, l)
					}
				}
			}
			return removed, removed, nil
		},
		r.putAll,
	)
}

// VerifyProducts checks that every product id returned by idsFrom exists
// in the product catalog, querying at most workers products at a time. It
// has no side effects; its compensation does nothing.
func VerifyProducts[I any](client ports.ProductClient, workers int, idsFrom func(I) []string) saga.Step[I] {
	return saga.NewStep("verify products",
		func(ctx context.Context, input I) (struct{}, struct{}, error) {
			ids := idsFrom(input)
			results := fanout.Run(ctx, workers, ids, func(ctx context.Context, id string) (*catalog.Product, error) {
				return client.GetProduct(ctx, id)
			})

			var errs []error
			for i, res := range results {
				if res.Err != nil {
					errs = append(errs, fmt.Errorf("product %q: %w", ids[i], res.Err))
				}
			}
			if len(errs) > 0 {
				return struct{}{}, struct{}{}, errors.Join(errs...)
			}
			return struct{}{}, struct{}{}, nil
		},
		func(context.Context, struct{}) error { return nil },
	)
}

func (r *Registry) putAll(ctx context.Context, links []link.Link) error {
	var errs []error
	for _, l := range links {
		if _, err := r.put(ctx, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) removeAll(ctx context.Context, links []link.Link) error {
	var errs []error
	for _, l := range links {
		if _, err := r.remove(ctx, l); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ProductLinks builds the attribute tuples linking one source value to
// each product id.
func ProductLinks(def link.Definition, from string, productIDs []string) []link.Attributes {
	out := make([]link.Attributes, 0, len(productIDs))
	for _, id := range productIDs {
		out = append(out, link.Between(def, from, id))
	}
	return out
}

// Diff returns the ids present in next but not in prev (added) and those
// present in prev but not in next (removed).
func Diff(prev, next []string) (added, removed []string) {
	inPrev := make(map[string]bool, len(prev))
	for _, id := range prev {
		inPrev[id] = true
	}
	inNext := make(map[string]bool, len(next))
	for _, id := range next {
		if !inNext[id] && !inPrev[id] {
			added = append(added, id)
		}
		inNext[id] = true
	}
	for _, id := range prev {
		if !inNext[id] {
			removed = append(removed, id)
		}
	}
	return added, removed
}

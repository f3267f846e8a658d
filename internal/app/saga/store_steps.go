package saga

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// CreateRecord creates the record returned by build. The undo token is the
// new id; compensation deletes it.
func CreateRecord[T, I any](name string, store ports.EntityStore[T], build func(I) *T, idOf func(*T) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) (*T, string, error) {
			created, err := store.Create(ctx, build(input))
			if err != nil {
				return nil, "", err
			}
			return created, idOf(created), nil
		},
		func(ctx context.Context, id string) error {
			return ignoreNotFound(store.Delete(ctx, id))
		},
	)
}

// UpdateRecord replaces the record returned by build. The undo token is the
// full prior record; compensation writes it back.
func UpdateRecord[T, I any](name string, store ports.EntityStore[T], build func(I) *T, idOf func(*T) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) (*T, *T, error) {
			next := build(input)
			prior, err := store.Retrieve(ctx, idOf(next))
			if err != nil {
				return nil, nil, err
			}
			updated, err := store.Update(ctx, next)
			if err != nil {
				return nil, nil, err
			}
			return updated, prior, nil
		},
		func(ctx context.Context, prior *T) error {
			_, err := store.Update(ctx, prior)
			return err
		},
	)
}

// DeleteRecord deletes the record with the id returned by idFrom. The undo
// token is the full prior record; compensation recreates it with the same
// id. A record that reappeared under that id in the meantime is reported
// as a conflict.
func DeleteRecord[T, I any](name string, store ports.EntityStore[T], idFrom func(I) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) (struct{}, *T, error) {
			id := idFrom(input)
			prior, err := store.Retrieve(ctx, id)
			if err != nil {
				return struct{}{}, nil, err
			}
			if err := store.Delete(ctx, id); err != nil {
				return struct{}{}, nil, err
			}
			return struct{}{}, prior, nil
		},
		func(ctx context.Context, prior *T) error {
			if prior == nil {
				return nil
			}
			_, err := store.Create(ctx, prior)
			return err
		},
	)
}

// DeleteRecords deletes every record owned by the aggregate returned by
// ownerFrom. The undo token holds the deleted records; compensation
// recreates them. On a partial failure the records deleted so far are
// returned as the undo token.
func DeleteRecords[T, I any](name string, store ports.EntityStore[T], ownerFrom func(I) string, idOf func(*T) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) ([]T, []T, error) {
			prior, err := store.List(ctx, ports.ListFilter{OwnerID: ownerFrom(input)})
			if err != nil {
				return nil, nil, err
			}
			var deleted []T
			for i := range prior {
				if err := store.Delete(ctx, idOf(&prior[i])); err != nil {
					return nil, deleted, fmt.Errorf("deleting %s: %w", idOf(&prior[i]), err)
				}
				deleted = append(deleted, prior[i])
			}
			return prior, deleted, nil
		},
		func(ctx context.Context, deleted []T) error {
			return recreateAll(ctx, store, deleted, idOf)
		},
	)
}

// CreateRecords creates every record returned by build, in order. The undo
// token is the list of created ids; compensation deletes them in reverse.
// On a partial failure the ids created so far are returned as the undo
// token.
func CreateRecords[T, I any](name string, store ports.EntityStore[T], build func(I) []T, idOf func(*T) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) ([]T, []string, error) {
			recs := build(input)
			created := make([]T, 0, len(recs))
			var ids []string
			for i := range recs {
				rec, err := store.Create(ctx, &recs[i])
				if err != nil {
					return nil, ids, err
				}
				created = append(created, *rec)
				ids = append(ids, idOf(rec))
			}
			return created, ids, nil
		},
		func(ctx context.Context, ids []string) error {
			var errs []error
			for _, id := range slices.Backward(ids) {
				if err := ignoreNotFound(store.Delete(ctx, id)); err != nil {
					errs = append(errs, fmt.Errorf("deleting %s: %w", id, err))
				}
			}
			return errors.Join(errs...)
		},
	)
}

// DeleteSelected deletes the records with the ids returned by idsFrom, in
// order. The undo token holds the deleted records; compensation recreates
// them in reverse order. On a partial failure the records deleted so far
// are returned as the undo token.
func DeleteSelected[T, I any](name string, store ports.EntityStore[T], idsFrom func(I) []string, idOf func(*T) string) Step[I] {
	return NewStep(name,
		func(ctx context.Context, input I) (struct{}, []T, error) {
			var deleted []T
			for _, id := range idsFrom(input) {
				rec, err := store.Retrieve(ctx, id)
				if err == nil {
					err = store.Delete(ctx, id)
				}
				if err != nil {
					return struct{}{}, deleted, fmt.Errorf("deleting %s: %w", id, err)
				}
				deleted = append(deleted, *rec)
			}
			return struct{}{}, deleted, nil
		},
		func(ctx context.Context, deleted []T) error {
			reversed := slices.Clone(deleted)
			slices.Reverse(reversed)
			return recreateAll(ctx, store, reversed, idOf)
		},
	)
}

// recreateAll recreates every record, attempting all of them. A record
// whose id is taken again is a conflict: the prior state was not restored.
func recreateAll[T any](ctx context.Context, store ports.EntityStore[T], recs []T, idOf func(*T) string) error {
	var errs []error
	for i := range recs {
		if _, err := store.Create(ctx, &recs[i]); err != nil {
			errs = append(errs, fmt.Errorf("recreating %s: %w", idOf(&recs[i]), err))
		}
	}
	return errors.Join(errs...)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

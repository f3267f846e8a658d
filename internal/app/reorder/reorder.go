// Package reorder moves records of a hierarchy as one saga operation.
//
// A reorder runs two steps. The snapshot step reads every affected record
// and keeps its prior position as the undo token. The apply step writes the
// new positions one record at a time. If any write fails, the snapshot
// step's compensation writes every prior position back, so either all
// records reflect the new order or all are restored. The store itself gives
// no atomicity between the individual writes.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/app/fanout"
	"github.com/jsamuelsen11/catalog-admin-service/internal/app/saga"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Placement is a requested position for one record.
type Placement = tree.Placement

// Accessor reads and writes the position fields of T.
type Accessor[T any] struct {
	ID          func(*T) string
	Position    func(*T) tree.Position
	SetPosition func(*T, tree.Position)
}

// Coordinator reorders records of one entity store.
type Coordinator[T any] struct {
	name    string
	store   ports.EntityStore[T]
	acc     Accessor[T]
	exec    *saga.Executor
	workers int
}

// New creates a Coordinator. name is used as the operation name; workers
// bounds concurrent snapshot reads.
func New[T any](name string, store ports.EntityStore[T], acc Accessor[T], exec *saga.Executor, workers int) *Coordinator[T] {
	return &Coordinator[T]{name: name, store: store, acc: acc, exec: exec, workers: workers}
}

type snapshot[T any] struct {
	id  string
	pos tree.Position
}

type run[T any] struct {
	placements []Placement
	records    map[string]*T
}

// Reorder applies placements and returns the updated records in placement
// order. Duplicate or empty ids fail validation before anything is read;
// an unknown id fails with domain.ErrNotFound before anything is written.
func (c *Coordinator[T]) Reorder(ctx context.Context, placements []Placement) ([]T, error) {
	if err := ValidatePlacements(placements); err != nil {
		return nil, err
	}

	op := saga.New[*run[T], []T](c.name, c.snapshotStep(), c.applyStep())
	return op.Run(ctx, c.exec, &run[T]{placements: placements})
}

// Swap exchanges the sort keys of records a and b. The multiset of sort
// keys is unchanged.
func (c *Coordinator[T]) Swap(ctx context.Context, a, b string) ([]T, error) {
	if a == b {
		return nil, domain.NewValidationError("ids", "must reference two different records")
	}

	ra, err := c.store.Retrieve(ctx, a)
	if err != nil {
		return nil, err
	}
	rb, err := c.store.Retrieve(ctx, b)
	if err != nil {
		return nil, err
	}

	return c.Reorder(ctx, []Placement{
		{ID: a, SortKey: c.acc.Position(rb).SortKey},
		{ID: b, SortKey: c.acc.Position(ra).SortKey},
	})
}

// ValidatePlacements rejects empty batches, empty ids, negative sort keys
// and duplicate ids.
func ValidatePlacements(placements []Placement) error {
	if len(placements) == 0 {
		return domain.NewValidationError("placements", "must not be empty")
	}

	fields := make(map[string]string)
	seen := make(map[string]bool, len(placements))
	var dups []string
	for i, p := range placements {
		switch {
		case strings.TrimSpace(p.ID) == "":
			fields[fmt.Sprintf("placements[%d].id", i)] = domain.MsgRequired
		case seen[p.ID]:
			dups = append(dups, p.ID)
		}
		seen[p.ID] = true

		if p.SortKey < 0 {
			fields[fmt.Sprintf("placements[%d].sort_key", i)] = fmt.Sprintf("must not be negative, got %d", p.SortKey)
		}
		if p.ParentID != nil && *p.ParentID == p.ID {
			fields[fmt.Sprintf("placements[%d].parent_id", i)] = "must not reference the record itself"
		}
	}
	if len(dups) > 0 {
		fields["placements"] = "duplicate ids: " + strings.Join(dups, ", ")
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (c *Coordinator[T]) snapshotStep() saga.Step[*run[T]] {
	return saga.NewStep("snapshot",
		func(ctx context.Context, r *run[T]) (struct{}, []snapshot[T], error) {
			ids := make([]string, len(r.placements))
			for i, p := range r.placements {
				ids[i] = p.ID
			}

			records, err := fanout.Collect(fanout.Run(ctx, c.workers, ids, c.store.Retrieve))
			if err != nil {
				return struct{}{}, nil, err
			}

			r.records = make(map[string]*T, len(records))
			snaps := make([]snapshot[T], len(records))
			for i, rec := range records {
				r.records[ids[i]] = rec
				snaps[i] = snapshot[T]{id: ids[i], pos: c.acc.Position(rec)}
			}
			return struct{}{}, snaps, nil
		},
		c.restore,
	)
}

func (c *Coordinator[T]) applyStep() saga.Step[*run[T]] {
	// No compensation: the snapshot step restores every record.
	return saga.NewStep[*run[T], []T, struct{}]("apply",
		func(ctx context.Context, r *run[T]) ([]T, struct{}, error) {
			out := make([]T, 0, len(r.placements))
			for _, p := range r.placements {
				rec := *r.records[p.ID]
				c.acc.SetPosition(&rec, p.Apply(c.acc.Position(&rec)))

				updated, err := c.store.Update(ctx, &rec)
				if err != nil {
					return nil, struct{}{}, fmt.Errorf("moving %s: %w", p.ID, err)
				}
				out = append(out, *updated)
			}
			return out, struct{}{}, nil
		},
		nil,
	)
}

// restore writes every snapshot back. Writes target disjoint ids, so their
// order does not matter; every write is attempted.
func (c *Coordinator[T]) restore(ctx context.Context, snaps []snapshot[T]) error {
	var errs []error
	for _, s := range snaps {
		cur, err := c.store.Retrieve(ctx, s.id)
		if err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", s.id, err))
			continue
		}
		c.acc.SetPosition(cur, s.pos)
		if _, err := c.store.Update(ctx, cur); err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", s.id, err))
		}
	}
	return errors.Join(errs...)
}

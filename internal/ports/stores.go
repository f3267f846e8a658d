package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
)

// ListFilter narrows a List call. A zero value lists every record.
type ListFilter struct {
	// OwnerID restricts the result to records owned by the given aggregate
	// (e.g. the items of one collection).
	OwnerID string
}

// EntityStore is the CRUD contract of one entity type's persistent store.
// Implementations give no transactional guarantees across calls; multi-call
// consistency is the job of saga operations in the application layer.
type EntityStore[T any] interface {
	// Create persists a new record. When the record carries an ID it is kept,
	// which lets compensations recreate a deleted record under its old id.
	// Returns domain.ErrConflict if the id is taken.
	Create(ctx context.Context, rec *T) (*T, error)

	// Retrieve returns a record by id.
	// Returns domain.ErrNotFound if the record does not exist.
	Retrieve(ctx context.Context, id string) (*T, error)

	// Update replaces a record and returns the stored value.
	// Returns domain.ErrNotFound if the record does not exist.
	Update(ctx context.Context, rec *T) (*T, error)

	// Delete removes a record by id.
	// Returns domain.ErrNotFound if the record does not exist.
	Delete(ctx context.Context, id string) error

	// List returns records matching the filter, ordered by creation time.
	List(ctx context.Context, filter ListFilter) ([]T, error)
}

// LinkStore persists soft links keyed by their canonical attribute tuple.
type LinkStore interface {
	// Put stores the link and reports whether it was new. Storing an
	// existing link is a no-op.
	Put(ctx context.Context, l link.Link) (bool, error)

	// Remove deletes the link and reports whether it existed. Removing a
	// missing link is a no-op.
	Remove(ctx context.Context, l link.Link) (bool, error)

	// Find returns every link with either endpoint equal to ref, ordered by
	// canonical key.
	Find(ctx context.Context, ref link.Ref) ([]link.Link, error)
}

// CompensationFailure records one compensation that returned an error.
type CompensationFailure struct {
	Step  string `json:"step"`
	Index int    `json:"index"`
	Error string `json:"error"`
}

// ReconciliationEntry is an operator-visible record of an operation whose
// rollback was partial. The service never repairs these on its own.
type ReconciliationEntry struct {
	ID            string                `json:"id"`
	RunID         string                `json:"run_id"`
	Operation     string                `json:"operation"`
	FailedStep    string                `json:"failed_step"`
	Cause         string                `json:"cause"`
	Failures      []CompensationFailure `json:"failures,omitempty"`
	Uncompensable []string              `json:"uncompensable,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	ResolvedAt    *time.Time            `json:"resolved_at,omitempty"`
}

// ReconciliationLog stores partial-rollback entries for operators.
type ReconciliationLog interface {
	// Record appends an entry. The log assigns ID and CreatedAt when empty.
	Record(ctx context.Context, entry ReconciliationEntry) error

	// List returns entries newest first. Resolved entries are included only
	// when includeResolved is true.
	List(ctx context.Context, includeResolved bool) ([]ReconciliationEntry, error)

	// Resolve marks an entry as handled.
	// Returns domain.ErrNotFound if the entry does not exist.
	Resolve(ctx context.Context, id string) error
}

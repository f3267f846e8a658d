package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// ReconciliationLog is an in-memory ports.ReconciliationLog.
type ReconciliationLog struct {
	mu      sync.Mutex
	entries []ports.ReconciliationEntry
	now     func() time.Time
}

var _ ports.ReconciliationLog = (*ReconciliationLog)(nil)

// NewReconciliationLog creates an empty log.
func NewReconciliationLog() *ReconciliationLog {
	return &ReconciliationLog{now: time.Now}
}

func (l *ReconciliationLog) Record(_ context.Context, entry ports.ReconciliationEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = l.now().UTC()
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *ReconciliationLog) List(_ context.Context, includeResolved bool) ([]ports.ReconciliationEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ports.ReconciliationEntry, 0, len(l.entries))
	for _, e := range slices.Backward(l.entries) {
		if e.ResolvedAt != nil && !includeResolved {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (l *ReconciliationLog) Resolve(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			now := l.now().UTC()
			l.entries[i].ResolvedAt = &now
			return nil
		}
	}
	return domain.NotFoundError("reconciliation entry", id)
}

// Package memory provides in-memory implementations of the store ports for
// tests and the local profile.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Store is an in-memory ports.EntityStore. Values are copied on the way in
// and out; pointer fields inside records are shared.
type Store[T any, P catalog.RecordPtr[T]] struct {
	mu      sync.RWMutex
	records map[string]T
	now     func() time.Time
}

var _ ports.EntityStore[catalog.Brand] = (*Store[catalog.Brand, *catalog.Brand])(nil)

// NewStore creates an empty store.
func NewStore[T any, P catalog.RecordPtr[T]]() *Store[T, P] {
	return &Store[T, P]{records: make(map[string]T), now: time.Now}
}

func (s *Store[T, P]) Create(_ context.Context, rec *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	meta := P(&cp).Meta()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if _, exists := s.records[meta.ID]; exists {
		return nil, domain.ErrConflict
	}

	now := s.now().UTC()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	if meta.UpdatedAt.IsZero() {
		meta.UpdatedAt = now
	}

	s.records[meta.ID] = cp
	out := cp
	return &out, nil
}

func (s *Store[T, P]) Retrieve(_ context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, domain.NotFoundError(P(&rec).Kind(), id)
	}
	return &rec, nil
}

func (s *Store[T, P]) Update(_ context.Context, rec *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *rec
	meta := P(&cp).Meta()
	existing, ok := s.records[meta.ID]
	if !ok {
		return nil, domain.NotFoundError(P(&cp).Kind(), meta.ID)
	}

	meta.CreatedAt = P(&existing).Meta().CreatedAt
	meta.UpdatedAt = s.now().UTC()

	s.records[meta.ID] = cp
	out := cp
	return &out, nil
}

func (s *Store[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		var zero T
		return domain.NotFoundError(P(&zero).Kind(), id)
	}
	delete(s.records, id)
	return nil
}

func (s *Store[T, P]) List(_ context.Context, filter ports.ListFilter) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, rec := range s.records {
		if filter.OwnerID != "" && P(&rec).Owner() != filter.OwnerID {
			continue
		}
		out = append(out, rec)
	}

	slices.SortFunc(out, func(a, b T) int {
		ma, mb := P(&a).Meta(), P(&b).Meta()
		if c := ma.CreatedAt.Compare(mb.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(ma.ID, mb.ID)
	})
	return out, nil
}

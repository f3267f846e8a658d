package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/link"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// LinkStore is an in-memory ports.LinkStore keyed by canonical link key.
type LinkStore struct {
	mu    sync.RWMutex
	links map[string]link.Link
}

var _ ports.LinkStore = (*LinkStore)(nil)

// NewLinkStore creates an empty link store.
func NewLinkStore() *LinkStore {
	return &LinkStore{links: make(map[string]link.Link)}
}

func (s *LinkStore) Put(_ context.Context, l link.Link) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[l.Key()]; ok {
		return false, nil
	}
	s.links[l.Key()] = l
	return true, nil
}

func (s *LinkStore) Remove(_ context.Context, l link.Link) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[l.Key()]; !ok {
		return false, nil
	}
	delete(s.links, l.Key())
	return true, nil
}

func (s *LinkStore) Find(_ context.Context, ref link.Ref) ([]link.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []link.Link
	for _, l := range s.links {
		if l.Touches(ref) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b link.Link) int { return strings.Compare(a.Key(), b.Key()) })
	return out, nil
}

// Len returns the number of stored links.
func (s *LinkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.links)
}

package tree

import (
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
)

// Validate reports records that reference themselves as parent or sit on a
// parent cycle. Dangling parent ids are accepted. The returned error is a
// *domain.ValidationError keyed by "<id>.parent_id".
func Validate[T any](items []T, attrsOf func(T) Attrs) error {
	parent := make(map[string]string, len(items))
	for _, item := range items {
		a := attrsOf(item)
		parent[a.ID] = a.ParentID
	}

	fields := make(map[string]string)
	reported := make(map[string]bool)

	for _, item := range items {
		a := attrsOf(item)
		if a.ParentID == a.ID {
			fields[a.ID+".parent_id"] = "must not reference the record itself"
			reported[a.ID] = true
			continue
		}

		seen := map[string]bool{a.ID: true}
		chain := []string{a.ID}
		for p := a.ParentID; p != ""; p = parent[p] {
			if _, exists := parent[p]; !exists {
				break
			}
			if p == a.ID {
				if !reported[a.ID] {
					fields[a.ID+".parent_id"] = "forms a cycle: " + strings.Join(append(chain, a.ID), " -> ")
				}
				break
			}
			if seen[p] {
				break
			}
			seen[p] = true
			chain = append(chain, p)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Package tree rebuilds ordered hierarchies from flat, self-referential
// records such as menu items.
//
// Build never fails. A record whose parent id does not exist is placed at
// the root, and records caught in a parent cycle are promoted to roots so
// that every input record appears in the output exactly once.
package tree

import (
	"cmp"
	"slices"
)

// Attrs are the hierarchy attributes of one record.
type Attrs struct {
	ID       string
	ParentID string
	SortKey  int
	Enabled  bool
}

// Node is one record in a built tree.
type Node[T any] struct {
	Value    T          `json:"value"`
	Attrs    Attrs      `json:"-"`
	Children []*Node[T] `json:"children,omitempty"`
}

// Build reconstructs the forest described by items. Roots and every
// children list are ordered by SortKey ascending with ID as tie-break.
func Build[T any](items []T, attrsOf func(T) Attrs) []*Node[T] {
	nodes := make([]*Node[T], len(items))
	index := make(map[string]int, len(items))
	for i, item := range items {
		a := attrsOf(item)
		nodes[i] = &Node[T]{Value: item, Attrs: a}
		if _, dup := index[a.ID]; !dup {
			index[a.ID] = i
		}
	}

	parents := resolveParents(nodes, index)

	var roots []*Node[T]
	for i, n := range nodes {
		if p := parents[i]; p >= 0 {
			nodes[p].Children = append(nodes[p].Children, n)
			continue
		}
		roots = append(roots, n)
	}

	sortNodes(roots)
	return roots
}

// BuildEnabled is Build with disabled records removed. Removing a record
// hides its entire subtree, including enabled descendants.
func BuildEnabled[T any](items []T, attrsOf func(T) Attrs) []*Node[T] {
	return prune(Build(items, attrsOf))
}

func prune[T any](nodes []*Node[T]) []*Node[T] {
	kept := make([]*Node[T], 0, len(nodes))
	for _, n := range nodes {
		if !n.Attrs.Enabled {
			continue
		}
		n.Children = prune(n.Children)
		kept = append(kept, n)
	}
	return kept
}

// resolveParents returns the parent index of every node, or -1 for roots.
// Dangling and self references become roots. In each parent cycle the
// member with the smallest (SortKey, ID) is promoted to a root.
func resolveParents[T any](nodes []*Node[T], index map[string]int) []int {
	parents := make([]int, len(nodes))
	for i, n := range nodes {
		parents[i] = -1
		if n.Attrs.ParentID == "" || n.Attrs.ParentID == n.Attrs.ID {
			continue
		}
		if p, ok := index[n.Attrs.ParentID]; ok && p != i {
			parents[i] = p
		}
	}

	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]int, len(nodes))
	for i := range nodes {
		var path []int
		x := i
		for x >= 0 && state[x] == unvisited {
			state[x] = onPath
			path = append(path, x)
			x = parents[x]
		}
		if x >= 0 && state[x] == onPath {
			start := slices.Index(path, x)
			cycle := path[start:]
			promoted := slices.MinFunc(cycle, func(a, b int) int {
				return compareAttrs(nodes[a].Attrs, nodes[b].Attrs)
			})
			parents[promoted] = -1
		}
		for _, p := range path {
			state[p] = done
		}
	}
	return parents
}

func sortNodes[T any](nodes []*Node[T]) {
	slices.SortStableFunc(nodes, func(a, b *Node[T]) int {
		return compareAttrs(a.Attrs, b.Attrs)
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

func compareAttrs(a, b Attrs) int {
	if c := cmp.Compare(a.SortKey, b.SortKey); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// Find returns the node with the given id, or nil.
func Find[T any](roots []*Node[T], id string) *Node[T] {
	for _, n := range roots {
		if n.Attrs.ID == id {
			return n
		}
		if found := Find(n.Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Flatten returns the values of the forest in depth-first pre-order.
func Flatten[T any](roots []*Node[T]) []T {
	var out []T
	var walk func([]*Node[T])
	walk = func(nodes []*Node[T]) {
		for _, n := range nodes {
			out = append(out, n.Value)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}

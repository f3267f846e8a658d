package tree

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the forest as an indented outline, two spaces per level.
// Disabled nodes are suffixed with " (disabled)".
func Render[T any](w io.Writer, roots []*Node[T], label func(T) string) error {
	var walk func([]*Node[T], int) error
	walk = func(nodes []*Node[T], depth int) error {
		for _, n := range nodes {
			suffix := ""
			if !n.Attrs.Enabled {
				suffix = " (disabled)"
			}
			if _, err := fmt.Fprintf(w, "%s- %s [%s #%d]%s\n",
				strings.Repeat("  ", depth), label(n.Value), n.Attrs.ID, n.Attrs.SortKey, suffix); err != nil {
				return err
			}
			if err := walk(n.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(roots, 0)
}

// Package link models soft associations between records that live in
// independent stores. A link is identified by its attribute tuple, never by
// a registry-assigned id, so neither side has to own a foreign key.
package link

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
)

// Attributes maps an entity type to the single attribute identifying its
// endpoint, e.g. {"tag": {"custom_tag_id": "t1"}, "product": {"product_id": "p1"}}.
type Attributes map[string]map[string]string

// String renders the attributes in a stable order for logs.
func (a Attributes) String() string {
	entities := make([]string, 0, len(a))
	for entity := range a {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	parts := make([]string, 0, len(a))
	for _, entity := range entities {
		keys := make([]string, 0, len(a[entity]))
		for k := range a[entity] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, entity+"."+k+"="+a[entity][k])
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Endpoint names one side of a definition: an entity type and the attribute
// key that identifies its records.
type Endpoint struct {
	Entity string `json:"entity"`
	Key    string `json:"key"`
}

func (e Endpoint) String() string { return e.Entity + "." + e.Key }

// Definition is a registered, directional link type.
type Definition struct {
	From Endpoint `json:"from"`
	To   Endpoint `json:"to"`
}

func (d Definition) String() string { return d.From.String() + "->" + d.To.String() }

// Ref is one resolved endpoint value.
type Ref struct {
	Entity string `json:"entity"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// Link is a resolved association: a definition plus one value per side.
type Link struct {
	Definition Definition `json:"definition"`
	FromValue  string     `json:"from_value"`
	ToValue    string     `json:"to_value"`
}

// Key returns the canonical identity of the link. Two links with the same
// key are the same logical association.
func (l Link) Key() string {
	return fmt.Sprintf("%s=%s|%s=%s", l.Definition.From, l.FromValue, l.Definition.To, l.ToValue)
}

// Attributes converts the link back into its attribute tuple.
func (l Link) Attributes() Attributes {
	return Attributes{
		l.Definition.From.Entity: {l.Definition.From.Key: l.FromValue},
		l.Definition.To.Entity:   {l.Definition.To.Key: l.ToValue},
	}
}

// From returns the source endpoint value.
func (l Link) From() Ref {
	return Ref{Entity: l.Definition.From.Entity, Key: l.Definition.From.Key, Value: l.FromValue}
}

// To returns the target endpoint value.
func (l Link) To() Ref {
	return Ref{Entity: l.Definition.To.Entity, Key: l.Definition.To.Key, Value: l.ToValue}
}

// Touches reports whether either side of the link equals ref.
func (l Link) Touches(ref Ref) bool {
	return l.From() == ref || l.To() == ref
}

// Schema is the set of definitions a registry accepts.
type Schema struct {
	defs []Definition
}

// NewSchema creates a schema from the given definitions.
func NewSchema(defs ...Definition) *Schema {
	return &Schema{defs: append([]Definition(nil), defs...)}
}

// Definitions returns a copy of the registered definitions.
func (s *Schema) Definitions() []Definition {
	return append([]Definition(nil), s.defs...)
}

// Resolve validates an attribute tuple and matches it to a registered
// definition. The tuple must name exactly two entity types with exactly one
// non-empty attribute each.
func (s *Schema) Resolve(attrs Attributes) (Link, error) {
	if len(attrs) != 2 {
		return Link{}, domain.NewValidationError("attributes",
			fmt.Sprintf("must name exactly two entity types, got %d", len(attrs)))
	}

	for entity, kv := range attrs {
		if len(kv) != 1 {
			return Link{}, domain.NewValidationError(entity,
				fmt.Sprintf("must carry exactly one attribute, got %d", len(kv)))
		}
		for k, v := range kv {
			if strings.TrimSpace(v) == "" {
				return Link{}, domain.NewValidationError(entity+"."+k, domain.MsgRequired)
			}
		}
	}

	for _, d := range s.defs {
		from, okFrom := attrs[d.From.Entity][d.From.Key]
		to, okTo := attrs[d.To.Entity][d.To.Key]
		if okFrom && okTo {
			return Link{Definition: d, FromValue: from, ToValue: to}, nil
		}
	}

	return Link{}, domain.NewValidationError("attributes",
		"no link definition matches "+attrs.String())
}

// Endpoints returns every registered endpoint for the given entity type.
func (s *Schema) Endpoints(entity string) []Endpoint {
	var out []Endpoint
	seen := make(map[Endpoint]bool)
	for _, d := range s.defs {
		for _, e := range []Endpoint{d.From, d.To} {
			if e.Entity == entity && !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

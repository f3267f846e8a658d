package tree

// Placement is a requested position for one record.
type Placement struct {
	ID      string `json:"id"`
	SortKey int    `json:"sort_key"`
	// ParentID moves the record when non-nil. A pointer to "" moves it to
	// the root; nil keeps the current parent.
	ParentID *string `json:"parent_id,omitempty"`
}

// Position is a record's current place in its hierarchy.
type Position struct {
	SortKey  int
	ParentID string
}

// Apply returns the position after p is applied to cur.
func (p Placement) Apply(cur Position) Position {
	next := Position{SortKey: p.SortKey, ParentID: cur.ParentID}
	if p.ParentID != nil {
		next.ParentID = *p.ParentID
	}
	return next
}

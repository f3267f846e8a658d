package catalog

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
)

// Menu is a named navigation structure, e.g. the storefront header.
type Menu struct {
	Base
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

func (m *Menu) Kind() string  { return KindMenu }
func (m *Menu) Owner() string { return "" }

// Validate checks business rules for the Menu entity.
func (m *Menu) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if msg := checkHandle(m.Handle); msg != "" {
		fields["handle"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MenuItem is one node of a menu tree. ParentID is nil for top-level items;
// it may also reference an item that no longer exists, in which case the
// item is rendered as a top-level item.
type MenuItem struct {
	Base
	MenuID   string  `json:"menu_id"`
	ParentID *string `json:"parent_id,omitempty"`
	Label    string  `json:"label"`
	URL      string  `json:"url,omitempty"`
	SortKey  int     `json:"sort_key"`
	Enabled  bool    `json:"enabled"`
}

func (m *MenuItem) Kind() string  { return KindMenuItem }
func (m *MenuItem) Owner() string { return m.MenuID }

// Validate checks business rules for the MenuItem entity.
func (m *MenuItem) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(m.MenuID) == "" {
		fields["menu_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(m.Label) == "" {
		fields["label"] = domain.MsgRequired
	}
	if m.SortKey < 0 {
		fields["sort_key"] = fmt.Sprintf("must not be negative, got %d", m.SortKey)
	}
	if m.ParentID != nil && m.ID != "" && *m.ParentID == m.ID {
		fields["parent_id"] = "must not reference the item itself"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// MenuItemAttrs adapts a MenuItem to the tree builder.
func MenuItemAttrs(m MenuItem) tree.Attrs {
	a := tree.Attrs{ID: m.ID, SortKey: m.SortKey, Enabled: m.Enabled}
	if m.ParentID != nil {
		a.ParentID = *m.ParentID
	}
	return a
}

// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// ListResponse wraps a list of items with its count.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// NewListResponse converts each value with fn.
func NewListResponse[V, T any](values []V, fn func(*V) T) ListResponse[T] {
	items := make([]T, len(values))
	for i := range values {
		items[i] = fn(&values[i])
	}
	return ListResponse[T]{Items: items, Count: len(items)}
}

// Timestamps holds the RFC 3339 record timestamps shared by every response.
type Timestamps struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func timestamps(b catalog.Base) Timestamps {
	return Timestamps{
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func productIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// BrandResponse represents a brand in HTTP responses. ProductIDs is
// omitted from list responses.
type BrandResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Handle      string   `json:"handle"`
	Description string   `json:"description,omitempty"`
	ProductIDs  []string `json:"product_ids,omitzero"`
	Timestamps
}

// ToBrandResponse converts a brand to its response DTO.
func ToBrandResponse(b *catalog.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Handle:      b.Handle,
		Description: b.Description,
		Timestamps:  timestamps(b.Base),
	}
}

// ToLinkedBrandResponse converts a brand with its product links.
func ToLinkedBrandResponse(l *ports.Linked[catalog.Brand]) BrandResponse {
	resp := ToBrandResponse(&l.Record)
	resp.ProductIDs = productIDs(l.ProductIDs)
	return resp
}

// TagResponse represents a tag in HTTP responses.
type TagResponse struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	ProductIDs []string `json:"product_ids,omitzero"`
	Timestamps
}

// ToTagResponse converts a tag to its response DTO.
func ToTagResponse(t *catalog.Tag) TagResponse {
	return TagResponse{ID: t.ID, Value: t.Value, Timestamps: timestamps(t.Base)}
}

// ToLinkedTagResponse converts a tag with its product links.
func ToLinkedTagResponse(l *ports.Linked[catalog.Tag]) TagResponse {
	resp := ToTagResponse(&l.Record)
	resp.ProductIDs = productIDs(l.ProductIDs)
	return resp
}

// CollectionTabResponse represents a collection tab.
type CollectionTabResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	SortKey int    `json:"sort_key"`
}

// CollectionItemResponse represents a product placed in a collection.
type CollectionItemResponse struct {
	ID        string `json:"id"`
	TabID     string `json:"tab_id,omitempty"`
	ProductID string `json:"product_id"`
	SortKey   int    `json:"sort_key"`
}

// ToCollectionItemResponse converts a collection item to its response DTO.
func ToCollectionItemResponse(i *catalog.CollectionItem) CollectionItemResponse {
	return CollectionItemResponse{ID: i.ID, TabID: i.TabID, ProductID: i.ProductID, SortKey: i.SortKey}
}

// CollectionResponse represents a collection. Tabs and items are present
// only on single-collection responses.
type CollectionResponse struct {
	ID      string                   `json:"id"`
	Title   string                   `json:"title"`
	Handle  string                   `json:"handle"`
	Enabled bool                     `json:"enabled"`
	Tabs    []CollectionTabResponse  `json:"tabs,omitempty"`
	Items   []CollectionItemResponse `json:"items,omitempty"`
	Timestamps
}

// ToCollectionResponse converts a collection without tabs or items.
func ToCollectionResponse(c *catalog.Collection) CollectionResponse {
	return CollectionResponse{
		ID:         c.ID,
		Title:      c.Title,
		Handle:     c.Handle,
		Enabled:    c.Enabled,
		Timestamps: timestamps(c.Base),
	}
}

// ToCollectionViewResponse converts a collection with its tabs and items.
func ToCollectionViewResponse(v *ports.CollectionView) CollectionResponse {
	resp := ToCollectionResponse(&v.Collection)
	for _, t := range v.Tabs {
		resp.Tabs = append(resp.Tabs, CollectionTabResponse{ID: t.ID, Title: t.Title, SortKey: t.SortKey})
	}
	for i := range v.Items {
		resp.Items = append(resp.Items, ToCollectionItemResponse(&v.Items[i]))
	}
	return resp
}

// MenuResponse represents a menu.
type MenuResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Timestamps
}

// ToMenuResponse converts a menu to its response DTO.
func ToMenuResponse(m *catalog.Menu) MenuResponse {
	return MenuResponse{ID: m.ID, Title: m.Title, Handle: m.Handle, Timestamps: timestamps(m.Base)}
}

// MenuItemResponse represents a single menu item.
type MenuItemResponse struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id,omitempty"`
	Label    string  `json:"label"`
	URL      string  `json:"url,omitempty"`
	SortKey  int     `json:"sort_key"`
	Enabled  bool    `json:"enabled"`
}

// ToMenuItemResponse converts a menu item to its response DTO.
func ToMenuItemResponse(m *catalog.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:       m.ID,
		ParentID: m.ParentID,
		Label:    m.Label,
		URL:      m.URL,
		SortKey:  m.SortKey,
		Enabled:  m.Enabled,
	}
}

// MenuNodeResponse is a menu item with its ordered children.
type MenuNodeResponse struct {
	MenuItemResponse
	Children []MenuNodeResponse `json:"children"`
}

// ToMenuTreeResponse converts a forest of menu items, preserving order.
func ToMenuTreeResponse(nodes []*tree.Node[catalog.MenuItem]) []MenuNodeResponse {
	out := make([]MenuNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, MenuNodeResponse{
			MenuItemResponse: ToMenuItemResponse(&n.Value),
			Children:         ToMenuTreeResponse(n.Children),
		})
	}
	return out
}

// ReconciliationEntryResponse represents an operation that needs manual
// repair.
type ReconciliationEntryResponse struct {
	ID            string                      `json:"id"`
	RunID         string                      `json:"run_id"`
	Operation     string                      `json:"operation"`
	FailedStep    string                      `json:"failed_step"`
	Cause         string                      `json:"cause"`
	Failures      []ports.CompensationFailure `json:"failures,omitempty"`
	Uncompensable []string                    `json:"uncompensable,omitempty"`
	CreatedAt     string                      `json:"created_at"`
	ResolvedAt    string                      `json:"resolved_at,omitempty"`
}

// ToReconciliationEntryResponse converts a reconciliation entry.
func ToReconciliationEntryResponse(e *ports.ReconciliationEntry) ReconciliationEntryResponse {
	resp := ReconciliationEntryResponse{
		ID:            e.ID,
		RunID:         e.RunID,
		Operation:     e.Operation,
		FailedStep:    e.FailedStep,
		Cause:         e.Cause,
		Failures:      e.Failures,
		Uncompensable: e.Uncompensable,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
	if e.ResolvedAt != nil {
		resp.ResolvedAt = e.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}

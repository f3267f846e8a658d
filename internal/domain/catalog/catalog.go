// Package catalog defines the administrative catalog records: brands, tags,
// collections with their tabs and items, and menus with their nested items.
//
// Records carry only the fields the orchestration layer needs. Products are
// owned by a separate subsystem and are referenced by id only, through soft
// links (see package link).
package catalog

import "time"

// Entity kinds, used as store table discriminators and link endpoint names.
const (
	KindBrand          = "brand"
	KindTag            = "tag"
	KindCollection     = "collection"
	KindCollectionTab  = "collection_tab"
	KindCollectionItem = "collection_item"
	KindMenu           = "menu"
	KindMenuItem       = "menu_item"
	KindProduct        = "product"
)

// Base holds the identity and timestamps shared by every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta returns the record's identity block. Stores use it to assign ids and
// timestamps without knowing the concrete record type.
func (b *Base) Meta() *Base { return b }

// Record is implemented by pointers to every catalog entity.
type Record interface {
	Meta() *Base
	// Kind names the entity type (one of the Kind constants).
	Kind() string
	// Owner returns the id of the owning aggregate, or "" for top-level records.
	Owner() string
	Validate() error
}

// RecordPtr constrains a type parameter to be a pointer to T that
// implements Record. Generic stores use it to allocate and inspect values.
type RecordPtr[T any] interface {
	*T
	Record
}

package catalog

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
)

// Collection is a curated, ordered set of products grouped into tabs.
type Collection struct {
	Base
	Title   string `json:"title"`
	Handle  string `json:"handle"`
	Enabled bool   `json:"enabled"`
}

func (c *Collection) Kind() string  { return KindCollection }
func (c *Collection) Owner() string { return "" }

// Validate checks business rules for the Collection entity.
func (c *Collection) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if msg := checkHandle(c.Handle); msg != "" {
		fields["handle"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CollectionTab is a named section of a collection.
type CollectionTab struct {
	Base
	CollectionID string `json:"collection_id"`
	Title        string `json:"title"`
	SortKey      int    `json:"sort_key"`
}

func (t *CollectionTab) Kind() string  { return KindCollectionTab }
func (t *CollectionTab) Owner() string { return t.CollectionID }

// Validate checks business rules for the CollectionTab entity.
func (t *CollectionTab) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if t.SortKey < 0 {
		fields["sort_key"] = fmt.Sprintf("must not be negative, got %d", t.SortKey)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CollectionItem places one product in a collection. ProductID is a soft
// reference into the product subsystem; it is mirrored by a soft link so
// the product side can discover the collections it appears in.
type CollectionItem struct {
	Base
	CollectionID string `json:"collection_id"`
	TabID        string `json:"tab_id,omitempty"`
	ProductID    string `json:"product_id"`
	SortKey      int    `json:"sort_key"`
}

func (i *CollectionItem) Kind() string  { return KindCollectionItem }
func (i *CollectionItem) Owner() string { return i.CollectionID }

// Validate checks business rules for the CollectionItem entity.
func (i *CollectionItem) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.CollectionID) == "" {
		fields["collection_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(i.ProductID) == "" {
		fields["product_id"] = domain.MsgRequired
	}
	if i.SortKey < 0 {
		fields["sort_key"] = fmt.Sprintf("must not be negative, got %d", i.SortKey)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

package catalog

import (
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
)

// Tag is a custom product tag curated by merchandisers.
type Tag struct {
	Base
	Value string `json:"value"`
}

func (t *Tag) Kind() string  { return KindTag }
func (t *Tag) Owner() string { return "" }

// Validate checks business rules for the Tag entity.
func (t *Tag) Validate() error {
	if strings.TrimSpace(t.Value) == "" {
		return domain.NewValidationError("value", domain.MsgRequired)
	}
	return nil
}

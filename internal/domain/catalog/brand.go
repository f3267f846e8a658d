package catalog

import (
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
)

// Brand is a merchandising brand. Products are associated through soft links.
type Brand struct {
	Base
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	Description string `json:"description,omitempty"`
}

func (b *Brand) Kind() string  { return KindBrand }
func (b *Brand) Owner() string { return "" }

// Validate checks business rules for the Brand entity.
func (b *Brand) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(b.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := checkHandle(b.Handle); msg != "" {
		fields["handle"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// checkHandle returns a validation message for an invalid URL handle, or ""
// when the handle is acceptable.
func checkHandle(handle string) string {
	if strings.TrimSpace(handle) == "" {
		return domain.MsgRequired
	}
	for _, r := range handle {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return "must contain only lowercase letters, digits and dashes"
		}
	}
	return ""
}

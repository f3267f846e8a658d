package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/tree"
)

// validate is shared by every request DTO. Field names in errors use the
// JSON tag so they match what clients send.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of req and converts failures to a
// *domain.ValidationError keyed by JSON path (e.g. "placements[1].id").
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		fields[path] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return domain.MsgRequired
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s entries", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "uri":
		return "must be a valid URI"
	case "nefield":
		return "must differ from " + strings.ToLower(fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// BrandRequest is the JSON body for creating or replacing a brand. On
// update, omitting product_ids leaves the brand's product links unchanged;
// an empty list removes them all.
type BrandRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Handle      string   `json:"handle" validate:"required,max=64"`
	Description string   `json:"description,omitempty" validate:"max=2000"`
	ProductIDs  []string `json:"product_ids,omitempty" validate:"omitempty,dive,required"`
}

// Validate checks struct-level constraints. Business rules such as handle
// format are enforced by the domain.
func (r *BrandRequest) Validate() error { return validateStruct(r) }

// TagRequest is the JSON body for creating or replacing a tag.
type TagRequest struct {
	Value      string   `json:"value" validate:"required,max=100"`
	ProductIDs []string `json:"product_ids,omitempty" validate:"omitempty,dive,required"`
}

func (r *TagRequest) Validate() error { return validateStruct(r) }

// CollectionTabRequest describes one tab of a new collection.
type CollectionTabRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	SortKey int    `json:"sort_key" validate:"min=0"`
}

// CreateCollectionRequest is the JSON body for creating a collection.
type CreateCollectionRequest struct {
	Title   string                 `json:"title" validate:"required,max=200"`
	Handle  string                 `json:"handle" validate:"required,max=64"`
	Enabled bool                   `json:"enabled"`
	Tabs    []CollectionTabRequest `json:"tabs,omitempty" validate:"omitempty,dive"`
}

func (r *CreateCollectionRequest) Validate() error { return validateStruct(r) }

// CollectionItemRequest is the JSON body for adding a product to a
// collection.
type CollectionItemRequest struct {
	TabID     string `json:"tab_id,omitempty"`
	ProductID string `json:"product_id" validate:"required"`
	SortKey   int    `json:"sort_key" validate:"min=0"`
}

func (r *CollectionItemRequest) Validate() error { return validateStruct(r) }

// SwapItemsRequest names two items of a collection whose sort keys are
// exchanged.
type SwapItemsRequest struct {
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required,nefield=A"`
}

func (r *SwapItemsRequest) Validate() error { return validateStruct(r) }

// MenuRequest is the JSON body for creating a menu.
type MenuRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Handle string `json:"handle" validate:"required,max=64"`
}

func (r *MenuRequest) Validate() error { return validateStruct(r) }

// MenuItemRequest is the JSON body for adding or replacing a menu item.
// Enabled defaults to true when omitted.
type MenuItemRequest struct {
	ParentID *string `json:"parent_id,omitempty"`
	Label    string  `json:"label" validate:"required,max=200"`
	URL      string  `json:"url,omitempty" validate:"omitempty,uri"`
	SortKey  int     `json:"sort_key" validate:"min=0"`
	Enabled  *bool   `json:"enabled,omitempty"`
}

func (r *MenuItemRequest) Validate() error { return validateStruct(r) }

// IsEnabled reports the effective enabled flag.
func (r *MenuItemRequest) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// PlacementRequest moves one menu item. A missing parent_id keeps the
// current parent; an empty string moves the item to the top level.
type PlacementRequest struct {
	ID       string  `json:"id" validate:"required"`
	SortKey  int     `json:"sort_key" validate:"min=0"`
	ParentID *string `json:"parent_id,omitempty"`
}

// ReorderRequest is the JSON body for reordering a menu.
type ReorderRequest struct {
	Placements []PlacementRequest `json:"placements" validate:"required,min=1,dive"`
}

func (r *ReorderRequest) Validate() error { return validateStruct(r) }

// ToPlacements converts the request to tree placements.
func (r *ReorderRequest) ToPlacements() []tree.Placement {
	out := make([]tree.Placement, len(r.Placements))
	for i, p := range r.Placements {
		out[i] = tree.Placement{ID: p.ID, SortKey: p.SortKey, ParentID: p.ParentID}
	}
	return out
}

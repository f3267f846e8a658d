package link

// Link definitions used by the catalog. Products are owned by another
// subsystem; every definition points at it by product id only.
var (
	TagProduct = Definition{
		From: Endpoint{Entity: "tag", Key: "custom_tag_id"},
		To:   Endpoint{Entity: "product", Key: "product_id"},
	}
	BrandProduct = Definition{
		From: Endpoint{Entity: "brand", Key: "brand_id"},
		To:   Endpoint{Entity: "product", Key: "product_id"},
	}
	CollectionItemProduct = Definition{
		From: Endpoint{Entity: "collection_item", Key: "collection_item_id"},
		To:   Endpoint{Entity: "product", Key: "product_id"},
	}
)

// CatalogSchema returns the schema with every catalog definition registered.
func CatalogSchema() *Schema {
	return NewSchema(TagProduct, BrandProduct, CollectionItemProduct)
}

// Between builds the attribute tuple for def with the given endpoint values.
func Between(def Definition, from, to string) Attributes {
	return Link{Definition: def, FromValue: from, ToValue: to}.Attributes()
}

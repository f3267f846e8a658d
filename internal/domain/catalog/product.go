package catalog

// Product statuses as seen by this service.
const (
	ProductStatusActive   = "active"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"
	ProductStatusUnknown  = "unknown"
)

// Product is the read-only view of a product owned by the downstream
// product catalog. This service never writes products.
type Product struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

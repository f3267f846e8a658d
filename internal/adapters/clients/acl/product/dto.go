// Package product implements the Anti-Corruption Layer translators for the
// downstream product API's product resources.
package product

// ProductDTO matches the downstream Product schema. The downstream API
// speaks of "handle" and "state"; this service only keeps what it needs to
// display a linked product.
type ProductDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Handle    string `json:"handle"`
	State     string `json:"state"`
	UpdatedAt string `json:"updated_at"`
}

// EnvelopeDTO wraps a single product in the downstream GET response.
type EnvelopeDTO struct {
	Product ProductDTO `json:"product"`
}

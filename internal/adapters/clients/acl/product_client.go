package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/catalog-admin-service/internal/adapters/clients/acl/product"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain"
	"github.com/jsamuelsen11/catalog-admin-service/internal/domain/catalog"
	"github.com/jsamuelsen11/catalog-admin-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/catalog-admin-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ProductClient = (*ProductClient)(nil)
	_ ports.HealthChecker = (*ProductClient)(nil)
)

// ProductClient is the outbound adapter for the downstream product API. It
// implements [ports.ProductClient] so link writes can verify that the
// products they point at exist.
//
// Responses are translated by the [product] sub-package and HTTP errors
// are mapped to domain errors by [TranslateHTTPError]. The underlying
// [httpclient.Client] provides circuit breaking, rate limiting, retry and
// tracing for every call.
type ProductClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewProductClient creates a ProductClient that sends requests through the
// given [httpclient.Client], whose BaseURL points at the product API root.
func NewProductClient(client *httpclient.Client, logger *slog.Logger) *ProductClient {
	return &ProductClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetProduct fetches a product from GET /api/v1/products/{id}.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *ProductClient) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("product_id", "is required")
	}

	path := "/api/v1/products/" + url.PathEscape(id)

	var dto product.EnvelopeDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, fmt.Errorf("product %q: %w", id, err)
	}
	result := product.ToDomainProduct(&dto.Product)
	return &result, nil
}

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry]; it matches the httpclient service name.
func (c *ProductClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the downstream availability from the circuit breaker
// state. No network call is made.
func (c *ProductClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

// Handler wiring for the public API.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Service dependencies are
// expressed as small interfaces so tests can substitute fakes without a
// database.
package handlers

import (
	"context"

	"github.com/skuwatch/go-price-backend/internal/domain"
	"github.com/skuwatch/go-price-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// PriceLedger defines the price ledger operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PriceLedger interface {
	// Record persists one price observation; created is false for duplicates.
	Record(ctx context.Context, in services.RecordInput) (created bool, err error)
	// History returns the tag-partitioned history for (location, sku).
	History(ctx context.Context, locationName, sku string) (*services.PriceHistory, error)
}

// ProductCatalog defines the catalog operations consumed by HTTP handlers.
type ProductCatalog interface {
	// ResolveProduct upserts a product by SKU and returns the stable row.
	ResolveProduct(ctx context.Context, name, brand, sku, link string) (*domain.Product, error)
}

// CredentialIssuer defines credential issuance as consumed by HTTP handlers.
// Verification is a middleware concern (see middleware.RequireAPIKey) and is
// deliberately absent here.
type CredentialIssuer interface {
	// Issue mints a credential and returns the plaintext secret exactly once.
	Issue(ctx context.Context) (userID, plaintext string, err error)
}

// Handlers groups the HTTP endpoints for prices, products, and API keys.
type Handlers struct {
	prices  PriceLedger
	catalog ProductCatalog
	creds   CredentialIssuer
}

// New constructs and returns a Handlers instance bound to the given services.
func New(prices PriceLedger, catalog ProductCatalog, creds CredentialIssuer) *Handlers {
	return &Handlers{prices: prices, catalog: catalog, creds: creds}
}

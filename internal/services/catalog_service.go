// Package services – CatalogService
//
// This file implements the CatalogService, which reconciles human-facing
// product identity (name, brand, SKU) and store-location names with the
// stable internal ids the price ledger is keyed by. Product resolution is an
// idempotent upsert; location resolution is strictly read-only because the
// location catalog is managed externally.
//
// Service-level errors (e.g. ErrLocationNotFound, ErrProductNotFound) are
// returned for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/skuwatch/go-price-backend/internal/domain"
	"github.com/skuwatch/go-price-backend/internal/repo"
)

// CatalogRepo defines the repository contract required by CatalogService.
// Implementations are responsible for persistence of products and locations.
type CatalogRepo interface {
	// UpsertProduct atomically inserts or refreshes a product keyed by SKU
	// and returns the surviving row with its stable id.
	UpsertProduct(ctx context.Context, db *gorm.DB, name, brand, sku, link string) (*domain.Product, error)

	// GetProductBySKU fetches a product by SKU, or repo.ErrNotFound.
	GetProductBySKU(ctx context.Context, db *gorm.DB, sku string) (*domain.Product, error)

	// GetLocationByName fetches a location by its unique name, or repo.ErrNotFound.
	GetLocationByName(ctx context.Context, db *gorm.DB, name string) (*domain.Location, error)
}

// catalogRepo adapts the repository free functions to the CatalogRepo
// interface. This keeps the service decoupled from the concrete repo package
// while reusing existing functions.
type catalogRepo struct{}

func (catalogRepo) UpsertProduct(ctx context.Context, db *gorm.DB, name, brand, sku, link string) (*domain.Product, error) {
	return repo.UpsertProduct(ctx, db, name, brand, sku, link)
}

func (catalogRepo) GetProductBySKU(ctx context.Context, db *gorm.DB, sku string) (*domain.Product, error) {
	return repo.GetProductBySKU(ctx, db, sku)
}

func (catalogRepo) GetLocationByName(ctx context.Context, db *gorm.DB, name string) (*domain.Location, error) {
	return repo.GetLocationByName(ctx, db, name)
}

// CatalogService resolves product and location identity. It is the sole
// writer of the products table; it never writes locations.
type CatalogService struct {
	// DB is the GORM handle used for persistence. It may be a plain handle
	// or a transaction-bound one.
	DB *gorm.DB
	// Repo is the catalog repository used by this service.
	Repo CatalogRepo
}

// NewCatalogService constructs a CatalogService over db backed by the
// default repository functions.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db, Repo: catalogRepo{}}
}

// ResolveProduct maps (name, brand, sku, link) to the stable product id,
// creating the product when the SKU is unseen and refreshing the mutable
// fields otherwise. The id of an existing product is preserved. The write is
// a single atomic conflict-resolving upsert, so concurrent resolutions of the
// same new SKU produce exactly one row.
func (s *CatalogService) ResolveProduct(ctx context.Context, name, brand, sku, link string) (*domain.Product, error) {
	return s.Repo.UpsertProduct(ctx, s.DB, name, brand, sku, link)
}

// LookupProduct maps a SKU to its cataloged product without writing anything.
// Unknown SKUs yield ErrProductNotFound.
func (s *CatalogService) LookupProduct(ctx context.Context, sku string) (*domain.Product, error) {
	p, err := s.Repo.GetProductBySKU(ctx, s.DB, sku)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// ResolveLocation maps a store-location name to its stable id. Unknown names
// are a hard failure (ErrLocationNotFound): the location catalog is fixed and
// externally managed, not a free-form field. No side effects on failure.
func (s *CatalogService) ResolveLocation(ctx context.Context, name string) (*domain.Location, error) {
	loc, err := s.Repo.GetLocationByName(ctx, s.DB, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrLocationNotFound
	}
	return loc, err
}

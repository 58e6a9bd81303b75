// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Product model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a product is not found, lookup functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// UpsertProduct inserts a product keyed by SKU, or refreshes the mutable
// columns (name, brand, link) of the existing row when the SKU is already
// cataloged. The write is a single atomic INSERT ... ON CONFLICT DO UPDATE,
// not a read-then-write pair, so two concurrent reports for a new SKU cannot
// create two rows. The stable id of the surviving row is read back afterwards;
// run both inside one transaction handle when atomic visibility matters.
func UpsertProduct(ctx context.Context, db *gorm.DB, name, brand, sku, link string) (*domain.Product, error) {
	return upsertProduct(ctx, db, domain.Product{Name: name, Brand: brand, SKU: sku, Link: link},
		[]string{"name", "brand", "link", "updated_at"})
}

// UpsertProductKeepLink is the price-report variant of UpsertProduct. A report
// carries no link, so the conflict assignment list excludes the link column: a
// link set through the catalog survives any number of subsequent reports.
func UpsertProductKeepLink(ctx context.Context, db *gorm.DB, name, brand, sku string) (*domain.Product, error) {
	return upsertProduct(ctx, db, domain.Product{Name: name, Brand: brand, SKU: sku},
		[]string{"name", "brand", "updated_at"})
}

func upsertProduct(ctx context.Context, db *gorm.DB, p domain.Product, assign []string) (*domain.Product, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns(assign),
		}).
		Create(&p).Error
	if err != nil {
		return nil, err
	}
	// On the conflict path the generated id above was discarded; fetch the
	// row that actually survived to learn its immutable id.
	return GetProductBySKU(ctx, db, p.SKU)
}

// GetProductBySKU fetches a single product by its SKU. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is returned.
func GetProductBySKU(ctx context.Context, db *gorm.DB, sku string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).
		Where("sku = ?", sku).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

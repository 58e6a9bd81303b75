// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// PriceObservation model: append-only inserts with natural-key deduplication
// and ordered history reads.
//
// Error semantics:
//   - InsertPrice relies on the composite unique index over
//     (product_id, location_id, date); a collision is reported as
//     created == false with a nil error, never as a failure.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

// InsertPrice appends one observation row. If a row with the identical
// (productID, locationID, date) already exists the insert is an atomic no-op
// (ON CONFLICT DO NOTHING) and created is false; repeated submissions of the
// same observation are therefore idempotent and never race into duplicates.
func InsertPrice(ctx context.Context, db *gorm.DB, productID, locationID string, date time.Time, price decimal.Decimal, unit, tag string) (created bool, err error) {
	obs := &domain.PriceObservation{
		ID:          uuid.NewString(),
		ProductID:   productID,
		LocationID:  locationID,
		Date:        date,
		Price:       price,
		Unit:        unit,
		Tag:         tag,
		LastUpdated: time.Now().UTC(),
	}
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "product_id"}, {Name: "location_id"}, {Name: "date"},
			},
			DoNothing: true,
		}).
		Create(obs)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListPrices returns all observations for a (product, location) pair ordered
// by observation date descending (most recent first). Ties on date cannot
// occur for the same pair because of the natural-key index. It returns an
// empty slice when no observations exist. On DB error, it returns the error.
func ListPrices(ctx context.Context, db *gorm.DB, productID, locationID string) ([]domain.PriceObservation, error) {
	var out []domain.PriceObservation
	err := db.WithContext(ctx).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		Order("date desc").
		Find(&out).Error
	return out, err
}

// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Location
// model. Locations are a fixed, externally managed catalog of store
// identities: the price-report path only reads them, and creation is reserved
// for seeding and operational tooling.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

// GetLocationByName fetches a location by its unique name. If the record does
// not exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetLocationByName(ctx context.Context, db *gorm.DB, name string) (*domain.Location, error) {
	var loc domain.Location
	err := db.WithContext(ctx).
		Where("name = ?", name).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// CreateLocation inserts a location row with the given unique name. A name
// collision is a no-op (the location already exists), which makes seeding
// idempotent. The surviving row is returned either way.
func CreateLocation(ctx context.Context, db *gorm.DB, name string) (*domain.Location, error) {
	loc := &domain.Location{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(loc).Error
	if err != nil {
		return nil, err
	}
	return GetLocationByName(ctx, db, name)
}

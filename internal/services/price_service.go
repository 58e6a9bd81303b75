// Package services – PriceService
//
// This file implements the PriceService, the append-only price ledger. It
// records observed prices against stable (product, location) ids obtained
// from the catalog, and serves ordered, tag-partitioned history.
//
// Semantics worth calling out:
//   - Record runs as one transaction: location resolution, product upsert,
//     and observation insert either all apply or none do, so a failed price
//     insert cannot leave an orphaned product behind.
//   - Duplicate observations (same product, location, date) are an idempotent
//     no-op, reported as created == false with a nil error.
//   - History partitions observations into buckets: regular and sale tags
//     merge into the going-price bucket, limit and multi each stand alone.
//     Rows carrying an unrecognized tag are surfaced in a separate bucket and
//     logged; they are never silently dropped.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/skuwatch/go-price-backend/internal/domain"
	"github.com/skuwatch/go-price-backend/internal/repo"
)

// RecordInput carries one observed price as reported by a caller. All string
// fields are expected to be present and non-empty (enforced at the transport
// layer); Date defaults to the current UTC day when zero.
type RecordInput struct {
	Name     string
	Brand    string
	SKU      string
	Location string
	Price    decimal.Decimal
	Unit     string
	Tag      string
	Date     time.Time
}

// PriceHistory is the tag-partitioned, date-descending history for one
// (product, location) pair.
type PriceHistory struct {
	// Regular holds observations tagged "regular" or "sale": the current
	// going price of the product.
	Regular []domain.PriceObservation `json:"regular"`
	// Limit holds observations tagged "limit" (promotional quantity caps).
	Limit []domain.PriceObservation `json:"limit"`
	// Multi holds observations tagged "multi" (multi-buy pricing).
	Multi []domain.PriceObservation `json:"multi"`
	// Unclassified holds observations whose tag is not recognized. Such rows
	// are a data-quality signal and are surfaced rather than dropped.
	Unclassified []domain.PriceObservation `json:"unclassified,omitempty"`
}

// PriceService implements the use-cases around the price ledger.
type PriceService struct {
	// DB is the database handle used for all ledger operations.
	DB *gorm.DB
	// Catalog resolves products and locations to stable ids.
	Catalog *CatalogService
}

// NewPriceService constructs a PriceService over db and catalog.
func NewPriceService(db *gorm.DB, catalog *CatalogService) *PriceService {
	return &PriceService{DB: db, Catalog: catalog}
}

// Record persists one price observation.
//
// Validation:
//   - in.Tag must be one of regular, sale, limit, multi; otherwise ErrInvalidTag.
//   - in.Price must be non-negative; otherwise ErrInvalidPrice.
//
// Behavior:
//   - The referenced location must already exist; otherwise ErrLocationNotFound
//     and nothing is written.
//   - The product is resolved through an atomic SKU upsert (created if unseen,
//     name and brand refreshed otherwise; a catalog link is left untouched).
//   - Dates are normalized to the UTC calendar day, so a second observation
//     for the same (product, location, day) is a no-op: created is false
//     while err stays nil.
//
// Concurrency & atomicity:
//   - The whole operation runs inside a transaction; uniqueness races are
//     resolved by the storage layer's constraints, not application locks.
func (s *PriceService) Record(ctx context.Context, in RecordInput) (created bool, err error) {
	if !domain.KnownTag(in.Tag) {
		return false, ErrInvalidTag
	}
	if in.Price.IsNegative() {
		return false, ErrInvalidPrice
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	// The ledger keys observations per calendar day (UTC).
	date = date.UTC().Truncate(24 * time.Hour)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loc, lerr := repo.GetLocationByName(ctx, tx, in.Location)
		if errors.Is(lerr, repo.ErrNotFound) {
			return ErrLocationNotFound
		}
		if lerr != nil {
			return lerr
		}

		prod, perr := repo.UpsertProductKeepLink(ctx, tx, in.Name, in.Brand, in.SKU)
		if perr != nil {
			return perr
		}

		created, perr = repo.InsertPrice(ctx, tx, prod.ID, loc.ID, date, in.Price, in.Unit, in.Tag)
		return perr
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// History returns the tag-partitioned observation history for the product
// with the given SKU at the named location, ordered most recent first within
// each bucket. Unknown SKUs yield ErrProductNotFound and unknown locations
// ErrLocationNotFound; both are read-only failures with no side effects.
func (s *PriceService) History(ctx context.Context, locationName, sku string) (*PriceHistory, error) {
	prod, err := s.Catalog.LookupProduct(ctx, sku)
	if err != nil {
		return nil, err
	}
	loc, err := s.Catalog.ResolveLocation(ctx, locationName)
	if err != nil {
		return nil, err
	}

	rows, err := repo.ListPrices(ctx, s.DB, prod.ID, loc.ID)
	if err != nil {
		return nil, err
	}

	h := &PriceHistory{
		Regular: []domain.PriceObservation{},
		Limit:   []domain.PriceObservation{},
		Multi:   []domain.PriceObservation{},
	}
	for _, obs := range rows {
		switch obs.Tag {
		case domain.TagRegular, domain.TagSale:
			h.Regular = append(h.Regular, obs)
		case domain.TagLimit:
			h.Limit = append(h.Limit, obs)
		case domain.TagMulti:
			h.Multi = append(h.Multi, obs)
		default:
			h.Unclassified = append(h.Unclassified, obs)
		}
	}
	if n := len(h.Unclassified); n > 0 {
		log.Warn().
			Str("sku", sku).
			Str("location", locationName).
			Int("count", n).
			Msg("observations with unrecognized tag")
	}
	return h, nil
}

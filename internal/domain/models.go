// Package domain defines the persistence models for products, locations,
// price observations, and issued API keys. These types are mapped with GORM
// and form the core data layer of the price-tracking backend.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price tags recognized by the ledger. "regular" and "sale" describe the
// current going price; "limit" marks promotional quantity caps; "multi"
// marks multi-buy pricing.
const (
	TagRegular = "regular"
	TagSale    = "sale"
	TagLimit   = "limit"
	TagMulti   = "multi"
)

// KnownTag reports whether tag is one of the recognized price categories.
func KnownTag(tag string) bool {
	switch tag {
	case TagRegular, TagSale, TagLimit, TagMulti:
		return true
	}
	return false
}

// Product is a cataloged retail product identified by its SKU.
//
// Fields:
//   - ID: stable UUID primary key (char(36)); immutable once assigned.
//   - SKU: external product identifier supplied by callers; unique, never reused.
//   - Name / Brand / Link: mutable descriptive fields, refreshed on each
//     catalog resolution for the same SKU.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// Products are created on first resolution of an unseen SKU and never deleted.
type Product struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Brand     string    `json:"brand"      gorm:"type:varchar(255);not null"`
	SKU       string    `json:"sku"        gorm:"column:sku;type:varchar(64);not null;uniqueIndex:ux_products_sku"`
	Link      string    `json:"link,omitempty" gorm:"type:varchar(2048)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// Location is a physical store identified by its unique name. Locations form
// a fixed, externally managed catalog: the price-report path only reads them.
type Location struct {
	ID        string    `json:"id"   gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:ux_locations_name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Location.
func (Location) TableName() string { return "locations" }

// PriceObservation is one observed price for a product at a location on a
// given date. Rows are append-only: they are never mutated or deleted, and
// (product_id, location_id, date) acts as the natural deduplication key,
// enforced by a composite unique index.
//
// Price is an exact decimal (stored as decimal text, not floating point) so
// repeated writes never accumulate rounding drift.
type PriceObservation struct {
	ID          string          `json:"id"          gorm:"type:char(36);primaryKey"`
	ProductID   string          `json:"product_id"  gorm:"type:char(36);not null;index;uniqueIndex:ux_prices_natural,priority:1"`
	LocationID  string          `json:"location_id" gorm:"type:char(36);not null;index;uniqueIndex:ux_prices_natural,priority:2"`
	Date        time.Time       `json:"date"        gorm:"not null;uniqueIndex:ux_prices_natural,priority:3"`
	Price       decimal.Decimal `json:"price"       gorm:"type:decimal(12,2);not null"`
	Unit        string          `json:"unit"        gorm:"type:varchar(32);not null"`
	Tag         string          `json:"tag"         gorm:"type:varchar(16);not null;check:tag IN ('regular','sale','limit','multi')"`
	LastUpdated time.Time       `json:"last_updated"`

	// Product and Location are FK associations; observations are never
	// cascade-deleted because their parents are never removed.
	Product  Product  `json:"-" gorm:"foreignKey:ProductID;references:ID"`
	Location Location `json:"-" gorm:"foreignKey:LocationID;references:ID"`
}

// TableName returns the database table name for PriceObservation.
func (PriceObservation) TableName() string { return "prices" }

// APIKey is an issued credential. Only the bcrypt hash of the secret is
// persisted; the plaintext key is returned to the caller exactly once at
// issuance and is never retrievable again.
type APIKey struct {
	UserID    string    `json:"user_id" gorm:"type:char(36);primaryKey"`
	KeyHash   string    `json:"-"       gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for APIKey.
func (APIKey) TableName() string { return "api_keys" }

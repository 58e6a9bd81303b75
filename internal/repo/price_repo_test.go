package repo

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/skuwatch/go-price-backend/internal/domain"
)

// seedPair migrates the full schema and returns one product id and one
// location id to hang observations off.
func seedPair(t *testing.T) (*gorm.DB, string, string) {
	t.Helper()
	db := newRepoDB(t, &domain.Product{}, &domain.Location{}, &domain.PriceObservation{})
	ctx := context.Background()

	p, err := UpsertProduct(ctx, db, "Milk", "Acme", "SKU1", "")
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	loc, err := CreateLocation(ctx, db, "Main St")
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return db, p.ID, loc.ID
}

// countObservations reports the stored row count for a (product, location)
// pair, bypassing the repository functions under test.
func countObservations(t *testing.T, db *gorm.DB, productID, locationID string) int64 {
	t.Helper()
	var total int64
	err := db.Model(&domain.PriceObservation{}).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		Count(&total).Error
	if err != nil {
		t.Fatalf("count observations: %v", err)
	}
	return total
}

func TestInsertPrice_CreatesRow(t *testing.T) {
	db, pid, lid := seedPair(t)
	ctx := context.Background()

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := InsertPrice(ctx, db, pid, lid, date, decimal.RequireFromString("4.99"), "2L", domain.TagRegular)
	if err != nil {
		t.Fatalf("InsertPrice: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true for first insert")
	}

	if total := countObservations(t, db, pid, lid); total != 1 {
		t.Fatalf("expected one observation, got %d", total)
	}
}

func TestInsertPrice_DuplicateNaturalKey_NoOp(t *testing.T) {
	db, pid, lid := seedPair(t)
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("4.99")

	if created, err := InsertPrice(ctx, db, pid, lid, date, price, "2L", domain.TagRegular); err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}
	created, err := InsertPrice(ctx, db, pid, lid, date, price, "2L", domain.TagRegular)
	if err != nil {
		t.Fatalf("duplicate insert must not error, got %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate natural key")
	}

	if total := countObservations(t, db, pid, lid); total != 1 {
		t.Fatalf("expected exactly one surviving row, got %d", total)
	}
}

func TestInsertPrice_DifferentDates_BothSurvive(t *testing.T) {
	db, pid, lid := seedPair(t)
	ctx := context.Background()
	price := decimal.RequireFromString("3.49")

	d1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.Add(24 * time.Hour)
	for _, d := range []time.Time{d1, d2} {
		if created, err := InsertPrice(ctx, db, pid, lid, d, price, "ea", domain.TagSale); err != nil || !created {
			t.Fatalf("insert %v: created=%v err=%v", d, created, err)
		}
	}
	if total := countObservations(t, db, pid, lid); total != 2 {
		t.Fatalf("expected two observations, got %d", total)
	}
}

func TestListPrices_OrderedDateDescending(t *testing.T) {
	db, pid, lid := seedPair(t)
	ctx := context.Background()

	d1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // oldest
	d2 := d1.AddDate(0, 1, 0)
	d3 := d1.AddDate(0, 2, 0) // newest
	// Insert out of order on purpose.
	for _, d := range []time.Time{d2, d1, d3} {
		if _, err := InsertPrice(ctx, db, pid, lid, d, decimal.New(199, -2), "ea", domain.TagRegular); err != nil {
			t.Fatalf("insert %v: %v", d, err)
		}
	}

	rows, err := ListPrices(ctx, db, pid, lid)
	if err != nil {
		t.Fatalf("ListPrices: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []time.Time{d3, d2, d1} {
		if !rows[i].Date.Equal(want) {
			t.Fatalf("row %d: expected date %v, got %v", i, want, rows[i].Date)
		}
	}
}

func TestListPrices_ExactDecimalRoundTrip(t *testing.T) {
	db, pid, lid := seedPair(t)
	ctx := context.Background()

	want := decimal.RequireFromString("10.10")
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := InsertPrice(ctx, db, pid, lid, date, want, "kg", domain.TagMulti); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := ListPrices(ctx, db, pid, lid)
	if err != nil || len(rows) != 1 {
		t.Fatalf("list: rows=%d err=%v", len(rows), err)
	}
	if !rows[0].Price.Equal(want) {
		t.Fatalf("price drifted: want %s, got %s", want, rows[0].Price)
	}
}

func TestListPrices_EmptyForUnknownPair(t *testing.T) {
	db, pid, _ := seedPair(t)
	rows, err := ListPrices(context.Background(), db, pid, "no-such-location")
	if err != nil {
		t.Fatalf("ListPrices: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

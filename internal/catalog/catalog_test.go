package catalog

import (
	"database/sql"
	"testing"

	"github.com/lndn-movers/removals/internal/migrations"

	_ "modernc.org/sqlite"
)

func newCatalogTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := migrations.Up(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}

func insertItem(t *testing.T, db *sql.DB, itemID, name, room string, weightKg, volumeM3 float64, active bool) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO removal_items (item_id, name, room, weight_kg, volume_m3, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, itemID, name, room, weightKg, volumeM3, active)
	if err != nil {
		t.Fatalf("insert item %q: %v", itemID, err)
	}
}

func TestListActiveFiltersAndOrders(t *testing.T) {
	db := newCatalogTestDB(t)

	insertItem(t, db, "washing-machine", "Washing Machine", "Kitchen", 70, 0.35, true)
	insertItem(t, db, "armchair", "Armchair", "Living", 25, 0.7, true)
	insertItem(t, db, "bedside-table", "Bedside Table", "Bedrooms", 8, 0.12, true)
	insertItem(t, db, "water-bed", "Water Bed", "Bedrooms", 90, 2.0, false)

	items, err := ListActive(db)
	if err != nil {
		t.Fatalf("ListActive returned error: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 active items, got %d", len(items))
	}
	if items[0].ItemID != "bedside-table" || items[1].ItemID != "washing-machine" || items[2].ItemID != "armchair" {
		t.Fatalf("items are not ordered by room then name: %+v", items)
	}
	for _, item := range items {
		if item.ItemID == "water-bed" {
			t.Fatalf("inactive item leaked into active listing")
		}
	}
}

func TestGetReturnsInactiveItems(t *testing.T) {
	db := newCatalogTestDB(t)

	insertItem(t, db, "water-bed", "Water Bed", "Bedrooms", 90, 2.0, false)

	item, err := Get(db, "water-bed")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if item.IsActive {
		t.Fatalf("expected inactive item, got %+v", item)
	}
	if !item.IsHeavy() {
		t.Fatalf("90kg item should be heavy")
	}

	if _, err := Get(db, "missing"); err == nil {
		t.Fatalf("expected error for missing item")
	}
}

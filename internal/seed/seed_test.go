package seed

import (
	"path/filepath"
	"testing"

	"github.com/lndn-movers/removals/internal/db"
	"github.com/lndn-movers/removals/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != len(defaultCatalog) {
				t.Fatalf("expected %d inserts in first run, got %d", len(defaultCatalog), stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM removal_items WHERE active`).Scan(&count); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != len(defaultCatalog) {
		t.Fatalf("expected %d active items, got %d", len(defaultCatalog), count)
	}

	var weight float64
	if err := database.QueryRow(`SELECT weight_kg FROM removal_items WHERE item_id = ?`, "washing-machine").Scan(&weight); err != nil {
		t.Fatalf("query washing machine: %v", err)
	}
	if weight != 70 {
		t.Fatalf("expected washing machine weight 70, got %v", weight)
	}
}

func TestRunPreservesEditedItems(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seed-edit-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if _, err := Run(database); err != nil {
		t.Fatalf("first seed run: %v", err)
	}

	if _, err := database.Exec(`UPDATE removal_items SET weight_kg = 99 WHERE item_id = ?`, "cooker"); err != nil {
		t.Fatalf("edit item: %v", err)
	}

	if _, err := Run(database); err != nil {
		t.Fatalf("second seed run: %v", err)
	}

	var weight float64
	if err := database.QueryRow(`SELECT weight_kg FROM removal_items WHERE item_id = ?`, "cooker").Scan(&weight); err != nil {
		t.Fatalf("query cooker: %v", err)
	}
	if weight != 99 {
		t.Fatalf("seed must not overwrite edited items, weight = %v", weight)
	}
}

func TestItemID(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Double Bed & Mattress", "double-bed-mattress"},
		{`Small Television/TV (Less than 30")`, "small-television-tv-less-than-30"},
		{"4 Seater Dining Table", "4-seater-dining-table"},
		{"TV Stand", "tv-stand"},
	}
	for _, tc := range cases {
		if got := ItemID(tc.name); got != tc.want {
			t.Fatalf("ItemID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

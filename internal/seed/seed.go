// Package seed populates the removal-item catalog on startup. The seed is
// idempotent: items already present (by item_id) are left untouched, so admin
// edits to weights and volumes survive restarts.
package seed

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

type catalogItem struct {
	name     string
	room     string
	weightKg float64
	volumeM3 float64
}

// defaultCatalog mirrors the booking-form inventory list. Weights and volumes
// are typical UK household figures; anything over 15kg counts as heavy.
var defaultCatalog = []catalogItem{
	{"Single Bed & Mattress", "Bedrooms", 25, 0.8},
	{"Double Bed & Mattress", "Bedrooms", 45, 1.2},
	{"Kingsize Bed & Mattress", "Bedrooms", 60, 1.5},
	{"Single Wardrobe", "Bedrooms", 35, 0.9},
	{"Double Wardrobe", "Bedrooms", 55, 1.4},
	{"Chest Of Drawers", "Bedrooms", 30, 0.5},
	{"Bedside Table", "Bedrooms", 8, 0.12},
	{"Dressing Table", "Bedrooms", 20, 0.45},
	{"Two Seater Sofa", "Living", 40, 1.1},
	{"Three Seater Sofa", "Living", 55, 1.6},
	{"Armchair", "Living", 25, 0.7},
	{"Coffee Table", "Living", 12, 0.25},
	{`Small Television/TV (Less than 30")`, "Living", 8, 0.1},
	{`Large Television/TV (Greater than 40")`, "Living", 18, 0.2},
	{"TV Stand", "Living", 15, 0.3},
	{"Bookcase", "Living", 28, 0.6},
	{"Desk", "Living", 25, 0.6},
	{"Office Chair", "Living", 12, 0.4},
	{"4 Seater Dining Table", "Dining", 30, 0.9},
	{"6 Seater Dining Table", "Dining", 45, 1.3},
	{"Dining Chair", "Dining", 6, 0.25},
	{"Sideboard", "Dining", 35, 0.8},
	{"Fridge Freezer", "Kitchen", 80, 0.7},
	{"Washing Machine", "Kitchen", 70, 0.35},
	{"Microwave Oven", "Kitchen", 12, 0.06},
	{"Cooker", "Kitchen", 50, 0.4},
	{"Dishwasher", "Kitchen", 45, 0.4},
	{"Small Boxes", "Miscellaneous", 5, 0.041},
	{"Large Boxes", "Miscellaneous", 8, 0.082},
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, item := range defaultCatalog {
		if err := ensureItem(tx, item, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureItem(tx *sql.Tx, item catalogItem, stats *Stats) error {
	itemID := ItemID(item.name)

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM removal_items WHERE item_id = ? LIMIT 1)`, itemID).Scan(&exists); err != nil {
		return fmt.Errorf("check item %q existence: %w", itemID, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO removal_items (item_id, name, room, weight_kg, volume_m3, active)
		VALUES (?, ?, ?, ?, ?, TRUE)
	`, itemID, item.name, item.room, item.weightKg, item.volumeM3); err != nil {
		return fmt.Errorf("insert item %q: %w", itemID, err)
	}

	stats.Inserts++
	return nil
}

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// ItemID slugifies a display name into its catalog id, the same way the
// booking form derives ids: "Double Bed & Mattress" -> "double-bed-mattress".
func ItemID(name string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

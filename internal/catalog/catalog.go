// Package catalog reads the removal-item reference catalog from the database.
package catalog

import (
	"database/sql"
	"fmt"

	"github.com/lndn-movers/removals/internal/inventory"
)

// ListActive returns all active catalog items, ordered by room then name. The
// quote flow only ever works against active items; retired ones stay in the
// table for historic quotes.
func ListActive(db *sql.DB) ([]inventory.RemovalItem, error) {
	rows, err := db.Query(`
		SELECT item_id, name, room, weight_kg, volume_m3, active
		FROM removal_items
		WHERE active
		ORDER BY room, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query removal items: %w", err)
	}
	defer rows.Close()

	items := make([]inventory.RemovalItem, 0)
	for rows.Next() {
		var item inventory.RemovalItem
		if err := rows.Scan(&item.ItemID, &item.Name, &item.Room, &item.WeightKg, &item.VolumeM3, &item.IsActive); err != nil {
			return nil, fmt.Errorf("scan removal item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate removal items: %w", err)
	}

	return items, nil
}

// Get returns a single catalog item by its item id, active or not.
func Get(db *sql.DB, itemID string) (inventory.RemovalItem, error) {
	var item inventory.RemovalItem
	err := db.QueryRow(`
		SELECT item_id, name, room, weight_kg, volume_m3, active
		FROM removal_items
		WHERE item_id = ?
	`, itemID).Scan(&item.ItemID, &item.Name, &item.Room, &item.WeightKg, &item.VolumeM3, &item.IsActive)
	if err != nil {
		return inventory.RemovalItem{}, fmt.Errorf("query removal item %q: %w", itemID, err)
	}
	return item, nil
}

// Package inventory maps booking-form furniture selections onto the volume and
// weight totals consumed by the quote engine.
package inventory

import (
	"log"
	"math"
)

// HeavyItemThresholdKg is the catalog weight above which a unit counts as heavy.
const HeavyItemThresholdKg = 15.0

// RemovalItem is a reference catalog row. The catalog is maintained outside the
// analyzer and passed in read-only.
type RemovalItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Room     string  `json:"room"`
	WeightKg float64 `json:"weightKg"`
	VolumeM3 float64 `json:"volumeM3"`
	IsActive bool    `json:"isActive"`
}

// IsHeavy reports whether a single unit of this item counts as heavy.
func (item RemovalItem) IsHeavy() bool {
	return item.WeightKg > HeavyItemThresholdKg
}

// Selection is one (item, quantity) pair from the booking form. Duplicates are
// not deduplicated; that is the caller's responsibility.
type Selection struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// ItemBreakdown is the per-item portion of an Analysis.
type ItemBreakdown struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	WeightKg    float64 `json:"weightKg"`
	VolumeM3    float64 `json:"volumeM3"`
	TotalWeight float64 `json:"totalWeight"`
	TotalVolume float64 `json:"totalVolume"`
	IsHeavy     bool    `json:"isHeavy"`
}

// Analysis aggregates a set of selections. NumHeavyItems counts units, not
// distinct items: three wardrobes contribute three.
type Analysis struct {
	TotalVolume   float64         `json:"totalVolume"`
	NumHeavyItems int             `json:"numHeavyItems"`
	TotalItems    int             `json:"totalItems"`
	ItemBreakdown []ItemBreakdown `json:"itemBreakdown"`
}

// Analyze computes volume and weight totals for the given selections against
// the catalog. Selections with quantity <= 0 are skipped silently; unknown item
// ids are skipped with a warning and contribute nothing to the totals. The
// total volume is rounded to 3 decimal places to keep float drift out of
// persisted quotes.
func Analyze(selections []Selection, catalog []RemovalItem) Analysis {
	lookup := make(map[string]RemovalItem, len(catalog))
	for _, item := range catalog {
		lookup[item.ItemID] = item
	}

	var totalVolume float64
	analysis := Analysis{ItemBreakdown: make([]ItemBreakdown, 0, len(selections))}

	for _, sel := range selections {
		if sel.Quantity <= 0 {
			continue
		}

		item, ok := lookup[sel.ItemID]
		if !ok {
			log.Printf("warning: unknown item_id %q in inventory selection, skipping", sel.ItemID)
			continue
		}

		quantity := float64(sel.Quantity)
		itemTotalWeight := item.WeightKg * quantity
		itemTotalVolume := item.VolumeM3 * quantity

		totalVolume += itemTotalVolume
		if item.IsHeavy() {
			analysis.NumHeavyItems += sel.Quantity
		}
		analysis.TotalItems += sel.Quantity

		analysis.ItemBreakdown = append(analysis.ItemBreakdown, ItemBreakdown{
			ItemID:      sel.ItemID,
			Name:        item.Name,
			Quantity:    sel.Quantity,
			WeightKg:    item.WeightKg,
			VolumeM3:    item.VolumeM3,
			TotalWeight: itemTotalWeight,
			TotalVolume: itemTotalVolume,
			IsHeavy:     item.IsHeavy(),
		})
	}

	analysis.TotalVolume = math.Round(totalVolume*1000) / 1000

	return analysis
}

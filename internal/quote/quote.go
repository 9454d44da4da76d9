// Package quote implements the removals quote recommendation engine: vehicle
// and crew selection, time estimation, and zone-based pricing. The whole
// package is pure computation over its inputs and fixed rule tables; it is
// safe to call concurrently.
package quote

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RoundToNearestHalfHour rounds minutes to the nearest 30-minute increment,
// e.g. 40 becomes 30 and 50 becomes 60. Exact halves round up (45 becomes 60).
func RoundToNearestHalfHour(minutes float64) int {
	hoursRounded := math.Round(minutes/30) * 0.5
	return int(math.Floor(hoursRounded * 60))
}

// MaxCapacity returns the maximum capacity of a vehicle in cubic metres.
// Unknown vehicle types fall back to the largest capacity.
func MaxCapacity(vehicleType VehicleType) float64 {
	if capacity, ok := vehicleCapacities[vehicleType]; ok {
		return capacity
	}
	return 25.0
}

// ZoneForDistance classifies a move as local or non-local by distance alone.
// The nationwide zone is a separate service tier chosen by the caller; it is
// never derived from distance here.
func ZoneForDistance(distanceMiles float64) MoveZone {
	if distanceMiles <= LocalZoneThresholdMiles {
		return ZoneLocal
	}
	return ZoneNonLocal
}

// OccupancyFor reports how full a vehicle would be with the given volume.
func OccupancyFor(volume float64, vehicleType VehicleType) Occupancy {
	if volume/MaxCapacity(vehicleType) < 0.5 {
		return OccupancyLessThanHalf
	}
	return OccupancyHalfOrMore
}

// CategoryForVolume buckets a volume into a reporting category. Band upper
// bounds are inclusive.
func CategoryForVolume(volume float64) VolumeCategory {
	switch {
	case volume <= 6.2:
		return VolumeSmall
	case volume <= 13.19:
		return VolumeMedium
	case volume <= 25:
		return VolumeLarge
	default:
		return VolumeExtraLarge
	}
}

// ComplexityFactor computes the informational complexity multiplier. It is
// reported on the quote but deliberately not applied to the price.
func ComplexityFactor(volume float64, numHeavyItems, crewSize int) float64 {
	factor := 1.0
	if numHeavyItems > 0 {
		factor += 0.2
	}
	if crewSize > 2 {
		factor += 0.15
	}
	if volume > 20 {
		factor += 0.1
	}
	return factor
}

// CrewSize determines crew size for a vehicle given item weights and access
// conditions. The branch order is the source of truth: on the Medium Van the
// heavy-item branches are evaluated before the difficult-access check.
func CrewSize(vehicleType VehicleType, numHeavyItems int, customerAssistance, difficultAccess bool) int {
	hasHeavyItems := numHeavyItems > 0

	if vehicleType == VehicleSmallVan {
		return 1
	}

	if vehicleType == VehicleMediumVan {
		if !hasHeavyItems {
			return 1
		}
		if hasHeavyItems && customerAssistance {
			return 1
		}
		if hasHeavyItems && !customerAssistance {
			return 2
		}
		if difficultAccess {
			return 2
		}
	}

	if vehicleType == VehicleLargeLuton {
		if difficultAccess {
			return 3
		}
		return 2
	}

	return 2
}

// RecommendVehicleAndCrew selects a vehicle and crew size from a strict,
// ordered priority list. Rules are evaluated top to bottom and the first match
// wins, even when later rules would also match.
func RecommendVehicleAndCrew(volume float64, numHeavyItems int, customerAssistance bool, numRooms int, difficultAccess bool) VehicleRecommendation {
	hasHeavyItems := numHeavyItems > 0
	heavySuffix := heavyItemSuffix(numHeavyItems)

	// Priority 1: Large Luton for 2+ bedroom properties, always.
	if numRooms >= 2 {
		vehicleType := VehicleLargeLuton
		reasoning := fmt.Sprintf("%d-bed house requires Large Luton", numRooms)
		if hasHeavyItems {
			reasoning += fmt.Sprintf(" with %d heavy item%s", numHeavyItems, heavySuffix)
		}
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "2 Hours (2 - 4 Hours)",
			Reasoning:    reasoning,
		}
	}

	// Priority 2: Small Van for studios with no heavy items, regardless of volume.
	if numRooms == 0 && (!hasHeavyItems || customerAssistance) {
		vehicleType := VehicleSmallVan
		reasoning := "Studio flat, suitable for Small Van"
		if hasHeavyItems && customerAssistance {
			reasoning += fmt.Sprintf(" with customer assistance for %d heavy item%s", numHeavyItems, heavySuffix)
		}
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "1 Hour",
			Reasoning:    reasoning,
		}
	}

	// Priority 3: large studios need the Luton once volume exceeds van capacity.
	if numRooms == 0 && volume > 13.19 {
		vehicleType := VehicleLargeLuton
		reasoning := fmt.Sprintf("Studio flat with large volume (%sm³) requires Large Luton", formatNumber(volume))
		if hasHeavyItems {
			reasoning += fmt.Sprintf(" with %d heavy item%s", numHeavyItems, heavySuffix)
		}
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "2 Hours (2 - 4 Hours)",
			Reasoning:    reasoning,
		}
	}

	// Priority 4: Medium Van for studios with heavy items and no assistance.
	if numRooms == 0 && hasHeavyItems && !customerAssistance {
		vehicleType := VehicleMediumVan
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "1 Hour (1-2)",
			Reasoning:    fmt.Sprintf("Studio flat but %d heavy item%s require Medium Van", numHeavyItems, heavySuffix),
		}
	}

	// Priority 5: Medium Van for 1-bedroom properties.
	if numRooms == 1 {
		vehicleType := VehicleMediumVan
		reasoning := "1-bed house requires Medium Van"
		if hasHeavyItems {
			reasoning += fmt.Sprintf(" with %d heavy item%s", numHeavyItems, heavySuffix)
		}
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "1 Hour (1-2)",
			Reasoning:    reasoning,
		}
	}

	// Priority 6: volume-based selection for edge cases.
	if volume >= 18 {
		vehicleType := VehicleLargeLuton
		reasoning := fmt.Sprintf("Large volume (%sm³) requires Large Luton", formatNumber(volume))
		if hasHeavyItems {
			reasoning += fmt.Sprintf(" with %d heavy item%s", numHeavyItems, heavySuffix)
		} else {
			reasoning += " for standard items"
		}
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "2 Hours (2 - 4 Hours)",
			Reasoning:    reasoning,
		}
	}

	if volume > 13.19 {
		vehicleType := VehicleLargeLuton
		return VehicleRecommendation{
			VehicleType:  vehicleType,
			CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
			MinimumHours: "2 Hours (2 - 4 Hours)",
			Reasoning:    fmt.Sprintf("Volume (%sm³) exceeds Medium Van capacity, requires Large Luton", formatNumber(volume)),
		}
	}

	// Default: Medium Van for medium volumes.
	vehicleType := VehicleMediumVan
	reasoning := fmt.Sprintf("Medium volume (%sm³) requires Medium Van", formatNumber(volume))
	if hasHeavyItems {
		reasoning += fmt.Sprintf(" with %d heavy item%s", numHeavyItems, heavySuffix)
	} else {
		reasoning += " for light items"
	}
	return VehicleRecommendation{
		VehicleType:  vehicleType,
		CrewSize:     CrewSize(vehicleType, numHeavyItems, customerAssistance, difficultAccess),
		MinimumHours: "1 Hour (1-2)",
		Reasoning:    reasoning,
	}
}

// EstimateTime estimates the duration of a move: base hours from the time-rule
// table, add-on minutes for access friction, and rounded driving time.
func EstimateTime(inputs Inputs, vehicleType VehicleType, crewSize int, drivingMinutes float64) (TimeEstimate, error) {
	drivingMinutesRounded := RoundToNearestHalfHour(drivingMinutes)

	rule, err := timeRuleFor(vehicleType, crewSize)
	if err != nil {
		return TimeEstimate{}, err
	}

	notes := make([]string, 0, 4)

	var baseHours float64
	if rule.occupancyBased {
		if OccupancyFor(inputs.TotalVolume, vehicleType) == OccupancyLessThanHalf {
			baseHours = rule.baseHoursLtHalf
			notes = append(notes, "Base time: 2 hours (volume < 50% capacity)")
		} else {
			baseHours = rule.baseHoursGteHalf
			notes = append(notes, "Base time: 3 hours (volume ≥ 50% capacity)")
		}
	} else {
		baseHours = rule.baseHours
		plural := ""
		if baseHours != 1 {
			plural = "s"
		}
		notes = append(notes, fmt.Sprintf("Base time: %s hour%s", formatNumber(baseHours), plural))
	}

	addOnMinutes := 0
	if inputs.NoParking {
		addOnMinutes += 30
		notes = append(notes, "Add-on: +30 mins (no parking)")
	}
	if inputs.NoLift {
		addOnMinutes += 30
		notes = append(notes, "Add-on: +30 mins (no lift)")
	}

	if drivingMinutesRounded > 0 {
		notes = append(notes, fmt.Sprintf("Driving time: %d mins", drivingMinutesRounded))
	}

	totalHours := baseHours + float64(addOnMinutes)/60.0 + float64(drivingMinutesRounded)/60.0

	return TimeEstimate{
		BaseHours:      baseHours,
		AddOnMinutes:   addOnMinutes,
		DrivingMinutes: drivingMinutesRounded,
		TotalHours:     totalHours,
		Notes:          notes,
	}, nil
}

// ComputePricing prices an hourly-zone move from the pricing-rule table. Only
// add-on minutes are billed as extra half-hour blocks; driving time is part of
// the base schedule and never surcharged.
func ComputePricing(vehicleType VehicleType, crewSize int, zone MoveZone, estimate TimeEstimate) (PriceBreakdown, error) {
	rule, err := hourlyRuleFor(vehicleType, crewSize, zone)
	if err != nil {
		return PriceBreakdown{}, err
	}

	baseCost := rule.hourlyRate * estimate.BaseHours
	if rule.rateIsPerMover {
		baseCost *= float64(crewSize)
	}

	extraHalfHours := 0
	if estimate.AddOnMinutes > 0 {
		extraHalfHours = int(math.Ceil(float64(estimate.AddOnMinutes) / 30))
	}
	extraCost := float64(extraHalfHours) * rule.extra30MinRate
	if rule.rateIsPerMover {
		extraCost *= float64(crewSize)
	}

	totalCost := baseCost + extraCost

	rateDesc := "per crew"
	if rule.rateIsPerMover {
		rateDesc = fmt.Sprintf("per mover (×%d)", crewSize)
	}

	notes := make([]string, 0, 3)
	notes = append(notes, fmt.Sprintf("Base: £%s %s × %sh = £%.2f",
		formatNumber(rule.hourlyRate), rateDesc, formatNumber(estimate.BaseHours), baseCost))
	if extraHalfHours > 0 {
		notes = append(notes, fmt.Sprintf("Extra: £%s %s × %d × 30min = £%.2f",
			formatNumber(rule.extra30MinRate), rateDesc, extraHalfHours, extraCost))
	}
	notes = append(notes, "Zone: "+zoneLabel(zone))

	return PriceBreakdown{
		Zone:           zone,
		RateIsPerMover: rule.rateIsPerMover,
		CrewSize:       crewSize,
		TotalCost:      totalCost,
		Notes:          notes,
		HourlyRate:     rule.hourlyRate,
		BaseHours:      estimate.BaseHours,
		Extra30MinRate: rule.extra30MinRate,
		ExtraHalfHours: extraHalfHours,
		BaseCost:       baseCost,
		ExtraCost:      extraCost,
	}, nil
}

// ComputePricingNational prices a nationwide move purely by distance. The time
// estimate plays no part in the cost.
func ComputePricingNational(vehicleType VehicleType, crewSize int, distanceMiles float64) (PriceBreakdown, error) {
	rule, err := nationwideRuleFor(vehicleType, crewSize)
	if err != nil {
		return PriceBreakdown{}, err
	}

	totalCost := distanceMiles * rule.pricePerMile

	notes := []string{
		fmt.Sprintf("Nationwide pricing: £%s/mile × %s miles = £%.2f",
			formatNumber(rule.pricePerMile), formatNumber(distanceMiles), totalCost),
		"Zone: " + zoneLabel(ZoneNationWide),
	}

	return PriceBreakdown{
		Zone:           ZoneNationWide,
		RateIsPerMover: rule.rateIsPerMover,
		CrewSize:       crewSize,
		TotalCost:      totalCost,
		Notes:          notes,
		PricePerMile:   rule.pricePerMile,
		DistanceMiles:  distanceMiles,
	}, nil
}

// Recommend is the primary entry point: it selects vehicle and crew, estimates
// time, prices the move for its zone, and assembles the full result.
func Recommend(inputs Inputs) (Result, error) {
	if err := inputs.validate(); err != nil {
		return Result{}, err
	}

	recommendation := RecommendVehicleAndCrew(
		inputs.TotalVolume,
		inputs.NumHeavyItems,
		inputs.CustomerAssistance,
		inputs.NumRooms,
		inputs.DifficultAccess,
	)
	vehicleType := recommendation.VehicleType
	crewSize := recommendation.CrewSize

	zone := ZoneForDistance(inputs.DistanceMiles)
	occupancy := OccupancyFor(inputs.TotalVolume, vehicleType)

	estimate, err := EstimateTime(inputs, vehicleType, crewSize, inputs.DrivingMinutes)
	if err != nil {
		return Result{}, err
	}

	var breakdown PriceBreakdown
	if zone == ZoneNationWide {
		breakdown, err = ComputePricingNational(vehicleType, crewSize, inputs.DistanceMiles)
	} else {
		breakdown, err = ComputePricing(vehicleType, crewSize, zone, estimate)
	}
	if err != nil {
		return Result{}, err
	}

	pricing := Pricing{
		Zone:           zone,
		RateIsPerMover: breakdown.RateIsPerMover,
		TotalCost:      breakdown.TotalCost,
		Notes:          breakdown.Notes,
	}
	if zone == ZoneNationWide {
		pricing.PricePerMile = &breakdown.PricePerMile
		pricing.DistanceMiles = &breakdown.DistanceMiles
	} else {
		pricing.HourlyRate = &breakdown.HourlyRate
		pricing.BaseCost = &breakdown.BaseCost
		pricing.ExtraCost = &breakdown.ExtraCost
	}

	reasoning := fmt.Sprintf("%s | Zone: %s | MoveZone: %s",
		recommendation.Reasoning, zoneLabel(zone), strings.ToUpper(string(zone)))

	return Result{
		VehicleType:           vehicleType,
		CrewSize:              crewSize,
		Reasoning:             reasoning,
		TimeEstimate:          estimate,
		Pricing:               pricing,
		Occupancy:             occupancy,
		VolumeCategory:        CategoryForVolume(inputs.TotalVolume),
		ComplexityFactor:      ComplexityFactor(inputs.TotalVolume, inputs.NumHeavyItems, crewSize),
		SuitableForSingleTrip: inputs.TotalVolume <= MaxCapacity(vehicleType),
		TotalVolume:           inputs.TotalVolume,
		NumHeavyItems:         inputs.NumHeavyItems,
	}, nil
}

func (in Inputs) validate() error {
	if in.TotalVolume < 0 {
		return fmt.Errorf("totalVolume must not be negative, got %s", formatNumber(in.TotalVolume))
	}
	if in.NumHeavyItems < 0 {
		return fmt.Errorf("numHeavyItems must not be negative, got %d", in.NumHeavyItems)
	}
	if in.NumRooms < 0 {
		return fmt.Errorf("numRooms must not be negative, got %d", in.NumRooms)
	}
	if in.DistanceMiles < 0 {
		return fmt.Errorf("distanceMiles must not be negative, got %s", formatNumber(in.DistanceMiles))
	}
	if in.DrivingMinutes < 0 {
		return fmt.Errorf("drivingMinutes must not be negative, got %s", formatNumber(in.DrivingMinutes))
	}
	return nil
}

func heavyItemSuffix(numHeavyItems int) string {
	if numHeavyItems > 1 {
		return "s"
	}
	return ""
}

// zoneLabel renders a zone for display: underscores become spaces and each
// word is title-cased, e.g. "non_local" -> "Non Local".
func zoneLabel(zone MoveZone) string {
	words := strings.Split(string(zone), "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// formatNumber renders a float without trailing zeros, matching how rates and
// volumes appear in customer-facing notes (45, 32.5, 13.19).
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

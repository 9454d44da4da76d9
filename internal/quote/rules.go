package quote

import "fmt"

// LocalZoneThresholdMiles is the distance at or below which a move is local.
const LocalZoneThresholdMiles = 2.0

// Vehicle maximum capacities in cubic metres.
var vehicleCapacities = map[VehicleType]float64{
	VehicleSmallVan:   6.2,
	VehicleMediumVan:  13.19,
	VehicleLargeLuton: 25.0,
}

// timeRule holds base hours for a (vehicle, crew) combination. The Luton uses
// occupancy-dependent values; the vans use a single fixed value.
type timeRule struct {
	baseHours        float64
	baseHoursLtHalf  float64
	baseHoursGteHalf float64
	occupancyBased   bool
}

var timeRules = map[VehicleType]map[int]timeRule{
	VehicleSmallVan: {
		1: {baseHours: 1.0},
	},
	VehicleMediumVan: {
		1: {baseHours: 1.0},
		2: {baseHours: 1.0},
	},
	VehicleLargeLuton: {
		2: {baseHoursLtHalf: 2.0, baseHoursGteHalf: 3.0, occupancyBased: true},
		3: {baseHoursLtHalf: 2.0, baseHoursGteHalf: 3.0, occupancyBased: true},
	},
}

// hourlyRule is an hourly-priced rate entry for local and non-local zones.
type hourlyRule struct {
	hourlyRate     float64
	extra30MinRate float64
	rateIsPerMover bool
}

var hourlyPricingRules = map[VehicleType]map[int]map[MoveZone]hourlyRule{
	VehicleSmallVan: {
		1: {
			ZoneLocal:    {hourlyRate: 45, extra30MinRate: 19, rateIsPerMover: true},
			ZoneNonLocal: {hourlyRate: 50, extra30MinRate: 22, rateIsPerMover: true},
		},
	},
	VehicleMediumVan: {
		1: {
			ZoneLocal:    {hourlyRate: 70, extra30MinRate: 32.50},
			ZoneNonLocal: {hourlyRate: 70, extra30MinRate: 32.50},
		},
		2: {
			ZoneLocal:    {hourlyRate: 85, extra30MinRate: 38},
			ZoneNonLocal: {hourlyRate: 85, extra30MinRate: 38},
		},
	},
	VehicleLargeLuton: {
		2: {
			ZoneLocal:    {hourlyRate: 95, extra30MinRate: 42},
			ZoneNonLocal: {hourlyRate: 95, extra30MinRate: 42},
		},
		3: {
			ZoneLocal:    {hourlyRate: 115, extra30MinRate: 52.50},
			ZoneNonLocal: {hourlyRate: 115, extra30MinRate: 52.50},
		},
	},
}

// mileageRule is a distance-priced rate entry for the nationwide zone.
type mileageRule struct {
	pricePerMile   float64
	rateIsPerMover bool
}

var nationwidePricingRules = map[VehicleType]map[int]mileageRule{
	VehicleSmallVan: {
		1: {pricePerMile: 1.70},
	},
	VehicleMediumVan: {
		1: {pricePerMile: 1.85},
		2: {pricePerMile: 2.85},
	},
	VehicleLargeLuton: {
		1: {pricePerMile: 2.00},
		2: {pricePerMile: 3.00},
		3: {pricePerMile: 4.00},
	},
}

// timeRuleFor returns the base-hours rule for a vehicle and crew size. A missing
// entry means the rule tables and the selection logic have drifted apart.
func timeRuleFor(vehicleType VehicleType, crewSize int) (timeRule, error) {
	rule, ok := timeRules[vehicleType][crewSize]
	if !ok {
		return timeRule{}, fmt.Errorf("no time rule for %s with crew of %d", vehicleType, crewSize)
	}
	return rule, nil
}

func hourlyRuleFor(vehicleType VehicleType, crewSize int, zone MoveZone) (hourlyRule, error) {
	rule, ok := hourlyPricingRules[vehicleType][crewSize][zone]
	if !ok {
		return hourlyRule{}, fmt.Errorf("no hourly pricing rule for %s with crew of %d in zone %s", vehicleType, crewSize, zone)
	}
	return rule, nil
}

func nationwideRuleFor(vehicleType VehicleType, crewSize int) (mileageRule, error) {
	rule, ok := nationwidePricingRules[vehicleType][crewSize]
	if !ok {
		return mileageRule{}, fmt.Errorf("no nationwide pricing rule for %s with crew of %d", vehicleType, crewSize)
	}
	return rule, nil
}

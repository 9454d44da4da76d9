package quote

// VehicleType identifies one of the vehicle classes available for removal jobs.
type VehicleType string

const (
	VehicleSmallVan   VehicleType = "Small Van"
	VehicleMediumVan  VehicleType = "Medium Van"
	VehicleLargeLuton VehicleType = "Large Luton"
)

// MoveZone classifies the pricing region of a move. Local and non-local moves
// are priced hourly; nationwide moves are priced per mile.
type MoveZone string

const (
	ZoneLocal      MoveZone = "local"
	ZoneNonLocal   MoveZone = "non_local"
	ZoneNationWide MoveZone = "nation_wide"
)

// Occupancy describes how full the recommended vehicle would be.
type Occupancy string

const (
	OccupancyLessThanHalf Occupancy = "less_than_half"
	OccupancyHalfOrMore   Occupancy = "greater_than_or_equal_half"
)

// VolumeCategory buckets the total inventory volume for reporting.
type VolumeCategory string

const (
	VolumeSmall      VolumeCategory = "small"
	VolumeMedium     VolumeCategory = "medium"
	VolumeLarge      VolumeCategory = "large"
	VolumeExtraLarge VolumeCategory = "extra_large"
)

// Inputs carries everything the engine needs to produce a quote. All fields are
// required; volume and heavy-item count normally come from inventory analysis.
type Inputs struct {
	TotalVolume        float64 `json:"totalVolume"`
	NumHeavyItems      int     `json:"numHeavyItems"`
	CustomerAssistance bool    `json:"customerAssistance"`
	NumRooms           int     `json:"numRooms"`
	DifficultAccess    bool    `json:"difficultAccess"`
	DistanceMiles      float64 `json:"distanceMiles"`
	NoParking          bool    `json:"noParking"`
	NoLift             bool    `json:"noLift"`
	DrivingMinutes     float64 `json:"drivingMinutes"`
}

// TimeEstimate breaks down the estimated duration of a move. AddOnMinutes covers
// site-access friction (no parking, no lift) and is billed separately from
// driving time, which never incurs the extra half-hour surcharge.
type TimeEstimate struct {
	BaseHours      float64  `json:"baseHours"`
	AddOnMinutes   int      `json:"addOnMinutes"`
	DrivingMinutes int      `json:"drivingMinutes"`
	TotalHours     float64  `json:"totalHours"`
	Notes          []string `json:"notes"`
}

// PriceBreakdown is the full pricing detail for one quote. Hourly fields are
// zero for nationwide quotes and mileage fields are zero for hourly quotes.
type PriceBreakdown struct {
	Zone           MoveZone
	RateIsPerMover bool
	CrewSize       int
	TotalCost      float64
	Notes          []string

	// Hourly pricing fields.
	HourlyRate     float64
	BaseHours      float64
	Extra30MinRate float64
	ExtraHalfHours int
	BaseCost       float64
	ExtraCost      float64

	// Distance pricing fields.
	PricePerMile  float64
	DistanceMiles float64
}

// VehicleRecommendation is the outcome of vehicle and crew selection, including
// a human-readable reasoning trail for audit output.
type VehicleRecommendation struct {
	VehicleType  VehicleType `json:"vehicleType"`
	CrewSize     int         `json:"crewSize"`
	MinimumHours string      `json:"minimumHours"`
	Reasoning    string      `json:"reasoning"`
}

// Pricing is the pricing portion of a Result. Fields that do not apply to the
// quote's zone are omitted from the JSON encoding.
type Pricing struct {
	Zone           MoveZone `json:"zone"`
	RateIsPerMover bool     `json:"rateIsPerMover"`
	TotalCost      float64  `json:"totalCost"`
	Notes          []string `json:"pricingNotes"`

	HourlyRate    *float64 `json:"hourlyRate,omitempty"`
	BaseCost      *float64 `json:"baseCost,omitempty"`
	ExtraCost     *float64 `json:"extraCost,omitempty"`
	PricePerMile  *float64 `json:"pricePerMile,omitempty"`
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`
}

// Result is the complete quote recommendation. It is immutable once produced;
// callers may persist it alongside the job it was computed for.
type Result struct {
	VehicleType           VehicleType    `json:"vehicleType"`
	CrewSize              int            `json:"crewSize"`
	Reasoning             string         `json:"reasoning"`
	TimeEstimate          TimeEstimate   `json:"timeEstimate"`
	Pricing               Pricing        `json:"pricing"`
	Occupancy             Occupancy      `json:"occupancy"`
	VolumeCategory        VolumeCategory `json:"volumeCategory"`
	ComplexityFactor      float64        `json:"complexityFactor"`
	SuitableForSingleTrip bool           `json:"suitableForSingleTrip"`
	TotalVolume           float64        `json:"totalVolume"`
	NumHeavyItems         int            `json:"numHeavyItems"`
}

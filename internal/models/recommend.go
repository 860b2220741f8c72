package models

const (
	BikeTypeClassic = "classic"
	BikeTypeEbike   = "ebike"
	BikeTypeNone    = "none"

	RecommendationBike    = "bike"
	RecommendationTransit = "transit"
	RecommendationWalk    = "walk"
)

// Prefs tunes the recommendation rules for a single request. Zero-value
// thresholds are replaced by configured defaults.
type Prefs struct {
	BikeAllowed               *bool   `json:"bike_allowed,omitempty"`
	TransitAllowed            *bool   `json:"transit_allowed,omitempty"`
	EbikeHeadwindThresholdMPH float64 `json:"ebike_headwind_threshold_mph,omitempty"`
	HumidityThresholdPct      float64 `json:"humidity_threshold_pct,omitempty"`
	PreferredDestStationName  string  `json:"preferred_dest_station_name,omitempty"`
}

// RecommendRequest asks for a commute recommendation between two coordinates.
type RecommendRequest struct {
	Origin      LatLon `json:"origin" binding:"required"`
	Destination LatLon `json:"destination" binding:"required"`
	Prefs       Prefs  `json:"prefs"`
}

// RecommendAddressRequest is the address-based variant; both addresses are
// geocoded before the usual pipeline runs.
type RecommendAddressRequest struct {
	OriginAddr      string `json:"origin_addr" binding:"required"`
	DestinationAddr string `json:"destination_addr" binding:"required"`
	Prefs           Prefs  `json:"prefs"`
}

// Rationale explains why a recommendation was made.
type Rationale struct {
	WindSpeedMPH        *float64       `json:"wind_speed_mph,omitempty"`
	WindDirectionDeg    *float64       `json:"wind_direction_from_deg,omitempty"`
	HeadwindMPH         *float64       `json:"headwind_mph,omitempty"`
	HumidityPct         *float64       `json:"humidity_pct,omitempty"`
	IsPrecipitation     *bool          `json:"is_precipitation,omitempty"`
	RuleTriggered       string         `json:"rule_triggered,omitempty"`
	CitibikeOrigin      *Station       `json:"citibike_origin,omitempty"`
	CitibikeDestination *Station       `json:"citibike_destination,omitempty"`
	Alerts              []TransitAlert `json:"alerts"`
}

// RecommendResponse is the outcome of a recommendation request.
type RecommendResponse struct {
	Recommendation string    `json:"recommendation"`
	BikeType       string    `json:"bike_type"`
	Summary        string    `json:"summary"`
	EtaMinutes     *int      `json:"eta_minutes,omitempty"`
	Rationale      Rationale `json:"rationale"`
	PlanB          string    `json:"plan_b,omitempty"`
}

package models

// Observation is the normalized hourly weather snapshot used by the
// recommendation engine. Wind direction is the compass direction the wind
// blows from, in degrees.
type Observation struct {
	WindSpeedMPH     float64 `json:"wind_speed_mph"`
	WindDirectionDeg float64 `json:"wind_direction_from_deg"`
	HumidityPct      float64 `json:"humidity_pct"`
	TemperatureF     float64 `json:"temperature_f"`
	Condition        string  `json:"condition"`
	IsPrecipitation  bool    `json:"is_precipitation"`
	Source           string  `json:"source"`
}

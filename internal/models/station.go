package models

// Station is a CitiBike dock with merged information and live status.
type Station struct {
	StationID        string  `json:"station_id"`
	Name             string  `json:"name"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	EbikesAvailable  int     `json:"ebikes_available"`
	ClassicAvailable int     `json:"classic_available"`
	DocksAvailable   int     `json:"docks_available"`
}

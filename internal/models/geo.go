package models

// LatLon is a WGS84 coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lon float64 `json:"lon" binding:"min=-180,max=180"`
}

package models

// TransitAlert is a service alert extracted from an MTA GTFS-realtime feed.
type TransitAlert struct {
	Header string   `json:"header"`
	Routes []string `json:"routes,omitempty"`
}

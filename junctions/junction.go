// Package junctions turns raw Overpass elements into the cleaned, deduped
// junction records the routing app consumes.
package junctions

// Junction is one named junction or landmark. The JSON field names are the
// downstream contract; don't rename them.
type Junction struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	City             string  `json:"city"`
	Area             string  `json:"area"`
	HasTrafficSignal bool    `json:"hasTrafficSignal"`
	OSMID            int64   `json:"osmId,omitempty"`
	HighwayType      string  `json:"highway_type,omitempty"`
}

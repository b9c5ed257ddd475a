// Package cities holds the static registry of cities the downloader covers.
package cities

import (
	"fmt"

	"github.com/paulmach/orb"
)

type CityConfig struct {
	Name string
	// Bound is the query bounding box. orb convention: Min is the
	// south-west corner, Max the north-east.
	Bound orb.Bound
	// Target is an advisory count used when eyeballing coverage. Nothing
	// reads it for control flow.
	Target int
}

// BboxString renders the bound in Overpass [bbox:...] order,
// south,west,north,east.
func (c CityConfig) BboxString() string {
	return fmt.Sprintf("%.2f,%.2f,%.2f,%.2f",
		c.Bound.Min.Lat(), c.Bound.Min.Lon(), c.Bound.Max.Lat(), c.Bound.Max.Lon())
}

// All lists the covered cities. Order matters: dedup is first-seen wins, so
// reordering changes which record survives a cross-city name collision.
var All = []CityConfig{
	{Name: "Lahore", Bound: bound(31.35, 74.15, 31.65, 74.45), Target: 500},
	{Name: "Karachi", Bound: bound(24.75, 66.85, 25.05, 67.25), Target: 500},
	{Name: "Islamabad", Bound: bound(33.50, 72.95, 33.75, 73.20), Target: 300},
	{Name: "Faisalabad", Bound: bound(31.30, 72.95, 31.50, 73.20), Target: 200},
	{Name: "Rawalpindi", Bound: bound(33.50, 73.00, 33.65, 73.15), Target: 200},
	{Name: "Multan", Bound: bound(30.10, 71.40, 30.30, 71.55), Target: 150},
}

// Names returns the configured city names in registry order.
func Names() []string {
	names := make([]string, len(All))
	for i, c := range All {
		names[i] = c.Name
	}
	return names
}

func bound(south, west, north, east float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{west, south},
		Max: orb.Point{east, north},
	}
}

package junctions

import (
	"log/slog"
	"math"
	"sort"
	"strings"

	"pakjunctions-ingest/overpass"
)

// Aggregator accumulates junctions across cities, deduplicating by
// (cleaned name, city). First seen wins, so feed it cities and elements in
// a stable order.
type Aggregator struct {
	cleaner Cleaner
	seen    map[string]bool
	list    []Junction
	nextID  int

	// SkippedNoCoords counts elements dropped for missing coordinates.
	SkippedNoCoords int
}

func NewAggregator(cleaner Cleaner) *Aggregator {
	return &Aggregator{
		cleaner: cleaner,
		seen:    make(map[string]bool),
		nextID:  1,
	}
}

func dedupKey(name, city string) string {
	return name + "_" + city
}

// AddElement filters one raw element and, if it survives, appends it as a
// junction. Reports whether the element was kept.
func (a *Aggregator) AddElement(el overpass.Element, city string) bool {
	lat, lon, ok := el.Coords()
	if !ok {
		a.SkippedNoCoords++
		slog.Debug("element without coordinates", "osm_id", el.ID, "city", city)
		return false
	}

	name, ok := a.cleaner.Clean(el.Tags["name"])
	if !ok {
		return false
	}

	key := dedupKey(name, city)
	if a.seen[key] {
		return false
	}
	a.seen[key] = true

	area := el.Tags["addr:suburb"]
	if area == "" {
		area = el.Tags["addr:district"]
	}
	if area == "" {
		area = el.Tags["place"]
	}
	if area == "" {
		area = "Central"
	}

	highway := el.Tags["highway"]
	hasSignal := highway == "traffic_signals" ||
		strings.Contains(strings.ToLower(highway), "traffic")

	highwayType := highway
	if highwayType == "" {
		highwayType = "intersection"
	}

	a.list = append(a.list, Junction{
		ID:               a.nextID,
		Name:             name,
		Latitude:         round6(lat),
		Longitude:        round6(lon),
		City:             city,
		Area:             area,
		HasTrafficSignal: hasSignal,
		OSMID:            el.ID,
		HighwayType:      highwayType,
	})
	a.nextID++
	return true
}

// MergeLandmarks appends the static entries whose (name, city) key hasn't
// been produced by a query. Fetched records win collisions.
func (a *Aggregator) MergeLandmarks(landmarks []Junction) int {
	added := 0
	for _, lm := range landmarks {
		key := dedupKey(lm.Name, lm.City)
		if a.seen[key] {
			continue
		}
		a.seen[key] = true
		a.list = append(a.list, lm)
		a.nextID++
		added++
	}
	return added
}

// Finalize sorts by (city, name) and renumbers ids 1..N in that order. The
// returned slice is the aggregator's backing store; don't add afterward.
func (a *Aggregator) Finalize() []Junction {
	sort.Slice(a.list, func(i, j int) bool {
		if a.list[i].City != a.list[j].City {
			return a.list[i].City < a.list[j].City
		}
		return a.list[i].Name < a.list[j].Name
	})
	for i := range a.list {
		a.list[i].ID = i + 1
	}
	return a.list
}

// Len reports how many junctions have accumulated so far.
func (a *Aggregator) Len() int {
	return len(a.list)
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// Package export drives the fetch-filter-aggregate pipeline over the city
// registry.
package export

import (
	"context"
	"log/slog"

	"pakjunctions-ingest/cities"
	"pakjunctions-ingest/junctions"
	"pakjunctions-ingest/overpass"
)

type Overpass interface {
	Query(ctx context.Context, query string) ([]overpass.Element, error)
}

// Run queries every city in order and feeds the results to agg. A failed
// city contributes nothing and the run carries on; only a canceled context
// stops it early.
func Run(ctx context.Context, ov Overpass, cityList []cities.CityConfig, agg *junctions.Aggregator) error {
	for _, city := range cityList {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Info("processing city", "city", city.Name)

		elements, err := ov.Query(ctx, overpass.BuildJunctionQuery(city.BboxString()))
		if err != nil {
			// A request timeout is transient and only costs this city; a
			// canceled run context stops the loop.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Error("city query failed", "city", city.Name, "err", err)
			continue
		}

		found := 0
		for _, el := range elements {
			if agg.AddElement(el, city.Name) {
				found++
			}
		}

		slog.Info("city done", "city", city.Name, "found", found, "total", agg.Len())
	}
	return nil
}

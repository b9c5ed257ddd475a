package overpass

import "strings"

// junctionQuery asks for everything in the box that could be a named
// junction or landmark: signals, crossings, motorway junctions, the big
// named roads, amenities, and squares. `out center;` gives ways a single
// representative coordinate.
var junctionQuery = `
[bbox:{{bbox}}][out:json][timeout:60];
(
  node["highway"="traffic_signals"]["name"];

  node["highway"="crossing"]["name"];
  node["highway"="motorway_junction"]["name"];

  way["highway"="primary"]["name"];
  way["highway"="secondary"]["name"];

  node["amenity"]["name"];
  node["place"="square"]["name"];
);
out center;
`

// BuildJunctionQuery fills the named-entity query template for a bbox in
// south,west,north,east order.
func BuildJunctionQuery(bbox string) string {
	return strings.ReplaceAll(junctionQuery, "{{bbox}}", bbox)
}

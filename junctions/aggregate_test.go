package junctions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pakjunctions-ingest/overpass"
)

func ptr(v float64) *float64 { return &v }

func node(id int64, lat, lon float64, tags map[string]string) overpass.Element {
	return overpass.Element{Type: "node", ID: id, Lat: ptr(lat), Lon: ptr(lon), Tags: tags}
}

func TestAddElement(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	kept := agg.AddElement(node(42, 31.5101957123, 74.3440391987, map[string]string{
		"highway":     "traffic_signals",
		"name":        "Hussain Chowk",
		"addr:suburb": "Gulberg",
	}), "Lahore")
	require.True(t, kept)

	list := agg.Finalize()
	require.Len(t, list, 1)
	j := list[0]
	assert.Equal(t, 1, j.ID)
	assert.Equal(t, "Hussain Chowk", j.Name)
	assert.Equal(t, 31.510196, j.Latitude)
	assert.Equal(t, 74.344039, j.Longitude)
	assert.Equal(t, "Lahore", j.City)
	assert.Equal(t, "Gulberg", j.Area)
	assert.True(t, j.HasTrafficSignal)
	assert.Equal(t, int64(42), j.OSMID)
	assert.Equal(t, "traffic_signals", j.HighwayType)
}

func TestAddElementCenterFallback(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	kept := agg.AddElement(overpass.Element{
		Type:   "way",
		ID:     7,
		Center: &overpass.Center{Lat: 31.56, Lon: 74.33},
		Tags:   map[string]string{"highway": "primary", "name": "Circular Chowk"},
	}, "Lahore")
	require.True(t, kept)

	j := agg.Finalize()[0]
	assert.Equal(t, 31.56, j.Latitude)
	assert.Equal(t, 74.33, j.Longitude)
	assert.False(t, j.HasTrafficSignal)
	assert.Equal(t, "primary", j.HighwayType)
}

func TestAddElementSkipsMissingCoords(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	kept := agg.AddElement(overpass.Element{
		Type: "way",
		ID:   9,
		Tags: map[string]string{"name": "Ferozepur Gate"},
	}, "Lahore")
	assert.False(t, kept)
	assert.Equal(t, 1, agg.SkippedNoCoords)
	assert.Equal(t, 0, agg.Len())
}

func TestAddElementRejectsGenericName(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	kept := agg.AddElement(node(1, 31.5, 74.3, map[string]string{"name": "Junction"}), "Lahore")
	assert.False(t, kept)
	assert.Equal(t, 0, agg.Len())
	assert.Equal(t, 0, agg.SkippedNoCoords)
}

func TestAddElementDedup(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	first := node(1, 31.5, 74.3, map[string]string{"name": "Hussain Chowk"})
	second := node(2, 31.6, 74.4, map[string]string{"name": "Hussain Chowk"})

	require.True(t, agg.AddElement(first, "Lahore"))
	assert.False(t, agg.AddElement(second, "Lahore"))

	// same name in another city is a distinct junction
	assert.True(t, agg.AddElement(second, "Multan"))

	list := agg.Finalize()
	require.Len(t, list, 2)
	// first seen wins the Lahore slot
	assert.Equal(t, int64(1), list[0].OSMID)
}

func TestDedupUsesCleanedName(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	// Both clean to "Liberty Square Chowk"; only the first survives.
	require.True(t, agg.AddElement(node(1, 31.5, 74.3,
		map[string]string{"name": "Liberty Square"}), "Lahore"))
	assert.False(t, agg.AddElement(node(2, 31.6, 74.4,
		map[string]string{"name": "Liberty Square Chowk"}), "Lahore"))

	list := agg.Finalize()
	require.Len(t, list, 1)
	assert.Equal(t, "Liberty Square Chowk", list[0].Name)
	assert.Equal(t, int64(1), list[0].OSMID)
}

func TestAreaFallback(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	agg.AddElement(node(1, 31.5, 74.3, map[string]string{
		"name": "A Chowk", "addr:district": "Ravi Zone"}), "Lahore")
	agg.AddElement(node(2, 31.5, 74.3, map[string]string{
		"name": "B Chowk", "place": "suburb"}), "Lahore")
	agg.AddElement(node(3, 31.5, 74.3, map[string]string{
		"name": "C Chowk"}), "Lahore")

	list := agg.Finalize()
	require.Len(t, list, 3)
	assert.Equal(t, "Ravi Zone", list[0].Area)
	assert.Equal(t, "suburb", list[1].Area)
	assert.Equal(t, "Central", list[2].Area)
}

func TestMergeLandmarks(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	// A fetched record collides with one landmark; it must win and the
	// landmark must not be double-added.
	require.True(t, agg.AddElement(node(5, 31.51, 74.34,
		map[string]string{"name": "Liberty Chowk", "highway": "traffic_signals"}), "Lahore"))

	added := agg.MergeLandmarks(LahoreLandmarks)
	assert.Equal(t, len(LahoreLandmarks)-1, added)

	list := agg.Finalize()
	assert.Len(t, list, len(LahoreLandmarks))

	count := 0
	for _, j := range list {
		if j.Name == "Liberty Chowk" {
			count++
			assert.Equal(t, int64(5), j.OSMID)
		}
	}
	assert.Equal(t, 1, count)
}

func TestFinalizeOrderAndIDs(t *testing.T) {
	agg := NewAggregator(DefaultCleaner())

	agg.AddElement(node(1, 31.5, 74.3, map[string]string{"name": "Zafar Chowk"}), "Lahore")
	agg.AddElement(node(2, 24.9, 67.0, map[string]string{"name": "Teen Talwar"}), "Karachi")
	agg.AddElement(node(3, 31.5, 74.3, map[string]string{"name": "Azadi Chowk"}), "Lahore")
	agg.AddElement(node(4, 24.9, 67.1, map[string]string{"name": "Do Talwar"}), "Karachi")

	list := agg.Finalize()
	require.Len(t, list, 4)

	for i, j := range list {
		assert.Equal(t, i+1, j.ID)
	}
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		less := prev.City < cur.City || (prev.City == cur.City && prev.Name < cur.Name)
		assert.True(t, less, "output not sorted at %d", i)
	}
	assert.Equal(t, "Do Talwar", list[0].Name)
	assert.Equal(t, "Azadi Chowk", list[2].Name)
}

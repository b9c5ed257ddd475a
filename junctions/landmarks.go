package junctions

// LahoreLandmarks are well-known chowks that Overpass coverage keeps
// missing. Coordinates checked by hand. IDs are placeholders; Finalize
// reassigns them.
var LahoreLandmarks = []Junction{
	{ID: 9000, Name: "Liberty Chowk", Latitude: 31.5100, Longitude: 74.3406,
		City: "Lahore", Area: "Gulberg", HasTrafficSignal: true},
	{ID: 9001, Name: "Kalma Chowk", Latitude: 31.5204, Longitude: 74.3587,
		City: "Lahore", Area: "Main Boulevard", HasTrafficSignal: true},
	{ID: 9002, Name: "Thokar Niaz Baig", Latitude: 31.4343, Longitude: 74.2721,
		City: "Lahore", Area: "Raiwind Road", HasTrafficSignal: true},
	{ID: 9003, Name: "Ghazi Chowk", Latitude: 31.4840, Longitude: 74.3861,
		City: "Lahore", Area: "Samanabad", HasTrafficSignal: true},
	{ID: 9004, Name: "Bhatti Chowk", Latitude: 31.4156, Longitude: 74.2956,
		City: "Lahore", Area: "Shahdara", HasTrafficSignal: true},
	{ID: 9005, Name: "Data Darbar Chowk", Latitude: 31.5784, Longitude: 74.3199,
		City: "Lahore", Area: "Old City", HasTrafficSignal: true},
}

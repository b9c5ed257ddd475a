package junctions

import "strings"

// Cleaner validates raw OSM names and normalizes them toward local naming
// conventions. The word lists are data so they can grow without touching
// the logic; DefaultCleaner gives the sets the exporter ships with.
type Cleaner struct {
	// Generic tokens reject a name on lowercase exact or prefix match.
	Generic []string
	// MajorIndicators mark names that are almost certainly chowks even
	// though the mapper didn't tag them that way.
	MajorIndicators []string
	// Suffix is appended to names matched by MajorIndicators.
	Suffix string
}

func DefaultCleaner() Cleaner {
	return Cleaner{
		Generic:         []string{"junction", "node", "point", "unnamed"},
		MajorIndicators: []string{"liberty", "kalma", "thokar", "model", "garden"},
		Suffix:          " Chowk",
	}
}

// Clean returns the cleaned name, or ok=false when the name is empty or
// generic. Pure: same input always gives the same output.
func (c Cleaner) Clean(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	lower := strings.ToLower(name)
	for _, generic := range c.Generic {
		if lower == generic || strings.HasPrefix(lower, generic) {
			return "", false
		}
	}

	// Multi-word names that mention a well-known landmark but say neither
	// "chowk" nor "road" get the suffix.
	if strings.Contains(name, " ") &&
		!strings.Contains(lower, "chowk") && !strings.Contains(lower, "road") {
		for _, indicator := range c.MajorIndicators {
			if strings.Contains(lower, indicator) {
				return name + c.Suffix, true
			}
		}
	}

	return name, true
}

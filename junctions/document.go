package junctions

import (
	"bytes"
	"encoding/json"
	"os"
	"time"
)

// Document is the output file's shape. Field names are the downstream
// contract; keep them stable.
type Document struct {
	Metadata  Metadata   `json:"metadata"`
	Junctions []Junction `json:"junctions"`
}

type Metadata struct {
	Source         string   `json:"source"`
	Generated      string   `json:"generated"`
	TotalJunctions int      `json:"total_junctions"`
	Cities         []string `json:"cities"`
	Description    string   `json:"description"`
	Filter         string   `json:"filter"`
	Version        string   `json:"version"`
}

// NewDocument wraps finalized junctions with metadata.
func NewDocument(list []Junction, cityNames []string, generated time.Time) Document {
	return Document{
		Metadata: Metadata{
			Source:         "OpenStreetMap via Overpass API (Enhanced)",
			Generated:      generated.Format("2006-01-02 15:04:05"),
			TotalJunctions: len(list),
			Cities:         cityNames,
			Description:    "Named traffic junctions and landmarks",
			Filter:         "Only locations with meaningful names",
			Version:        "2.0",
		},
		Junctions: list,
	}
}

// Marshal renders the document pretty-printed, with HTML escaping off so
// Urdu names stay readable in the file.
func (d Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the document to path in a single call and returns the
// byte count written.
func (d Document) WriteFile(path string) (int, error) {
	data, err := d.Marshal()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, err
	}
	return len(data), nil
}

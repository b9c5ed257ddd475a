package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	flag "github.com/spf13/pflag"

	"pakjunctions-ingest/junctions"
)

var inPath = flag.StringP("in", "i", "pakistan_osm_junctions_named.json", "Export file to summarize")

func main() {
	flag.Parse()

	file, err := os.Open(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	var doc junctions.Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		log.Fatal(fmt.Errorf("decode %s: %w", *inPath, err))
	}

	fmt.Printf("Export of %s (version %s)\n", doc.Metadata.Generated, doc.Metadata.Version)
	fmt.Printf("Total junctions: %d\n\n", doc.Metadata.TotalJunctions)

	byCity := make(map[string]int)
	signals := 0
	for _, j := range doc.Junctions {
		byCity[j.City]++
		if j.HasTrafficSignal {
			signals++
		}
	}

	cityNames := make([]string, 0, len(byCity))
	for name := range byCity {
		cityNames = append(cityNames, name)
	}
	sort.Strings(cityNames)

	for _, name := range cityNames {
		fmt.Printf("%-12s %d\n", name, byCity[name])
	}
	fmt.Printf("\nWith traffic signals: %d\n", signals)
}

package main

import (
	"flag"
	"fmt"

	"pakjunctions-ingest/cities"
)

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		_, _ = fmt.Fprintln(w, "print_city_bbox: Prints the configured city bounding boxes")
		flag.PrintDefaults()
	}
	flag.Parse()

	fmt.Println("City Bounding Boxes (left, bottom, right, top):")

	for _, city := range cities.All {
		bbox := city.Bound
		fmt.Printf("%s: %.6f,%.6f,%.6f,%.6f (target %d)\n",
			city.Name, bbox.Left(), bbox.Bottom(), bbox.Right(), bbox.Top(), city.Target)
	}
}

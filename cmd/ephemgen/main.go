package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/astrolab/aspectra/pkg/ephemeris"
)

func main() {
	var startStr string
	var days int
	var bodiesStr string
	flag.StringVar(&startStr, "start", "", "First date, YYYY-MM-DD (default: today)")
	flag.IntVar(&days, "days", 365, "Number of daily steps")
	flag.StringVar(&bodiesStr, "bodies", "Sun,Moon", "Comma-separated bodies to generate")
	flag.Parse()

	start := time.Now().UTC()
	if startStr != "" {
		var err error
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			os.Exit(1)
		}
	}

	var bodies []ephemeris.Body
	for _, name := range strings.Split(bodiesStr, ",") {
		bodies = append(bodies, ephemeris.Body(strings.TrimSpace(name)))
	}

	if err := ephemeris.WriteCSV(os.Stdout, bodies, start, days); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating positions: %v\n", err)
		os.Exit(1)
	}
}

package chart

import (
	"gonum.org/v1/gonum/floats"

	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/palette"
	"github.com/astrolab/aspectra/internal/timeaxis"
	"github.com/astrolab/aspectra/pkg/zodiac"
)

// ScaleWindow is the snapped longitude-axis window derived once from the
// observed extent of the plotted data.
type ScaleWindow struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// LongitudeSeries is one body's render-ready line data.
type LongitudeSeries struct {
	Body     string    `json:"body"`
	Color    string    `json:"color"`
	Segments []Segment `json:"segments"`
}

// LongitudeDataset is everything the renderer needs for one longitude
// chart: per-body segments, the value window, and the time-axis plan.
type LongitudeDataset struct {
	Series []LongitudeSeries `json:"series"`
	Window ScaleWindow       `json:"window"`
	Axis   timeaxis.Plan     `json:"axis"`
}

// BuildLongitude assembles the longitude chart dataset for every body in
// the table.
func BuildLongitude(table *ingest.Table, pal *palette.Allocator) *LongitudeDataset {
	ds := &LongitudeDataset{}

	var degrees []float64
	for _, body := range table.Names() {
		samples, _ := table.Series(body)
		for _, s := range samples {
			degrees = append(degrees, s.Degree)
		}
		ds.Series = append(ds.Series, LongitudeSeries{
			Body:     body,
			Color:    pal.Color(body),
			Segments: Segments(samples, WrapThreshold),
		})
	}

	lo, hi := zodiac.SnapBounds(floats.Min(degrees), floats.Max(degrees))
	ds.Window = ScaleWindow{Low: lo, High: hi}

	start, end := table.DateRange()
	ds.Axis = timeaxis.Compute(start, end)

	return ds
}

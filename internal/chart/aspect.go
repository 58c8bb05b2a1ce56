package chart

import (
	"time"

	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/palette"
	"github.com/astrolab/aspectra/internal/timeaxis"
	"github.com/astrolab/aspectra/pkg/angles"
)

// DefaultOrb is the tolerance, in degrees, within which an aspect counts
// as in effect.
const DefaultOrb = 5.0

// maskFactor sets the visible band: distances above maskFactor*orb are
// masked so the renderer skips them instead of cluttering the panel.
const maskFactor = 1.5

// AspectPoint is one aligned (date, distance) pair. Masked points carry
// their computed distance but must not be drawn.
type AspectPoint struct {
	Date     time.Time `json:"date"`
	Distance float64   `json:"distance"`
	Masked   bool      `json:"masked"`
}

// AspectTrace is one non-reference body's distance curve within a panel.
type AspectTrace struct {
	Body   string        `json:"body"`
	Color  string        `json:"color"`
	Points []AspectPoint `json:"points"`
}

// AspectPanel is one aspect's stacked subplot: every other body's distance
// to that aspect relative to the reference body.
type AspectPanel struct {
	Aspect angles.Aspect `json:"aspect"`
	Traces []AspectTrace `json:"traces"`
}

// AspectDataset is everything the renderer needs for one aspect chart.
type AspectDataset struct {
	Reference string  `json:"reference"`
	Orb       float64 `json:"orb"`
	// MaxDistance is the top of each panel's Y window (maskFactor*orb).
	MaxDistance float64       `json:"max_distance"`
	Panels      []AspectPanel `json:"panels"`
	Axis        timeaxis.Plan `json:"axis"`
}

// BuildAspects assembles the aspect-distance dataset for a reference body
// against every other body in the table. Timestamps present for only one
// body of a pair are excluded from that pair's trace (pairwise-complete
// policy). Returns ingest.ErrUnknownSeries or
// ingest.ErrEmptyComparisonSet via the table lookups.
func BuildAspects(table *ingest.Table, ref string, aspects []angles.Aspect, orb float64, pal *palette.Allocator) (*AspectDataset, error) {
	refSamples, err := table.Series(ref)
	if err != nil {
		return nil, err
	}
	others, err := table.Others(ref)
	if err != nil {
		return nil, err
	}

	refByDate := make(map[int64]float64, len(refSamples))
	for _, s := range refSamples {
		refByDate[s.Date.Unix()] = s.Degree
	}

	ds := &AspectDataset{
		Reference:   ref,
		Orb:         orb,
		MaxDistance: maskFactor * orb,
	}

	// Separations are computed once per body and reused across panels.
	type aligned struct {
		dates []time.Time
		seps  []float64
	}
	pairs := make([]aligned, len(others))
	for i, body := range others {
		samples, _ := table.Series(body)
		for _, s := range samples {
			refDeg, ok := refByDate[s.Date.Unix()]
			if !ok {
				continue
			}
			pairs[i].dates = append(pairs[i].dates, s.Date)
			pairs[i].seps = append(pairs[i].seps, angles.Wrap(s.Degree-refDeg))
		}
	}

	for _, asp := range aspects {
		panel := AspectPanel{Aspect: asp}
		for i, body := range others {
			trace := AspectTrace{
				Body:   body,
				Color:  pal.Color(body),
				Points: make([]AspectPoint, len(pairs[i].dates)),
			}
			for j, sep := range pairs[i].seps {
				d := asp.Distance(sep)
				trace.Points[j] = AspectPoint{
					Date:     pairs[i].dates[j],
					Distance: d,
					Masked:   d > ds.MaxDistance,
				}
			}
			panel.Traces = append(panel.Traces, trace)
		}
		ds.Panels = append(ds.Panels, panel)
	}

	start, end := table.DateRange()
	ds.Axis = timeaxis.Compute(start, end)

	return ds, nil
}

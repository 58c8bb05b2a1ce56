// Package chart assembles renderer-ready datasets from a normalized
// sample table: wrap-safe longitude segments with a snapped zodiac scale
// window, and per-aspect distance traces with out-of-orb masking. The
// renderer itself (rasterization, styling, file output) is an external
// consumer of these datasets.
package chart

import (
	"time"

	"github.com/astrolab/aspectra/internal/ingest"
)

// WrapThreshold is the raw angular jump between consecutive samples that
// marks a 0/360 crossing. Daily sampling keeps genuine same-direction
// jumps well below this.
const WrapThreshold = 180.0

// Segment is a maximal run of consecutive samples with no wraparound jump
// between neighbors. Rendering each segment as its own polyline keeps a
// longitude crossing 0/360 from drawing a spurious line across the full
// vertical band.
type Segment struct {
	Dates   []time.Time `json:"dates"`
	Degrees []float64   `json:"degrees"`
}

// Len returns the number of samples in the segment.
func (s Segment) Len() int { return len(s.Dates) }

// Segments splits one series' ordered samples at raw (non-circular)
// angular jumps above threshold. Every sample lands in exactly one
// segment, in order; zero samples yield zero segments, one sample yields
// a single length-one segment.
//
// A genuine same-direction jump above the threshold is indistinguishable
// from a wrap here and splits too; with multiple wraps between sparse
// samples a crossing can also be missed. Both are accepted behavior.
func Segments(samples []ingest.Sample, threshold float64) []Segment {
	if len(samples) == 0 {
		return nil
	}

	var out []Segment
	start := 0
	for i := 1; i < len(samples); i++ {
		jump := samples[i].Degree - samples[i-1].Degree
		if jump < 0 {
			jump = -jump
		}
		if jump > threshold {
			out = append(out, newSegment(samples[start:i]))
			start = i
		}
	}
	return append(out, newSegment(samples[start:]))
}

func newSegment(samples []ingest.Sample) Segment {
	seg := Segment{
		Dates:   make([]time.Time, len(samples)),
		Degrees: make([]float64, len(samples)),
	}
	for i, s := range samples {
		seg.Dates[i] = s.Date
		seg.Degrees[i] = s.Degree
	}
	return seg
}

package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolab/aspectra/internal/ingest"
)

func samplesFrom(degrees ...float64) []ingest.Sample {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]ingest.Sample, len(degrees))
	for i, d := range degrees {
		out[i] = ingest.Sample{Date: base.AddDate(0, 0, i), Body: "X", Degree: d}
	}
	return out
}

func segmentDegrees(segs []Segment) [][]float64 {
	out := make([][]float64, len(segs))
	for i, s := range segs {
		out[i] = s.Degrees
	}
	return out
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name     string
		degrees  []float64
		expected [][]float64
	}{
		{
			"wrap splits into two",
			[]float64{10, 20, 350, 355},
			[][]float64{{10, 20}, {350, 355}},
		},
		{
			"monotonic stays whole",
			[]float64{10, 20, 30},
			[][]float64{{10, 20, 30}},
		},
		{
			"single sample single segment",
			[]float64{123},
			[][]float64{{123}},
		},
		{
			"wrap at the very start",
			[]float64{359, 2, 5},
			[][]float64{{359}, {2, 5}},
		},
		{
			"two wraps three segments",
			[]float64{350, 355, 2, 8, 358, 3},
			[][]float64{{350, 355}, {2, 8}, {358}, {3}},
		},
		{
			"large jump below threshold stays joined",
			[]float64{10, 185},
			[][]float64{{10, 185}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Segments(samplesFrom(tt.degrees...), WrapThreshold)
			assert.Equal(t, tt.expected, segmentDegrees(segs))
		})
	}
}

func TestSegmentsEmpty(t *testing.T) {
	assert.Empty(t, Segments(nil, WrapThreshold))
	assert.Empty(t, Segments([]ingest.Sample{}, WrapThreshold))
}

func TestSegmentsCoverEverySampleOnce(t *testing.T) {
	samples := samplesFrom(350, 355, 2, 8, 120, 300, 10)
	segs := Segments(samples, WrapThreshold)

	total := 0
	for _, s := range segs {
		total += s.Len()
	}
	assert.Equal(t, len(samples), total)

	// Order is preserved across segment boundaries.
	var flat []float64
	for _, s := range segs {
		flat = append(flat, s.Degrees...)
	}
	for i, s := range samples {
		assert.Equal(t, s.Degree, flat[i])
	}
}

// A 400-day series that crosses 0/360 once must come out as exactly two
// segments, so the renderer never draws a line across the full band.
func TestLongitudeWrapYieldsTwoSegments(t *testing.T) {
	var samples []ingest.Sample
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 400; i++ {
		// A tenth of a degree per day starting at 340: one boundary
		// crossing, on day 200.
		deg := 340.0 + 0.1*float64(i)
		if deg >= 360 {
			deg -= 360
		}
		samples = append(samples, ingest.Sample{Date: base.AddDate(0, 0, i), Body: "A", Degree: deg})
	}

	segs := Segments(samples, WrapThreshold)
	require.Len(t, segs, 2)
	assert.Equal(t, 200, segs[0].Len())
	assert.Equal(t, 200, segs[1].Len())
	assert.InDelta(t, 359.9, segs[0].Degrees[199], 1e-9)
	assert.InDelta(t, 0.0, segs[1].Degrees[0], 1e-9)
}

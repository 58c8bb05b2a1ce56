package chart

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrolab/aspectra/internal/ingest"
	"github.com/astrolab/aspectra/internal/palette"
	"github.com/astrolab/aspectra/pkg/angles"
)

func mustTable(t *testing.T, input string) *ingest.Table {
	t.Helper()
	table, err := ingest.ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	return table
}

func TestBuildAspectsDistances(t *testing.T) {
	// Venus sits exactly 120 degrees ahead of Mars on day one and drifts
	// one degree per day.
	in := "1.1.2024, Mars, 10\n" +
		"2.1.2024, Mars, 10\n" +
		"3.1.2024, Mars, 10\n" +
		"1.1.2024, Venus, 130\n" +
		"2.1.2024, Venus, 131\n" +
		"3.1.2024, Venus, 132\n"
	table := mustTable(t, in)

	ds, err := BuildAspects(table, "Mars", []angles.Aspect{angles.Trine}, 5.0, palette.New())
	require.NoError(t, err)

	assert.Equal(t, "Mars", ds.Reference)
	assert.Equal(t, 7.5, ds.MaxDistance)
	require.Len(t, ds.Panels, 1)
	require.Len(t, ds.Panels[0].Traces, 1)

	pts := ds.Panels[0].Traces[0].Points
	require.Len(t, pts, 3)
	assert.InDelta(t, 0.0, pts[0].Distance, 1e-9)
	assert.InDelta(t, 1.0, pts[1].Distance, 1e-9)
	assert.InDelta(t, 2.0, pts[2].Distance, 1e-9)
	for _, p := range pts {
		assert.False(t, p.Masked)
	}
}

func TestBuildAspectsMasking(t *testing.T) {
	// Separation of 60 degrees: trine distance is 60, far out of a
	// 5-degree orb's visible band.
	in := "1.1.2024, Mars, 0\n1.1.2024, Venus, 60\n"
	table := mustTable(t, in)

	ds, err := BuildAspects(table, "Mars", []angles.Aspect{angles.Trine}, 5.0, palette.New())
	require.NoError(t, err)

	pts := ds.Panels[0].Traces[0].Points
	require.Len(t, pts, 1)
	assert.InDelta(t, 60.0, pts[0].Distance, 1e-9)
	assert.True(t, pts[0].Masked, "distance beyond 1.5*orb must be masked")
}

func TestBuildAspectsPairwiseComplete(t *testing.T) {
	// Venus has no sample on Jan 2; that date must vanish from the
	// trace rather than produce an error or a gap value.
	in := "1.1.2024, Mars, 0\n" +
		"2.1.2024, Mars, 1\n" +
		"3.1.2024, Mars, 2\n" +
		"1.1.2024, Venus, 120\n" +
		"3.1.2024, Venus, 122\n"
	table := mustTable(t, in)

	ds, err := BuildAspects(table, "Mars", []angles.Aspect{angles.Trine}, 5.0, palette.New())
	require.NoError(t, err)

	pts := ds.Panels[0].Traces[0].Points
	require.Len(t, pts, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), pts[0].Date)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), pts[1].Date)
}

func TestBuildAspectsSeparationWrap(t *testing.T) {
	// Reference at 350, other at 110: separation wraps to 120, an exact
	// trine despite the raw difference of -240.
	in := "1.1.2024, Mars, 350\n1.1.2024, Venus, 110\n"
	table := mustTable(t, in)

	ds, err := BuildAspects(table, "Mars", []angles.Aspect{angles.Trine}, 5.0, palette.New())
	require.NoError(t, err)

	pts := ds.Panels[0].Traces[0].Points
	require.Len(t, pts, 1)
	assert.InDelta(t, 0.0, pts[0].Distance, 1e-9)
}

func TestBuildAspectsMultiplePanels(t *testing.T) {
	in := "1.1.2024, Mars, 0\n1.1.2024, Venus, 90\n"
	table := mustTable(t, in)

	ds, err := BuildAspects(table, "Mars", angles.All(), 5.0, palette.New())
	require.NoError(t, err)
	require.Len(t, ds.Panels, 4)

	byName := make(map[string]float64)
	for _, p := range ds.Panels {
		byName[p.Aspect.Name] = p.Traces[0].Points[0].Distance
	}
	assert.InDelta(t, 30.0, byName["trine"], 1e-9)
	assert.InDelta(t, 0.0, byName["square"], 1e-9)
	assert.InDelta(t, 90.0, byName["opposition"], 1e-9)
	assert.InDelta(t, 90.0, byName["conjunction"], 1e-9)
}

func TestBuildAspectsErrors(t *testing.T) {
	table := mustTable(t, "1.1.2024, Mars, 10\n1.1.2024, Venus, 20\n")

	_, err := BuildAspects(table, "Pluto", angles.All(), 5.0, palette.New())
	assert.True(t, errors.Is(err, ingest.ErrUnknownSeries))

	solo := mustTable(t, "1.1.2024, Mars, 10\n")
	_, err = BuildAspects(solo, "Mars", angles.All(), 5.0, palette.New())
	assert.True(t, errors.Is(err, ingest.ErrEmptyComparisonSet))
}

func TestBuildLongitudeDataset(t *testing.T) {
	in := "1.1.2024, Mars, 10\n" +
		"2.1.2024, Mars, 20\n" +
		"3.1.2024, Mars, 350\n" +
		"1.1.2024, Venus, 40\n" +
		"2.1.2024, Venus, 41\n"
	table := mustTable(t, in)

	ds := BuildLongitude(table, palette.New())

	require.Len(t, ds.Series, 2)
	assert.Equal(t, "Mars", ds.Series[0].Body)
	assert.Len(t, ds.Series[0].Segments, 2, "wrap jump splits Mars")
	assert.Len(t, ds.Series[1].Segments, 1)

	// Observed extent 10..350 padded and snapped.
	assert.Equal(t, 5.0, ds.Window.Low)
	assert.Equal(t, 355.0, ds.Window.High)

	assert.Equal(t, 1, ds.Axis.SpanMonths)
	assert.NotEmpty(t, ds.Series[0].Color)
}

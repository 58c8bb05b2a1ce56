// Package ephemeris computes daily geocentric ecliptic longitudes for the
// Sun and Moon, as a built-in substitute for an external swetest export.
// Positions come from the Meeus algorithms; accuracy is more than enough
// for chart work at daily resolution.
package ephemeris

import (
	"fmt"
	"io"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/astrolab/aspectra/pkg/angles"
)

// Body is a celestial body the generator knows how to place.
type Body string

const (
	Sun  Body = "Sun"
	Moon Body = "Moon"
)

// Bodies lists every supported body.
func Bodies() []Body { return []Body{Sun, Moon} }

// Position is one dated longitude.
type Position struct {
	Date   time.Time
	Body   Body
	Degree float64
}

// Longitude returns a body's apparent geocentric ecliptic longitude in
// degrees, folded into [0, 360).
func Longitude(body Body, t time.Time) (float64, error) {
	jd := julian.TimeToJD(t.UTC())

	var lon unit.Angle
	switch body {
	case Sun:
		lon = solar.ApparentLongitude(base.J2000Century(jd))
	case Moon:
		lon, _, _ = moonposition.Position(jd)
	default:
		return 0, fmt.Errorf("unsupported body %q", body)
	}

	return angles.Wrap(lon.Deg()), nil
}

// Daily returns positions for one body at daily steps, starting at
// start's date (UTC midnight) for the given number of days.
func Daily(body Body, start time.Time, days int) ([]Position, error) {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	out := make([]Position, 0, days)
	for i := 0; i < days; i++ {
		deg, err := Longitude(body, day)
		if err != nil {
			return nil, err
		}
		out = append(out, Position{Date: day, Body: body, Degree: deg})
		day = day.AddDate(0, 0, 1)
	}
	return out, nil
}

// WriteCSV emits daily positions for the given bodies in the same
// `D.M.Y, body, degrees` row format the ingest parser accepts, one body
// per line, dates ascending within each body.
func WriteCSV(w io.Writer, bodies []Body, start time.Time, days int) error {
	for _, body := range bodies {
		positions, err := Daily(body, start, days)
		if err != nil {
			return err
		}
		for _, p := range positions {
			_, err := fmt.Fprintf(w, "%d.%d.%d, %s, %.7f\n",
				p.Date.Day(), int(p.Date.Month()), p.Date.Year(), p.Body, p.Degree)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

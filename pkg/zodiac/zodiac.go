// Package zodiac maps absolute ecliptic longitudes onto the zodiac scale
// used for chart axes: sign names at 30-degree cusps, in-sign degree labels
// elsewhere, and axis bounds snapped to the 5-degree-major / 1-degree-minor
// grid.
package zodiac

import (
	"fmt"
	"math"

	"github.com/astrolab/aspectra/pkg/angles"
)

// Signs lists the twelve zodiac signs in longitude order, 30 degrees each
// starting at 0 Aries.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignSpan is the angular width of one sign.
const SignSpan = 30.0

// cuspTolerance is the floating-point slack within which a tick counts as
// sitting on a sign cusp.
const cuspTolerance = 0.001

// SignIndex returns the zero-based sign index for a longitude.
func SignIndex(deg float64) int {
	return int(angles.Wrap(deg) / SignSpan)
}

// SignNameAt returns the sign name a longitude falls in.
func SignNameAt(deg float64) string {
	return Signs[SignIndex(deg)]
}

// DegreeLabel renders the in-sign degree offset of a longitude as a
// two-digit label with a degree mark, e.g. "07°". An offset that rounds to
// exactly 30 belongs to the next sign's start and is normalized to "00°".
func DegreeLabel(deg float64) string {
	d := math.Mod(angles.Wrap(deg), SignSpan)
	dd := int(math.Round(d))
	if dd == 30 {
		dd = 0
	}
	return fmt.Sprintf("%02d°", dd)
}

// TickLabel formats one axis tick: the sign name alone on (or within
// tolerance of) a 30-degree cusp, the in-sign degree label everywhere else.
func TickLabel(deg float64) string {
	m := math.Mod(angles.Wrap(deg), SignSpan)
	if m < cuspTolerance || SignSpan-m < cuspTolerance {
		return SignNameAt(deg)
	}
	return DegreeLabel(deg)
}

// SnapBounds derives axis bounds from an observed longitude range: pad by
// 2 degrees each side, round outward to multiples of 5, clip to [0, 360],
// and guarantee at least a 5-degree band when the rounded bounds collapse.
func SnapBounds(minDeg, maxDeg float64) (lo, hi float64) {
	lo = math.Floor((minDeg-2)/5) * 5
	hi = math.Ceil((maxDeg+2)/5) * 5
	if lo < 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 5
	}
	if hi > 360 {
		hi = 360
	}
	return lo, hi
}

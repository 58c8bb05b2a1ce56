package zodiac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignNameAt(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected string
	}{
		{"start of circle", 0, "Aries"},
		{"end of first sign", 29.9999, "Aries"},
		{"exact cusp", 30.0, "Taurus"},
		{"mid circle", 185, "Libra"},
		{"last sign", 359.9, "Pisces"},
		{"wraps over 360", 390, "Taurus"},
		{"negative wraps", -10, "Pisces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SignNameAt(tt.deg))
		})
	}
}

func TestDegreeLabel(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected string
	}{
		{"cusp renders zero", 30.0, "00°"},
		{"single digit padded", 37, "07°"},
		{"double digit", 55, "25°"},
		{"rounds up", 12.6, "13°"},
		{"rounds up to next sign start", 29.9, "00°"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DegreeLabel(tt.deg))
		})
	}
}

func TestTickLabel(t *testing.T) {
	tests := []struct {
		name     string
		deg      float64
		expected string
	}{
		{"cusp shows sign only", 30.0, "Taurus"},
		{"near-cusp below shows sign", 59.99999, "Taurus"},
		{"near-cusp above shows sign", 60.0005, "Gemini"},
		{"major tick shows degrees", 35, "05°"},
		{"another major tick", 125, "05°"},
		{"zero shows first sign", 0, "Aries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TickLabel(tt.deg))
		})
	}
}

func TestSnapBounds(t *testing.T) {
	tests := []struct {
		name             string
		minDeg, maxDeg   float64
		expLo, expHi     float64
	}{
		{"typical range", 3, 47, 0, 50},
		{"clip at zero", 0, 10, 0, 15},
		{"clip at 360", 350, 359.5, 345, 360},
		{"degenerate range still spans", 100, 100, 95, 105},
		{"full circle", 0, 360, 0, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := SnapBounds(tt.minDeg, tt.maxDeg)
			assert.Equal(t, tt.expLo, lo)
			assert.Equal(t, tt.expHi, hi)
			assert.GreaterOrEqual(t, hi-lo, 5.0, "band must span at least 5 degrees")
		})
	}
}

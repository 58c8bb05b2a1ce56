package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownBodiesAreFixed(t *testing.T) {
	a := New()
	assert.Equal(t, "#C0392B", a.Color("Mars"))
	assert.Equal(t, "#DAA520", a.Color("Sun"))
}

func TestFallbackAssignmentIsStable(t *testing.T) {
	a := New()

	first := a.Color("Ceres")
	second := a.Color("Vesta")

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, a.Color("Ceres"), "repeat lookups must not reassign")

	// A fresh allocator starts the ring over.
	b := New()
	assert.Equal(t, first, b.Color("Anything"))
}

// Package palette assigns stable plot colors to bodies. Known bodies get
// fixed colors; unknown ones draw from a fallback ring in first-seen
// order. The allocator is an explicit value handed to the chart builders,
// not package-level state, so two charts built from the same allocator
// agree on colors.
package palette

// Fixed per-body colors, matching the traditional chart palette.
var bodyColors = map[string]string{
	"Sun":       "#DAA520",
	"Moon":      "#A9A9A9",
	"Mercury":   "#2E8B57",
	"Venus":     "#8FBC8F",
	"Earth":     "#228B22",
	"Mars":      "#C0392B",
	"Jupiter":   "#E67E22",
	"Saturn":    "#8E6B23",
	"Uranus":    "#1ABC9C",
	"Neptune":   "#2980B9",
	"Pluto":     "#7D3C98",
	"Chiron":    "#B9770E",
	"mean Node": "#34495E",
	"true Node": "#2C3E50",
}

var fallback = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
	"#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999",
}

// Allocator hands out colors. Not safe for concurrent use; charts are
// built synchronously.
type Allocator struct {
	assigned map[string]string
}

// New returns an empty allocator.
func New() *Allocator {
	return &Allocator{assigned: make(map[string]string)}
}

// Color returns the color for a body, assigning a fallback color on first
// sight of an unknown body.
func (a *Allocator) Color(body string) string {
	if c, ok := bodyColors[body]; ok {
		return c
	}
	if c, ok := a.assigned[body]; ok {
		return c
	}
	c := fallback[len(a.assigned)%len(fallback)]
	a.assigned[body] = c
	return c
}

package angles

// Aspect is a named angular relationship between two longitudes, defined by
// a set of target separations mod 360. The catalog below is fixed at
// process start; Aspect values are never mutated.
type Aspect struct {
	Name    string    `json:"name"`
	Targets []float64 `json:"targets"`
}

// The four classical aspects.
var (
	Conjunction = Aspect{Name: "conjunction", Targets: []float64{0}}
	Square      = Aspect{Name: "square", Targets: []float64{90, 270}}
	Trine       = Aspect{Name: "trine", Targets: []float64{120, 240}}
	Opposition  = Aspect{Name: "opposition", Targets: []float64{180}}
)

// All returns the full aspect catalog in display order.
func All() []Aspect {
	return []Aspect{Trine, Square, Opposition, Conjunction}
}

// ByName looks up an aspect from the catalog.
func ByName(name string) (Aspect, bool) {
	for _, a := range All() {
		if a.Name == name {
			return a, true
		}
	}
	return Aspect{}, false
}

// Distance returns the unsigned distance from a separation angle to the
// nearest of the aspect's targets.
func (a Aspect) Distance(delta float64) float64 {
	return NearestDistance(delta, a.Targets)
}

// Package timeaxis selects tick, gridline, and label density for chart
// time axes across spans from weeks to centuries. The cascade is a single
// ordered tier table shared by every chart type; a tier fixes the major and
// minor tick cadence, the label layout, and the label-thinning factor.
package timeaxis

import "time"

// Unit is a calendar granularity for tick placement.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}

// TickRule places ticks every Interval Units. Week ticks fall on Mondays.
type TickRule struct {
	Unit     Unit `json:"unit"`
	Interval int  `json:"interval"`
}

// GridStrength ranks the nested year-gridline hierarchy drawn for
// year-granularity tiers.
type GridStrength int

const (
	GridWeak   GridStrength = iota // ordinary year
	GridMedium                     // decade boundary
	GridStrong                     // century boundary
)

// GridLine is one vertical gridline with its visual weight.
type GridLine struct {
	Time     time.Time    `json:"time"`
	Strength GridStrength `json:"strength"`
}

// Plan is the computed axis plan for one chart. It is a pure function of
// the date range and is recomputed per chart, never shared.
type Plan struct {
	SpanMonths int      `json:"span_months"`
	Major      TickRule `json:"major"`
	Minor      TickRule `json:"minor"`
	// LabelLayout is a Go time layout for major-tick labels.
	LabelLayout string `json:"label_layout"`
	// LabelEvery labels only every k-th major tick; the unlabeled ticks
	// are still drawn.
	LabelEvery int `json:"label_every"`

	MajorTicks []time.Time `json:"major_ticks"`
	MinorTicks []time.Time `json:"minor_ticks"`
	// Labels aligns with MajorTicks; thinned positions hold "".
	Labels []string `json:"labels"`

	// MonthMarkers holds every calendar-month boundary in range for
	// month-granularity tiers, drawn even when labels are thinned.
	MonthMarkers []time.Time `json:"month_markers,omitempty"`
	// YearGrid holds the nested year/decade/century gridlines for
	// year-granularity tiers.
	YearGrid []GridLine `json:"year_grid,omitempty"`
}

// tier is one row of the cascade. maxMonths == 0 marks the catch-all row.
type tier struct {
	maxMonths  int
	major      TickRule
	minor      TickRule
	layout     string
	labelEvery int
}

// The cascade, evaluated in order with first match winning. Boundaries are
// inclusive: a span of exactly maxMonths selects that row.
var tiers = []tier{
	{12, TickRule{Month, 1}, TickRule{Week, 1}, "2 Jan 2006", 1},
	{36, TickRule{Month, 1}, TickRule{Month, 1}, "Jan 2006", 1},
	{120, TickRule{Month, 3}, TickRule{Month, 1}, "Jan 2006", 1},
	{240, TickRule{Year, 1}, TickRule{Month, 3}, "2006", 1},
	{480, TickRule{Year, 2}, TickRule{Year, 1}, "2006", 1},
	{1200, TickRule{Year, 5}, TickRule{Year, 1}, "2006", 1},
	{0, TickRule{Year, 10}, TickRule{Year, 1}, "2006", 1},
}

// MonthSpan counts whole months covered by [start, end], inclusive of both
// endpoint months.
func MonthSpan(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
}

func selectTier(months int) tier {
	for _, tr := range tiers {
		if tr.maxMonths == 0 || months <= tr.maxMonths {
			return tr
		}
	}
	return tiers[len(tiers)-1]
}

// Compute builds the axis plan for a date range.
func Compute(start, end time.Time) Plan {
	months := MonthSpan(start, end)
	tr := selectTier(months)

	p := Plan{
		SpanMonths:  months,
		Major:       tr.major,
		Minor:       tr.minor,
		LabelLayout: tr.layout,
		LabelEvery:  tr.labelEvery,
	}

	p.MajorTicks = ticks(start, end, tr.major)
	p.MinorTicks = ticks(start, end, tr.minor)

	p.Labels = make([]string, len(p.MajorTicks))
	for i, tk := range p.MajorTicks {
		if i%p.LabelEvery == 0 {
			p.Labels[i] = tk.Format(tr.layout)
		}
	}

	switch tr.major.Unit {
	case Month:
		// Month structure must survive label thinning: one marker per
		// calendar-month boundary regardless of the tick cadence.
		p.MonthMarkers = ticks(start, end, TickRule{Month, 1})
	case Year:
		for _, y := range ticks(start, end, TickRule{Year, 1}) {
			p.YearGrid = append(p.YearGrid, GridLine{Time: y, Strength: yearStrength(y.Year())})
		}
	}

	return p
}

// yearStrength ranks a calendar year in the fixed century > decade > year
// hierarchy, independent of the chosen major-tick cadence.
func yearStrength(year int) GridStrength {
	switch {
	case year%100 == 0:
		return GridStrong
	case year%10 == 0:
		return GridMedium
	default:
		return GridWeak
	}
}

// ticks enumerates the tick positions for a rule within [start, end].
func ticks(start, end time.Time, rule TickRule) []time.Time {
	var out []time.Time
	for t := firstTick(start, rule); !t.After(end); t = nextTick(t, rule) {
		if !t.Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// firstTick returns the earliest position at or after start that lies on
// the rule's calendar grid.
func firstTick(start time.Time, rule TickRule) time.Time {
	switch rule.Unit {
	case Day:
		return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	case Week:
		// Mondays only.
		t := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
		for t.Weekday() != time.Monday {
			t = t.AddDate(0, 0, 1)
		}
		return t
	case Month:
		t := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
		if t.Before(start) {
			t = t.AddDate(0, 1, 0)
		}
		return t
	case Year:
		y := start.Year()
		// Multi-year cadences stay aligned to multiples of the interval
		// so decade/century ticks land on round years.
		if rule.Interval > 1 {
			y = (y / rule.Interval) * rule.Interval
		}
		t := time.Date(y, time.January, 1, 0, 0, 0, 0, start.Location())
		for t.Before(start) {
			t = t.AddDate(rule.Interval, 0, 0)
		}
		return t
	}
	return start
}

func nextTick(t time.Time, rule TickRule) time.Time {
	switch rule.Unit {
	case Day:
		return t.AddDate(0, 0, rule.Interval)
	case Week:
		return t.AddDate(0, 0, 7*rule.Interval)
	case Month:
		return t.AddDate(0, rule.Interval, 0)
	case Year:
		return t.AddDate(rule.Interval, 0, 0)
	}
	return t.AddDate(0, 0, rule.Interval)
}

// Package ingest normalizes swetest-style longitude exports into an
// in-memory table of per-body sample series. Parsing is lenient per line
// and strict only in aggregate: malformed lines are dropped, but an input
// that yields zero samples is an error.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

var (
	// ErrNoData means an entire input produced zero samples.
	ErrNoData = errors.New("no rows parsed")
	// ErrUnknownSeries means a requested body is absent from the table.
	ErrUnknownSeries = errors.New("unknown series")
	// ErrEmptyComparisonSet means no bodies remain once the reference
	// body is excluded.
	ErrEmptyComparisonSet = errors.New("no other series to compare against")
)

// Sample is one canonical row: a calendar date, a body name, and an
// ecliptic longitude already folded into [0, 360). Samples are immutable
// once created.
type Sample struct {
	Date   time.Time `json:"date"`
	Body   string    `json:"body"`
	Degree float64   `json:"degree"`
}

// Table groups samples by body, each series sorted by ascending date with
// input order preserved among equal dates.
type Table struct {
	names  []string
	series map[string][]Sample

	// SkippedLines counts input lines no parser matched.
	SkippedLines int
}

// ParseFile reads and normalizes a longitude export from disk.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader normalizes line-oriented input. Each line passes through the
// parser chain in order; the first match wins and non-matching lines are
// skipped. Returns ErrNoData when nothing at all parsed.
func ParseReader(r io.Reader) (*Table, error) {
	t := &Table{series: make(map[string][]Sample)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		s, ok := parseLine(line)
		if !ok {
			if len(line) > 0 {
				t.SkippedLines++
			}
			continue
		}
		t.add(s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: expected `D.M.Y, body, degrees` rows (swetest -fTPl -g, -head) or whitespace-separated `D.M.Y body degrees`", ErrNoData)
	}

	for name := range t.series {
		ss := t.series[name]
		sort.SliceStable(ss, func(i, j int) bool { return ss[i].Date.Before(ss[j].Date) })
	}

	return t, nil
}

// FromSamples builds a table directly from already-normalized samples,
// e.g. rows read back from the archive. Returns ErrNoData when samples is
// empty.
func FromSamples(samples []Sample) (*Table, error) {
	t := &Table{series: make(map[string][]Sample)}
	for _, s := range samples {
		t.add(s)
	}
	if t.Len() == 0 {
		return nil, ErrNoData
	}
	for name := range t.series {
		ss := t.series[name]
		sort.SliceStable(ss, func(i, j int) bool { return ss[i].Date.Before(ss[j].Date) })
	}
	return t, nil
}

func (t *Table) add(s Sample) {
	if _, seen := t.series[s.Body]; !seen {
		t.names = append(t.names, s.Body)
	}
	t.series[s.Body] = append(t.series[s.Body], s)
}

// Len returns the total sample count across all series.
func (t *Table) Len() int {
	n := 0
	for _, ss := range t.series {
		n += len(ss)
	}
	return n
}

// Names returns body names in first-appearance order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether a body is present.
func (t *Table) Has(name string) bool {
	_, ok := t.series[name]
	return ok
}

// Series returns one body's samples in ascending date order.
func (t *Table) Series(name string) ([]Sample, error) {
	ss, ok := t.series[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	return ss, nil
}

// Others returns every body name except ref, in first-appearance order.
// Returns ErrEmptyComparisonSet when nothing remains.
func (t *Table) Others(ref string) ([]string, error) {
	if !t.Has(ref) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, ref)
	}
	var out []string
	for _, n := range t.names {
		if n != ref {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyComparisonSet
	}
	return out, nil
}

// DateRange returns the earliest and latest sample dates in the table.
func (t *Table) DateRange() (start, end time.Time) {
	first := true
	for _, ss := range t.series {
		for _, s := range ss {
			if first || s.Date.Before(start) {
				start = s.Date
			}
			if first || s.Date.After(end) {
				end = s.Date
			}
			first = false
		}
	}
	return start, end
}

package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/astrolab/aspectra/pkg/angles"
)

// lineParser is one strategy in the ordered parser chain. TryParse returns
// the normalized sample and true on a match; false means the next strategy
// gets the line.
type lineParser interface {
	TryParse(line string) (Sample, bool)
}

// parsers is the chain, tried in order: the strict delimited form first,
// the whitespace fallback second.
var parsers = []lineParser{
	delimitedParser{},
	whitespaceParser{},
}

func parseLine(line string) (Sample, bool) {
	for _, p := range parsers {
		if s, ok := p.TryParse(line); ok {
			return s, true
		}
	}
	return Sample{}, false
}

// delimitedParser matches the strict swetest CSV form:
// `D.M.Y, name, signed-float[, ...further fields ignored]`.
type delimitedParser struct{}

var rowPattern = regexp.MustCompile(`^\s*(\d{1,2})\.(\d{1,2})\.(\d{3,4})\s*,\s*([^,]+?)\s*,\s*([+-]?\d+(?:\.\d+)?)`)

func (delimitedParser) TryParse(line string) (Sample, bool) {
	m := rowPattern.FindStringSubmatch(line)
	if m == nil {
		return Sample{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	deg, err := strconv.ParseFloat(m[5], 64)
	if err != nil {
		return Sample{}, false
	}

	return newSample(day, month, year, strings.TrimSpace(m[4]), deg)
}

// whitespaceParser matches the loose form `D.M.Y name float`, which some
// exporters emit when no field separator is configured.
type whitespaceParser struct{}

func (whitespaceParser) TryParse(line string) (Sample, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || !strings.Contains(parts[0], ".") || !isAlpha(parts[1]) {
		return Sample{}, false
	}

	dmy := strings.Split(parts[0], ".")
	if len(dmy) != 3 {
		return Sample{}, false
	}
	day, err1 := strconv.Atoi(dmy[0])
	month, err2 := strconv.Atoi(dmy[1])
	year, err3 := strconv.Atoi(dmy[2])
	deg, err4 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Sample{}, false
	}

	return newSample(day, month, year, parts[1], deg)
}

func newSample(day, month, year int, body string, deg float64) (Sample, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Sample{}, false
	}
	return Sample{
		Date:   time.Date(expandYear(year), time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Body:   body,
		Degree: angles.Wrap(deg),
	}, true
}

// expandYear applies the fixed short-year pivot: below 80 means 2000s,
// 80 through 99 means 1900s. Four-digit years pass through.
func expandYear(y int) int {
	if y >= 1000 {
		return y
	}
	if y < 80 {
		return y + 2000
	}
	return y + 1900
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

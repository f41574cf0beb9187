package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/reflect/pkg/day"
)

const (
	// DefaultWindow is the fallback list window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	dayUnits      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	monthUnits = map[string]int{
		"m":      1,
		"mo":     1,
		"month":  1,
		"months": 1,
		"y":      12,
		"yr":     12,
		"year":   12,
		"years":  12,
	}
)

// Window is a span of calendar days counted back from a date. Months are kept
// apart from days so "1m" means the same day last month.
type Window struct {
	Months int
	Days   int
}

// Since returns the first day of the window ending on (and including) until.
func (w Window) Since(until day.Date) day.Date {
	start := until.Time(nil).AddDate(0, -w.Months, -w.Days)
	return day.Of(start).Next()
}

// Contains reports whether d falls inside the window ending on until.
func (w Window) Contains(d, until day.Date) bool {
	return !d.Before(w.Since(until)) && !until.Before(d)
}

// ParseWindow parses a human-friendly window such as "1w", "3d" or "1m2w" and
// returns it along with a canonical, compact label. When the input is empty,
// the default window of one week is used.
func ParseWindow(input string) (Window, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	w := Window{}
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		switch {
		case dayUnits[matches[2]] > 0:
			w.Days += value * dayUnits[matches[2]]
		case monthUnits[matches[2]] > 0:
			w.Months += value * monthUnits[matches[2]]
		default:
			return Window{}, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		remaining = remaining[len(matches[0]):]
	}

	if w.Months <= 0 && w.Days <= 0 {
		return Window{}, "", fmt.Errorf("window must be at least one day")
	}
	return w, FormatWindow(w), nil
}

// FormatWindow renders a window using year/month/week/day tokens.
func FormatWindow(w Window) string {
	var parts []string
	if y := w.Months / 12; y > 0 {
		parts = append(parts, fmt.Sprintf("%dy", y))
	}
	if m := w.Months % 12; m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if wk := w.Days / 7; wk > 0 {
		parts = append(parts, fmt.Sprintf("%dw", wk))
	}
	if d := w.Days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	if len(parts) == 0 {
		return "0d"
	}
	return strings.Join(parts, "")
}

package gnuplot

import (
	"strconv"
	"strings"
)

// LineType selects the dash pattern applied to line-connected plot
// styles.
type LineType int

const (
	// LineNone leaves the dash type to the engine.
	LineNone LineType = iota
	// LineSolid draws an unbroken line.
	LineSolid
	// LineDashed draws a dashed line.
	LineDashed
	// LineDotted draws a dotted line.
	LineDotted
	// LineDashDot alternates dashes and dots.
	LineDashDot
	// LineDashDotDot alternates one dash with two dots.
	LineDashDotDot
	// LineCustom uses a caller-supplied dash pattern.
	LineCustom
)

// fragment renders the "dt" clause for a plot directive. The custom
// pattern string uses gnuplot's comma-separated on/off lengths, e.g.
// "10,5,2,5". An empty custom pattern falls back to solid.
func (lt LineType) fragment(customPattern string) string {
	switch lt {
	case LineSolid:
		return "dt 1"
	case LineDashed:
		return "dt 2"
	case LineDotted:
		return "dt 3"
	case LineDashDot:
		return "dt 4"
	case LineDashDotDot:
		return "dt 5"
	case LineCustom:
		if customPattern == "" {
			return "dt 1"
		}
		return "dt (" + customPattern + ")"
	default:
		return "dt 1"
	}
}

// gridDashPattern returns the explicit dash pattern used when declaring a
// named grid line style. Grid styles spell the pattern out instead of
// using the terminal's numbered dash types so major and minor lines stay
// distinguishable on every terminal.
func (lt LineType) gridDashPattern(customPattern string) string {
	switch lt {
	case LineDashed:
		return "50, 25"
	case LineDotted:
		return "1, 1"
	case LineDashDot:
		return "10, 5, 1, 5"
	case LineDashDotDot:
		return "10, 5, 1, 5, 1, 5"
	case LineCustom:
		return customPattern
	default:
		return ""
	}
}

// DashPattern builds a custom dash pattern string from alternating on/off
// lengths, for use with LineCustom. Non-positive lengths are dropped.
// Returns "" if nothing usable remains.
func DashPattern(lengths ...float64) string {
	parts := make([]string, 0, len(lengths))
	for _, l := range lengths {
		if l <= 0 {
			continue
		}
		parts = append(parts, strconv.FormatFloat(l, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

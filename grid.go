package gnuplot

import (
	"fmt"
	"strings"
)

// GridClass distinguishes the independently-styleable grid line
// categories.
type GridClass int

const (
	// GridMajor styles the lines at major tics.
	GridMajor GridClass = iota
	// GridMinor styles the lines at minor tics.
	GridMinor
)

// SetGrid enables the default grid.
func (s *Session) SetGrid() *Session {
	return s.Send("set grid")
}

// UnsetGrid disables the grid.
func (s *Session) UnsetGrid() *Session {
	return s.Send("unset grid")
}

// SetXTicsMajor sets the step between major tics on the x-axis.
// Non-positive steps are ignored.
func (s *Session) SetXTicsMajor(step float64) *Session {
	if step <= 0 {
		s.fail(fmt.Errorf("%w: x major tic step %v must be positive", ErrValidation, step))
		return s
	}
	return s.Send("set xtics " + fmtFloat(step))
}

// SetXTicsMinor sets the number of minor intervals between major tics on
// the x-axis. Non-positive counts are ignored.
func (s *Session) SetXTicsMinor(intervals int) *Session {
	if intervals <= 0 {
		s.fail(fmt.Errorf("%w: x minor intervals %d must be positive", ErrValidation, intervals))
		return s
	}
	return s.Send(fmt.Sprintf("set mxtics %d", intervals))
}

// SetYTicsMajor sets the step between major tics on the y-axis.
// Non-positive steps are ignored.
func (s *Session) SetYTicsMajor(step float64) *Session {
	if step <= 0 {
		s.fail(fmt.Errorf("%w: y major tic step %v must be positive", ErrValidation, step))
		return s
	}
	return s.Send("set ytics " + fmtFloat(step))
}

// SetYTicsMinor sets the number of minor intervals between major tics on
// the y-axis. Non-positive counts are ignored.
func (s *Session) SetYTicsMinor(intervals int) *Session {
	if intervals <= 0 {
		s.fail(fmt.Errorf("%w: y minor intervals %d must be positive", ErrValidation, intervals))
		return s
	}
	return s.Send(fmt.Sprintf("set mytics %d", intervals))
}

// SetGridLineStyle declares a named line style for one grid class and
// immediately sends its definition. The first declaration for a class
// allocates a style ID from the session's line-style category; repeated
// declarations redefine the same ID. customDash is only consulted for
// LineCustom.
func (s *Session) SetGridLineStyle(class GridClass, lt LineType, color Color, width float64, customDash string) *Session {
	if class == GridMajor && s.gridMajorID == 0 {
		s.gridMajorID = s.lineStyleIDs.generate()
	}
	if class == GridMinor && s.gridMinorID == 0 {
		s.gridMinorID = s.lineStyleIDs.generate()
	}

	id := s.gridMajorID
	if class == GridMinor {
		id = s.gridMinorID
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "set style line %d lt 1", id)
	if dash := lt.gridDashPattern(customDash); dash != "" {
		fmt.Fprintf(&sb, " dt (%s)", dash)
	}
	if color.IsSet() {
		fmt.Fprintf(&sb, " lc rgb %q", color.String())
	}
	fmt.Fprintf(&sb, " lw %s", fmtFloat(width))
	return s.Send(sb.String())
}

// ApplyGrid enables the grid with the declared line styles. tics names
// the tic axes to grid (e.g. "xtics ytics"); layer is "front", "back", or
// "" to leave layering to the engine. Only grid classes that previously
// had a line style declared are referenced; an unconfigured class is
// omitted from the directive entirely. verticalLines disables the
// vertical grid lines of 3D plots when false.
func (s *Session) ApplyGrid(tics, layer string, verticalLines bool) *Session {
	if tics == "" {
		tics = "xtics ytics"
	}
	var sb strings.Builder
	sb.WriteString("set grid " + tics)
	if layer == "front" || layer == "back" {
		sb.WriteString(" " + layer)
	}
	if s.gridMajorID > 0 {
		fmt.Fprintf(&sb, " ls %d", s.gridMajorID)
	}
	if s.gridMinorID > 0 {
		fmt.Fprintf(&sb, " , ls %d", s.gridMinorID)
	}
	if !verticalLines {
		sb.WriteString(" novertical")
	}
	return s.Send(sb.String())
}

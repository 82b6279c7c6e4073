package gnuplot

import (
	"fmt"
	"strings"
)

// SetTerminal changes the terminal used by Show and SetOutput. For the
// X11 terminal on unix a missing DISPLAY makes the call a logged no-op.
func (s *Session) SetTerminal(t Terminal) *Session {
	if t == TerminalX11 && !displayAvailable() {
		s.fail(fmt.Errorf("%w: x11 terminal needs DISPLAY", ErrSessionUnavailable))
		return s
	}
	s.terminal = t
	return s
}

// Show targets the session's interactive terminal and discards any file
// output target. The plot window stays up as long as the engine process
// does, so keep the session open while the plot should be visible.
func (s *Session) Show() *Session {
	s.Send("set output")
	s.Send("set terminal " + s.terminal.String())
	return s
}

// SetOutput saves subsequent plots to a file using the session's
// terminal. Pair with a file-producing terminal such as TerminalPNGCairo
// or TerminalSVG.
func (s *Session) SetOutput(filename string) *Session {
	s.Send(fmt.Sprintf("set output %q", filename))
	s.Send("set terminal " + s.terminal.String())
	return s
}

// SetTitle sets the plot title.
func (s *Session) SetTitle(title string) *Session {
	return s.Send(fmt.Sprintf("set title %q", title))
}

// UnsetTitle clears the plot title.
func (s *Session) UnsetTitle() *Session {
	return s.SetTitle("")
}

// SetXLabel sets the x-axis label.
func (s *Session) SetXLabel(label string) *Session {
	return s.Send(fmt.Sprintf("set xlabel %q", label))
}

// SetYLabel sets the y-axis label.
func (s *Session) SetYLabel(label string) *Session {
	return s.Send(fmt.Sprintf("set ylabel %q", label))
}

// SetZLabel sets the z-axis label.
func (s *Session) SetZLabel(label string) *Session {
	return s.Send(fmt.Sprintf("set zlabel %q", label))
}

// SetXRange fixes the x-axis range.
func (s *Session) SetXRange(from, to float64) *Session {
	return s.Send(fmt.Sprintf("set xrange[%s:%s]", fmtFloat(from), fmtFloat(to)))
}

// SetYRange fixes the y-axis range.
func (s *Session) SetYRange(from, to float64) *Session {
	return s.Send(fmt.Sprintf("set yrange[%s:%s]", fmtFloat(from), fmtFloat(to)))
}

// SetZRange fixes the z-axis range.
func (s *Session) SetZRange(from, to float64) *Session {
	return s.Send(fmt.Sprintf("set zrange[%s:%s]", fmtFloat(from), fmtFloat(to)))
}

// SetCBRange fixes the palette color range.
func (s *Session) SetCBRange(from, to float64) *Session {
	return s.Send(fmt.Sprintf("set cbrange[%s:%s]", fmtFloat(from), fmtFloat(to)))
}

// SetXAutoscale restores automatic x-axis scaling.
func (s *Session) SetXAutoscale() *Session {
	s.Send("set xrange restore")
	return s.Send("set autoscale x")
}

// SetYAutoscale restores automatic y-axis scaling.
func (s *Session) SetYAutoscale() *Session {
	s.Send("set yrange restore")
	return s.Send("set autoscale y")
}

// SetZAutoscale restores automatic z-axis scaling.
func (s *Session) SetZAutoscale() *Session {
	s.Send("set zrange restore")
	return s.Send("set autoscale z")
}

// SetXLogScale enables logarithmic x-axis scaling with the given base.
func (s *Session) SetXLogScale(base float64) *Session {
	return s.Send("set logscale x " + fmtFloat(base))
}

// SetYLogScale enables logarithmic y-axis scaling with the given base.
func (s *Session) SetYLogScale(base float64) *Session {
	return s.Send("set logscale y " + fmtFloat(base))
}

// SetZLogScale enables logarithmic z-axis scaling with the given base.
func (s *Session) SetZLogScale(base float64) *Session {
	return s.Send("set logscale z " + fmtFloat(base))
}

// UnsetXLogScale restores linear x-axis scaling.
func (s *Session) UnsetXLogScale() *Session {
	return s.Send("unset logscale x")
}

// UnsetYLogScale restores linear y-axis scaling.
func (s *Session) UnsetYLogScale() *Session {
	return s.Send("unset logscale y")
}

// UnsetZLogScale restores linear z-axis scaling.
func (s *Session) UnsetZLogScale() *Session {
	return s.Send("unset logscale z")
}

// SetSamples sets the sampling rate for function plots and
// interpolation.
func (s *Session) SetSamples(samples int) *Session {
	return s.Send(fmt.Sprintf("set samples %d", samples))
}

// SetIsosamples sets the isoline density of 3D surface plots.
func (s *Session) SetIsosamples(isolines int) *Session {
	return s.Send(fmt.Sprintf("set isosamples %d", isolines))
}

// SetHidden3D enables hidden line removal for 3D surfaces.
func (s *Session) SetHidden3D() *Session {
	return s.Send("set hidden3d")
}

// UnsetHidden3D disables hidden line removal.
func (s *Session) UnsetHidden3D() *Session {
	return s.Send("unset hidden3d")
}

// SetSurface enables surface display in 3D plots.
func (s *Session) SetSurface() *Session {
	return s.Send("set surface")
}

// UnsetSurface disables surface display in 3D plots.
func (s *Session) UnsetSurface() *Session {
	return s.Send("unset surface")
}

// SetMultiplot enables multiplot mode, for several plots in one window.
func (s *Session) SetMultiplot() *Session {
	return s.Send("set multiplot")
}

// UnsetMultiplot disables multiplot mode.
func (s *Session) UnsetMultiplot() *Session {
	return s.Send("unset multiplot")
}

// SetOriginAndSize positions the plot area within the window. All values
// are fractions of the window size.
func (s *Session) SetOriginAndSize(xOrigin, yOrigin, width, height float64) *Session {
	s.Send(fmt.Sprintf("set origin %s,%s", fmtFloat(xOrigin), fmtFloat(yOrigin)))
	return s.Send(fmt.Sprintf("set size %s,%s", fmtFloat(width), fmtFloat(height)))
}

// Legend configures the plot key. Construct with NewLegend for the
// conventional defaults, then adjust fields before SetLegend.
type Legend struct {
	// Position is a gnuplot key position: a keyword like "top left" or
	// an explicit "graph 0.5, 0.5". Empty removes the legend.
	Position string
	// Font in "name,size" form, e.g. "Arial,12". Empty leaves the
	// engine default.
	Font string
	// Title above the legend entries. Empty for none.
	Title string
	// Box draws a border around the legend.
	Box bool
	// Spacing between legend entries.
	Spacing float64
	// Width of the legend box.
	Width float64
}

// NewLegend returns a legend at the given position with a box, unit
// spacing, and width 2.
func NewLegend(position string) Legend {
	return Legend{Position: position, Box: true, Spacing: 1, Width: 2}
}

// SetLegend applies the legend configuration. A legend with an empty
// position removes the key entirely.
func (s *Session) SetLegend(l Legend) *Session {
	if l.Position == "" {
		return s.Send("unset key")
	}

	var sb strings.Builder
	sb.WriteString("set key " + l.Position)
	if l.Title != "" {
		fmt.Fprintf(&sb, " title %q", l.Title)
	}
	if l.Font != "" {
		fmt.Fprintf(&sb, " font %q", l.Font)
	}
	if l.Box {
		sb.WriteString(" box")
	} else {
		sb.WriteString(" nobox")
	}
	if l.Spacing > 0 {
		sb.WriteString(" spacing " + fmtFloat(l.Spacing))
	}
	if l.Width > 0 {
		sb.WriteString(" width " + fmtFloat(l.Width))
	}
	return s.Send(sb.String())
}

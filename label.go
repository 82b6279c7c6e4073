package gnuplot

import (
	"fmt"
	"math"
	"strings"
)

// HAlign is the horizontal alignment of a label relative to its anchor
// point.
type HAlign int

const (
	// AlignCenter centers the label on the anchor (default).
	AlignCenter HAlign = iota
	// AlignLeft puts the anchor at the left edge of the label.
	AlignLeft
	// AlignRight puts the anchor at the right edge of the label.
	AlignRight
)

// BoxStyle describes the box drawn around a label. A label with a nil
// BoxStyle has no box.
type BoxStyle struct {
	// Opaque fills the box; a transparent box only draws its border.
	Opaque bool
	// FillColor is the box background.
	FillColor Color
	// Border draws an outline using BorderColor and LineWidth.
	Border      bool
	BorderColor Color
	LineWidth   float64
	// XMargin and YMargin pad the text inside the box.
	XMargin float64
	YMargin float64
}

// declaration renders the style-definition directive for the given
// textbox style id.
func (b *BoxStyle) declaration(id int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "set style textbox %d ", id)
	if b.Opaque {
		sb.WriteString("opaque")
	} else {
		sb.WriteString("transparent")
	}
	fmt.Fprintf(&sb, " fillcolor %q", b.FillColor.String())
	if b.Border {
		fmt.Fprintf(&sb, " border lc %q lw %s", b.BorderColor.String(), fmtFloat(b.LineWidth))
	}
	fmt.Fprintf(&sb, " margins %s,%s", fmtFloat(b.XMargin), fmtFloat(b.YMargin))
	return sb.String()
}

// Label places text at a point on the plot. Construct with NewLabel to
// get the conventional defaults, then adjust fields before AddLabel.
type Label struct {
	X, Y float64
	Text string

	// FontSize of the label text.
	FontSize float64
	// Color is passed to the engine verbatim, so both names ("black")
	// and hex strings work.
	Color string
	// OffsetX and OffsetY nudge the label in character units.
	OffsetX, OffsetY float64
	// Align is the horizontal alignment relative to (X, Y).
	Align HAlign
	// Rotation in degrees, counter-clockwise.
	Rotation float64
	// ShowPoint marks the anchor with a point.
	ShowPoint bool
	// Box, when non-nil, draws a styled box around the label. The box
	// style is declared under a fresh textbox-style ID before the label
	// directive references it.
	Box *BoxStyle
}

// NewLabel returns a label with the conventional defaults: 12pt black
// text, centered, unrotated, no point, no box.
func NewLabel(x, y float64, text string) Label {
	return Label{X: x, Y: y, Text: text, FontSize: 12, Color: "black"}
}

// AddLabel declares the label (and its box style, if any) on the engine.
func (s *Session) AddLabel(l Label) *Session {
	boxID := 0
	if l.Box != nil {
		boxID = s.textboxIDs.generate()
		s.Send(l.Box.declaration(boxID))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "set label %q at %s,%s", l.Text, fmtFloat(l.X), fmtFloat(l.Y))

	switch l.Align {
	case AlignLeft:
		sb.WriteString(" left")
	case AlignRight:
		sb.WriteString(" right")
	default:
		sb.WriteString(" center")
	}

	if math.Abs(l.Rotation) > 1e-6 {
		fmt.Fprintf(&sb, " rotate by %s", fmtFloat(l.Rotation))
	}

	fmt.Fprintf(&sb, " font \", %s\"", fmtFloat(l.FontSize))
	fmt.Fprintf(&sb, " textcolor rgb %q", l.Color)

	if l.ShowPoint {
		sb.WriteString(" point")
	} else {
		sb.WriteString(" nopoint")
	}

	if math.Abs(l.OffsetX) > 1e-6 || math.Abs(l.OffsetY) > 1e-6 {
		fmt.Fprintf(&sb, " offset %s,%s", fmtFloat(l.OffsetX), fmtFloat(l.OffsetY))
	}

	if l.Box != nil {
		fmt.Fprintf(&sb, " boxed bs %d", boxID)
	}

	return s.Send(sb.String())
}

// appendArrowStyle writes the line style clauses shared by the arrow
// helpers. Arrows default to black when no line color is set so they stay
// visible over the plot.
func (s *Session) appendArrowStyle(sb *strings.Builder) {
	if s.lineColor.IsSet() {
		fmt.Fprintf(sb, " lc rgbcolor %q", s.lineColor.String())
	} else {
		sb.WriteString(` lc rgbcolor "black"`)
	}
	if s.lineWidth > 0 {
		sb.WriteString(" lw " + fmtFloat(s.lineWidth))
	}
	if s.lineFrag != "" {
		sb.WriteString(" " + s.lineFrag)
	}
}

// PlotVerticalLine draws a headless vertical line spanning the full plot
// height at the given x position, using the current line style.
func (s *Session) PlotVerticalLine(x float64) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set arrow from %s, graph 0 to %s, graph 1 nohead", fmtFloat(x), fmtFloat(x))
	s.appendArrowStyle(&sb)
	return s.Send(sb.String())
}

// PlotHorizontalLine draws a headless horizontal line spanning the full
// plot width at the given y position, using the current line style.
func (s *Session) PlotHorizontalLine(y float64) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set arrow from graph 0, first %s to graph 1, first %s nohead",
		fmtFloat(y), fmtFloat(y))
	s.appendArrowStyle(&sb)
	return s.Send(sb.String())
}

// PlotVerticalRange draws a headless vertical segment from yMin to yMax
// at the given x position, using the current line style.
func (s *Session) PlotVerticalRange(x, yMin, yMax float64) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set arrow from %s, first %s to %s, first %s nohead",
		fmtFloat(x), fmtFloat(yMin), fmtFloat(x), fmtFloat(yMax))
	s.appendArrowStyle(&sb)
	return s.Send(sb.String())
}

// PlotHorizontalRange draws a headless horizontal segment from xMin to
// xMax at the given y position, using the current line style.
func (s *Session) PlotHorizontalRange(y, xMin, xMax float64) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "set arrow from %s, first %s to %s, first %s nohead",
		fmtFloat(xMin), fmtFloat(y), fmtFloat(xMax), fmtFloat(y))
	s.appendArrowStyle(&sb)
	return s.Send(sb.String())
}

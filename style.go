package gnuplot

import "strconv"

// PlotStyle selects how the engine renders a data series.
type PlotStyle int

const (
	// StyleDefault lets the engine fall back to lines.
	StyleDefault PlotStyle = iota
	// StyleLines connects data points with lines.
	StyleLines
	// StylePoints draws individual markers.
	StylePoints
	// StyleLinesPoints connects data points and marks them.
	StyleLinesPoints
	// StyleImpulses draws vertical lines from the x-axis to each point.
	StyleImpulses
	// StyleDots draws minimal dots.
	StyleDots
	// StyleSteps connects points with horizontal-then-vertical steps.
	StyleSteps
	// StyleFSteps connects points with vertical-then-horizontal steps.
	StyleFSteps
	// StyleHiSteps draws histogram-like steps centered on each point.
	StyleHiSteps
	// StyleBoxes draws a box for each point.
	StyleBoxes
	// StyleFilledCurves fills the area under the curve.
	StyleFilledCurves
	// StyleHistograms draws clustered histograms.
	StyleHistograms
)

// String returns the directive keyword for the style.
func (s PlotStyle) String() string {
	switch s {
	case StylePoints:
		return "points"
	case StyleLinesPoints:
		return "linespoints"
	case StyleImpulses:
		return "impulses"
	case StyleDots:
		return "dots"
	case StyleSteps:
		return "steps"
	case StyleFSteps:
		return "fsteps"
	case StyleHiSteps:
		return "histeps"
	case StyleBoxes:
		return "boxes"
	case StyleFilledCurves:
		return "filledcurves"
	case StyleHistograms:
		return "histograms"
	default:
		return "lines"
	}
}

// supportsLine reports whether the style renders connecting lines, so
// line width and dash clauses are meaningful.
func (s PlotStyle) supportsLine() bool {
	switch s {
	case StyleLines, StyleLinesPoints, StyleSteps, StyleFSteps,
		StyleHiSteps, StyleFilledCurves, StyleImpulses:
		return true
	}
	return false
}

// supportsPoint reports whether the style renders markers, so point type
// and size clauses are meaningful.
func (s PlotStyle) supportsPoint() bool {
	return s == StylePoints || s == StyleLinesPoints
}

// SmoothStyle selects the interpolation applied to a series. Smoothing
// and an explicit plot style are mutually exclusive within one directive;
// when smoothing is enabled it replaces the "with" clause.
type SmoothStyle int

const (
	// SmoothNone disables smoothing (default).
	SmoothNone SmoothStyle = iota
	// SmoothUnique averages points sharing an x value.
	SmoothUnique
	// SmoothFrequency sums points sharing an x value.
	SmoothFrequency
	// SmoothCSplines interpolates with natural cubic splines.
	SmoothCSplines
	// SmoothACSplines approximates with weighted cubic splines.
	SmoothACSplines
	// SmoothBezier approximates with a Bezier curve.
	SmoothBezier
	// SmoothSBezier renders a Bezier after unique preprocessing.
	SmoothSBezier
)

// String returns the directive keyword for the smoothing style, or ""
// for SmoothNone.
func (s SmoothStyle) String() string {
	switch s {
	case SmoothUnique:
		return "unique"
	case SmoothFrequency:
		return "frequency"
	case SmoothCSplines:
		return "csplines"
	case SmoothACSplines:
		return "acsplines"
	case SmoothBezier:
		return "bezier"
	case SmoothSBezier:
		return "sbezier"
	default:
		return ""
	}
}

// PointType selects the marker shape for point-rendering styles. The
// values follow gnuplot's numbered point types.
type PointType int

const (
	// PointNone draws no visible marker.
	PointNone PointType = iota
	// PointPlus draws a plus shape.
	PointPlus
	// PointCross draws a multiplication cross.
	PointCross
	// PointAsterisk draws an asterisk.
	PointAsterisk
	// PointOpenSquare draws an outlined square.
	PointOpenSquare
	// PointFilledSquare draws a filled square.
	PointFilledSquare
	// PointOpenCircle draws an outlined circle.
	PointOpenCircle
	// PointFilledCircle draws a filled circle.
	PointFilledCircle
	// PointOpenTriangle draws an outlined triangle.
	PointOpenTriangle
	// PointFilledTriangle draws a filled triangle.
	PointFilledTriangle
	// PointOpenInvTriangle draws an outlined inverted triangle.
	PointOpenInvTriangle
	// PointFilledInvTriangle draws a filled inverted triangle.
	PointFilledInvTriangle
	// PointOpenDiamond draws an outlined diamond.
	PointOpenDiamond
	// PointFilledDiamond draws a filled diamond.
	PointFilledDiamond
)

// String returns the numeric marker code the engine expects.
func (p PointType) String() string {
	return strconv.Itoa(int(p))
}

// ErrorBarStyle selects the error bar axis for PlotXYErrorbars.
type ErrorBarStyle int

const (
	// YErrorBars draws error bars along the y-axis.
	YErrorBars ErrorBarStyle = iota
	// XErrorBars draws error bars along the x-axis.
	XErrorBars
)

// String returns the directive keyword for the error bar style.
func (e ErrorBarStyle) String() string {
	if e == XErrorBars {
		return "xerrorbars"
	}
	return "yerrorbars"
}

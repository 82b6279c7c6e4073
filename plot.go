package gnuplot

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// fmtFloat renders a float the way the engine reads it back: shortest
// representation, no trailing zeros, so 2.0 prints as "2".
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeRows acquires a scratch file and serializes rows into it through
// write. The path is tracked for cleanup as soon as the file exists, so a
// partially-written file from a failed write is still deleted on Close.
func (s *Session) writeRows(write func(w *bufio.Writer) error) (string, error) {
	sf, err := s.pool.acquire()
	if err != nil {
		return "", err
	}
	s.files = append(s.files, sf.path)

	w := bufio.NewWriter(sf.file)
	if err := write(w); err != nil {
		sf.file.Close()
		return "", fmt.Errorf("%w: write %s: %v", ErrIO, sf.path, err)
	}
	if err := w.Flush(); err != nil {
		sf.file.Close()
		return "", fmt.Errorf("%w: flush %s: %v", ErrIO, sf.path, err)
	}
	if err := sf.file.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", ErrIO, sf.path, err)
	}
	if _, err := os.Stat(sf.path); err != nil {
		return "", fmt.Errorf("%w: %s not readable after write: %v", ErrIO, sf.path, err)
	}
	return sf.path, nil
}

// appendTitle writes the title clause: a quoted title, or the explicit
// no-title marker for an empty one.
func appendTitle(sb *strings.Builder, title string) {
	if title == "" {
		sb.WriteString(" notitle")
		return
	}
	fmt.Fprintf(sb, " title %q", title)
}

// appendStyle writes the style clauses read from the session's current
// state. Smoothing replaces the plot-style clause entirely; line and
// point fragments are emitted only for plot styles they are meaningful
// for, leaving the stored values intact for future styles that use them.
func (s *Session) appendStyle(sb *strings.Builder) {
	if s.smooth != SmoothNone {
		sb.WriteString(" smooth " + s.smooth.String())
	} else {
		sb.WriteString(" with " + s.plotStyle.String())
	}
	if s.lineColor.IsSet() {
		fmt.Fprintf(sb, " lc rgbcolor %q", s.lineColor.String())
	}
	if s.plotStyle.supportsLine() {
		if s.lineWidth > 0 {
			sb.WriteString(" lw " + fmtFloat(s.lineWidth))
		}
		if s.lineFrag != "" {
			sb.WriteString(" " + s.lineFrag)
		}
	}
	if s.plotStyle.supportsPoint() {
		sb.WriteString(" pt " + s.pointType.String())
		if s.pointSize > 0 {
			sb.WriteString(" ps " + fmtFloat(s.pointSize))
		}
	}
}

// PlotX plots a single series against its sample index.
func (s *Session) PlotX(x []float64, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(x) == 0 {
		s.fail(fmt.Errorf("%w: empty series", ErrValidation))
		return s
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for _, v := range x {
			if _, err := fmt.Fprintf(w, "%s\n", fmtFloat(v)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	fmt.Fprintf(&sb, " %q using 1", path)
	appendTitle(&sb, title)
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotMultiX plots several series against their sample indices in a
// single directive. titles may be empty; otherwise it must have one entry
// per series (empty entries mean no title for that series).
func (s *Session) PlotMultiX(datasets [][]float64, titles []string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(datasets) == 0 {
		s.fail(fmt.Errorf("%w: no series", ErrValidation))
		return s
	}
	if len(titles) != 0 && len(titles) != len(datasets) {
		s.fail(fmt.Errorf("%w: %d series but %d titles", ErrValidation, len(datasets), len(titles)))
		return s
	}
	for i, d := range datasets {
		if len(d) == 0 {
			s.fail(fmt.Errorf("%w: series %d is empty", ErrValidation, i+1))
			return s
		}
	}

	paths := make([]string, 0, len(datasets))
	for _, d := range datasets {
		data := d
		path, err := s.writeRows(func(w *bufio.Writer) error {
			for _, v := range data {
				if _, err := fmt.Fprintf(w, "%s\n", fmtFloat(v)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			s.fail(err)
			return s
		}
		paths = append(paths, path)
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	for i, path := range paths {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %q using 1", path)
		if len(titles) == 0 {
			appendTitle(&sb, "")
		} else {
			appendTitle(&sb, titles[i])
		}
		s.appendStyle(&sb)
	}
	return s.Send(sb.String())
}

// PlotXY plots paired series. x and y must be non-empty and the same
// length.
func (s *Session) PlotXY(x, y []float64, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(x) == 0 || len(y) == 0 {
		s.fail(fmt.Errorf("%w: empty series", ErrValidation))
		return s
	}
	if len(x) != len(y) {
		s.fail(fmt.Errorf("%w: x has %d samples, y has %d", ErrValidation, len(x), len(y)))
		return s
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for i := range x {
			if _, err := fmt.Fprintf(w, "%s %s\n", fmtFloat(x[i]), fmtFloat(y[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	fmt.Fprintf(&sb, " %q using 1:2", path)
	appendTitle(&sb, title)
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotXYErrorbars plots paired series with per-sample error values. The
// three series must be non-empty and the same length.
func (s *Session) PlotXYErrorbars(x, y, dy []float64, style ErrorBarStyle, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(x) == 0 || len(y) == 0 || len(dy) == 0 {
		s.fail(fmt.Errorf("%w: empty series", ErrValidation))
		return s
	}
	if len(x) != len(y) || len(x) != len(dy) {
		s.fail(fmt.Errorf("%w: x has %d samples, y has %d, dy has %d",
			ErrValidation, len(x), len(y), len(dy)))
		return s
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for i := range x {
			if _, err := fmt.Fprintf(w, "%s %s %s\n",
				fmtFloat(x[i]), fmtFloat(y[i]), fmtFloat(dy[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	// Error bars fix the rendering style themselves, so the style clause
	// carries the error bar keyword instead of the session's plot style.
	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	fmt.Fprintf(&sb, " %q using 1:2:3 with %s", path, style.String())
	appendTitle(&sb, title)
	if s.lineColor.IsSet() {
		fmt.Fprintf(&sb, " lc rgbcolor %q", s.lineColor.String())
	}
	if s.lineWidth > 0 {
		sb.WriteString(" lw " + fmtFloat(s.lineWidth))
	}
	if s.lineFrag != "" {
		sb.WriteString(" " + s.lineFrag)
	}
	sb.WriteString(" pt " + s.pointType.String())
	if s.pointSize > 0 {
		sb.WriteString(" ps " + fmtFloat(s.pointSize))
	}
	return s.Send(sb.String())
}

// PlotXYZ plots triples as a 3D scatter or line. The three series must be
// non-empty and the same length.
func (s *Session) PlotXYZ(x, y, z []float64, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(x) == 0 || len(y) == 0 || len(z) == 0 {
		s.fail(fmt.Errorf("%w: empty series", ErrValidation))
		return s
	}
	if len(x) != len(y) || len(x) != len(z) {
		s.fail(fmt.Errorf("%w: x has %d samples, y has %d, z has %d",
			ErrValidation, len(x), len(y), len(z)))
		return s
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for i := range x {
			if _, err := fmt.Fprintf(w, "%s %s %s\n",
				fmtFloat(x[i]), fmtFloat(y[i]), fmtFloat(z[i])); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(true))
	fmt.Fprintf(&sb, " %q using 1:2:3", path)
	appendTitle(&sb, title)
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotGrid3D plots a surface sampled on a rectangular grid: z[i][j] is
// the value at (x[i], y[j]). Every row of z must have exactly len(y)
// samples. Rows sharing an x value are written as blank-line-separated
// blocks, which tells the engine the data is a non-uniform grid.
func (s *Session) PlotGrid3D(x, y []float64, z [][]float64, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	if len(x) == 0 || len(y) == 0 || len(z) == 0 {
		s.fail(fmt.Errorf("%w: empty grid", ErrValidation))
		return s
	}
	if len(z) != len(x) {
		s.fail(fmt.Errorf("%w: z has %d rows, x has %d samples", ErrValidation, len(z), len(x)))
		return s
	}
	for i, row := range z {
		if len(row) != len(y) {
			s.fail(fmt.Errorf("%w: z row %d has %d samples, y has %d",
				ErrValidation, i+1, len(row), len(y)))
			return s
		}
	}

	path, err := s.writeRows(func(w *bufio.Writer) error {
		for i := range x {
			for j := range y {
				if _, err := fmt.Fprintf(w, "%s %s %s\n",
					fmtFloat(x[i]), fmtFloat(y[j]), fmtFloat(z[i][j])); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.fail(err)
		return s
	}

	var sb strings.Builder
	sb.WriteString(s.drawVerb(true))
	fmt.Fprintf(&sb, " %q using 1:2:3", path)
	appendTitle(&sb, title)
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotSlope plots the line y = a*x + b. With an empty title the equation
// itself becomes the title.
func (s *Session) PlotSlope(a, b float64, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	fmt.Fprintf(&sb, " %s * x + %s", fmtFloat(a), fmtFloat(b))
	if title == "" {
		fmt.Fprintf(&sb, " title \"f(x) = %s * x + %s\"", fmtFloat(a), fmtFloat(b))
	} else {
		fmt.Fprintf(&sb, " title %q", title)
	}
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotEquation plots a 2D expression in x, e.g. "sin(x)". The expression
// text is passed to the engine verbatim in place of a data-source clause.
func (s *Session) PlotEquation(equation, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	sb.WriteString(s.drawVerb(false))
	sb.WriteString(" " + equation)
	appendTitle(&sb, title)
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// PlotEquation3D plots a surface expression in x and y, e.g. "x*x + y*y".
// With an empty title the equation itself becomes the title.
func (s *Session) PlotEquation3D(equation, title string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}
	var sb strings.Builder
	sb.WriteString(s.drawVerb(true))
	sb.WriteString(" " + equation)
	if title == "" {
		fmt.Fprintf(&sb, " title \"f(x, y) = %s\"", equation)
	} else {
		fmt.Fprintf(&sb, " title %q", title)
	}
	s.appendStyle(&sb)
	return s.Send(sb.String())
}

// Replot repeats the last draw directive, picking up configuration
// changes made since. A no-op before the first plot.
func (s *Session) Replot() *Session {
	if s.nplots > 0 {
		s.Send("replot")
	}
	return s
}

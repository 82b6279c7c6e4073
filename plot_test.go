package gnuplot

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestPlotXYDirectiveShape(t *testing.T) {
	s, p := testSession(t)
	s.SetLineColor("red").SetPlotStyle(StyleLines).SetLineWidth(2)

	s.PlotXY([]float64{0, 1, 2}, []float64{0, 1, 4}, "p")

	got := p.lines()
	if len(got) != 1 {
		t.Fatalf("sent %d directives, want 1: %v", len(got), got)
	}
	want := regexp.MustCompile(`^plot "[^"]+" using 1:2 title "p" with lines lc rgbcolor "#ff0000" lw 2$`)
	if !want.MatchString(got[0]) {
		t.Errorf("directive = %q, want match for %s", got[0], want)
	}
}

func TestPlotXYWritesWhitespaceColumns(t *testing.T) {
	s, _ := testSession(t)

	s.PlotXY([]float64{0, 1, 2}, []float64{0, 1, 4}, "p")

	if len(s.files) != 1 {
		t.Fatalf("tracked %d scratch files, want 1", len(s.files))
	}
	data, err := os.ReadFile(s.files[0])
	if err != nil {
		t.Fatalf("read scratch file: %v", err)
	}
	if got := string(data); got != "0 0\n1 1\n2 4\n" {
		t.Errorf("scratch content = %q, want one whitespace-separated row per sample", got)
	}
}

func TestPlotValidationSendsNothing(t *testing.T) {
	tests := []struct {
		name string
		call func(*Session) *Session
	}{
		{"empty x", func(s *Session) *Session { return s.PlotX(nil, "") }},
		{"xy mismatched", func(s *Session) *Session {
			return s.PlotXY([]float64{1, 2}, []float64{1}, "")
		}},
		{"xy empty y", func(s *Session) *Session {
			return s.PlotXY([]float64{1, 2}, nil, "")
		}},
		{"errorbars mismatched", func(s *Session) *Session {
			return s.PlotXYErrorbars([]float64{1, 2}, []float64{1, 2}, []float64{1}, YErrorBars, "")
		}},
		{"xyz mismatched", func(s *Session) *Session {
			return s.PlotXYZ([]float64{1}, []float64{1, 2}, []float64{1}, "")
		}},
		{"grid row count", func(s *Session) *Session {
			return s.PlotGrid3D([]float64{1, 2}, []float64{1}, [][]float64{{1}}, "")
		}},
		{"grid row width", func(s *Session) *Session {
			return s.PlotGrid3D([]float64{1}, []float64{1, 2}, [][]float64{{1}}, "")
		}},
		{"multi title mismatch", func(s *Session) *Session {
			return s.PlotMultiX([][]float64{{1}, {2}}, []string{"only one"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := testSession(t)
			tt.call(s)
			if p.Len() != 0 {
				t.Errorf("validation failure still sent %q", p.String())
			}
			if !errors.Is(s.Err(), ErrValidation) {
				t.Errorf("Err() = %v, want ErrValidation", s.Err())
			}
			if s.nplots != 0 {
				t.Errorf("nplots = %d, want 0 (state unchanged)", s.nplots)
			}
			if s.pool.Live() != 0 {
				t.Errorf("live scratch files = %d, want 0", s.pool.Live())
			}
		})
	}
}

func TestDrawVerbSequence(t *testing.T) {
	s, p := testSession(t)
	x := []float64{0, 1}
	y := []float64{1, 2}
	z := []float64{2, 3}

	s.PlotXY(x, y, "")  // fresh 2D
	s.PlotXY(x, y, "")  // same mode: continuation
	s.PlotXYZ(x, y, z, "") // mode switch: fresh 3D
	s.PlotXYZ(x, y, z, "") // same mode: continuation
	s.PlotXY(x, y, "")  // switch back: fresh 2D

	var verbs []string
	for _, line := range p.lines() {
		verbs = append(verbs, strings.Fields(line)[0])
	}
	want := []string{"plot", "replot", "splot", "replot", "plot"}
	if len(verbs) != len(want) {
		t.Fatalf("verbs = %v, want %v", verbs, want)
	}
	for i := range want {
		if verbs[i] != want[i] {
			t.Errorf("directive %d verb = %q, want %q", i+1, verbs[i], want[i])
		}
	}
	if s.PlotCount() != 3 {
		t.Errorf("PlotCount() = %d, want 3 fresh plots", s.PlotCount())
	}
}

func TestSmoothingReplacesStyleClause(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLines).SetSmoothStyle(SmoothCSplines)

	s.PlotXY([]float64{0, 1}, []float64{1, 2}, "")

	got := p.lines()[0]
	if !strings.Contains(got, " smooth csplines") {
		t.Errorf("directive %q missing smoothing clause", got)
	}
	if strings.Contains(got, " with ") {
		t.Errorf("directive %q has both smoothing and a style clause", got)
	}
}

func TestPointStyleClauses(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLinesPoints).
		SetPointType(PointFilledCircle).
		SetPointSize(1.5)

	s.PlotXY([]float64{0, 1}, []float64{1, 2}, "")

	got := p.lines()[0]
	if !strings.Contains(got, " pt 7 ps 1.5") {
		t.Errorf("directive %q missing marker clauses", got)
	}
}

func TestPlotXTitleClauses(t *testing.T) {
	s, p := testSession(t)

	s.PlotX([]float64{1, 2, 3}, "")
	s.PlotX([]float64{1, 2, 3}, "named")

	got := p.lines()
	if !strings.Contains(got[0], " notitle") {
		t.Errorf("untitled directive = %q, want explicit notitle marker", got[0])
	}
	if !strings.Contains(got[1], ` title "named"`) {
		t.Errorf("titled directive = %q", got[1])
	}
}

func TestPlotGrid3DWritesBlankSeparatedBlocks(t *testing.T) {
	s, _ := testSession(t)
	x := []float64{0, 1}
	y := []float64{10, 20, 30}
	z := [][]float64{{1, 2, 3}, {4, 5, 6}}

	s.PlotGrid3D(x, y, z, "")

	data, err := os.ReadFile(s.files[0])
	if err != nil {
		t.Fatalf("read scratch file: %v", err)
	}
	want := "0 10 1\n0 20 2\n0 30 3\n\n1 10 4\n1 20 5\n1 30 6\n\n"
	if string(data) != want {
		t.Errorf("grid file = %q, want blank-line separated blocks %q", data, want)
	}
}

func TestPlotEquationUsesLiteralExpression(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLines)

	s.PlotEquation("sin(x)", "wave")

	got := p.lines()[0]
	if !strings.HasPrefix(got, `plot sin(x) title "wave"`) {
		t.Errorf("directive = %q, want literal expression with no file clause", got)
	}
	if len(s.files) != 0 {
		t.Errorf("equation plot created %d scratch files, want 0", len(s.files))
	}
}

func TestPlotEquation3DDefaultTitle(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLines)

	s.PlotEquation3D("x*x + y*y", "")

	got := p.lines()[0]
	if !strings.HasPrefix(got, `splot x*x + y*y title "f(x, y) = x*x + y*y"`) {
		t.Errorf("directive = %q", got)
	}
}

func TestPlotSlopeDefaultTitle(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLines)

	s.PlotSlope(2, 0.5, "")

	got := p.lines()[0]
	if !strings.HasPrefix(got, `plot 2 * x + 0.5 title "f(x) = 2 * x + 0.5"`) {
		t.Errorf("directive = %q", got)
	}
}

func TestPlotXYErrorbarsDirective(t *testing.T) {
	s, p := testSession(t)
	s.SetLineColor("blue").SetLineWidth(1)

	s.PlotXYErrorbars([]float64{0, 1}, []float64{1, 2}, []float64{0.1, 0.2}, YErrorBars, "e")

	got := p.lines()[0]
	want := regexp.MustCompile(`^plot "[^"]+" using 1:2:3 with yerrorbars title "e" lc rgbcolor "#0000ff" lw 1 pt 1$`)
	if !want.MatchString(got) {
		t.Errorf("directive = %q, want match for %s", got, want)
	}
}

func TestPlotMultiXJoinsClauses(t *testing.T) {
	s, p := testSession(t)
	s.SetPlotStyle(StyleLines)

	s.PlotMultiX([][]float64{{1, 2}, {3, 4}}, []string{"a", "b"})

	got := p.lines()
	if len(got) != 1 {
		t.Fatalf("sent %d directives, want one combined plot", len(got))
	}
	want := regexp.MustCompile(`^plot "[^"]+" using 1 title "a" with lines, "[^"]+" using 1 title "b" with lines$`)
	if !want.MatchString(got[0]) {
		t.Errorf("directive = %q, want match for %s", got[0], want)
	}
	if len(s.files) != 2 {
		t.Errorf("tracked %d scratch files, want 2", len(s.files))
	}
}

func TestReplotBeforeFirstPlotIsNoOp(t *testing.T) {
	s, p := testSession(t)

	s.Replot()

	if p.Len() != 0 {
		t.Errorf("Replot before any plot sent %q", p.String())
	}
}

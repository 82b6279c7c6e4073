package gnuplot

import (
	"strings"
	"testing"
)

func TestSetGridLineStyleDeclaresStyle(t *testing.T) {
	s, p := testSession(t)

	s.SetGridLineStyle(GridMajor, LineDashed, ParseColor("gray"), 1.5, "")

	got := p.lines()
	if len(got) != 1 {
		t.Fatalf("sent %v", got)
	}
	want := `set style line 1 lt 1 dt (50, 25) lc rgb "#808080" lw 1.5`
	if got[0] != want {
		t.Errorf("directive = %q, want %q", got[0], want)
	}
}

func TestSetGridLineStyleReusesClassID(t *testing.T) {
	s, p := testSession(t)

	s.SetGridLineStyle(GridMajor, LineSolid, Color{}, 1, "")
	s.SetGridLineStyle(GridMajor, LineDotted, Color{}, 2, "")

	got := p.lines()
	if !strings.HasPrefix(got[0], "set style line 1 ") ||
		!strings.HasPrefix(got[1], "set style line 1 ") {
		t.Errorf("redefinition changed the style ID: %v", got)
	}
}

func TestSetGridLineStyleAllocatesDistinctClassIDs(t *testing.T) {
	s, p := testSession(t)

	s.SetGridLineStyle(GridMajor, LineSolid, Color{}, 1, "")
	s.SetGridLineStyle(GridMinor, LineDotted, Color{}, 1, "")

	got := p.lines()
	if !strings.HasPrefix(got[0], "set style line 1 ") ||
		!strings.HasPrefix(got[1], "set style line 2 ") {
		t.Errorf("class IDs not distinct: %v", got)
	}
}

func TestApplyGridReferencesOnlyDeclaredClasses(t *testing.T) {
	t.Run("no styles", func(t *testing.T) {
		s, p := testSession(t)
		s.ApplyGrid("", "", true)
		if got := p.lines()[0]; got != "set grid xtics ytics" {
			t.Errorf("directive = %q", got)
		}
	})

	t.Run("major only", func(t *testing.T) {
		s, p := testSession(t)
		s.SetGridLineStyle(GridMajor, LineSolid, Color{}, 1, "")
		s.ApplyGrid("", "back", true)
		if got := p.lines()[1]; got != "set grid xtics ytics back ls 1" {
			t.Errorf("directive = %q", got)
		}
	})

	t.Run("both classes without verticals", func(t *testing.T) {
		s, p := testSession(t)
		s.SetGridLineStyle(GridMajor, LineSolid, Color{}, 1, "")
		s.SetGridLineStyle(GridMinor, LineDotted, Color{}, 1, "")
		s.ApplyGrid("ztics", "front", false)
		if got := p.lines()[2]; got != "set grid ztics front ls 1 , ls 2 novertical" {
			t.Errorf("directive = %q", got)
		}
	})
}

func TestTicSettersValidate(t *testing.T) {
	s, p := testSession(t)

	s.SetXTicsMajor(0.5).SetYTicsMajor(2).SetXTicsMinor(5).SetYTicsMinor(4)

	got := p.lines()
	want := []string{"set xtics 0.5", "set ytics 2", "set mxtics 5", "set mytics 4"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directive %d = %q, want %q", i+1, got[i], want[i])
		}
	}

	before := p.Len()
	s.SetXTicsMajor(0).SetYTicsMinor(-1)
	if p.Len() != before {
		t.Error("invalid tic settings sent directives")
	}
	if s.Err() == nil {
		t.Error("Err() = nil, want a validation error")
	}
}

package gnuplot

import (
	"testing"
)

func TestApplyContourLevels(t *testing.T) {
	s, p := testSession(t)

	s.SetContourType(ContourBase).SetContourLevels(15).ApplyContourSettings()

	got := p.lines()
	want := []string{"set contour base", "set cntrparam levels 15"}
	if len(got) != len(want) {
		t.Fatalf("sent %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("directive %d = %q, want %q", i+1, got[i], want[i])
		}
	}
}

func TestApplyContourDefaultsToTenLevels(t *testing.T) {
	s, p := testSession(t)

	s.SetContourType(ContourSurface).ApplyContourSettings()

	got := p.lines()
	if len(got) != 2 || got[1] != "set cntrparam levels 10" {
		t.Errorf("sent %v, want a default level count of 10", got)
	}
}

func TestApplyContourIncrement(t *testing.T) {
	s, p := testSession(t)

	s.SetContourType(ContourBoth).
		SetContourParam(ContourIncrement).
		SetContourIncrement(0, 0.5, 4).
		ApplyContourSettings()

	got := p.lines()
	if len(got) != 2 || got[0] != "set contour both" {
		t.Fatalf("sent %v", got)
	}
	if got[1] != "set cntrparam increment 0,0.5,4" {
		t.Errorf("increment directive = %q", got[1])
	}
}

func TestApplyContourDiscrete(t *testing.T) {
	s, p := testSession(t)

	s.SetContourType(ContourBase).
		SetContourParam(ContourDiscrete).
		SetContourDiscreteLevels([]float64{0.25, 1, 2.5}).
		ApplyContourSettings()

	got := p.lines()
	if got[1] != "set cntrparam level discrete 0.25, 1, 2.5" {
		t.Errorf("discrete directive = %q", got[1])
	}
}

func TestApplyContourNoneUnsetsAndStops(t *testing.T) {
	s, p := testSession(t)

	s.SetContourLevels(5).ApplyContourSettings()

	got := p.lines()
	if len(got) != 1 || got[0] != "unset contour" {
		t.Errorf("sent %v, want a single unset directive", got)
	}
}

func TestSetContourLevelsRejectsNonPositive(t *testing.T) {
	s, p := testSession(t)

	s.SetContourLevels(0)

	if p.Len() != 0 {
		t.Errorf("invalid level count sent %q", p.String())
	}
	if s.Err() == nil {
		t.Error("Err() = nil, want a validation error")
	}
}

package gnuplot

import (
	"fmt"
	"strings"
)

// ContourType selects where contour lines are drawn in 3D plots.
type ContourType int

const (
	// ContourNone disables contouring.
	ContourNone ContourType = iota
	// ContourBase draws contours on the XY plane.
	ContourBase
	// ContourSurface draws contours on the surface itself.
	ContourSurface
	// ContourBoth draws contours on both.
	ContourBoth
)

// ContourParam selects which of the three mutually exclusive level
// specifications ApplyContourSettings emits.
type ContourParam int

const (
	// ContourLevels requests a fixed number of evenly chosen levels.
	ContourLevels ContourParam = iota
	// ContourIncrement requests levels from start to end in steps.
	ContourIncrement
	// ContourDiscrete requests an explicit list of levels.
	ContourDiscrete
)

// contourConfig accumulates pending contour settings. Nothing is sent to
// the engine until ApplyContourSettings.
type contourConfig struct {
	typ            ContourType
	param          ContourParam
	levels         int
	incrementStart float64
	incrementStep  float64
	incrementEnd   float64
	discreteLevels []float64
}

// SetContourType records where contours should be drawn. Takes effect on
// the next ApplyContourSettings.
func (s *Session) SetContourType(t ContourType) *Session {
	s.contour.typ = t
	return s
}

// SetContourParam records which level specification to use.
func (s *Session) SetContourParam(p ContourParam) *Session {
	s.contour.param = p
	return s
}

// SetContourLevels records the level count for ContourLevels.
// Non-positive counts are ignored.
func (s *Session) SetContourLevels(levels int) *Session {
	if levels <= 0 {
		s.fail(fmt.Errorf("%w: contour level count %d must be positive", ErrValidation, levels))
		return s
	}
	s.contour.levels = levels
	return s
}

// SetContourIncrement records the start, step, and end for
// ContourIncrement.
func (s *Session) SetContourIncrement(start, step, end float64) *Session {
	s.contour.incrementStart = start
	s.contour.incrementStep = step
	s.contour.incrementEnd = end
	return s
}

// SetContourDiscreteLevels records the explicit level list for
// ContourDiscrete.
func (s *Session) SetContourDiscreteLevels(levels []float64) *Session {
	s.contour.discreteLevels = levels
	return s
}

// ApplyContourSettings sends the pending contour configuration. It emits
// the contour-type directive first; for a disabled contour that is an
// explicit unset and nothing further. Otherwise exactly one level
// directive follows, chosen by the recorded parameter mode.
func (s *Session) ApplyContourSettings() *Session {
	switch s.contour.typ {
	case ContourBase:
		s.Send("set contour base")
	case ContourSurface:
		s.Send("set contour surface")
	case ContourBoth:
		s.Send("set contour both")
	case ContourNone:
		s.Send("unset contour")
		return s
	}

	switch s.contour.param {
	case ContourLevels:
		levels := s.contour.levels
		if levels <= 0 {
			levels = 10
		}
		s.Send(fmt.Sprintf("set cntrparam levels %d", levels))
	case ContourIncrement:
		s.Send(fmt.Sprintf("set cntrparam increment %s,%s,%s",
			fmtFloat(s.contour.incrementStart),
			fmtFloat(s.contour.incrementStep),
			fmtFloat(s.contour.incrementEnd)))
	case ContourDiscrete:
		var sb strings.Builder
		sb.WriteString("set cntrparam level discrete")
		for i, v := range s.contour.discreteLevels {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(" " + fmtFloat(v))
		}
		s.Send(sb.String())
	}
	return s
}

// UnsetContour disables contour drawing immediately, without touching the
// pending configuration.
func (s *Session) UnsetContour() *Session {
	return s.Send("unset contour")
}

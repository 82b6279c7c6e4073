package gnuplot

import (
	"fmt"
	"strings"
)

// Session is a live handle to one external gnuplot process. It owns the
// write-only command pipe, the scratch files created for its plots, and
// the mutable style state applied to every subsequent plot call.
//
// A Session must not be copied and is not safe for concurrent use.
type Session struct {
	pipe  pipe
	valid bool

	debug    bool
	terminal Terminal
	pool     *ScratchPool

	// Dimensionality tracking. twoDim and nplots advance only when a
	// fresh draw verb is successfully sent; continuation and
	// configuration directives leave them alone.
	twoDim bool
	nplots int

	// Style state, read by the plot operations and mutated only by the
	// explicit setters.
	plotStyle PlotStyle
	smooth    SmoothStyle
	lineColor Color
	lineWidth float64 // unset when <= 0
	lineFrag  string  // rendered dash fragment, "" when unset
	pointType PointType
	pointSize float64 // unset when <= 0

	contour contourConfig

	gridMajorID int // 0 until a major grid line style is declared
	gridMinorID int // 0 until a minor grid line style is declared

	lineStyleIDs *idAllocator
	textboxIDs   *idAllocator

	files []string // scratch paths to delete on Close
	err   error    // last recorded failure
}

// New locates the gnuplot executable, spawns it, and returns a ready
// session. It fails with an error wrapping [ErrSessionUnavailable] when
// the executable cannot be found, the pipe cannot be opened, or the
// platform needs a display context that is absent.
func New(opts ...Option) (*Session, error) {
	var o options
	o.terminal = TerminalWxt
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		terminal:     o.terminal,
		debug:        o.debug,
		pool:         o.pool,
		plotStyle:    StyleDefault,
		pointType:    PointPlus,
		lineStyleIDs: newIDAllocator(),
		textboxIDs:   newIDAllocator(),
	}
	if s.pool == nil {
		if o.scratchDir != "" {
			s.pool = NewScratchPool(o.scratchDir, 0)
		} else {
			s.pool = defaultPool
		}
	}

	if !displayAvailable() {
		err := fmt.Errorf("%w: no display context (DISPLAY is not set)", ErrSessionUnavailable)
		logger().Error("session open failed", "error", err)
		return nil, err
	}

	path, err := locateEngine(o.executable)
	if err != nil {
		logger().Error("session open failed", "error", err)
		return nil, err
	}
	p, err := startEngine(path)
	if err != nil {
		logger().Error("session open failed", "error", err)
		return nil, err
	}

	s.pipe = p
	s.valid = true
	logger().Debug("session opened", "executable", path, "terminal", s.terminal.String())
	return s, nil
}

// IsReady reports whether the session can talk to the engine.
func (s *Session) IsReady() bool {
	return s.valid && s.pipe != nil
}

// Err returns the last failure recorded by a no-op'ed call, or nil. The
// returned error wraps one of the package sentinel errors.
func (s *Session) Err() error { return s.err }

// fail records err and logs it. Every recoverable failure path funnels
// through here so callers can keep chaining calls.
func (s *Session) fail(err error) {
	s.err = err
	logger().Warn("gnuplot call ignored", "error", err)
}

// Send writes one directive, newline-terminated, and flushes immediately:
// the engine processes its input stream in order with no acknowledgment,
// so buffered partial lines would be invisible to it indefinitely. On a
// session that is not ready, Send logs and returns without side effects.
//
// Send also maintains the dimensionality tracker by inspecting the
// directive: a line mentioning "replot" changes nothing, a "splot" prefix
// records a fresh 3D plot, and a "plot" prefix records a fresh 2D plot.
func (s *Session) Send(directive string) *Session {
	if !s.IsReady() {
		s.fail(fmt.Errorf("%w: session not ready", ErrSessionUnavailable))
		return s
	}

	if s.debug {
		logger().Info("directive", "line", directive)
	} else {
		logger().Debug("directive", "line", directive)
	}

	if _, err := fmt.Fprintf(s.pipe, "%s\n", directive); err != nil {
		s.fail(fmt.Errorf("%w: write directive: %v", ErrIO, err))
		return s
	}
	if err := s.pipe.Flush(); err != nil {
		s.fail(fmt.Errorf("%w: flush directive: %v", ErrIO, err))
		return s
	}

	switch {
	case strings.Contains(directive, "replot"):
		// Continuation verb: never advances the tracker.
	case strings.HasPrefix(directive, "splot"):
		s.twoDim = false
		s.nplots++
	case strings.HasPrefix(directive, "plot"):
		s.twoDim = true
		s.nplots++
	}
	return s
}

// Close flushes and terminates the channel, then deletes every scratch
// file this session created. It is idempotent and safe to call from
// deferred teardown; failures are reported as warnings only.
func (s *Session) Close() error {
	if s.pipe != nil {
		if err := s.pipe.Close(); err != nil {
			logger().Warn("problem closing channel to gnuplot", "error", err)
		}
		s.pipe = nil
	}
	s.valid = false

	s.pool.releaseAll(s.files)
	s.files = nil
	return nil
}

// drawVerb chooses between the fresh draw verb for the requested
// dimensionality and the continuation verb. The continuation verb applies
// only when the session has already plotted and the previous plot used
// the same dimensionality.
func (s *Session) drawVerb(threeDim bool) string {
	if s.nplots > 0 && s.twoDim != threeDim {
		return "replot"
	}
	if threeDim {
		return "splot"
	}
	return "plot"
}

// PlotCount returns the number of fresh plots issued in this session.
func (s *Session) PlotCount() int { return s.nplots }

// SetPlotStyle sets the rendering style for subsequent plot calls.
func (s *Session) SetPlotStyle(style PlotStyle) *Session {
	s.plotStyle = style
	return s
}

// SetSmoothStyle sets the smoothing applied to subsequent plot calls.
// While smoothing is anything other than SmoothNone it replaces the plot
// style clause in emitted directives.
func (s *Session) SetSmoothStyle(style SmoothStyle) *Session {
	s.smooth = style
	return s
}

// SetLineType sets the dash pattern for subsequent line-style plots.
// customPattern is only consulted for LineCustom.
func (s *Session) SetLineType(lt LineType, customPattern string) *Session {
	if lt == LineNone {
		s.lineFrag = ""
		return s
	}
	s.lineFrag = lt.fragment(customPattern)
	return s
}

// SetLineColor sets the line color from a symbolic name or hex string.
// An unrecognized value clears the color, returning directive assembly to
// the engine default.
func (s *Session) SetLineColor(color string) *Session {
	s.lineColor = ParseColor(color)
	return s
}

// SetLineColorRGB sets the line color from components in [0, 255].
func (s *Session) SetLineColorRGB(r, g, b int) *Session {
	s.lineColor = RGB(r, g, b)
	return s
}

// SetLineWidth sets the line width for subsequent plots. Non-positive
// widths are ignored.
func (s *Session) SetLineWidth(width float64) *Session {
	if width <= 0 {
		s.fail(fmt.Errorf("%w: line width %v must be positive", ErrValidation, width))
		return s
	}
	s.lineWidth = width
	return s
}

// SetPointType sets the marker shape for subsequent point-style plots.
func (s *Session) SetPointType(pt PointType) *Session {
	s.pointType = pt
	return s
}

// SetPointSize sets the marker size for subsequent point-style plots.
// Non-positive sizes are ignored.
func (s *Session) SetPointSize(size float64) *Session {
	if size <= 0 {
		s.fail(fmt.Errorf("%w: point size %v must be positive", ErrValidation, size))
		return s
	}
	s.pointSize = size
	return s
}

// ResetPlot starts a fresh plot: the next data-bearing call emits a fresh
// draw verb instead of a continuation, without touching engine state.
func (s *Session) ResetPlot() *Session {
	s.nplots = 0
	return s
}

// ResetSession resets the engine to its startup state and clears the
// session's accumulated style state, style IDs, and grid declarations.
func (s *Session) ResetSession() *Session {
	s.nplots = 0
	s.Send("reset")
	s.Send("clear")
	s.plotStyle = StyleDefault
	s.smooth = SmoothNone
	s.textboxIDs.clear()
	s.lineStyleIDs.clear()
	s.gridMajorID = 0
	s.gridMinorID = 0
	return s
}

// newTestSession builds a ready session around an arbitrary pipe, used by
// tests to capture directives without a gnuplot process.
func newTestSession(p pipe, pool *ScratchPool) *Session {
	if pool == nil {
		pool = NewScratchPool("", 0)
	}
	return &Session{
		pipe:         p,
		valid:        true,
		terminal:     TerminalWxt,
		pool:         pool,
		plotStyle:    StyleDefault,
		pointType:    PointPlus,
		lineStyleIDs: newIDAllocator(),
		textboxIDs:   newIDAllocator(),
	}
}

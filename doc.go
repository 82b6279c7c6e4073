// Package gnuplot drives an external gnuplot process through its text
// command pipe.
//
// # Overview
//
// gnuplot does not embed any plotting code. It spawns the gnuplot
// executable, keeps a write-only pipe to its input stream, and translates
// calls like SetLineColor or PlotXY into the newline-terminated directives
// gnuplot's own scripting language expects. Numeric series are handed to
// the engine through uniquely-named temporary data files managed by a
// process-wide capped pool.
//
// # Quick Start
//
//	import "github.com/gogpu/gnuplot"
//
//	gp, err := gnuplot.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer gp.Close()
//
//	gp.SetTitle("quadratic").
//		SetPlotStyle(gnuplot.StyleLines).
//		SetLineColor("red").
//		SetLineWidth(2)
//	gp.PlotXY([]float64{0, 1, 2}, []float64{0, 1, 4}, "y = x^2")
//
// # Session State
//
// A Session carries mutable style state (color, width, dash pattern,
// marker, smoothing) that is applied to every subsequent plot call until
// changed. The session also tracks whether it is drawing 2D or 3D data
// and how many plots it has issued, so the second plot in a window is a
// "replot" rather than a fresh "plot".
//
// # Error Handling
//
// Only New returns an error. Every other method is safe to call on a
// session in any state: failing calls log a diagnostic, record the error
// (see [Session.Err]), and leave the session unchanged, so chained
// configuration code never has to branch.
//
// # Concurrency
//
// A Session is not safe for concurrent use. The scratch-file pool behind
// it is shared process-wide and is safe to use from sessions on different
// goroutines.
package gnuplot

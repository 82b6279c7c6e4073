package gnuplot

// Option configures a Session during creation.
//
// Example:
//
//	// Default: find gnuplot on PATH, interactive wxt terminal.
//	gp, err := gnuplot.New()
//
//	// Explicit executable and a file-producing terminal.
//	gp, err := gnuplot.New(
//		gnuplot.WithExecutable("/opt/gnuplot/bin/gnuplot"),
//		gnuplot.WithTerminal(gnuplot.TerminalPNGCairo),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	executable string
	terminal   Terminal
	debug      bool
	pool       *ScratchPool
	scratchDir string
}

// WithExecutable overrides engine discovery with an explicit path.
func WithExecutable(path string) Option {
	return func(o *options) { o.executable = path }
}

// WithTerminal sets the terminal used by Show and SetOutput. The default
// is the interactive wxt terminal.
func WithTerminal(t Terminal) Option {
	return func(o *options) { o.terminal = t }
}

// WithDebug echoes every directive through the logger at Info level.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// WithScratchPool shares an explicit scratch file pool between sessions.
// By default all sessions share [DefaultScratchPool].
func WithScratchPool(p *ScratchPool) Option {
	return func(o *options) { o.pool = p }
}

// WithScratchDir gives the session its own pool writing to dir, with the
// platform default file cap. Ignored when WithScratchPool is also given.
func WithScratchDir(dir string) Option {
	return func(o *options) { o.scratchDir = dir }
}

// WithConfig applies settings loaded from a configuration file. Options
// appearing after WithConfig override the file.
func WithConfig(c Config) Option {
	return func(o *options) {
		if c.Executable != "" {
			o.executable = c.Executable
		}
		if c.Terminal != "" {
			o.terminal = Terminal(c.Terminal)
		}
		if c.ScratchDir != "" {
			o.scratchDir = c.ScratchDir
		}
		if c.Debug {
			o.debug = true
		}
	}
}

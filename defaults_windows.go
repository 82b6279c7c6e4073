//go:build windows

package gnuplot

const (
	// maxScratchFiles caps live scratch files process-wide. Windows
	// limits the number of simultaneously open temporary names far more
	// aggressively than unix.
	maxScratchFiles = 27

	// engineExecutable is the executable name searched for on PATH.
	engineExecutable = "pgnuplot.exe"

	// engineInstallDir is checked before falling back to a PATH search.
	engineInstallDir = "C:/program files/gnuplot/bin"
)

// displayAvailable reports whether an interactive display context exists.
// Windows always has one.
func displayAvailable() bool { return true }

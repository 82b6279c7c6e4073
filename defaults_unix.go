//go:build !windows

package gnuplot

import (
	"os"
	"runtime"
)

const (
	// maxScratchFiles caps live scratch files process-wide.
	maxScratchFiles = 64

	// engineExecutable is the executable name searched for on PATH.
	engineExecutable = "gnuplot"

	// engineInstallDir is checked before falling back to a PATH search.
	engineInstallDir = "/usr/local/bin"
)

// displayAvailable reports whether an interactive display context exists.
// X11-based terminals need DISPLAY on unix systems other than macOS,
// where the aqua terminal talks to the window server directly.
func displayAvailable() bool {
	if runtime.GOOS == "darwin" {
		return true
	}
	return os.Getenv("DISPLAY") != ""
}

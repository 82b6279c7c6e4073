package gnuplot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// pipe is the write side of the channel to the engine. The engine never
// acknowledges directives, so every write is followed by a Flush. Tests
// substitute an in-memory implementation.
type pipe interface {
	io.Writer
	Flush() error
	Close() error
}

// enginePipe drives a real gnuplot process through its stdin.
type enginePipe struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	buf   *bufio.Writer
}

// locateEngine resolves the engine executable: an explicit override, then
// the platform's default install directory, then a PATH search.
func locateEngine(override string) (string, error) {
	if override != "" {
		if isExecutable(override) {
			return override, nil
		}
		return "", fmt.Errorf("%w: %s is not an executable file", ErrSessionUnavailable, override)
	}

	installed := filepath.Join(engineInstallDir, engineExecutable)
	if isExecutable(installed) {
		return installed, nil
	}

	path, err := exec.LookPath(engineExecutable)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found in %s or on PATH",
			ErrSessionUnavailable, engineExecutable, engineInstallDir)
	}
	return path, nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	// Permission bits are advisory on windows; existence is enough there.
	return info.Mode()&0o111 != 0 || engineExecutable == "pgnuplot.exe"
}

// startEngine spawns the engine attached to a single write-direction
// text channel. The engine's own output (warnings, terminal chatter)
// stays on the host's stderr, where gnuplot writes it anyway.
func startEngine(path string) (*enginePipe, error) {
	cmd := exec.Command(path)
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: open stdin pipe: %v", ErrSessionUnavailable, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %v", ErrSessionUnavailable, path, err)
	}
	return &enginePipe{cmd: cmd, stdin: stdin, buf: bufio.NewWriter(stdin)}, nil
}

func (p *enginePipe) Write(b []byte) (int, error) { return p.buf.Write(b) }

func (p *enginePipe) Flush() error { return p.buf.Flush() }

// Close flushes pending directives, closes the engine's input stream, and
// waits for the process to exit. gnuplot quits on EOF.
func (p *enginePipe) Close() error {
	flushErr := p.buf.Flush()
	closeErr := p.stdin.Close()
	waitErr := p.cmd.Wait()
	if flushErr != nil {
		return flushErr
	}
	if closeErr != nil {
		return closeErr
	}
	return waitErr
}

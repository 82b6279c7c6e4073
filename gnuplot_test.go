package gnuplot

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// memPipe captures directives in memory in place of the engine pipe.
type memPipe struct {
	bytes.Buffer
	flushes   int
	closed    bool
	failWrite bool
}

func (p *memPipe) Write(b []byte) (int, error) {
	if p.failWrite {
		return 0, errors.New("pipe broken")
	}
	return p.Buffer.Write(b)
}

func (p *memPipe) Flush() error { p.flushes++; return nil }
func (p *memPipe) Close() error { p.closed = true; return nil }

// lines returns the newline-terminated directives written so far.
func (p *memPipe) lines() []string {
	out := strings.TrimRight(p.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// testSession builds a ready session writing to an in-memory pipe, with
// scratch files confined to the test's temp dir.
func testSession(t *testing.T) (*Session, *memPipe) {
	t.Helper()
	p := &memPipe{}
	return newTestSession(p, NewScratchPool(t.TempDir(), 0)), p
}

package gnuplot

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ScratchPool bounds the temporary data files used to hand numeric series
// to the engine. The cap is enforced across every session sharing the
// pool, and by default every session in the process shares one pool.
//
// A ScratchPool is safe for concurrent use.
type ScratchPool struct {
	mu   sync.Mutex
	live int
	max  int
	dir  string
}

// defaultPool is shared by all sessions that do not inject their own pool.
var defaultPool = NewScratchPool("", maxScratchFiles)

// DefaultScratchPool returns the process-wide pool used by sessions
// created without WithScratchPool.
func DefaultScratchPool() *ScratchPool { return defaultPool }

// NewScratchPool creates a pool writing to dir with at most limit live
// files. An empty dir means the platform scratch directory; a
// non-positive limit means the platform default cap.
func NewScratchPool(dir string, limit int) *ScratchPool {
	if dir == "" {
		dir = os.TempDir()
	}
	if limit <= 0 {
		limit = maxScratchFiles
	}
	return &ScratchPool{max: limit, dir: dir}
}

// Live returns the number of scratch files currently tracked by the pool.
func (p *ScratchPool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

// scratchFile is a live temporary data file, open for writing until the
// plotting operation that acquired it finishes serializing.
type scratchFile struct {
	path string
	file *os.File
}

// acquire creates a uniquely-named scratch file. It fails with
// ErrResourceExhausted before touching the filesystem when the cap is
// reached. Uniqueness comes from exclusive-create semantics: a colliding
// name is retried with a fresh one rather than reused.
func (p *ScratchPool) acquire() (*scratchFile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live >= p.max {
		return nil, fmt.Errorf("%w (limit %d)", ErrResourceExhausted, p.max)
	}

	for attempt := 0; attempt < 16; attempt++ {
		path := filepath.Join(p.dir, "gnuplot-"+uuid.NewString()+".dat")
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
		}
		p.live++
		return &scratchFile{path: path, file: f}, nil
	}
	return nil, fmt.Errorf("%w: could not find an unused scratch file name in %s", ErrIO, p.dir)
}

// releaseAll deletes every listed path and returns the counter capacity
// to the pool. Individual deletion failures are reported as warnings and
// do not stop the sweep. The live counter never goes negative, even if
// accounting has drifted.
func (p *ScratchPool) releaseAll(paths []string) {
	if len(paths) == 0 {
		return
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logger().Warn("unable to remove scratch file", "path", path, "error", err)
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live < len(paths) {
		logger().Warn("scratch file accounting drift",
			"live", p.live, "releasing", len(paths))
		p.live = 0
		return
	}
	p.live -= len(paths)
}

package gnuplot

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestScratchPoolCapEnforced(t *testing.T) {
	pool := NewScratchPool(t.TempDir(), 2)

	var paths []string
	for i := 0; i < 2; i++ {
		sf, err := pool.acquire()
		if err != nil {
			t.Fatalf("acquire %d: %v", i+1, err)
		}
		sf.file.Close()
		paths = append(paths, sf.path)
	}
	if got := pool.Live(); got != 2 {
		t.Fatalf("Live() = %d, want 2", got)
	}

	if _, err := pool.acquire(); !errors.Is(err, ErrResourceExhausted) {
		t.Fatalf("acquire over cap: err = %v, want ErrResourceExhausted", err)
	}

	pool.releaseAll(paths[:1])
	if got := pool.Live(); got != 1 {
		t.Fatalf("Live() after release = %d, want 1", got)
	}
	sf, err := pool.acquire()
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	sf.file.Close()
}

func TestScratchPoolReleaseDeletesFiles(t *testing.T) {
	pool := NewScratchPool(t.TempDir(), 0)

	sf, err := pool.acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	sf.file.Close()

	pool.releaseAll([]string{sf.path})
	if _, err := os.Stat(sf.path); !os.IsNotExist(err) {
		t.Errorf("Stat(%s) after release = %v, want not-exist", sf.path, err)
	}
	if got := pool.Live(); got != 0 {
		t.Errorf("Live() = %d, want 0", got)
	}
}

func TestScratchPoolCounterClampsAtZero(t *testing.T) {
	pool := NewScratchPool(t.TempDir(), 0)

	// Releasing paths the pool never handed out must not drive the
	// counter negative.
	pool.releaseAll([]string{"/nonexistent/a", "/nonexistent/b"})
	if got := pool.Live(); got != 0 {
		t.Errorf("Live() = %d, want 0", got)
	}

	sf, err := pool.acquire()
	if err != nil {
		t.Fatalf("acquire after drift: %v", err)
	}
	sf.file.Close()
	if got := pool.Live(); got != 1 {
		t.Errorf("Live() = %d, want 1", got)
	}
}

func TestScratchPoolNamesAreUnique(t *testing.T) {
	pool := NewScratchPool(t.TempDir(), 0)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		sf, err := pool.acquire()
		if err != nil {
			t.Fatalf("acquire %d: %v", i+1, err)
		}
		sf.file.Close()
		if seen[sf.path] {
			t.Fatalf("path %s handed out twice", sf.path)
		}
		seen[sf.path] = true
		if base := sf.path; !strings.Contains(base, "gnuplot-") || !strings.HasSuffix(base, ".dat") {
			t.Errorf("path %s does not follow the gnuplot-*.dat pattern", base)
		}
	}
}

func TestDefaultScratchPoolIsShared(t *testing.T) {
	if DefaultScratchPool() != defaultPool {
		t.Error("DefaultScratchPool() does not return the process-wide pool")
	}
}

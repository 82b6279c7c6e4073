package gnuplot

import "testing"

func TestIDAllocatorGeneratesDistinctIDs(t *testing.T) {
	a := newIDAllocator()

	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		id := a.generate()
		if id <= 0 {
			t.Fatalf("generate() = %d, want positive", id)
		}
		if seen[id] {
			t.Fatalf("generate() handed out %d twice", id)
		}
		seen[id] = true
	}
}

func TestIDAllocatorSkipsReserved(t *testing.T) {
	a := newIDAllocator()

	if !a.add(1) {
		t.Fatal("add(1) on a fresh allocator = false")
	}
	if a.add(1) {
		t.Fatal("add(1) twice = true, want rejection")
	}
	if got := a.generate(); got != 2 {
		t.Errorf("generate() = %d, want 2 (1 is reserved)", got)
	}
	if !a.isUsed(2) {
		t.Error("isUsed(2) = false after generate")
	}
	if a.isUsed(3) {
		t.Error("isUsed(3) = true, never handed out")
	}
}

func TestIDAllocatorClearReleasesEverything(t *testing.T) {
	a := newIDAllocator()
	a.generate()
	a.add(5)

	a.clear()

	if a.isUsed(1) || a.isUsed(5) {
		t.Error("reservations survived clear")
	}
	if got := a.generate(); got != 1 {
		t.Errorf("generate() after clear = %d, want 1", got)
	}
}

func TestIDAllocatorsAreIndependent(t *testing.T) {
	a := newIDAllocator()
	b := newIDAllocator()

	if got := a.generate(); got != 1 {
		t.Fatalf("a.generate() = %d, want 1", got)
	}
	if got := b.generate(); got != 1 {
		t.Errorf("b.generate() = %d, want 1 (allocators share no state)", got)
	}
}

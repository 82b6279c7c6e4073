package gnuplot

// idAllocator hands out small positive integers for one category of
// named sub-style ("line-style", "textbox-style"). The engine addresses
// declared styles by these handles, and two unrelated features must never
// collide on the same handle within one session, so each session owns one
// allocator per category.
type idAllocator struct {
	used map[int]bool
}

func newIDAllocator() *idAllocator {
	return &idAllocator{used: make(map[int]bool)}
}

// generate returns the smallest positive integer not currently in use and
// marks it used.
func (a *idAllocator) generate() int {
	id := 1
	for a.used[id] {
		id++
	}
	a.used[id] = true
	return id
}

// add reserves a caller-chosen id. Returns false if it is already in use.
func (a *idAllocator) add(id int) bool {
	if a.used[id] {
		return false
	}
	a.used[id] = true
	return true
}

// isUsed reports whether the id has been handed out or reserved.
func (a *idAllocator) isUsed(id int) bool {
	return a.used[id]
}

// clear releases every reservation. Used on session-wide reset.
func (a *idAllocator) clear() {
	a.used = make(map[int]bool)
}

package bitrun

import "fmt"

// Run is a contiguous group of set bits, Start being its lowest-order bit.
type Run struct {
	Start int
	Len   int
}

// NoRun is the run reported for a word with no set bits.
var NoRun = Run{Start: -1}

func (r Run) Empty() bool {
	return r.Len == 0
}

// End returns the index of the run's highest-order bit, or -1 if empty.
func (r Run) End() int {
	if r.Empty() {
		return -1
	}
	return r.Start + r.Len - 1
}

// Mask returns a word with exactly the run's bits set.
func (r Run) Mask() uint32 {
	if r.Empty() {
		return 0
	}
	return (^uint32(0) >> uint(Width-r.Len)) << uint(r.Start)
}

func (r Run) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d]", r.Start, r.End())
}

// Package bitrun finds runs of consecutive set bits in 32-bit words.
//
// Bit 0 is the least significant bit. A run is reported by the index of
// its lowest-order bit and its length.
package bitrun

import (
	"github.com/pi/bitrun/internal/debug"
)

const Width = 32

// MaxRun returns the length and start bit of the longest run of 1 bits
// in x. When several runs share the maximum length the lowest-order one
// wins. For x == 0 it returns (0, -1).
func MaxRun(x uint32) (length, start int) {
	count, runStart := 0, -1
	start = -1
	for pos := 0; x != 0; pos++ {
		if x&1 == 0 {
			count, runStart = 0, -1
		} else {
			if runStart < 0 {
				runStart = pos
			}
			count++
			// strictly greater: an equal run found later never replaces the best
			if count > length {
				length, start = count, runStart
				if debug.Enabled {
					debug.Log("best run now [%d, %d] len %d", start, pos, length)
				}
			}
		}
		x >>= 1
	}
	return
}

// Longest is MaxRun packaged as a Run.
func Longest(x uint32) Run {
	n, s := MaxRun(x)
	return Run{Start: s, Len: n}
}

// Runs returns every maximal run of 1 bits in x, lowest-order first.
func Runs(x uint32) []Run {
	var runs []Run
	for pos := 0; x != 0; pos++ {
		if x&1 != 0 {
			if n := len(runs); n > 0 && runs[n-1].End() == pos-1 {
				runs[n-1].Len++
			} else {
				runs = append(runs, Run{Start: pos, Len: 1})
			}
		}
		x >>= 1
	}
	return runs
}

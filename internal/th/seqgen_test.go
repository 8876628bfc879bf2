package th

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordGenReset(t *testing.T) {
	for _, wgt := range []int{WgRand, WgTwist, WgRuns} {
		g := NewWordGen(wgt)
		first := make([]uint32, 16)
		for i := range first {
			first[i] = g.Next()
		}
		g.Reset()
		for i := range first {
			assert.Equal(t, first[i], g.Next(), "gen %d, step %d", wgt, i)
		}
	}
}

func TestWordGenPeriod(t *testing.T) {
	g := NewWordGen(WgRand)
	g.SetPeriod(4)
	require.EqualValues(t, 4, g.Period())
	a := []uint32{g.Next(), g.Next(), g.Next(), g.Next()}
	b := []uint32{g.Next(), g.Next(), g.Next(), g.Next()}
	assert.Equal(t, a, b)

	s := NewWordGen(WgSeq)
	s.SetPeriod(3)
	assert.EqualValues(t, 1, s.Next())
	assert.EqualValues(t, 2, s.Next())
	assert.EqualValues(t, 0, s.Next())
}

func TestWordGenTwist(t *testing.T) {
	g := NewWordGen(WgTwist)
	assert.EqualValues(t, 0xfffffffe, g.Next())
	assert.EqualValues(t, 2, g.Next())
	assert.EqualValues(t, 0xfffffffc, g.Next())
}

func TestWordGenInvalid(t *testing.T) {
	assert.Panics(t, func() { NewWordGen(-1) })
}

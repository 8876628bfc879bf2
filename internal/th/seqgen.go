package th

import "math/rand"

// WordGen yields a reproducible sequence of 32-bit test words.
type WordGen interface {
	Seed(value uint32)
	Next() uint32
	Reset()
	SetPeriod(period uint)
	Period() uint
}

const (
	WgRand = iota
	WgSeq
	WgTwist
	WgRuns
)

func NewWordGen(wgt int) WordGen {
	switch wgt {
	case WgRand:
		return &randWG{}
	case WgSeq:
		return &seqWG{}
	case WgTwist:
		return &twistWG{}
	case WgRuns:
		return &runsWG{}
	default:
		panic("invalid word generator type")
	}
}

type randWG struct {
	r         *rand.Rand
	period    uint
	generated uint
}

func (g *randWG) Next() uint32 {
	if g.period != 0 && g.period == g.generated {
		g.Reset()
	}
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	g.generated++
	return g.r.Uint32()
}
func (g *randWG) Reset() {
	g.r = rand.New(rand.NewSource(1))
	g.generated = 0
}
func (g *randWG) Seed(value uint32) {
	g.r = rand.New(rand.NewSource(int64(value)))
}
func (g *randWG) SetPeriod(period uint) {
	g.period = period
}
func (g *randWG) Period() uint {
	return g.period
}

type seqWG struct {
	cur    uint32
	period uint
}

func (g *seqWG) Next() uint32 {
	g.cur++
	if g.period != 0 {
		return g.cur % uint32(g.period)
	}
	return g.cur
}
func (g *seqWG) Reset() {
	g.cur = 0
}
func (g *seqWG) Seed(value uint32) {
	g.cur = value
}
func (g *seqWG) SetPeriod(period uint) {
	g.period = period
}
func (g *seqWG) Period() uint {
	return g.period
}

// twistWG alternates between values near zero and values near all-ones.
type twistWG struct {
	cur               uint32
	period, generated uint
}

func (g *twistWG) Next() uint32 {
	if g.period != 0 && g.generated == g.period {
		g.Reset()
	}
	if (g.cur & 0x80000000) == 0 {
		g.cur = ^g.cur - 1
	} else {
		g.cur = ^g.cur + 1
	}
	g.generated++
	return g.cur
}
func (g *twistWG) Reset() {
	g.cur = 0
	g.generated = 0
}
func (g *twistWG) Seed(value uint32) {
	g.cur = value
}
func (g *twistWG) SetPeriod(period uint) {
	g.period = period
	g.generated = 0
}
func (g *twistWG) Period() uint {
	return g.period
}

// runsWG builds words out of long random stretches of ones and zeros,
// which uniform random words rarely contain.
type runsWG struct {
	r         *rand.Rand
	period    uint
	generated uint
}

func (g *runsWG) Next() uint32 {
	if g.period != 0 && g.period == g.generated {
		g.Reset()
	}
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	g.generated++
	var w uint32
	bit := uint32(g.r.Intn(2))
	for pos := 0; pos < 32; {
		n := 1 + g.r.Intn(12)
		for ; n > 0 && pos < 32; n-- {
			w |= bit << uint(pos)
			pos++
		}
		bit ^= 1
	}
	return w
}
func (g *runsWG) Reset() {
	g.r = rand.New(rand.NewSource(1))
	g.generated = 0
}
func (g *runsWG) Seed(value uint32) {
	g.r = rand.New(rand.NewSource(int64(value)))
}
func (g *runsWG) SetPeriod(period uint) {
	g.period = period
}
func (g *runsWG) Period() uint {
	return g.period
}

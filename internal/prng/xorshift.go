package prng

const xorShiftFallback uint32 = 2463534242

// XorShift is Marsaglia's 32-bit xorshift with shifts 13, 17, 5.
type XorShift struct {
	state uint32
}

// NewXorShift seeds the generator with the low 32 bits of seed.
// A zero state would be a fixed point, so it is replaced.
func NewXorShift(seed uint64) *XorShift {
	s := uint32(seed)
	if s == 0 {
		s = xorShiftFallback
	}
	return &XorShift{state: s}
}

// NextInt advances the state and returns it.
func (g *XorShift) NextInt() uint64 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return uint64(x)
}

// NextUnit returns NextInt()/2^32.
func (g *XorShift) NextUnit() float64 {
	return float64(g.NextInt()) / (1 << 32)
}

// Algorithm returns AlgXorShift.
func (g *XorShift) Algorithm() Algorithm { return AlgXorShift }

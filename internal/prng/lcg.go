package prng

// LCG parameters (glibc-style constants).
const (
	LCGMultiplier uint64 = 1103515245
	LCGIncrement  uint64 = 12345
	LCGModulus    uint64 = 1 << 31
)

// LCG is a linear congruential generator: x = (a*x + c) mod m.
type LCG struct {
	state uint64
}

// NewLCG seeds an LCG. The seed is reduced modulo m.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: seed % LCGModulus}
}

// NextInt advances the state and returns it.
func (g *LCG) NextInt() uint64 {
	// state < 2^31 and a < 2^31, so the product fits in 62 bits.
	g.state = (LCGMultiplier*g.state + LCGIncrement) % LCGModulus
	return g.state
}

// NextUnit returns NextInt()/m.
func (g *LCG) NextUnit() float64 {
	return float64(g.NextInt()) / float64(LCGModulus)
}

// Algorithm returns AlgLCG.
func (g *LCG) Algorithm() Algorithm { return AlgLCG }

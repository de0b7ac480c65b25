package prng

// middleSquareWindow is the exclusive bound of the 4-digit state.
const middleSquareWindow = 10000

// MiddleSquare is von Neumann's method on a 4-digit state: square it,
// zero-pad to 8 digits and keep the middle 4.
//
// Many seeds collapse into short cycles or 0. That is how the method behaves
// and is kept as is.
type MiddleSquare struct {
	state uint64
}

// NewMiddleSquare seeds the generator with the last four digits of seed.
func NewMiddleSquare(seed uint64) *MiddleSquare {
	return &MiddleSquare{state: seed % middleSquareWindow}
}

// NextInt advances the state and returns it, in [0, 9999].
func (g *MiddleSquare) NextInt() uint64 {
	sq := g.state * g.state // at most 8 digits
	g.state = (sq / 100) % middleSquareWindow
	return g.state
}

// NextUnit returns NextInt()/10000.
func (g *MiddleSquare) NextUnit() float64 {
	return float64(g.NextInt()) / middleSquareWindow
}

// Algorithm returns AlgMiddleSquare.
func (g *MiddleSquare) Algorithm() Algorithm { return AlgMiddleSquare }

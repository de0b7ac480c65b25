package prng

const (
	weightedModulus = 10000
	weightedHistory = 10
)

// Weighted is the multi-term average method:
//
//	x[n+1] = floor(((x[n] + 2*x[n-1] + 3*x[n-2]) / 6) * 10000) mod m
//
// The history keeps at most the last 10 values.
type Weighted struct {
	history []uint64
}

// NewWeighted seeds the history with three values derived from seed mod m.
func NewWeighted(seed uint64) *Weighted {
	base := seed % weightedModulus
	h := make([]uint64, 0, weightedHistory+1)
	h = append(h, base, (base*7+3)%weightedModulus, (base*13+5)%weightedModulus)
	return &Weighted{history: h}
}

// NextInt appends and returns the next value, in [0, m).
func (g *Weighted) NextInt() uint64 {
	n := len(g.history)
	oldest, mid, newest := g.history[n-3], g.history[n-2], g.history[n-1]

	sum := float64(newest + 2*mid + 3*oldest)
	next := uint64((sum/6)*10000) % weightedModulus

	g.history = append(g.history, next)
	if len(g.history) > weightedHistory {
		g.history = append(g.history[:0], g.history[1:]...)
	}
	return next
}

// NextUnit returns NextInt()/m.
func (g *Weighted) NextUnit() float64 {
	return float64(g.NextInt()) / weightedModulus
}

// Algorithm returns AlgWeighted.
func (g *Weighted) Algorithm() Algorithm { return AlgWeighted }

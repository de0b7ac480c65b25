package prng

import (
	"errors"
	"testing"
	"time"
)

func TestLCGFirstValues(t *testing.T) {
	g := NewLCG(12345)

	want := (LCGMultiplier*12345 + LCGIncrement) % LCGModulus
	got := g.NextInt()
	if got != want {
		t.Fatalf("first NextInt() = %d, want %d", got, want)
	}
	if got != 1406932606 {
		t.Fatalf("first NextInt() = %d, want 1406932606", got)
	}

	g2 := NewLCG(12345)
	unit := g2.NextUnit()
	if unit != float64(want)/float64(LCGModulus) {
		t.Errorf("first NextUnit() = %v, want %v", unit, float64(want)/float64(LCGModulus))
	}

	// Continue the first sequence
	if v := g.NextInt(); v != 654583775 {
		t.Errorf("second NextInt() = %d, want 654583775", v)
	}
	if v := g.NextInt(); v != 1449466924 {
		t.Errorf("third NextInt() = %d, want 1449466924", v)
	}
}

func TestMiddleSquareSequence(t *testing.T) {
	g := NewMiddleSquare(8421)
	want := []uint64{9132, 3934, 4763, 6861, 733}
	for i, w := range want {
		if got := g.NextInt(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestMiddleSquareDegeneratesWithoutPanicking(t *testing.T) {
	// 100 squared is 00010000, middle digits are 0100, which is a fixed point.
	g := NewMiddleSquare(100)
	for range 50 {
		if got := g.NextInt(); got != 100 {
			t.Fatalf("expected fixed point 100, got %d", got)
		}
	}

	zero := NewMiddleSquare(10000) // reduces to 0
	for range 10 {
		if u := zero.NextUnit(); u != 0 {
			t.Fatalf("expected 0 from zero state, got %v", u)
		}
	}
}

func TestWeightedSequence(t *testing.T) {
	g := NewWeighted(1234)
	want := []uint64{1666, 8333, 6666, 6666, 5000}
	for i, w := range want {
		if got := g.NextInt(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestWeightedHistoryIsBounded(t *testing.T) {
	g := NewWeighted(42)
	for range 1000 {
		g.NextInt()
	}
	if len(g.history) > weightedHistory {
		t.Errorf("history grew to %d entries, cap is %d", len(g.history), weightedHistory)
	}
}

func TestXorShiftSequence(t *testing.T) {
	g := NewXorShift(123456)
	want := []uint64{3044438244, 372467569, 561134079}
	for i, w := range want {
		if got := g.NextInt(); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}

	z := NewXorShift(0)
	if z.state != xorShiftFallback {
		t.Errorf("zero seed should use fallback state, got %d", z.state)
	}
}

func TestDeterminismAllAlgorithms(t *testing.T) {
	for _, alg := range Algorithms() {
		a, err := New(alg, 987654321)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", alg, err)
		}
		b, err := New(alg, 987654321)
		if err != nil {
			t.Fatalf("New(%s) failed: %v", alg, err)
		}
		for i := range 500 {
			x, y := a.NextInt(), b.NextInt()
			if x != y {
				t.Fatalf("%s: draw %d differs: %d vs %d", alg, i, x, y)
			}
			u, v := a.NextUnit(), b.NextUnit()
			if u != v {
				t.Fatalf("%s: unit draw %d differs: %v vs %v", alg, i, u, v)
			}
		}
		if a.Algorithm() != alg {
			t.Errorf("Algorithm() = %s, want %s", a.Algorithm(), alg)
		}
	}
}

func TestUnitRange(t *testing.T) {
	seeds := []uint64{1, 7, 12345, 8421, 9999, 1 << 40}
	for _, alg := range Algorithms() {
		for _, seed := range seeds {
			g, err := New(alg, seed)
			if err != nil {
				t.Fatalf("New(%s) failed: %v", alg, err)
			}
			for range 2000 {
				u := g.NextUnit()
				if u < 0 || u >= 1 {
					t.Fatalf("%s seed %d: NextUnit() = %v out of [0,1)", alg, seed, u)
				}
			}
		}
	}
}

func TestZeroSeedUsesDefaultDerivation(t *testing.T) {
	now := time.UnixMilli(1_700_000_001_234)

	for _, alg := range Algorithms() {
		g, err := NewAt(alg, 0, now)
		if err != nil {
			t.Fatalf("NewAt(%s) failed: %v", alg, err)
		}
		ref, err := NewAt(alg, DefaultSeed(alg, now), now)
		if err != nil {
			t.Fatalf("NewAt(%s) failed: %v", alg, err)
		}
		for i := range 20 {
			if x, y := g.NextInt(), ref.NextInt(); x != y {
				t.Fatalf("%s: zero seed draw %d = %d, explicit default = %d", alg, i, x, y)
			}
		}
	}

	if s := DefaultSeed(AlgMiddleSquare, now); s != 1234 {
		t.Errorf("middle-square default seed = %d, want 1234", s)
	}
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New("blum-blum-shub", 1)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
	if _, err := ParseAlgorithm("nope"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm from ParseAlgorithm, got %v", err)
	}
}

func TestParseAlgorithmAliases(t *testing.T) {
	cases := map[string]Algorithm{
		"LCG":           AlgLCG,
		" middlesquare": AlgMiddleSquare,
		"PAM":           AlgWeighted,
		"xorshift32":    AlgXorShift,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseSeed(t *testing.T) {
	if v, ok := ParseSeed("12345"); !ok || v != 12345 {
		t.Errorf("ParseSeed(12345) = %d, %v", v, ok)
	}
	for _, bad := range []string{"", "  ", "abc", "-5", "12.5"} {
		if _, ok := ParseSeed(bad); ok {
			t.Errorf("ParseSeed(%q) should be rejected", bad)
		}
	}
}

func TestDescribeCoversAllAlgorithms(t *testing.T) {
	for _, alg := range Algorithms() {
		info, ok := Describe(alg)
		if !ok || info.Name == "" {
			t.Errorf("missing info for %s", alg)
		}
	}
}

// Package prng provides the small, inspectable pseudo-random generators that
// drive ghost decisions. Every generator is a pure function of its seed and
// call history, so a seeded session can be replayed exactly.
//
// These generators are intentionally simple and are not suitable for any
// security-sensitive use.
package prng

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generator is the contract shared by every algorithm.
// Both methods advance the internal state.
type Generator interface {
	// NextInt returns the next raw integer of the sequence.
	NextInt() uint64

	// NextUnit returns the next value normalized to [0, 1).
	NextUnit() float64

	// Algorithm identifies the update rule.
	Algorithm() Algorithm
}

// Algorithm identifies a generator variant.
type Algorithm string

const (
	AlgLCG          Algorithm = "lcg"
	AlgMiddleSquare Algorithm = "middle-square"
	AlgWeighted     Algorithm = "pam"
	AlgXorShift     Algorithm = "xorshift"
)

// ErrUnknownAlgorithm is returned for algorithm names that have no generator.
var ErrUnknownAlgorithm = errors.New("prng: unknown algorithm")

// Info is a human readable description of an algorithm.
type Info struct {
	Name        string
	Description string
}

var infos = map[Algorithm]Info{
	AlgLCG: {
		Name:        "Linear Congruential (Lehmer, 1949)",
		Description: "Reproducible sequences from fixed parameters (a, c, m).",
	},
	AlgMiddleSquare: {
		Name:        "Middle-Square (von Neumann, 1946)",
		Description: "Keeps the 4 middle digits of the squared state. Falls into short cycles.",
	},
	AlgWeighted: {
		Name:        "Weighted Multi-term Average",
		Description: "Weighted average of the last three values to break linearity.",
	},
	AlgXorShift: {
		Name:        "XorShift32 (Marsaglia, 2003)",
		Description: "Shift-and-xor of a 32-bit state.",
	},
}

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgLCG, AlgMiddleSquare, AlgWeighted, AlgXorShift}
}

// Describe returns the display info for an algorithm.
func Describe(alg Algorithm) (Info, bool) {
	info, ok := infos[alg]
	return info, ok
}

// ParseAlgorithm maps user text to an Algorithm. Matching is case-insensitive
// and accepts a few aliases used by older profiles.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lcg", "linear", "linear-congruential":
		return AlgLCG, nil
	case "middle-square", "middlesquare", "ms":
		return AlgMiddleSquare, nil
	case "pam", "weighted", "average":
		return AlgWeighted, nil
	case "xorshift", "xorshift32", "xor":
		return AlgXorShift, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseSeed parses seed text. Empty, non-numeric or negative input reports
// ok=false, in which case callers pass 0 to New and get the default seed.
func ParseSeed(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// New creates a generator. A zero seed is replaced by DefaultSeed(alg, now)
// once, at construction.
func New(alg Algorithm, seed uint64) (Generator, error) {
	return NewAt(alg, seed, time.Now())
}

// NewAt is New with an explicit clock for the default seed derivation.
func NewAt(alg Algorithm, seed uint64, now time.Time) (Generator, error) {
	if seed == 0 {
		seed = DefaultSeed(alg, now)
	}
	switch alg {
	case AlgLCG:
		return NewLCG(seed), nil
	case AlgMiddleSquare:
		return NewMiddleSquare(seed), nil
	case AlgWeighted:
		return NewWeighted(seed), nil
	case AlgXorShift:
		return NewXorShift(seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// DefaultSeed derives a seed from the clock:
//   - lcg: Unix nanoseconds
//   - middle-square, pam: last four digits of Unix milliseconds
//   - xorshift: low 32 bits of Unix nanoseconds
//
// The result is never zero.
func DefaultSeed(alg Algorithm, now time.Time) uint64 {
	var seed uint64
	switch alg {
	case AlgMiddleSquare, AlgWeighted:
		seed = uint64(now.UnixMilli()) % 10000
	case AlgXorShift:
		seed = uint64(now.UnixNano()) & 0xFFFFFFFF
	default:
		seed = uint64(now.UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

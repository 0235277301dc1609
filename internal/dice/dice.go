// Package dice provides the randomness primitives for segment resolution:
// an injectable uniform source and a multi-die roller.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrNoDice indicates a roll request had no dice specified.
var ErrNoDice = errors.New("at least one die must be provided")

// ErrInvalidSides indicates a die with zero or negative sides.
var ErrInvalidSides = errors.New("dice must have positive sides")

// Source is the uniform randomness provider for all engine draws.
// Implementations must be safe for concurrent use when shared across
// resolutions, so that roll sequences stay reproducible for a given seed.
type Source interface {
	// Intn returns a non-negative random int in [0, n). Precondition: n > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// NewSource returns a seed-deterministic Source. The same seed always
// produces the same draw sequence.
func NewSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// NewCryptoSeededSource returns a Source seeded from crypto/rand, for
// production use where reproducibility is not wanted.
func NewCryptoSeededSource() (Source, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSource(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// Roller rolls one or more dice against an injected Source.
type Roller struct {
	src Source
}

func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

// Roll sums one independent uniform draw in [1, s] for each die in sides,
// so Roll(6, 6) is 2d6 and Roll(20) is 1d20. A die with non-positive sides
// is a configuration error and fails before any draw is consumed.
func (r *Roller) Roll(sides ...int) (int, error) {
	if len(sides) == 0 {
		return 0, ErrNoDice
	}
	for _, s := range sides {
		if s <= 0 {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidSides, s)
		}
	}

	total := 0
	for _, s := range sides {
		total += r.src.Intn(s) + 1
	}
	return total, nil
}

// NDice returns n dice of the given sides, for multi-die expressions like
// NDice(3, 6) ("3d6").
func NDice(n, sides int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = sides
	}
	return out
}

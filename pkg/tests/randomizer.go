package tests

import (
	"math/rand/v2"
	"testing"
	"time"
)

// Randomizer drives property style tests. Each one logs its seed, so a
// failing run can be replayed with NewSeededRandomizer.
type Randomizer struct {
	rnd *rand.Rand
}

func NewRandomizer(tb testing.TB) Randomizer {
	tb.Helper()

	seed := uint64(time.Now().UnixNano()) //nolint:gosec
	tb.Logf("randomizer seed: %d", seed)

	return NewSeededRandomizer(seed)
}

func NewSeededRandomizer(seed uint64) Randomizer {
	return Randomizer{rnd: rand.New(rand.NewPCG(seed, seed>>1))} //nolint:gosec // for tests
}

// Float64 returns a number in [0, 1) and fits seed.New.
func (r Randomizer) Float64() float64 { return r.rnd.Float64() }

func (r Randomizer) Bool() bool { return r.rnd.IntN(2) == 0 } //nolint:mnd

func (r Randomizer) Intn(n int) int { return r.rnd.IntN(n) }

// IntBetween returns a random integer in [lo, hi].
func (r Randomizer) IntBetween(lo, hi int) int {
	return lo + r.rnd.IntN(hi-lo+1)
}

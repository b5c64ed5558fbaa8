package ai

import "math/rand"

// Chooser selects one option out of n. It exists so the strategist's
// uniform choices can be swapped for a deterministic pick in tests.
type Chooser interface {
	Choose(n int) int
}

// RandomChooser picks uniformly from the injected source.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(rng *rand.Rand) *RandomChooser {
	return &RandomChooser{rng: rng}
}

func (r *RandomChooser) Choose(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// DeterministicChooser always takes the first option, for predictable tests.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(n int) int {
	return 0
}

package maze

import (
	"fmt"
	"math/rand"
	"strings"
)

// ScanMode selects how an adversary picks a new heading.
type ScanMode string

const (
	// ScanRotation draws a random starting offset into the fixed scan order
	// and takes the first open direction. Directions that follow a wall in
	// the scan order are favoured; this bias is the classic behaviour.
	ScanRotation ScanMode = "rotation"
	// ScanUniform picks uniformly among the open directions.
	ScanUniform ScanMode = "uniform"
)

// ParseScanMode parses "rotation" or "uniform". Empty means rotation.
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScanRotation:
		return ScanRotation, nil
	case ScanUniform:
		return ScanUniform, nil
	}
	return "", fmt.Errorf("maze: unknown scan mode %q", s)
}

// DefaultExploreOneIn is the 1-in-N chance of turning while the way ahead is open.
const DefaultExploreOneIn = 10

// wander holds the random stream and exploration odds shared by both scans.
type wander struct {
	rng          *rand.Rand
	exploreOneIn int
}

// wantsTurn reports whether the adversary must or chooses to pick a new
// heading. The exploration draw happens only when continuing is possible.
func (w wander) wantsTurn(cell int, current Direction, mv Mover) bool {
	if ok, _ := mv.TryStep(cell, current); !ok {
		return true
	}
	return w.exploreOneIn > 0 && w.rng.Intn(w.exploreOneIn) == 0
}

// RotationScan is the classic adversary policy.
type RotationScan struct {
	wander
}

// NewRotationScan returns a RotationScan drawing from rng.
func NewRotationScan(rng *rand.Rand, exploreOneIn int) *RotationScan {
	return &RotationScan{wander{rng: rng, exploreOneIn: exploreOneIn}}
}

// NextDirection implements Policy.
func (s *RotationScan) NextDirection(cell int, current Direction, mv Mover) Direction {
	if !s.wantsTurn(cell, current, mv) {
		return current
	}

	start := s.rng.Intn(len(scanOrder))
	for i := range scanOrder {
		d := scanOrder[(start+i)%len(scanOrder)]
		if ok, _ := mv.TryStep(cell, d); ok {
			return d
		}
	}
	// Boxed in: stand still rather than walk into a wall.
	return None
}

// UniformScan picks each open direction with equal probability.
type UniformScan struct {
	wander
}

// NewUniformScan returns a UniformScan drawing from rng.
func NewUniformScan(rng *rand.Rand, exploreOneIn int) *UniformScan {
	return &UniformScan{wander{rng: rng, exploreOneIn: exploreOneIn}}
}

// NextDirection implements Policy.
func (s *UniformScan) NextDirection(cell int, current Direction, mv Mover) Direction {
	if !s.wantsTurn(cell, current, mv) {
		return current
	}

	open := mv.Legal(cell)
	if len(open) == 0 {
		return None
	}
	return open[s.rng.Intn(len(open))]
}

func newPolicy(mode ScanMode, rng *rand.Rand, exploreOneIn int) Policy {
	if mode == ScanUniform {
		return NewUniformScan(rng, exploreOneIn)
	}
	return NewRotationScan(rng, exploreOneIn)
}

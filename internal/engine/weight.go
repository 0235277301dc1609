package engine

import (
	"wrestling-booker/internal/balance"
	"wrestling-booker/internal/domain"
)

// minWeight is the effective-weight floor. It is load-bearing: it
// guarantees every competitor keeps a non-zero selection probability no
// matter how beaten down they are.
const minWeight = 1

// WeightCalculator converts a wrestler snapshot into a single non-negative
// effective weight from fan standing, tier bonus and health penalties.
type WeightCalculator struct {
	ladder        []int
	injuryPenalty int
}

func NewWeightCalculator(tables *balance.Tables) *WeightCalculator {
	return &WeightCalculator{
		ladder:        tables.Ladder(),
		injuryPenalty: tables.InjuryPenalty,
	}
}

// TierBonus returns the configured ladder step for the tier. The ladder is
// validated monotonic at load time, so higher tiers never earn less.
func (c *WeightCalculator) TierBonus(t domain.Tier) int {
	if int(t) < 0 || int(t) >= len(c.ladder) {
		return 0
	}
	return c.ladder[t]
}

// HealthPenalty is accumulated bumps plus a per-injury surcharge for every
// currently active injury.
func (c *WeightCalculator) HealthPenalty(w *domain.Wrestler) int {
	return w.Bumps + c.injuryPenalty*w.ActiveInjuries
}

// Weight computes max(minWeight, fanWeight + tierBonus - healthPenalty).
func (c *WeightCalculator) Weight(w *domain.Wrestler) int {
	weight := w.FanWeight + c.TierBonus(w.Tier) - c.HealthPenalty(w)
	if weight < minWeight {
		return minWeight
	}
	return weight
}

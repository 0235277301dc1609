// Package balance holds the tunable game-balance tables consumed by the
// resolution engine. Defaults are embedded; a YAML file can override them.
package balance

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wrestling-booker/internal/domain"
)

//go:embed defaults.yaml
var defaultTables []byte

// Loser-reward policy names.
const (
	LoserStandard = "standard"
	LoserBacklash = "backlash"
)

// Tables is the full set of balance knobs.
type Tables struct {
	TierPolicy             string           `yaml:"tier_policy"`
	TierLadders            map[string][]int `yaml:"tier_ladders"`
	LoserPolicy            string           `yaml:"loser_policy"`
	InjuryPenalty          int              `yaml:"injury_penalty"`
	DefaultNarrativeWeight int              `yaml:"default_narrative_weight"`
	ContenderFee           int              `yaml:"contender_fee"`
}

// Load parses the embedded defaults, then overlays the YAML file at path if
// one exists. An empty path skips the overlay entirely.
func Load(path string) (*Tables, error) {
	t := &Tables{}
	if err := yaml.Unmarshal(defaultTables, t); err != nil {
		return nil, fmt.Errorf("parse embedded balance tables: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read balance tables: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, t); err != nil {
				return nil, fmt.Errorf("parse balance tables: %w", err)
			}
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Ladder returns the tier-bonus ladder selected by TierPolicy, indexed by
// domain.Tier.
func (t *Tables) Ladder() []int {
	return t.TierLadders[t.TierPolicy]
}

func (t *Tables) validate() error {
	if _, ok := t.TierLadders[t.TierPolicy]; !ok {
		return fmt.Errorf("tier_policy %q has no ladder", t.TierPolicy)
	}
	for name, l := range t.TierLadders {
		if len(l) != domain.TierCount {
			return fmt.Errorf("tier ladder %q has %d steps, want %d", name, len(l), domain.TierCount)
		}
		for i, step := range l {
			if step < 0 {
				return fmt.Errorf("tier ladder %q step %d is negative", name, i)
			}
			if i > 0 && step < l[i-1] {
				return fmt.Errorf("tier ladder %q is not monotonic at step %d", name, i)
			}
		}
	}

	switch t.LoserPolicy {
	case LoserStandard, LoserBacklash:
	default:
		return fmt.Errorf("unknown loser_policy %q", t.LoserPolicy)
	}

	if t.InjuryPenalty < 0 {
		return fmt.Errorf("injury_penalty must be non-negative, got %d", t.InjuryPenalty)
	}
	if t.DefaultNarrativeWeight < 1 {
		return fmt.Errorf("default_narrative_weight must be at least 1, got %d", t.DefaultNarrativeWeight)
	}
	if t.ContenderFee < 0 {
		return fmt.Errorf("contender_fee must be non-negative, got %d", t.ContenderFee)
	}
	return nil
}

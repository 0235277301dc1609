package engine

import (
	"errors"
	"fmt"
	"strings"

	"wrestling-booker/internal/domain"
)

// ErrEmptyTeam indicates a team was constructed with no members.
var ErrEmptyTeam = errors.New("team must have at least one member")

// Team is an ordered, non-empty group of wrestlers competing as a unit.
// Membership is immutable after construction. The aggregate stats are stale
// until CalculateStats runs and must be recomputed for every resolution,
// since wrestler state may have changed in between.
type Team struct {
	Name    string
	Members []*domain.Wrestler

	TotalWeight        int
	AverageTierBonus   float64
	TotalHealthPenalty int
}

// NewTeam builds a team from its members. If name is empty a display name
// is generated from the member names; the generated name is for logging and
// narration only, never identity.
func NewTeam(members []*domain.Wrestler, name string) (*Team, error) {
	if len(members) == 0 {
		return nil, ErrEmptyTeam
	}
	if name == "" {
		name = generateTeamName(members)
	}
	return &Team{Name: name, Members: members}, nil
}

func generateTeamName(members []*domain.Wrestler) string {
	switch len(members) {
	case 1:
		return members[0].Name
	case 2:
		return members[0].Name + " & " + members[1].Name
	default:
		return fmt.Sprintf("%s & %d others", members[0].Name, len(members)-1)
	}
}

// MemberNames joins all member names for narration contexts that want the
// full list rather than the short display name.
func (t *Team) MemberNames() string {
	names := make([]string, len(t.Members))
	for i, m := range t.Members {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

// CalculateStats recomputes the cached aggregates from current member
// snapshots. Total weight is a sum, not an average: larger teams are
// proportionally stronger, modeling the numbers advantage in handicap
// matches.
func (t *Team) CalculateStats(calc *WeightCalculator) {
	totalWeight := 0
	totalBonus := 0
	totalPenalty := 0
	for _, m := range t.Members {
		totalWeight += calc.Weight(m)
		totalBonus += calc.TierBonus(m.Tier)
		totalPenalty += calc.HealthPenalty(m)
	}
	t.TotalWeight = totalWeight
	t.AverageTierBonus = float64(totalBonus) / float64(len(t.Members))
	t.TotalHealthPenalty = totalPenalty
}

package domain

import (
	"fmt"
	"time"
)

// Tier is a wrestler's competitive rank category. Ordering matters: higher
// tiers earn a larger weight bonus during segment resolution.
type Tier int

const (
	TierRookie Tier = iota
	TierRiser
	TierContender
	TierMidcarder
	TierMainEventer
	TierIcon
)

const TierCount = 6

func (t Tier) String() string {
	switch t {
	case TierRookie:
		return "ROOKIE"
	case TierRiser:
		return "RISER"
	case TierContender:
		return "CONTENDER"
	case TierMidcarder:
		return "MIDCARDER"
	case TierMainEventer:
		return "MAIN_EVENTER"
	case TierIcon:
		return "ICON"
	default:
		return "UNKNOWN"
	}
}

// ParseTier maps the stored string form back to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "ROOKIE":
		return TierRookie, nil
	case "RISER":
		return TierRiser, nil
	case "CONTENDER":
		return TierContender, nil
	case "MIDCARDER":
		return TierMidcarder, nil
	case "MAIN_EVENTER":
		return TierMainEventer, nil
	case "ICON":
		return TierIcon, nil
	}
	return TierRookie, fmt.Errorf("unknown tier %q", s)
}

// BumpPolicy controls which population of a segment accrues a bump.
type BumpPolicy string

const (
	BumpWinners BumpPolicy = "WINNERS"
	BumpLosers  BumpPolicy = "LOSERS"
	BumpAll     BumpPolicy = "ALL"
	BumpNone    BumpPolicy = "NONE"
)

// ParseBumpPolicy maps a stored policy string to a BumpPolicy, defaulting to
// NONE for anything unrecognized: nothing is granted unless a rule
// explicitly says so.
func ParseBumpPolicy(s string) BumpPolicy {
	switch BumpPolicy(s) {
	case BumpWinners, BumpLosers, BumpAll:
		return BumpPolicy(s)
	}
	return BumpNone
}

// Wrestler is a point-in-time snapshot of a roster member. The resolution
// engine never mutates these directly; fan and bump changes go through the
// wrestler-state collaborator.
type Wrestler struct {
	ID             string
	Name           string
	FanWeight      int
	Tier           Tier
	Bumps          int
	ActiveInjuries int
	IsChampion     bool
	HasAccount     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Injury is a durability event on a wrestler. An injury with a nil HealedAt
// is active and penalizes effective weight.
type Injury struct {
	ID          string
	WrestlerID  string
	Description string
	OccurredAt  time.Time
	HealedAt    *time.Time
}

func (i Injury) Active() bool {
	return i.HealedAt == nil
}

// Rule is a named stipulation configuration. Lifecycle is owned by the
// booking CRUD surface; during resolution it is an immutable lookup record.
type Rule struct {
	ID               string
	Name             string
	Description      string
	RequiresHighHeat bool
	IsActive         bool
	BumpPolicy       BumpPolicy
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SegmentKind distinguishes the reward path used for a segment.
type SegmentKind string

const (
	SegmentMatch SegmentKind = "match"
	SegmentPromo SegmentKind = "promo"
)

// Segment is a persisted resolution outcome.
type Segment struct {
	ID             string
	Kind           SegmentKind
	Stipulation    string
	RuleID         *string
	WinnerTeam     string
	WinProbability float64
	QualityRoll    int
	Narration      string
	CreatedAt      time.Time
}

// SegmentParticipant is one wrestler's reward record within a segment.
type SegmentParticipant struct {
	SegmentID   string
	WrestlerID  string
	TeamSlot    int
	IsWinner    bool
	FanDelta    int
	BumpGranted bool
}

// Achievement is an unlocked account achievement, idempotent per
// (wrestler, code).
type Achievement struct {
	ID         string
	WrestlerID string
	Code       string
	UnlockedAt time.Time
}

// Package engine implements segment resolution: converting competing teams
// of wrestlers into a weighted-random winner and computing the fan, bump,
// fee and achievement consequences of the result.
//
// The engine owns no storage or transport. Callers supply the collaborators
// below; per-wrestler collaborator failures are soft (logged and skipped),
// while configuration errors (empty teams, bad dice, too few teams) fail
// fast before any state is mutated.
package engine

import (
	"context"

	"wrestling-booker/internal/domain"
)

// WrestlerState is the wrestler-state collaborator. Lookups and mutations
// report a missing or unmutable wrestler as a nil result with a nil error;
// a non-nil error means the collaborator itself failed.
type WrestlerState interface {
	FindCurrentState(ctx context.Context, id string) (*domain.Wrestler, error)
	FindByName(ctx context.Context, name string) (*domain.Wrestler, error)
	AwardFans(ctx context.Context, id string, delta int) (*domain.Wrestler, error)
	AddBump(ctx context.Context, id string) (*domain.Wrestler, error)
}

// RuleFinder is the stipulation-rule collaborator. FindByName returns
// (nil, nil) when no rule matches the name.
type RuleFinder interface {
	FindByName(ctx context.Context, name string) (*domain.Rule, error)
}

// AchievementSink receives fire-and-forget achievement unlocks.
type AchievementSink interface {
	Unlock(ctx context.Context, wrestlerID, code string)
}

// PerfectSegmentCode is the achievement unlocked on a natural 20 quality
// roll for every participant with an achievement-capable account.
const PerfectSegmentCode = "PERFECT_SEGMENT"

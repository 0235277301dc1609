package engine

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/balance"
	"wrestling-booker/internal/dice"
	"wrestling-booker/internal/domain"
)

// RewardRecord is one wrestler's share of a segment's consequences.
type RewardRecord struct {
	WrestlerID  string
	Name        string
	IsWinner    bool
	FanDelta    int
	BumpGranted bool
}

// RewardSummary aggregates the per-wrestler records with the quality roll
// that shaped them.
type RewardSummary struct {
	QualityRoll    int
	QualityBonus   int
	PerfectSegment bool
	Records        []RewardRecord
}

// RewardEngine computes and applies post-segment consequences: fan deltas,
// bumps, contender fees and achievement signals. Every per-wrestler
// mutation is attempted independently; one wrestler's failure never aborts
// the rest.
type RewardEngine struct {
	state        WrestlerState
	achievements AchievementSink
	roller       *dice.Roller
	tables       *balance.Tables
	logger       zerolog.Logger
}

func NewRewardEngine(state WrestlerState, achievements AchievementSink, src dice.Source, tables *balance.Tables, logger zerolog.Logger) *RewardEngine {
	return &RewardEngine{
		state:        state,
		achievements: achievements,
		roller:       dice.NewRoller(src),
		tables:       tables,
		logger:       logger,
	}
}

// matchQualityBonus maps a 1d20 quality roll to a flat fan bonus. Higher
// rolls never pay less.
func matchQualityBonus(roll int) int {
	switch {
	case roll >= 20:
		return 10000
	case roll == 19:
		return 5000
	case roll >= 16:
		return 3000
	case roll >= 11:
		return 1000
	default:
		return 0
	}
}

// promoBonusDice maps a 1d20 quality roll to the bonus dice rolled for a
// promo. A roll of 1 maps to no dice at all: the promo fumbles and nobody
// gets a bonus. That is deliberate, not a missing branch.
func promoBonusDice(roll int) []int {
	switch {
	case roll >= 20:
		return dice.NDice(3, 6)
	case roll >= 17:
		return dice.NDice(2, 6)
	case roll >= 4:
		return []int{6}
	case roll >= 2:
		return []int{3}
	default:
		return nil
	}
}

// MatchRewards applies the non-promo reward path to a resolved outcome:
// a shared 1d20 quality bonus, independent per-wrestler fan rolls scaled by
// the difficulty multiplier, bump assignment per the stipulation's policy,
// and the perfect-segment achievement on a natural 20.
func (e *RewardEngine) MatchRewards(ctx context.Context, outcome *Outcome, multiplier float64, policy domain.BumpPolicy) *RewardSummary {
	qualityRoll := e.mustRoll(20)
	bonus := matchQualityBonus(qualityRoll)

	summary := &RewardSummary{
		QualityRoll:    qualityRoll,
		QualityBonus:   bonus,
		PerfectSegment: qualityRoll == 20,
	}

	if summary.PerfectSegment {
		e.signalPerfectSegment(ctx, outcome.Participants())
	}

	for _, w := range outcome.Winner.Members {
		roll := e.mustRoll(6, 6)
		delta := scale((roll+3)*1000+bonus, multiplier)
		e.applyFans(ctx, w, delta)
		summary.Records = append(summary.Records, RewardRecord{
			WrestlerID: w.ID,
			Name:       w.Name,
			IsWinner:   true,
			FanDelta:   delta,
		})
	}

	for _, team := range outcome.Losers {
		for _, w := range team.Members {
			roll := e.mustRoll(6)
			var raw int
			switch e.tables.LoserPolicy {
			case balance.LoserBacklash:
				// Can go negative: a bad loss costs fans.
				raw = (roll-4)*1000 + bonus
			default:
				raw = (roll+3)*1000 + bonus
			}
			delta := scale(raw, multiplier)
			e.applyFans(ctx, w, delta)
			summary.Records = append(summary.Records, RewardRecord{
				WrestlerID: w.ID,
				Name:       w.Name,
				FanDelta:   delta,
			})
		}
	}

	e.applyBumps(ctx, outcome, policy, summary)
	return summary
}

// PromoRewards applies the all-draw promo path: one shared bonus sub-roll,
// the same delta for every participant, no winner/loser split and no bumps.
func (e *RewardEngine) PromoRewards(ctx context.Context, participants []*domain.Wrestler, multiplier float64) *RewardSummary {
	qualityRoll := e.mustRoll(20)

	bonus := 0
	if bonusDice := promoBonusDice(qualityRoll); len(bonusDice) > 0 {
		bonus = e.mustRoll(bonusDice...)
	}

	summary := &RewardSummary{
		QualityRoll:  qualityRoll,
		QualityBonus: bonus,
	}

	delta := scale(bonus*1000, multiplier)
	for _, w := range participants {
		e.applyFans(ctx, w, delta)
		summary.Records = append(summary.Records, RewardRecord{
			WrestlerID: w.ID,
			Name:       w.Name,
			FanDelta:   delta,
		})
	}
	return summary
}

// ChargeContenderFees charges the configured entry fee to every
// non-champion participant of a title segment. A wrestler who cannot afford
// the fee simply is not charged.
func (e *RewardEngine) ChargeContenderFees(ctx context.Context, participants []*domain.Wrestler) {
	fee := e.tables.ContenderFee
	if fee == 0 {
		return
	}
	for _, w := range participants {
		if w.IsChampion {
			continue
		}
		updated, err := e.state.AwardFans(ctx, w.ID, -fee)
		if err != nil {
			e.logger.Warn().Err(err).Str("wrestler_id", w.ID).Msg("failed to charge contender fee")
			continue
		}
		if updated == nil {
			e.logger.Warn().Str("wrestler_id", w.ID).Str("name", w.Name).Int("fee", fee).
				Msg("wrestler cannot afford contender fee, skipping charge")
		}
	}
}

func (e *RewardEngine) applyBumps(ctx context.Context, outcome *Outcome, policy domain.BumpPolicy, summary *RewardSummary) {
	var population []*domain.Wrestler
	switch policy {
	case domain.BumpWinners:
		population = outcome.Winner.Members
	case domain.BumpLosers:
		for _, t := range outcome.Losers {
			population = append(population, t.Members...)
		}
	case domain.BumpAll:
		population = outcome.Participants()
	default:
		return
	}

	granted := make(map[string]bool, len(population))
	for _, w := range population {
		updated, err := e.state.AddBump(ctx, w.ID)
		if err != nil {
			e.logger.Warn().Err(err).Str("wrestler_id", w.ID).Msg("failed to add bump")
			continue
		}
		if updated == nil {
			e.logger.Warn().Str("wrestler_id", w.ID).Msg("wrestler missing for bump, skipping")
			continue
		}
		granted[w.ID] = true
	}

	for i := range summary.Records {
		if granted[summary.Records[i].WrestlerID] {
			summary.Records[i].BumpGranted = true
		}
	}
}

func (e *RewardEngine) applyFans(ctx context.Context, w *domain.Wrestler, delta int) {
	updated, err := e.state.AwardFans(ctx, w.ID, delta)
	if err != nil {
		e.logger.Warn().Err(err).Str("wrestler_id", w.ID).Int("delta", delta).Msg("failed to award fans")
		return
	}
	if updated == nil {
		e.logger.Warn().Str("wrestler_id", w.ID).Int("delta", delta).Msg("fan award skipped, wrestler missing or below zero")
	}
}

func (e *RewardEngine) signalPerfectSegment(ctx context.Context, participants []*domain.Wrestler) {
	e.logger.Info().Int("participants", len(participants)).Msg("perfect quality roll, unlocking achievements")
	for _, w := range participants {
		if !w.HasAccount {
			continue
		}
		e.achievements.Unlock(ctx, w.ID, PerfectSegmentCode)
	}
}

func (e *RewardEngine) mustRoll(sides ...int) int {
	total, err := e.roller.Roll(sides...)
	if err != nil {
		// Unreachable: every call site passes hardcoded positive sides.
		panic(err)
	}
	return total
}

func scale(raw int, multiplier float64) int {
	return int(math.Round(float64(raw) * multiplier))
}

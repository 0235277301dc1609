package engine

import (
	"context"
	"errors"
	"testing"

	"wrestling-booker/internal/balance"
	"wrestling-booker/internal/dice"
	"wrestling-booker/internal/domain"
)

func newTestRewardEngine(state WrestlerState, achievements AchievementSink, src dice.Source, tables *balance.Tables) *RewardEngine {
	if tables == nil {
		tables = testTables()
	}
	return NewRewardEngine(state, achievements, src, tables, nopLogger())
}

func singlesOutcome(winner, loser *domain.Wrestler) *Outcome {
	teamW, _ := NewTeam([]*domain.Wrestler{winner}, "")
	teamL, _ := NewTeam([]*domain.Wrestler{loser}, "")
	return &Outcome{Winner: teamW, Losers: []*Team{teamL}, WinProbability: 50}
}

func TestMatchQualityBonusTable(t *testing.T) {
	tcs := []struct {
		roll int
		want int
	}{
		{1, 0}, {10, 0},
		{11, 1000}, {15, 1000},
		{16, 3000}, {18, 3000},
		{19, 5000},
		{20, 10000},
	}
	for _, tc := range tcs {
		if got := matchQualityBonus(tc.roll); got != tc.want {
			t.Fatalf("matchQualityBonus(%d) = %d, want %d", tc.roll, got, tc.want)
		}
	}
}

// TestPerfectRollUnlocksAchievements pins the natural-20 path: +10000
// bonus, achievement unlock for every accounted participant, and no unlock
// one roll below.
func TestPerfectRollUnlocksAchievements(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	state := newFakeState(x, y)
	achievements := &fakeAchievements{}

	// d20 -> 20, winner 2d6 -> 3+4, loser 1d6 -> 3
	src := &scriptedSource{vals: []int{19, 2, 3, 2}}
	rewards := newTestRewardEngine(state, achievements, src, nil)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpNone)
	if summary.QualityRoll != 20 || summary.QualityBonus != 10000 {
		t.Fatalf("quality roll/bonus = %d/%d, want 20/10000", summary.QualityRoll, summary.QualityBonus)
	}
	if !summary.PerfectSegment {
		t.Fatal("PerfectSegment not set on natural 20")
	}
	if len(achievements.unlocked) != 2 {
		t.Fatalf("unlocked = %v, want both participants", achievements.unlocked)
	}

	// winner rolled 7: (7+3)*1000 + 10000
	if got := summary.Records[0].FanDelta; got != 20000 {
		t.Fatalf("winner delta = %d, want 20000", got)
	}
	// loser rolled 3: (3+3)*1000 + 10000 under the standard policy
	if got := summary.Records[1].FanDelta; got != 16000 {
		t.Fatalf("loser delta = %d, want 16000", got)
	}
}

func TestNineteenIsNotPerfect(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	achievements := &fakeAchievements{}

	// d20 -> 19
	src := &scriptedSource{vals: []int{18, 2, 3, 2}}
	rewards := newTestRewardEngine(newFakeState(x, y), achievements, src, nil)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpNone)
	if summary.PerfectSegment {
		t.Fatal("roll of 19 flagged as perfect")
	}
	if summary.QualityBonus != 5000 {
		t.Fatalf("QualityBonus = %d, want 5000", summary.QualityBonus)
	}
	if len(achievements.unlocked) != 0 {
		t.Fatalf("unlocked = %v, want none", achievements.unlocked)
	}
}

func TestPerfectRollSkipsAccountlessParticipants(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	y.HasAccount = false
	achievements := &fakeAchievements{}

	src := &scriptedSource{vals: []int{19, 2, 3, 2}}
	rewards := newTestRewardEngine(newFakeState(x, y), achievements, src, nil)
	rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpNone)

	if len(achievements.unlocked) != 1 || achievements.unlocked[0] != "w1:"+PerfectSegmentCode {
		t.Fatalf("unlocked = %v, want only w1", achievements.unlocked)
	}
}

// TestWinnerDeltaNeverNegative is the winner reward floor: across seeds,
// quality bonuses and rolls, winners never lose fans.
func TestWinnerDeltaNeverNegative(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
		y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
		rewards := newTestRewardEngine(newFakeState(x, y), &fakeAchievements{}, dice.NewSource(seed), nil)
		summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpNone)
		for _, rec := range summary.Records {
			if rec.IsWinner && rec.FanDelta < 0 {
				t.Fatalf("seed %d: winner delta %d < 0", seed, rec.FanDelta)
			}
		}
	}
}

func TestBacklashLoserPolicyCanGoNegative(t *testing.T) {
	tables := testTables()
	tables.LoserPolicy = balance.LoserBacklash

	x := testWrestler("w1", "Ace Crusher", 100000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 100000, domain.TierRookie)

	// d20 -> 1 (no bonus), winner 2d6 -> 1+1, loser 1d6 -> 1
	src := &scriptedSource{vals: []int{0, 0, 0, 0}}
	rewards := newTestRewardEngine(newFakeState(x, y), &fakeAchievements{}, src, tables)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpNone)
	if got := summary.Records[0].FanDelta; got != 5000 {
		t.Fatalf("winner delta = %d, want 5000", got)
	}
	// (1-4)*1000: the bad-loss backlash
	if got := summary.Records[1].FanDelta; got != -3000 {
		t.Fatalf("loser delta = %d, want -3000", got)
	}
}

func TestDifficultyMultiplierScalesAndRounds(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)

	// d20 -> 1, winner 2d6 -> 2, loser 1d6 -> 1; raw winner 5000, raw loser 4000
	src := &scriptedSource{vals: []int{0, 0, 0, 0}}
	rewards := newTestRewardEngine(newFakeState(x, y), &fakeAchievements{}, src, nil)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.5, domain.BumpNone)
	if got := summary.Records[0].FanDelta; got != 7500 {
		t.Fatalf("winner delta = %d, want 7500", got)
	}
	if got := summary.Records[1].FanDelta; got != 6000 {
		t.Fatalf("loser delta = %d, want 6000", got)
	}
}

func TestZeroMultiplierZeroesRewards(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	src := &scriptedSource{vals: []int{10, 3, 3, 3}}
	rewards := newTestRewardEngine(newFakeState(x, y), &fakeAchievements{}, src, nil)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 0, domain.BumpNone)
	for _, rec := range summary.Records {
		if rec.FanDelta != 0 {
			t.Fatalf("delta = %d with zero multiplier", rec.FanDelta)
		}
	}
}

// TestPromoBonusMonotonic verifies the expected promo bonus never decreases
// across the roll buckets {1, 2-3, 4-16, 17-19, 20}.
func TestPromoBonusMonotonic(t *testing.T) {
	expected := func(roll int) float64 {
		ev := 0.0
		for _, sides := range promoBonusDice(roll) {
			ev += float64(sides+1) / 2
		}
		return ev
	}

	prev := -1.0
	for _, roll := range []int{1, 2, 4, 17, 20} {
		ev := expected(roll)
		if ev < prev {
			t.Fatalf("expected promo bonus decreased at roll %d: %v < %v", roll, ev, prev)
		}
		prev = ev
	}
}

func TestPromoBonusDiceTable(t *testing.T) {
	tcs := []struct {
		roll int
		want []int
	}{
		{1, nil},
		{2, []int{3}}, {3, []int{3}},
		{4, []int{6}}, {16, []int{6}},
		{17, []int{6, 6}}, {19, []int{6, 6}},
		{20, []int{6, 6, 6}},
	}
	for _, tc := range tcs {
		got := promoBonusDice(tc.roll)
		if len(got) != len(tc.want) {
			t.Fatalf("promoBonusDice(%d) = %v, want %v", tc.roll, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("promoBonusDice(%d) = %v, want %v", tc.roll, got, tc.want)
			}
		}
	}
}

func TestPromoRewardsShareOneBonus(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	state := newFakeState(x, y)

	// d20 -> 10 (1d6 bucket), sub-roll -> 3
	src := &scriptedSource{vals: []int{9, 2}}
	rewards := newTestRewardEngine(state, &fakeAchievements{}, src, nil)

	summary := rewards.PromoRewards(context.Background(), []*domain.Wrestler{x, y}, 1.0)
	if summary.QualityRoll != 10 || summary.QualityBonus != 3 {
		t.Fatalf("roll/bonus = %d/%d, want 10/3", summary.QualityRoll, summary.QualityBonus)
	}
	for _, rec := range summary.Records {
		if rec.FanDelta != 3000 {
			t.Fatalf("promo delta = %d, want 3000", rec.FanDelta)
		}
		if rec.IsWinner {
			t.Fatal("promo records must not mark winners")
		}
	}
	if len(state.awards["w1"]) != 1 || len(state.awards["w2"]) != 1 {
		t.Fatalf("awards = %v", state.awards)
	}
}

// TestPromoFumble pins the roll-of-1 case: no bonus dice, no fans for
// anyone.
func TestPromoFumble(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	src := &scriptedSource{vals: []int{0}}
	rewards := newTestRewardEngine(newFakeState(x), &fakeAchievements{}, src, nil)

	summary := rewards.PromoRewards(context.Background(), []*domain.Wrestler{x}, 1.0)
	if summary.QualityBonus != 0 {
		t.Fatalf("fumble bonus = %d, want 0", summary.QualityBonus)
	}
	if summary.Records[0].FanDelta != 0 {
		t.Fatalf("fumble delta = %d, want 0", summary.Records[0].FanDelta)
	}
}

// TestContenderFeeInsufficientFundsIsSoft pins the title-segment fee: a
// participant who cannot afford the fee is skipped, everyone else pays.
func TestContenderFeeInsufficientFundsIsSoft(t *testing.T) {
	rich := testWrestler("w1", "Ace Crusher", 100000, domain.TierRookie)
	poor := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	champ := testWrestler("w3", "Crossface", 100000, domain.TierMainEventer)
	champ.IsChampion = true
	state := newFakeState(rich, poor, champ)

	rewards := newTestRewardEngine(state, &fakeAchievements{}, &countingSource{}, nil)
	rewards.ChargeContenderFees(context.Background(), []*domain.Wrestler{rich, poor, champ})

	if len(state.awards["w1"]) != 1 || state.awards["w1"][0] != -5000 {
		t.Fatalf("rich awards = %v, want single -5000", state.awards["w1"])
	}
	if len(state.awards["w2"]) != 0 {
		t.Fatalf("poor wrestler was charged: %v", state.awards["w2"])
	}
	if poor.FanWeight != 1000 {
		t.Fatalf("poor fan weight mutated to %d", poor.FanWeight)
	}
	if len(state.awards["w3"]) != 0 {
		t.Fatalf("champion was charged: %v", state.awards["w3"])
	}
}

func TestBumpPolicies(t *testing.T) {
	tcs := []struct {
		policy      domain.BumpPolicy
		winnerBumps int
		loserBumps  int
	}{
		{domain.BumpWinners, 1, 0},
		{domain.BumpLosers, 0, 1},
		{domain.BumpAll, 1, 1},
		{domain.BumpNone, 0, 0},
	}
	for _, tc := range tcs {
		t.Run(string(tc.policy), func(t *testing.T) {
			x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
			y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
			src := &scriptedSource{vals: []int{9, 2, 3, 2}}
			rewards := newTestRewardEngine(newFakeState(x, y), &fakeAchievements{}, src, nil)

			summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, tc.policy)
			if x.Bumps != tc.winnerBumps {
				t.Fatalf("winner bumps = %d, want %d", x.Bumps, tc.winnerBumps)
			}
			if y.Bumps != tc.loserBumps {
				t.Fatalf("loser bumps = %d, want %d", y.Bumps, tc.loserBumps)
			}
			for _, rec := range summary.Records {
				wantGranted := (rec.IsWinner && tc.winnerBumps > 0) || (!rec.IsWinner && tc.loserBumps > 0)
				if rec.BumpGranted != wantGranted {
					t.Fatalf("record %s BumpGranted = %v, want %v", rec.Name, rec.BumpGranted, wantGranted)
				}
			}
		})
	}
}

// TestMutationFailureDoesNotAbortOthers ensures one wrestler's collaborator
// failure never blocks the rest of the participants.
func TestMutationFailureDoesNotAbortOthers(t *testing.T) {
	x := testWrestler("w1", "Ace Crusher", 1000, domain.TierRookie)
	y := testWrestler("w2", "Bulldozer", 1000, domain.TierRookie)
	state := newFakeState(x, y)
	state.errFor["w1"] = errors.New("row locked")

	src := &scriptedSource{vals: []int{9, 2, 3, 2}}
	rewards := newTestRewardEngine(state, &fakeAchievements{}, src, nil)

	summary := rewards.MatchRewards(context.Background(), singlesOutcome(x, y), 1.0, domain.BumpAll)
	if len(summary.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(summary.Records))
	}
	if len(state.awards["w2"]) != 1 {
		t.Fatalf("healthy wrestler not rewarded: %v", state.awards)
	}
	if y.Bumps != 1 {
		t.Fatalf("healthy wrestler bumps = %d, want 1", y.Bumps)
	}
}

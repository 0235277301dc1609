package engine

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/dice"
	"wrestling-booker/internal/domain"
)

// ErrTooFewTeams indicates a resolution was requested with fewer teams than
// the path supports.
var ErrTooFewTeams = errors.New("not enough teams for this resolution path")

// ErrNoParticipants indicates a narrative resolution with no names.
var ErrNoParticipants = errors.New("narrative resolution requires at least one name")

// Outcome is a resolved segment: the winning team, the unmodified losing
// teams, and the probability that was used to select the winner, retained
// for audit and narration.
type Outcome struct {
	Winner         *Team
	Losers         []*Team
	WinProbability float64
}

// Participants returns every wrestler across winner and losers, winner
// first, in team insertion order.
func (o *Outcome) Participants() []*domain.Wrestler {
	out := append([]*domain.Wrestler{}, o.Winner.Members...)
	for _, t := range o.Losers {
		out = append(out, t.Members...)
	}
	return out
}

// Resolver draws winners from competing teams proportionally to aggregate
// effective weight.
type Resolver struct {
	state  WrestlerState
	calc   *WeightCalculator
	src    dice.Source
	defWt  int
	logger zerolog.Logger
}

func NewResolver(state WrestlerState, calc *WeightCalculator, src dice.Source, defaultNarrativeWeight int, logger zerolog.Logger) *Resolver {
	return &Resolver{
		state:  state,
		calc:   calc,
		src:    src,
		defWt:  defaultNarrativeWeight,
		logger: logger,
	}
}

// Resolve draws a winner from exactly two teams.
func (r *Resolver) Resolve(ctx context.Context, team1, team2 *Team) (*Outcome, error) {
	return r.resolve(ctx, []*Team{team1, team2})
}

// ResolveMulti draws a winner from three or more teams via cumulative
// weighted selection over insertion order. Fewer than three teams is a
// caller error; use Resolve for the two-team path.
func (r *Resolver) ResolveMulti(ctx context.Context, teams []*Team) (*Outcome, error) {
	if len(teams) < 3 {
		return nil, ErrTooFewTeams
	}
	return r.resolve(ctx, teams)
}

func (r *Resolver) resolve(ctx context.Context, teams []*Team) (*Outcome, error) {
	if len(teams) < 2 {
		return nil, ErrTooFewTeams
	}
	for _, t := range teams {
		if len(t.Members) == 0 {
			return nil, ErrEmptyTeam
		}
	}

	// Refresh-before-resolve: member state (bumps, injuries, fans) may have
	// changed since the team was built.
	for _, t := range teams {
		r.refresh(ctx, t)
		t.CalculateStats(r.calc)
	}

	total := 0
	for _, t := range teams {
		total += t.TotalWeight
	}

	winnerIdx := r.selectWeighted(teams, total)
	winner := teams[winnerIdx]
	losers := make([]*Team, 0, len(teams)-1)
	for i, t := range teams {
		if i != winnerIdx {
			losers = append(losers, t)
		}
	}

	probability := float64(winner.TotalWeight) / float64(total) * 100
	r.logger.Info().
		Str("winner", winner.Name).
		Int("winner_weight", winner.TotalWeight).
		Int("total_weight", total).
		Float64("probability", probability).
		Int("teams", len(teams)).
		Msg("segment resolved")

	return &Outcome{Winner: winner, Losers: losers, WinProbability: probability}, nil
}

// refresh replaces each member snapshot with the wrestler's current record.
// A member that can no longer be found keeps its stale snapshot; that is a
// degraded mode, not an error.
func (r *Resolver) refresh(ctx context.Context, t *Team) {
	for i, m := range t.Members {
		current, err := r.state.FindCurrentState(ctx, m.ID)
		if err != nil {
			r.logger.Warn().Err(err).Str("wrestler_id", m.ID).Msg("failed to refresh wrestler, using stale snapshot")
			continue
		}
		if current == nil {
			r.logger.Warn().Str("wrestler_id", m.ID).Msg("wrestler missing on refresh, using stale snapshot")
			continue
		}
		t.Members[i] = current
	}
}

// selectWeighted walks the teams in insertion order accumulating weight and
// selects the first team whose cumulative weight exceeds a uniform draw in
// [0, total). The weight floor guarantees total > 0. Falling out of the
// walk is only reachable through rounding, so the last team is a guard, not
// a game rule.
func (r *Resolver) selectWeighted(teams []*Team, total int) int {
	u := r.src.Intn(total)
	cumulative := 0
	for i, t := range teams {
		cumulative += t.TotalWeight
		if u < cumulative {
			return i
		}
	}
	return len(teams) - 1
}

// NarrativeOutcome is the result of a narrative-only resolution: a winner
// name plus audit probability, with nothing persisted.
type NarrativeOutcome struct {
	Winner         string
	WinProbability float64
}

// ResolveNames runs the ad-hoc narrative path at wrestler granularity.
// Names that cannot be resolved against the roster compete with a flat
// default weight; that substitution is deliberate degraded-mode behavior
// for pure-text scenarios, not an error.
func (r *Resolver) ResolveNames(ctx context.Context, names []string) (*NarrativeOutcome, error) {
	if len(names) == 0 {
		return nil, ErrNoParticipants
	}

	weights := make([]int, len(names))
	total := 0
	for i, name := range names {
		w, err := r.state.FindByName(ctx, name)
		if err != nil || w == nil {
			if err != nil {
				r.logger.Warn().Err(err).Str("name", name).Msg("failed to look up wrestler for narrative resolution")
			} else {
				r.logger.Debug().Str("name", name).Msg("unknown wrestler in narrative resolution, using default weight")
			}
			weights[i] = r.defWt
		} else {
			weights[i] = r.calc.Weight(w)
		}
		total += weights[i]
	}

	u := r.src.Intn(total)
	cumulative := 0
	winnerIdx := len(names) - 1
	for i, w := range weights {
		cumulative += w
		if u < cumulative {
			winnerIdx = i
			break
		}
	}

	return &NarrativeOutcome{
		Winner:         names[winnerIdx],
		WinProbability: float64(weights[winnerIdx]) / float64(total) * 100,
	}, nil
}

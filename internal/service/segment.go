// Package service orchestrates segment resolution: it loads roster
// snapshots, applies the stipulation, delegates the draw and the rewards to
// the engine, and persists the outcome.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"wrestling-booker/internal/api"
	"wrestling-booker/internal/domain"
	"wrestling-booker/internal/engine"
	"wrestling-booker/internal/repository"
)

// ErrUnknownWrestler is returned when a requested participant ID is not on
// the roster. Booked segments require real roster members; only the
// narrative path tolerates unknown names.
var ErrUnknownWrestler = errors.New("wrestler not found")

// SegmentStore persists resolved segments and serves the booking history.
type SegmentStore interface {
	Save(ctx context.Context, segment *domain.Segment, participants []domain.SegmentParticipant) error
	Get(ctx context.Context, id string) (*repository.SegmentWithParticipants, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Segment, error)
}

// Narrator produces flavor text for an already-decided outcome. It never
// fails; implementations degrade to canned text.
type Narrator interface {
	Narrate(ctx context.Context, request api.NarrationRequest) string
}

type MatchRequest struct {
	Teams       [][]string
	Stipulation string
	Multiplier  float64
	TitleMatch  bool
}

type PromoRequest struct {
	WrestlerIDs []string
	Multiplier  float64
}

type NarrativeRequest struct {
	Names []string
}

// SegmentResult is the full outcome of a booked segment: what happened,
// why, and what every participant earned.
type SegmentResult struct {
	SegmentID      string
	Kind           domain.SegmentKind
	Stipulation    string
	WinnerTeam     string
	WinProbability float64
	QualityRoll    int
	PerfectSegment bool
	Narration      string
	Rewards        []engine.RewardRecord
}

type SegmentService struct {
	state     engine.WrestlerState
	stip      *engine.StipulationApplier
	resolver  *engine.Resolver
	rewards   *engine.RewardEngine
	segments  SegmentStore
	narration Narrator
	logger    zerolog.Logger
}

func NewSegmentService(
	state engine.WrestlerState,
	stip *engine.StipulationApplier,
	resolver *engine.Resolver,
	rewards *engine.RewardEngine,
	segments SegmentStore,
	narration Narrator,
	logger zerolog.Logger,
) *SegmentService {
	return &SegmentService{
		state:     state,
		stip:      stip,
		resolver:  resolver,
		rewards:   rewards,
		segments:  segments,
		narration: narration,
		logger:    logger,
	}
}

// ResolveMatch runs a full match segment. All validation and lookups happen
// before any roster mutation, so a bad request leaves the roster untouched.
func (s *SegmentService) ResolveMatch(ctx context.Context, req MatchRequest) (*SegmentResult, error) {
	if len(req.Teams) < 2 {
		return nil, engine.ErrTooFewTeams
	}
	for _, ids := range req.Teams {
		if len(ids) == 0 {
			return nil, engine.ErrEmptyTeam
		}
	}

	rule, err := s.stip.Apply(ctx, req.Stipulation)
	if err != nil {
		return nil, fmt.Errorf("failed to apply stipulation: %w", err)
	}

	teams, err := s.loadTeams(ctx, req.Teams)
	if err != nil {
		return nil, err
	}

	var outcome *engine.Outcome
	if len(teams) == 2 {
		outcome, err = s.resolver.Resolve(ctx, teams[0], teams[1])
	} else {
		outcome, err = s.resolver.ResolveMulti(ctx, teams)
	}
	if err != nil {
		return nil, err
	}

	policy := domain.BumpNone
	if rule != nil {
		policy = rule.BumpPolicy
	}
	summary := s.rewards.MatchRewards(ctx, outcome, normalizeMultiplier(req.Multiplier), policy)

	if req.TitleMatch {
		s.rewards.ChargeContenderFees(ctx, outcome.Participants())
	}

	narration := s.narration.Narrate(ctx, api.NarrationRequest{
		Kind:           string(domain.SegmentMatch),
		Stipulation:    req.Stipulation,
		Winner:         outcome.Winner.Name,
		Participants:   participantNames(outcome.Participants()),
		QualityRoll:    summary.QualityRoll,
		WinProbability: outcome.WinProbability,
	})

	segment := &domain.Segment{
		Kind:           domain.SegmentMatch,
		Stipulation:    req.Stipulation,
		WinnerTeam:     outcome.Winner.Name,
		WinProbability: outcome.WinProbability,
		QualityRoll:    summary.QualityRoll,
		Narration:      narration,
		CreatedAt:      time.Now().UTC(),
	}
	if rule != nil {
		segment.RuleID = &rule.ID
	}

	if err := s.segments.Save(ctx, segment, matchParticipants(teams, summary)); err != nil {
		return nil, fmt.Errorf("failed to save segment: %w", err)
	}

	s.logger.Info().
		Str("segment_id", segment.ID).
		Str("winner", outcome.Winner.Name).
		Int("quality_roll", summary.QualityRoll).
		Float64("win_probability", outcome.WinProbability).
		Msg("match segment resolved")

	return &SegmentResult{
		SegmentID:      segment.ID,
		Kind:           domain.SegmentMatch,
		Stipulation:    req.Stipulation,
		WinnerTeam:     outcome.Winner.Name,
		WinProbability: outcome.WinProbability,
		QualityRoll:    summary.QualityRoll,
		PerfectSegment: summary.PerfectSegment,
		Narration:      narration,
		Rewards:        summary.Records,
	}, nil
}

// ResolvePromo runs a talking segment: no winner, no bumps, one shared fan
// delta for everyone on the mic.
func (s *SegmentService) ResolvePromo(ctx context.Context, req PromoRequest) (*SegmentResult, error) {
	if len(req.WrestlerIDs) == 0 {
		return nil, engine.ErrNoParticipants
	}

	participants, err := s.loadWrestlers(ctx, req.WrestlerIDs)
	if err != nil {
		return nil, err
	}

	summary := s.rewards.PromoRewards(ctx, participants, normalizeMultiplier(req.Multiplier))

	narration := s.narration.Narrate(ctx, api.NarrationRequest{
		Kind:         string(domain.SegmentPromo),
		Winner:       participants[0].Name,
		Participants: participantNames(participants),
		QualityRoll:  summary.QualityRoll,
	})

	segment := &domain.Segment{
		Kind:        domain.SegmentPromo,
		QualityRoll: summary.QualityRoll,
		Narration:   narration,
		CreatedAt:   time.Now().UTC(),
	}

	records := make([]domain.SegmentParticipant, 0, len(summary.Records))
	for _, rec := range summary.Records {
		records = append(records, domain.SegmentParticipant{
			WrestlerID: rec.WrestlerID,
			FanDelta:   rec.FanDelta,
		})
	}
	if err := s.segments.Save(ctx, segment, records); err != nil {
		return nil, fmt.Errorf("failed to save segment: %w", err)
	}

	s.logger.Info().
		Str("segment_id", segment.ID).
		Int("quality_roll", summary.QualityRoll).
		Int("participants", len(participants)).
		Msg("promo segment resolved")

	return &SegmentResult{
		SegmentID:      segment.ID,
		Kind:           domain.SegmentPromo,
		QualityRoll:    summary.QualityRoll,
		PerfectSegment: summary.PerfectSegment,
		Narration:      narration,
		Rewards:        summary.Records,
	}, nil
}

// ResolveNarrative picks a winner from free-form names. Nothing is
// persisted and no rewards are applied.
func (s *SegmentService) ResolveNarrative(ctx context.Context, req NarrativeRequest) (*engine.NarrativeOutcome, error) {
	return s.resolver.ResolveNames(ctx, req.Names)
}

// GetSegment returns one resolved segment with its participant records, or
// (nil, nil) when the ID is unknown.
func (s *SegmentService) GetSegment(ctx context.Context, id string) (*repository.SegmentWithParticipants, error) {
	return s.segments.Get(ctx, id)
}

func (s *SegmentService) ListRecentSegments(ctx context.Context, limit int) ([]domain.Segment, error) {
	return s.segments.ListRecent(ctx, limit)
}

// loadTeams fetches every team's roster snapshots concurrently. A single
// unknown ID fails the whole request.
func (s *SegmentService) loadTeams(ctx context.Context, teamIDs [][]string) ([]*engine.Team, error) {
	teams := make([]*engine.Team, len(teamIDs))

	g, gctx := errgroup.WithContext(ctx)
	for i, ids := range teamIDs {
		g.Go(func() error {
			members, err := s.loadWrestlers(gctx, ids)
			if err != nil {
				return err
			}
			team, err := engine.NewTeam(members, "")
			if err != nil {
				return err
			}
			teams[i] = team
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *SegmentService) loadWrestlers(ctx context.Context, ids []string) ([]*domain.Wrestler, error) {
	out := make([]*domain.Wrestler, 0, len(ids))
	for _, id := range ids {
		w, err := s.state.FindCurrentState(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load wrestler %s: %w", id, err)
		}
		if w == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWrestler, id)
		}
		out = append(out, w)
	}
	return out, nil
}

// matchParticipants joins the drawn teams with the reward records into the
// persisted participant rows. Slot numbering follows request order.
func matchParticipants(teams []*engine.Team, summary *engine.RewardSummary) []domain.SegmentParticipant {
	slots := make(map[string]int, len(summary.Records))
	for slot, team := range teams {
		for _, m := range team.Members {
			slots[m.ID] = slot
		}
	}

	out := make([]domain.SegmentParticipant, 0, len(summary.Records))
	for _, rec := range summary.Records {
		out = append(out, domain.SegmentParticipant{
			WrestlerID:  rec.WrestlerID,
			TeamSlot:    slots[rec.WrestlerID],
			IsWinner:    rec.IsWinner,
			FanDelta:    rec.FanDelta,
			BumpGranted: rec.BumpGranted,
		})
	}
	return out
}

func participantNames(ws []*domain.Wrestler) []string {
	names := make([]string, 0, len(ws))
	for _, w := range ws {
		names = append(names, w.Name)
	}
	return names
}

func normalizeMultiplier(m float64) float64 {
	if m <= 0 {
		return 1.0
	}
	return m
}

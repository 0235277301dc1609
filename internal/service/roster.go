package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/domain"
)

// ErrInvalidWrestler is returned when a wrestler write is missing its name.
var ErrInvalidWrestler = errors.New("wrestler name is required")

// RosterStore is the roster persistence collaborator. Lookups report a
// missing wrestler as (nil, nil).
type RosterStore interface {
	FindCurrentState(ctx context.Context, id string) (*domain.Wrestler, error)
	ActiveInjuries(ctx context.Context, wrestlerID string) ([]domain.Injury, error)
	List(ctx context.Context, limit int) ([]domain.Wrestler, error)
	Upsert(ctx context.Context, w *domain.Wrestler) error
	RecordInjury(ctx context.Context, injury *domain.Injury) error
	HealInjury(ctx context.Context, injuryID string) error
}

// AchievementReader lists unlocked achievements for a wrestler.
type AchievementReader interface {
	ListByWrestler(ctx context.Context, wrestlerID string) ([]domain.Achievement, error)
}

// WrestlerProfile is the enriched read shape for a single roster member.
type WrestlerProfile struct {
	Wrestler     domain.Wrestler
	Injuries     []domain.Injury
	Achievements []domain.Achievement
}

// RosterService serves roster reads and the booking-side writes that sit
// outside segment resolution.
type RosterService struct {
	wrestlers    RosterStore
	achievements AchievementReader
	logger       zerolog.Logger
}

func NewRosterService(
	wrestlers RosterStore,
	achievements AchievementReader,
	logger zerolog.Logger,
) *RosterService {
	return &RosterService{
		wrestlers:    wrestlers,
		achievements: achievements,
		logger:       logger,
	}
}

// GetWrestler returns the profile for one wrestler, or (nil, nil) when the
// ID is not on the roster.
func (s *RosterService) GetWrestler(ctx context.Context, id string) (*WrestlerProfile, error) {
	w, err := s.wrestlers.FindCurrentState(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load wrestler: %w", err)
	}
	if w == nil {
		return nil, nil
	}

	injuries, err := s.wrestlers.ActiveInjuries(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load injuries: %w", err)
	}

	achievements, err := s.achievements.ListByWrestler(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	return &WrestlerProfile{
		Wrestler:     *w,
		Injuries:     injuries,
		Achievements: achievements,
	}, nil
}

func (s *RosterService) ListWrestlers(ctx context.Context, limit int) ([]domain.Wrestler, error) {
	return s.wrestlers.List(ctx, limit)
}

func (s *RosterService) UpsertWrestler(ctx context.Context, w *domain.Wrestler) error {
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return ErrInvalidWrestler
	}
	if err := s.wrestlers.Upsert(ctx, w); err != nil {
		return fmt.Errorf("failed to upsert wrestler: %w", err)
	}
	s.logger.Info().Str("wrestler_id", w.ID).Str("name", w.Name).Msg("wrestler upserted")
	return nil
}

// RecordInjury stores a new injury against an existing roster member.
func (s *RosterService) RecordInjury(ctx context.Context, injury *domain.Injury) error {
	w, err := s.wrestlers.FindCurrentState(ctx, injury.WrestlerID)
	if err != nil {
		return fmt.Errorf("failed to load wrestler: %w", err)
	}
	if w == nil {
		return fmt.Errorf("%w: %s", ErrUnknownWrestler, injury.WrestlerID)
	}

	if err := s.wrestlers.RecordInjury(ctx, injury); err != nil {
		return fmt.Errorf("failed to record injury: %w", err)
	}
	s.logger.Info().Str("wrestler_id", injury.WrestlerID).Str("injury_id", injury.ID).Msg("injury recorded")
	return nil
}

func (s *RosterService) HealInjury(ctx context.Context, injuryID string) error {
	if err := s.wrestlers.HealInjury(ctx, injuryID); err != nil {
		return fmt.Errorf("failed to heal injury: %w", err)
	}
	s.logger.Info().Str("injury_id", injuryID).Msg("injury healed")
	return nil
}

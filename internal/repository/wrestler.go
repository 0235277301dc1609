package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"wrestling-booker/internal/db"
	"wrestling-booker/internal/domain"
)

// WrestlerRepository is the wrestler-state collaborator backing segment
// resolution. Lookups and mutations report a missing wrestler (or a fan
// mutation that would drop the total below zero) as (nil, nil), never as an
// error; callers treat absence as a soft condition.
type WrestlerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewWrestlerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *WrestlerRepository {
	return &WrestlerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *WrestlerRepository) FindCurrentState(ctx context.Context, id string) (*domain.Wrestler, error) {
	row, err := r.queries.GetWrestler(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wrestler %s: %w", id, err)
	}
	return wrestlerFromRow(row.ID, row.Name, row.FanWeight, row.Tier, row.Bumps, row.ActiveInjuries,
		row.IsChampion, row.HasAccount, row.CreatedAt, row.UpdatedAt), nil
}

func (r *WrestlerRepository) FindByName(ctx context.Context, name string) (*domain.Wrestler, error) {
	row, err := r.queries.GetWrestlerByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wrestler by name %q: %w", name, err)
	}
	return wrestlerFromRow(row.ID, row.Name, row.FanWeight, row.Tier, row.Bumps, row.ActiveInjuries,
		row.IsChampion, row.HasAccount, row.CreatedAt, row.UpdatedAt), nil
}

// AwardFans applies a signed fan delta. The update is conditional: a delta
// that would push the fan total negative matches no row and reports
// absence, which is how "cannot afford" surfaces to the engine.
func (r *WrestlerRepository) AwardFans(ctx context.Context, id string, delta int) (*domain.Wrestler, error) {
	row, err := r.queries.AwardFans(ctx, db.AwardFansParams{
		FanDelta:  int64(delta),
		UpdatedAt: time.Now(),
		ID:        id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("wrestler_id", id).Int("delta", delta).Msg("fan award matched no row")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to award fans to %s: %w", id, err)
	}
	return r.hydrate(ctx, row)
}

func (r *WrestlerRepository) AddBump(ctx context.Context, id string) (*domain.Wrestler, error) {
	row, err := r.queries.AddBump(ctx, db.AddBumpParams{
		UpdatedAt: time.Now(),
		ID:        id,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to add bump to %s: %w", id, err)
	}
	return r.hydrate(ctx, row)
}

func (r *WrestlerRepository) List(ctx context.Context, limit int) ([]domain.Wrestler, error) {
	rows, err := r.queries.ListWrestlers(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Wrestler, len(rows))
	for i, row := range rows {
		out[i] = *wrestlerFromRow(row.ID, row.Name, row.FanWeight, row.Tier, row.Bumps, row.ActiveInjuries,
			row.IsChampion, row.HasAccount, row.CreatedAt, row.UpdatedAt)
	}
	return out, nil
}

func (r *WrestlerRepository) Upsert(ctx context.Context, w *domain.Wrestler) error {
	if w.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		w.ID = id
	}
	now := time.Now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now

	return r.queries.UpsertWrestler(ctx, db.UpsertWrestlerParams{
		ID:         w.ID,
		Name:       w.Name,
		FanWeight:  int64(w.FanWeight),
		Tier:       w.Tier.String(),
		Bumps:      int64(w.Bumps),
		IsChampion: w.IsChampion,
		HasAccount: w.HasAccount,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	})
}

func (r *WrestlerRepository) ActiveInjuries(ctx context.Context, wrestlerID string) ([]domain.Injury, error) {
	rows, err := r.queries.ListActiveInjuries(ctx, wrestlerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Injury, len(rows))
	for i, row := range rows {
		out[i] = domain.Injury{
			ID:          row.ID,
			WrestlerID:  row.WrestlerID,
			Description: row.Description,
			OccurredAt:  row.OccurredAt,
			HealedAt:    row.HealedAt,
		}
	}
	return out, nil
}

func (r *WrestlerRepository) RecordInjury(ctx context.Context, injury *domain.Injury) error {
	if injury.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		injury.ID = id
	}
	if injury.OccurredAt.IsZero() {
		injury.OccurredAt = time.Now()
	}
	return r.queries.InsertInjury(ctx, db.InsertInjuryParams{
		ID:          injury.ID,
		WrestlerID:  injury.WrestlerID,
		Description: injury.Description,
		OccurredAt:  injury.OccurredAt,
		HealedAt:    injury.HealedAt,
	})
}

// HealInjury stamps an active injury as healed. Healing an unknown or
// already-healed injury is a no-op, so the call is idempotent.
func (r *WrestlerRepository) HealInjury(ctx context.Context, injuryID string) error {
	now := time.Now()
	return r.queries.HealInjury(ctx, db.HealInjuryParams{
		HealedAt: &now,
		ID:       injuryID,
	})
}

// hydrate re-reads the wrestler with its injury count after a mutation, so
// the engine always sees a complete snapshot.
func (r *WrestlerRepository) hydrate(ctx context.Context, row db.Wrestler) (*domain.Wrestler, error) {
	current, err := r.FindCurrentState(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		// mutated a row that vanished between statements; treat as absence
		r.logger.Warn().Str("wrestler_id", row.ID).Msg("wrestler disappeared after mutation")
		return nil, nil
	}
	return current, nil
}

func wrestlerFromRow(id, name string, fanWeight int64, tier string, bumps, activeInjuries int64,
	isChampion, hasAccount bool, createdAt, updatedAt time.Time) *domain.Wrestler {
	parsedTier, err := domain.ParseTier(tier)
	if err != nil {
		parsedTier = domain.TierRookie
	}
	return &domain.Wrestler{
		ID:             id,
		Name:           name,
		FanWeight:      int(fanWeight),
		Tier:           parsedTier,
		Bumps:          int(bumps),
		ActiveInjuries: int(activeInjuries),
		IsChampion:     isChampion,
		HasAccount:     hasAccount,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

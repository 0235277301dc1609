package repository

import (
	"context"
	"database/sql"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"wrestling-booker/internal/constants"
	"wrestling-booker/internal/db"
	"wrestling-booker/internal/domain"
)

// AchievementRepository receives fire-and-forget unlock signals from the
// engine. Unlock never reports failure to the caller; a lost unlock is
// logged and dropped.
type AchievementRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewAchievementRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *AchievementRepository {
	return &AchievementRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *AchievementRepository) Unlock(ctx context.Context, wrestlerID, code string) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	id, err := gonanoid.New()
	if err != nil {
		r.logger.Error().Err(err).Str("wrestler_id", wrestlerID).Str("code", code).Msg("failed to generate achievement id")
		return
	}

	err = r.queries.UnlockAchievement(ctx, db.UnlockAchievementParams{
		ID:         id,
		WrestlerID: wrestlerID,
		Code:       code,
		UnlockedAt: time.Now(),
	})
	if err != nil {
		r.logger.Error().Err(err).Str("wrestler_id", wrestlerID).Str("code", code).Msg("failed to unlock achievement")
		return
	}

	r.logger.Info().Str("wrestler_id", wrestlerID).Str("code", code).Msg("achievement unlocked")
}

func (r *AchievementRepository) ListByWrestler(ctx context.Context, wrestlerID string) ([]domain.Achievement, error) {
	rows, err := r.queries.ListAchievements(ctx, wrestlerID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Achievement, len(rows))
	for i, row := range rows {
		out[i] = domain.Achievement{
			ID:         row.ID,
			WrestlerID: row.WrestlerID,
			Code:       row.Code,
			UnlockedAt: row.UnlockedAt,
		}
	}
	return out, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"wrestling-booker/internal/db"
	"wrestling-booker/internal/domain"
)

// SegmentRepository persists resolved segments and their per-wrestler
// reward records.
type SegmentRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSegmentRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SegmentRepository {
	return &SegmentRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// SegmentWithParticipants is the enriched read shape.
type SegmentWithParticipants struct {
	Segment      domain.Segment
	Participants []domain.SegmentParticipant
}

// Save writes the segment and all participant records in one transaction.
func (r *SegmentRepository) Save(ctx context.Context, segment *domain.Segment, participants []domain.SegmentParticipant) error {
	if segment.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		segment.ID = id
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	err = qtx.InsertSegment(ctx, db.InsertSegmentParams{
		ID:             segment.ID,
		Kind:           string(segment.Kind),
		Stipulation:    segment.Stipulation,
		RuleID:         segment.RuleID,
		WinnerTeam:     segment.WinnerTeam,
		WinProbability: segment.WinProbability,
		QualityRoll:    int64(segment.QualityRoll),
		Narration:      segment.Narration,
		CreatedAt:      segment.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert segment: %w", err)
	}

	for _, p := range participants {
		err := qtx.InsertSegmentParticipant(ctx, db.InsertSegmentParticipantParams{
			SegmentID:   segment.ID,
			WrestlerID:  p.WrestlerID,
			TeamSlot:    int64(p.TeamSlot),
			IsWinner:    p.IsWinner,
			FanDelta:    int64(p.FanDelta),
			BumpGranted: p.BumpGranted,
		})
		if err != nil {
			return fmt.Errorf("failed to insert participant %s: %w", p.WrestlerID, err)
		}
	}

	return tx.Commit()
}

func (r *SegmentRepository) Get(ctx context.Context, id string) (*SegmentWithParticipants, error) {
	row, err := r.queries.GetSegment(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment %s: %w", id, err)
	}

	participantRows, err := r.queries.ListSegmentParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants for %s: %w", id, err)
	}

	out := &SegmentWithParticipants{Segment: segmentFromRow(row)}
	for _, p := range participantRows {
		out.Participants = append(out.Participants, domain.SegmentParticipant{
			SegmentID:   p.SegmentID,
			WrestlerID:  p.WrestlerID,
			TeamSlot:    int(p.TeamSlot),
			IsWinner:    p.IsWinner,
			FanDelta:    int(p.FanDelta),
			BumpGranted: p.BumpGranted,
		})
	}
	return out, nil
}

func (r *SegmentRepository) ListRecent(ctx context.Context, limit int) ([]domain.Segment, error) {
	rows, err := r.queries.ListRecentSegments(ctx, int64(limit))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Segment, len(rows))
	for i, row := range rows {
		out[i] = segmentFromRow(row)
	}
	return out, nil
}

func segmentFromRow(row db.Segment) domain.Segment {
	return domain.Segment{
		ID:             row.ID,
		Kind:           domain.SegmentKind(row.Kind),
		Stipulation:    row.Stipulation,
		RuleID:         row.RuleID,
		WinnerTeam:     row.WinnerTeam,
		WinProbability: row.WinProbability,
		QualityRoll:    int(row.QualityRoll),
		Narration:      row.Narration,
		CreatedAt:      row.CreatedAt,
	}
}

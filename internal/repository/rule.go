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

// RuleRepository is the stipulation-rule collaborator. FindByName reports a
// missing rule as (nil, nil).
type RuleRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewRuleRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *RuleRepository {
	return &RuleRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *RuleRepository) FindByName(ctx context.Context, name string) (*domain.Rule, error) {
	row, err := r.queries.GetRuleByName(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rule %q: %w", name, err)
	}
	rule := ruleFromRow(row)
	return &rule, nil
}

func (r *RuleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return r.queries.RuleExistsByName(ctx, name)
}

func (r *RuleRepository) HighHeatRules(ctx context.Context) ([]domain.Rule, error) {
	rows, err := r.queries.ListHighHeatRules(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Rule, len(rows))
	for i, row := range rows {
		out[i] = ruleFromRow(row)
	}
	return out, nil
}

func (r *RuleRepository) Upsert(ctx context.Context, rule *domain.Rule) error {
	if rule.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		rule.ID = id
	}
	now := time.Now()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now

	return r.queries.UpsertRule(ctx, db.UpsertRuleParams{
		ID:               rule.ID,
		Name:             rule.Name,
		Description:      rule.Description,
		RequiresHighHeat: rule.RequiresHighHeat,
		IsActive:         rule.IsActive,
		BumpPolicy:       string(rule.BumpPolicy),
		CreatedAt:        rule.CreatedAt,
		UpdatedAt:        rule.UpdatedAt,
	})
}

func ruleFromRow(row db.Rule) domain.Rule {
	return domain.Rule{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		RequiresHighHeat: row.RequiresHighHeat,
		IsActive:         row.IsActive,
		BumpPolicy:       domain.ParseBumpPolicy(row.BumpPolicy),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/domain"
	"wrestling-booker/internal/repository"
)

// ErrInvalidRule is returned when a rule write is missing its name.
var ErrInvalidRule = errors.New("rule name is required")

// RulesService owns stipulation-rule administration. Resolution itself only
// reads rules; everything here runs outside the segment hot path.
type RulesService struct {
	rules  *repository.RuleRepository
	logger zerolog.Logger
}

func NewRulesService(rules *repository.RuleRepository, logger zerolog.Logger) *RulesService {
	return &RulesService{
		rules:  rules,
		logger: logger,
	}
}

// HighHeatRules lists the active rules that require a high-heat segment.
func (s *RulesService) HighHeatRules(ctx context.Context) ([]domain.Rule, error) {
	return s.rules.HighHeatRules(ctx)
}

func (s *RulesService) UpsertRule(ctx context.Context, rule *domain.Rule) error {
	rule.Name = strings.TrimSpace(rule.Name)
	if rule.Name == "" {
		return ErrInvalidRule
	}

	existed, err := s.rules.ExistsByName(ctx, rule.Name)
	if err != nil {
		return fmt.Errorf("failed to check rule existence: %w", err)
	}

	if err := s.rules.Upsert(ctx, rule); err != nil {
		return fmt.Errorf("failed to upsert rule: %w", err)
	}

	event := "rule created"
	if existed {
		event = "rule updated"
	}
	s.logger.Info().Str("rule_id", rule.ID).Str("name", rule.Name).Msg(event)
	return nil
}

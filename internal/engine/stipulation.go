package engine

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"wrestling-booker/internal/domain"
)

// StandardMatch is the sentinel stipulation name meaning "no special rule".
const StandardMatch = "Standard Match"

// StipulationApplier maps a free-text stipulation name to zero or one
// configured rule record.
type StipulationApplier struct {
	rules  RuleFinder
	logger zerolog.Logger
}

func NewStipulationApplier(rules RuleFinder, logger zerolog.Logger) *StipulationApplier {
	return &StipulationApplier{rules: rules, logger: logger}
}

// Apply resolves name to its rule record. A blank name or the Standard
// Match sentinel is an explicit no-op; a name with no configured rule is
// logged and ignored. A missing stipulation is never fatal to resolution,
// so the only error returned is a collaborator failure.
func (a *StipulationApplier) Apply(ctx context.Context, name string) (*domain.Rule, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == StandardMatch {
		return nil, nil
	}

	rule, err := a.rules.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		a.logger.Warn().Str("stipulation", name).Msg("no rule configured for stipulation, proceeding without")
		return nil, nil
	}
	if !rule.IsActive {
		a.logger.Warn().Str("stipulation", name).Msg("stipulation rule is inactive, proceeding without")
		return nil, nil
	}

	a.logger.Debug().Str("stipulation", name).Str("rule_id", rule.ID).Msg("stipulation rule attached")
	return rule, nil
}

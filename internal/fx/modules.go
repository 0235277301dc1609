package fx

import (
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"wrestling-booker/internal/api"
	"wrestling-booker/internal/balance"
	"wrestling-booker/internal/config"
	"wrestling-booker/internal/database"
	"wrestling-booker/internal/db"
	"wrestling-booker/internal/dice"
	"wrestling-booker/internal/engine"
	"wrestling-booker/internal/logger"
	"wrestling-booker/internal/repository"
	"wrestling-booker/internal/server"
	"wrestling-booker/internal/service"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideTables(cfg *config.Config) (*balance.Tables, error) {
	return balance.Load(cfg.BalancePath)
}

func ProvideDiceSource() (dice.Source, error) {
	return dice.NewCryptoSeededSource()
}

func ProvideResolver(state engine.WrestlerState, calc *engine.WeightCalculator, src dice.Source, tables *balance.Tables, log zerolog.Logger) *engine.Resolver {
	return engine.NewResolver(state, calc, src, tables.DefaultNarrativeWeight, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	fx.Provide(ProvideTables),
	fx.Provide(ProvideDiceSource),
	// repos
	fx.Provide(repository.NewWrestlerRepository),
	fx.Provide(repository.NewRuleRepository),
	fx.Provide(repository.NewSegmentRepository),
	fx.Provide(repository.NewAchievementRepository),
	// engine collaborators
	fx.Provide(func(r *repository.WrestlerRepository) engine.WrestlerState { return r }),
	fx.Provide(func(r *repository.RuleRepository) engine.RuleFinder { return r }),
	fx.Provide(func(r *repository.AchievementRepository) engine.AchievementSink { return r }),
	fx.Provide(func(r *repository.SegmentRepository) service.SegmentStore { return r }),
	fx.Provide(func(r *repository.WrestlerRepository) service.RosterStore { return r }),
	fx.Provide(func(r *repository.AchievementRepository) service.AchievementReader { return r }),
	// engine
	fx.Provide(engine.NewWeightCalculator),
	fx.Provide(ProvideResolver),
	fx.Provide(engine.NewRewardEngine),
	fx.Provide(engine.NewStipulationApplier),
	// api client
	fx.Provide(api.NewNarrationClient),
	fx.Provide(func(c *api.NarrationClient) service.Narrator { return c }),
	// svc
	fx.Provide(service.NewSegmentService),
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewRulesService),
	// server
	fx.Provide(server.NewBookingServer),
)

package components

import (
	"fieldsync/internal/domain/conflict"
	"fieldsync/internal/pkg/clock"
	"fieldsync/internal/pkg/config"
	"fieldsync/internal/usecase"
	"fieldsync/internal/usecase/commands"
	"fieldsync/internal/usecase/queries"
	"fieldsync/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	func(cfg config.Config) conflict.EditPolicy {
		return conflict.EditPolicy{
			CreatorWindow: cfg.Conflict.CreatorEditWindow,
			CrewWindow:    cfg.Conflict.CrewEditWindow,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewDraftCommands,
		commands.NewEvidenceCommands,
		commands.NewFinalizeCommands,
		commands.NewConflictCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ExitRequestCommands {
			return commands.NewExitRequestCommands(uow, clk, cfg.Exit.AuthDeadline)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.IdempotencyStore {
			return commands.NewIdempotencyStore(uow, clk, cfg.Idempotency.TTL)
		},
		commands.NewMaintenanceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDraftQueries,
		func(store queries.ConflictReadStore, cfg config.Config) queries.ConflictQueries {
			return queries.NewConflictQueries(store, cfg.Conflict.MineLimit)
		},
		queries.NewExitRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

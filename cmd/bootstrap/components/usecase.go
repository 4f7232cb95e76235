package components

import (
	"gavel/internal/infra/queue"
	"gavel/internal/pkg/clock"
	"gavel/internal/usecase"
	"gavel/internal/usecase/commands"
	"gavel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(p *queue.Producer) commands.TaskEnqueuer {
		return p
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBidCommands,
		commands.NewAuctionCommands,
		commands.NewLifecycleCommands,
		commands.NewUserCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuctionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewPermissionChecker,
	),
)

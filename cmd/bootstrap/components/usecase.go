package components

import (
	"campus-canteen/internal/domain/order"
	"campus-canteen/internal/infra/metrics"
	"campus-canteen/internal/pkg/clock"
	"campus-canteen/internal/pkg/config"
	"campus-canteen/internal/usecase"
	"campus-canteen/internal/usecase/commands"
	"campus-canteen/internal/usecase/queries"
	"campus-canteen/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		metrics.NewRecorder,
		fx.As(new(shared.EventRecorder)),
	),
	func(cfg config.Config) order.Policy {
		return order.Policy{
			StrictAccept:        cfg.Engine.StrictAccept,
			EnforceSlotCapacity: cfg.Engine.EnforceSlotCapacity,
			ReleaseOnReject:     cfg.Engine.ReleaseOnReject,
		}
	},
	func(cfg config.Config) commands.WalletSettings {
		return commands.WalletSettings{InitialBalance: cfg.Wallet.InitialBalance}
	},
	func(cfg config.Config) commands.TopUpSettings {
		return commands.TopUpSettings{
			InitialBalance: cfg.Wallet.InitialBalance,
			Delay:          cfg.Wallet.TopUpDelay,
			MaxAmount:      cfg.Wallet.MaxTopUp,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewWalletCommands,
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
		queries.NewAnalyticsQueries,
		func(uow shared.UnitOfWork, cfg config.Config, clk clock.Clock) queries.WalletQueries {
			return queries.NewWalletQueries(uow, cfg.Wallet.InitialBalance, clk)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

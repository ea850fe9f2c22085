package components

import (
	"marketplace-api/internal/domain/reservation"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) reservation.CancelPolicy {
		return reservation.CancelPolicy{
			MinLeadTime: cfg.Cancellation.MinLeadTime,
			MaxAge:      cfg.Cancellation.MaxAge,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCheckoutCommands,
		commands.NewOfferCommands,
		commands.NewCancellationCommands,
		commands.NewAdminCancellationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewOfferQueries,
		queries.NewReservationQueries,
		queries.NewCancellationQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

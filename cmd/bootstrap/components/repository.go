package components

import (
	"marketplace-api/internal/infra/cache"
	"marketplace-api/internal/infra/db"
	"marketplace-api/internal/infra/readstore"
	"marketplace-api/internal/infra/repository"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewCancellationReadStore,
			fx.As(new(queries.CancellationReadStore)),
			fx.As(new(commands.CancellationReads)),
		),
		fx.Annotate(
			readstore.NewActivityReadStore,
			fx.As(new(queries.ActivityReadStore)),
		),
		fx.Annotate(
			cache.NewBadgeStore,
			fx.As(new(queries.LastSeenStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

package components

import (
	"marketplace-api/internal/handler"
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewReservationHandler,
		api.NewAdminCancellationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

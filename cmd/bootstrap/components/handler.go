package components

import (
	"devion-storefront/internal/handler"
	"devion-storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewAddressHandler,
	),
	fx.Invoke(handler.NewRouter),
)

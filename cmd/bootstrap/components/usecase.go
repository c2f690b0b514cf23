package components

import (
	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/domain/coupon"
	"devion-storefront/internal/pkg/clock"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	coupon.NewEngine,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
		NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		NewAddressQueries,
	),
)

func NewCheckoutCommands(
	cartRepo commands.CartRepository,
	checkoutRepo commands.CheckoutRepository,
	engine *coupon.Engine,
	gateways map[checkout.PaymentMethod]commands.PaymentGateway,
	clk clock.Clock,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(
		cartRepo, checkoutRepo, engine, gateways, clk,
		cfg.Store.SnapshotTTL, cfg.Store.Currency,
	)
}

func NewAddressQueries(resolver queries.PostalResolver, cfg config.Config) queries.AddressQueries {
	return queries.NewAddressQueries(resolver, cfg.Lookup.MinPostalLength)
}

package components

import (
	"devion-storefront/internal/infra/kv"
	"devion-storefront/internal/infra/repository"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			kv.NewPostgresStore,
			fx.As(new(kv.Store)),
		),
		fx.Annotate(
			NewCartRepository,
			fx.As(new(commands.CartRepository)),
			fx.As(new(queries.CartReadStore)),
		),
		fx.Annotate(
			repository.NewCheckoutRepository,
			fx.As(new(commands.CheckoutRepository)),
		),
	),
)

func NewCartRepository(store kv.Store, cfg config.Config) (*repository.CartRepository, error) {
	shippingFee, err := decimal.NewFromString(cfg.Store.ShippingFee)
	if err != nil {
		return nil, err
	}
	return repository.NewCartRepository(store, shippingFee), nil
}

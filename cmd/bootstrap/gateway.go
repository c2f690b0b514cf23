package bootstrap

import (
	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/infra/gateway"
	"devion-storefront/internal/pkg/clock"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/usecase/commands"
	"devion-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewPaymentGateways,
		fx.Annotate(
			NewZipLookupClient,
			fx.As(new(queries.PostalResolver)),
		),
	),
)

func NewPaymentGateways(cfg config.Config, clk clock.Clock) map[checkout.PaymentMethod]commands.PaymentGateway {
	paypal := gateway.NewPayPalGateway(cfg.PayPal, clk)
	mercado := gateway.NewMercadoPagoGateway(cfg.Mercado)

	return map[checkout.PaymentMethod]commands.PaymentGateway{
		paypal.Method():  paypal,
		mercado.Method(): mercado,
	}
}

func NewZipLookupClient(cfg config.Config) *gateway.ZipLookupClient {
	return gateway.NewZipLookupClient(cfg.Lookup)
}

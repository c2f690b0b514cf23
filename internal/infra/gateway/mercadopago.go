package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/commands"

	"github.com/sony/gobreaker/v2"
)

// MercadoPagoGateway creates checkout preferences and verifies payments.
// The widget flow hands back a payment id on approval; Capture confirms it
// really reached approved status before the order completes.
type MercadoPagoGateway struct {
	cfg     config.MercadoPagoConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) *MercadoPagoGateway {
	return &MercadoPagoGateway{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newBreaker("mercadopago"),
	}
}

func (g *MercadoPagoGateway) Method() checkout.PaymentMethod {
	return checkout.MethodMercadoPago
}

type mercadoPreferenceItem struct {
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency_id"`
}

type mercadoPreferenceRequest struct {
	Items []mercadoPreferenceItem `json:"items"`
}

type mercadoPreferenceResponse struct {
	ID string `json:"id"`
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, desc commands.OrderDescriptor) (string, error) {
	payload, err := json.Marshal(mercadoPreferenceRequest{
		Items: []mercadoPreferenceItem{{
			Title:     desc.Description,
			Quantity:  1,
			UnitPrice: desc.Amount.StringFixed(2),
			Currency:  desc.Currency,
		}},
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode preference request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/checkout/preferences", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build preference request")
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := doRequest(g.breaker, g.client, req)
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", errs.Mark(
			errs.New(fmt.Sprintf("mercadopago create preference returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body mercadoPreferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode preference response")
	}
	return body.ID, nil
}

type mercadoPaymentResponse struct {
	ID     json.Number `json:"id"`
	Status string      `json:"status"`
	Payer  struct {
		FirstName string `json:"first_name"`
	} `json:"payer"`
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, paymentID string) (*commands.CaptureResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/v1/payments/%s", g.cfg.BaseURL, paymentID), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.AccessToken)

	resp, err := doRequest(g.breaker, g.client, req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("mercadopago payment lookup returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body mercadoPaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment response")
	}

	if body.Status != "approved" {
		return nil, errs.New(fmt.Sprintf("payment %s not approved (status %s)", paymentID, body.Status))
	}

	return &commands.CaptureResult{
		TransactionID: body.ID.String(),
		PayerName:     body.Payer.FirstName,
	}, nil
}

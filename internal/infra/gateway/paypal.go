package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"devion-storefront/internal/domain/checkout"
	"devion-storefront/internal/pkg/clock"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/commands"

	"github.com/sony/gobreaker/v2"
)

// PayPalGateway drives the Orders v2 API. OAuth tokens are cached until
// shortly before expiry; a token refresh shares the breaker with the order
// calls so an unreachable API trips once.
type PayPalGateway struct {
	cfg     config.PayPalConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	clock   clock.Clock

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewPayPalGateway(cfg config.PayPalConfig, clk clock.Clock) *PayPalGateway {
	return &PayPalGateway{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newBreaker("paypal"),
		clock:   clk,
	}
}

func (g *PayPalGateway) Method() checkout.PaymentMethod {
	return checkout.MethodPayPal
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (g *PayPalGateway) token(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && g.clock.Now().Before(g.tokenExpiry) {
		return g.accessToken, nil
	}

	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(g.cfg.ClientID, g.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := doRequest(g.breaker, g.client, req)
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", errs.Mark(
			errs.New(fmt.Sprintf("paypal token request returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}

	g.accessToken = body.AccessToken
	// refresh a minute early so in-flight calls never race expiry
	g.tokenExpiry = g.clock.Now().Add(time.Duration(body.ExpiresIn-60) * time.Second)
	return g.accessToken, nil
}

type paypalAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalPurchaseUnit struct {
	Amount      paypalAmount `json:"amount"`
	Description string       `json:"description,omitempty"`
}

type paypalOrderRequest struct {
	Intent        string               `json:"intent"`
	PurchaseUnits []paypalPurchaseUnit `json:"purchase_units"`
}

type paypalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, desc commands.OrderDescriptor) (string, error) {
	token, err := g.token(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(paypalOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []paypalPurchaseUnit{{
			Amount: paypalAmount{
				CurrencyCode: desc.Currency,
				Value:        desc.Amount.StringFixed(2),
			},
			Description: desc.Description,
		}},
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.BaseURL+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return "", errs.Wrap(err, "failed to build order request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := doRequest(g.breaker, g.client, req)
	if err != nil {
		return "", err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", errs.Mark(
			errs.New(fmt.Sprintf("paypal create order returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body paypalOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errs.Wrap(err, "failed to decode order response")
	}
	return body.ID, nil
}

type paypalCaptureResponse struct {
	Payer struct {
		Name struct {
			GivenName string `json:"given_name"`
		} `json:"name"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID string `json:"id"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (g *PayPalGateway) Capture(ctx context.Context, orderID string) (*commands.CaptureResult, error) {
	token, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v2/checkout/orders/%s/capture", g.cfg.BaseURL, orderID), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build capture request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := doRequest(g.breaker, g.client, req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("paypal capture returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body paypalCaptureResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode capture response")
	}

	result := &commands.CaptureResult{PayerName: body.Payer.Name.GivenName}
	if len(body.PurchaseUnits) > 0 && len(body.PurchaseUnits[0].Payments.Captures) > 0 {
		result.TransactionID = body.PurchaseUnits[0].Payments.Captures[0].ID
	}
	if result.TransactionID == "" {
		result.TransactionID = orderID
	}
	return result, nil
}

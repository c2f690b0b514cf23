package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/pkg/errs"
	"devion-storefront/internal/usecase/queries"

	"github.com/sony/gobreaker/v2"
)

// ZipLookupClient queries the zippopotam.us API. An unknown postal code is a
// normal outcome (ErrLookupNotFound), not a gateway failure.
type ZipLookupClient struct {
	cfg     config.LookupConfig
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

func NewZipLookupClient(cfg config.LookupConfig) *ZipLookupClient {
	return &ZipLookupClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: newBreaker("ziplookup"),
	}
}

type zipLookupResponse struct {
	Places []struct {
		PlaceName         string `json:"place name"`
		State             string `json:"state"`
		StateAbbreviation string `json:"state abbreviation"`
	} `json:"places"`
}

func (c *ZipLookupClient) Resolve(ctx context.Context, country, postal string) (*queries.Place, error) {
	endpoint := fmt.Sprintf("%s/%s/%s",
		c.cfg.BaseURL, url.PathEscape(country), url.PathEscape(postal))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build lookup request")
	}

	resp, err := doRequest(c.breaker, c.client, req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.ErrLookupNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("postal lookup returned %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var body zipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode lookup response")
	}
	if len(body.Places) == 0 {
		return nil, errs.ErrLookupNotFound
	}

	first := body.Places[0]
	return &queries.Place{
		City:       first.PlaceName,
		Region:     first.State,
		RegionCode: first.StateAbbreviation,
	}, nil
}

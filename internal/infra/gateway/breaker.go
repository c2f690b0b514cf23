// Package gateway holds outbound HTTP clients. Every upstream call runs
// through its own circuit breaker so a dead service fails fast instead of
// tying up request handlers.
package gateway

import (
	"io"
	"net/http"
	"time"

	"devion-storefront/internal/pkg/errs"

	"github.com/sony/gobreaker/v2"
)

func newBreaker(name string) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// doRequest executes the request through the breaker. An open breaker or a
// transport error both surface as ErrGatewayUnavailable; HTTP status handling
// stays with the caller.
func doRequest(cb *gobreaker.CircuitBreaker[*http.Response], client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := cb.Execute(func() (*http.Response, error) {
		return client.Do(req)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}
	return resp, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

//go:build unit

package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devion-storefront/internal/infra/gateway"
	"devion-storefront/internal/pkg/config"
	"devion-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookupClient(serverURL string) *gateway.ZipLookupClient {
	return gateway.NewZipLookupClient(config.LookupConfig{
		BaseURL:         serverURL,
		Timeout:         2 * time.Second,
		MinPostalLength: 3,
	})
}

func TestZipLookupClient_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mx/06600", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"post code": "06600",
			"country": "Mexico",
			"places": [
				{"place name": "Juárez", "state": "Ciudad de México", "state abbreviation": "CMX"},
				{"place name": "Roma Norte", "state": "Ciudad de México", "state abbreviation": "CMX"}
			]
		}`))
	}))
	defer server.Close()

	place, err := newLookupClient(server.URL).Resolve(context.Background(), "mx", "06600")

	require.NoError(t, err)
	// the first place wins when a postal code spans several
	assert.Equal(t, "Juárez", place.City)
	assert.Equal(t, "Ciudad de México", place.Region)
	assert.Equal(t, "CMX", place.RegionCode)
}

func TestZipLookupClient_Resolve_UnknownPostal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newLookupClient(server.URL).Resolve(context.Background(), "mx", "00000")

	assert.ErrorIs(t, err, errs.ErrLookupNotFound)
}

func TestZipLookupClient_Resolve_EmptyPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"places": []}`))
	}))
	defer server.Close()

	_, err := newLookupClient(server.URL).Resolve(context.Background(), "mx", "06600")

	assert.ErrorIs(t, err, errs.ErrLookupNotFound)
}

func TestZipLookupClient_Resolve_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newLookupClient(server.URL).Resolve(context.Background(), "mx", "06600")

	assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
}

func TestZipLookupClient_Resolve_EscapesPathSegments(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _ = newLookupClient(server.URL).Resolve(context.Background(), "mx", "06 600")

	assert.Equal(t, "/mx/06%20600", gotPath)
}

package fixer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parkingflow/parking_flow_app/internal/adapters/rates/fixer"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLatest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "USD,EUR,PLN", r.URL.Query().Get("symbols"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"timestamp": 1709724000,
			"base": "USD",
			"date": "2024-03-06",
			"rates": {"USD": 1, "EUR": 0.9215, "PLN": 3.9471}
		}`))
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")
	snapshot, err := client.FetchLatest(context.Background())

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.Success)
	assert.Equal(t, "USD", snapshot.Base)
	assert.Equal(t, "2024-03-06", snapshot.Date)
	assert.True(t, snapshot.Rate("EUR").Equal(decimal.NewFromFloat(0.9215)))
	assert.True(t, snapshot.Rate("XXX").IsZero(), "missing currency reads as zero")
}

func TestFetchHistorical_UsesDateEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2023-11-18", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("format"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"base": "USD",
			"date": "2023-11-18",
			"rates": {"USD": 1, "EUR": 0.9163}
		}`))
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")
	date := time.Date(2023, 11, 18, 0, 0, 0, 0, time.UTC)
	snapshot, err := client.FetchHistorical(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, "2023-11-18", snapshot.Date)
	assert.True(t, snapshot.Rate("EUR").Equal(decimal.NewFromFloat(0.9163)))
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")
	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")
	_, err := client.FetchLatest(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedResponse)
}

func TestFetch_UnsuccessfulPayloadIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "rates": {}}`))
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")
	snapshot, err := client.FetchLatest(context.Background())

	require.NoError(t, err, "success=false over HTTP 200 is a valid snapshot")
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.Success)
}

func TestFetch_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := fixer.NewClient(server.URL, "test-key", "USD,EUR,PLN")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.FetchLatest(ctx)
	require.Error(t, err)
}

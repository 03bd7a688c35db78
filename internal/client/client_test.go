package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/internal/client"
	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// envelopeResponse builds a gateway envelope around a page of results.
func envelopeResponse(offset, limit, total int, results []map[string]any) map[string]any {
	return map[string]any{
		"code":            200,
		"status":          "Ok",
		"copyright":       "© 2026 TEST",
		"attributionText": "Data provided by TEST",
		"data": map[string]any{
			"offset":  offset,
			"limit":   limit,
			"total":   total,
			"count":   len(results),
			"results": results,
		},
	}
}

// characterPayload is a minimal valid character result.
func characterPayload(id int, name string) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        name,
		"resourceURI": "http://gateway.test/v1/public/characters/" + strconv.Itoa(id),
	}
}

// newQueryOnlyClient creates a client whose transport is never exercised,
// for tests that only construct queries.
func newQueryOnlyClient() (*client.Client, error) {
	return client.New(&marvel.Config{
		PublicKey: "pub",
		Fetcher:   marvel.FetcherFunc(func(ctx context.Context, url string) ([]byte, error) { return nil, nil }),
	})
}

// newTestClient creates a client against a stub gateway.
func newTestClient(t *testing.T, serverURL string) *client.Client {
	t.Helper()

	apiClient, err := client.New(&marvel.Config{
		BaseURL:   serverURL,
		PublicKey: "pub",
	})
	require.NoError(t, err)

	return apiClient
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, marvel.ErrConfigRequired)
	})

	t.Run("missing public key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&marvel.Config{})
		require.ErrorIs(t, err, marvel.ErrMissingCredentials)
	})

	t.Run("default transport is wired", func(t *testing.T) {
		t.Parallel()

		requested := false

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requested = true

			assert.Equal(t, "/characters", request.URL.Path)
			assert.NotEmpty(t, request.URL.Query().Get("apikey"))
			_ = json.NewEncoder(writer).Encode(envelopeResponse(0, 20, 1, []map[string]any{
				characterPayload(1009610, "Spider-Man"),
			}))
		}))
		defer server.Close()

		apiClient := newTestClient(t, server.URL)

		_, err := apiClient.Characters().List(context.Background(), nil)
		require.NoError(t, err)
		assert.True(t, requested)
	})

	t.Run("memory cache from config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&marvel.Config{
			BaseURL:   "http://gateway.test",
			PublicKey: "pub",
			Cache:     marvel.DefaultCacheConfig(),
		})
		require.NoError(t, err)
		require.NotNil(t, apiClient.Cache())
	})

	t.Run("injected fetcher skips transport construction", func(t *testing.T) {
		t.Parallel()

		fetcher := marvel.FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
			body, _ := json.Marshal(envelopeResponse(0, 20, 0, []map[string]any{}))

			return body, nil
		})

		apiClient, err := client.New(&marvel.Config{
			PublicKey: "pub",
			Fetcher:   fetcher,
			Cache:     marvel.DefaultCacheConfig(),
		})
		require.NoError(t, err)
		assert.Nil(t, apiClient.Cache())
	})

	t.Run("session is exposed", func(t *testing.T) {
		t.Parallel()

		apiClient, err := client.New(&marvel.Config{
			PublicKey: "pub",
			Fetcher:   marvel.FetcherFunc(func(ctx context.Context, url string) ([]byte, error) { return nil, nil }),
		})
		require.NoError(t, err)
		require.NotNil(t, apiClient.Session())
	})
}

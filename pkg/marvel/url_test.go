package marvel_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

func fixedClock(millis int64) func() time.Time {
	return func() time.Time {
		return time.UnixMilli(millis)
	}
}

func buildURL(t *testing.T, builder *marvel.URLBuilder, endpoint marvel.Endpoint, params marvel.Params) *url.URL {
	t.Helper()

	raw, err := builder.Build(describe(t, endpoint), params)
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	return parsed
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestURLBuilder_Build(t *testing.T) {
	t.Parallel()
	t.Run("reference signature", func(t *testing.T) {
		t.Parallel()

		// Known-good hash for ts=1, private=abcd, public=1234 from the
		// gateway's authentication documentation.
		builder := marvel.NewURLBuilder("https://gateway.marvel.com/v1/public", "1234", "abcd", fixedClock(1))

		parsed := buildURL(t, builder, marvel.NewEndpoint(marvel.TypeComics), nil)
		query := parsed.Query()

		assert.Equal(t, "/v1/public/comics", parsed.Path)
		assert.Equal(t, "1234", query.Get("apikey"))
		assert.Equal(t, "1", query.Get("ts"))
		assert.Equal(t, "ffd275c5130566a2916217b101f26150", query.Get("hash"))
	})

	t.Run("missing public key", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("", "", "abcd", fixedClock(1))

		_, err := builder.Build(describe(t, marvel.NewEndpoint(marvel.TypeComics)), nil)
		require.ErrorIs(t, err, marvel.ErrMissingCredentials)
	})

	t.Run("missing private key sends empty hash", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("", "1234", "", fixedClock(1))

		parsed := buildURL(t, builder, marvel.NewEndpoint(marvel.TypeComics), nil)
		query := parsed.Query()

		require.True(t, query.Has("hash"))
		assert.Empty(t, query.Get("hash"))
	})

	t.Run("deterministic for a fixed clock", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("", "1234", "abcd", fixedClock(77))
		params := marvel.Params{"limit": 20, "offset": 40}

		first, err := builder.Build(describe(t, marvel.NewEndpoint(marvel.TypeCharacters)), params)
		require.NoError(t, err)

		second, err := builder.Build(describe(t, marvel.NewEndpoint(marvel.TypeCharacters)), params)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("default base URL", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("", "1234", "abcd", fixedClock(1))

		raw, err := builder.Build(describe(t, marvel.NewEndpoint(marvel.TypeCharacters)), nil)
		require.NoError(t, err)
		assert.Contains(t, raw, marvel.DefaultBaseURL+"/characters?")
	})

	t.Run("sub-collection path", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("https://gw.test/v1/public/", "1234", "abcd", fixedClock(1))

		parsed := buildURL(t, builder, marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1009491, marvel.TypeComics), nil)
		assert.Equal(t, "/v1/public/characters/1009491/comics", parsed.Path)
	})

	t.Run("parameter rendering", func(t *testing.T) {
		t.Parallel()

		builder := marvel.NewURLBuilder("", "1234", "abcd", fixedClock(1))
		params := marvel.Params{
			"limit":          20,
			"noVariants":     true,
			"modifiedSince":  time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			"comics":         []int{428, 429},
			"orderBy":        []string{"name", "-modified"},
			"nameStartsWith": "Spider",
		}

		parsed := buildURL(t, builder, marvel.NewEndpoint(marvel.TypeCharacters), params)
		query := parsed.Query()

		assert.Equal(t, "20", query.Get("limit"))
		assert.Equal(t, "true", query.Get("noVariants"))
		assert.Equal(t, "2026-03-14", query.Get("modifiedSince"))
		assert.Equal(t, "428,429", query.Get("comics"))
		assert.Equal(t, "name,-modified", query.Get("orderBy"))
		assert.Equal(t, "Spider", query.Get("nameStartsWith"))
	})
}

package marvel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

func TestDecodeResults(t *testing.T) {
	t.Parallel()

	t.Run("raw results decode into typed values", func(t *testing.T) {
		t.Parallel()

		results := []marvel.Result{
			{
				"id":    float64(428),
				"title": "Amazing Spider-Man #1",
				"series": map[string]any{
					"resourceURI": "http://gateway.marvel.com/v1/public/series/1991",
					"name":        "Amazing Spider-Man (1999 - 2013)",
				},
			},
		}

		comics, err := marvel.DecodeResults[marvel.Comic](results)
		require.NoError(t, err)
		require.Len(t, comics, 1)
		assert.Equal(t, 428, comics[0].ID)
		assert.Equal(t, "Amazing Spider-Man #1", comics[0].Title)
		assert.Equal(t, "Amazing Spider-Man (1999 - 2013)", comics[0].Series.Name)
	})

	t.Run("extended results flatten through the round-trip", func(t *testing.T) {
		t.Parallel()

		results := []marvel.Result{
			{
				"id":    float64(428),
				"title": "Amazing Spider-Man #1",
				"endpoint": &marvel.ResourceLink{
					Endpoint:    marvel.NewResourceEndpoint(marvel.TypeComics, 428),
					ResourceURI: "http://gateway.marvel.com/v1/public/comics/428",
				},
				"series": &marvel.ResourceLink{
					Endpoint:    marvel.NewResourceEndpoint(marvel.TypeSeries, 1991),
					ResourceURI: "http://gateway.marvel.com/v1/public/series/1991",
					Name:        "Amazing Spider-Man (1999 - 2013)",
				},
			},
		}

		comics, err := marvel.DecodeResults[marvel.Comic](results)
		require.NoError(t, err)
		require.Len(t, comics, 1)

		// The link keeps the summary's fields, so it decodes back into one.
		assert.Equal(t, "Amazing Spider-Man (1999 - 2013)", comics[0].Series.Name)
		assert.Equal(t, "http://gateway.marvel.com/v1/public/series/1991", comics[0].Series.ResourceURI)
	})
}

//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// TestCatalogWorkflow_CharactersJourney walks the main read path against the
// live gateway: list, get, and related-collection pagination.
func TestCatalogWorkflow_CharactersJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t, false)
	ctx := context.Background()

	// 1. List a page of characters
	page, err := client.Characters().List(ctx, marvel.Params{"limit": 5, "orderBy": "name"})
	require.NoError(t, err, "Failed to list characters")
	require.NotEmpty(t, page.Results)
	assert.LessOrEqual(t, page.Count, 5)
	assert.Positive(t, page.Total)

	// 2. Get the first character by ID
	first := page.Results[0]
	character, err := client.Characters().Get(ctx, first.ID)
	require.NoError(t, err, "Failed to get character %d", first.ID)
	assert.Equal(t, first.Name, character.Name)

	// 3. Page through the character's comics
	query, err := client.Characters().QueryRelated(first.ID, marvel.TypeComics, marvel.Params{"limit": 10})
	require.NoError(t, err)

	_, err = query.Fetch(ctx)
	require.NoError(t, err, "Failed to fetch related comics")
	assert.True(t, query.Fetched())

	if !query.IsComplete() {
		seen := len(query.ResultHistory())

		_, err = query.Fetch(ctx)
		require.NoError(t, err, "Failed to fetch second page")
		assert.Greater(t, len(query.ResultHistory()), seen)
	}
}

// TestCatalogWorkflow_NotFound verifies the gateway's error envelope maps to
// the typed predicates.
func TestCatalogWorkflow_NotFound(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t, false)

	_, err := client.Comics().Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, marvel.IsNotFound(err), "expected a not-found error, got: %v", err)
}

// TestCatalogWorkflow_AutoQuery follows extended links end to end.
func TestCatalogWorkflow_AutoQuery(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t, true)
	ctx := context.Background()

	query, err := client.Session().Query(marvel.NewEndpoint(marvel.TypeCharacters), marvel.Params{
		"name": "Spider-Man (Peter Parker)",
	})
	require.NoError(t, err)

	character, err := query.FetchSingle(ctx)
	require.NoError(t, err, "Failed to fetch character")

	link, ok := character["comics"].(*marvel.CollectionLink)
	require.True(t, ok, "comics field was not extended into a link")
	assert.Positive(t, link.Available)

	comics, err := link.Query(marvel.Params{"limit": 3})
	require.NoError(t, err)

	_, err = comics.Fetch(ctx)
	require.NoError(t, err, "Failed to follow collection link")
	assert.NotEmpty(t, comics.Results())
}

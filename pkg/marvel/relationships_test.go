package marvel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

func TestLookupReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		owner        marvel.ResourceType
		field        string
		expectedType marvel.ResourceType
		expectedKind marvel.RefKind
		found        bool
	}{
		{
			name:         "character comics collection",
			owner:        marvel.TypeCharacters,
			field:        "comics",
			expectedType: marvel.TypeComics,
			expectedKind: marvel.RefCollection,
			found:        true,
		},
		{
			name:         "comic series is a single resource",
			owner:        marvel.TypeComics,
			field:        "series",
			expectedType: marvel.TypeSeries,
			expectedKind: marvel.RefResource,
			found:        true,
		},
		{
			name:         "character series is a collection",
			owner:        marvel.TypeCharacters,
			field:        "series",
			expectedType: marvel.TypeSeries,
			expectedKind: marvel.RefCollection,
			found:        true,
		},
		{
			name:         "comic variants are a bare resource array",
			owner:        marvel.TypeComics,
			field:        "variants",
			expectedType: marvel.TypeComics,
			expectedKind: marvel.RefResourceArray,
			found:        true,
		},
		{
			name:         "story originalIssue points at comics",
			owner:        marvel.TypeStories,
			field:        "originalIssue",
			expectedType: marvel.TypeComics,
			expectedKind: marvel.RefResource,
			found:        true,
		},
		{
			name:         "series next is a sibling series",
			owner:        marvel.TypeSeries,
			field:        "next",
			expectedType: marvel.TypeSeries,
			expectedKind: marvel.RefResource,
			found:        true,
		},
		{
			name:         "event previous is a sibling event",
			owner:        marvel.TypeEvents,
			field:        "previous",
			expectedType: marvel.TypeEvents,
			expectedKind: marvel.RefResource,
			found:        true,
		},
		{
			name:  "plain field has no reference semantics",
			owner: marvel.TypeCharacters,
			field: "thumbnail",
			found: false,
		},
		{
			name:  "unknown owner type",
			owner: marvel.ResourceType("villains"),
			field: "comics",
			found: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ref, ok := marvel.LookupReference(testCase.owner, testCase.field)
			require.Equal(t, testCase.found, ok)

			if !testCase.found {
				assert.Equal(t, marvel.RefNone, ref.Kind)

				return
			}

			assert.Equal(t, testCase.expectedType, ref.Type)
			assert.Equal(t, testCase.expectedKind, ref.Kind)
		})
	}
}

func TestLookupReference_CoversEveryType(t *testing.T) {
	t.Parallel()

	// Every resource type carries at least one collection reference; the
	// AutoQuery engine relies on the table being populated for all of them.
	for _, resourceType := range marvel.ResourceTypes() {
		_, ok := marvel.LookupReference(resourceType, "comics")
		if resourceType == marvel.TypeComics {
			_, ok = marvel.LookupReference(resourceType, "characters")
		}

		assert.True(t, ok, "no references registered for %s", resourceType)
	}
}

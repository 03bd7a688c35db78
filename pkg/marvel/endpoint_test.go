package marvel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEndpoint_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint marvel.Endpoint
		wantErr  bool
	}{
		{
			name:     "collection endpoint",
			endpoint: marvel.NewEndpoint(marvel.TypeCharacters),
			wantErr:  false,
		},
		{
			name:     "resource endpoint",
			endpoint: marvel.NewResourceEndpoint(marvel.TypeComics, 428),
			wantErr:  false,
		},
		{
			name:     "sub-collection endpoint",
			endpoint: marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1009491, marvel.TypeComics),
			wantErr:  false,
		},
		{
			name:     "empty endpoint",
			endpoint: marvel.Endpoint{},
			wantErr:  true,
		},
		{
			name:     "unknown base type",
			endpoint: marvel.NewEndpoint("villains"),
			wantErr:  true,
		},
		{
			name:     "unknown sub type",
			endpoint: marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1, "villains"),
			wantErr:  true,
		},
		{
			name:     "negative id",
			endpoint: marvel.NewResourceEndpoint(marvel.TypeEvents, -5),
			wantErr:  true,
		},
		{
			name:     "sub-collection without id",
			endpoint: marvel.Endpoint{Type: marvel.TypeCharacters, Sub: marvel.TypeComics},
			wantErr:  true,
		},
		{
			name:     "sub type equals base type",
			endpoint: marvel.NewCollectionEndpoint(marvel.TypeComics, 428, marvel.TypeComics),
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.endpoint.Validate()

			if testCase.wantErr {
				require.ErrorIs(t, err, marvel.ErrInvalidEndpoint)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEndpoint_SemanticType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, marvel.TypeCharacters, marvel.NewEndpoint(marvel.TypeCharacters).SemanticType())
	assert.Equal(t, marvel.TypeCharacters, marvel.NewResourceEndpoint(marvel.TypeCharacters, 7).SemanticType())
	assert.Equal(t, marvel.TypeComics,
		marvel.NewCollectionEndpoint(marvel.TypeCharacters, 7, marvel.TypeComics).SemanticType())
}

func TestEndpoint_Path(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "characters", marvel.NewEndpoint(marvel.TypeCharacters).Path())
	assert.Equal(t, "characters/1009491", marvel.NewResourceEndpoint(marvel.TypeCharacters, 1009491).Path())
	assert.Equal(t, "characters/1009491/comics",
		marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1009491, marvel.TypeComics).Path())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEndpointFromSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		expected marvel.Endpoint
		wantErr  bool
	}{
		{
			name:     "single segment",
			segments: []string{"characters"},
			expected: marvel.NewEndpoint(marvel.TypeCharacters),
		},
		{
			name:     "two segments",
			segments: []string{"characters", "1009491"},
			expected: marvel.NewResourceEndpoint(marvel.TypeCharacters, 1009491),
		},
		{
			name:     "three segments",
			segments: []string{"characters", "1009491", "comics"},
			expected: marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1009491, marvel.TypeComics),
		},
		{
			name:     "empty",
			segments: nil,
			wantErr:  true,
		},
		{
			name:     "too many segments",
			segments: []string{"characters", "1", "comics", "extra"},
			wantErr:  true,
		},
		{
			name:     "non-numeric id",
			segments: []string{"characters", "peter"},
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			endpoint, err := marvel.EndpointFromSegments(testCase.segments)

			if testCase.wantErr {
				require.ErrorIs(t, err, marvel.ErrInvalidEndpoint)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, endpoint)
		})
	}
}

func TestParseResourceURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected marvel.Endpoint
		wantErr  bool
	}{
		{
			name:     "full gateway URI",
			uri:      "http://gateway.marvel.com/v1/public/characters/1009491",
			expected: marvel.NewResourceEndpoint(marvel.TypeCharacters, 1009491),
		},
		{
			name:     "different host and prefix",
			uri:      "https://mirror.example.net/api/comics/428",
			expected: marvel.NewResourceEndpoint(marvel.TypeComics, 428),
		},
		{
			name:     "trailing slash",
			uri:      "http://gateway.marvel.com/v1/public/events/269/",
			expected: marvel.NewResourceEndpoint(marvel.TypeEvents, 269),
		},
		{
			name:    "non-numeric trailing segment",
			uri:     "http://gateway.marvel.com/v1/public/characters/peter",
			wantErr: true,
		},
		{
			name:    "unknown type segment",
			uri:     "http://gateway.marvel.com/v1/public/villains/9",
			wantErr: true,
		},
		{
			name:    "too short",
			uri:     "characters",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			endpoint, err := marvel.ParseResourceURI(testCase.uri)

			if testCase.wantErr {
				require.ErrorIs(t, err, marvel.ErrUnparseableURI)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, endpoint)
		})
	}
}

func TestParseCollectionURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		uri      string
		expected marvel.Endpoint
		wantErr  bool
	}{
		{
			name:     "full gateway URI",
			uri:      "http://gateway.marvel.com/v1/public/characters/1009491/comics",
			expected: marvel.NewCollectionEndpoint(marvel.TypeCharacters, 1009491, marvel.TypeComics),
		},
		{
			name:    "sub type equals base type",
			uri:     "http://gateway.marvel.com/v1/public/comics/428/comics",
			wantErr: true,
		},
		{
			name:    "unknown collection segment",
			uri:     "http://gateway.marvel.com/v1/public/characters/1009491/minions",
			wantErr: true,
		},
		{
			name:    "missing id segment",
			uri:     "characters/comics",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			endpoint, err := marvel.ParseCollectionURI(testCase.uri)

			if testCase.wantErr {
				require.ErrorIs(t, err, marvel.ErrUnparseableURI)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, endpoint)
		})
	}
}

func TestDescribeEndpoint(t *testing.T) {
	t.Parallel()

	descriptor, err := marvel.DescribeEndpoint(marvel.NewCollectionEndpoint(marvel.TypeCharacters, 7, marvel.TypeSeries))
	require.NoError(t, err)
	assert.Equal(t, marvel.TypeSeries, descriptor.Type)
	assert.Equal(t, "characters/7/series", descriptor.Path.Path())

	_, err = marvel.DescribeEndpoint(marvel.Endpoint{})
	require.ErrorIs(t, err, marvel.ErrInvalidEndpoint)
}

package marvel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecodeAPIResponse(t *testing.T) {
	t.Parallel()
	t.Run("full envelope", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{
			"code": 200,
			"status": "Ok",
			"copyright": "© 2026 TEST",
			"attributionText": "Data provided by TEST",
			"attributionHTML": "<a href=\"http://test\">Data provided by TEST</a>",
			"etag": "abc123",
			"data": {
				"offset": 20,
				"limit": 20,
				"total": 42,
				"count": 2,
				"results": [{"id": 1}, {"id": 2}]
			}
		}`)

		response, err := marvel.DecodeAPIResponse("http://gw.test/characters", body)
		require.NoError(t, err)

		assert.Equal(t, 200, response.Metadata.Code)
		assert.Equal(t, "Ok", response.Metadata.Status)
		assert.Equal(t, "abc123", response.Metadata.ETag)
		assert.Equal(t, 20, response.Data.Offset)
		assert.Equal(t, 42, response.Data.Total)
		assert.Equal(t, 2, response.Data.Count)
		require.Len(t, response.Data.Results, 2)

		id, ok := response.Data.Results[0].ID()
		assert.True(t, ok)
		assert.Equal(t, 1, id)
	})

	t.Run("empty results array is valid", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":200,"status":"Ok","data":{"offset":0,"limit":20,"total":0,"count":0,"results":[]}}`)

		response, err := marvel.DecodeAPIResponse("http://gw.test/characters", body)
		require.NoError(t, err)
		assert.Empty(t, response.Data.Results)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := marvel.DecodeAPIResponse("http://gw.test/characters", []byte(`{"code":`))

		transportErr := &marvel.TransportError{}
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, "http://gw.test/characters", transportErr.URL)
	})

	t.Run("missing data block", func(t *testing.T) {
		t.Parallel()

		_, err := marvel.DecodeAPIResponse("http://gw.test/characters", []byte(`{"code":200,"status":"Ok"}`))

		transportErr := &marvel.TransportError{}
		require.ErrorAs(t, err, &transportErr)
	})

	t.Run("missing results array", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"code":200,"status":"Ok","data":{"offset":0,"limit":20,"total":0,"count":0}}`)

		_, err := marvel.DecodeAPIResponse("http://gw.test/characters", body)

		transportErr := &marvel.TransportError{}
		require.ErrorAs(t, err, &transportErr)
	})
}

func TestAPIError_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		expectedCode   string
		expectedStatus string
	}{
		{
			name:           "numeric code with status",
			body:           `{"code":409,"status":"limit greater than 100."}`,
			expectedCode:   "409",
			expectedStatus: "limit greater than 100.",
		},
		{
			name:           "string code with message",
			body:           `{"code":"InvalidCredentials","message":"The passed API key is invalid."}`,
			expectedCode:   "InvalidCredentials",
			expectedStatus: "The passed API key is invalid.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			apiErr := &marvel.APIError{}
			require.NoError(t, apiErr.UnmarshalJSON([]byte(testCase.body)))
			assert.Equal(t, testCase.expectedCode, apiErr.Code)
			assert.Equal(t, testCase.expectedStatus, apiErr.Status)
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &marvel.TransportError{StatusCode: 404, Err: &marvel.APIError{Code: "404", Status: "not found"}}
	assert.True(t, marvel.IsNotFound(notFound))
	assert.False(t, marvel.IsRateLimited(notFound))

	throttled := &marvel.APIError{Code: "RequestThrottled", Status: "You have exceeded your rate limit."}
	assert.True(t, marvel.IsRateLimited(throttled))

	badKey := &marvel.APIError{Code: "InvalidCredentials", Status: "The passed API key is invalid."}
	assert.True(t, marvel.IsInvalidCredentials(badKey))
	assert.False(t, marvel.IsNotFound(badKey))
}

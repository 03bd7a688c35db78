package marvel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Fetcher is the injected transport capability: it performs one GET against
// a fully signed URL and returns the raw response body. Network failures,
// non-2xx statuses, and timeouts must surface as errors; the query engine
// wraps them in TransportError and never retries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// envelope mirrors the gateway's top-level response shape. Data is a pointer
// so a missing block is distinguishable from an empty one.
type envelope struct {
	Code            int    `json:"code"`
	Status          string `json:"status"`
	Copyright       string `json:"copyright"`
	AttributionText string `json:"attributionText"`
	AttributionHTML string `json:"attributionHTML"`
	ETag            string `json:"etag"`
	Data            *struct {
		Offset  int      `json:"offset"`
		Limit   int      `json:"limit"`
		Total   int      `json:"total"`
		Count   int      `json:"count"`
		Results []Result `json:"results"`
	} `json:"data"`
}

// DecodeAPIResponse unwraps the gateway envelope. A body that does not
// decode, or decodes without a data block or results array, is a malformed
// envelope and yields a TransportError independent of per-item result
// validation.
func DecodeAPIResponse(url string, body []byte) (*APIResponse, error) {
	var env envelope

	err := json.Unmarshal(body, &env)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("decoding envelope: %w", err)}
	}

	if env.Data == nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("decoding envelope: %w", errMissingData)}
	}

	if env.Data.Results == nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("decoding envelope: %w", errMissingResults)}
	}

	return &APIResponse{
		Metadata: ResponseMetadata{
			Code:            env.Code,
			Status:          env.Status,
			Copyright:       env.Copyright,
			AttributionText: env.AttributionText,
			AttributionHTML: env.AttributionHTML,
			ETag:            env.ETag,
		},
		Data: ResponseData{
			Offset:  env.Data.Offset,
			Limit:   env.Data.Limit,
			Total:   env.Data.Total,
			Count:   env.Data.Count,
			Results: env.Data.Results,
		},
	}, nil
}

var (
	errMissingData    = errors.New("envelope has no data block")
	errMissingResults = errors.New("envelope data has no results array")
)

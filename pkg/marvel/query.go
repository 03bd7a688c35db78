package marvel

import (
	"context"
	"errors"
	"fmt"
)

// Query represents one query against an endpoint: its parameters, the
// current page of results, and the history of everything fetched through it.
//
// Fetch mutates the query in place and returns the same instance, so calls
// chain and each subsequent Fetch pulls the next page. A single query must
// not have two fetches in flight at once, since both would race on the
// pagination fields. That is
// deliberately unguarded; callers await sequentially.
// Concurrent fetches across different queries are safe.
type Query struct {
	session    *Session
	descriptor EndpointDescriptor

	params Params
	url    string

	offset int
	limit  int
	total  int
	count  int

	metadata      *ResponseMetadata
	results       []Result
	resultHistory []Result

	validated       Validated
	paramsValidated bool
	isComplete      bool
	fetched         bool
}

// Endpoint returns the endpoint this query addresses.
func (q *Query) Endpoint() Endpoint {
	return q.descriptor.Path
}

// Descriptor returns the endpoint descriptor derived at construction.
func (q *Query) Descriptor() EndpointDescriptor {
	return q.descriptor
}

// Params returns a copy of the merged parameters.
func (q *Query) Params() Params {
	return q.params.Clone()
}

// URL returns the signed URL of the most recent request, empty before the
// first fetch.
func (q *Query) URL() string {
	return q.url
}

// Offset returns the offset the next Fetch will request.
func (q *Query) Offset() int {
	return q.offset
}

// Limit returns the page size in effect.
func (q *Query) Limit() int {
	return q.limit
}

// Total returns the total number of matching resources reported by the last
// response.
func (q *Query) Total() int {
	return q.total
}

// Count returns the number of results in the current page.
func (q *Query) Count() int {
	return q.count
}

// Metadata returns the envelope metadata of the last response, nil before
// the first fetch.
func (q *Query) Metadata() *ResponseMetadata {
	return q.metadata
}

// Results returns the current page of results.
func (q *Query) Results() []Result {
	return q.results
}

// ResultHistory returns every result fetched through this query, in order.
// It only ever grows.
func (q *Query) ResultHistory() []Result {
	return q.resultHistory
}

// Validated reports the outcome of each validation stage.
func (q *Query) Validated() Validated {
	return q.validated
}

// IsComplete reports whether the last fetched page exhausted the result set.
func (q *Query) IsComplete() bool {
	return q.isComplete
}

// Fetched reports whether the query has been executed at least once.
func (q *Query) Fetched() bool {
	return q.fetched
}

// Fetch executes the query, replaces the current page, advances the offset
// for the next call, and returns the same (mutated) instance. Fetching a
// completed query is a no-op, not an error.
func (q *Query) Fetch(ctx context.Context) (*Query, error) {
	if q.isComplete {
		q.session.logger.Info("query already complete, skipping fetch", map[string]interface{}{
			"endpoint": q.descriptor.Path.Path(),
			"total":    q.total,
		})

		return q, nil
	}

	err := q.validateParams()
	if err != nil {
		return nil, err
	}

	response, results, err := q.execute(ctx, q.offset, q.limit)
	if err != nil {
		return nil, err
	}

	q.offset += q.limit
	q.applyPage(response, results)

	return q, nil
}

// FetchSingle executes the query with limit forced to 1 and offset to 0,
// regardless of prior instance state, and returns the single extracted item.
func (q *Query) FetchSingle(ctx context.Context) (Result, error) {
	err := q.validateParams()
	if err != nil {
		return nil, err
	}

	response, results, err := q.execute(ctx, 0, 1)
	if err != nil {
		return nil, err
	}

	q.offset, q.limit = 0, 1
	q.applyPage(response, results)

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyResult, q.descriptor.Path.Path())
	}

	return results[0], nil
}

// validateParams runs parameter validation once per query. Failures are
// recorded on Validated.Parameters and only become fatal under strict
// configuration; a missing schema is always a programmer error.
func (q *Query) validateParams() error {
	cfg := q.session.config
	if q.paramsValidated || cfg.Validation.DisableAll || cfg.Validation.DisableParameters {
		return nil
	}

	q.paramsValidated = true

	schema, err := q.session.schemas.Lookup(q.descriptor.Type)
	if err != nil {
		return err
	}

	err = schema.ValidateParams(q.params)
	if err != nil {
		q.validated.Parameters = boolPtr(false)

		if cfg.Validation.StrictParameters {
			return &ParameterValidationError{Type: q.descriptor.Type, Err: err}
		}

		q.session.logger.Warn("parameter validation failed, continuing", map[string]interface{}{
			"type":  string(q.descriptor.Type),
			"error": err.Error(),
		})

		return nil
	}

	q.validated.Parameters = boolPtr(true)

	return nil
}

// execute runs the fetch pipeline for one page: build and sign the URL, run
// request hooks, call the transport, unwrap the envelope, validate results,
// run result hooks, and extend links when AutoQuery is on.
func (q *Query) execute(ctx context.Context, offset, limit int) (*APIResponse, []Result, error) {
	s := q.session

	callParams := q.params.Clone()
	callParams["offset"] = offset
	callParams["limit"] = limit

	signedURL, err := s.builder.Build(q.descriptor, callParams)
	if err != nil {
		return nil, nil, err
	}

	q.url = signedURL

	s.hooks.ExecuteRequestHooks(signedURL, q.descriptor.Path, callParams)

	body, err := s.fetcher.Fetch(ctx, signedURL)
	if err != nil {
		transportErr := &TransportError{}
		if errors.As(err, &transportErr) {
			return nil, nil, err
		}

		return nil, nil, &TransportError{URL: signedURL, Err: err}
	}

	response, err := DecodeAPIResponse(signedURL, body)
	if err != nil {
		return nil, nil, err
	}

	cfg := s.config
	if !cfg.Validation.DisableAll && !cfg.Validation.DisableResults {
		ok, err := s.validator.validate(response.Data.Results, q.descriptor)
		if err != nil {
			return nil, nil, err
		}

		q.validated.Results = boolPtr(ok)
	}

	s.hooks.ExecuteResultHooks(q.descriptor.Type, response.Data.Results)

	results := response.Data.Results

	if cfg.AutoQuery {
		extended, ok := s.extender.extendAll(results, q.descriptor)
		results = extended

		if !cfg.Validation.DisableAll && !cfg.Validation.DisableAutoQuery {
			q.validated.AutoQuery = boolPtr(ok)
		}
	}

	return response, results, nil
}

// applyPage folds one fetched page into the query's state. Completion is
// judged from the page the gateway reported, not the advanced offset.
func (q *Query) applyPage(response *APIResponse, results []Result) {
	q.total = response.Data.Total
	q.count = response.Data.Count
	q.metadata = &response.Metadata
	q.results = results
	q.resultHistory = append(q.resultHistory, results...)
	q.isComplete = response.Data.Offset+response.Data.Count >= response.Data.Total
	q.fetched = true
}

package client

import (
	"context"
	"fmt"

	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// resourceClient provides a generic typed client for one resource type.
type resourceClient[T any] struct {
	session      *marvel.Session
	resourceType marvel.ResourceType
}

// newResourceClient creates a typed client bound to one resource type.
func newResourceClient[T any](session *marvel.Session, resourceType marvel.ResourceType) *resourceClient[T] {
	return &resourceClient[T]{
		session:      session,
		resourceType: resourceType,
	}
}

// Get retrieves a single resource by id.
func (c *resourceClient[T]) Get(ctx context.Context, id int) (*T, error) {
	query, err := c.session.Query(marvel.NewResourceEndpoint(c.resourceType, id), nil)
	if err != nil {
		return nil, err
	}

	result, err := query.FetchSingle(ctx)
	if err != nil {
		return nil, err
	}

	typed, err := marvel.DecodeResults[T]([]marvel.Result{result})
	if err != nil {
		return nil, fmt.Errorf("decoding %s %d: %w", c.resourceType, id, err)
	}

	return &typed[0], nil
}

// List fetches one page of the resource collection.
func (c *resourceClient[T]) List(ctx context.Context, params marvel.Params) (*marvel.DataContainer[T], error) {
	query, err := c.session.Query(marvel.NewEndpoint(c.resourceType), params)
	if err != nil {
		return nil, err
	}

	query, err = query.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	typed, err := marvel.DecodeResults[T](query.Results())
	if err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", c.resourceType, err)
	}

	// Offset() already points at the next page after a fetch.
	pageOffset := query.Offset() - query.Limit()
	if pageOffset < 0 {
		pageOffset = 0
	}

	return &marvel.DataContainer[T]{
		Offset:  pageOffset,
		Limit:   query.Limit(),
		Total:   query.Total(),
		Count:   query.Count(),
		Results: typed,
	}, nil
}

// Query constructs an unfetched query on the resource collection.
func (c *resourceClient[T]) Query(params marvel.Params) (*marvel.Query, error) {
	return c.session.Query(marvel.NewEndpoint(c.resourceType), params)
}

// QueryRelated constructs an unfetched query on a related collection of one
// resource.
func (c *resourceClient[T]) QueryRelated(id int, sub marvel.ResourceType, params marvel.Params) (*marvel.Query, error) {
	return c.session.Query(marvel.NewCollectionEndpoint(c.resourceType, id, sub), params)
}

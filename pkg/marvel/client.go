package marvel

import "context"

// Client is the typed, high-level interface to the gateway. Implementations
// wrap a Session; the raw query engine stays reachable through Session() for
// callers that need dynamic results or AutoQuery navigation.
type Client interface {
	Characters() ResourceClient[Character]
	Comics() ResourceClient[Comic]
	Creators() ResourceClient[Creator]
	Events() ResourceClient[Event]
	Series() ResourceClient[Series]
	Stories() ResourceClient[Story]

	// Session exposes the underlying query engine.
	Session() *Session
}

// ResourceClient provides typed access to one resource type.
type ResourceClient[T any] interface {
	// Get fetches a single resource by id.
	Get(ctx context.Context, id int) (*T, error)

	// List fetches one page of the resource collection.
	List(ctx context.Context, params Params) (*DataContainer[T], error)

	// Query constructs an unfetched query on the resource collection, for
	// callers that want to drive pagination themselves.
	Query(params Params) (*Query, error)

	// QueryRelated constructs an unfetched query on a related collection of
	// one resource, e.g. the comics of a character.
	QueryRelated(id int, sub ResourceType, params Params) (*Query, error)
}

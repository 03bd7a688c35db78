package marvel

import (
	"fmt"
	"strconv"
	"strings"
)

// Endpoint addresses a resource or collection as an ordered
// [baseType, id?, subType?] path. A zero ID means no id segment; Sub may only
// be set when ID is.
type Endpoint struct {
	Type ResourceType
	ID   int
	Sub  ResourceType
}

// NewEndpoint builds a collection endpoint for a resource type.
func NewEndpoint(t ResourceType) Endpoint {
	return Endpoint{Type: t}
}

// NewResourceEndpoint builds an endpoint addressing a single resource.
func NewResourceEndpoint(t ResourceType, id int) Endpoint {
	return Endpoint{Type: t, ID: id}
}

// NewCollectionEndpoint builds an endpoint addressing a sub-collection of a
// resource, e.g. a character's comics.
func NewCollectionEndpoint(t ResourceType, id int, sub ResourceType) Endpoint {
	return Endpoint{Type: t, ID: id, Sub: sub}
}

// Validate checks the endpoint against the gateway's addressing rules.
func (e Endpoint) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("%w: empty endpoint", ErrInvalidEndpoint)
	}

	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown resource type %q", ErrInvalidEndpoint, string(e.Type))
	}

	if e.ID < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalidEndpoint, e.ID)
	}

	if e.Sub != "" {
		if !e.Sub.Valid() {
			return fmt.Errorf("%w: unknown resource type %q", ErrInvalidEndpoint, string(e.Sub))
		}

		if e.ID == 0 {
			return fmt.Errorf("%w: sub-collection %q requires an id", ErrInvalidEndpoint, string(e.Sub))
		}

		if e.Sub == e.Type {
			return fmt.Errorf("%w: base and sub type are both %q", ErrInvalidEndpoint, string(e.Type))
		}
	}

	return nil
}

// SemanticType resolves the type of resource the endpoint yields: the sub
// type when present, the base type otherwise.
func (e Endpoint) SemanticType() ResourceType {
	if e.Sub != "" {
		return e.Sub
	}

	return e.Type
}

// Segments returns the endpoint's path segments in order.
func (e Endpoint) Segments() []string {
	segs := []string{string(e.Type)}
	if e.ID > 0 {
		segs = append(segs, strconv.Itoa(e.ID))
	}

	if e.Sub != "" {
		segs = append(segs, string(e.Sub))
	}

	return segs
}

// Path returns the endpoint segments joined by "/".
func (e Endpoint) Path() string {
	return strings.Join(e.Segments(), "/")
}

// String implements fmt.Stringer.
func (e Endpoint) String() string {
	return e.Path()
}

// EndpointFromSegments parses raw path segments into an Endpoint, enforcing
// the numeric-id rule. It accepts 1 to 3 segments.
func EndpointFromSegments(segments []string) (Endpoint, error) {
	if len(segments) == 0 {
		return Endpoint{}, fmt.Errorf("%w: empty endpoint", ErrInvalidEndpoint)
	}

	if len(segments) > 3 {
		return Endpoint{}, fmt.Errorf("%w: too many segments (%d)", ErrInvalidEndpoint, len(segments))
	}

	endpoint := Endpoint{Type: ResourceType(segments[0])}

	if len(segments) > 1 {
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			return Endpoint{}, fmt.Errorf("%w: id segment %q is not numeric", ErrInvalidEndpoint, segments[1])
		}

		endpoint.ID = id
	}

	if len(segments) > 2 {
		endpoint.Sub = ResourceType(segments[2])
	}

	err := endpoint.Validate()
	if err != nil {
		return Endpoint{}, err
	}

	return endpoint, nil
}

// EndpointDescriptor pairs an endpoint with its resolved semantic type. It is
// derived once at query construction and immutable thereafter.
type EndpointDescriptor struct {
	Path Endpoint
	Type ResourceType
}

// DescribeEndpoint validates an endpoint and derives its descriptor.
func DescribeEndpoint(endpoint Endpoint) (EndpointDescriptor, error) {
	err := endpoint.Validate()
	if err != nil {
		return EndpointDescriptor{}, err
	}

	return EndpointDescriptor{
		Path: endpoint,
		Type: endpoint.SemanticType(),
	}, nil
}

// ParseResourceURI derives the endpoint of a single-resource reference from
// its resourceURI, e.g. ".../v1/public/characters/1009491" yields
// [characters, 1009491]. Only the trailing two segments are significant, so
// scheme and gateway host differences do not matter.
func ParseResourceURI(uri string) (Endpoint, error) {
	segments := splitURIPath(uri)
	if len(segments) < 2 {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnparseableURI, uri)
	}

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil || id <= 0 {
		return Endpoint{}, fmt.Errorf("%w: trailing segment of %q is not a resource id", ErrUnparseableURI, uri)
	}

	baseType := ResourceType(segments[len(segments)-2])
	if !baseType.Valid() {
		return Endpoint{}, fmt.Errorf("%w: unknown resource type in %q", ErrUnparseableURI, uri)
	}

	return Endpoint{Type: baseType, ID: id}, nil
}

// ParseCollectionURI derives the endpoint of a collection reference from its
// collectionURI, e.g. ".../v1/public/characters/1009491/comics" yields
// [characters, 1009491, comics].
func ParseCollectionURI(uri string) (Endpoint, error) {
	segments := splitURIPath(uri)
	if len(segments) < 3 {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnparseableURI, uri)
	}

	sub := ResourceType(segments[len(segments)-1])
	if !sub.Valid() {
		return Endpoint{}, fmt.Errorf("%w: unknown collection type in %q", ErrUnparseableURI, uri)
	}

	base, err := ParseResourceURI(strings.Join(segments[:len(segments)-1], "/"))
	if err != nil {
		return Endpoint{}, err
	}

	endpoint := Endpoint{Type: base.Type, ID: base.ID, Sub: sub}

	err = endpoint.Validate()
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrUnparseableURI, uri)
	}

	return endpoint, nil
}

func splitURIPath(uri string) []string {
	trimmed := strings.TrimSuffix(uri, "/")
	if idx := strings.Index(trimmed, "://"); idx >= 0 {
		trimmed = trimmed[idx+3:]
	}

	parts := strings.Split(trimmed, "/")

	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}

	return segments
}

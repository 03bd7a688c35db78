package marvel

import (
	"context"
	"fmt"
)

// QueryFactory constructs an unfetched query for an endpoint. The extension
// engine receives one at construction instead of reaching for the session
// directly, which keeps the engine free of the query type's construction
// path.
type QueryFactory func(endpoint Endpoint, params Params) (*Query, error)

// ResourceLink is a resource reference rewritten into a navigable object: it
// keeps the summary's display fields, carries the endpoint derived from the
// resourceURI, and exposes live sub-query capabilities bound to that
// endpoint.
type ResourceLink struct {
	Endpoint    Endpoint `json:"endpoint"`
	ResourceURI string   `json:"resourceURI"`
	Name        string   `json:"name,omitempty"`
	Role        string   `json:"role,omitempty"`
	Type        string   `json:"type,omitempty"`

	factory QueryFactory
}

// Fetch returns a fully materialized query for the linked resource.
func (l *ResourceLink) Fetch(ctx context.Context) (*Query, error) {
	query, err := l.factory(l.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	return query.Fetch(ctx)
}

// FetchSingle fetches the linked resource and returns just the single
// extended item.
func (l *ResourceLink) FetchSingle(ctx context.Context) (Result, error) {
	query, err := l.factory(l.Endpoint, nil)
	if err != nil {
		return nil, err
	}

	return query.FetchSingle(ctx)
}

// Query constructs a new, unfetched query for one of the linked resource's
// sub-collections. Querying the resource's own type through itself is
// rejected.
func (l *ResourceLink) Query(sub ResourceType, params Params) (*Query, error) {
	if sub == l.Endpoint.Type {
		return nil, fmt.Errorf("%w: %s", ErrSubTypeEqualsBase, sub)
	}

	return l.factory(NewCollectionEndpoint(l.Endpoint.Type, l.Endpoint.ID, sub), params)
}

// CollectionLink is a collection reference rewritten into a navigable
// object: the collection endpoint decoded from the collectionURI, the page
// of summary items extended into resource links, and a query capability
// bound to the collection endpoint.
type CollectionLink struct {
	Endpoint      Endpoint        `json:"endpoint"`
	CollectionURI string          `json:"collectionURI"`
	Available     int             `json:"available"`
	Returned      int             `json:"returned"`
	Items         []*ResourceLink `json:"items"`

	factory QueryFactory
}

// Query constructs a new, unfetched query at the collection endpoint.
func (l *CollectionLink) Query(params Params) (*Query, error) {
	return l.factory(l.Endpoint, params)
}

// extender is the AutoQuery extension engine. It walks a raw result's own
// fields depth-first, consults the relationship table for reference
// semantics, and produces a new object graph; the raw result is never
// mutated in place.
type extender struct {
	factory QueryFactory
	logger  Logger
}

// extendAll extends a page of results. The boolean is false if any link was
// left unextended; extension is best-effort and never fails the query.
func (e *extender) extendAll(results []Result, descriptor EndpointDescriptor) ([]Result, bool) {
	extended := make([]Result, len(results))

	allOK := true

	for i, result := range results {
		ext, ok := e.extendResult(result, descriptor.Type)
		extended[i] = ext
		allOK = allOK && ok
	}

	return extended, allOK
}

// extendResult extends one result's reference-bearing fields and gives the
// result its own endpoint. Fields absent from the relationship table pass
// through unchanged.
func (e *extender) extendResult(result Result, owner ResourceType) (Result, bool) {
	extended := make(Result, len(result)+1)

	allOK := true

	for key, value := range result {
		ref, known := LookupReference(owner, key)
		if !known || value == nil {
			extended[key] = value

			continue
		}

		var ok bool

		switch ref.Kind {
		case RefResource:
			extended[key], ok = e.extendResource(value, ref.Type)
		case RefCollection:
			extended[key], ok = e.extendCollection(value, ref.Type)
		case RefResourceArray:
			extended[key], ok = e.extendResourceArray(value, ref.Type)
		default:
			extended[key], ok = value, true
		}

		allOK = allOK && ok
	}

	selfOK := e.attachEndpoint(extended, result, owner)

	return extended, allOK && selfOK
}

// attachEndpoint rewrites the result itself into a navigable object by
// storing a self link under the "endpoint" key. The type comes from the
// owning descriptor; the id comes from the result's id field, falling back
// to its resourceURI. A result already carrying a link keeps it, so
// re-extension is idempotent.
func (e *extender) attachEndpoint(extended, result Result, owner ResourceType) bool {
	if _, isLink := result["endpoint"].(*ResourceLink); isLink {
		return true
	}

	uri, _ := result["resourceURI"].(string)

	id, ok := toInt(result["id"])
	if !ok && uri != "" {
		parsed, err := ParseResourceURI(uri)
		if err == nil {
			id, ok = parsed.ID, true
		}
	}

	if !ok {
		e.logger.Warn("result has no id or parseable resourceURI, leaving it without an endpoint", map[string]interface{}{
			"type": string(owner),
		})

		return false
	}

	link := &ResourceLink{
		Endpoint:    NewResourceEndpoint(owner, id),
		ResourceURI: uri,
		factory:     e.factory,
	}
	link.Name, _ = result["name"].(string)

	extended["endpoint"] = link

	return true
}

// extendResource rewrites a single resource reference. Already-extended
// values pass through unchanged, so re-extension is idempotent. A value
// whose URI cannot be parsed is left raw and flagged.
func (e *extender) extendResource(value any, refType ResourceType) (any, bool) {
	summary, ok := asMap(value)
	if !ok {
		if link, isLink := value.(*ResourceLink); isLink {
			return link, true
		}

		return value, false
	}

	uri, _ := summary["resourceURI"].(string)
	if uri == "" {
		e.logger.Warn("resource reference has no resourceURI", map[string]interface{}{"type": string(refType)})

		return value, false
	}

	parsed, err := ParseResourceURI(uri)
	if err != nil {
		e.logger.Warn("leaving resource reference unextended", map[string]interface{}{
			"uri":   uri,
			"error": err.Error(),
		})

		return value, false
	}

	// The id comes from the URI; the type comes from the relationship
	// table, which wins over whatever the URI path says.
	link := &ResourceLink{
		Endpoint:    NewResourceEndpoint(refType, parsed.ID),
		ResourceURI: uri,
		factory:     e.factory,
	}
	link.Name, _ = summary["name"].(string)
	link.Role, _ = summary["role"].(string)
	link.Type, _ = summary["type"].(string)

	return link, true
}

// extendCollection rewrites a collection reference, extending each summary
// item as a resource reference of the collection's type. If the collection
// URI or any item cannot be parsed the whole field is left raw, so no item
// data is ever dropped.
func (e *extender) extendCollection(value any, refType ResourceType) (any, bool) {
	list, ok := asMap(value)
	if !ok {
		if link, isLink := value.(*CollectionLink); isLink {
			return link, true
		}

		return value, false
	}

	uri, _ := list["collectionURI"].(string)
	if uri == "" {
		e.logger.Warn("collection reference has no collectionURI", map[string]interface{}{"type": string(refType)})

		return value, false
	}

	endpoint, err := ParseCollectionURI(uri)
	if err != nil {
		e.logger.Warn("leaving collection reference unextended", map[string]interface{}{
			"uri":   uri,
			"error": err.Error(),
		})

		return value, false
	}

	link := &CollectionLink{
		Endpoint:      endpoint,
		CollectionURI: uri,
		factory:       e.factory,
	}
	link.Available, _ = toInt(list["available"])
	link.Returned, _ = toInt(list["returned"])

	if rawItems, present := list["items"]; present {
		items, itemsOK := e.extendItems(rawItems, refType)
		if !itemsOK {
			return value, false
		}

		link.Items = items
	}

	return link, true
}

// extendItems extends a collection's summary items.
func (e *extender) extendItems(value any, refType ResourceType) ([]*ResourceLink, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}

	links := make([]*ResourceLink, len(items))

	for i, item := range items {
		ext, itemOK := e.extendResource(item, refType)
		if !itemOK {
			return nil, false
		}

		link, isLink := ext.(*ResourceLink)
		if !isLink {
			return nil, false
		}

		links[i] = link
	}

	return links, true
}

// extendResourceArray rewrites a bare array of resource references (e.g. a
// comic's variants). Elements get resource-level capabilities but there is
// no collection endpoint to attach.
func (e *extender) extendResourceArray(value any, refType ResourceType) (any, bool) {
	items, ok := value.([]any)
	if !ok {
		return value, false
	}

	extended := make([]any, len(items))

	for i, item := range items {
		ext, itemOK := e.extendResource(item, refType)
		if !itemOK {
			return value, false
		}

		extended[i] = ext
	}

	return extended, true
}

// asMap normalizes the two map shapes a result value can arrive in.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Result:
		return v, true
	default:
		return nil, false
	}
}

package marvel

// RefKind classifies how a result field references other resources.
type RefKind int

// Reference kinds, replacing structural sniffing of resourceURI vs
// collectionURI presence.
const (
	// RefNone marks a plain field with no reference semantics.
	RefNone RefKind = iota

	// RefResource marks a field holding a single resource summary
	// (resourceURI + display fields).
	RefResource

	// RefCollection marks a field holding a collection reference
	// (collectionURI + a page of summary items).
	RefCollection

	// RefResourceArray marks a field holding a bare array of resource
	// summaries with no collection wrapper, e.g. a comic's variants.
	RefResourceArray
)

// Reference names the resource type a field points at and how.
type Reference struct {
	Type ResourceType
	Kind RefKind
}

// relationships maps (owning resource type, field name) to the referenced
// resource type. This table drives the AutoQuery engine; fields not listed
// here pass through extension untouched.
var relationships = map[ResourceType]map[string]Reference{
	TypeCharacters: {
		"comics":  {TypeComics, RefCollection},
		"series":  {TypeSeries, RefCollection},
		"stories": {TypeStories, RefCollection},
		"events":  {TypeEvents, RefCollection},
	},
	TypeComics: {
		"series":          {TypeSeries, RefResource},
		"variants":        {TypeComics, RefResourceArray},
		"collections":     {TypeComics, RefResourceArray},
		"collectedIssues": {TypeComics, RefResourceArray},
		"creators":        {TypeCreators, RefCollection},
		"characters":      {TypeCharacters, RefCollection},
		"stories":         {TypeStories, RefCollection},
		"events":          {TypeEvents, RefCollection},
	},
	TypeCreators: {
		"comics":  {TypeComics, RefCollection},
		"series":  {TypeSeries, RefCollection},
		"stories": {TypeStories, RefCollection},
		"events":  {TypeEvents, RefCollection},
	},
	TypeEvents: {
		"comics":     {TypeComics, RefCollection},
		"stories":    {TypeStories, RefCollection},
		"series":     {TypeSeries, RefCollection},
		"characters": {TypeCharacters, RefCollection},
		"creators":   {TypeCreators, RefCollection},
		"next":       {TypeEvents, RefResource},
		"previous":   {TypeEvents, RefResource},
	},
	TypeSeries: {
		"comics":     {TypeComics, RefCollection},
		"stories":    {TypeStories, RefCollection},
		"events":     {TypeEvents, RefCollection},
		"characters": {TypeCharacters, RefCollection},
		"creators":   {TypeCreators, RefCollection},
		"next":       {TypeSeries, RefResource},
		"previous":   {TypeSeries, RefResource},
	},
	TypeStories: {
		"comics":        {TypeComics, RefCollection},
		"series":        {TypeSeries, RefCollection},
		"events":        {TypeEvents, RefCollection},
		"characters":    {TypeCharacters, RefCollection},
		"creators":      {TypeCreators, RefCollection},
		"originalIssue": {TypeComics, RefResource},
	},
}

// LookupReference resolves the reference semantics of a field on a resource
// type. The second return is false for fields with no reference semantics.
func LookupReference(owner ResourceType, field string) (Reference, bool) {
	fields, ok := relationships[owner]
	if !ok {
		return Reference{Kind: RefNone}, false
	}

	ref, ok := fields[field]
	if !ok {
		return Reference{Kind: RefNone}, false
	}

	return ref, true
}

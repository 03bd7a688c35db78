package marvel

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/excelsior-io/mapi-client/internal/constants"
)

// Schema validates the parameters and result items of one resource type. It
// is a pluggable collaborator: the default registry covers the gateway's
// documented surface, and callers can register replacements per type.
type Schema interface {
	ValidateParams(params Params) error
	ValidateResult(result Result) error
}

// SchemaRegistry holds the schema for each resource type.
type SchemaRegistry struct {
	schemas map[ResourceType]Schema
}

// NewSchemaRegistry creates an empty registry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{schemas: make(map[ResourceType]Schema)}
}

// Register sets the schema for a resource type.
func (r *SchemaRegistry) Register(resourceType ResourceType, schema Schema) {
	r.schemas[resourceType] = schema
}

// Lookup returns the schema for a resource type. A missing schema for a
// known type is a programmer error.
func (r *SchemaRegistry) Lookup(resourceType ResourceType) (Schema, error) {
	schema, ok := r.schemas[resourceType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, resourceType)
	}

	return schema, nil
}

// DefaultSchemas returns a registry covering all six resource types.
func DefaultSchemas() *SchemaRegistry {
	registry := NewSchemaRegistry()

	registry.Register(TypeCharacters, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"name":           {ruleString},
			"nameStartsWith": {ruleString},
			"comics":         {ruleIDList},
			"series":         {ruleIDList},
			"events":         {ruleIDList},
			"stories":        {ruleIDList},
			"orderBy":        {ruleOrderBy("name", "modified")},
		}),
	})

	registry.Register(TypeComics, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"format":            {ruleEnum("comic", "magazine", "trade paperback", "hardcover", "digest", "graphic novel", "digital comic", "infinite comic")},
			"formatType":        {ruleEnum("comic", "collection")},
			"noVariants":        {ruleBool},
			"dateDescriptor":    {ruleEnum("lastWeek", "thisWeek", "nextWeek", "thisMonth")},
			"dateRange":         {ruleIDList},
			"title":             {ruleString},
			"titleStartsWith":   {ruleString},
			"startYear":         {ruleIntMin(1900)},
			"issueNumber":       {ruleIntMin(0)},
			"diamondCode":       {ruleString},
			"digitalId":         {ruleIntMin(0)},
			"upc":               {ruleDigits},
			"isbn":              {ruleString},
			"ean":               {ruleString},
			"issn":              {ruleString},
			"hasDigitalIssue":   {ruleBool},
			"creators":          {ruleIDList},
			"characters":        {ruleIDList},
			"series":            {ruleIDList},
			"events":            {ruleIDList},
			"stories":           {ruleIDList},
			"sharedAppearances": {ruleIDList},
			"collaborators":     {ruleIDList},
			"orderBy":           {ruleOrderBy("focDate", "onsaleDate", "title", "issueNumber", "modified")},
		}),
	})

	registry.Register(TypeCreators, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"firstName":            {ruleString},
			"middleName":           {ruleString},
			"lastName":             {ruleString},
			"suffix":               {ruleString},
			"nameStartsWith":       {ruleString},
			"firstNameStartsWith":  {ruleString},
			"middleNameStartsWith": {ruleString},
			"lastNameStartsWith":   {ruleString},
			"comics":               {ruleIDList},
			"series":               {ruleIDList},
			"events":               {ruleIDList},
			"stories":              {ruleIDList},
			"orderBy":              {ruleOrderBy("lastName", "firstName", "middleName", "suffix", "modified")},
		}),
	})

	registry.Register(TypeEvents, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"name":           {ruleString},
			"nameStartsWith": {ruleString},
			"creators":       {ruleIDList},
			"characters":     {ruleIDList},
			"series":         {ruleIDList},
			"comics":         {ruleIDList},
			"stories":        {ruleIDList},
			"orderBy":        {ruleOrderBy("name", "startDate", "modified")},
		}),
	})

	registry.Register(TypeSeries, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"title":           {ruleString},
			"titleStartsWith": {ruleString},
			"startYear":       {ruleIntMin(1900)},
			"comics":          {ruleIDList},
			"stories":         {ruleIDList},
			"events":          {ruleIDList},
			"creators":        {ruleIDList},
			"characters":      {ruleIDList},
			"seriesType":      {ruleEnum("collection", "one shot", "limited", "ongoing")},
			"contains":        {ruleString},
			"orderBy":         {ruleOrderBy("title", "modified", "startYear")},
		}),
	})

	registry.Register(TypeStories, &typeSchema{
		params: mergeParamRules(commonParamRules(), paramRules{
			"comics":     {ruleIDList},
			"series":     {ruleIDList},
			"events":     {ruleIDList},
			"creators":   {ruleIDList},
			"characters": {ruleIDList},
			"orderBy":    {ruleOrderBy("id", "modified")},
		}),
	})

	return registry
}

type paramRules map[string][]validation.Rule

func commonParamRules() paramRules {
	return paramRules{
		"offset":        {ruleIntMin(0)},
		"limit":         {ruleIntRange(1, constants.MaxPageLimit)},
		"modifiedSince": {ruleDate},
		"apikey":        {ruleString},
	}
}

func mergeParamRules(base, extra paramRules) paramRules {
	for key, rules := range extra {
		base[key] = rules
	}

	return base
}

var errUnknownParameter = errors.New("unknown parameter")

// typeSchema is the default Schema implementation: a rule table for
// parameters plus a structural check for result items.
type typeSchema struct {
	params paramRules
}

// ValidateParams checks every entry against the rule table. Unknown
// parameter names fail: the gateway silently ignores them, which hides
// typos.
func (s *typeSchema) ValidateParams(params Params) error {
	errs := validation.Errors{}

	for key, value := range params {
		rules, ok := s.params[key]
		if !ok {
			errs[key] = errUnknownParameter

			continue
		}

		err := validation.Validate(value, rules...)
		if err != nil {
			errs[key] = err
		}
	}

	return errs.Filter()
}

// ValidateResult checks the structural invariants every result item shares.
func (s *typeSchema) ValidateResult(result Result) error {
	err := validation.Validate(map[string]interface{}(result),
		validation.Map(
			validation.Key("id", validation.Required, validation.By(checkIntValue)),
			validation.Key("resourceURI", validation.Required, is.RequestURI),
		).AllowExtraKeys(),
	)
	if err != nil {
		return fmt.Errorf("invalid result item: %w", err)
	}

	return nil
}

// Rule helpers. Parameter values arrive as any, so the ozzo primitives are
// wrapped with shape checks first.

var (
	errNotAnInteger = errors.New("must be an integer")
	errNotAString   = errors.New("must be a string")
	errNotABool     = errors.New("must be a boolean")
	errNotAnIDList  = errors.New("must be an id or list of ids")
	errNotADate     = errors.New("must be a date or YYYY-MM-DD string")
)

func checkIntValue(value interface{}) error {
	_, ok := toInt(value)
	if !ok {
		return errNotAnInteger
	}

	return nil
}

func ruleIntMin(min int) validation.Rule {
	return validation.By(func(value interface{}) error {
		n, ok := toInt(value)
		if !ok {
			return errNotAnInteger
		}

		return validation.Validate(n, validation.Min(min))
	})
}

func ruleIntRange(min, max int) validation.Rule {
	return validation.By(func(value interface{}) error {
		n, ok := toInt(value)
		if !ok {
			return errNotAnInteger
		}

		return validation.Validate(n, validation.Min(min), validation.Max(max))
	})
}

var ruleString = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errNotAString
	}

	return validation.Validate(s, validation.Required)
})

var ruleDigits = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errNotAString
	}

	return validation.Validate(s, is.Digit)
})

var ruleBool = validation.By(func(value interface{}) error {
	if _, ok := value.(bool); !ok {
		return errNotABool
	}

	return nil
})

var ruleIDList = validation.By(func(value interface{}) error {
	switch v := value.(type) {
	case int, int64, float64, string:
		return nil
	case []int, []string:
		return nil
	case []any:
		for _, item := range v {
			if _, ok := toInt(item); !ok {
				if _, ok := item.(string); !ok {
					return errNotAnIDList
				}
			}
		}

		return nil
	default:
		return errNotAnIDList
	}
})

var ruleDate = validation.By(func(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		return nil
	case string:
		_, err := time.Parse("2006-01-02", v)
		if err != nil {
			return errNotADate
		}

		return nil
	default:
		return errNotADate
	}
})

func ruleEnum(allowed ...string) validation.Rule {
	values := make([]interface{}, len(allowed))
	for i, v := range allowed {
		values[i] = v
	}

	return validation.In(values...)
}

// ruleOrderBy accepts any of the allowed field names, optionally "-"
// prefixed for descending order, alone or comma-joined via a list value.
func ruleOrderBy(allowed ...string) validation.Rule {
	set := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		set[v] = true
	}

	check := func(field string) error {
		name := field
		if len(name) > 0 && name[0] == '-' {
			name = name[1:]
		}

		if !set[name] {
			return fmt.Errorf("cannot order by %q", field)
		}

		return nil
	}

	return validation.By(func(value interface{}) error {
		switch v := value.(type) {
		case string:
			return check(v)
		case []string:
			for _, field := range v {
				err := check(field)
				if err != nil {
					return err
				}
			}

			return nil
		default:
			return errNotAString
		}
	})
}

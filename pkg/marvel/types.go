package marvel

// ResourceType identifies one of the gateway's resource collections.
type ResourceType string

// The closed set of resource types the gateway serves.
const (
	TypeCharacters ResourceType = "characters"
	TypeComics     ResourceType = "comics"
	TypeCreators   ResourceType = "creators"
	TypeEvents     ResourceType = "events"
	TypeSeries     ResourceType = "series"
	TypeStories    ResourceType = "stories"
)

// ResourceTypes returns all known resource types in a stable order.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		TypeCharacters,
		TypeComics,
		TypeCreators,
		TypeEvents,
		TypeSeries,
		TypeStories,
	}
}

// Valid reports whether t is a member of the known resource type set.
func (t ResourceType) Valid() bool {
	switch t {
	case TypeCharacters, TypeComics, TypeCreators, TypeEvents, TypeSeries, TypeStories:
		return true
	default:
		return false
	}
}

// Params holds query parameters for one request, keyed by parameter name.
type Params map[string]any

// Clone returns a shallow copy of the params.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}

	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Result is one element of a response's results array. Its shape depends on
// the resource type; AutoQuery rewrites reference-bearing fields into
// *ResourceLink and *CollectionLink values.
type Result map[string]any

// ID returns the result's numeric id, if present.
func (r Result) ID() (int, bool) {
	return toInt(r["id"])
}

// ResponseMetadata is the top level of the API envelope.
type ResponseMetadata struct {
	Code            int    `json:"code"            yaml:"code"`
	Status          string `json:"status"          yaml:"status"`
	Copyright       string `json:"copyright"       yaml:"copyright"`
	AttributionText string `json:"attributionText" yaml:"attributionText"`
	AttributionHTML string `json:"attributionHTML" yaml:"attributionHTML"`
	ETag            string `json:"etag"            yaml:"etag"`
}

// ResponseData is the paginated data block of the API envelope.
type ResponseData struct {
	Offset  int      `json:"offset"  yaml:"offset"`
	Limit   int      `json:"limit"   yaml:"limit"`
	Total   int      `json:"total"   yaml:"total"`
	Count   int      `json:"count"   yaml:"count"`
	Results []Result `json:"results" yaml:"results"`
}

// APIResponse is a decoded gateway response.
type APIResponse struct {
	Metadata ResponseMetadata
	Data     ResponseData
}

// Validated records the outcome of each optional validation stage. A nil
// field means that stage never ran (validation disabled); false means it ran
// and failed.
type Validated struct {
	Parameters *bool
	Results    *bool
	AutoQuery  *bool
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// noopLogger discards everything.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

// toInt normalizes the numeric shapes json decoding can produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func boolPtr(v bool) *bool {
	return &v
}

package marvel

import (
	"time"
)

// GlobalParams holds process-wide default parameters applied to every query,
// layered beneath call-site parameters.
type GlobalParams struct {
	// All applies to queries of every resource type.
	All Params

	// ByType applies to queries of one resource type.
	ByType map[ResourceType]Params
}

// ValidationConfig toggles the optional validation stages. The zero value
// enables everything in non-strict mode.
type ValidationConfig struct {
	// DisableAll turns off every validation stage; the query's Validated
	// flags then stay nil.
	DisableAll bool

	// DisableParameters skips parameter schema validation.
	DisableParameters bool

	// DisableResults skips per-item result schema validation.
	DisableResults bool

	// DisableAutoQuery skips recording of link-extension outcomes.
	DisableAutoQuery bool

	// StrictParameters makes parameter validation failures fatal
	// (ParameterValidationError) instead of recorded-and-continue.
	StrictParameters bool
}

// RequestHookFunc is invoked with the signed URL before each network call.
// It is a notification hook, not a gate: its panic propagates, nothing else
// is inspected.
type RequestHookFunc func(url string, endpoint Endpoint, params Params)

// ResultHookFunc is invoked with each fetched page of results.
type ResultHookFunc func(resourceType ResourceType, results []Result)

// Config represents client configuration for building a session.
//
// # Signing
//
// Every request is signed with ts + MD5(ts + PrivateKey + PublicKey). The
// public key is required. When the private key is absent the hash parameter
// is sent empty, which the gateway only accepts for server-side referrer
// authentication; library callers should set both keys.
//
// # Timeouts and retries
//
// Per-request timeouts are controlled via the context passed to Fetch.
// RetryMax/RetryWaitMin/RetryWaitMax tune the transport's retry behavior for
// transient failures (>=500, 429, connection errors); the query engine
// itself never retries.
type Config struct {
	// BaseURL is the gateway root. Defaults to the public gateway when left
	// empty; mclient.New normalizes trailing slashes and a missing scheme.
	BaseURL string

	// PublicKey is the developer portal public key. Required.
	PublicKey string

	// PrivateKey is the developer portal private key used for signing.
	PrivateKey string

	// GlobalParams are layered beneath every query's call-site parameters.
	GlobalParams GlobalParams

	// AutoQuery enables rewriting of resource and collection references in
	// results into navigable link objects. Deployments must choose
	// explicitly; there is no implicit default beyond the zero value.
	AutoQuery bool

	// KeepNilParams retains nil-valued parameters instead of stripping them
	// before the request.
	KeepNilParams bool

	// OnRequest is invoked with (url, endpoint, params) before each network
	// call.
	OnRequest RequestHookFunc

	// OnResult hooks are invoked per resource type with each fetched page.
	OnResult map[ResourceType]ResultHookFunc

	// Fetcher overrides the default HTTP transport.
	Fetcher Fetcher

	// Validation toggles the validation stages.
	Validation ValidationConfig

	// Schemas overrides the default per-type schema registry.
	Schemas *SchemaRegistry

	// Logger: optional structured logger used by the engine and transport.
	Logger Logger

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout: optional default HTTP timeout where supported. Most calls
	// should rely on context timeouts.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport retries. If 0, a sensible
	// default is used.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Cache configures the etag response cache. Nil disables caching.
	Cache *CacheConfig

	// Clock overrides the timestamp source used for signing. Tests only.
	Clock func() time.Time
}

// clone copies the config deeply enough that later caller mutation cannot
// reach the frozen session state.
func (c *Config) clone() *Config {
	out := *c

	out.GlobalParams.All = c.GlobalParams.All.Clone()

	if c.GlobalParams.ByType != nil {
		out.GlobalParams.ByType = make(map[ResourceType]Params, len(c.GlobalParams.ByType))
		for t, p := range c.GlobalParams.ByType {
			out.GlobalParams.ByType[t] = p.Clone()
		}
	}

	if c.OnResult != nil {
		out.OnResult = make(map[ResourceType]ResultHookFunc, len(c.OnResult))
		for t, hook := range c.OnResult {
			out.OnResult[t] = hook
		}
	}

	return &out
}

package marvel

import (
	"time"
)

// HookChain manages the request and result notification hooks configured on
// a session. Request hooks run after URL building and before the network
// call; result hooks run after a page has been fetched and validated. Hooks
// are notifications, not gates: return values do not exist and panics
// propagate to the caller.
type HookChain struct {
	requestHooks []RequestHookFunc
	resultHooks  map[ResourceType][]ResultHookFunc
}

// NewHookChain creates an empty hook chain.
func NewHookChain() *HookChain {
	return &HookChain{
		resultHooks: make(map[ResourceType][]ResultHookFunc),
	}
}

// AddRequestHook appends a request hook to the chain.
func (c *HookChain) AddRequestHook(hook RequestHookFunc) {
	if hook != nil {
		c.requestHooks = append(c.requestHooks, hook)
	}
}

// AddResultHook appends a result hook for one resource type.
func (c *HookChain) AddResultHook(resourceType ResourceType, hook ResultHookFunc) {
	if hook != nil {
		c.resultHooks[resourceType] = append(c.resultHooks[resourceType], hook)
	}
}

// ExecuteRequestHooks runs all request hooks in order.
func (c *HookChain) ExecuteRequestHooks(url string, endpoint Endpoint, params Params) {
	for _, hook := range c.requestHooks {
		hook(url, endpoint, params)
	}
}

// ExecuteResultHooks runs the result hooks registered for a resource type.
func (c *HookChain) ExecuteResultHooks(resourceType ResourceType, results []Result) {
	for _, hook := range c.resultHooks[resourceType] {
		hook(resourceType, results)
	}
}

// Common hooks

// LoggingRequestHook logs each outgoing request.
func LoggingRequestHook(logger Logger) RequestHookFunc {
	return func(url string, endpoint Endpoint, params Params) {
		logger.Debug("API Request", map[string]interface{}{
			"endpoint": endpoint.Path(),
			"params":   canonicalParams(params),
		})
	}
}

// RateLimitRequestHook implements client-side rate limiting. The gateway
// enforces a daily call quota, so bursty AutoQuery traversals should be
// throttled before they hit it.
func RateLimitRequestHook(requestsPerSecond int) RequestHookFunc {
	// Simple token bucket implementation
	bucket := make(chan struct{}, requestsPerSecond)

	for range requestsPerSecond {
		bucket <- struct{}{}
	}

	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(requestsPerSecond))
		defer ticker.Stop()

		for range ticker.C {
			select {
			case bucket <- struct{}{}:
			default:
				// Bucket is full
			}
		}
	}()

	return func(url string, endpoint Endpoint, params Params) {
		<-bucket
	}
}

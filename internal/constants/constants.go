package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits imposed by the gateway.
const (
	// DefaultPageLimit is the page size used when none is requested.
	DefaultPageLimit = 20

	// MaxPageLimit is the largest page size the gateway accepts.
	MaxPageLimit = 100
)

// Cache tuning.
const (
	// DefaultCacheSize is the maximum number of cached responses.
	DefaultCacheSize = 256

	// DefaultCacheTTL is how long a cached response stays usable.
	DefaultCacheTTL = 10 * time.Minute
)

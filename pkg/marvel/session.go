package marvel

import (
	"github.com/excelsior-io/mapi-client/internal/constants"
)

// Session is the query engine: one immutable configuration plus the
// collaborators every query shares. All configuration is captured at
// construction; mutating the caller's Config afterwards has no effect on the
// session.
type Session struct {
	config    *Config
	fetcher   Fetcher
	builder   *URLBuilder
	schemas   *SchemaRegistry
	hooks     *HookChain
	validator *resultValidator
	extender  *extender
	logger    Logger
}

// NewSession creates a session from a config and freezes it. The config must
// carry a public key and a transport (mclient.New supplies the default
// transport; direct library users inject their own Fetcher).
func NewSession(config *Config) (*Session, error) {
	if config == nil {
		return nil, ErrConfigRequired
	}

	if config.PublicKey == "" {
		return nil, ErrMissingCredentials
	}

	if config.Fetcher == nil {
		return nil, ErrFetcherRequired
	}

	cfg := config.clone()

	logger := cfg.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	schemas := cfg.Schemas
	if schemas == nil {
		schemas = DefaultSchemas()
	}

	hooks := NewHookChain()
	if cfg.Debug {
		hooks.AddRequestHook(LoggingRequestHook(logger))
	}

	hooks.AddRequestHook(cfg.OnRequest)

	for resourceType, hook := range cfg.OnResult {
		hooks.AddResultHook(resourceType, hook)
	}

	session := &Session{
		config:  cfg,
		fetcher: cfg.Fetcher,
		builder: NewURLBuilder(cfg.BaseURL, cfg.PublicKey, cfg.PrivateKey, cfg.Clock),
		schemas: schemas,
		hooks:   hooks,
		logger:  logger,
	}

	session.validator = &resultValidator{schemas: schemas, logger: logger}
	session.extender = &extender{factory: session.Query, logger: logger}

	return session, nil
}

// Query constructs an unfetched query for an endpoint. Parameters are
// layered immediately (defaults, global, per-type, call-site) so the query
// carries its final parameter set from birth.
func (s *Session) Query(endpoint Endpoint, params Params) (*Query, error) {
	descriptor, err := DescribeEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	merged := InitializeParams(params, s.config.GlobalParams, descriptor, s.config.KeepNilParams)

	query := &Query{
		session:    s,
		descriptor: descriptor,
		params:     merged,
	}

	query.offset, _ = toInt(merged["offset"])

	limit, ok := toInt(merged["limit"])
	if !ok {
		// A nil call-site limit strips the default layer entirely.
		limit = constants.DefaultPageLimit
	}

	query.limit = limit

	return query, nil
}

// AutoQuery reports whether link extension is enabled for this session.
func (s *Session) AutoQuery() bool {
	return s.config.AutoQuery
}

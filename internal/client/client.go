// Package client implements the typed marvel.Client on top of the query
// engine: one generic resource client per resource type, all sharing a
// session and the default HTTP transport.
package client

import (
	"fmt"

	"github.com/excelsior-io/mapi-client/internal/constants"
	"github.com/excelsior-io/mapi-client/internal/http"
	"github.com/excelsior-io/mapi-client/pkg/marvel"
)

// Client implements the marvel.Client interface.
type Client struct {
	session *marvel.Session
	cache   marvel.Cache

	characters marvel.ResourceClient[marvel.Character]
	comics     marvel.ResourceClient[marvel.Comic]
	creators   marvel.ResourceClient[marvel.Creator]
	events     marvel.ResourceClient[marvel.Event]
	series     marvel.ResourceClient[marvel.Series]
	stories    marvel.ResourceClient[marvel.Story]
}

// New creates a client from a config. When the config carries no Fetcher the
// default HTTP transport is built from the config's transport settings; an
// injected Fetcher is used as-is and the transport settings are ignored.
func New(config *marvel.Config) (*Client, error) {
	if config == nil {
		return nil, marvel.ErrConfigRequired
	}

	cfg := *config
	client := &Client{}

	if cfg.Fetcher == nil {
		httpOpts := createHTTPClientOptions(&cfg)

		if cfg.Cache != nil {
			cache, err := marvel.NewCacheFromConfig(cfg.Cache)
			if err != nil {
				return nil, fmt.Errorf("building response cache: %w", err)
			}

			client.cache = cache
			httpOpts = append(httpOpts, http.WithCache(cache))
		}

		cfg.Fetcher = http.NewClient(httpOpts...)
	}

	session, err := marvel.NewSession(&cfg)
	if err != nil {
		return nil, err
	}

	client.session = session
	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *marvel.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		if retryWaitMin <= 0 {
			retryWaitMin = constants.DefaultRetryWaitMin
		}

		retryWaitMax := config.RetryWaitMax
		if retryWaitMax <= 0 {
			retryWaitMax = constants.DefaultRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Session exposes the underlying query engine.
func (c *Client) Session() *marvel.Session {
	return c.session
}

// Cache returns the response cache built for this client, nil when none was
// configured or the caller injected its own transport.
func (c *Client) Cache() marvel.Cache {
	return c.cache
}

// Resource client accessors

// Characters implements marvel.Client.Characters.
func (c *Client) Characters() marvel.ResourceClient[marvel.Character] {
	return c.characters
}

// Comics implements marvel.Client.Comics.
func (c *Client) Comics() marvel.ResourceClient[marvel.Comic] {
	return c.comics
}

// Creators implements marvel.Client.Creators.
func (c *Client) Creators() marvel.ResourceClient[marvel.Creator] {
	return c.creators
}

// Events implements marvel.Client.Events.
func (c *Client) Events() marvel.ResourceClient[marvel.Event] {
	return c.events
}

// Series implements marvel.Client.Series.
func (c *Client) Series() marvel.ResourceClient[marvel.Series] {
	return c.series
}

// Stories implements marvel.Client.Stories.
func (c *Client) Stories() marvel.ResourceClient[marvel.Story] {
	return c.stories
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.characters = newResourceClient[marvel.Character](c.session, marvel.TypeCharacters)
	c.comics = newResourceClient[marvel.Comic](c.session, marvel.TypeComics)
	c.creators = newResourceClient[marvel.Creator](c.session, marvel.TypeCreators)
	c.events = newResourceClient[marvel.Event](c.session, marvel.TypeEvents)
	c.series = newResourceClient[marvel.Series](c.session, marvel.TypeSeries)
	c.stories = newResourceClient[marvel.Story](c.session, marvel.TypeStories)
}

// Package mclient provides the primary entry point for constructing a Marvel
// Comics API client that implements the marvel.Client interface.
//
// It layers the default HTTP transport, retry behavior, and the optional
// response cache on top of the query engine and typed resource clients
// defined in the marvel package. Most applications should import mclient to
// build a client, then use the returned marvel.Client to access the
// resource-specific clients, for example Characters(), Comics(), Series().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/excelsior-io/mapi-client/pkg/marvel"
//	  "github.com/excelsior-io/mapi-client/pkg/mclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an API key pair.
//	  cli, err := mclient.NewWithKeys("public-key", "private-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = mclient.New(&marvel.Config{
//	    PublicKey:  "public-key",
//	    PrivateKey: "private-key",
//	    AutoQuery:  true,
//	    Cache:      marvel.DefaultCacheConfig(),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use typed resource clients via the marvel.Client interface
//	  page, err := cli.Characters().List(ctx, marvel.Params{"nameStartsWith": "Spider"})
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Dynamic queries
//
// The raw query engine stays reachable through Session() for callers that
// want dynamic results, manual pagination, or AutoQuery link navigation.
//
// # Helpers
//
// The package also provides convenience constructors NewWithKeys and
// NewWithAutoQuery that wrap New with the appropriate configuration.
package mclient

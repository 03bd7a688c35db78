// Package marvel implements a client engine for the Marvel Comics gateway
// API: signed query URLs, the query/pagination lifecycle, parameter and
// result validation, and the AutoQuery link-extension engine that rewrites
// resourceURI and collectionURI references into navigable link objects.
//
// Most applications should construct a client through the mclient package,
// which wires the default HTTP transport and response cache. This package is
// the engine underneath: a Session built from a Config produces Query values,
// and each Fetch advances one page.
//
//	session, err := marvel.NewSession(&marvel.Config{
//		PublicKey:  "...",
//		PrivateKey: "...",
//		Fetcher:    fetcher,
//		AutoQuery:  true,
//	})
//
//	query, err := session.Query(marvel.NewEndpoint(marvel.TypeCharacters), marvel.Params{
//		"nameStartsWith": "Spider",
//	})
//	query, err = query.Fetch(ctx)
//
// With AutoQuery enabled, reference fields in each result become
// *ResourceLink and *CollectionLink values whose Fetch and Query methods
// issue follow-up queries through the same session.
package marvel

package marvel

import (
	"github.com/excelsior-io/mapi-client/internal/constants"
)

// DefaultParams returns the built-in parameter layer present on every query.
func DefaultParams() Params {
	return Params{
		"offset": 0,
		"limit":  constants.DefaultPageLimit,
	}
}

// InitializeParams merges the parameter layers for one query, lowest to
// highest precedence: built-in defaults, global "all" parameters, global
// per-type parameters, call-site parameters. Nil-valued entries are stripped
// from the merged result unless keepNil is set, so a caller can erase a
// lower layer's entry by passing nil for it.
func InitializeParams(raw Params, global GlobalParams, descriptor EndpointDescriptor, keepNil bool) Params {
	merged := DefaultParams()

	for _, layer := range []Params{global.All, global.ByType[descriptor.Type], raw} {
		for key, value := range layer {
			merged[key] = value
		}
	}

	if !keepNil {
		for key, value := range merged {
			if value == nil {
				delete(merged, key)
			}
		}
	}

	return merged
}

package marvel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// resultValidator checks fetched result items against the per-type schema
// and reports failures as warnings. Content failures never abort a query;
// the caller observes them through the query's Validated flags.
type resultValidator struct {
	schemas *SchemaRegistry
	logger  Logger
}

// validate runs the schema over every item. It returns true only if all
// items passed. A missing schema for a known type is a programmer error and
// is returned as such.
func (v *resultValidator) validate(results []Result, descriptor EndpointDescriptor) (bool, error) {
	schema, err := v.schemas.Lookup(descriptor.Type)
	if err != nil {
		return false, err
	}

	failures := make(map[string][]int)

	for i, result := range results {
		err := schema.ValidateResult(result)
		if err != nil {
			signature := err.Error()
			failures[signature] = append(failures[signature], i)
		}
	}

	if len(failures) == 0 {
		return true, nil
	}

	signatures := make([]string, 0, len(failures))
	for signature := range failures {
		signatures = append(signatures, signature)
	}

	sort.Strings(signatures)

	for _, signature := range signatures {
		indices := failures[signature]

		fields := map[string]interface{}{
			"type":    string(descriptor.Type),
			"items":   compactRanges(indices),
			"failing": len(indices),
			"of":      len(results),
		}
		// Route one failing payload per signature to the diagnostics sink.
		fields["sample"] = results[indices[0]]

		v.logger.Warn("result validation failed: "+signature, fields)
	}

	return false, nil
}

// compactRanges renders sorted indices as compact ranges, e.g. "0-2,5,7-9".
func compactRanges(indices []int) string {
	if len(indices) == 0 {
		return ""
	}

	var parts []string

	start, prev := indices[0], indices[0]

	flush := func() {
		if start == prev {
			parts = append(parts, strconv.Itoa(start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, idx := range indices[1:] {
		if idx == prev+1 {
			prev = idx

			continue
		}

		flush()

		start, prev = idx, idx
	}

	flush()

	return strings.Join(parts, ",")
}

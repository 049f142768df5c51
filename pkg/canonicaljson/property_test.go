// Property-based tests for serializer determinism.
package canonicaljson_test

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/evidify-labs/auditchain/pkg/canonicaljson"
)

// TestCanonicalizeDeterminism verifies that independently constructed but
// equal payloads always serialize to identical text.
func TestCanonicalizeDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("equal payloads serialize identically", prop.ForAll(
		func(keys []string, nums []float64) bool {
			// Generated keys may repeat; keep the first pairing per key so
			// both maps are built from the same key→value set.
			pairs := make(map[string]float64)
			for i := 0; i < len(keys) && i < len(nums); i++ {
				if _, seen := pairs[keys[i]]; !seen {
					pairs[keys[i]] = nums[i]
				}
			}
			ordered := make([]string, 0, len(pairs))
			for k := range pairs {
				ordered = append(ordered, k)
			}

			a := make(map[string]any)
			for _, k := range ordered {
				a[k] = pairs[k]
			}
			// Populate b in reverse to vary construction order.
			b := make(map[string]any)
			for i := len(ordered) - 1; i >= 0; i-- {
				b[ordered[i]] = pairs[ordered[i]]
			}

			va := canonicaljson.FromAny(a)
			vb := canonicaljson.FromAny(b)
			return canonicaljson.Canonicalize(va) == canonicaljson.Canonicalize(vb)
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.Float64()),
	))

	properties.TestingRun(t)
}

// TestCanonicalizeNoStructuralWhitespace verifies that payloads whose
// strings carry no whitespace themselves serialize with none at all.
func TestCanonicalizeNoStructuralWhitespace(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("no whitespace outside string content", prop.ForAll(
		func(keys []string, vals []string) bool {
			obj := make(map[string]any)
			for i := 0; i < len(keys) && i < len(vals); i++ {
				obj[keys[i]] = vals[i]
			}
			out := canonicaljson.Canonicalize(canonicaljson.FromAny(obj))
			return !strings.ContainsAny(out, " \t\n\r")
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

package canonicaljson

import (
	"encoding/json"
	"testing"
)

func FuzzCanonicalize(f *testing.F) {
	// Seed corpus with interesting payloads
	f.Add([]byte(`{"a":1,"b":2}`))
	f.Add([]byte(`{"z":{"y":"foo","x":"bar"},"a":1}`))
	f.Add([]byte(`{"birads":4,"confidence":0.8}`))
	f.Add([]byte(`{"arr":[3,1,2],"nested":{"deep":{"key":"val"}}}`))
	f.Add([]byte(`{}`))
	f.Add([]byte(`{"":"empty_key","a":""}`))
	f.Add([]byte(`{"unicode":"こんにちは","emoji":"🚀"}`))
	f.Add([]byte(`{"escape":"line1\nline2\ttab"}`))
	f.Add([]byte(`{"nums":[1e21,1e-7,-0.0,0.00001]}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		var v Value
		if err := json.Unmarshal(data, &v); err != nil {
			t.Skip("invalid JSON input")
			return
		}

		out := Canonicalize(v)

		// Determinism: same input must produce identical output.
		if again := Canonicalize(v); again != out {
			t.Errorf("non-deterministic:\n  first:  %s\n  second: %s", out, again)
		}

		// Output must itself be valid JSON.
		var reparsed Value
		if err := json.Unmarshal([]byte(out), &reparsed); err != nil {
			t.Fatalf("canonical output is not valid JSON: %s", out)
		}

		// Canonicalization must be a fixed point: reparsing the canonical
		// text and serializing again changes nothing.
		if fixed := Canonicalize(reparsed); fixed != out {
			t.Errorf("not a fixed point:\n  first:  %s\n  reparse: %s", out, fixed)
		}
	})
}

package canonicaljson

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/gowebpki/jcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOrderIndependence(t *testing.T) {
	a := FromAny(map[string]any{"z": 1, "a": 2, "m": 3})
	b := FromAny(map[string]any{"a": 2, "m": 3, "z": 1})

	assert.Equal(t, `{"a":2,"m":3,"z":1}`, Canonicalize(a))
	assert.Equal(t, Canonicalize(a), Canonicalize(b))
}

func TestNumberFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1.0, "1"},
		{math.Copysign(0, -1), "0"},
		{0.8, "0.8"},
		{123.456, "123.456"},
		{-42, "-42"},
		{1e7, "10000000"},
		{0.00001, "0.00001"},
		{0.000001, "0.000001"},
		{1e-7, "1e-7"},
		{1e21, "1e+21"},
		{2.5e22, "2.5e+22"},
		{-1.5e-8, "-1.5e-8"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Canonicalize(Number(tc.in)), "input %v", tc.in)
	}
}

func TestStringEscaping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`say "hello"`, `"say \"hello\""`},
		{`back\slash`, `"back\\slash"`},
		{"line1\nline2\ttab", `"line1\nline2\ttab"`},
		{"\b\f\r", `"\b\f\r"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"こんにちは 🚀", "\"こんにちは 🚀\""},
		{"<script>&", `"<script>&"`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Canonicalize(String(tc.in)))
	}
}

func TestUndefinedHandling(t *testing.T) {
	// Standalone and array elements serialize to null.
	assert.Equal(t, "null", Canonicalize(Undefined()))
	assert.Equal(t, "[null,1]", Canonicalize(Array(Undefined(), Number(1))))

	// Object members holding Undefined are omitted entirely; Null members
	// are kept.
	v := Object(map[string]Value{
		"keep": Null(),
		"drop": Undefined(),
		"x":    Number(1),
	})
	assert.Equal(t, `{"keep":null,"x":1}`, Canonicalize(v))
}

func TestUnknownTypeFallback(t *testing.T) {
	type opaque struct{ n int }

	assert.Equal(t, "null", Canonicalize(FromAny(opaque{1})))
	assert.Equal(t, "null", Canonicalize(FromAny(make(chan int))))
	assert.Equal(t, `{"a":null}`, Canonicalize(FromAny(map[string]any{"a": opaque{2}})))
}

func TestNoWhitespace(t *testing.T) {
	v := FromAny(map[string]any{
		"arr":    []any{1, 2, map[string]any{"k": "v"}},
		"nested": map[string]any{"deep": map[string]any{"key": true}},
		"num":    123.456,
	})
	out := Canonicalize(v)
	for _, ws := range []string{" ", "\t", "\n"} {
		assert.NotContains(t, out, ws)
	}
}

func TestReadingPayloadVector(t *testing.T) {
	v := FromAny(map[string]any{"birads": 4, "confidence": 0.8})
	assert.Equal(t, `{"birads":4,"confidence":0.8}`, Canonicalize(v))
}

func TestDeterminismAcrossConstructions(t *testing.T) {
	built := Object(map[string]Value{
		"birads":     Number(4),
		"confidence": Number(0.8),
	})

	var parsed Value
	require.NoError(t, json.Unmarshal([]byte(`{"confidence":0.8,"birads":4}`), &parsed))

	assert.Equal(t, Canonicalize(built), Canonicalize(parsed))
	assert.True(t, built.Equal(parsed))
}

func TestValueJSONRoundTrip(t *testing.T) {
	const doc = `{"case":"C-104","fixations":[{"x":0.31,"y":0.72,"ms":240}],"aiShown":true,"note":null}`

	var v Value
	require.NoError(t, json.Unmarshal([]byte(doc), &v))

	out, err := json.Marshal(v)
	require.NoError(t, err)

	var v2 Value
	require.NoError(t, json.Unmarshal(out, &v2))
	assert.Equal(t, Canonicalize(v), Canonicalize(v2))
}

// TestAgreesWithRFC8785 cross-checks the serializer against an independent
// JCS implementation. For payloads without Undefined members the two must
// produce identical bytes.
func TestAgreesWithRFC8785(t *testing.T) {
	docs := []string{
		`{"c":3,"a":1,"b":2}`,
		`{"z":{"y":"foo","x":"bar"},"a":[3,1,2]}`,
		`{"birads":4,"confidence":0.8}`,
		`{"html":"<script>alert('x')</script> &"}`,
		`{"unicode":"こんにちは","emoji":"🚀"}`,
		`{"escape":"line1\nline2\ttab","quote":"say \"hi\""}`,
		`{"nums":[1.0,-0.0,123.456,1e7,0.00001,1e21]}`,
		`{"":"empty key","deep":{"er":{"est":null}}}`,
		`[true,false,null,"",0]`,
	}
	for _, doc := range docs {
		want, err := jcs.Transform([]byte(doc))
		require.NoError(t, err, "jcs transform %s", doc)

		var v Value
		require.NoError(t, json.Unmarshal([]byte(doc), &v))
		assert.Equal(t, string(want), Canonicalize(v), "input %s", doc)
	}
}

func TestKeySortIsCodeUnitOrder(t *testing.T) {
	// U+FF61 (halfwidth ideographic full stop) is a single BMP code unit
	// 0xFF61; U+10000 encodes as the surrogate pair 0xD800 0xDC00. In
	// code-unit order the supplementary character sorts first, which is
	// the opposite of code-point order.
	v := Object(map[string]Value{
		"｡":     Number(1),
		"\U00010000": Number(2),
	})
	out := Canonicalize(v)
	require.True(t, strings.Index(out, "\U00010000") < strings.Index(out, "｡"), "got %q", out)
}

// Package canonicaljson provides deterministic serialization of JSON-like
// values for content hashing of ledger payloads.
//
// The serializer operates on a closed Value type rather than arbitrary Go
// values: producers convert their payloads once via FromAny (a documented
// lossy conversion) and every downstream consumer sees the same closed set
// of kinds. Calling Canonicalize twice on equal Values, even ones built
// independently, yields byte-identical text.
package canonicaljson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Kind discriminates the closed set of representable value kinds.
type Kind uint8

const (
	// KindUndefined is the "absent" case: it serializes to null when it
	// appears standalone or as an array element, and an object member
	// holding it is omitted entirely.
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one JSON-representable value. The zero Value is Undefined.
//
// Values are immutable after construction; the constructors copy any maps
// and slices they are given, so callers cannot mutate a Value through the
// inputs used to build it.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Undefined returns the absent value.
func Undefined() Value { return Value{kind: KindUndefined} }

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric value. Non-finite inputs are accepted here and
// serialize to null.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array value with the given elements, in order.
func Array(elems ...Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: KindArray, arr: cp}
}

// Object returns an object value with the given members. Member order is
// irrelevant; serialization sorts keys.
func Object(members map[string]Value) Value {
	cp := make(map[string]Value, len(members))
	for k, v := range members {
		cp[k] = v
	}
	return Value{kind: KindObject, obj: cp}
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// FromAny converts an arbitrary Go value into a Value. The conversion is
// total: anything outside the representable set (channels, funcs, structs,
// and so on) maps to Null. This is a deliberate lossy fallback, never an
// error.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Null()
		}
		return Number(f)
	case []any:
		arr := make([]Value, len(t))
		for i, e := range t {
			arr[i] = FromAny(e)
		}
		return Value{kind: KindArray, arr: arr}
	case []Value:
		return Array(t...)
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = FromAny(e)
		}
		return Value{kind: KindObject, obj: obj}
	case map[string]Value:
		return Object(t)
	default:
		return Null()
	}
}

// MarshalJSON emits the canonical form, which is itself valid JSON.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(Canonicalize(v)), nil
}

// UnmarshalJSON parses arbitrary JSON into a Value. Numbers are decoded via
// json.Number so integer literals survive the trip without float formatting
// surprises before conversion.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("canonicaljson: decode: %w", err)
	}
	*v = FromAny(generic)
	return nil
}

// Equal reports whether two Values are structurally equal. Two Values are
// equal exactly when their canonical forms are identical, except that an
// Undefined object member and a missing one compare equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		// Canonical text equality, so NaN == NaN (both null) and -0 == 0.
		return formatNumber(v.num) == formatNumber(o.num)
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return Canonicalize(v) == Canonicalize(o)
	default:
		return true
	}
}

// sortedKeys returns the object's serializable member keys in canonical
// order, skipping members that hold Undefined.
func (v Value) sortedKeys() []string {
	keys := make([]string, 0, len(v.obj))
	for k, member := range v.obj {
		if member.kind == KindUndefined {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return codeUnitLess(keys[i], keys[j]) })
	return keys
}

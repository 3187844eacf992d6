// Package jsonvalue is the JSON primitive collaborator the jsonpath core
// consumes: array/object inspection, child lookup, descendant iteration,
// deep equality, and tri-state ordering over JSON values.
//
// Object members are kept in insertion order. encoding/json decodes objects
// into Go maps, which do not preserve order, so Decode builds Value trees
// itself, token by token, the way internal/jsonpath/jsonpath.go's
// decodeObjectSubtree/decodeArraySubtree build subtrees from a
// *json.Decoder.
package jsonvalue

import (
	"encoding/json"
	"sort"
)

// Kind identifies the JSON type carried by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is a single key/value pair of an object, in the position it was
// decoded or constructed.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is JSON null.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	arr  []Value
	obj  []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number, keeping its exact textual form.
func Number(n json.Number) Value { return Value{kind: KindNumber, n: n} }

// String wraps a JSON string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array wraps a JSON array. items is not copied; callers must not mutate it
// afterwards.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Object wraps a JSON object, preserving the order of members. members is
// not copied; callers must not mutate it afterwards.
func Object(members []Member) Value { return Value{kind: KindObject, obj: members} }

// Kind reports the JSON type of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// Number returns the numeric payload; only meaningful when Kind() == KindNumber.
func (v Value) Number() json.Number { return v.n }

// Str returns the string payload; only meaningful when Kind() == KindString.
func (v Value) Str() string { return v.s }

// RawArray returns the backing slice of an array value; callers must not
// mutate it. Meaningful only when Kind() == KindArray.
func (v Value) RawArray() []Value { return v.arr }

// RawObject returns the backing member slice of an object value, in
// insertion order; callers must not mutate it. Meaningful only when
// Kind() == KindObject.
func (v Value) RawObject() []Member { return v.obj }

// IsArray reports whether v is a JSON array.
func IsArray(v Value) bool { return v.kind == KindArray }

// IsObject reports whether v is a JSON object.
func IsObject(v Value) bool { return v.kind == KindObject }

// IsString reports whether v is a JSON string.
func IsString(v Value) bool { return v.kind == KindString }

// Len returns the number of elements/members of an array or object, or 0
// for any other kind.
func Len(v Value) int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Child looks up an object member by name, returning (value, true) when
// present. Non-objects and missing members report (Null(), false).
func Child(v Value, key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Index returns the array element at i, or (Null(), false) if v is not an
// array or i is out of range. i must already be normalized (no negative
// wraparound is performed here).
func Index(v Value, i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Children enumerates the immediate children of v in order: array elements
// by index, object member values in insertion order. Scalars and null have
// no children.
func Children(v Value) []Value {
	switch v.kind {
	case KindArray:
		out := make([]Value, len(v.arr))
		copy(out, v.arr)
		return out
	case KindObject:
		out := make([]Value, len(v.obj))
		for i, m := range v.obj {
			out[i] = m.Value
		}
		return out
	default:
		return nil
	}
}

// Descendants performs a pre-order walk of v's strict descendants (v itself
// is not included): for each container child, the child is visited before
// its own descendants, arrays in index order and objects in insertion
// order.
func Descendants(v Value) []Value {
	var out []Value
	var walk func(Value)
	walk = func(n Value) {
		for _, c := range Children(n) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(v)
	return out
}

// sortedKeys is used only by FromAny, which accepts data whose original
// member order is already lost (a plain map[string]any); it makes that
// best-effort reconstruction deterministic rather than defaulting to Go's
// randomized map iteration.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FromAny adapts a value produced by encoding/json.Unmarshal(&v) (or built
// from the same shapes: nil, bool, float64/json.Number, string,
// []any, map[string]any) into a Value tree.
//
// map[string]any does not preserve the source object's member order; when
// the exact order matters, decode with Decode instead of Unmarshal+FromAny.
func FromAny(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case json.Number:
		return Number(x)
	case float64:
		return Number(json.Number(formatFloat(x)))
	case int:
		return Number(json.Number(formatInt(int64(x))))
	case int64:
		return Number(json.Number(formatInt(x)))
	case string:
		return String(x)
	case []any:
		items := make([]Value, len(x))
		for i, e := range x {
			items[i] = FromAny(e)
		}
		return Array(items)
	case []Value:
		return Array(x)
	case map[string]any:
		keys := sortedKeys(x)
		members := make([]Member, len(keys))
		for i, k := range keys {
			members[i] = Member{Key: k, Value: FromAny(x[k])}
		}
		return Object(members)
	case Value:
		return x
	default:
		return Null()
	}
}

// ToAny converts a Value back into the plain Go shapes encoding/json
// produces: nil, bool, json.Number, string, []any, map[string]any. Object
// member order is lost in the returned map[string]any, matching
// encoding/json's own behavior.
func ToAny(v Value) any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for _, m := range v.obj {
			out[m.Key] = ToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}

package jsonvalue

import (
	"encoding/json"
	"strconv"

	// Packages
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind enumerates the JSON value kinds.
type Kind int

// Value is a JSON document or subtree. Objects preserve key insertion
// order, which makes marshalling deterministic and reproducible. The
// zero value is the JSON null.
type Value struct {
	kind Kind
	bool bool
	num  json.Number
	str  string
	arr  []Value
	obj  *orderedmap.OrderedMap[string, Value]
}

// Pair is a key and value from an object, in insertion order.
type Pair struct {
	Key   string
	Value Value
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, bool: b}
}

// Number returns a JSON number value from a literal. The literal is
// emitted verbatim when marshalling, so numeric representation is
// preserved through a decode/encode round-trip.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// Int returns a JSON number value from an integer.
func Int(i int64) Value {
	return Number(json.Number(strconv.FormatInt(i, 10)))
}

// Float returns a JSON number value from a float.
func Float(f float64) Value {
	return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns a JSON array value with the given elements, in order.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// NewObject returns an empty JSON object value.
func NewObject() Value {
	return Value{kind: KindObject, obj: orderedmap.New[string, Value]()}
}

// ObjectOf returns a JSON object value with the given pairs, in order.
func ObjectOf(pairs ...Pair) Value {
	obj := NewObject()
	for _, pair := range pairs {
		obj.Set(pair.Key, pair.Value)
	}
	return obj
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if the value is the JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// BoolValue returns the boolean payload, or false for other kinds.
func (v Value) BoolValue() bool {
	if v.kind != KindBool {
		return false
	}
	return v.bool
}

// NumberValue returns the number literal, or the empty literal for other kinds.
func (v Value) NumberValue() json.Number {
	if v.kind != KindNumber {
		return ""
	}
	return v.num
}

// StringValue returns the string payload, or the empty string for other kinds.
func (v Value) StringValue() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// Elems returns the elements of an array, or nil for other kinds.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of elements in an array, or keys in an object.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return v.obj.Len()
	}
	return 0
}

// Get returns the value for a key in an object. The second return
// value is false if the value is not an object or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.obj.Get(key)
}

// Set stores a key in an object. A new key is appended, an existing
// key is updated in place and keeps its position. Ignored for other kinds.
func (v Value) Set(key string, value Value) {
	if v.kind != KindObject {
		return
	}
	v.obj.Set(key, value)
}

// Delete removes a key from an object and reports whether it was present.
func (v Value) Delete(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, present := v.obj.Delete(key)
	return present
}

// Keys returns the keys of an object in insertion order, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs returns the key-value pairs of an object in insertion order,
// or nil for other kinds.
func (v Value) Pairs() []Pair {
	if v.kind != KindObject {
		return nil
	}
	pairs := make([]Pair, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, Pair{Key: pair.Key, Value: pair.Value})
	}
	return pairs
}

// Clone returns a deep copy of the value. Mutating the copy never
// affects the original.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			elems[i] = elem.Clone()
		}
		return Array(elems...)
	case KindObject:
		obj := NewObject()
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			obj.Set(pair.Key, pair.Value.Clone())
		}
		return obj
	}
	return v
}

// Equal returns true if two values are deeply equal. Objects compare
// key order as well as contents, numbers compare by literal.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.bool == b.bool
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		bpair := b.obj.Oldest()
		for apair := a.obj.Oldest(); apair != nil; apair = apair.Next() {
			if bpair == nil || apair.Key != bpair.Key || !Equal(apair.Value, bpair.Value) {
				return false
			}
			bpair = bpair.Next()
		}
		return true
	}
	return false
}

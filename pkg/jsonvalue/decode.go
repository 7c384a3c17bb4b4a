package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// MaxDepth is the deepest nesting the decoders accept. Documents
// beyond this depth return an error rather than exhausting the stack.
const MaxDepth = 1000

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode parses JSON into a Value, preserving object key order. Numbers
// are kept as literals so they round-trip unchanged. Trailing data after
// the first value is an error.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	value, err := decodeValue(dec, 0)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected data after JSON value")
	}
	return value, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth >= MaxDepth {
		return Value{}, fmt.Errorf("nesting exceeds %d levels", MaxDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return decodeObject(dec, depth)
		case '[':
			return decodeArray(dec, depth)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", tok.String())
	case bool:
		return Bool(tok), nil
	case json.Number:
		return Number(tok), nil
	case string:
		return String(tok), nil
	case nil:
		return Null(), nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder, depth int) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		// Duplicate keys: last value wins, first position kept
		obj.Set(key, value)
	}
	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder, depth int) (Value, error) {
	var elems []Value
	for dec.More() {
		value, err := decodeValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, value)
	}
	// Consume the closing bracket
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(elems...), nil
}

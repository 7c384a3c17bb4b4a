// Package toolschema produces JSON Schema documents restricted to the
// subset accepted by LLM function-calling APIs. A schema may be derived
// from a Go type by reflection, or supplied as JSON, YAML or a
// jsonschema.Schema, and is normalized on construction: unsupported
// validation keywords are stripped, oneOf and allOf become anyOf, and
// every object schema is closed with additionalProperties set to false
// and all of its properties required.
package toolschema

import (
	"bytes"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	reflectschema "github.com/invopop/jsonschema"
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
	normalizer "github.com/mutablelogic/go-toolschema/pkg/normalizer"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Schema is a normalized JSON Schema document.
type Schema struct {
	value jsonvalue.Value
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New generates a schema from a Go type by reflection and normalizes
// it. Struct field order is preserved in properties and required.
func New[T any](opts ...Opt) (*Schema, error) {
	reflector := reflectschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	data, err := json.Marshal(reflector.Reflect(new(T)))
	if err != nil {
		return nil, ErrInternalServerError.With(err)
	}
	return FromJSON(data, opts...)
}

// FromJSON normalizes a schema supplied as a JSON document. Key order
// of the input is preserved in the output. A root which is not an
// object or array passes through untouched.
func FromJSON(data []byte, opts ...Opt) (*Schema, error) {
	o, err := ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}
	value, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, ErrBadParameter.With(err)
	}
	return normalize(value, o)
}

// FromYAML normalizes a schema supplied as a YAML document.
func FromYAML(data []byte, opts ...Opt) (*Schema, error) {
	o, err := ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}
	value, err := jsonvalue.DecodeYAML(data)
	if err != nil {
		return nil, ErrBadParameter.With(err)
	}
	return normalize(value, o)
}

// FromValue normalizes a schema supplied as a document value.
func FromValue(value jsonvalue.Value, opts ...Opt) (*Schema, error) {
	o, err := ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}
	return normalize(value, o)
}

// FromSchema normalizes a jsonschema.Schema, as returned by tool
// implementations.
func FromSchema(schema *jsonschema.Schema, opts ...Opt) (*Schema, error) {
	if schema == nil {
		return nil, ErrBadParameter.With("nil schema")
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, ErrBadParameter.With(err)
	}
	return FromJSON(data, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Value returns the normalized schema document.
func (s *Schema) Value() jsonvalue.Value {
	return s.value
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s *Schema) MarshalJSON() ([]byte, error) {
	return s.value.MarshalJSON()
}

func (s *Schema) String() string {
	data, err := s.MarshalJSON()
	if err != nil {
		return err.Error()
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func normalize(value jsonvalue.Value, o *Opts) (*Schema, error) {
	normalized, err := normalizer.New(o.Policy()).Normalize(value)
	if err != nil {
		return nil, ErrConflict.With(err)
	}
	return &Schema{value: normalized}, nil
}

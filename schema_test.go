package toolschema_test

import (
	"errors"
	"testing"
	"time"

	jsonschema "github.com/google/jsonschema-go/jsonschema"
	toolschema "github.com/mutablelogic/go-toolschema"
	"github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
	"github.com/mutablelogic/go-toolschema/pkg/normalizer"
	"github.com/stretchr/testify/assert"
)

func TestFromJSON(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromJSON([]byte(
		`{"type":"object","properties":{"x":{"type":"string","format":"email"}},"oneOf":[{"required":["x"]}]}`))
	assert.NoError(err)
	assert.Equal(
		`{"type":"object","properties":{"x":{"type":"string"}},"anyOf":[{"required":["x"]}],"additionalProperties":false,"required":["x"]}`,
		schema.Value().String())
}

func TestFromJSONInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := toolschema.FromJSON([]byte(`{`))
	assert.Error(err)
	assert.True(errors.Is(err, toolschema.ErrBadParameter))
}

func TestFromJSONScalarRoot(t *testing.T) {
	assert := assert.New(t)

	// Defensive boundary: a scalar root passes through untouched
	schema, err := toolschema.FromJSON([]byte(`"just a string"`))
	assert.NoError(err)
	assert.Equal(`"just a string"`, schema.Value().String())
}

func TestFromYAML(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromYAML([]byte(`
type: object
properties:
  name:
    type: string
    pattern: "^[a-z]+$"
  age:
    type: integer
    minimum: 0
`))
	assert.NoError(err)
	assert.Equal(
		`{"type":"object","properties":{"name":{"type":"string"},"age":{"type":"integer"}},"additionalProperties":false,"required":["name","age"]}`,
		schema.Value().String())
}

type weather struct {
	Location string    `json:"location" jsonschema:"description=City and country"`
	Units    string    `json:"units,omitempty"`
	When     time.Time `json:"when,omitempty"`
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.New[weather]()
	assert.NoError(err)

	value := schema.Value()
	properties, exists := value.Get("properties")
	assert.True(exists)

	// Properties follow struct field order, and required lists them all
	assert.Equal([]string{"location", "units", "when"}, properties.Keys())
	required, exists := value.Get("required")
	assert.True(exists)
	assert.Equal(`["location","units","when"]`, required.String())

	additional, exists := value.Get("additionalProperties")
	assert.True(exists)
	assert.Equal(jsonvalue.KindBool, additional.Kind())
	assert.False(additional.BoolValue())

	// time.Time reflects with a format keyword, which must be stripped
	when, _ := properties.Get("when")
	_, exists = when.Get("format")
	assert.False(exists)
	typ, _ := when.Get("type")
	assert.Equal("string", typ.StringValue())
}

func TestFromSchema(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromSchema(&jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string", Format: "email"},
		},
	})
	assert.NoError(err)

	value := schema.Value()
	properties, exists := value.Get("properties")
	assert.True(exists)
	name, exists := properties.Get("name")
	assert.True(exists)
	_, exists = name.Get("format")
	assert.False(exists)

	required, exists := value.Get("required")
	assert.True(exists)
	assert.Equal(`["name"]`, required.String())
}

func TestFromValue(t *testing.T) {
	assert := assert.New(t)

	value := jsonvalue.ObjectOf(
		jsonvalue.Pair{Key: "type", Value: jsonvalue.String("object")},
		jsonvalue.Pair{Key: "properties", Value: jsonvalue.ObjectOf(
			jsonvalue.Pair{Key: "x", Value: jsonvalue.ObjectOf(
				jsonvalue.Pair{Key: "type", Value: jsonvalue.String("string")},
				jsonvalue.Pair{Key: "maxLength", Value: jsonvalue.Int(10)},
			)},
		)},
	)
	schema, err := toolschema.FromValue(value)
	assert.NoError(err)
	assert.Equal(
		`{"type":"object","properties":{"x":{"type":"string"}},"additionalProperties":false,"required":["x"]}`,
		schema.Value().String())
}

func TestFromSchemaNil(t *testing.T) {
	if _, err := toolschema.FromSchema(nil); err == nil {
		t.Fatal("expected error for nil schema")
	}
}

func TestWithDeny(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromJSON(
		[]byte(`{"title":"T","properties":{"a":{}}}`),
		toolschema.WithDeny("title"))
	assert.NoError(err)
	_, exists := schema.Value().Get("title")
	assert.False(exists)
}

func TestWithAllow(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromJSON(
		[]byte(`{"format":"email","pattern":"^x"}`),
		toolschema.WithAllow("format"))
	assert.NoError(err)
	assert.Equal(`{"format":"email"}`, schema.Value().String())
}

func TestWithDenied(t *testing.T) {
	assert := assert.New(t)

	// Replacing the set keeps only the listed keywords denied
	schema, err := toolschema.FromJSON(
		[]byte(`{"format":"email","custom":true}`),
		toolschema.WithDenied("custom"))
	assert.NoError(err)
	assert.Equal(`{"format":"email"}`, schema.Value().String())
}

func TestWithComposition(t *testing.T) {
	assert := assert.New(t)

	_, err := toolschema.FromJSON(
		[]byte(`{"anyOf":[1],"oneOf":[2]}`),
		toolschema.WithComposition(normalizer.CompositionReject))
	assert.Error(err)
	assert.True(errors.Is(err, toolschema.ErrConflict))

	// Invalid policy value
	_, err = toolschema.FromJSON([]byte(`{}`), toolschema.WithComposition(99))
	assert.Error(err)
	assert.True(errors.Is(err, toolschema.ErrBadParameter))
}

func TestWithoutObjectForcing(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromJSON(
		[]byte(`{"type":"object"}`),
		toolschema.WithoutObjectForcing())
	assert.NoError(err)
	assert.Equal(`{"type":"object"}`, schema.Value().String())
}

func TestSchemaString(t *testing.T) {
	assert := assert.New(t)

	schema, err := toolschema.FromJSON([]byte(`{"type":"object"}`))
	assert.NoError(err)
	assert.Equal("{\n  \"type\": \"object\",\n  \"additionalProperties\": false\n}", schema.String())
}

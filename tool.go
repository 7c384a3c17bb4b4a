package toolschema

import (
	"encoding/json"

	// Packages
	types "github.com/mutablelogic/go-toolschema/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// emptyParameters is the schema for a tool which takes no input.
var emptyParameters = json.RawMessage(`{"type":"object","properties":{},"additionalProperties":false,"required":[]}`)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolDefinition is a function-calling tool with a name, description
// and normalized input schema. It marshals to the payload expected by
// the OpenAI tools API.
type ToolDefinition struct {
	Name        string
	Description string
	Schema      *Schema
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolDefinition creates a tool definition. Returns an error if the
// name is not a valid tool name.
func NewToolDefinition(name, description string, schema *Schema) (*ToolDefinition, error) {
	if !types.IsToolName(name) {
		return nil, ErrBadParameter.Withf("invalid tool name: %q", name)
	}
	return &ToolDefinition{
		Name:        name,
		Description: description,
		Schema:      schema,
	}, nil
}

// NewToolDefinitionFor creates a tool definition whose input schema is
// generated from a Go type.
func NewToolDefinitionFor[T any](name, description string, opts ...Opt) (*ToolDefinition, error) {
	schema, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	return NewToolDefinition(name, description, schema)
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (t ToolDefinition) MarshalJSON() ([]byte, error) {
	type fn struct {
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		Parameters  json.RawMessage `json:"parameters"`
		Strict      bool            `json:"strict"`
	}
	var j struct {
		Type     string `json:"type"`
		Function fn     `json:"function"`
	}

	parameters := emptyParameters
	if t.Schema != nil {
		data, err := t.Schema.MarshalJSON()
		if err != nil {
			return nil, err
		}
		parameters = json.RawMessage(data)
	}

	j.Type = "function"
	j.Function = fn{
		Name:        t.Name,
		Description: t.Description,
		Parameters:  parameters,
		Strict:      true,
	}
	return json.Marshal(j)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ToolDefinition) String() string {
	data, err := json.Marshal(t)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	// Packages
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DecodeYAML parses YAML into a Value. Mapping order is preserved by
// walking the yaml.Node tree rather than decoding to a native map.
// Mapping keys must be strings, and floats must be finite so the result
// remains a valid JSON document. Aliases which refer back to a node
// still being decoded are an error, since the cycle has no JSON
// representation.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}
	return decodeYAMLNode(doc.Content[0], make(map[*yaml.Node]bool), 0)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func decodeYAMLNode(node *yaml.Node, visiting map[*yaml.Node]bool, depth int) (Value, error) {
	if depth >= MaxDepth {
		return Value{}, fmt.Errorf("line %d: nesting exceeds %d levels", node.Line, MaxDepth)
	}
	switch node.Kind {
	case yaml.MappingNode:
		visiting[node] = true
		defer delete(visiting, node)
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode || key.Tag != "!!str" {
				return Value{}, fmt.Errorf("line %d: mapping key must be a string", key.Line)
			}
			value, err := decodeYAMLNode(node.Content[i+1], visiting, depth+1)
			if err != nil {
				return Value{}, err
			}
			obj.Set(key.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		visiting[node] = true
		defer delete(visiting, node)
		elems := make([]Value, 0, len(node.Content))
		for _, elem := range node.Content {
			value, err := decodeYAMLNode(elem, visiting, depth+1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, value)
		}
		return Array(elems...), nil
	case yaml.AliasNode:
		if visiting[node.Alias] {
			return Value{}, fmt.Errorf("line %d: alias %q refers to itself", node.Line, node.Value)
		}
		return decodeYAMLNode(node.Alias, visiting, depth)
	case yaml.ScalarNode:
		return decodeYAMLScalar(node)
	}
	return Value{}, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}

func decodeYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(node.Value)
		if err != nil {
			return Value{}, fmt.Errorf("line %d: invalid boolean %q", node.Line, node.Value)
		}
		return Bool(b), nil
	case "!!int":
		// Base 0 so YAML hex and octal literals decode
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return Value{}, fmt.Errorf("line %d: invalid integer %q", node.Line, node.Value)
		}
		return Int(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
		}
		return Number(json.Number(strconv.FormatFloat(f, 'g', -1, 64))), nil
	}
	return String(node.Value), nil
}

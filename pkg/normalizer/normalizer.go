// Package normalizer rewrites JSON Schema documents into the keyword
// subset accepted by LLM function-calling APIs. The rewrite is a single
// post-order pass which strips validation keywords the target validator
// does not recognise, renames oneOf and allOf to anyOf, and on every
// node declaring properties forces additionalProperties to false and
// required to the full property key list.
package normalizer

import (
	"errors"
	"fmt"

	// Packages
	jsonvalue "github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CompositionPolicy selects what happens when a renamed oneOf or allOf
// collides with an anyOf already present at the same level.
type CompositionPolicy int

// Policy is the data table driving normalization. Keywords are stripped
// by table lookup rather than hard-coded branches so the denied set can
// change without touching the traversal.
type Policy struct {
	// Keywords removed from every object, at any depth
	Denied map[string]bool

	// Collision handling for oneOf/allOf renames
	Composition CompositionPolicy

	// Force additionalProperties to false on nodes with "type": "object"
	// even when they declare no properties
	ForceObjects bool
}

// Normalizer applies a Policy to schema documents. It holds no mutable
// state, so one Normalizer may be shared across goroutines.
type Normalizer struct {
	policy Policy
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// CompositionMerge appends the renamed subschemas to the existing
	// anyOf list, so no subschema is ever dropped
	CompositionMerge CompositionPolicy = iota

	// CompositionLastWins replaces the existing anyOf list
	CompositionLastWins

	// CompositionReject fails normalization on collision
	CompositionReject
)

// ErrComposition is returned when a oneOf or allOf rename collides with
// an existing anyOf and the policy is CompositionReject.
var ErrComposition = errors.New("anyOf collision")

// compositions are the keywords renamed to anyOf, in application order.
var compositions = []string{"oneOf", "allOf"}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a normalizer for the given policy.
func New(policy Policy) *Normalizer {
	return &Normalizer{policy: policy}
}

// DefaultPolicy returns the policy matching the OpenAI function-calling
// schema dialect: the default denied set, merged compositions, and
// additionalProperties forced on all object-typed nodes.
func DefaultPolicy() Policy {
	return Policy{
		Denied:       DefaultDenied(),
		Composition:  CompositionMerge,
		ForceObjects: true,
	}
}

// DefaultDenied returns the validation keywords the OpenAI function
// calling API rejects. The returned map is a fresh copy and may be
// modified by the caller.
func DefaultDenied() map[string]bool {
	keywords := []string{
		"minLength", "maxLength", "pattern", "format",
		"minimum", "maximum", "multipleOf",
		"patternProperties", "unevaluatedProperties", "propertyNames",
		"minProperties", "maxProperties",
		"unevaluatedItems", "contains", "minContains", "maxContains",
		"minItems", "maxItems", "uniqueItems",
	}
	denied := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		denied[keyword] = true
	}
	return denied
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Normalize returns a normalized copy of a schema document. The input
// is never mutated and scalars pass through verbatim, so normalizing a
// root that is not an object or array is a no-op. The only error path
// is an anyOf collision under CompositionReject.
func (n *Normalizer) Normalize(v jsonvalue.Value) (jsonvalue.Value, error) {
	return n.normalize(v, "")
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (n *Normalizer) normalize(v jsonvalue.Value, path string) (jsonvalue.Value, error) {
	switch v.Kind() {
	case jsonvalue.KindArray:
		return n.normalizeArray(v, path)
	case jsonvalue.KindObject:
		return n.normalizeObject(v, path)
	}
	return v, nil
}

func (n *Normalizer) normalizeArray(v jsonvalue.Value, path string) (jsonvalue.Value, error) {
	elems := make([]jsonvalue.Value, 0, v.Len())
	for i, elem := range v.Elems() {
		elem, err := n.normalize(elem, fmt.Sprintf("%s/%d", path, i))
		if err != nil {
			return jsonvalue.Value{}, err
		}
		elems = append(elems, elem)
	}
	return jsonvalue.Array(elems...), nil
}

func (n *Normalizer) normalizeObject(v jsonvalue.Value, path string) (jsonvalue.Value, error) {
	// Rebuild the mapping bottom-up in key order, dropping denied
	// keywords at this level
	out := jsonvalue.NewObject()
	for _, pair := range v.Pairs() {
		if n.policy.Denied[pair.Key] {
			continue
		}
		value, err := n.normalize(pair.Value, path+"/"+pair.Key)
		if err != nil {
			return jsonvalue.Value{}, err
		}
		out.Set(pair.Key, value)
	}

	// Rename oneOf and allOf to anyOf
	for _, keyword := range compositions {
		value, exists := out.Get(keyword)
		if !exists {
			continue
		}
		out.Delete(keyword)
		if existing, exists := out.Get("anyOf"); exists {
			switch n.policy.Composition {
			case CompositionMerge:
				out.Set("anyOf", mergeSubschemas(existing, value))
			case CompositionLastWins:
				out.Set("anyOf", value)
			case CompositionReject:
				return jsonvalue.Value{}, fmt.Errorf("%w: %s at %s", ErrComposition, keyword, pointer(path))
			}
		} else {
			out.Set("anyOf", value)
		}
	}

	// A node declaring properties is an object schema: close it and
	// require every property
	if properties, exists := out.Get("properties"); exists && properties.Kind() == jsonvalue.KindObject {
		out.Set("additionalProperties", jsonvalue.Bool(false))
		required := make([]jsonvalue.Value, 0, properties.Len())
		for _, key := range properties.Keys() {
			required = append(required, jsonvalue.String(key))
		}
		out.Set("required", jsonvalue.Array(required...))
	} else if n.policy.ForceObjects && isObjectTyped(out) {
		out.Set("additionalProperties", jsonvalue.Bool(false))
	}

	return out, nil
}

// isObjectTyped returns true when the node carries "type": "object".
func isObjectTyped(v jsonvalue.Value) bool {
	typ, exists := v.Get("type")
	return exists && typ.Kind() == jsonvalue.KindString && typ.StringValue() == "object"
}

// mergeSubschemas concatenates two subschema lists. A scalar or object
// operand is treated as a single-element list.
func mergeSubschemas(a, b jsonvalue.Value) jsonvalue.Value {
	return jsonvalue.Array(append(toSubschemas(a), toSubschemas(b)...)...)
}

func toSubschemas(v jsonvalue.Value) []jsonvalue.Value {
	if v.Kind() == jsonvalue.KindArray {
		return v.Elems()
	}
	return []jsonvalue.Value{v}
}

// pointer renders a traversal path as a JSON pointer, with "/" for the root.
func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

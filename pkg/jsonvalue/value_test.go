package jsonvalue_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mutablelogic/go-toolschema/pkg/jsonvalue"
	"github.com/stretchr/testify/assert"
)

func TestDecodeKeyOrder(t *testing.T) {
	assert := assert.New(t)

	value, err := jsonvalue.Decode([]byte(`{"b":1,"a":2,"c":3}`))
	assert.NoError(err)
	assert.Equal(jsonvalue.KindObject, value.Kind())
	assert.Equal([]string{"b", "a", "c"}, value.Keys())

	// Round trip preserves the order
	assert.Equal(`{"b":1,"a":2,"c":3}`, value.String())
}

func TestDecodeNumberLiteral(t *testing.T) {
	assert := assert.New(t)

	// The literal must survive a round trip unchanged
	value, err := jsonvalue.Decode([]byte(`{"a":1.50,"b":1e3,"c":-0}`))
	assert.NoError(err)
	assert.Equal(`{"a":1.50,"b":1e3,"c":-0}`, value.String())
}

func TestDecodeDuplicateKeys(t *testing.T) {
	assert := assert.New(t)

	// Last value wins, first position kept
	value, err := jsonvalue.Decode([]byte(`{"a":1,"b":2,"a":3}`))
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, value.Keys())

	a, exists := value.Get("a")
	assert.True(exists)
	assert.Equal(json.Number("3"), a.NumberValue())
}

func TestDecodeScalars(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]jsonvalue.Kind{
		`null`:    jsonvalue.KindNull,
		`true`:    jsonvalue.KindBool,
		`1.5`:     jsonvalue.KindNumber,
		`"hello"`: jsonvalue.KindString,
		`[]`:      jsonvalue.KindArray,
		`{}`:      jsonvalue.KindObject,
	}
	for in, kind := range tests {
		value, err := jsonvalue.Decode([]byte(in))
		assert.NoError(err, in)
		assert.Equal(kind, value.Kind(), in)
		assert.Equal(in, value.String(), in)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, in := range []string{``, `{`, `{"a":}`, `{} {}`, `[1,]`} {
		if _, err := jsonvalue.Decode([]byte(in)); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	assert := assert.New(t)

	deep := strings.Repeat("[", jsonvalue.MaxDepth+1) + strings.Repeat("]", jsonvalue.MaxDepth+1)
	_, err := jsonvalue.Decode([]byte(deep))
	assert.Error(err)

	// Nesting within the limit decodes
	ok := strings.Repeat("[", 100) + strings.Repeat("]", 100)
	_, err = jsonvalue.Decode([]byte(ok))
	assert.NoError(err)
}

func TestMarshalEscaping(t *testing.T) {
	assert := assert.New(t)

	value := jsonvalue.ObjectOf(
		jsonvalue.Pair{Key: `a"b`, Value: jsonvalue.String("x\ny")},
	)
	data, err := value.MarshalJSON()
	assert.NoError(err)

	// Decode with the standard library to verify validity
	var decoded map[string]string
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal("x\ny", decoded[`a"b`])
}

func TestSetPreservesPosition(t *testing.T) {
	assert := assert.New(t)

	value := jsonvalue.ObjectOf(
		jsonvalue.Pair{Key: "a", Value: jsonvalue.Int(1)},
		jsonvalue.Pair{Key: "b", Value: jsonvalue.Int(2)},
	)
	value.Set("a", jsonvalue.Int(9))
	assert.Equal([]string{"a", "b"}, value.Keys())
	assert.Equal(`{"a":9,"b":2}`, value.String())

	value.Set("c", jsonvalue.Int(3))
	assert.Equal([]string{"a", "b", "c"}, value.Keys())
}

func TestCloneIndependence(t *testing.T) {
	assert := assert.New(t)

	original, err := jsonvalue.Decode([]byte(`{"a":{"b":[1,2]}}`))
	assert.NoError(err)

	clone := original.Clone()
	clone.Set("c", jsonvalue.Bool(true))
	inner, _ := clone.Get("a")
	inner.Set("d", jsonvalue.Null())

	assert.Equal(`{"a":{"b":[1,2]}}`, original.String())
	assert.Equal(`{"a":{"b":[1,2],"d":null},"c":true}`, clone.String())
}

func TestEqual(t *testing.T) {
	assert := assert.New(t)

	a, _ := jsonvalue.Decode([]byte(`{"a":1,"b":[true,null]}`))
	b, _ := jsonvalue.Decode([]byte(`{"a":1,"b":[true,null]}`))
	assert.True(jsonvalue.Equal(a, b))

	// Key order is significant
	c, _ := jsonvalue.Decode([]byte(`{"b":[true,null],"a":1}`))
	assert.False(jsonvalue.Equal(a, c))

	assert.False(jsonvalue.Equal(jsonvalue.Int(1), jsonvalue.String("1")))
	assert.True(jsonvalue.Equal(jsonvalue.Null(), jsonvalue.Null()))
}

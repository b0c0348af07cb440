package der

import (
	"errors"
	"reflect"
)

// Marshal returns the DER encoding of v.
func Marshal(v any) ([]byte, error) {
	return MarshalWithOptions(v, Options{})
}

// MarshalWithOptions returns the DER encoding of v, treating opt as though
// it had been given as v's own struct-tag overrides. It is the programmatic
// equivalent of tagging the top-level value itself, which a struct tag
// cannot do.
func MarshalWithOptions(v any, opt Options) ([]byte, error) {
	e := NewEncoder()
	if _, err := e.encodeField(reflect.ValueOf(v), opt); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// errTrailingData is returned by Unmarshal when data contains more than one
// top-level element.
var errTrailingData = errors.New("der: data contains more than one top-level element")

// Unmarshal parses the DER-encoded data and stores the result in the value
// pointed to by val. val must be a non-nil pointer. Unmarshal requires data
// to contain exactly one top-level element; use a Decoder directly to parse
// a stream of several.
func Unmarshal(data []byte, val any) error {
	return UnmarshalWithOptions(data, val, Options{})
}

// UnmarshalWithOptions works like Unmarshal but treats opt as though it had
// been given as val's own struct-tag overrides.
func UnmarshalWithOptions(data []byte, val any, opt Options) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &SyntaxError{Kind: UnexpectedElement, Err: errInvalidTarget}
	}
	d := NewDecoder(data)
	h, content, err := d.Next()
	if err != nil {
		return err
	}
	if err := decodeField(h.Tag, h.Constructed, content, rv.Elem(), opt); err != nil {
		return err
	}
	if !d.Eof() {
		return errTrailingData
	}
	return nil
}

// isZeroValue reports whether v holds its type's zero value, the test
// OMITZERO and NULLABLE use to decide whether to omit or substitute NULL for
// a field on encode.
func isZeroValue(v reflect.Value) bool {
	return v.IsZero()
}

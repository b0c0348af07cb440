package der

import "reflect"

// RawValue captures a decoded element verbatim: its tag, constructed bit,
// and raw content octets, with no type-directed interpretation. A struct
// field of type RawValue matches any element, the way decoding into an
// interface{} would in a less strictly-typed codec, making it the
// CHOICE-like "whatever comes next" escape hatch (e.g. X.509
// Extension.ExtnValue). Decoding always produces this shape regardless of
// struct-tag overrides; encoding re-emits exactly the captured tag and
// content.
type RawValue struct {
	Tag         Tag
	Constructed bool
	Content     []byte
}

var rawValueType = reflect.TypeFor[RawValue]()

// Opaque captures only an element's content octets under a caller-chosen
// tag, for the common case where the schema knows which tag to expect but
// not how to interpret its content — spec.md §9's recommendation that the
// core expose only Opaque(tag) for client-layer string/blob discrimination.
// Unlike RawValue, Opaque's Tag field is meaningful on encode: it is always
// emitted as the element's tag, primitive, regardless of what was captured
// on decode.
type Opaque struct {
	Tag     Tag
	Content []byte
}

var opaqueType = reflect.TypeFor[Opaque]()

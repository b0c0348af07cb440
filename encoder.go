package der

import "reflect"

// Marshaler is implemented by types that encode themselves to the content
// octets of a single DER element, naming their own intrinsic tag and
// primitive/constructed form.
type Marshaler interface {
	MarshalDER() (tag Tag, constructed bool, content []byte, err error)
}

var marshalerType = reflect.TypeFor[Marshaler]()

// Encoder builds a DER encoding into a single growable byte buffer. Each
// constructed scope (SEQUENCE, SET, EXPLICIT wrapper) is built into its own
// temporary buffer and then wrapped with its own tag and length once its
// full content length is known, rather than patching a length prefix in
// place after the fact.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Bytes returns the bytes written to e so far. The returned slice aliases
// e's internal buffer; callers that continue to use e must copy it first.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written to e so far.
func (e *Encoder) Len() int { return len(e.buf) }

// element appends a complete element — header followed by content — to e.
func (e *Encoder) element(tag Tag, constructed bool, content []byte) {
	e.buf = appendHeader(e.buf, Header{Tag: tag, Constructed: constructed, Length: len(content)})
	e.buf = append(e.buf, content...)
}

// Any encodes val and appends the result to e. val is typically a struct,
// slice, or one of the types in this package with special handling (Opaque,
// RawValue, *big.Int, BitString, ObjectIdentifier, ...).
func (e *Encoder) Any(val any) error {
	_, err := e.encodeField(reflect.ValueOf(val), Options{})
	return err
}

// encodeField encodes v under opt, handling OMITZERO/NULLABLE/tag overrides
// before delegating the intrinsic encoding to encodeIntrinsic. wrote
// reports whether anything was appended to e — false only when OmitZero
// suppressed a zero value, or a nil pointer was skipped under OmitZero or
// Optional.
func (e *Encoder) encodeField(v reflect.Value, opt Options) (wrote bool, err error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			if opt.OmitZero || opt.Optional {
				return false, nil
			}
			if opt.Nullable {
				e.element(Tag{Class: ClassUniversal, Number: TagNull}, false, nil)
				return true, nil
			}
			v = reflect.Zero(v.Type().Elem())
			break
		}
		v = v.Elem()
	}

	if opt.OmitZero && isZeroValue(v) {
		return false, nil
	}
	if opt.Nullable && isZeroValue(v) {
		e.element(Tag{Class: ClassUniversal, Number: TagNull}, false, nil)
		return true, nil
	}

	tag, constructed, content, err := e.encodeIntrinsic(v, opt)
	if err != nil {
		return false, err
	}

	if opt.HasTag {
		if opt.Explicit {
			var inner []byte
			inner = appendHeader(inner, Header{Tag: tag, Constructed: constructed, Length: len(content)})
			inner = append(inner, content...)
			e.element(opt.Tag, true, inner)
			return true, nil
		}
		tag = opt.Tag
	}
	e.element(tag, constructed, content)
	return true, nil
}

// encodeIntrinsic encodes v's content octets and reports its intrinsic tag
// and constructed bit, dispatching first on hooks and well-known types, then
// falling back to v's reflect.Kind.
func (e *Encoder) encodeIntrinsic(v reflect.Value, opt Options) (Tag, bool, []byte, error) {
	if v.CanInterface() {
		if m, ok := v.Interface().(Marshaler); ok {
			tag, constructed, content, err := m.MarshalDER()
			return tag, constructed, content, err
		}
	}
	if v.CanAddr() {
		if m, ok := v.Addr().Interface().(Marshaler); ok {
			return m.MarshalDER()
		}
	}

	switch v.Type() {
	case rawValueType:
		rv := v.Interface().(RawValue)
		return rv.Tag, rv.Constructed, rv.Content, nil
	case opaqueType:
		op := v.Interface().(Opaque)
		return op.Tag, false, op.Content, nil
	case bitStringType:
		content, err := encodeBitString(v)
		return universalTag(TagBitString), false, content, err
	case bigIntType:
		content, err := encodeBigInt(v)
		return universalTag(TagInteger), false, content, err
	case objectIdentifierType:
		content, err := encodeObjectIdentifier(v)
		return universalTag(TagOID), false, content, err
	case relativeOIDType:
		content, err := encodeRelativeOID(v)
		return universalTag(TagRelativeOID), false, content, err
	case nullValueType:
		return universalTag(TagNull), false, nil, nil
	case utcTimeType:
		content, err := encodeUTCTime(v)
		return universalTag(TagUTCTime), false, content, err
	case generalizedTimeType:
		content, err := encodeGeneralizedTime(v)
		return universalTag(TagGeneralizedTime), false, content, err
	}

	switch v.Kind() {
	case reflect.Bool:
		return universalTag(TagBoolean), false, encodeBool(v), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if isEnumeratedType(v.Type()) {
			content, err := encodeEnumerated(v)
			return enumTag(v.Type()), false, content, err
		}
		return universalTag(TagInteger), false, encodeNativeInt(v), nil
	case reflect.String:
		return stringTag(v.Type()), false, encodeString(v, opt), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return universalTag(TagOctetString), false, encodeOctetStringBytes(v), nil
		}
		return e.encodeSequenceOfTag(v, opt)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return universalTag(TagOctetString), false, encodeOctetStringArray(v), nil
		}
		return e.encodeSequenceOfTag(v, opt)
	case reflect.Struct:
		content, err := e.encodeStructContent(v)
		return universalTag(TagSequence), true, content, err
	case reflect.Interface:
		return e.encodeInterfaceTag(v, opt)
	}
	return Tag{}, false, nil, &MarshalError{Type: v.Type().String(), Err: errKindError("unsupported Go type")}
}

func (e *Encoder) encodeSequenceOfTag(v reflect.Value, opt Options) (Tag, bool, []byte, error) {
	content, err := encodeSequenceOf(v, opt.Set)
	tag := universalTag(TagSequence)
	if opt.Set {
		tag = universalTag(TagSet)
	}
	return tag, true, content, err
}

// universalTag builds a UNIVERSAL-class Tag for number, the common case for
// every built-in ASN.1 type this package implements natively.
func universalTag(number uint32) Tag {
	return Tag{Class: ClassUniversal, Number: number}
}

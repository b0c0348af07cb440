package der

import (
	"iter"
	"reflect"

	"go.codec.dev/der/internal/fields"
)

// Unmarshaler is implemented by types that decode themselves from the
// content octets of a single DER element. tag and constructed describe the
// element's header exactly as decoded; content is a genuine sub-slice of the
// buffer originally passed to Unmarshal, never a copy.
type Unmarshaler interface {
	UnmarshalDER(tag Tag, constructed bool, content []byte) error
}

var unmarshalerType = reflect.TypeFor[Unmarshaler]()

// Decoder decodes a sequence of DER elements from a single contiguous byte
// slice. A Decoder never allocates to track its position, and every slice it
// hands back through Element/Next/Elements is a sub-slice of the buffer
// passed to NewDecoder — decoded values borrow from the input rather than
// copying it.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder returns a Decoder reading from data, starting at offset 0.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Eof reports whether the Decoder has no more bytes to decode.
func (d *Decoder) Eof() bool { return d.pos >= len(d.data) }

// Pos returns the Decoder's current offset into its buffer.
func (d *Decoder) Pos() int { return d.pos }

// Seek repositions the Decoder's cursor to an absolute offset into its
// buffer, as previously returned by Pos. It does not validate that pos lies
// on an element boundary.
func (d *Decoder) Seek(pos int) { d.pos = pos }

// Element decodes the header of the element at the Decoder's current
// position without consuming it. It returns the Header, the element's
// content octets, and the total number of bytes (header plus content) the
// element occupies — the amount Next would advance the cursor by.
func (d *Decoder) Element() (h Header, content []byte, total int, err error) {
	hdr, n, serr := decodeHeader(d.data[d.pos:])
	if serr != nil {
		serr.Offset = d.pos
		return Header{}, nil, 0, serr
	}
	start := d.pos + n
	end := start + hdr.Length
	return hdr, d.data[start:end], n + hdr.Length, nil
}

// Next decodes the element at the current position and advances past it.
func (d *Decoder) Next() (Header, []byte, error) {
	h, content, total, err := d.Element()
	if err != nil {
		return Header{}, nil, err
	}
	d.pos += total
	return h, content, nil
}

// View returns a new Decoder scoped to content, for recursing into a
// constructed element's members. It shares the underlying array with
// content; no copy is made.
func View(content []byte) *Decoder {
	return &Decoder{data: content}
}

// Element pairs a decoded Header with its content octets, used by Elements.
type Element struct {
	Header
	Content []byte
}

// Elements lazily iterates the elements remaining in d, yielding one pair
// per iteration without collecting them into a slice first. It is meant for
// callers decoding a SEQUENCE OF/SET OF who want to avoid the allocation a
// []T destination would otherwise require. Iteration stops, after yielding
// the error once, at the first malformed element.
func (d *Decoder) Elements() iter.Seq2[Element, error] {
	return func(yield func(Element, error) bool) {
		for !d.Eof() {
			h, content, err := d.Next()
			if err != nil {
				yield(Element{}, err)
				return
			}
			if !yield(Element{h, content}, nil) {
				return
			}
		}
	}
}

// errInvalidTarget is wrapped by the error Any/Unmarshal return when val is
// not a non-nil pointer.
var errInvalidTarget = errKindError("der: Unmarshal target must be a non-nil pointer")

// Any decodes the next element from d into val, which must be a non-nil
// pointer. It is the primary decode entry point used by Unmarshal and by
// schema hooks implementing Unmarshaler that want to recurse.
func (d *Decoder) Any(val any) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &SyntaxError{Kind: UnexpectedElement, Err: errInvalidTarget}
	}
	h, content, err := d.Next()
	if err != nil {
		return err
	}
	return decodeField(h.Tag, h.Constructed, content, rv.Elem(), Options{})
}

// decodeField decodes content (with header tag/constructed already known)
// into v, honoring opt's tag override, EXPLICIT wrapping, and NULLABLE
// substitution. This is the single recursive entry point used both for
// top-level decode and for SEQUENCE members.
func decodeField(tag Tag, constructed bool, content []byte, v reflect.Value, opt Options) error {
	if opt.Nullable && tag == (Tag{Class: ClassUniversal, Number: TagNull}) {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	if opt.HasTag && opt.Explicit {
		if !constructed {
			return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("EXPLICIT element must be constructed")}
		}
		inner := View(content)
		ih, icontent, err := inner.Next()
		if err != nil {
			return err
		}
		if !inner.Eof() {
			return &SyntaxError{Kind: UnexpectedElement, Tag: ih.Tag, Err: errKindError("EXPLICIT wrapper contains more than one element")}
		}
		return decodeValue(ih.Tag, ih.Constructed, icontent, v)
	}
	return decodeValue(tag, constructed, content, v)
}

// decodeValue dispatches to a concrete codec purely by v's Go type, trusting
// that the caller has already confirmed tag is an acceptable match (or that
// no such check applies, as for the top-level Any call).
func decodeValue(tag Tag, constructed bool, content []byte, v reflect.Value) error {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			if !v.CanSet() {
				return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("cannot allocate into unaddressable pointer")}
			}
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}

	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalDER(tag, constructed, content)
		}
	}

	switch v.Type() {
	case rawValueType:
		v.Set(reflect.ValueOf(RawValue{Tag: tag, Constructed: constructed, Content: append([]byte(nil), content...)}))
		return nil
	case opaqueType:
		v.Set(reflect.ValueOf(Opaque{Tag: tag, Content: append([]byte(nil), content...)}))
		return nil
	case bitStringType:
		return decodeBitString(v, tag, content)
	case bigIntType:
		return decodeBigInt(v, tag, content)
	case objectIdentifierType:
		return decodeObjectIdentifier(v, tag, content)
	case relativeOIDType:
		return decodeRelativeOID(v, tag, content)
	case nullValueType:
		return decodeNullValue(v, tag, constructed, content)
	case utcTimeType:
		return decodeUTCTime(v, tag, content)
	case generalizedTimeType:
		return decodeGeneralizedTime(v, tag, content)
	}

	switch v.Kind() {
	case reflect.Bool:
		return decodeBool(v, tag, content)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if isEnumeratedType(v.Type()) {
			return decodeEnumerated(v, tag, content)
		}
		return decodeNativeInt(v, tag, content)
	case reflect.String:
		return decodeString(v, tag, content)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return decodeOctetStringBytes(v, tag, content)
		}
		return decodeSequenceOf(v, tag, constructed, content)
	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return decodeOctetStringArray(v, tag, content)
		}
		return decodeSequenceOf(v, tag, constructed, content)
	case reflect.Struct:
		return decodeStruct(v, tag, constructed, content)
	case reflect.Interface:
		return decodeInterface(v, tag, constructed, content)
	}
	return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("unsupported Go type: " + v.Type().String())}
}

// fieldOptions re-derives Options from a struct field's parsed `der` tag,
// used by decodeStruct and encodeStructContent via the fields package.
func fieldOptions(p fields.Params) Options { return fromParams(p) }

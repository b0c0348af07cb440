package der

import (
	"bytes"
	"reflect"
	"sort"

	"go.codec.dev/der/internal/fields"
)

// decodeStruct decodes content, the content octets of a constructed
// element, into v's fields in declaration order (Rec. ITU-T X.690, §8.9 —
// SEQUENCE). Each field's expected tag is computed before the matching
// element is consumed: on a mismatch, an OPTIONAL or OMITZERO field is left
// unmodified and decoding moves on to the next field without
// advancing past the unmatched element; any other field reports
// UnexpectedElement. An embedded Extensible marker, if present, must be the
// last field and causes every remaining element to be skipped rather than
// rejected.
func decodeStruct(v reflect.Value, tag Tag, constructed bool, content []byte) error {
	if !constructed {
		return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("SEQUENCE must be constructed")}
	}
	d := View(content)
	for fv, params := range fields.Fields(v) {
		if fields.IsExtensible(fv.Type()) {
			if err := skipRemaining(d); err != nil {
				return err
			}
			continue
		}
		opt := fieldOptions(params)
		if d.Eof() {
			if opt.Optional || opt.OmitZero {
				continue
			}
			return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("missing required SEQUENCE member")}
		}
		h, elContent, total, err := d.Element()
		if err != nil {
			return err
		}
		expected, wildcard := fieldExpectedTag(fv.Type(), opt)
		if !wildcard && h.Tag != expected && !(opt.Nullable && h.Tag == universalTag(TagNull)) {
			if opt.Optional || opt.OmitZero {
				continue
			}
			return &SyntaxError{Kind: UnexpectedElement, Tag: h.Tag, Err: errKindError("expected " + expected.String())}
		}
		d.Seek(d.Pos() + total)
		if err := decodeField(h.Tag, h.Constructed, elContent, fv, opt); err != nil {
			return err
		}
	}
	return skipExtraOrFail(d, tag)
}

// skipRemaining advances d past every remaining element without decoding it,
// used for an Extensible-marked struct's trailing unknown members.
func skipRemaining(d *Decoder) error {
	for !d.Eof() {
		if _, _, err := d.Next(); err != nil {
			return err
		}
	}
	return nil
}

// skipExtraOrFail reports an error if d has unconsumed bytes remaining after
// every declared field has been matched — a SEQUENCE with more members than
// its Go type declares, and no Extensible marker to tolerate them.
func skipExtraOrFail(d *Decoder, tag Tag) error {
	if d.Eof() {
		return nil
	}
	h, _, err := d.Next()
	if err != nil {
		return err
	}
	return &SyntaxError{Kind: NonCanonical, Tag: h.Tag, Err: errKindError("more SEQUENCE members than the target struct declares")}
}

// encodeStructContent encodes v's fields in declaration order into a single
// content buffer, the body of a constructed SEQUENCE element.
func (e *Encoder) encodeStructContent(v reflect.Value) ([]byte, error) {
	var content []byte
	for fv, params := range fields.Fields(v) {
		if fields.IsExtensible(fv.Type()) {
			continue
		}
		opt := fieldOptions(params)
		sub := NewEncoder()
		if _, err := sub.encodeField(fv, opt); err != nil {
			return nil, err
		}
		content = append(content, sub.Bytes()...)
	}
	return content, nil
}

// fieldExpectedTag reports the tag a struct field is expected to carry on
// the wire, for the tag-peek in decodeStruct: opt.Tag if the field has a tag
// override, otherwise t's intrinsic tag. wildcard is true for field types
// with no fixed intrinsic tag (RawValue, Opaque, any hook type, interface
// fields) — decodeStruct accepts whatever tag is present for those.
func fieldExpectedTag(t reflect.Type, opt Options) (tag Tag, wildcard bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if opt.HasTag {
		return opt.Tag, false
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return Tag{}, true
	}
	switch t {
	case rawValueType, opaqueType:
		return Tag{}, true
	case bitStringType:
		return universalTag(TagBitString), false
	case bigIntType:
		return universalTag(TagInteger), false
	case objectIdentifierType:
		return universalTag(TagOID), false
	case relativeOIDType:
		return universalTag(TagRelativeOID), false
	case nullValueType:
		return universalTag(TagNull), false
	case utcTimeType:
		return universalTag(TagUTCTime), false
	case generalizedTimeType:
		return universalTag(TagGeneralizedTime), false
	}
	switch t.Kind() {
	case reflect.Bool:
		return universalTag(TagBoolean), false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if isEnumeratedType(t) {
			return enumTag(t), false
		}
		return universalTag(TagInteger), false
	case reflect.String:
		return stringTag(t), false
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return universalTag(TagOctetString), false
		}
		if opt.Set {
			return universalTag(TagSet), false
		}
		return universalTag(TagSequence), false
	case reflect.Struct:
		return universalTag(TagSequence), false
	}
	return Tag{}, true
}

// decodeSequenceOf decodes content, the content octets of a constructed
// SEQUENCE OF/SET OF element, into v, a slice or array. Each member is
// decoded using whatever tag it actually carries on the wire — the same way
// decodeValue trusts its caller for any other value — rather than requiring
// it to match elemType's intrinsic tag, matching the teacher's
// sequenceDecoder.
func decodeSequenceOf(v reflect.Value, tag Tag, constructed bool, content []byte) error {
	if !constructed {
		return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("SEQUENCE OF/SET OF must be constructed")}
	}
	d := View(content)
	elemType := v.Type().Elem()
	isArray := v.Kind() == reflect.Array

	var slice reflect.Value
	if !isArray {
		slice = reflect.MakeSlice(v.Type(), 0, 0)
	}

	i := 0
	for !d.Eof() {
		h, elContent, err := d.Next()
		if err != nil {
			return err
		}
		if isArray {
			if i >= v.Len() {
				return &SyntaxError{Kind: UnexpectedElement, Tag: h.Tag, Err: errKindError("too many members for fixed-size array")}
			}
			if err := decodeField(h.Tag, h.Constructed, elContent, v.Index(i), Options{}); err != nil {
				return err
			}
		} else {
			ev := reflect.New(elemType).Elem()
			if err := decodeField(h.Tag, h.Constructed, elContent, ev, Options{}); err != nil {
				return err
			}
			slice = reflect.Append(slice, ev)
		}
		i++
	}
	if isArray {
		if i != v.Len() {
			return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("not enough members for fixed-size array")}
		}
		return nil
	}
	v.Set(slice)
	return nil
}

// encodeSequenceOf encodes v, a slice or array, as the content octets of a
// constructed SEQUENCE OF (asSet false) or SET OF (asSet true) element. SET
// OF members are sorted by their own complete encoded bytes, the canonical
// ordering DER requires (Rec. ITU-T X.690, §11.6).
func encodeSequenceOf(v reflect.Value, asSet bool) ([]byte, error) {
	n := v.Len()
	members := make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		sub := NewEncoder()
		if _, err := sub.encodeField(v.Index(i), Options{}); err != nil {
			return nil, err
		}
		members = append(members, sub.Bytes())
	}
	if asSet {
		sort.Slice(members, func(i, j int) bool {
			return bytes.Compare(members[i], members[j]) < 0
		})
	}
	var content []byte
	for _, m := range members {
		content = append(content, m...)
	}
	return content, nil
}

// decodeInterface decodes an element of unknown shape into v, an
// interface-kind reflect.Value, by capturing it as a RawValue — the same
// CHOICE-like escape hatch a struct field declared as der.RawValue uses
// explicitly.
func decodeInterface(v reflect.Value, tag Tag, constructed bool, content []byte) error {
	v.Set(reflect.ValueOf(RawValue{Tag: tag, Constructed: constructed, Content: append([]byte(nil), content...)}))
	return nil
}

// encodeInterfaceTag encodes v, an interface-kind reflect.Value, by
// unwrapping its dynamic value and encoding that.
func (e *Encoder) encodeInterfaceTag(v reflect.Value, opt Options) (Tag, bool, []byte, error) {
	if v.IsNil() {
		return Tag{}, false, nil, &MarshalError{Type: v.Type().String(), Err: errKindError("cannot encode a nil interface value")}
	}
	return e.encodeIntrinsic(v.Elem(), opt)
}

package der

import "reflect"

// encodeOctetStringBytes encodes v, a []byte-kind reflect.Value, as the
// content octets of a DER OCTET STRING. There is no canonicalization: the
// content is the byte slice verbatim (Rec. ITU-T X.690, §8.7).
func encodeOctetStringBytes(v reflect.Value) []byte {
	return v.Bytes()
}

// encodeOctetStringArray encodes v, a fixed-size byte array, the same way as
// encodeOctetStringBytes.
func encodeOctetStringArray(v reflect.Value) []byte {
	out := make([]byte, v.Len())
	reflect.Copy(reflect.ValueOf(out), v)
	return out
}

// decodeOctetStringBytes decodes content into v, a []byte-kind
// reflect.Value, reusing v's backing array if it is already non-nil and has
// enough capacity, exactly as the teacher's bytesCodec does for pre-allocated
// slices.
func decodeOctetStringBytes(v reflect.Value, tag Tag, content []byte) error {
	if v.IsNil() || v.Cap() < len(content) {
		v.Set(reflect.MakeSlice(v.Type(), len(content), len(content)))
	} else {
		v.SetLen(len(content))
	}
	reflect.Copy(v, reflect.ValueOf(content))
	return nil
}

// decodeOctetStringArray decodes content into v, a fixed-size byte array,
// failing if the lengths do not match exactly.
func decodeOctetStringArray(v reflect.Value, tag Tag, content []byte) error {
	if len(content) != v.Len() {
		return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("OCTET STRING length does not match target array size")}
	}
	reflect.Copy(v, reflect.ValueOf(content))
	return nil
}

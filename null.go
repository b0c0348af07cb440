package der

import "reflect"

// Null represents the ASN.1 NULL type (Rec. ITU-T X.680, §24): a
// zero-length primitive value used, for instance, as the AlgorithmIdentifier
// parameters field when an algorithm takes none. A struct field of type Null
// is always present in the encoding with zero content octets; to make NULL
// optional, use NULLABLE on a different field type instead (Options.Nullable).
type Null struct{}

var nullValueType = reflect.TypeFor[Null]()

// decodeNullValue decodes a DER NULL into v. The element must be primitive
// and carry no content octets; v is always set to the zero Null.
func decodeNullValue(v reflect.Value, tag Tag, constructed bool, content []byte) error {
	if constructed || len(content) > 0 {
		return &SyntaxError{Kind: UnexpectedElement, Tag: tag, Err: errKindError("NULL must be primitive with no content octets")}
	}
	v.Set(reflect.Zero(v.Type()))
	return nil
}

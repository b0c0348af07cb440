package der

import "reflect"

// encodeBool encodes v, a bool-kind reflect.Value, as the one-byte content
// octets of a DER BOOLEAN: 0xFF for true, 0x00 for false (Rec. ITU-T X.690,
// §8.2.2 — DER, unlike BER, permits no other encoding of true).
func encodeBool(v reflect.Value) []byte {
	if v.Bool() {
		return []byte{0xff}
	}
	return []byte{0x00}
}

// decodeBool decodes a DER BOOLEAN's content octets into v. Any length other
// than one byte, or a byte other than 0x00/0xFF, is rejected: BER tolerates
// any non-zero byte for true, but DER requires exactly 0xFF.
func decodeBool(v reflect.Value, tag Tag, content []byte) error {
	if len(content) != 1 {
		return &SyntaxError{Kind: InvalidBool, Tag: tag, Err: errKindError("BOOLEAN must have exactly one content octet")}
	}
	switch content[0] {
	case 0x00:
		v.SetBool(false)
	case 0xff:
		v.SetBool(true)
	default:
		return &SyntaxError{Kind: InvalidBool, Tag: tag, Err: errKindError("BOOLEAN content octet must be 0x00 or 0xFF")}
	}
	return nil
}

package der

import (
	"math/big"
	"math/bits"
	"reflect"

	"golang.org/x/exp/constraints"
)

var bigIntType = reflect.TypeFor[big.Int]()

// marshalSignedInt encodes v as the minimal two's-complement content octets
// of a DER INTEGER. The reflect-driven path in encodeNativeInt calls it once
// per Go integer Kind.
func marshalSignedInt[T constraints.Signed](v T) []byte {
	return twosComplementBytes(int64(v))
}

// marshalUnsignedInt encodes an unsigned Go integer as a DER INTEGER,
// prepending a 0x00 guard byte when the value's top bit would otherwise make
// it look negative.
func marshalUnsignedInt[T constraints.Unsigned](v T) []byte {
	return unsignedIntBytes(uint64(v))
}

// twosComplementBytes returns the minimal big-endian two's-complement
// encoding of v: one byte for zero, and never a redundant leading 0x00 or
// 0xFF byte (Rec. ITU-T X.690, §8.3.2).
func twosComplementBytes(v int64) []byte {
	if v == 0 {
		return []byte{0}
	}
	u := uint64(v)
	var l int
	if v < 0 {
		l = 8 - bits.LeadingZeros64(^u)/8
		if ^u&(uint64(1)<<(uint(l)*8-1)) != 0 {
			l++ // top bit of the shortest run is clear; need a 0xFF sign byte
		}
	} else {
		l = 8 - bits.LeadingZeros64(u)/8
		if u&(uint64(1)<<(uint(l)*8-1)) != 0 {
			l++ // top bit of the shortest run is set; need a 0x00 guard byte
		}
	}
	if l == 0 {
		l = 1
	}
	out := make([]byte, l)
	for i := 0; i < l; i++ {
		out[l-1-i] = byte(u >> (uint(i) * 8))
	}
	return out
}

// unsignedIntBytes encodes v as a positive DER INTEGER.
func unsignedIntBytes(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	l := 8 - bits.LeadingZeros64(v)/8
	if l == 0 {
		l = 1
	}
	guard := 0
	if v&(uint64(1)<<(uint(l)*8-1)) != 0 {
		guard = 1
	}
	out := make([]byte, guard+l)
	for i := 0; i < l; i++ {
		out[guard+l-1-i] = byte(v >> (uint(i) * 8))
	}
	return out
}

// encodeNativeInt encodes a reflect.Value of native integer Kind (not a
// registered ENUMERATED type) as a DER INTEGER's content octets.
func encodeNativeInt(v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.Int:
		return marshalSignedInt(int(v.Int()))
	case reflect.Int8:
		return marshalSignedInt(int8(v.Int()))
	case reflect.Int16:
		return marshalSignedInt(int16(v.Int()))
	case reflect.Int32:
		return marshalSignedInt(int32(v.Int()))
	case reflect.Int64:
		return marshalSignedInt(v.Int())
	case reflect.Uint:
		return marshalUnsignedInt(uint(v.Uint()))
	case reflect.Uint8:
		return marshalUnsignedInt(uint8(v.Uint()))
	case reflect.Uint16:
		return marshalUnsignedInt(uint16(v.Uint()))
	case reflect.Uint32:
		return marshalUnsignedInt(uint32(v.Uint()))
	case reflect.Uint64:
		return marshalUnsignedInt(v.Uint())
	}
	panic("der: encodeNativeInt called with non-integer Kind")
}

// decodeNativeInt decodes content into v, a native (not ENUMERATED) Go
// integer Kind, rejecting a non-minimal encoding and a value that overflows
// v's width.
func decodeNativeInt(v reflect.Value, tag Tag, content []byte) error {
	// An unsigned 64-bit value with its top bit set is nine content octets:
	// a 0x00 guard byte followed by the eight value bytes.
	if (v.Kind() == reflect.Uint || v.Kind() == reflect.Uint64) && len(content) == 9 &&
		content[0] == 0x00 && content[1]&0x80 != 0 {
		var u uint64
		for _, b := range content[1:] {
			u = u<<8 | uint64(b)
		}
		v.SetUint(u)
		return nil
	}
	value, negative, err := parseTwosComplement(tag, content)
	if err != nil {
		return err
	}
	signed := true
	size := 64
	switch v.Kind() {
	case reflect.Int, reflect.Int64:
		size = 64
	case reflect.Int8:
		size = 8
	case reflect.Int16:
		size = 16
	case reflect.Int32:
		size = 32
	case reflect.Uint, reflect.Uint64:
		signed, size = false, 64
	case reflect.Uint8:
		signed, size = false, 8
	case reflect.Uint16:
		signed, size = false, 16
	case reflect.Uint32:
		signed, size = false, 32
	}
	if !signed && negative {
		return &SyntaxError{Kind: Overflow, Tag: tag, Err: errKindError("INTEGER is negative, target type is unsigned")}
	}
	if signed {
		// parseTwosComplement already sign-extended value to a full 64-bit
		// pattern, so converting straight to int64 is correct.
		iv := int64(value)
		if size < 64 {
			shift := uint(64 - size)
			if (iv<<shift)>>shift != iv {
				return &SyntaxError{Kind: Overflow, Tag: tag, Err: errKindError("INTEGER does not fit in target type")}
			}
		}
		v.SetInt(iv)
		return nil
	}
	if size < 64 && value>>uint(size) != 0 {
		return &SyntaxError{Kind: Overflow, Tag: tag, Err: errKindError("INTEGER does not fit in target type")}
	}
	v.SetUint(value)
	return nil
}

// parseTwosComplement validates and decodes the content octets of a DER
// INTEGER into a 64-bit two's-complement bit pattern. It rejects encodings
// longer than 8 bytes (Overflow) and non-minimal encodings (NonCanonical),
// mirroring the canonical-INTEGER check used by every codec in this file.
func parseTwosComplement(tag Tag, content []byte) (value uint64, negative bool, err *SyntaxError) {
	if len(content) == 0 {
		return 0, false, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errKindError("INTEGER has zero-length content")}
	}
	if len(content) > 1 {
		b0, b1 := content[0], content[1]
		if (b0 == 0x00 && b1&0x80 == 0) || (b0 == 0xff && b1&0x80 != 0) {
			return 0, false, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errKindError("INTEGER is not minimally encoded")}
		}
	}
	if len(content) > 8 {
		return 0, false, &SyntaxError{Kind: Overflow, Tag: tag, Err: errKindError("INTEGER is too large for a 64-bit result")}
	}
	negative = content[0]&0x80 != 0
	var u uint64
	if negative {
		u = ^uint64(0)
	}
	for _, b := range content {
		u = u<<8 | uint64(b)
	}
	return u, negative, nil
}

var bigOne = big.NewInt(1)

// encodeBigInt encodes an arbitrary-precision *math/big.Int as a DER
// INTEGER's content octets, with no limit on magnitude.
func encodeBigInt(v reflect.Value) ([]byte, error) {
	n := v.Interface().(big.Int)
	switch n.Sign() {
	case 0:
		return []byte{0}, nil
	case -1:
		nMinus1 := new(big.Int).Neg(&n)
		nMinus1.Sub(nMinus1, bigOne)
		bs := nMinus1.Bytes()
		for i := range bs {
			bs[i] ^= 0xff
		}
		if len(bs) == 0 || bs[0]&0x80 == 0 {
			return append([]byte{0xff}, bs...), nil
		}
		return bs, nil
	default:
		bs := n.Bytes()
		if bs[0]&0x80 != 0 {
			return append([]byte{0x00}, bs...), nil
		}
		return bs, nil
	}
}

// decodeBigInt decodes a DER INTEGER of any size into v, a *math/big.Int.
func decodeBigInt(v reflect.Value, tag Tag, content []byte) error {
	if len(content) == 0 {
		return &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errKindError("INTEGER has zero-length content")}
	}
	if len(content) > 1 {
		if (content[0] == 0x00 && content[1]&0x80 == 0x00) || (content[0] == 0xff && content[1]&0x80 == 0x80) {
			return &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errKindError("INTEGER is not minimally encoded")}
		}
	}
	bs := append([]byte(nil), content...)
	n := new(big.Int)
	if bs[0]&0x80 == 0x80 {
		for i := range bs {
			bs[i] = ^bs[i]
		}
		n.SetBytes(bs)
		n.Add(n, bigOne)
		n.Neg(n)
	} else {
		n.SetBytes(bs)
	}
	v.Set(reflect.ValueOf(*n))
	return nil
}

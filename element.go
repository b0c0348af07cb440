package der

import "math"

// Header is the decoded identifier and length octets of a DER element.
// Length is always the definite, non-negative content length in bytes: DER
// forbids the indefinite-length form BER/CER allow.
type Header struct {
	Tag         Tag
	Constructed bool
	Length      int
}

var (
	errIndefiniteLength = errKindError("indefinite length is not permitted in DER")
	errLengthLeadingZero = errKindError("long-form length has a leading zero octet")
	errLengthNotMinimal  = errKindError("long-form length used where the short form would fit")
	errLengthTooLarge    = errKindError("length exceeds the number of bytes in the buffer")
)

// headerLen reports how many bytes appendHeader writes for h, without
// writing anything.
func headerLen(h Header) int {
	n := identifierLen(h.Tag) + 1
	if h.Length >= 0x80 {
		n += lengthOctetCount(h.Length)
	}
	return n
}

// lengthOctetCount returns the number of content-length bytes the long form
// needs to represent length, not including the leading 0x80|count octet.
func lengthOctetCount(length int) int {
	n := 1
	for v := length >> 8; v > 0; v >>= 8 {
		n++
	}
	return n
}

// appendHeader appends the DER encoding of h's identifier and length octets
// to dst.
func appendHeader(dst []byte, h Header) []byte {
	dst = appendIdentifier(dst, h.Tag, h.Constructed)
	return appendLength(dst, h.Length)
}

// appendLength appends the DER length octets for length to dst. DER always
// uses the minimal form: short form below 128, long form with the minimum
// number of content-length bytes above that.
func appendLength(dst []byte, length int) []byte {
	if length < 0x80 {
		return append(dst, byte(length))
	}
	n := lengthOctetCount(length)
	dst = append(dst, 0x80|byte(n))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(length>>uint(i*8)))
	}
	return dst
}

// decodeHeader parses the identifier and length octets at the start of data
// and returns the Header together with the number of bytes the header
// occupies. The returned Length is validated against len(data): a header
// claiming more content than the buffer has left is rejected here rather
// than deferred to whatever tries to slice the content.
func decodeHeader(data []byte) (Header, int, *SyntaxError) {
	tag, constructed, n, err := decodeIdentifier(data)
	if err != nil {
		return Header{}, 0, err
	}
	rest := data[n:]
	if len(rest) == 0 {
		return Header{}, 0, &SyntaxError{Kind: EndOfStream, Tag: tag}
	}

	b := rest[0]
	if b&0x80 == 0 {
		length := int(b & 0x7f)
		if length > len(rest)-1 {
			return Header{}, 0, &SyntaxError{Kind: InvalidLength, Tag: tag, Err: errLengthTooLarge}
		}
		return Header{Tag: tag, Constructed: constructed, Length: length}, n + 1, nil
	}
	if b == 0x80 {
		return Header{}, 0, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errIndefiniteLength}
	}

	numBytes := int(b & 0x7f)
	if numBytes > len(rest)-1 {
		return Header{}, 0, &SyntaxError{Kind: EndOfStream, Tag: tag}
	}
	if rest[1] == 0 {
		return Header{}, 0, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errLengthLeadingZero}
	}
	if numBytes > 8 {
		return Header{}, 0, &SyntaxError{Kind: InvalidLength, Tag: tag, Err: errLengthTooLarge}
	}

	length := 0
	for i := 0; i < numBytes; i++ {
		if length > math.MaxInt>>8 {
			return Header{}, 0, &SyntaxError{Kind: InvalidLength, Tag: tag, Err: errLengthTooLarge}
		}
		length = length<<8 | int(rest[1+i])
	}
	if length < 0x80 {
		return Header{}, 0, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errLengthNotMinimal}
	}
	if length > len(rest)-1-numBytes {
		return Header{}, 0, &SyntaxError{Kind: InvalidLength, Tag: tag, Err: errLengthTooLarge}
	}
	return Header{Tag: tag, Constructed: constructed, Length: length}, n + 1 + numBytes, nil
}

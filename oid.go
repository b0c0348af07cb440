package der

import (
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"go.codec.dev/der/internal/vlq"
)

// ObjectIdentifier represents an ASN.1 OBJECT IDENTIFIER (Rec. ITU-T X.680,
// §32): a hierarchical sequence of non-negative integer arcs. The semantics
// of a given OID's arcs are defined externally, per the authority that
// registered it; this package only round-trips the arc values.
type ObjectIdentifier []uint64

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return slices.Equal(oid, other)
}

// String returns the dot-separated notation of oid, e.g. "1.2.840.113549".
func (oid ObjectIdentifier) String() string {
	return joinArcs(oid)
}

// RelativeOID represents an ASN.1 RELATIVE-OID (Rec. ITU-T X.680, §32.3): a
// suffix of an ObjectIdentifier, meaningful only relative to some implicit
// or externally-communicated prefix.
type RelativeOID []uint64

// Equal reports whether oid and other represent the same identifier.
func (oid RelativeOID) Equal(other RelativeOID) bool {
	return slices.Equal(oid, other)
}

// String returns the dot-separated notation of oid.
func (oid RelativeOID) String() string { return joinArcs(oid) }

func joinArcs(arcs []uint64) string {
	var b strings.Builder
	for i, v := range arcs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	return b.String()
}

var (
	objectIdentifierType = reflect.TypeFor[ObjectIdentifier]()
	relativeOIDType      = reflect.TypeFor[RelativeOID]()
)

// encodeObjectIdentifier encodes v, an ObjectIdentifier-valued
// reflect.Value, as the content octets of a DER OBJECT IDENTIFIER. The
// first two arcs are combined into a single base-128 value `40*arc0 + arc1`
// (Rec. ITU-T X.690, §8.19.4); every remaining arc is its own base-128 run.
func encodeObjectIdentifier(v reflect.Value) ([]byte, error) {
	return encodeOIDContent(v.Interface().(ObjectIdentifier))
}

// encodeOIDContent builds the content octets for oid, independent of any
// reflect.Value — used directly by encodeObjectIdentifier and by the
// OID-table path of encodeEnumerated.
func encodeOIDContent(oid ObjectIdentifier) ([]byte, error) {
	if len(oid) < 2 || oid[0] > 2 || (oid[0] < 2 && oid[1] > 39) {
		return nil, &MarshalError{Type: "der.ObjectIdentifier", Err: errKindError("invalid ObjectIdentifier: first two arcs out of range")}
	}
	content := vlq.Append(nil, oid[0]*40+oid[1])
	for _, arc := range oid[2:] {
		content = vlq.Append(content, arc)
	}
	return content, nil
}

// decodeObjectIdentifier decodes the content octets of a DER OBJECT
// IDENTIFIER into v.
func decodeObjectIdentifier(v reflect.Value, tag Tag, content []byte) error {
	oid, err := decodeOIDContent(tag, content)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(oid))
	return nil
}

// decodeOIDContent parses the content octets of a DER OBJECT IDENTIFIER,
// independent of any reflect.Value — used directly by decodeObjectIdentifier
// and by the OID-table path of decodeEnumerated.
func decodeOIDContent(tag Tag, content []byte) (ObjectIdentifier, error) {
	if len(content) == 0 {
		return nil, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: errKindError("OBJECT IDENTIFIER has zero-length content")}
	}
	first, n, err := decodeOIDArc(tag, content)
	if err != nil {
		return nil, err
	}
	arcs, err := decodeOIDArcs(tag, content[n:])
	if err != nil {
		return nil, err
	}
	oid := make(ObjectIdentifier, 2+len(arcs))
	if first < 80 {
		oid[0] = first / 40
		oid[1] = first % 40
	} else {
		oid[0] = 2
		oid[1] = first - 80
	}
	copy(oid[2:], arcs)
	return oid, nil
}

// encodeRelativeOID encodes v, a RelativeOID-valued reflect.Value, as the
// content octets of a DER RELATIVE-OID: every arc is its own base-128 run,
// with no special handling of the first two arcs.
func encodeRelativeOID(v reflect.Value) ([]byte, error) {
	oid := v.Interface().(RelativeOID)
	var content []byte
	for _, arc := range oid {
		content = vlq.Append(content, arc)
	}
	return content, nil
}

// decodeRelativeOID decodes the content octets of a DER RELATIVE-OID into v.
// An empty RELATIVE-OID (zero arcs) is valid, unlike OBJECT IDENTIFIER.
func decodeRelativeOID(v reflect.Value, tag Tag, content []byte) error {
	arcs, err := decodeOIDArcs(tag, content)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(RelativeOID(arcs)))
	return nil
}

// decodeOIDArc decodes a single base-128 arc value from the start of
// content, classifying vlq's error taxonomy into this package's Kind values.
func decodeOIDArc(tag Tag, content []byte) (uint64, int, error) {
	arc, n, verr := vlq.ReadMinimalBytes[uint64](content)
	if verr != nil {
		switch verr {
		case vlq.ErrNotMinimal:
			return 0, 0, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: verr}
		case vlq.ErrOverflow:
			return 0, 0, &SyntaxError{Kind: Overflow, Tag: tag, Err: verr}
		case io.EOF, io.ErrUnexpectedEOF:
			return 0, 0, &SyntaxError{Kind: EndOfStream, Tag: tag, Err: verr}
		default:
			return 0, 0, &SyntaxError{Kind: NonCanonical, Tag: tag, Err: verr}
		}
	}
	return arc, n, nil
}

// decodeOIDArcs decodes every arc in content, in order, returning them once
// content is fully consumed.
func decodeOIDArcs(tag Tag, content []byte) ([]uint64, error) {
	arcs := make([]uint64, 0, len(content))
	for len(content) > 0 {
		arc, n, err := decodeOIDArc(tag, content)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, arc)
		content = content[n:]
	}
	return arcs, nil
}

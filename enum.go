package der

import (
	"reflect"
	"sync"
)

// Enumerated exists mainly for documentation purposes and as the default
// type for an enum value with no OID table: any defined Go type whose
// underlying type is an integer Kind is itself recognized as an enum type
// (see isEnumeratedType) and is encoded as INTEGER unless an OID table is
// registered for it — the standard predeclared int/int8/.../uint64 types
// are always plain INTEGER.
type Enumerated int

// oidTable maps an enum type's representation (as int64) to the OBJECT
// IDENTIFIER that stands in for it on the wire, and back.
type oidTable struct {
	toOID   map[int64]ObjectIdentifier
	fromOID map[string]int64
}

var (
	oidTablesMu sync.RWMutex
	oidTables   = map[reflect.Type]*oidTable{}
)

// RegisterOIDs associates every value of enum type T with an
// ObjectIdentifier, making T encode and decode as OBJECT IDENTIFIER instead
// of INTEGER (spec §4.3's "enum with OID table" dispatch shape).
// It panics if called twice for the same T.
func RegisterOIDs[T ~int](table map[T]ObjectIdentifier) {
	t := reflect.TypeFor[T]()
	entry := &oidTable{
		toOID:   make(map[int64]ObjectIdentifier, len(table)),
		fromOID: make(map[string]int64, len(table)),
	}
	for k, v := range table {
		entry.toOID[int64(k)] = v
		entry.fromOID[v.String()] = int64(k)
	}

	oidTablesMu.Lock()
	defer oidTablesMu.Unlock()
	if _, dup := oidTables[t]; dup {
		panic("der: RegisterOIDs called twice for type " + t.String())
	}
	oidTables[t] = entry
}

func lookupOIDTable(t reflect.Type) (*oidTable, bool) {
	oidTablesMu.RLock()
	defer oidTablesMu.RUnlock()
	entry, ok := oidTables[t]
	return entry, ok
}

// isEnumeratedType reports whether t should be treated as an enum type
// rather than a plain integer: t's Kind must be an integer Kind, and t must
// be a defined type distinct from the predeclared type of that Kind (so plain
// int, uint32, etc. are plain integers, while "type Color int" is an enum
// type). An enum type goes through encodeEnumerated/decodeEnumerated, whose
// wire tag enumTag chooses.
func isEnumeratedType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return false
	}
	return t.PkgPath() != "" || t.Name() != t.Kind().String()
}

// enumTag reports the intrinsic Tag a value of enum type t is encoded
// under: OBJECT IDENTIFIER if t has a registered OID table, otherwise
// INTEGER — an enum with no OID table is just an INTEGER of the enum's
// representation type, not a distinct ENUMERATED tag.
func enumTag(t reflect.Type) Tag {
	if _, ok := lookupOIDTable(t); ok {
		return universalTag(TagOID)
	}
	return universalTag(TagInteger)
}

// encodeEnumerated encodes v, a reflect.Value of enum type, as either an
// OBJECT IDENTIFIER (if v's type has a registered OID table) or a plain
// INTEGER representation of its value.
func encodeEnumerated(v reflect.Value) ([]byte, error) {
	t := v.Type()
	if entry, ok := lookupOIDTable(t); ok {
		oid, ok := entry.toOID[v.Int()]
		if !ok {
			return nil, &MarshalError{Type: t.String(), Err: errKindError("no registered OID for this enum value")}
		}
		return encodeOIDContent(oid)
	}
	return encodeNativeInt(v), nil
}

// decodeEnumerated decodes content into v, a reflect.Value of enum type,
// following the same OID-table-or-plain-INTEGER branch as encodeEnumerated.
func decodeEnumerated(v reflect.Value, tag Tag, content []byte) error {
	t := v.Type()
	if entry, ok := lookupOIDTable(t); ok {
		oid, err := decodeOIDContent(tag, content)
		if err != nil {
			return err
		}
		val, ok := entry.fromOID[oid.String()]
		if !ok {
			return &SyntaxError{Kind: UnknownOid, Tag: tag, Err: errKindError("no enum value registered for OID " + oid.String())}
		}
		v.SetInt(val)
		return nil
	}
	return decodeNativeInt(v, tag, content)
}

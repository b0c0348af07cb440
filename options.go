package der

import "go.codec.dev/der/internal/fields"

// Extensible, embedded anonymously in a struct, marks that struct as
// tolerating additional trailing SEQUENCE members beyond the ones its own
// fields declare (Rec. ITU-T X.680, §52 extension marker). If embedded, it
// must be the last non-ignored field.
type Extensible struct{}

// Options overrides the default encoding/decoding behavior for a single
// value. It is the programmatic equivalent of a `der:"..."` struct tag,
// usable when calling Marshal/Unmarshal directly on a value rather than
// through a struct field. The zero Options requests no overrides.
type Options struct {
	// Tag, if HasTag is true, replaces (IMPLICIT) or wraps (EXPLICIT, see
	// Explicit) the value's intrinsic tag.
	Tag    Tag
	HasTag bool

	Explicit bool // the override Tag wraps the intrinsic encoding instead of replacing it
	Optional bool // absence during decode is not an error; the field is left unmodified
	OmitZero bool // the zero value is omitted during encode
	Nullable bool // a NULL element may stand in for this value

	// Set, meaningful for slice/array values, requests SET OF encoding:
	// members are sorted by their encoded bytes (Rec. ITU-T X.690, §11.6)
	// instead of kept in encounter order as SEQUENCE OF does.
	Set bool

	// Identifier holds the value of an "identifier:" struct tag part, such as
	// "utf8", "printable", "ia5" or "visible". No encode or decode path reads
	// it: string and Opaque values are handled purely by their Go type.
	Identifier string
}

// fromParams converts a parsed struct tag into Options.
func fromParams(p fields.Params) Options {
	o := Options{
		Explicit:   p.Explicit,
		Optional:   p.Optional,
		OmitZero:   p.OmitZero,
		Nullable:   p.Nullable,
		Set:        p.Set,
		Identifier: p.Identifier,
	}
	if p.HasTag {
		o.HasTag = true
		o.Tag = Tag{Class: Class(p.Class), Number: p.Number}
	}
	return o
}

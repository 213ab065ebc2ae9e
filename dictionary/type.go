package dictionary

import "github.com/antaris-inc/go-xtce/encoding"

// TypeKind tags which of the eight XTCE type variants a Type
// represents.
type TypeKind int

const (
	KindInteger TypeKind = iota
	KindFloat
	KindEnumerated
	KindBoolean
	KindString
	KindBinary
	KindArray
	KindAbsoluteTime
)

// Enumeration is one value/label pair of an EnumerationList, carried
// as associated metadata the codec never consults — mirroring
// _examples/original_source/xtce/xtceschema.py's EnumerationList,
// which the Python original keeps around purely for host display even
// though encode/decode never reads it.
type Enumeration struct {
	Value int64
	Label string
}

// Type is a named XTCE parameter or argument type: a tagged variant
// binding one data encoding, plus the handful of fields only some
// variants use (Enumerations for KindEnumerated, ElementType/
// ElementTypeRef for KindArray).
type Type struct {
	Name     string
	Kind     TypeKind
	Encoding encoding.DataEncoding

	// Enumerations is populated only for KindEnumerated.
	Enumerations []Enumeration

	// ElementTypeRef names this array type's element type; ElementType
	// is bound to the resolved *Type eagerly by SpaceSystem.Finalize,
	// per spec.md §4.2's "resolved lazily and cached on first use" —
	// realized here as an eager construction-time pass instead (see
	// SPEC_FULL.md §4 / Design Notes "prefer an eager resolution pass").
	// Populated only for KindArray.
	ElementTypeRef string
	ElementType    *Type
}

// Label returns the configured enumeration label for value, if any.
func (t *Type) Label(value int64) (string, bool) {
	for _, e := range t.Enumerations {
		if e.Value == value {
			return e.Label, true
		}
	}

	return "", false
}

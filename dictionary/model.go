package dictionary

// Parameter is a named field bound to a parameter type. Parameters
// appear in telemetry containers and, via ParameterRefEntry, anywhere
// a restriction or include condition names a field.
type Parameter struct {
	Name    string
	TypeRef string
	Type    *Type
}

// Argument is a named field bound to an argument type, scoped to the
// meta-command (and its ancestors) that declares it — arguments never
// appear in a Space-System-wide registry, matching spec.md §3's
// "arguments appear only in commands".
type Argument struct {
	Name    string
	TypeRef string
	Type    *Type
}

// Comparison is one equality test: `str(record[ParameterRef]) ==
// Value`. The core supports only Operator == "==", Instance == 0, and
// UseCalibratedValue == true (spec.md §3); any other combination is a
// construction-time error surfaced by SpaceSystem.Finalize.
type Comparison struct {
	ParameterRef       string
	Operator           string
	Value              string
	Instance           int
	UseCalibratedValue bool
}

// Entry is a discriminated union: an element of a container's wire
// layout. Implemented as a closed interface (spec.md §9: "represent
// entries as a tagged union with four variants") rather than a single
// struct with an unused-field-per-variant shape, matching how
// _examples/danderson-dbus models its wire-value variants as distinct
// Go types behind a shared interface.
type Entry interface {
	isEntry()
}

// ParameterRefEntry references a Parameter by name, optionally gated
// by an include condition.
type ParameterRefEntry struct {
	ParameterRef     string
	IncludeCondition []Comparison
}

func (ParameterRefEntry) isEntry() {}

// ArgumentRefEntry references an Argument by name (command containers
// only).
type ArgumentRefEntry struct {
	ArgumentRef string
}

func (ArgumentRefEntry) isEntry() {}

// ContainerRefEntry inlines another container's flattened plan,
// carrying an include condition that the planner concatenates with
// the conditions of every inlined sub-entry.
type ContainerRefEntry struct {
	ContainerRef     string
	IncludeCondition []Comparison
}

func (ContainerRefEntry) isEntry() {}

// FixedValueEntry is a constant bit pattern: hex-encoded BinaryValue,
// truncated on its right-aligned low SizeInBits bits (bits.FixedValueFromHex).
type FixedValueEntry struct {
	BinaryValue string
	SizeInBits  int
}

func (FixedValueEntry) isEntry() {}

// BaseLink names the container or meta-command this one inherits
// from, plus the restriction criteria attached to that specific link.
type BaseLink struct {
	Ref                 string
	RestrictionCriteria []Comparison
}

// Container is either a SequenceContainer (IsCommand == false) or a
// CommandContainer (IsCommand == true); both share the same shape per
// spec.md §3.
type Container struct {
	Name      string
	Abstract  bool
	IsCommand bool
	EntryList []Entry
	Base      *BaseLink
}

// MetaCommand owns exactly one CommandContainer and an optional
// argument list, and may itself inherit from another meta-command via
// BaseMetaCommand (walked to build the argument-type index, per
// spec.md §4.4 step 3).
type MetaCommand struct {
	Name             string
	Abstract         bool
	CommandContainer *Container
	ArgumentList     []*Argument
	BaseMetaCommand  *BaseLink
}

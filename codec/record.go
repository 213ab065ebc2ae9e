package codec

import (
	"fmt"

	"github.com/antaris-inc/go-xtce/dictionary"
)

// Message pairs a resolved message type name (a container or
// meta-command name; Decode returns an abstract name only when that
// type consumed every bit and WithRequireConcrete was not given) with
// its field-name-keyed entries, per spec.md §3's Record.
type Message struct {
	MessageType string
	Entries     map[string]any
}

// recordContext adapts a Message's Entries map to encoding.Context, so
// data encodings can resolve dynamic sizes/indices against whatever of
// the record is already known — the full input record on encode, the
// growing partial record on decode.
type recordContext map[string]any

func (r recordContext) Field(name string) (any, bool) {
	v, ok := r[name]

	return v, ok
}

// conditionsSatisfied evaluates an include condition or restriction
// list against record by stringifying both sides, per spec.md §4.4 /
// §9 ("Conditions compare str(record[param]) against a string value
// from XML... an integer 2 compares equal to the XML string '2'").
func conditionsSatisfied(record map[string]any, conds []dictionary.Comparison) bool {
	for _, c := range conds {
		v, ok := record[c.ParameterRef]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", v) != c.Value {
			return false
		}
	}

	return true
}

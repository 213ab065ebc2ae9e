package encoding

import (
	"fmt"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/xerr"
)

// BooleanEncoding wraps an IntegerEncoding (conventionally 1 bit,
// unsigned) and interprets zero/non-zero as false/true. Encode also
// accepts the configured string labels in place of a bare bool;
// Decode always returns a bool, never a label.
type BooleanEncoding struct {
	Wrapped   *IntegerEncoding
	ZeroLabel string
	OneLabel  string
}

var _ DataEncoding = (*BooleanEncoding)(nil)

// NewBooleanEncoding returns a BooleanEncoding with the default
// "True"/"False" labels over a 1-bit unsigned integer.
func NewBooleanEncoding() *BooleanEncoding {
	return &BooleanEncoding{
		Wrapped:   &IntegerEncoding{SizeInBits: 1, Signed: Unsigned},
		ZeroLabel: "False",
		OneLabel:  "True",
	}
}

func (e *BooleanEncoding) Size(ctx Context) (int, error) {
	return e.Wrapped.Size(ctx)
}

func (e *BooleanEncoding) Encode(value any, ctx Context) (*bits.String, error) {
	var raw int64

	switch v := value.(type) {
	case bool:
		if v {
			raw = 1
		}
	case string:
		switch v {
		case e.OneLabel:
			raw = 1
		case e.ZeroLabel:
			raw = 0
		default:
			return nil, fmt.Errorf("encoding: boolean label %q is neither %q nor %q: %w", v, e.OneLabel, e.ZeroLabel, xerr.ErrTypeMismatch)
		}
	default:
		n, ok := toInt64(value)
		if !ok {
			return nil, fmt.Errorf("encoding: cannot encode %T as a boolean: %w", value, xerr.ErrTypeMismatch)
		}
		if n != 0 {
			raw = 1
		}
	}

	return e.Wrapped.Encode(raw, ctx)
}

func (e *BooleanEncoding) Decode(b *bits.String, ctx Context) (any, error) {
	raw, err := e.Wrapped.Decode(b, ctx)
	if err != nil {
		return nil, err
	}

	n, _ := toInt64(raw)

	return n != 0, nil
}

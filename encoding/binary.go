package encoding

import (
	"fmt"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/xerr"
)

// BinaryEncoding is BinaryDataEncoding: an identity pass-through of a
// raw bit string, fixed-width or sized from an already-decoded field.
// Grounded on the teacher's raw byte-slice pass-through in
// _examples/arloliu-mebo/encoding/numeric_raw.go, generalized from a
// byte granularity to an arbitrary bit width.
type BinaryEncoding struct {
	Width SizeSpec
}

var _ DataEncoding = (*BinaryEncoding)(nil)

func (e *BinaryEncoding) Size(ctx Context) (int, error) {
	return e.Width.Resolve(ctx)
}

func (e *BinaryEncoding) Encode(value any, ctx Context) (*bits.String, error) {
	b, ok := value.(*bits.String)
	if !ok {
		return nil, fmt.Errorf("encoding: binary field requires a *bits.String value, got %T: %w", value, xerr.ErrTypeMismatch)
	}

	want, err := e.Size(ctx)
	if err != nil {
		return nil, err
	}

	if b.Len() != want {
		return nil, fmt.Errorf("encoding: binary value is %d bits, field requires %d: %w", b.Len(), want, xerr.ErrSizeMismatch)
	}

	return b, nil
}

func (e *BinaryEncoding) Decode(b *bits.String, _ Context) (any, error) {
	return b, nil
}

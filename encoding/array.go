package encoding

import (
	"fmt"
	"reflect"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/xerr"
)

// ArrayEncoding is ArrayDataEncoding: a repeated element encoding whose
// element count is the inclusive span [Start, End], each endpoint
// either fixed or read from an already-decoded field. Grounded on
// _examples/arloliu-mebo/columnar.go's fixed-stride repeated-value
// loop, generalized to a dynamically-sized element count and a
// sub-encoding resolved eagerly by the dictionary package.
type ArrayEncoding struct {
	Element DataEncoding
	Start   IndexSpec
	End     IndexSpec
}

var _ DataEncoding = (*ArrayEncoding)(nil)

func (e *ArrayEncoding) count(ctx Context) (int, error) {
	start, err := e.Start.Resolve(ctx)
	if err != nil {
		return 0, err
	}

	end, err := e.End.Resolve(ctx)
	if err != nil {
		return 0, err
	}

	n := end - start + 1
	if n < 0 {
		return 0, fmt.Errorf("encoding: array end index %d precedes start index %d", end, start)
	}

	return n, nil
}

// Size sums the element encoding's size across every element. The
// element encoding is assumed to have a uniform size across the
// array, which holds for every data encoding this package implements.
func (e *ArrayEncoding) Size(ctx Context) (int, error) {
	n, err := e.count(ctx)
	if err != nil {
		return 0, err
	}

	elemSize, err := e.Element.Size(ctx)
	if err != nil {
		return 0, err
	}

	return n * elemSize, nil
}

func (e *ArrayEncoding) Encode(value any, ctx Context) (*bits.String, error) {
	values, ok := toSlice(value)
	if !ok {
		return nil, fmt.Errorf("encoding: array field requires a slice value, got %T: %w", value, xerr.ErrTypeMismatch)
	}

	n, err := e.count(ctx)
	if err != nil {
		return nil, err
	}
	if len(values) != n {
		return nil, fmt.Errorf("encoding: array has %d elements, field requires %d: %w", len(values), n, xerr.ErrSizeMismatch)
	}

	parts := make([]*bits.String, len(values))
	for i, v := range values {
		part, err := e.Element.Encode(v, ctx)
		if err != nil {
			return nil, fmt.Errorf("encoding: array element %d: %w", i, err)
		}
		parts[i] = part
	}

	return bits.Concat(parts...), nil
}

func (e *ArrayEncoding) Decode(b *bits.String, ctx Context) (any, error) {
	n, err := e.count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]any, 0, n)
	offset := 0

	for i := 0; i < n; i++ {
		elemSize, err := e.Element.Size(ctx)
		if err != nil {
			return nil, fmt.Errorf("encoding: array element %d: %w", i, err)
		}

		chunk, err := b.Slice(offset, offset+elemSize)
		if err != nil {
			return nil, fmt.Errorf("encoding: array element %d: %w", i, err)
		}

		v, err := e.Element.Decode(chunk, ctx)
		if err != nil {
			return nil, fmt.Errorf("encoding: array element %d: %w", i, err)
		}

		out = append(out, v)
		offset += elemSize
	}

	return out, nil
}

func toSlice(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

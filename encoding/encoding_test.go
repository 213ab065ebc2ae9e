package encoding_test

// mapContext is a minimal Context backed by a plain map, used
// throughout this package's tests to stand in for a record under
// construction.
type mapContext map[string]any

func (c mapContext) Field(name string) (any, bool) {
	v, ok := c[name]

	return v, ok
}

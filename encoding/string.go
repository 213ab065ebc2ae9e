package encoding

import (
	"bytes"
	"fmt"

	"github.com/antaris-inc/go-xtce/bits"
	"github.com/antaris-inc/go-xtce/xerr"
)

// StringEncoding is StringDataEncoding: a charset-decoded run of bytes
// whose wire length is fixed, read from an already-decoded field, or
// capped at a maximum and recovered via a terminator sequence or
// trailing zero padding. Grounded on
// _examples/original_source/xtce/xtceschema.py's StringDataEncoding
// decode (termination-sequence search, then zero-strip fallback) and
// on the teacher's charset-width table in
// _examples/arloliu-mebo/encoding/numeric_raw.go generalized from
// numeric widths to string byte widths.
type StringEncoding struct {
	Charset Charset
	Width   SizeSpec
}

var _ DataEncoding = (*StringEncoding)(nil)

// Size returns the number of bits this string field occupies on the
// wire (always the full allotment for Variable sizing).
func (e *StringEncoding) Size(ctx Context) (int, error) {
	return e.Width.Resolve(ctx)
}

func (e *StringEncoding) Encode(value any, ctx Context) (*bits.String, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("encoding: string field requires a string value, got %T: %w", value, xerr.ErrTypeMismatch)
	}

	widthBits, err := e.Size(ctx)
	if err != nil {
		return nil, err
	}
	if widthBits%8 != 0 {
		return nil, fmt.Errorf("encoding: string field width %d is not a whole number of bytes", widthBits)
	}
	widthBytes := widthBits / 8

	payload := encodeCharset(e.Charset, s)

	var terminator []byte
	if e.Width.Kind == SizeVariable && e.Width.Terminator != "" {
		term, err := bits.FromHex(e.Width.Terminator)
		if err != nil {
			return nil, fmt.Errorf("encoding: string terminator: %w", err)
		}
		terminator = term.Bytes()
	}

	buf := make([]byte, widthBytes)

	switch {
	case len(payload) > widthBytes:
		copy(buf, payload[:widthBytes])

	case len(payload)+len(terminator) <= widthBytes:
		copy(buf, payload)
		copy(buf[len(payload):], terminator)

	default:
		copy(buf, payload)
	}

	return bits.FromBytes(buf, widthBits)
}

func (e *StringEncoding) Decode(b *bits.String, _ Context) (any, error) {
	raw := b.Bytes()

	if e.Width.Kind == SizeVariable && e.Width.Terminator != "" {
		term, err := bits.FromHex(e.Width.Terminator)
		if err != nil {
			return nil, fmt.Errorf("encoding: string terminator: %w", err)
		}
		termBytes := term.Bytes()

		if idx := bytes.Index(raw, termBytes); idx >= 0 {
			return decodeCharset(e.Charset, raw[:idx]), nil
		}

		// Terminator didn't fit on encode (the room left after the
		// payload was smaller than the terminator): fall back to
		// stripping trailing zero padding, the same recovery
		// Fixed-width strings use.
		return decodeCharset(e.Charset, bytes.TrimRight(raw, "\x00")), nil
	}

	trimmed := bytes.TrimRight(raw, "\x00")

	return decodeCharset(e.Charset, trimmed), nil
}

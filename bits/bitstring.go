// Package bits implements the MSB-first bit buffer that every data
// encoding in go-xtce reads and writes. It plays the role the teacher's
// endian.EndianEngine plays for byte-granular codecs, generalized down
// to single-bit granularity since XTCE field widths rarely land on a
// byte boundary (a 3-bit unsigned integer, a 58-bit message).
package bits

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// String is an immutable, fixed-length sequence of bits, indexed
// MSB-first: bit 0 is the first bit written/read on the wire. All
// construction and slicing helpers return a new String rather than
// mutating in place.
type String struct {
	set *bitset.BitSet
	len uint
}

// New returns a String of the given length with every bit zero.
func New(length int) *String {
	if length < 0 {
		length = 0
	}

	return &String{set: bitset.New(uint(length)), len: uint(length)}
}

// FromBytes builds a String from the first bitLen bits of b, MSB-first
// within each byte.
func FromBytes(b []byte, bitLen int) (*String, error) {
	if bitLen < 0 || bitLen > len(b)*8 {
		return nil, fmt.Errorf("bits: bit length %d exceeds byte slice capacity %d", bitLen, len(b)*8)
	}

	s := New(bitLen)
	for i := 0; i < bitLen; i++ {
		byteIdx := i / 8
		shift := 7 - (i % 8)
		if b[byteIdx]&(1<<uint(shift)) != 0 {
			s.set.Set(uint(i))
		}
	}

	return s, nil
}

// FromHex decodes a hex string (e.g. "0D0A") into a String covering
// every bit of the decoded bytes.
func FromHex(hexStr string) (*String, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, fmt.Errorf("bits: invalid hex %q: %w", hexStr, err)
	}

	return FromBytes(raw, len(raw)*8)
}

// FixedValueFromHex implements FixedValueEntry.value: the hex payload
// is decoded to bytes, and only the last sizeInBits bits are kept —
// the wire pattern is right-aligned within its enclosing bytes.
func FixedValueFromHex(hexStr string, sizeInBits int) (*String, error) {
	full, err := FromHex(hexStr)
	if err != nil {
		return nil, err
	}

	if sizeInBits < 0 || sizeInBits > full.Len() {
		return nil, fmt.Errorf("bits: sizeInBits %d exceeds hex payload of %d bits", sizeInBits, full.Len())
	}

	return full.Slice(full.Len()-sizeInBits, full.Len())
}

// FromUint packs value into width bits, MSB-first. Returns an error if
// value does not fit in width unsigned bits.
func FromUint(value uint64, width int) (*String, error) {
	if width <= 0 || width > 64 {
		return nil, fmt.Errorf("bits: integer width %d out of range (1-64)", width)
	}
	if width < 64 && value >= (uint64(1)<<uint(width)) {
		return nil, fmt.Errorf("bits: value %d overflows %d unsigned bits", value, width)
	}

	s := New(width)
	for i := 0; i < width; i++ {
		shift := uint(width - 1 - i)
		if (value>>shift)&1 == 1 {
			s.set.Set(uint(i))
		}
	}

	return s, nil
}

// FromInt packs value into width bits as two's complement, MSB-first.
func FromInt(value int64, width int) (*String, error) {
	if width <= 0 || width > 64 {
		return nil, fmt.Errorf("bits: integer width %d out of range (1-64)", width)
	}

	lo, hi := -(int64(1) << uint(width-1)), (int64(1)<<uint(width-1))-1
	if width == 64 {
		lo, hi = math.MinInt64, math.MaxInt64
	}
	if value < lo || value > hi {
		return nil, fmt.Errorf("bits: value %d overflows %d signed bits", value, width)
	}

	mask := uint64(1)<<uint(width) - 1
	if width == 64 {
		mask = ^uint64(0)
	}

	return FromUint(uint64(value)&mask, width)
}

// Len returns the number of bits in the String.
func (s *String) Len() int {
	if s == nil {
		return 0
	}

	return int(s.len)
}

// Slice returns the bits in [start, end), a new independent String.
func (s *String) Slice(start, end int) (*String, error) {
	if start < 0 || end > int(s.len) || start > end {
		return nil, fmt.Errorf("bits: invalid slice [%d:%d) of length %d", start, end, s.len)
	}

	n := end - start
	out := New(n)
	for i := 0; i < n; i++ {
		if s.set.Test(uint(start + i)) {
			out.set.Set(uint(i))
		}
	}

	return out, nil
}

// Concat concatenates parts in order into a single String.
func Concat(parts ...*String) *String {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}

	out := New(total)
	offset := 0
	for _, p := range parts {
		for i := 0; i < p.Len(); i++ {
			if p.set.Test(uint(i)) {
				out.set.Set(uint(offset + i))
			}
		}
		offset += p.Len()
	}

	return out
}

// Equal reports whether s and o have the same length and bit pattern.
func (s *String) Equal(o *String) bool {
	if s.Len() != o.Len() {
		return false
	}

	for i := uint(0); i < s.len; i++ {
		if s.set.Test(i) != o.set.Test(i) {
			return false
		}
	}

	return true
}

// Bytes packs the String MSB-first into bytes, zero-padding the final
// byte on the right when the length is not a multiple of 8.
func (s *String) Bytes() []byte {
	nbytes := (int(s.len) + 7) / 8
	out := make([]byte, nbytes)
	for i := uint(0); i < s.len; i++ {
		if s.set.Test(i) {
			out[i/8] |= 1 << uint(7-(i%8))
		}
	}

	return out
}

// ToHex renders the String as a hex string of its byte-padded form.
func (s *String) ToHex() string {
	return hex.EncodeToString(s.Bytes())
}

// ToUint interprets the String as an unsigned big-endian integer. The
// length must be between 1 and 64 bits.
func (s *String) ToUint() (uint64, error) {
	if s.len == 0 || s.len > 64 {
		return 0, fmt.Errorf("bits: cannot read %d bits as an integer (must be 1-64)", s.len)
	}

	var v uint64
	for i := uint(0); i < s.len; i++ {
		v <<= 1
		if s.set.Test(i) {
			v |= 1
		}
	}

	return v, nil
}

// ToInt interprets the String as a two's-complement big-endian integer.
func (s *String) ToInt() (int64, error) {
	u, err := s.ToUint()
	if err != nil {
		return 0, err
	}

	if s.len == 64 {
		return int64(u), nil
	}

	signBit := uint64(1) << (s.len - 1)
	if u&signBit != 0 {
		return int64(u) - int64(signBit<<1), nil
	}

	return int64(u), nil
}

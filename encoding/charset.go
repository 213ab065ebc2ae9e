package encoding

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Charset selects the byte encoding StringEncoding uses to translate
// between a Go string and its wire bytes.
type Charset int

const (
	UTF8 Charset = iota
	UTF16
	UTF16LE
	UTF16BE
	USASCII
	ISO88591
	Windows1252
)

// win1252HighTable holds the Windows-1252 mapping for byte values
// 0x80-0x9F, the range where it diverges from plain Latin-1, indexed
// by offset from 0x80 (index 0 == byte 0x80, index 0x1F == byte 0x9F).
// Unmapped slots are the Unicode replacement character.
var win1252HighTable = [32]rune{
	0x00: '€', 0x01: unicode.ReplacementChar, 0x02: '‚', 0x03: 'ƒ',
	0x04: '„', 0x05: '…', 0x06: '†', 0x07: '‡',
	0x08: 'ˆ', 0x09: '‰', 0x0A: 'Š', 0x0B: '‹',
	0x0C: 'Œ', 0x0D: unicode.ReplacementChar, 0x0E: 'Ž', 0x0F: unicode.ReplacementChar,
	0x10: unicode.ReplacementChar, 0x11: '‘', 0x12: '’', 0x13: '“',
	0x14: '”', 0x15: '•', 0x16: '–', 0x17: '—',
	0x18: '˜', 0x19: '™', 0x1A: 'š', 0x1B: '›',
	0x1C: 'œ', 0x1D: unicode.ReplacementChar, 0x1E: 'ž', 0x1F: 'Ÿ',
}

var win1252Reverse = buildWin1252Reverse()

func buildWin1252Reverse() map[rune]byte {
	m := make(map[rune]byte, 32)
	for i, r := range win1252HighTable {
		if r != unicode.ReplacementChar {
			m[r] = byte(0x80 + i)
		}
	}

	return m
}

// encodeCharset converts s to its wire byte representation under cs,
// replacing characters the charset cannot represent with '?'.
func encodeCharset(cs Charset, s string) []byte {
	switch cs {
	case UTF8:
		return []byte(s)

	case UTF16, UTF16BE, UTF16LE:
		units := utf16.Encode([]rune(s))
		out := make([]byte, 0, len(units)*2)
		for _, u := range units {
			if cs == UTF16LE {
				out = append(out, byte(u), byte(u>>8))
			} else {
				out = append(out, byte(u>>8), byte(u))
			}
		}

		return out

	case USASCII:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r > unicode.MaxASCII {
				out = append(out, '?')

				continue
			}
			out = append(out, byte(r))
		}

		return out

	case ISO88591:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r > 0xFF {
				out = append(out, '?')

				continue
			}
			out = append(out, byte(r))
		}

		return out

	case Windows1252:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			switch {
			case r < 0x80 || (r >= 0xA0 && r <= 0xFF):
				out = append(out, byte(r))
			default:
				if b, ok := win1252Reverse[r]; ok {
					out = append(out, b)
				} else {
					out = append(out, '?')
				}
			}
		}

		return out

	default:
		return []byte(s)
	}
}

// decodeCharset converts wire bytes b to a Go string under cs,
// substituting the Unicode replacement character for undecodable
// sequences.
func decodeCharset(cs Charset, b []byte) string {
	switch cs {
	case UTF8:
		if utf8.Valid(b) {
			return string(b)
		}

		return strings.ToValidUTF8(string(b), string(unicode.ReplacementChar))

	case UTF16, UTF16BE, UTF16LE:
		n := len(b) / 2
		units := make([]uint16, n)
		for i := 0; i < n; i++ {
			if cs == UTF16LE {
				units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
			} else {
				units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
			}
		}

		return string(utf16.Decode(units))

	case USASCII:
		runes := make([]rune, len(b))
		for i, c := range b {
			if c > unicode.MaxASCII {
				runes[i] = unicode.ReplacementChar
			} else {
				runes[i] = rune(c)
			}
		}

		return string(runes)

	case ISO88591:
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}

		return string(runes)

	case Windows1252:
		runes := make([]rune, len(b))
		for i, c := range b {
			if c >= 0x80 && c <= 0x9F {
				runes[i] = win1252HighTable[c-0x80]
			} else {
				runes[i] = rune(c)
			}
		}

		return string(runes)

	default:
		return string(b)
	}
}

// Package base32 implements the RFC 4648 base32 alphabet without padding.
//
// The decoder is deliberately lenient: case is folded, and any character
// outside the alphabet (whitespace included) is skipped rather than
// rejected. This accepts the grouped, mixed-case secrets users copy out of
// authenticator setup screens. Callers that need strict validation should
// check input against encoding/base32 before decoding.
package base32

import "strings"

// Alphabet is the RFC 4648 base32 alphabet. No padding character is used.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Encode returns the base32 encoding of src, uppercase and unpadded.
// The result has ceil(8*len(src)/5) characters. If the final group holds
// fewer than 5 bits it is zero-padded on the right into one last character.
func Encode(src []byte) string {
	var b strings.Builder
	b.Grow((len(src)*8 + 4) / 5)

	var buf uint // bit buffer, top `bits` bits pending
	var bits uint
	for _, c := range src {
		buf = buf<<8 | uint(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			b.WriteByte(Alphabet[(buf>>bits)&0x1f])
		}
	}
	if bits > 0 {
		b.WriteByte(Alphabet[(buf<<(5-bits))&0x1f])
	}
	return b.String()
}

// Decode returns the bytes encoded by s. Characters outside the alphabet
// are skipped silently, lowercase letters are folded to uppercase, and
// trailing bits that do not fill a whole byte are discarded. Decode never
// fails; unrecognizable input simply contributes no bytes.
func Decode(s string) []byte {
	out := make([]byte, 0, len(s)*5/8)

	var buf uint
	var bits uint
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		var v uint
		switch {
		case c >= 'A' && c <= 'Z':
			v = uint(c - 'A')
		case c >= '2' && c <= '7':
			v = uint(c-'2') + 26
		default:
			continue
		}
		buf = buf<<5 | v
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	return out
}

package parse

import (
	"github.com/gslf/xcdn-go/diag"
)

// b64Val maps an ASCII byte to its 6-bit base64 value, or -1 if the byte is
// not part of either the standard or URL-safe alphabet. '+' and '-' both map
// to 62; '/' and '_' both map to 63, so a single table accepts either
// alphabet without knowing in advance which one a literal used.
var b64Val = buildB64Table()

func buildB64Table() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i, c := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		t[c] = int8(i)
	}
	for i, c := range "abcdefghijklmnopqrstuvwxyz" {
		t[c] = int8(26 + i)
	}
	for i, c := range "0123456789" {
		t[c] = int8(52 + i)
	}
	t['+'] = 62
	t['-'] = 62
	t['/'] = 63
	t['_'] = 63
	return t
}

func isB64Char(c byte) bool {
	return b64Val[c] >= 0
}

// decodeBase64 decodes s leniently: padding ('='), spaces, '\n' and '\r' are
// skipped rather than validated for position, and either the standard or
// URL-safe alphabet is accepted, even mixed within a single literal. Any
// other byte makes the literal invalid.
func decodeBase64(s string, pos diag.Pos) ([]byte, error) {
	out := make([]byte, 0, len(s)*3/4+3)
	var accum uint32
	bits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '=' || c == ' ' || c == '\n' || c == '\r' {
			continue
		}
		if !isB64Char(c) {
			return nil, diag.Newf(diag.InvalidBase64, pos, "invalid base64: %s", s)
		}
		accum = (accum << 6) | uint32(b64Val[c])
		bits += 6
		if bits >= 8 {
			bits -= 8
			out = append(out, byte((accum>>uint(bits))&0xFF))
		}
	}
	return out, nil
}

// validateUUID checks for the canonical 8-4-4-4-12 hex-with-dashes shape.
// It does not check the version or variant nibbles.
func validateUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	for i, c := range []byte(s) {
		switch i {
		case 8, 13, 18, 23:
			if c != '-' {
				return false
			}
		default:
			if !isHexDigit(c) {
				return false
			}
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

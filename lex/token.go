package lex

import "github.com/gslf/xcdn-go/diag"

// Token is one lexical unit, carrying the span of its first byte and a
// payload specific to its Type.
type Token struct {
	Type TokenType
	Pos  diag.Pos

	// Str holds the literal text for Ident, String, TripleString, and the
	// typed-quoted kinds (DQuoted/BQuoted/UQuoted/TQuoted/RQuoted). For
	// String and the typed-quoted kinds it is the body with only '\"' and
	// '\\' reduced — all other escapes are preserved as the literal two- or
	// six-byte escape sequence. For TripleString it is the raw body, with no
	// escape processing at all.
	Str string

	IntVal   int64
	FloatVal float64
}

func (t Token) String() string {
	switch t.Type {
	case Ident, String, TripleString, DQuoted, BQuoted, UQuoted, TQuoted, RQuoted:
		return t.Str
	case Int:
		return t.Type.String()
	case Float:
		return t.Type.String()
	default:
		return t.Type.String()
	}
}

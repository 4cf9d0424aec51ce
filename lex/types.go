package lex

import "fmt"

// TokenType is the closed set of lexical categories the lexer produces.
type TokenType int

const (
	LBrace TokenType = iota
	RBrace
	LBracket
	RBracket
	LParen
	RParen
	Colon
	Comma
	Dollar
	Hash
	At
	True
	False
	Null
	Ident
	Int
	Float
	String
	TripleString
	DQuoted // d"..." decimal
	BQuoted // b"..." bytes
	UQuoted // u"..." uuid
	TQuoted // t"..." datetime
	RQuoted // r"..." duration
	EOF
)

var tokenNames = map[TokenType]string{
	LBrace:       "{",
	RBrace:       "}",
	LBracket:     "[",
	RBracket:     "]",
	LParen:       "(",
	RParen:       ")",
	Colon:        ":",
	Comma:        ",",
	Dollar:       "$",
	Hash:         "#",
	At:           "@",
	True:         "true",
	False:        "false",
	Null:         "null",
	Ident:        "identifier",
	Int:          "integer",
	Float:        "float",
	String:       "string",
	TripleString: `"""string"""`,
	DQuoted:      `d"..."`,
	BQuoted:      `b"..."`,
	UQuoted:      `u"..."`,
	TQuoted:      `t"..."`,
	RQuoted:      `r"..."`,
	EOF:          "EOF",
}

func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsTypedQuoted reports whether t is one of the typed-literal token kinds
// (d/b/u/t/r-prefixed quoted strings).
func (t TokenType) IsTypedQuoted() bool {
	switch t {
	case DQuoted, BQuoted, UQuoted, TQuoted, RQuoted:
		return true
	default:
		return false
	}
}

// IsIdent reports whether s matches the bare-identifier production
// ([A-Za-z_][A-Za-z0-9_-]*) and is not one of the reserved keywords. It is
// built on the same character-class helpers as the lexer's own identifier
// scanning, and the serializer uses it to decide whether an object key may
// be emitted unquoted.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	if !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	switch s {
	case "true", "false", "null":
		return false
	}
	return true
}

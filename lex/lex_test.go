package lex

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/gslf/xcdn-go/diag"
)

func TestLexInt64Bounds(t *testing.T) {
	max := strconv.FormatInt(math.MaxInt64, 10)
	min := strconv.FormatInt(math.MinInt64, 10)

	tok, err := New([]byte(max)).Next()
	if err != nil {
		t.Fatalf("Next(%q): unexpected error %v", max, err)
	}
	if tok.Type != Int || tok.IntVal != math.MaxInt64 {
		t.Errorf("Next(%q) = %+v, want Int %d", max, tok, int64(math.MaxInt64))
	}

	tok, err = New([]byte(min)).Next()
	if err != nil {
		t.Fatalf("Next(%q): unexpected error %v", min, err)
	}
	if tok.Type != Int || tok.IntVal != math.MinInt64 {
		t.Errorf("Next(%q) = %+v, want Int %d", min, tok, int64(math.MinInt64))
	}
}

func TestLexInt64OneOverflow(t *testing.T) {
	tests := []string{
		"9223372036854775808",
		"-9223372036854775809",
	}
	for _, in := range tests {
		_, err := New([]byte(in)).Next()
		if err == nil {
			t.Fatalf("Next(%q): expected error, got none", in)
		}
		var de *diag.Error
		if !errors.As(err, &de) {
			t.Fatalf("Next(%q): error %v is not a *diag.Error", in, err)
		}
		if de.Kind != diag.InvalidNumber {
			t.Errorf("Next(%q) error kind = %v, want InvalidNumber", in, de.Kind)
		}
	}
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	l := New([]byte("/* never closed"))
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next(): unexpected error %v", err)
	}
	if tok.Type != EOF {
		t.Errorf("Next() = %+v, want EOF", tok)
	}
}

func TestLexUnterminatedBlockCommentBeforeToken(t *testing.T) {
	l := New([]byte("/* never closed\nstill going"))
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next(): unexpected error %v", err)
	}
	if tok.Type != EOF {
		t.Errorf("Next() = %+v, want EOF (unterminated comment swallows rest of input)", tok)
	}
}

func TestLexInvalidUnicodeEscape(t *testing.T) {
	tests := []string{
		`"\u12"`,
		`"\uZZZZ"`,
		`"\u"`,
	}
	for _, in := range tests {
		_, err := New([]byte(in)).Next()
		if err == nil {
			t.Fatalf("Next(%q): expected error, got none", in)
		}
		var de *diag.Error
		if !errors.As(err, &de) {
			t.Fatalf("Next(%q): error %v is not a *diag.Error", in, err)
		}
		if de.Kind != diag.InvalidEscape {
			t.Errorf("Next(%q) error kind = %v, want InvalidEscape", in, de.Kind)
		}
	}
}

func TestLexValidUnicodeEscapePreserved(t *testing.T) {
	in := "\"\\u0041\""
	tok, err := New([]byte(in)).Next()
	if err != nil {
		t.Fatalf("Next(%q): unexpected error %v", in, err)
	}
	want := "\\u0041"
	if tok.Type != String || tok.Str != want {
		t.Errorf("Next(%q) = %+v, want String %q (escape preserved verbatim, not decoded to 'A')", in, tok, want)
	}
}

func TestLexPunctuationAndKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want TokenType
	}{
		{"{", LBrace}, {"}", RBrace}, {"[", LBracket}, {"]", RBracket},
		{"(", LParen}, {")", RParen}, {":", Colon}, {",", Comma},
		{"$", Dollar}, {"#", Hash}, {"@", At},
		{"true", True}, {"false", False}, {"null", Null},
		{"ident_42", Ident},
	}
	for _, tt := range tests {
		tok, err := New([]byte(tt.in)).Next()
		if err != nil {
			t.Fatalf("Next(%q): unexpected error %v", tt.in, err)
		}
		if tok.Type != tt.want {
			t.Errorf("Next(%q).Type = %v, want %v", tt.in, tok.Type, tt.want)
		}
	}
}

func TestLexLineComment(t *testing.T) {
	l := New([]byte("// a comment\n42"))
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("Next(): unexpected error %v", err)
	}
	if tok.Type != Int || tok.IntVal != 42 {
		t.Errorf("Next() = %+v, want Int 42", tok)
	}
}

func TestLexTypedQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want TokenType
	}{
		{`d"19.99"`, DQuoted},
		{`b"aGVsbG8="`, BQuoted},
		{`u"550e8400-e29b-41d4-a716-446655440000"`, UQuoted},
		{`t"2024-01-01T00:00:00Z"`, TQuoted},
		{`r"P1D"`, RQuoted},
	}
	for _, tt := range tests {
		tok, err := New([]byte(tt.in)).Next()
		if err != nil {
			t.Fatalf("Next(%q): unexpected error %v", tt.in, err)
		}
		if tok.Type != tt.want {
			t.Errorf("Next(%q).Type = %v, want %v", tt.in, tok.Type, tt.want)
		}
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := New([]byte(`"no closing quote`)).Next()
	if err == nil {
		t.Fatal("Next(): expected error, got none")
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("Next(): error %v is not a *diag.Error", err)
	}
	if de.Kind != diag.UnexpectedEOF {
		t.Errorf("error kind = %v, want UnexpectedEOF", de.Kind)
	}
}

func TestLexUnknownEscape(t *testing.T) {
	_, err := New([]byte(`"bad \q escape"`)).Next()
	if err == nil {
		t.Fatal("Next(): expected error, got none")
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("Next(): error %v is not a *diag.Error", err)
	}
	if de.Kind != diag.InvalidEscape {
		t.Errorf("error kind = %v, want InvalidEscape", de.Kind)
	}
}

func TestLexEmptyInputIsEOF(t *testing.T) {
	tok, err := New([]byte("")).Next()
	if err != nil {
		t.Fatalf("Next(): unexpected error %v", err)
	}
	if tok.Type != EOF {
		t.Errorf("Next() = %+v, want EOF", tok)
	}
}

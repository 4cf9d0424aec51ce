// Package lex tokenizes xCDN source text.
//
// The lexer is byte-granular and non-streaming: it holds the full source
// buffer and a cursor (byte offset plus 1-based line/col), and produces one
// Token per call to Next. It performs no I/O and does no lookahead beyond a
// handful of bytes needed to disambiguate typed literals and triple-quoted
// strings from plain tokens.
package lex

import (
	"strconv"
	"strings"

	"github.com/gslf/xcdn-go/diag"
)

// Lexer tokenizes a fixed source buffer.
type Lexer struct {
	src  []byte
	idx  int
	line int
	col  int
}

// New returns a Lexer over src.
func New(src []byte) *Lexer {
	return &Lexer{src: src, idx: 0, line: 1, col: 1}
}

func isIdentStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9') || b == '-'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func (l *Lexer) peek() int {
	if l.idx >= len(l.src) {
		return -1
	}
	return int(l.src[l.idx])
}

func (l *Lexer) peekAt(offset int) int {
	pos := l.idx + offset
	if pos >= len(l.src) {
		return -1
	}
	return int(l.src[pos])
}

// bump consumes and returns the next byte, or -1 at EOF.
func (l *Lexer) bump() int {
	if l.idx >= len(l.src) {
		return -1
	}
	b := l.src[l.idx]
	l.idx++
	if b == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return int(b)
}

func (l *Lexer) pos() diag.Pos {
	return diag.Pos{Offset: l.idx, Line: l.line, Col: l.col}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.idx < len(l.src) {
			b := l.src[l.idx]
			if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
				l.bump()
				continue
			}
			break
		}
		if l.idx >= len(l.src) {
			return
		}
		b := l.src[l.idx]
		if b == '/' && l.idx+1 < len(l.src) {
			b2 := l.src[l.idx+1]
			if b2 == '/' {
				l.bump()
				l.bump()
				for l.idx < len(l.src) {
					c := l.bump()
					if c == '\n' {
						break
					}
				}
				continue
			}
			if b2 == '*' {
				l.bump()
				l.bump()
				for l.idx < len(l.src) {
					c := l.bump()
					if c == '*' && l.peek() == '/' {
						l.bump()
						break
					}
				}
				// Unterminated block comment at EOF is tolerated: the
				// loop above simply stops when idx reaches len(src).
				continue
			}
		}
		return
	}
}

// Next scans and returns the next token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()
	start := l.pos()

	b := l.peek()
	if b < 0 {
		return Token{Type: EOF, Pos: start}, nil
	}

	if b == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
		s, err := l.readString(true, start)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: TripleString, Pos: start, Str: s}, nil
	}

	switch byte(b) {
	case '{':
		l.bump()
		return Token{Type: LBrace, Pos: start}, nil
	case '}':
		l.bump()
		return Token{Type: RBrace, Pos: start}, nil
	case '[':
		l.bump()
		return Token{Type: LBracket, Pos: start}, nil
	case ']':
		l.bump()
		return Token{Type: RBracket, Pos: start}, nil
	case '(':
		l.bump()
		return Token{Type: LParen, Pos: start}, nil
	case ')':
		l.bump()
		return Token{Type: RParen, Pos: start}, nil
	case ':':
		l.bump()
		return Token{Type: Colon, Pos: start}, nil
	case ',':
		l.bump()
		return Token{Type: Comma, Pos: start}, nil
	case '$':
		l.bump()
		return Token{Type: Dollar, Pos: start}, nil
	case '#':
		l.bump()
		return Token{Type: Hash, Pos: start}, nil
	case '@':
		l.bump()
		return Token{Type: At, Pos: start}, nil
	}

	if b == '"' {
		s, err := l.readString(false, start)
		if err != nil {
			return Token{}, err
		}
		return Token{Type: String, Pos: start, Str: s}, nil
	}

	if b == '.' || b == '-' || b == '+' || (b >= '0' && b <= '9') {
		return l.readNumber(start)
	}

	if (b == 'd' || b == 'b' || b == 'u' || b == 't' || b == 'r') && l.peekAt(1) == '"' {
		typeByte := byte(b)
		l.bump()
		s, err := l.readString(false, start)
		if err != nil {
			return Token{}, err
		}
		var tt TokenType
		switch typeByte {
		case 'd':
			tt = DQuoted
		case 'b':
			tt = BQuoted
		case 'u':
			tt = UQuoted
		case 't':
			tt = TQuoted
		case 'r':
			tt = RQuoted
		}
		return Token{Type: tt, Pos: start, Str: s}, nil
	}

	if isIdentStart(byte(b)) {
		s := l.readIdent()
		switch s {
		case "true":
			return Token{Type: True, Pos: start}, nil
		case "false":
			return Token{Type: False, Pos: start}, nil
		case "null":
			return Token{Type: Null, Pos: start}, nil
		default:
			return Token{Type: Ident, Pos: start, Str: s}, nil
		}
	}

	return Token{}, diag.Newf(diag.InvalidToken, start,
		"unexpected character %q (0x%02x)", rune(b), b)
}

// readString reads a quoted string body, starting at the opening quote
// (or the three opening quotes, when triple is set). For a triple-quoted
// string the body is returned raw, with no escape processing. Otherwise the
// returned text has only \" and \\ reduced to their literal characters;
// every other recognized escape is re-emitted as the original escape
// sequence.
func (l *Lexer) readString(triple bool, start diag.Pos) (string, error) {
	var sb strings.Builder

	if triple {
		l.bump()
		l.bump()
		l.bump()
		for {
			if l.peek() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
				l.bump()
				l.bump()
				l.bump()
				return sb.String(), nil
			}
			b := l.bump()
			if b < 0 {
				return "", diag.New(diag.UnexpectedEOF, start)
			}
			sb.WriteByte(byte(b))
		}
	}

	q := l.bump()
	if q != '"' {
		return "", diag.Newf(diag.Expected, start, "expected '\"', found %q", rune(q))
	}
	for {
		b := l.bump()
		if b < 0 {
			return "", diag.New(diag.UnexpectedEOF, start)
		}
		if b == '"' {
			return sb.String(), nil
		}
		if b != '\\' {
			sb.WriteByte(byte(b))
			continue
		}
		e := l.bump()
		if e < 0 {
			return "", diag.Newf(diag.InvalidEscape, start, "incomplete escape at end of input")
		}
		switch byte(e) {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/', 'b', 'f', 'n', 'r', 't':
			sb.WriteByte('\\')
			sb.WriteByte(byte(e))
		case 'u':
			sb.WriteByte('\\')
			sb.WriteByte('u')
			for i := 0; i < 4; i++ {
				h := l.bump()
				if h < 0 || !isHexDigit(byte(h)) {
					return "", diag.Newf(diag.InvalidEscape, start, "invalid \\uXXXX escape")
				}
				sb.WriteByte(byte(h))
			}
		default:
			return "", diag.Newf(diag.InvalidEscape, start, "unknown escape '\\%c'", byte(e))
		}
	}
}

func (l *Lexer) readIdent() string {
	start := l.idx
	l.bump()
	for l.idx < len(l.src) && isIdentPart(l.src[l.idx]) {
		l.bump()
	}
	return string(l.src[start:l.idx])
}

func (l *Lexer) readNumber(start diag.Pos) (Token, error) {
	begin := l.idx
	hasDot, hasExp, hasDigit := false, false, false

	if p := l.peek(); p == '+' || p == '-' {
		l.bump()
	}
	for {
		p := l.peek()
		switch {
		case p >= '0' && p <= '9':
			hasDigit = true
			l.bump()
		case p == '.' && !hasDot && !hasExp:
			hasDot = true
			l.bump()
		case (p == 'e' || p == 'E') && !hasExp:
			hasExp = true
			l.bump()
			if sign := l.peek(); sign == '+' || sign == '-' {
				l.bump()
			}
		default:
			goto done
		}
	}
done:
	if !hasDigit {
		return Token{}, diag.New(diag.InvalidNumber, l.pos())
	}

	text := string(l.src[begin:l.idx])
	if hasDot || hasExp {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, diag.Newf(diag.InvalidNumber, l.pos(), "invalid float: %s", text)
		}
		return Token{Type: Float, Pos: start, FloatVal: f}, nil
	}
	iv, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, diag.Newf(diag.InvalidNumber, l.pos(), "invalid integer: %s", text)
	}
	return Token{Type: Int, Pos: start, IntVal: iv}, nil
}

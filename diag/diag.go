// Package diag provides source positions and the error vocabulary shared by
// the lex and parse packages.
package diag

import (
	"errors"
	"fmt"
)

// Pos identifies a location in a source text. Offset is 0-based; Line and
// Col are 1-based. Col advances by one per consumed byte except on '\n',
// which resets Col to 1 and advances Line.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Start returns the position at the beginning of a source text.
func Start() Pos {
	return Pos{Offset: 0, Line: 1, Col: 1}
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line %d, col %d)", p.Offset, p.Line, p.Col)
}

// Kind is the closed set of error kinds a diag.Error can carry.
type Kind int

const (
	UnexpectedEOF Kind = iota
	InvalidToken
	Expected
	InvalidEscape
	InvalidNumber
	InvalidDecimal
	InvalidDateTime
	InvalidDuration
	InvalidUUID
	InvalidBase64
	Message
	OutOfMemory
)

func (k Kind) String() string {
	s, ok := kindNames[k]
	if !ok {
		return "unknown error"
	}
	return s
}

var kindNames = map[Kind]string{
	UnexpectedEOF:    "unexpected end of input",
	InvalidToken:     "invalid token",
	Expected:         "unexpected token",
	InvalidEscape:    "invalid escape sequence",
	InvalidNumber:    "invalid number literal",
	InvalidDecimal:   "invalid decimal literal",
	InvalidDateTime:  "invalid RFC3339 datetime",
	InvalidDuration:  "invalid ISO8601 duration",
	InvalidUUID:      "invalid UUID",
	InvalidBase64:    "invalid base64 encoding",
	Message:          "error",
	OutOfMemory:      "out of memory",
}

// Sentinel errors, one per Kind, so callers can errors.Is against a kind
// without string-matching the formatted message.
var (
	ErrUnexpectedEOF = errors.New(kindNames[UnexpectedEOF])
	ErrInvalidToken  = errors.New(kindNames[InvalidToken])
	ErrExpected      = errors.New(kindNames[Expected])
	ErrInvalidEscape = errors.New(kindNames[InvalidEscape])
	ErrInvalidNumber = errors.New(kindNames[InvalidNumber])
	ErrInvalidDecimal = errors.New(kindNames[InvalidDecimal])
	ErrInvalidDateTime = errors.New(kindNames[InvalidDateTime])
	ErrInvalidDuration = errors.New(kindNames[InvalidDuration])
	ErrInvalidUUID   = errors.New(kindNames[InvalidUUID])
	ErrInvalidBase64 = errors.New(kindNames[InvalidBase64])
	ErrMessage       = errors.New(kindNames[Message])
	ErrOutOfMemory   = errors.New(kindNames[OutOfMemory])
)

var sentinels = map[Kind]error{
	UnexpectedEOF:    ErrUnexpectedEOF,
	InvalidToken:     ErrInvalidToken,
	Expected:         ErrExpected,
	InvalidEscape:    ErrInvalidEscape,
	InvalidNumber:    ErrInvalidNumber,
	InvalidDecimal:   ErrInvalidDecimal,
	InvalidDateTime:  ErrInvalidDateTime,
	InvalidDuration:  ErrInvalidDuration,
	InvalidUUID:      ErrInvalidUUID,
	InvalidBase64:    ErrInvalidBase64,
	Message:          ErrMessage,
	OutOfMemory:      ErrOutOfMemory,
}

// Error is a diagnostic with a kind, a source position, and a formatted
// human-readable message.
type Error struct {
	Kind Kind
	Pos  Pos
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}

// Unwrap exposes the sentinel error for e.Kind, so errors.Is(err,
// diag.ErrInvalidNumber) works regardless of the formatted message.
func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

// New builds an Error whose message is the kind's default description.
func New(kind Kind, pos Pos) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: kind.String()}
}

// Newf builds an Error with a printf-style message.
func Newf(kind Kind, pos Pos, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

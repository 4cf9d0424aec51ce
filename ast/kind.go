package ast

import "fmt"

// Kind discriminates the Value sum type. Go has no native sum type; a
// closed int enum paired with a flat struct simulates one.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindString
	KindBytes
	KindDateTime
	KindDuration
	KindUUID
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:     "Null",
	KindBool:     "Bool",
	KindInt:      "Int",
	KindFloat:    "Float",
	KindDecimal:  "Decimal",
	KindString:   "String",
	KindBytes:    "Bytes",
	KindDateTime: "DateTime",
	KindDuration: "Duration",
	KindUUID:     "UUID",
	KindArray:    "Array",
	KindObject:   "Object",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTextual reports whether k stores its payload as plain text (the
// variants AsString applies to uniformly: String, Decimal, DateTime,
// Duration, UUID).
func (k Kind) IsTextual() bool {
	switch k {
	case KindString, KindDecimal, KindDateTime, KindDuration, KindUUID:
		return true
	default:
		return false
	}
}

// IsContainer reports whether k holds child Nodes (Array or Object).
func (k Kind) IsContainer() bool {
	return k == KindArray || k == KindObject
}

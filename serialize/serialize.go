package serialize

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/gslf/xcdn-go/ast"
	"github.com/gslf/xcdn-go/lex"
)

// Serialize renders doc as xCDN source text under format f. The result is
// always re-parseable, reproducing the same document structurally.
func Serialize(doc *ast.Document, f Format) string {
	w := &writer{format: f}
	w.writeDocument(doc)
	return w.sb.String()
}

// Pretty is Serialize(doc, DefaultFormat()).
func Pretty(doc *ast.Document) string {
	return Serialize(doc, DefaultFormat())
}

// Compact is Serialize(doc, CompactFormat()).
func Compact(doc *ast.Document) string {
	return Serialize(doc, CompactFormat())
}

// Attr names the display-role categories a ColorFunc can style
// independently: punctuation, object keys, tags, annotations, and each
// scalar literal family. xCDN has no merge syntax, so there is no analogue
// of a merge-tag color.
type Attr int

const (
	AttrPunct Attr = iota
	AttrKey
	AttrTag
	AttrAnnotation
	AttrNull
	AttrBool
	AttrNumber
	AttrString
	AttrTyped
)

// ColorFunc renders s under the given display role. A nil ColorFunc leaves
// text unstyled; SerializeColor treats it the same as Serialize.
type ColorFunc func(attr Attr, s string) string

// SerializeColor is Serialize with each emitted fragment passed through
// color before being written. The serialize package itself has no opinion
// on what a color looks like; the serialize/highlight package supplies
// concrete ColorFuncs built on github.com/fatih/color.
func SerializeColor(doc *ast.Document, f Format, color ColorFunc) string {
	w := &writer{format: f, color: color}
	w.writeDocument(doc)
	return w.sb.String()
}

// writer accumulates output text for one Serialize call, tracking only the
// format in effect (indentation depth is threaded explicitly through the
// write* methods rather than held as mutable state, since a nested writer
// with a different format is needed for annotation arguments). color is
// optional; when nil, writeColored is a plain, unstyled write.
type writer struct {
	sb     strings.Builder
	format Format
	color  ColorFunc
}

// writeColored writes s styled as attr via w.color, or verbatim if w.color
// is nil.
func (w *writer) writeColored(attr Attr, s string) {
	if w.color != nil {
		s = w.color(attr, s)
	}
	w.sb.WriteString(s)
}

func (w *writer) writeDocument(doc *ast.Document) {
	for _, d := range doc.Prolog {
		w.writeColored(AttrPunct, "$")
		w.writeColored(AttrKey, d.Name)
		w.writeColored(AttrPunct, ":")
		w.sb.WriteByte(' ')
		w.writeValue(d.Value, 0)
		if w.format.TrailingCommas {
			w.writeColored(AttrPunct, ",")
		}
		w.sb.WriteByte('\n')
	}

	for i, node := range doc.Values {
		if i > 0 {
			// Compact mode still needs a separator, or adjacent scalars
			// such as 1 and 2 would re-lex as the single token 12.
			if w.format.Pretty {
				w.sb.WriteByte('\n')
			} else {
				w.sb.WriteByte(' ')
			}
		}
		w.writeNode(node, 0)
	}
}

func (w *writer) writeNode(n *ast.Node, depth int) {
	for i := 0; i < n.AnnotationCount(); i++ {
		a, _ := n.AnnotationAt(i)
		w.writeAnnotation(a)
		w.sb.WriteByte(' ')
	}
	for i := 0; i < n.TagCount(); i++ {
		t, _ := n.TagAt(i)
		w.writeColored(AttrTag, "#"+t)
		w.sb.WriteByte(' ')
	}
	w.writeValue(n.Value, depth)
}

// writeAnnotation always renders its argument list in compact form,
// regardless of the outer writer's format.
func (w *writer) writeAnnotation(a *ast.Annotation) {
	w.writeColored(AttrAnnotation, "@"+a.Name)
	n := a.ArgCount()
	if n == 0 {
		return
	}
	w.writeColored(AttrPunct, "(")
	argw := &writer{format: CompactFormat(), color: w.color}
	for i := 0; i < n; i++ {
		if i > 0 {
			argw.writeColored(AttrPunct, ", ")
		}
		v, _ := a.Arg(i)
		argw.writeValue(v, 0)
	}
	w.sb.WriteString(argw.sb.String())
	w.writeColored(AttrPunct, ")")
}

func (w *writer) writeValue(v *ast.Value, depth int) {
	switch v.Kind {
	case ast.KindNull:
		w.writeColored(AttrNull, "null")
	case ast.KindBool:
		if v.AsBool() {
			w.writeColored(AttrBool, "true")
		} else {
			w.writeColored(AttrBool, "false")
		}
	case ast.KindInt:
		w.writeColored(AttrNumber, strconv.FormatInt(v.AsInt(), 10))
	case ast.KindFloat:
		w.writeColored(AttrNumber, formatFloat(v.AsFloat()))
	case ast.KindDecimal:
		w.writeTypedQuoted('d', v.AsString())
	case ast.KindString:
		w.writeEscapedString(v.AsString())
	case ast.KindBytes:
		w.writeColored(AttrTyped, `b"`+base64.StdEncoding.EncodeToString(v.AsBytes())+`"`)
	case ast.KindDateTime:
		w.writeTypedQuoted('t', v.AsString())
	case ast.KindDuration:
		w.writeTypedQuoted('r', v.AsString())
	case ast.KindUUID:
		w.writeTypedQuoted('u', v.AsString())
	case ast.KindArray:
		w.writeArray(v.AsArray(), depth)
	case ast.KindObject:
		w.writeObject(v.AsObject(), depth)
	}
}

// writeTypedQuoted emits a typed literal's verbatim text wrapped in its
// single-letter prefix and quotes. No escaping is applied to the
// Decimal/DateTime/Duration/UUID text content; it is emitted verbatim.
func (w *writer) writeTypedQuoted(prefix byte, text string) {
	w.writeColored(AttrTyped, string(prefix)+`"`+text+`"`)
}

func (w *writer) writeArray(a *ast.Array, depth int) {
	n := a.Len()
	w.writeColored(AttrPunct, "[")
	if w.format.Pretty {
		if n > 0 {
			w.sb.WriteByte('\n')
		}
		for i := 0; i < n; i++ {
			item, _ := a.Get(i)
			w.writeIndent(depth + 1)
			w.writeNode(item, depth+1)
			if i < n-1 || w.format.TrailingCommas {
				w.writeColored(AttrPunct, ",")
			}
			w.sb.WriteByte('\n')
		}
		if n > 0 {
			w.writeIndent(depth)
		}
	} else {
		for i := 0; i < n; i++ {
			if i > 0 {
				w.writeColored(AttrPunct, ", ")
			}
			item, _ := a.Get(i)
			w.writeNode(item, depth+1)
		}
		if n > 0 && w.format.TrailingCommas {
			w.writeColored(AttrPunct, ",")
		}
	}
	w.writeColored(AttrPunct, "]")
}

func (w *writer) writeObject(o *ast.Object, depth int) {
	n := o.Len()
	w.writeColored(AttrPunct, "{")
	if w.format.Pretty {
		if n > 0 {
			w.sb.WriteByte('\n')
		}
		for i := 0; i < n; i++ {
			key, _ := o.KeyAt(i)
			node, _ := o.NodeAt(i)
			w.writeIndent(depth + 1)
			w.writeKey(key)
			w.writeColored(AttrPunct, ":")
			w.sb.WriteByte(' ')
			w.writeNode(node, depth+1)
			if i < n-1 || w.format.TrailingCommas {
				w.writeColored(AttrPunct, ",")
			}
			w.sb.WriteByte('\n')
		}
		if n > 0 {
			w.writeIndent(depth)
		}
	} else {
		for i := 0; i < n; i++ {
			if i > 0 {
				w.writeColored(AttrPunct, ", ")
			}
			key, _ := o.KeyAt(i)
			node, _ := o.NodeAt(i)
			w.writeKey(key)
			w.writeColored(AttrPunct, ":")
			w.sb.WriteByte(' ')
			w.writeNode(node, depth+1)
		}
		if n > 0 && w.format.TrailingCommas {
			w.writeColored(AttrPunct, ",")
		}
	}
	w.writeColored(AttrPunct, "}")
}

func (w *writer) writeIndent(depth int) {
	w.sb.WriteString(strings.Repeat(" ", depth*w.format.Indent))
}

// writeKey emits key unquoted if it matches the identifier production,
// otherwise as an escaped string.
func (w *writer) writeKey(key string) {
	if lex.IsIdent(key) {
		w.writeColored(AttrKey, key)
		return
	}
	w.writeColored(AttrKey, escapeString(key))
}

func (w *writer) writeEscapedString(s string) {
	w.writeColored(AttrString, escapeString(s))
}

// escapeString renders s as a double-quoted xCDN string literal.
func escapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat renders f as the shortest round-trippable decimal that the
// lexer's number grammar still recognizes as FLOAT rather than INT: the
// grammar classifies a number token as FLOAT only if it contains '.' or
// 'e'/'E', so a whole-number float (e.g. 3.0) must keep an explicit ".0"
// or it would re-parse as an Int and violate the round-trip contract.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

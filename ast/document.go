package ast

import "strings"

// Directive is a prolog entry: a $name: value pair. Name omits the leading
// '$'. A directive's value carries no decorations.
type Directive struct {
	Name  string
	Value *Value
}

// Document is the parsed (or directly constructed) xCDN document: an
// ordered prolog of Directives followed by an ordered value stream of
// Nodes.
type Document struct {
	Prolog []*Directive
	Values []*Node
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

// PushValue appends a top-level Node to the value stream.
func (d *Document) PushValue(n *Node) {
	d.Values = append(d.Values, n)
}

// PushDirective appends a directive to the prolog.
func (d *Document) PushDirective(name string, v *Value) {
	d.Prolog = append(d.Prolog, &Directive{Name: name, Value: v})
}

// Get returns the i-th top-level Node, or (nil, false) if out of bounds.
func (d *Document) Get(i int) (*Node, bool) {
	if d == nil || i < 0 || i >= len(d.Values) {
		return nil, false
	}
	return d.Values[i], true
}

// firstObject returns the first top-level value's Object accessor, or nil
// if there is no first value or it is not an Object.
func (d *Document) firstObject() *Object {
	if d == nil || len(d.Values) == 0 {
		return nil
	}
	return d.Values[0].Value.AsObject()
}

// GetKey looks up key in the document's first top-level value, provided
// that value is an Object. Shorthand for d.Get(0).Value.AsObject().Get(key).
func (d *Document) GetKey(key string) (*Node, bool) {
	return d.firstObject().Get(key)
}

// HasKey reports whether key exists in the document's first top-level
// Object value.
func (d *Document) HasKey(key string) bool {
	return d.firstObject().Has(key)
}

// GetPath walks dot-separated segments of path through nested Objects,
// starting at the document's first top-level value. It returns the Node at
// that path, or (nil, false) if any segment is missing or not an Object.
func (d *Document) GetPath(path string) (*Node, bool) {
	if path == "" {
		return nil, false
	}
	segments := strings.Split(path, ".")
	obj := d.firstObject()
	var node *Node
	for i, seg := range segments {
		if obj == nil {
			return nil, false
		}
		n, ok := obj.Get(seg)
		if !ok {
			return nil, false
		}
		node = n
		if i < len(segments)-1 {
			obj = n.Value.AsObject()
		}
	}
	return node, true
}

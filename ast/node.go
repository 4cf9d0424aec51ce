package ast

// Node is a Value decorated with ordered tags and annotations.
type Node struct {
	Value       *Value
	tags        []string
	annotations []*Annotation
}

// NewNode wraps v in a bare, undecorated Node.
func NewNode(v *Value) *Node {
	return &Node{Value: v}
}

// AddTag appends a tag name. Tag names are not de-duplicated; a node may
// repeat a tag name, and by-name lookups return the first match.
func (n *Node) AddTag(name string) {
	n.tags = append(n.tags, name)
}

// HasTag reports whether name appears among the node's tags.
func (n *Node) HasTag(name string) bool {
	for _, t := range n.tags {
		if t == name {
			return true
		}
	}
	return false
}

// TagAt returns the tag at index i, in the order they were added.
func (n *Node) TagAt(i int) (string, bool) {
	if n == nil || i < 0 || i >= len(n.tags) {
		return "", false
	}
	return n.tags[i], true
}

// TagCount returns the number of tags.
func (n *Node) TagCount() int {
	if n == nil {
		return 0
	}
	return len(n.tags)
}

// AddAnnotation appends a new, argument-less annotation named name and
// returns it so callers can push arguments onto it.
func (n *Node) AddAnnotation(name string) *Annotation {
	a := &Annotation{Name: name}
	n.annotations = append(n.annotations, a)
	return a
}

// FindAnnotation returns the first annotation named name, in insertion
// order, or (nil, false) if none matches.
func (n *Node) FindAnnotation(name string) (*Annotation, bool) {
	if n == nil {
		return nil, false
	}
	for _, a := range n.annotations {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// HasAnnotation reports whether any annotation named name is present.
func (n *Node) HasAnnotation(name string) bool {
	_, ok := n.FindAnnotation(name)
	return ok
}

// AnnotationCount returns the number of annotations.
func (n *Node) AnnotationCount() int {
	if n == nil {
		return 0
	}
	return len(n.annotations)
}

// AnnotationAt returns the annotation at index i, in insertion order.
func (n *Node) AnnotationAt(i int) (*Annotation, bool) {
	if n == nil || i < 0 || i >= len(n.annotations) {
		return nil, false
	}
	return n.annotations[i], true
}

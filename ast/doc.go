// Package ast is the xCDN in-memory document model: Value, Node,
// Annotation, Directive, and Document, with their constructors, mutators,
// and accessors.
//
// The tree is strictly hierarchical and exclusively owned: a Document owns
// its prolog Values and top-level Nodes, a Node owns its tags, annotations,
// and Value, and a container Value (Array/Object) owns its child Nodes. Go's
// garbage collector performs the recursive release; nothing here does
// manual reference counting.
package ast

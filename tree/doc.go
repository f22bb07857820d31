// Package tree provides the node tree behind the structured JSON editor.
//
// # Overview
//
// A document is a tree of nodes. Each node is one of
//
//   - *Leaf: null, boolean, number or string
//   - *ObjectTree: named children, kept in insertion order
//   - *ArrayTree: children keyed by position
//
// Every node carries an identifier assigned once at construction. The
// identifier survives moves and renames and is meant for keying rendered
// rows, never for structural lookup.
//
// # Creating Nodes
//
//	root, err := tree.FromAny(map[string]any{
//	    "format_version": "1.20.0",
//	    "components":     []any{1, 2},
//	})
//
// Objects built from a Go map have their keys sorted. Use Members to keep a
// given order, or the parse package to read documents.
//
// # Keys
//
// A node does not store its key. Key searches the parent's children for the
// node itself (by reference, never by value) and reports the field name or
// index found there, so keys are always current after siblings are
// inserted, removed or reordered. The search is linear in the number of
// siblings.
//
// Key fails with ErrNoParent on a root. It fails with ErrInconsistentTree
// when the node is not among its parent's children, which is the state of
// a node after it was removed: removal does not clear the parent link.
//
// # Mutation
//
// Containers are mutated through their methods (ObjectTree.Insert,
// ArrayTree.Remove, ...). A node can only be inserted while it is not
// attached to a parent, and a container can not be inserted below itself.
//
// A leaf keeps its identity when its value changes within its type
// (Leaf.Set). Changing the type (a string becoming a number) replaces the
// leaf by a new one with a new identity (Retype).
//
// # Rendering
//
// Height and Styles give virtualized list layout hints: a row is RowHeight
// pixels, and an open container is its own row plus its children.
//
// # Thread Safety
//
// Trees are not safe for concurrent mutation. A single goroutine should own
// a tree; identifier sources are safe to share.
package tree

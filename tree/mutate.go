package tree

import "fmt"

// Detach removes n from its parent, whatever the parent's kind.
func Detach(n Node) error {
	p := n.Parent()
	if p == nil {
		return fmt.Errorf("%w: node %s", ErrNoParent, n.ID())
	}
	return p.removeChild(n)
}

// ReplaceNode puts n where old is in old's parent.
func ReplaceNode(old, n Node) error {
	p := old.Parent()
	if p == nil {
		return fmt.Errorf("%w: node %s", ErrNoParent, old.ID())
	}
	return p.replaceChild(old, n)
}

// MakeRoot clears the parent link of a node that is no longer attached, so
// that it can serve as the root of a document.
func MakeRoot(n Node) error {
	if Attached(n) {
		return fmt.Errorf("%w: node %s", ErrAttached, n.ID())
	}
	n.base().parent = nil
	return nil
}

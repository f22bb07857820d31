package tree

import "errors"

var (
	// ErrNoParent is returned when the key of a root node is requested.
	ErrNoParent = errors.New("tree without parent has no key")
	// ErrInconsistentTree is returned when a node cannot be found among
	// the children of its parent.
	ErrInconsistentTree = errors.New("invalid state: child not found inside of parent's children")

	ErrUnsupportedValue = errors.New("unsupported value")
	ErrTypeChange       = errors.New("leaf type change")
	ErrNilNode          = errors.New("nil node")
	ErrAttached         = errors.New("node is attached to a parent")
	ErrCycle            = errors.New("node would become its own descendant")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("not found")
	ErrIndexRange       = errors.New("index out of range")
	ErrBadPath          = errors.New("bad path")
)

// Package patch edits live trees with RFC 6902 JSON Patch documents and
// describes edits as line diffs.
//
// Operations go through the tree mutation API, so nodes a patch does not
// touch keep their identity, and a moved node keeps its identity at its new
// location.
package patch

import (
	"fmt"
	"strings"

	"github.com/bridge-core/tree-editor/debug"
	"github.com/bridge-core/tree-editor/parse"
	"github.com/bridge-core/tree-editor/tree"

	jsonpatch "github.com/evanphx/json-patch"
)

type applyOpts struct {
	ids tree.IDFunc
}

type ApplyOption func(*applyOpts)

// ApplyIDs sets the identifier source for nodes created by the patch.
func ApplyIDs(ids tree.IDFunc) ApplyOption {
	return func(o *applyOpts) { o.ids = ids }
}

// Apply executes the JSON Patch p against root and returns the resulting
// root, which differs from root only when the patch replaces the whole
// document. Either every operation is applied or, on error, none is.
func Apply(root tree.Node, p []byte, opts ...ApplyOption) (tree.Node, error) {
	o := &applyOpts{}
	for _, opt := range opts {
		opt(o)
	}
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d operations to %s\n", len(ops), root)
	}
	// dry run on a copy so that a failing operation leaves root untouched
	if _, err := applyAll(tree.Clone(root), ops, &applyOpts{}); err != nil {
		return nil, err
	}
	return applyAll(root, ops, o)
}

func applyAll(root tree.Node, ops jsonpatch.Patch, o *applyOpts) (tree.Node, error) {
	for i, op := range ops {
		var err error
		root, err = applyOp(root, op, o)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Kind(), err)
		}
	}
	return root, nil
}

func applyOp(root tree.Node, op jsonpatch.Operation, o *applyOpts) (tree.Node, error) {
	path, err := op.Path()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
	}
	if debug.Patches() {
		debug.Logf("%s %s\n", op.Kind(), path)
	}
	switch op.Kind() {
	case "add":
		v, err := value(op, o)
		if err != nil {
			return nil, err
		}
		return add(root, path, v)
	case "remove":
		if path == "" {
			return nil, fmt.Errorf("%w: cannot remove the document root", ErrPatch)
		}
		n, err := get(root, path)
		if err != nil {
			return nil, err
		}
		if err := tree.Detach(n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return root, nil
	case "replace":
		v, err := value(op, o)
		if err != nil {
			return nil, err
		}
		old, err := get(root, path)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return v, nil
		}
		if err := tree.ReplaceNode(old, v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return root, nil
	case "move":
		from, err := op.From()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
		}
		if from == path {
			return root, nil
		}
		if from == "" || strings.HasPrefix(path, from+"/") {
			return nil, fmt.Errorf("%w: cannot move %q into its own child %q", ErrPatch, from, path)
		}
		n, err := get(root, from)
		if err != nil {
			return nil, err
		}
		if err := tree.Detach(n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return add(root, path, n)
	case "copy":
		from, err := op.From()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
		}
		n, err := get(root, from)
		if err != nil {
			return nil, err
		}
		var cOpts []tree.Option
		if o.ids != nil {
			cOpts = append(cOpts, tree.WithIDs(o.ids))
		}
		return add(root, path, tree.Clone(n, cOpts...))
	case "test":
		v, err := value(op, o)
		if err != nil {
			return nil, err
		}
		n, err := get(root, path)
		if err != nil {
			return nil, err
		}
		if !tree.Equal(n, v) {
			return nil, fmt.Errorf("%w: at %q", ErrTestFailed, path)
		}
		return root, nil
	}
	return nil, fmt.Errorf("%w: unknown op %q", ErrBadOp, op.Kind())
}

func value(op jsonpatch.Operation, o *applyOpts) (tree.Node, error) {
	raw, ok := op["value"]
	if !ok {
		return nil, fmt.Errorf("%w: %s without value", ErrBadOp, op.Kind())
	}
	if raw == nil {
		return tree.NewLeaf(nil, idOpts(o)...)
	}
	var pOpts []parse.ParseOption
	if o.ids != nil {
		pOpts = append(pOpts, parse.ParseIDs(o.ids))
	}
	n, err := parse.Parse(*raw, pOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOp, err)
	}
	return n, nil
}

func idOpts(o *applyOpts) []tree.Option {
	if o.ids == nil {
		return nil
	}
	return []tree.Option{tree.WithIDs(o.ids)}
}

func get(root tree.Node, ptr string) (tree.Node, error) {
	n, err := tree.GetPointer(root, ptr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return n, nil
}

// add inserts n at ptr, replacing an existing object member. n must not be
// attached.
func add(root tree.Node, ptr string, n tree.Node) (tree.Node, error) {
	if ptr == "" {
		if err := tree.MakeRoot(n); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		return n, nil
	}
	toks, err := tree.ParsePointer(ptr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	parentPtr := ptr[:strings.LastIndexByte(ptr, '/')]
	parent, err := get(root, parentPtr)
	if err != nil {
		return nil, err
	}
	last := toks[len(toks)-1]
	switch p := parent.(type) {
	case *tree.ObjectTree:
		_, err = p.Set(last, n)
	case *tree.ArrayTree:
		var i int
		i, err = tree.ArrayIndex(last, p.Len(), true)
		if err == nil {
			err = p.Insert(i, n)
		}
	default:
		err = fmt.Errorf("cannot add %q to %s", last, parent.Type())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return root, nil
}

// Package query finds nodes of a tree with boolean expr-lang expressions.
//
// An expression sees the node it is evaluated on through these variables:
//
//	key       the field name or array index of the node, nil for the root
//	field     the field name, "" unless the parent is an object
//	index     the array index, -1 unless the parent is an array
//	type      the node type: Null, Number, String, Bool, Object or Array
//	value     the plain value of the node, numbers as int or float64
//	path      the path of the node, as in "$.a[0]"
//	depth     the number of ancestors
//	selected  whether the node is selected
//	height    the rendered height in pixels
//	id        the node identifier
//	len       the number of children, 0 for leaves
//
// and the function getpath(path), which returns the plain value at a path of
// the node's document, or nil.
package query

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bridge-core/tree-editor/debug"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src string
	prg *vm.Program
	// identifiers the expression references
	uses varSet
}

// Compile compiles src, which must evaluate to a boolean.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	t, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	uses := varSet{}
	ast.Walk(&t.Node, uses)
	return &Query{src: src, prg: prg, uses: uses}, nil
}

type varSet map[string]bool

func (s varSet) Visit(n *ast.Node) {
	if id, ok := (*n).(*ast.IdentifierNode); ok {
		s[id.Value] = true
	}
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// Match evaluates q on n.
func (q *Query) Match(n tree.Node) (bool, error) {
	env, err := nodeEnv(n, q.uses)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res, err := expr.Run(q.prg, *env)
	if err != nil {
		return false, fmt.Errorf("%w: %q at %s: %w", ErrQuery, q.src, env.Path, err)
	}
	ok, _ := res.(bool)
	if debug.Query() {
		debug.Logf("%s on %s: %t\n", q.src, n, ok)
	}
	return ok, nil
}

// Find returns the nodes under root, root included, that match q in
// document order.
func Find(root tree.Node, q *Query) ([]tree.Node, error) {
	var res []tree.Node
	err := tree.Visit(root, func(n tree.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Env is the environment an expression is evaluated in.
type Env struct {
	Key      any              `expr:"key"`
	Field    string           `expr:"field"`
	Index    int              `expr:"index"`
	Type     string           `expr:"type"`
	Value    any              `expr:"value"`
	Path     string           `expr:"path"`
	Depth    int              `expr:"depth"`
	Selected bool             `expr:"selected"`
	Height   int              `expr:"height"`
	ID       string           `expr:"id"`
	Len      int              `expr:"len"`
	GetPath  func(string) any `expr:"getpath"`
}

// NodeEnv returns the environment for evaluating expressions on n.
func NodeEnv(n tree.Node) (*Env, error) {
	return nodeEnv(n, nil)
}

// nodeEnv leaves value and height zero unless uses is nil or names them.
func nodeEnv(n tree.Node, uses varSet) (*Env, error) {
	path, err := tree.Path(n)
	if err != nil {
		return nil, err
	}
	env := &Env{
		Index:    -1,
		Type:     n.Type().String(),
		Path:     path,
		Depth:    tree.Depth(n),
		Selected: n.Selected(),
		ID:       n.ID(),
		GetPath: func(p string) any {
			res, err := tree.Get(tree.Root(n), p)
			if err != nil {
				return nil
			}
			return plain(res.ToJSON())
		},
	}
	if n.Parent() != nil {
		k, err := n.Key()
		if err != nil {
			return nil, err
		}
		env.Key = k.Value()
		if k.IsIndex() {
			env.Index = k.Index()
		} else {
			env.Field = k.Field()
		}
	}
	if c, ok := n.(tree.Container); ok {
		env.Len = c.Len()
	}
	if uses == nil || uses["value"] {
		env.Value = plain(n.ToJSON())
	}
	if uses == nil || uses["height"] {
		env.Height = n.Height()
	}
	return env, nil
}

// plain replaces json.Number values with int or float64 so that
// expressions can do arithmetic on them.
func plain(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		f, _ := x.Float64()
		return f
	case map[string]any:
		for k, e := range x {
			x[k] = plain(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = plain(e)
		}
		return x
	}
	return v
}

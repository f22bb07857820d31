package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/bridge-core/tree-editor/tree"

	"github.com/goccy/go-json"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, which goes to stderr by default.
func SetOutput(w io.Writer) {
	out = w
}

func render(n tree.Node) string {
	d, err := n.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("[raw %T %s] %v", n, n.ID(), n.ToJSON())
	}
	p, err := tree.Path(n)
	if err != nil {
		p = "<detached>"
	}
	return p + " " + string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case tree.Node:
			args[i] = render(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

package patch

import (
	"strings"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff between the indented JSON renderings of from and
// to. Deleted lines start with '-', inserted lines with '+' and unchanged
// lines with ' '. Diff returns the empty string when the renderings agree.
func Diff(from, to tree.Node) (string, error) {
	a, err := indented(from)
	if err != nil {
		return "", err
	}
	b, err := indented(to)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	return buf.String(), nil
}

func indented(n tree.Node) (string, error) {
	buf := &strings.Builder{}
	if err := encode.Encode(n, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeIndent(2)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

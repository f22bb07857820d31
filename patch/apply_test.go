package patch

import (
	stdjson "encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bridge-core/tree-editor/parse"
	"github.com/bridge-core/tree-editor/tree"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

const testDoc = `{"a":1,"list":[1,2,3],"obj":{"x":"y","z":[true]}}`

func mustParse(t *testing.T, s string) tree.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s), parse.ParseIDs(tree.Counter("t")))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func mustGet(t *testing.T, root tree.Node, ptr string) tree.Node {
	t.Helper()
	n, err := tree.GetPointer(root, ptr)
	if err != nil {
		t.Fatalf("get %q: %v", ptr, err)
	}
	return n
}

func asAny(t *testing.T, d []byte) any {
	t.Helper()
	var v any
	if err := stdjson.Unmarshal(d, &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestApplyAgreesWithByteLevelPatch(t *testing.T) {
	patches := []string{
		`[{"op":"add","path":"/b","value":2}]`,
		`[{"op":"add","path":"/a","value":{"n":null}}]`,
		`[{"op":"add","path":"/list/1","value":"mid"}]`,
		`[{"op":"add","path":"/list/-","value":4}]`,
		`[{"op":"add","path":"/obj/z/0","value":false}]`,
		`[{"op":"remove","path":"/a"}]`,
		`[{"op":"remove","path":"/list/0"}]`,
		`[{"op":"replace","path":"/obj/x","value":[1,2]}]`,
		`[{"op":"replace","path":"/list/2","value":"three"}]`,
		`[{"op":"move","from":"/obj/z","path":"/list/0"}]`,
		`[{"op":"move","from":"/list/0","path":"/list/2"}]`,
		`[{"op":"move","from":"/a","path":"/obj/a"}]`,
		`[{"op":"copy","from":"/obj","path":"/obj2"}]`,
		`[{"op":"copy","from":"/list/1","path":"/list/-"}]`,
		`[{"op":"test","path":"/obj/x","value":"y"},{"op":"remove","path":"/obj/x"}]`,
		`[{"op":"add","path":"/c","value":1},{"op":"move","from":"/c","path":"/obj/c"},{"op":"remove","path":"/list/1"}]`,
	}
	for _, p := range patches {
		t.Run(p, func(t *testing.T) {
			jp, err := jsonpatch.DecodePatch([]byte(p))
			if err != nil {
				t.Fatal(err)
			}
			want, err := jp.Apply([]byte(testDoc))
			if err != nil {
				t.Fatal(err)
			}
			root, err := Apply(mustParse(t, testDoc), []byte(p))
			if err != nil {
				t.Fatal(err)
			}
			got, err := root.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(asAny(t, want), asAny(t, got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyKeepsIdentity(t *testing.T) {
	root := mustParse(t, testDoc)
	z := mustGet(t, root, "/obj/z")
	list := mustGet(t, root, "/list")
	x := mustGet(t, root, "/obj/x")

	p := `[
		{"op":"move","from":"/obj/z","path":"/moved"},
		{"op":"copy","from":"/obj/x","path":"/copied"},
		{"op":"remove","path":"/list/0"}
	]`
	res, err := Apply(root, []byte(p))
	if err != nil {
		t.Fatal(err)
	}
	if res != root {
		t.Fatal("root changed")
	}
	if got := mustGet(t, root, "/moved"); got != z {
		t.Errorf("moved node lost identity: %s vs %s", got.ID(), z.ID())
	}
	if k, err := z.Key(); err != nil || k.Field() != "moved" {
		t.Errorf("moved key %v %v", k, err)
	}
	if got := mustGet(t, root, "/list"); got != list {
		t.Errorf("list lost identity")
	}
	copied := mustGet(t, root, "/copied")
	if copied.ID() == x.ID() {
		t.Errorf("copy shares id %s", x.ID())
	}
	if got := mustGet(t, root, "/obj/x"); got != x {
		t.Errorf("copy source lost identity")
	}
}

func TestApplyIDs(t *testing.T) {
	root := mustParse(t, testDoc)
	_, err := Apply(root, []byte(`[{"op":"add","path":"/n","value":[1]}]`), ApplyIDs(tree.Counter("p")))
	if err != nil {
		t.Fatal(err)
	}
	n := mustGet(t, root, "/n")
	if !strings.HasPrefix(n.ID(), "p") {
		t.Errorf("id %q", n.ID())
	}
}

func TestApplyIsAtomic(t *testing.T) {
	root := mustParse(t, testDoc)
	before, _ := root.MarshalJSON()
	a := mustGet(t, root, "/a")
	_, err := Apply(root, []byte(`[{"op":"remove","path":"/a"},{"op":"remove","path":"/nope"}]`))
	if !errors.Is(err, ErrPatch) {
		t.Fatalf("got %v, want ErrPatch", err)
	}
	if !strings.Contains(err.Error(), "op 1 (remove)") {
		t.Errorf("error %q does not name the op", err)
	}
	after, _ := root.MarshalJSON()
	if string(before) != string(after) {
		t.Errorf("tree changed: %s", after)
	}
	if got := mustGet(t, root, "/a"); got != a {
		t.Errorf("node replaced")
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		err   error
	}{
		{"bad json", `{`, ErrPatch},
		{"test fails", `[{"op":"test","path":"/a","value":2}]`, ErrTestFailed},
		{"unknown op", `[{"op":"frob","path":"/a"}]`, ErrBadOp},
		{"add without value", `[{"op":"add","path":"/a"}]`, ErrBadOp},
		{"remove root", `[{"op":"remove","path":""}]`, ErrPatch},
		{"move into child", `[{"op":"move","from":"/obj","path":"/obj/z/0"}]`, ErrPatch},
		{"index range", `[{"op":"add","path":"/list/7","value":1}]`, tree.ErrIndexRange},
		{"add below leaf", `[{"op":"add","path":"/a/b","value":1}]`, ErrPatch},
		{"replace missing", `[{"op":"replace","path":"/q","value":1}]`, tree.ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Apply(mustParse(t, testDoc), []byte(tc.patch))
			if !errors.Is(err, tc.err) {
				t.Errorf("got %v, want %v", err, tc.err)
			}
		})
	}
}

func TestApplyRoot(t *testing.T) {
	root := mustParse(t, testDoc)
	res, err := Apply(root, []byte(`[{"op":"replace","path":"","value":[1]}]`))
	if err != nil {
		t.Fatal(err)
	}
	if res.Type() != tree.ArrayType || res.Parent() != nil {
		t.Errorf("got %s with parent %v", res.Type(), res.Parent())
	}

	root = mustParse(t, testDoc)
	obj := mustGet(t, root, "/obj")
	res, err = Apply(root, []byte(`[{"op":"move","from":"/obj","path":""}]`))
	if err != nil {
		t.Fatal(err)
	}
	if res != obj {
		t.Fatalf("moved root lost identity")
	}
	if _, err := res.Key(); !errors.Is(err, tree.ErrNoParent) {
		t.Errorf("got %v, want ErrNoParent", err)
	}
	if got := mustGet(t, res, "/x"); got.Value() != "y" {
		t.Errorf("got %v", got.Value())
	}
}

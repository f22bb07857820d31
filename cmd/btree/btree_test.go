package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bridge-core/tree-editor/encode"
	"github.com/bridge-core/tree-editor/format"
	"github.com/bridge-core/tree-editor/parse"
	"github.com/bridge-core/tree-editor/query"
	"github.com/bridge-core/tree-editor/tree"

	"github.com/google/go-cmp/cmp"
)

const testDoc = `{"description":{"identifier":"bridge:cow"},"events":[1,{"add":true}]}`

func mustParse(t *testing.T) tree.Node {
	t.Helper()
	n, err := parse.Parse([]byte(testDoc))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestCount(t *testing.T) {
	if got := count(true, false, true); got != 2 {
		t.Errorf("got %d", got)
	}
}

func TestInFormat(t *testing.T) {
	yaml := format.YAMLFormat
	tests := []struct {
		name string
		cfg  *MainConfig
		file string
		want format.Format
	}{
		{"extension yaml", &MainConfig{}, "a.yml", format.YAMLFormat},
		{"extension other", &MainConfig{}, "a.mcmeta", format.JSONFormat},
		{"stdin", &MainConfig{}, "-", format.JSONFormat},
		{"flag", &MainConfig{Y: true}, "a.json", format.YAMLFormat},
		{"explicit", &MainConfig{J: true, InFormat: &yaml}, "a.json", format.YAMLFormat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.inFormat(tc.file); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
	if got := (&MainConfig{Y: true}).outFormat(); got != format.YAMLFormat {
		t.Errorf("out format %s", got)
	}
}

func TestColors(t *testing.T) {
	buf := &bytes.Buffer{}
	if (&MainConfig{}).colors(buf) != nil {
		t.Error("colors for a buffer")
	}
	if (&MainConfig{Color: true}).colors(buf) == nil {
		t.Error("no colors with -color")
	}
}

func TestLookup(t *testing.T) {
	root := mustParse(t)
	for _, p := range []string{"$.events[1].add", ".events[1].add", "/events/1/add"} {
		n, err := lookup(root, p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if n.Value() != true {
			t.Errorf("%s: got %v", p, n.Value())
		}
	}
}

func TestPrepareView(t *testing.T) {
	root := mustParse(t)
	if err := prepareView(root, 1, query.MustCompile(`type == "Number"`)); err != nil {
		t.Fatal(err)
	}
	desc, _ := lookup(root, "$.description")
	if desc.(tree.Container).Open() {
		t.Error("description open")
	}
	if !root.(tree.Container).Open() {
		t.Error("root closed")
	}
	sel := tree.SelectedNodes(root)
	if len(sel) != 1 {
		t.Fatalf("selected %v", sel)
	}
	if p, _ := tree.Path(sel[0]); p != "$.events[0]" {
		t.Errorf("selected %s", p)
	}
}

func TestWriteKeys(t *testing.T) {
	root := mustParse(t)
	buf := &bytes.Buffer{}
	if err := writeKeys(buf, root); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "description\tObject\nevents\tArray\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	ev, _ := lookup(root, "/events")
	buf.Reset()
	if err := writeKeys(buf, ev); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0\tNumber\n1\tObject\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	leaf, _ := lookup(root, "/events/0")
	if err := writeKeys(buf, leaf); err == nil {
		t.Error("keys of a leaf")
	}
}

func TestWriteMatches(t *testing.T) {
	root := mustParse(t)
	ns, err := query.Find(root, query.MustCompile(`depth == 2`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := writeMatches(buf, "a.json:", ns, true, true); err != nil {
		t.Fatal(err)
	}
	want := "a.json:/description/identifier\t\"bridge:cow\"\n" +
		"a.json:/events/0\t1\n" +
		"a.json:/events/1\t{\"add\":true}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPatchDoc(t *testing.T) {
	p := []byte(`[{"op":"replace","path":"/events/0","value":2}]`)

	buf := &bytes.Buffer{}
	cfg := &PatchConfig{MainConfig: &MainConfig{WireOut: true}}
	if err := patchDoc(cfg, buf, mustParse(t), p); err != nil {
		t.Fatal(err)
	}
	want := `{"description":{"identifier":"bridge:cow"},"events":[2,{"add":true}]}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	buf.Reset()
	cfg.Diff = true
	if err := patchDoc(cfg, buf, mustParse(t), p); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !bytes.Contains([]byte(got), []byte("-    1,\n+    2,\n")) {
		t.Errorf("diff:\n%s", got)
	}
}

func TestViewOutline(t *testing.T) {
	root := mustParse(t)
	buf := &bytes.Buffer{}
	cfg := &ViewConfig{MainConfig: &MainConfig{}}
	if err := encode.Outline(root, buf, cfg.outlineOpts(buf)...); err != nil {
		t.Fatal(err)
	}
	want := ` $: {2}
   description: {1}
     identifier: "bridge:cow"
   events: [2]
     [0]: 1
     [1]: {1}
       add: true
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	root = mustParse(t)
	buf.Reset()
	cfg = &ViewConfig{MainConfig: &MainConfig{}, Heights: true}
	if err := prepareView(root, 2, query.MustCompile(`type == "Number"`)); err != nil {
		t.Fatal(err)
	}
	if err := encode.Outline(root, buf, cfg.outlineOpts(buf)...); err != nil {
		t.Fatal(err)
	}
	want = ` $: {2} (114px)
   description: {1} (38px)
     identifier: "bridge:cow" (19px)
   events: [2] (57px)
    *[0]: 1 (19px)
     [1]: {1} ... (19px)
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestCloseOut(t *testing.T) {
	closeErr := errors.New("disk full")
	closed := 0
	cfg := &MainConfig{Out: "out.json", CloseOut: func() error {
		closed++
		return closeErr
	}}
	if err := closeOut(cfg, nil); !errors.Is(err, closeErr) {
		t.Errorf("got %v, want the close error", err)
	}
	if closed != 1 || cfg.CloseOut != nil {
		t.Errorf("closed %d times", closed)
	}

	runErr := errors.New("run failed")
	cfg.CloseOut = func() error { return closeErr }
	if err := closeOut(cfg, runErr); err != runErr {
		t.Errorf("got %v, want the run error", err)
	}
	if err := closeOut(&MainConfig{}, nil); err != nil {
		t.Errorf("got %v without an output file", err)
	}
}

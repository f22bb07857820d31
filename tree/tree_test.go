package tree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustFromAny(t *testing.T, v any) Node {
	t.Helper()
	n, err := FromAny(v)
	if err != nil {
		t.Fatalf("FromAny(%v): %v", v, err)
	}
	return n
}

func mustKey(t *testing.T, n Node) Key {
	t.Helper()
	k, err := n.Key()
	if err != nil {
		t.Fatalf("Key of %s: %v", n.ID(), err)
	}
	return k
}

func TestArrayRemoveShiftsKeys(t *testing.T) {
	arr := mustFromAny(t, []any{10, "a", true}).(*ArrayTree)
	if arr.Len() != 3 {
		t.Fatalf("len %d, want 3", arr.Len())
	}
	for i, c := range arr.All() {
		if k := mustKey(t, c); k != IndexKey(i) {
			t.Errorf("child %d has key %v", i, k)
		}
	}
	second, _ := arr.At(1)
	if _, err := arr.Remove(0); err != nil {
		t.Fatal(err)
	}
	if k := mustKey(t, second); k != IndexKey(0) {
		t.Errorf("former index 1 now has key %v, want 0", k)
	}
}

func TestObjectRoundTripAndKey(t *testing.T) {
	in := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	obj := mustFromAny(t, in).(*ObjectTree)
	if diff := cmp.Diff(in, obj.ToJSON()); diff != "" {
		t.Errorf("ToJSON mismatch (-want +got):\n%s", diff)
	}
	b, ok := obj.Get("b")
	if !ok {
		t.Fatal("no b")
	}
	if _, ok := b.(*ObjectTree); !ok {
		t.Fatalf("b is %T", b)
	}
	if k := mustKey(t, b); k != FieldKey("b") || k.Value() != "b" {
		t.Errorf("key %v, want b", k)
	}
	if diff := cmp.Diff(in, obj.ToJSON()); diff != "" {
		t.Errorf("second ToJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestRootKey(t *testing.T) {
	for _, v := range []any{nil, 1, "s", []any{}, map[string]any{}} {
		n := mustFromAny(t, v)
		_, err := n.Key()
		if !errors.Is(err, ErrNoParent) {
			t.Errorf("%T root: got %v, want ErrNoParent", n, err)
		}
	}
}

func TestDetachedKey(t *testing.T) {
	obj := mustFromAny(t, map[string]any{"x": 1, "y": []any{2}}).(*ObjectTree)
	y, _ := obj.Get("y")
	if err := Detach(y); err != nil {
		t.Fatal(err)
	}
	_, err := y.Key()
	if !errors.Is(err, ErrInconsistentTree) {
		t.Errorf("got %v, want ErrInconsistentTree", err)
	}
	if Attached(y) {
		t.Error("detached node reports attached")
	}
	arr := mustFromAny(t, []any{1, 2}).(*ArrayTree)
	first, _ := arr.Remove(0)
	if _, err := first.Key(); !errors.Is(err, ErrInconsistentTree) {
		t.Errorf("got %v, want ErrInconsistentTree", err)
	}
	func() {
		defer func() {
			r := recover()
			err, _ := r.(error)
			if !errors.Is(err, ErrInconsistentTree) {
				t.Errorf("MustKey panicked with %v", r)
			}
		}()
		MustKey(first)
	}()
}

func TestSwapKeepsIdentity(t *testing.T) {
	arr := mustFromAny(t, []any{"a", "b", "c"}).(*ArrayTree)
	a, _ := arr.At(0)
	c, _ := arr.At(2)
	aID, cID := a.ID(), c.ID()
	if err := arr.Swap(0, 2); err != nil {
		t.Fatal(err)
	}
	if k := mustKey(t, a); k != IndexKey(2) {
		t.Errorf("a key %v, want 2", k)
	}
	if k := mustKey(t, c); k != IndexKey(0) {
		t.Errorf("c key %v, want 0", k)
	}
	if a.ID() != aID || c.ID() != cID {
		t.Error("ids changed by swap")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for range 20 {
		root := mustFromAny(t, map[string]any{"a": []any{1, 2, map[string]any{"b": nil}}})
		Visit(root, func(n Node, isPost bool) (bool, error) {
			if isPost {
				return true, nil
			}
			if seen[n.ID()] {
				t.Fatalf("duplicate id %s", n.ID())
			}
			seen[n.ID()] = true
			if n.ID() != n.ID() {
				t.Fatal("unstable id")
			}
			return true, nil
		})
	}
}

func TestCounterIDs(t *testing.T) {
	ids := Counter("doc")
	root, err := FromAny([]any{true, false}, WithIDs(ids))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{root.ID()}
	for _, c := range root.(*ArrayTree).Children() {
		got = append(got, c.ID())
	}
	want := []string{"doc-1", "doc-2", "doc-3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if l, _ := NewLeaf(1, WithIDs(ids)); l.ID() != "doc-4" {
		t.Errorf("next id %s", l.ID())
	}
}

func TestHeightAndStyles(t *testing.T) {
	root := mustFromAny(t, map[string]any{
		"a": 1,
		"b": []any{1, 2, 3},
	}).(*ObjectTree)
	if h := root.Height(); h != 6*RowHeight {
		t.Errorf("height %d, want %d", h, 6*RowHeight)
	}
	b, _ := root.Get("b")
	b.(Container).SetOpen(false)
	if h := root.Height(); h != 3*RowHeight {
		t.Errorf("height %d, want %d", h, 3*RowHeight)
	}
	want := Styles{ContentVisibility: "auto", ContainIntrinsicSize: "57px"}
	if diff := cmp.Diff(want, root.Styles()); diff != "" {
		t.Errorf("styles (-want +got):\n%s", diff)
	}
	a, _ := root.Get("a")
	if got := a.Styles().ContainIntrinsicSize; got != "19px" {
		t.Errorf("leaf size %s", got)
	}
}

func TestSelection(t *testing.T) {
	root := mustFromAny(t, []any{1, []any{2, 3}}).(*ArrayTree)
	inner, _ := root.At(1)
	three, _ := inner.(*ArrayTree).At(1)
	one, _ := root.At(0)
	three.SetSelected(true)
	one.SetSelected(true)
	got := SelectedNodes(root)
	if len(got) != 2 || got[0] != one || got[1] != three {
		t.Errorf("selected %v", got)
	}
	one.SetSelected(false)
	if got := SelectedNodes(root); len(got) != 1 {
		t.Errorf("selected %v", got)
	}
}

func TestValueIsLive(t *testing.T) {
	root := mustFromAny(t, map[string]any{"a": []any{}}).(*ObjectTree)
	a, _ := root.Get("a")
	arr := a.Value().(*ArrayTree)
	l, _ := NewLeaf("x")
	if err := arr.Append(l); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": []any{"x"}}, root.ToJSON()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if l.Value() != "x" {
		t.Errorf("leaf value %v", l.Value())
	}
}

func TestFromAnyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want error
	}{
		{"struct", struct{}{}, ErrUnsupportedValue},
		{"nested chan", []any{make(chan int)}, ErrUnsupportedValue},
		{"bad number", map[string]any{"a": jsonNumber("1x")}, ErrUnsupportedValue},
		{"duplicate member", Members{{"a", 1}, {"a", 2}}, ErrDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromAny(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMembersOrder(t *testing.T) {
	obj := mustFromAny(t, Members{{"z", 1}, {"a", 2}, {"m", Members{{"y", 1}, {"b", 2}}}}).(*ObjectTree)
	if diff := cmp.Diff([]string{"z", "a", "m"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	d, err := obj.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"z":1,"a":2,"m":{"y":1,"b":2}}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

package tree

import "testing"

func TestCompare(t *testing.T) {
	n := func(v any) Node {
		res, err := FromAny(v)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	tests := []struct {
		name     string
		a, b     Node
		expected int
	}{
		// Type Ranking: Null < Bool < Number < String < Array < Object
		{"Null < Bool", n(nil), n(false), -1},
		{"Bool < Number", n(true), n(1), -1},
		{"Number < String", n(1), n("a"), -1},
		{"String < Array", n("a"), n([]any{}), -1},
		{"Array < Object", n([]any{}), n(map[string]any{}), -1},

		{"false < true", n(false), n(true), -1},
		{"true == true", n(true), n(true), 0},

		{"Int == Float", n(1), n(1.0), 0},
		{"Int == Number", n(int64(100)), n(jsonNumber("1e2")), 0},
		{"Int < Float", n(1), n(1.5), -1},
		{"Number < Number", n(jsonNumber("-2")), n(uint8(0)), -1},

		{"String < String", n("a"), n("b"), -1},

		{"Empty Array == Empty Array", n([]any{}), n([]any{}), 0},
		{"Short Array < Long Array", n([]any{1}), n([]any{1, 2}), -1},
		{"Array Element Comparison", n([]any{1}), n([]any{2}), -1},

		{"Empty Object == Empty Object", n(map[string]any{}), n(map[string]any{}), 0},
		{"Short Object < Long Object", n(map[string]any{"a": 1}), n(map[string]any{"a": 1, "b": 2}), -1},
		{"Object Key Comparison", n(map[string]any{"a": 1}), n(map[string]any{"b": 1}), -1},
		{"Object Value Comparison", n(map[string]any{"a": 1}), n(map[string]any{"a": 2}), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if got := Equal(tt.a, tt.b); got != (tt.expected == 0) {
				t.Errorf("Equal() = %v", got)
			}
		})
	}
}

func TestEqualIgnoresMemberOrder(t *testing.T) {
	a, _ := FromAny(Members{{"x", 1}, {"y", 2}})
	b, _ := FromAny(Members{{"y", 2}, {"x", 1}})
	if !Equal(a, b) {
		t.Error("Equal should ignore member order")
	}
	if Compare(a, b) == 0 {
		t.Error("Compare should not ignore member order")
	}
}

func TestEqualNil(t *testing.T) {
	n, _ := FromAny(nil)
	var nilLeaf *Leaf
	tests := []struct {
		a, b Node
		want bool
	}{
		{nil, nil, true},
		{nil, n, false},
		{n, nil, false},
		{nilLeaf, nil, true},
		{nilLeaf, n, false},
	}
	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%v, %v) = %t", tc.a, tc.b, got)
		}
	}
}

func TestClone(t *testing.T) {
	src, _ := FromAny(Members{{"a", []any{1, Members{{"b", nil}}}}})
	src.(Container).SetOpen(false)
	src.SetSelected(true)
	c := Clone(src, WithIDs(Counter("copy")))
	if c.ID() != "copy-1" {
		t.Errorf("id %s", c.ID())
	}
	if c.Parent() != nil || c.Selected() || c.(Container).Open() {
		t.Error("clone state")
	}
	if !Equal(src, c) {
		t.Error("clone not equal")
	}
	if err := Visit(c, func(n Node, isPost bool) (bool, error) {
		if n == c || isPost {
			return true, nil
		}
		if _, err := n.Key(); err != nil {
			return false, err
		}
		return true, nil
	}); err != nil {
		t.Fatal(err)
	}
}

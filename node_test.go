// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jnode"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		node jnode.Node
		want jnode.Kind
		text string
	}{
		{jnode.Null(), jnode.NullKind, "null"},
		{jnode.Node{}, jnode.NullKind, "null"},
		{jnode.BoolNode(true), jnode.BoolKind, "bool"},
		{jnode.IntNode(3), jnode.IntKind, "int"},
		{jnode.DoubleNode(3.5), jnode.DoubleKind, "double"},
		{jnode.StringNode("x"), jnode.StringKind, "string"},
		{jnode.ArrayNode(), jnode.ArrayKind, "array"},
		{jnode.DictNode(nil), jnode.DictKind, "dict"},
	}
	for _, tc := range tests {
		n := tc.node
		if got := n.Kind(); got != tc.want {
			t.Errorf("Kind: got %v, want %v", got, tc.want)
		}
		if got := n.Kind().String(); got != tc.text {
			t.Errorf("Kind string: got %q, want %q", got, tc.text)
		}
		checks := []struct {
			name string
			got  bool
			want bool
		}{
			{"IsNull", n.IsNull(), tc.want == jnode.NullKind},
			{"IsBool", n.IsBool(), tc.want == jnode.BoolKind},
			{"IsInt", n.IsInt(), tc.want == jnode.IntKind},
			{"IsDouble", n.IsDouble(), tc.want == jnode.IntKind || tc.want == jnode.DoubleKind},
			{"IsPureDouble", n.IsPureDouble(), tc.want == jnode.DoubleKind},
			{"IsString", n.IsString(), tc.want == jnode.StringKind},
			{"IsArray", n.IsArray(), tc.want == jnode.ArrayKind},
			{"IsDict", n.IsDict(), tc.want == jnode.DictKind},
		}
		for _, c := range checks {
			if c.got != c.want {
				t.Errorf("%v: %s got %v, want %v", tc.want, c.name, c.got, c.want)
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	t.Run("Match", func(t *testing.T) {
		if v, err := jnode.IntNode(-5).AsInt(); err != nil || v != -5 {
			t.Errorf("AsInt: got (%v, %v), want (-5, nil)", v, err)
		}
		if v, err := jnode.BoolNode(true).AsBool(); err != nil || !v {
			t.Errorf("AsBool: got (%v, %v), want (true, nil)", v, err)
		}
		if v, err := jnode.DoubleNode(0.25).AsDouble(); err != nil || v != 0.25 {
			t.Errorf("AsDouble: got (%v, %v), want (0.25, nil)", v, err)
		}
		if v, err := jnode.StringNode("stop").AsString(); err != nil || v != "stop" {
			t.Errorf("AsString: got (%q, %v), want (stop, nil)", v, err)
		}
		arr := jnode.ArrayNode(jnode.IntNode(1), jnode.Null())
		if v, err := arr.AsArray(); err != nil || v.Len() != 2 {
			t.Errorf("AsArray: got (%v, %v), want 2 elements", v, err)
		}
		dict := jnode.DictNode(jnode.Dict{"a": jnode.IntNode(1)})
		if v, err := dict.AsDict(); err != nil || v.Len() != 1 {
			t.Errorf("AsDict: got (%v, %v), want 1 entry", v, err)
		}
	})

	t.Run("IntAsDouble", func(t *testing.T) {
		v, err := jnode.IntNode(3).AsDouble()
		if err != nil || v != 3.0 {
			t.Errorf("AsDouble(Int 3): got (%v, %v), want (3, nil)", v, err)
		}
	})

	t.Run("DoubleIsNotInt", func(t *testing.T) {
		if _, err := jnode.DoubleNode(3).AsInt(); err == nil {
			t.Error("AsInt(Double 3): got nil, want error")
		}
	})

	t.Run("Mismatch", func(t *testing.T) {
		n := jnode.StringNode("x")
		_, errInt := n.AsInt()
		_, errBool := n.AsBool()
		_, errDouble := n.AsDouble()
		_, errArray := n.AsArray()
		_, errDict := n.AsDict()
		_, errString := jnode.Null().AsString()
		fails := []struct {
			name string
			want jnode.Kind
			err  error
		}{
			{"AsInt", jnode.IntKind, errInt},
			{"AsBool", jnode.BoolKind, errBool},
			{"AsDouble", jnode.DoubleKind, errDouble},
			{"AsArray", jnode.ArrayKind, errArray},
			{"AsDict", jnode.DictKind, errDict},
			{"AsString", jnode.StringKind, errString},
		}
		for _, tc := range fails {
			if !errors.Is(tc.err, jnode.ErrTypeMismatch) {
				t.Errorf("%s: got %v, want type mismatch", tc.name, tc.err)
				continue
			}
			var te *jnode.TypeError
			if !errors.As(tc.err, &te) {
				t.Errorf("%s: got %T, want *TypeError", tc.name, tc.err)
			} else if te.Want != tc.want {
				t.Errorf("%s: Want is %v, expected %v", tc.name, te.Want, tc.want)
			}
		}
	})
}

func TestEqual(t *testing.T) {
	a := jnode.ArrayNode(jnode.IntNode(1), jnode.StringNode("x"))
	d := jnode.DictNode(jnode.Dict{"k": a, "z": jnode.Null()})
	tests := []struct {
		x, y jnode.Node
		want bool
	}{
		{jnode.Null(), jnode.Node{}, true},
		{jnode.IntNode(1), jnode.IntNode(1), true},
		{jnode.IntNode(1), jnode.DoubleNode(1), false}, // kinds differ
		{jnode.DoubleNode(0.5), jnode.DoubleNode(0.5), true},
		{jnode.StringNode("a"), jnode.StringNode("b"), false},
		{jnode.BoolNode(false), jnode.Null(), false},
		{a, jnode.ArrayNode(jnode.IntNode(1), jnode.StringNode("x")), true},
		{a, jnode.ArrayNode(jnode.StringNode("x"), jnode.IntNode(1)), false}, // order matters
		{a, jnode.ArrayNode(jnode.IntNode(1)), false},
		{jnode.ArrayNode(), jnode.ArrayNode(nil...), true},
		{d, jnode.DictNode(jnode.Dict{"z": jnode.Null(), "k": a}), true},
		{d, jnode.DictNode(jnode.Dict{"k": a}), false},
		{d, jnode.DictNode(jnode.Dict{"k": a, "y": jnode.Null()}), false},
		{d, jnode.DictNode(jnode.Dict{"k": a, "z": jnode.IntNode(0)}), false},
		{jnode.DictNode(nil), jnode.DictNode(jnode.Dict{}), true},
		{jnode.DictNode(nil), jnode.ArrayNode(), false},
	}
	for _, tc := range tests {
		if got := tc.x.Equal(tc.y); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.x, tc.y, got, tc.want)
		}
		if got := tc.y.Equal(tc.x); got != tc.want {
			t.Errorf("Equal(%v, %v): got %v, want %v", tc.y, tc.x, got, tc.want)
		}
	}

	if !jnode.NewDocument(d).Equal(jnode.NewDocument(d)) {
		t.Error("Document.Equal: got false, want true")
	}
}

func TestDict(t *testing.T) {
	d := jnode.Dict{}
	d.Set("stops", jnode.IntNode(1))
	d.Set("buses", jnode.IntNode(2))
	d.Set("routes", jnode.IntNode(3))
	d.Set("buses", jnode.IntNode(4)) // last write wins

	if diff := cmp.Diff([]string{"buses", "routes", "stops"}, d.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	var keys []string
	var vals []int
	for k, v := range d.All() {
		keys = append(keys, k)
		i, _ := v.AsInt()
		vals = append(vals, i)
	}
	if diff := cmp.Diff([]string{"buses", "routes", "stops"}, keys); diff != "" {
		t.Errorf("All keys (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4, 3, 1}, vals); diff != "" {
		t.Errorf("All values (-want, +got):\n%s", diff)
	}
	if _, ok := d.Get("nonesuch"); ok {
		t.Error("Get(nonesuch): got true, want false")
	}
}

func TestFrom(t *testing.T) {
	tests := []struct {
		input any
		want  jnode.Node
	}{
		{nil, jnode.Null()},
		{true, jnode.BoolNode(true)},
		{17, jnode.IntNode(17)},
		{int64(-3), jnode.IntNode(-3)},
		{2.5, jnode.DoubleNode(2.5)},
		{float32(0.5), jnode.DoubleNode(0.5)},
		{"bus", jnode.StringNode("bus")},
		{jnode.IntNode(9), jnode.IntNode(9)},
		{[]jnode.Node{jnode.IntNode(1)}, jnode.ArrayNode(jnode.IntNode(1))},
		{jnode.Array{}, jnode.ArrayNode()},
		{map[string]jnode.Node{"a": jnode.Null()}, jnode.DictNode(jnode.Dict{"a": jnode.Null()})},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, jnode.From(tc.input)); diff != "" {
			t.Errorf("From(%#v) (-want, +got):\n%s", tc.input, diff)
		}
	}

	mtest.MustPanic(t, func() { jnode.From([]bool{true}) })
	mtest.MustPanic(t, func() { jnode.From(func() {}) })
	mtest.MustPanic(t, func() { jnode.From(uint8(1)) })
}

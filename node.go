// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Kind identifies which variant a Node holds.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind   Kind = iota // null
	BoolKind               // true or false
	IntKind                // integer with no fraction or exponent
	DoubleKind             // number with fraction and/or exponent
	StringKind             // quoted string
	ArrayKind              // [ ... ]
	DictKind               // { ... }
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	IntKind:    "int",
	DoubleKind: "double",
	StringKind: "string",
	ArrayKind:  "array",
	DictKind:   "dict",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// An Array is an ordered sequence of nodes.
type Array []Node

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// All returns an iterator over the index and value of each element of a.
func (a Array) All() iter.Seq2[int, Node] { return slices.All(a) }

// A Dict is a collection of nodes indexed by unique string keys.
// Iteration over a Dict with Keys or All is in ascending key order.
type Dict map[string]Node

// Len reports the number of entries in d.
func (d Dict) Len() int { return len(d) }

// Get returns the value for key and reports whether it was present.
func (d Dict) Get(key string) (Node, bool) { n, ok := d[key]; return n, ok }

// Set sets the value for key, replacing any previous value.
func (d Dict) Set(key string, n Node) { d[key] = n }

// Keys returns the keys of d in ascending order.
func (d Dict) Keys() []string { return slices.Sorted(maps.Keys(d)) }

// All returns an iterator over the entries of d in ascending key order.
func (d Dict) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, key := range d.Keys() {
			if !yield(key, d[key]) {
				return
			}
		}
	}
}

// A Node is a single JSON value. It holds exactly one of the variants named
// by Kind. The zero value is null.
type Node struct {
	kind Kind
	b    bool
	i    int
	d    float64
	s    string
	arr  Array
	dict Dict
}

// Null returns a null node.
func Null() Node { return Node{} }

// BoolNode returns a node holding v.
func BoolNode(v bool) Node { return Node{kind: BoolKind, b: v} }

// IntNode returns a node holding v.
func IntNode(v int) Node { return Node{kind: IntKind, i: v} }

// DoubleNode returns a node holding v.
func DoubleNode(v float64) Node { return Node{kind: DoubleKind, d: v} }

// StringNode returns a node holding v.
func StringNode(v string) Node { return Node{kind: StringKind, s: v} }

// ArrayNode returns an array node with the given elements.
// A nil argument list yields an empty array.
func ArrayNode(vs ...Node) Node {
	if vs == nil {
		vs = Array{}
	}
	return Node{kind: ArrayKind, arr: vs}
}

// DictNode returns a dict node with the contents of d.
// A nil d yields an empty dict.
func DictNode(d Dict) Node {
	if d == nil {
		d = Dict{}
	}
	return Node{kind: DictKind, dict: d}
}

// From converts v into a Node. The value must be nil, a bool, an integer
// type, a float type, a string, a Node, an Array, a []Node, a Dict, or a
// map[string]Node. From panics if v does not have one of those types.
func From(v any) Node {
	switch t := v.(type) {
	case nil:
		return Null()
	case Node:
		return t
	case bool:
		return BoolNode(t)
	case int:
		return IntNode(t)
	case int32:
		return IntNode(int(t))
	case int64:
		return IntNode(int(t))
	case float32:
		return DoubleNode(float64(t))
	case float64:
		return DoubleNode(t)
	case string:
		return StringNode(t)
	case Array:
		return ArrayNode(t...)
	case []Node:
		return ArrayNode(t...)
	case Dict:
		return DictNode(t)
	case map[string]Node:
		return DictNode(t)
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}

// Kind reports which variant n holds.
func (n Node) Kind() Kind { return n.kind }

func (n Node) IsNull() bool   { return n.kind == NullKind }
func (n Node) IsBool() bool   { return n.kind == BoolKind }
func (n Node) IsInt() bool    { return n.kind == IntKind }
func (n Node) IsString() bool { return n.kind == StringKind }
func (n Node) IsArray() bool  { return n.kind == ArrayKind }
func (n Node) IsDict() bool   { return n.kind == DictKind }

// IsDouble reports whether n holds a number, either an Int or a Double.
func (n Node) IsDouble() bool { return n.kind == DoubleKind || n.kind == IntKind }

// IsPureDouble reports whether n holds a Double.
func (n Node) IsPureDouble() bool { return n.kind == DoubleKind }

// AsInt returns the integer value of n, or a *TypeError.
func (n Node) AsInt() (int, error) {
	if n.kind != IntKind {
		return 0, n.mismatch(IntKind)
	}
	return n.i, nil
}

// AsBool returns the Boolean value of n, or a *TypeError.
func (n Node) AsBool() (bool, error) {
	if n.kind != BoolKind {
		return false, n.mismatch(BoolKind)
	}
	return n.b, nil
}

// AsDouble returns the numeric value of n. An Int is widened to float64.
// Any other variant reports a *TypeError.
func (n Node) AsDouble() (float64, error) {
	switch n.kind {
	case DoubleKind:
		return n.d, nil
	case IntKind:
		return float64(n.i), nil
	}
	return 0, n.mismatch(DoubleKind)
}

// AsString returns the string value of n, or a *TypeError.
func (n Node) AsString() (string, error) {
	if n.kind != StringKind {
		return "", n.mismatch(StringKind)
	}
	return n.s, nil
}

// AsArray returns the elements of n, or a *TypeError.
// The result shares storage with n.
func (n Node) AsArray() (Array, error) {
	if n.kind != ArrayKind {
		return nil, n.mismatch(ArrayKind)
	}
	return n.arr, nil
}

// AsDict returns the entries of n, or a *TypeError.
// The result shares storage with n.
func (n Node) AsDict() (Dict, error) {
	if n.kind != DictKind {
		return nil, n.mismatch(DictKind)
	}
	return n.dict, nil
}

func (n Node) mismatch(want Kind) error { return &TypeError{Want: want, Got: n.kind} }

// Equal reports whether n and m are structurally equal: they hold the same
// variant, and the same value. Arrays compare element-wise in order, and
// dicts compare by key set and per-key value.
func (n Node) Equal(m Node) bool {
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case NullKind:
		return true
	case BoolKind:
		return n.b == m.b
	case IntKind:
		return n.i == m.i
	case DoubleKind:
		return n.d == m.d
	case StringKind:
		return n.s == m.s
	case ArrayKind:
		return slices.EqualFunc(n.arr, m.arr, Node.Equal)
	case DictKind:
		return maps.EqualFunc(n.dict, m.dict, Node.Equal)
	default:
		panic(fmt.Sprintf("unknown kind %v", n.kind))
	}
}

// A Document is a read-only wrapper around a single root node.
type Document struct {
	root Node
}

// NewDocument returns a document with the given root.
func NewDocument(root Node) *Document { return &Document{root: root} }

// Root returns the root node of d.
func (d *Document) Root() Node { return d.root }

// Equal reports whether d and o have structurally equal roots.
func (d *Document) Equal(o *Document) bool { return d.root.Equal(o.root) }

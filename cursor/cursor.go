// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a JSON node.
package cursor

import (
	"fmt"

	"github.com/creachadair/jnode"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method.  This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path(v jnode.Node, path ...any) (jnode.Node, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return jnode.Node{}, err
	}
	return c.Value(), nil
}

// Scalar is the set of Go types that Get can extract from a node.
type Scalar interface {
	bool | int | float64 | string
}

// Get traverses path from v as Path does, and returns the scalar value of the
// node reached. A float64 result accepts both int and double nodes.
func Get[T Scalar](v jnode.Node, path ...any) (T, error) {
	var zero T
	n, err := Path(v, path...)
	if err != nil {
		return zero, err
	}
	var out any
	switch any(zero).(type) {
	case bool:
		out, err = n.AsBool()
	case int:
		out, err = n.AsInt()
	case float64:
		out, err = n.AsDouble()
	case string:
		out, err = n.AsString()
	}
	if err != nil {
		return zero, fmt.Errorf("at %v: %w", path, err)
	}
	return out.(T), nil
}

// A Cursor is a pointer that navigates into the structure of a jnode.Node.
type Cursor struct {
	org jnode.Node
	stk []jnode.Node
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin jnode.Node) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() jnode.Node { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() jnode.Node {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []jnode.Node {
	return append([]jnode.Node{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting dict keys),
// integers (denoting offsets into arrays or dicts), or functions (see below).
// If the path cannot be completely consumed, traversal stops at the last value
// reached and an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be a dict, and
// the string selects the value of that key.
//
// If a path element is an integer, the corresponding value must be an array
// or dict. For an array the integer is an element offset; for a dict it is an
// offset into the entries in ascending key order. Negative indices count
// backward from the end (-1 is last, -2 second last).
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(jnode.Node) (jnode.Node, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			d, err := cur.AsDict()
			if err != nil {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), elt)
			}
			v, ok := d.Get(t)
			if !ok {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			switch cur.Kind() {
			case jnode.ArrayKind:
				a, _ := cur.AsArray()
				i, ok := fixArrayBound(len(a), t)
				if !ok {
					return c.setErrorf("array index %d out of bounds (n=%d)", i, len(a))
				}
				cur = c.push(a[i])
			case jnode.DictKind:
				d, _ := cur.AsDict()
				keys := d.Keys()
				i, ok := fixArrayBound(len(keys), t)
				if !ok {
					return c.setErrorf("dict index %d out of bounds (n=%d)", i, len(keys))
				}
				cur = c.push(d[keys[i]])
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), elt)
			}

		case func(jnode.Node) (jnode.Node, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v jnode.Node) jnode.Node { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

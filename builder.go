// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jnode

import "fmt"

// builderState is the protocol state of one frame of a Builder.
type builderState byte

const (
	stateInit  builderState = iota // nothing built yet
	stateValue                     // one complete top-level value
	stateDict                      // inside an open dict
	stateArray                     // inside an open array
)

var stateStr = [...]string{
	stateInit:  "Init",
	stateValue: "Value",
	stateDict:  "Dict",
	stateArray: "Array",
}

func (s builderState) String() string { return stateStr[s] }

// A frame is one entry of the builder stack: the outer context, or an open
// container together with its partially-built node.
type frame struct {
	state  builderState
	node   Node
	key    string // pending dict key, valid if hasKey
	hasKey bool
}

// A Builder constructs a Node through a checked sequence of calls. Containers
// are opened with StartDict or StartArray and closed with the matching EndDict
// or EndArray; dict members are added by a Key followed by a value.
//
// The Builder validates every call against its current state. The first
// illegal call is recorded as a *ProtocolError, and all later calls have no
// effect; Err reports the error, and Build returns it.
//
// The methods of Builder return narrowed handles (DictItemContext, KeyContext,
// ArrayItemContext) that only offer the calls that can be legal next. The
// handles are a convenience: the Builder enforces the same rules when it is
// called directly.
//
// A zero Builder is ready for use. A Builder is single-use: once Build
// succeeds, all further calls report ErrBuilt. It is not safe for concurrent
// use by multiple goroutines.
type Builder struct {
	stk   []frame // stk[0] is the outer context
	err   error
	built bool
}

// NewBuilder returns a new empty Builder.
func NewBuilder() *Builder { return new(Builder) }

// Err returns the first error recorded by b, or nil.
func (b *Builder) Err() error { return b.err }

// Value adds n as the next value. At the top level, n becomes the result; in
// a dict, n becomes the value of the pending key; in an array, n is appended.
func (b *Builder) Value(n Node) *Builder {
	if b.ready() {
		b.setErr(b.value(n))
	}
	return b
}

// StartDict opens a new dict in the position a value would occupy.
func (b *Builder) StartDict() DictItemContext {
	if b.ready() {
		b.setErr(b.open("StartDict", stateDict))
	}
	return DictItemContext{b}
}

// StartArray opens a new array in the position a value would occupy.
func (b *Builder) StartArray() ArrayItemContext {
	if b.ready() {
		b.setErr(b.open("StartArray", stateArray))
	}
	return ArrayItemContext{b}
}

// Key records key as the pending key of the innermost open dict.
// If key is already present, its value is replaced when the new value arrives.
func (b *Builder) Key(key string) KeyContext {
	if b.ready() {
		b.setErr(b.key(key))
	}
	return KeyContext{b}
}

// EndDict closes the innermost open dict and delivers it to the enclosing
// context.
func (b *Builder) EndDict() *Builder {
	if b.ready() {
		b.setErr(b.close("EndDict", stateDict))
	}
	return b
}

// EndArray closes the innermost open array and delivers it to the enclosing
// context.
func (b *Builder) EndArray() *Builder {
	if b.ready() {
		b.setErr(b.close("EndArray", stateArray))
	}
	return b
}

// Build returns the completed root node. It reports an error if any earlier
// call was illegal, if a container is still open, or if nothing was built.
func (b *Builder) Build() (Node, error) {
	if !b.ready() {
		return Node{}, b.err
	}
	root, err := b.build()
	if err != nil {
		b.setErr(err)
		return Node{}, err
	}
	b.stk, b.built = nil, true
	return root, nil
}

// ready reports whether b can accept another call, initializing the outer
// frame of a zero Builder.
func (b *Builder) ready() bool {
	if b.built && b.err == nil {
		b.err = ErrBuilt
	}
	if b.err != nil {
		return false
	}
	if len(b.stk) == 0 {
		b.push(frame{state: stateInit})
	}
	return true
}

func (b *Builder) setErr(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

func (b *Builder) top() *frame { return &b.stk[len(b.stk)-1] }

func (b *Builder) push(f frame) { b.stk = append(b.stk, f) }

func (b *Builder) pop() frame {
	last := *b.top()
	b.stk = b.stk[:len(b.stk)-1]
	return last
}

func (b *Builder) value(n Node) error {
	switch f := b.top(); f.state {
	case stateInit:
		f.state, f.node = stateValue, n
	case stateDict:
		if !f.hasKey {
			return violation("Value", f, "no key is pending")
		}
		f.node.dict[f.key] = n
		f.key, f.hasKey = "", false
	case stateArray:
		f.node.arr = append(f.node.arr, n)
	default:
		return violation("Value", f, "")
	}
	return nil
}

// open pushes a new frame for an empty container of the given state.
// The enclosing frame is not modified until the container is delivered.
func (b *Builder) open(op string, st builderState) error {
	switch f := b.top(); f.state {
	case stateInit, stateArray:
		// OK
	case stateDict:
		if !f.hasKey {
			return violation(op, f, "no key is pending")
		}
	default:
		return violation(op, f, "")
	}
	nf := frame{state: st}
	if st == stateDict {
		nf.node = DictNode(nil)
	} else {
		nf.node = ArrayNode()
	}
	b.push(nf)
	return nil
}

// close pops the innermost frame, which must have state want, and delivers
// its node to the enclosing frame.
func (b *Builder) close(op string, want builderState) error {
	f := b.top()
	if f.state != want {
		return violation(op, f, "")
	} else if f.hasKey {
		return violation(op, f, fmt.Sprintf("key %q has no value", f.key))
	}
	done := b.pop()
	return b.deliver(done.node)
}

// deliver stores the node of a just-closed container into the frame atop the
// stack.
func (b *Builder) deliver(n Node) error {
	switch f := b.top(); f.state {
	case stateInit:
		f.state, f.node = stateValue, n
	case stateDict:
		if !f.hasKey {
			return violation("deliver", f, "no key is pending")
		}
		f.node.dict[f.key] = n
		f.key, f.hasKey = "", false
	case stateArray:
		f.node.arr = append(f.node.arr, n)
	default:
		return violation("deliver", f, "")
	}
	return nil
}

func (b *Builder) key(key string) error {
	f := b.top()
	if f.state != stateDict {
		return violation("Key", f, "")
	} else if f.hasKey {
		return violation("Key", f, fmt.Sprintf("key %q is already pending", f.key))
	}
	f.key, f.hasKey = key, true
	return nil
}

func (b *Builder) build() (Node, error) {
	f := b.top()
	if n := len(b.stk) - 1; n > 0 {
		return Node{}, violation("Build", f, fmt.Sprintf("%d container(s) still open", n))
	} else if f.state != stateValue {
		return Node{}, violation("Build", f, "no value has been built")
	}
	return f.node, nil
}

func violation(op string, f *frame, hint string) error {
	return &ProtocolError{Op: op, State: f.state.String(), Hint: hint}
}

// DictItemContext is the handle returned where the next legal call is a Key
// or the end of the dict.
type DictItemContext struct{ b *Builder }

// Key records key as the pending key of the dict.
func (c DictItemContext) Key(key string) KeyContext { return c.b.Key(key) }

// EndDict closes the dict.
func (c DictItemContext) EndDict() *Builder { return c.b.EndDict() }

// Err returns the first error recorded by the underlying Builder.
func (c DictItemContext) Err() error { return c.b.Err() }

// KeyContext is the handle returned after a Key, where the next legal call
// supplies the value for that key.
type KeyContext struct{ b *Builder }

// Value sets n as the value of the pending key.
func (c KeyContext) Value(n Node) DictItemContext { c.b.Value(n); return DictItemContext(c) }

// StartDict opens a dict as the value of the pending key.
func (c KeyContext) StartDict() DictItemContext { return c.b.StartDict() }

// StartArray opens an array as the value of the pending key.
func (c KeyContext) StartArray() ArrayItemContext { return c.b.StartArray() }

// Err returns the first error recorded by the underlying Builder.
func (c KeyContext) Err() error { return c.b.Err() }

// ArrayItemContext is the handle returned inside an array, where the next
// legal call adds an element or ends the array.
type ArrayItemContext struct{ b *Builder }

// Value appends n to the array.
func (c ArrayItemContext) Value(n Node) ArrayItemContext { c.b.Value(n); return c }

// StartDict opens a dict as the next element of the array.
func (c ArrayItemContext) StartDict() DictItemContext { return c.b.StartDict() }

// StartArray opens an array as the next element of the array.
func (c ArrayItemContext) StartArray() ArrayItemContext { return c.b.StartArray() }

// EndArray closes the array.
func (c ArrayItemContext) EndArray() *Builder { return c.b.EndArray() }

// Err returns the first error recorded by the underlying Builder.
func (c ArrayItemContext) Err() error { return c.b.Err() }

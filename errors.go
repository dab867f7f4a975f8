// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch matches any *TypeError under errors.Is.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrProtocol matches any *ProtocolError under errors.Is.
	ErrProtocol = errors.New("builder protocol violation")

	// ErrBuilt is reported by a Builder that is used after Build succeeded.
	ErrBuilt = errors.New("builder already built")
)

// ParsingError is the concrete type of errors reported by the parser.
type ParsingError struct {
	Offset   int     // byte offset of the error in the input
	Location LineCol // line and column of the error in the input
	Message  string

	err error
}

// Error satisfies the error interface.
func (p *ParsingError) Error() string {
	return fmt.Sprintf("at %s: %s", p.Location, p.Message)
}

// Unwrap supports error wrapping.
func (p *ParsingError) Unwrap() error { return p.err }

// TypeError is the concrete type of errors reported by the AsX accessors of a
// Node that does not hold the requested variant.
type TypeError struct {
	Want, Got Kind
}

// Error satisfies the error interface.
func (t *TypeError) Error() string {
	return fmt.Sprintf("value is %v, not %v", t.Got, t.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (t *TypeError) Is(target error) bool { return target == ErrTypeMismatch }

// ProtocolError is the concrete type of errors reported by a Builder when an
// operation is not permitted in its current state.
type ProtocolError struct {
	Op    string // the operation attempted, e.g. "EndDict"
	State string // the state the builder was in
	Hint  string // optional detail
}

// Error satisfies the error interface.
func (p *ProtocolError) Error() string {
	msg := fmt.Sprintf("%s called in %s state", p.Op, p.State)
	if p.Hint != "" {
		msg += ": " + p.Hint
	}
	return msg
}

// Is reports whether target is ErrProtocol.
func (p *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of string values.
//
// The escaping policy is narrow: the sequences \r, \n, \\, \t,
// and \" are decoded, and a backslash before any other byte is dropped so
// that byte is taken literally. Unicode escapes are not interpreted.
package escape

import (
	"errors"

	"go4.org/mem"
)

// Unescape decodes the body of a quoted string. The input must have the
// enclosing double quotation marks already removed.
//
// Unescape reports an error if src ends with an incomplete escape sequence.
func Unescape(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}
	for {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		dec = append(dec, Decode(src.At(0)))
		src = src.SliceFrom(1)

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
}

// Decode returns the byte denoted by a backslash followed by b.
func Decode(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		// Covers \\ and \" as well as the bytes with no special meaning.
		return b
	}
}

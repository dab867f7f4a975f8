// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

// quoteEsc maps the bytes that Quote escapes to the letter that follows the
// backslash. Zero entries are emitted verbatim.
var quoteEsc = [...]byte{
	'\n': 'n',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

// Quote encodes a string for inclusion between double quotation marks. Only
// carriage return, line feed, backslash, and the double quotation mark are
// escaped; every other byte, including other control characters, is copied
// verbatim. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(quoteEsc) && quoteEsc[b] != 0 {
			buf = append(buf, '\\', quoteEsc[b])
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}

// NeedsQuote reports whether Quote would alter src.
func NeedsQuote(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); int(b) < len(quoteEsc) && quoteEsc[b] != 0 {
			return true
		}
	}
	return false
}

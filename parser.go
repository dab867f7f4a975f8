// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jnode/internal/escape"
	"go4.org/mem"
)

// A Parser carries the settings for parsing JSON text into nodes.
// A zero value is ready for use with default settings.
type Parser struct {
	comments bool // allow JWCC comments and trailing commas
}

// AllowComments configures the parser to accept (true) or reject (false)
// comments and trailing commas in the input. Comments are a non-standard
// extension: "//" runs to the end of the line, and "/* ... */" may span
// lines. Either may appear wherever whitespace is allowed. A single comma is
// also permitted before the closing bracket of an array or dict. The grammar
// is otherwise unchanged.
func (p *Parser) AllowComments(ok bool) { p.comments = ok }

// Load parses a single document from r. The input must contain exactly one
// value, optionally surrounded by whitespace; any other input after the value
// is reported as an error. Use LoadNode to read a value without examining the
// rest of the input. In case of error, the returned error has concrete type
// [*ParsingError].
func (p Parser) Load(r io.Reader) (*Document, error) {
	root, err := newParser(r, p.comments).load(true)
	if err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// Load parses a single document from r with default settings.
func Load(r io.Reader) (*Document, error) { return Parser{}.Load(r) }

// LoadString parses a single document from s with default settings.
func LoadString(s string) (*Document, error) { return Load(strings.NewReader(s)) }

// LoadBytes parses a single document from data with default settings.
func LoadBytes(data []byte) (*Document, error) { return Load(bytes.NewReader(data)) }

// LoadNode parses one value from the front of r. Unlike Load, input after the
// value is not examined. If r is a *bufio.Reader, it is used directly, and
// remains positioned just after the value so that further values may be read.
//
// If r contains only whitespace, LoadNode reports a *ParsingError that wraps
// io.EOF.
func LoadNode(r io.Reader) (Node, error) { return newParser(r, false).load(false) }

// parser is a recursive-descent parser over a byte stream. Grammar violations
// are reported by panicking with a *ParsingError, which load recovers.
type parser struct {
	r        *bufio.Reader
	pos      position
	buf      []byte // scratch space for the current token
	comments bool   // skip comments, allow trailing commas
}

func newParser(r io.Reader, comments bool) *parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &parser{r: br, comments: comments}
}

func (p *parser) load(single bool) (_ Node, err error) {
	defer p.recoverParseError(&err)

	n := p.parseNode()
	if single {
		p.skipSpace()
		if ch, ok := p.peek(); ok {
			p.failf("extra input after value: %q", ch)
		}
	}
	return n, nil
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if err, ok := perr.(*ParsingError); ok {
			*errp = err
			return
		}
		panic(perr)
	}
}

// parseNode consumes a single value of any type.
func (p *parser) parseNode() Node {
	p.skipSpace()
	ch, ok := p.peek()
	if !ok {
		p.failErr(io.EOF, "unexpected end of input")
	}
	switch ch {
	case '[':
		p.next()
		return p.parseArray()
	case '{':
		p.next()
		return p.parseDict()
	case '"':
		p.next()
		return StringNode(p.parseString())
	case 'n':
		p.parseLiteral("null")
		return Null()
	case 't':
		p.parseLiteral("true")
		return BoolNode(true)
	case 'f':
		p.parseLiteral("false")
		return BoolNode(false)
	}
	if isNumStart(ch) {
		return p.parseNumber()
	}
	p.failf("unexpected %q", ch)
	panic("unreachable")
}

// parseArray consumes zero or more comma-separated array values.
// Precondition: "[" has been consumed.
func (p *parser) parseArray() Node {
	arr := Array{}
	p.skipSpace()
	switch ch, ok := p.peek(); {
	case !ok:
		p.failf("unterminated array: expected \"]\", got end of input")
	case ch == ',':
		p.failf(`unexpected "," after "["`)
	case ch == ']':
		p.next()
		return Node{kind: ArrayKind, arr: arr}
	}
	for {
		arr = append(arr, p.parseNode())
		if p.delim("array", ',', ']') == ']' || p.trailingComma(']') {
			return Node{kind: ArrayKind, arr: arr}
		}
	}
}

// parseDict consumes zero or more "key": value members.
// Precondition: "{" has been consumed.
func (p *parser) parseDict() Node {
	dict := Dict{}
	p.skipSpace()
	if ch, ok := p.peek(); ok && ch == '}' {
		p.next()
		return Node{kind: DictKind, dict: dict}
	}
	for {
		// Parse a single member: "key": value
		p.skipSpace()
		ch, ok := p.next()
		if !ok {
			p.failf("unterminated dict: expected \"}\", got end of input")
		} else if ch != '"' {
			p.failf("expected string key, got %q", ch)
		}
		key := p.parseString()
		p.skipSpace()
		if ch, ok := p.next(); !ok || ch != ':' {
			p.failf("missing \":\" after key %q", key)
		}
		dict[key] = p.parseNode()

		// Check whether we have more members (",") or are done ("}").
		if p.delim("dict", ',', '}') == '}' || p.trailingComma('}') {
			return Node{kind: DictKind, dict: dict}
		}
	}
}

// parseString consumes the body of a string up to its closing quote, and
// returns its decoded value.
// Precondition: the opening quote has been consumed.
func (p *parser) parseString() string {
	p.buf = p.buf[:0]
	for {
		ch, ok := p.next()
		if !ok {
			p.failf("unterminated string: expected '\"', got end of input")
		}
		switch ch {
		case '"':
			dec, err := escape.Unescape(mem.B(p.buf))
			if err != nil {
				p.failErr(err, "invalid string: %v", err)
			}
			return string(dec)
		case '\\':
			esc, ok := p.next()
			if !ok {
				p.failf("unterminated string: incomplete escape at end of input")
			}
			p.buf = append(p.buf, ch, esc)
		default:
			p.buf = append(p.buf, ch)
		}
	}
}

// parseLiteral consumes the exact text of word.
func (p *parser) parseLiteral(word string) {
	p.buf = p.buf[:0]
	for range len(word) {
		ch, ok := p.next()
		if !ok {
			p.failf("incomplete literal %q, want %q", p.buf, word)
		}
		p.buf = append(p.buf, ch)
	}
	if got := mem.B(p.buf); !got.EqualString(word) {
		p.failf("unknown literal %q, want %q", got.StringCopy(), word)
	}
}

// parseNumber consumes an integer or floating-point number. The result is an
// Int only if the text has neither a fractional part nor an exponent.
func (p *parser) parseNumber() Node {
	p.buf = p.buf[:0]
	if ch, _ := p.peek(); ch == '-' {
		p.next()
		p.buf = append(p.buf, ch)
	}
	if p.readDigits() == 0 {
		p.buf = append(p.buf, '0') // "-" alone reads as zero
	}

	var isFloat bool
	if ch, ok := p.peek(); ok && ch == '.' {
		p.next()
		p.buf = append(p.buf, ch)
		if p.readDigits() == 0 {
			p.failf("empty fractional part after \".\"")
		}
		isFloat = true
	}
	if ch, ok := p.peek(); ok && (ch == 'e' || ch == 'E') {
		p.next()
		p.buf = append(p.buf, ch)
		if sign, ok := p.peek(); ok && (sign == '+' || sign == '-') {
			p.next()
			p.buf = append(p.buf, sign)
		}
		if p.readDigits() == 0 {
			p.buf = append(p.buf, '0') // an empty exponent is zero
		}
		isFloat = true
	}

	text := mem.B(p.buf)
	if !isFloat {
		v, err := mem.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			p.failErr(err, "integer %s out of range", text.StringCopy())
		}
		return IntNode(int(v))
	}
	v, err := mem.ParseFloat(text, 64)
	if err != nil {
		p.failErr(err, "number %s out of range", text.StringCopy())
	}
	return DoubleNode(v)
}

// readDigits consumes a run of decimal digits into p.buf and reports how many
// were read.
func (p *parser) readDigits() int {
	var nr int
	for {
		ch, ok := p.peek()
		if !ok || !isDigit(ch) {
			return nr
		}
		p.next()
		p.buf = append(p.buf, ch)
		nr++
	}
}

// delim skips whitespace and consumes one of the bytes in want, which
// separate or terminate the elements of a container named by what.
func (p *parser) delim(what string, want ...byte) byte {
	p.skipSpace()
	ch, ok := p.next()
	if !ok {
		p.failf("unterminated %s: expected %s, got end of input", what, delimLabel(want))
	} else if !slices.Contains(want, ch) {
		p.failf("expected %s in %s, got %q", delimLabel(want), what, ch)
	}
	return ch
}

// trailingComma reports whether a comma just consumed by delim is followed
// by closer, and if so consumes it. Trailing commas are only permitted when
// comments are enabled.
func (p *parser) trailingComma(closer byte) bool {
	if !p.comments {
		return false
	}
	p.skipSpace()
	if ch, ok := p.peek(); ok && ch == closer {
		p.next()
		return true
	}
	return false
}

// skipSpace consumes whitespace, and comments if they are enabled.
func (p *parser) skipSpace() {
	for {
		ch, ok := p.peek()
		switch {
		case ok && isSpace(ch):
			p.next()
		case ok && ch == '/' && p.comments:
			p.skipComment()
		default:
			return
		}
	}
}

// skipComment consumes a line or block comment.
// Precondition: the next byte is "/".
func (p *parser) skipComment() {
	p.next()
	ch, ok := p.next()
	switch {
	case !ok:
		p.failf("incomplete comment at end of input")
	case ch == '/':
		for {
			if c, ok := p.next(); !ok || c == '\n' {
				return
			}
		}
	case ch == '*':
		var star bool
		for {
			c, ok := p.next()
			if !ok {
				p.failf("unterminated comment: expected \"*/\", got end of input")
			} else if star && c == '/' {
				return
			}
			star = c == '*'
		}
	default:
		p.failf("invalid comment: unexpected %q after '/'", ch)
	}
}

// peek returns the next byte of input without consuming it. It reports false
// at the end of the input.
func (p *parser) peek() (byte, bool) {
	bs, err := p.r.Peek(1)
	if err != nil {
		p.checkRead(err)
		return 0, false
	}
	return bs[0], true
}

// next consumes and returns the next byte of input. It reports false at the
// end of the input.
func (p *parser) next() (byte, bool) {
	ch, err := p.r.ReadByte()
	if err != nil {
		p.checkRead(err)
		return 0, false
	}
	p.pos.advance(ch)
	return ch, true
}

// checkRead fails for any read error other than io.EOF.
func (p *parser) checkRead(err error) {
	if err != io.EOF {
		p.failErr(err, "read error: %v", err)
	}
}

func (p *parser) failErr(err error, msg string, args ...any) {
	panic(&ParsingError{
		Offset:   p.pos.offset,
		Location: p.pos.lineCol(),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (p *parser) failf(msg string, args ...any) { p.failErr(nil, msg, args...) }

// delimLabel makes a human-readable summary string for the given delimiters.
func delimLabel(want []byte) string {
	ss := make([]string, len(want))
	for i, b := range want {
		ss[i] = strconv.Quote(string(b))
	}
	return strings.Join(ss, " or ")
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

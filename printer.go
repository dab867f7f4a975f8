// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jnode

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jnode/internal/escape"
	"go4.org/mem"
)

// DefaultIndent is the number of spaces per nesting level used by a Printer
// whose Indent field is zero.
const DefaultIndent = 4

// A Printer carries the settings for pretty-printing nodes.
// A zero value is ready for use with default settings.
type Printer struct {
	// Indent is the number of spaces added for each level of nesting.
	// If Indent <= 0, DefaultIndent is used.
	Indent int
}

func (p Printer) step() string {
	if p.Indent <= 0 {
		return strings.Repeat(" ", DefaultIndent)
	}
	return strings.Repeat(" ", p.Indent)
}

// Print renders the root of doc to w with default settings.
func Print(w io.Writer, doc *Document) error { return Printer{}.Print(w, doc) }

// PrintNode renders n to w with default settings.
func PrintNode(w io.Writer, n Node) error { return Printer{}.PrintNode(w, n) }

// Print renders the root of doc to w using the settings from p.
func (p Printer) Print(w io.Writer, doc *Document) error { return p.PrintNode(w, doc.Root()) }

// PrintNode renders n to w using the settings from p. It reports an error if
// n contains a NaN or infinite number, which have no text representation.
func (p Printer) PrintNode(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	if err := p.printNode(bw, n, "", p.step()); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the pretty-printed text of n with default settings.
// If n cannot be printed, String returns an empty string.
func (n Node) String() string {
	var buf bytes.Buffer
	if PrintNode(&buf, n) != nil {
		return ""
	}
	return buf.String()
}

// printNode writes a representation of n to w. The indent string is the
// indentation of the line on which n begins, and step is added for each
// level of nesting.
func (p Printer) printNode(w *bufio.Writer, n Node, indent, step string) error {
	switch n.kind {
	case NullKind:
		w.WriteString("null")
	case BoolKind:
		w.WriteString(strconv.FormatBool(n.b))
	case IntKind:
		w.WriteString(strconv.Itoa(n.i))
	case DoubleKind:
		text, err := formatDouble(n.d)
		if err != nil {
			return err
		}
		w.WriteString(text)
	case StringKind:
		writeQuoted(w, n.s)
	case ArrayKind:
		return p.printArray(w, n.arr, indent, step)
	case DictKind:
		return p.printDict(w, n.dict, indent, step)
	default:
		panic(fmt.Sprintf("unknown kind %v", n.kind))
	}
	return nil
}

// printArray writes the elements of a one per line. An empty array has no
// element lines, but keeps the same bracket layout.
func (p Printer) printArray(w *bufio.Writer, a Array, indent, step string) error {
	w.WriteString("[\n")
	adent := indent + step
	for i, v := range a {
		if i > 0 {
			w.WriteString(",\n")
		}
		w.WriteString(adent)
		if err := p.printNode(w, v, adent, step); err != nil {
			return err
		}
	}
	w.WriteString("\n")
	w.WriteString(indent)
	w.WriteString("]")
	return nil
}

func (p Printer) printDict(w *bufio.Writer, d Dict, indent, step string) error {
	w.WriteString("{\n")
	mdent := indent + step
	first := true
	for key, v := range d.All() {
		if !first {
			w.WriteString(",\n")
		}
		first = false
		w.WriteString(mdent)
		writeQuoted(w, key)
		w.WriteString(": ")
		if err := p.printNode(w, v, mdent, step); err != nil {
			return err
		}
	}
	w.WriteString("\n")
	w.WriteString(indent)
	w.WriteString("}")
	return nil
}

func writeQuoted(w *bufio.Writer, s string) {
	w.WriteByte('"')
	if src := mem.S(s); escape.NeedsQuote(src) {
		w.Write(escape.Quote(src))
	} else {
		w.WriteString(s)
	}
	w.WriteByte('"')
}

// formatDouble renders v in the shortest form that reads back as the same
// double. A ".0" suffix is added when the plain text would read back as an
// integer.
func formatDouble(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("cannot print non-finite number %v", v)
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s, nil
}

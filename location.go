package jnode

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A position tracks the byte offset and line/column of the parser's read head.
type position struct {
	offset    int
	line, col int // 0-based
}

func (p *position) advance(b byte) {
	p.offset++
	if b == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
}

func (p position) lineCol() LineCol { return LineCol{Line: p.line + 1, Column: p.col} }

package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
)

// Cursor tracks a byte offset into one source file plus the line/column
// of that offset, updated incrementally as Bump crosses newlines.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32

	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file content length overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Limit: limit, Line: 1, Col: 1}
}

// EOF reports whether the cursor has reached the end of the file.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the current one, or 0 if
// that position is at or past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump consumes and returns the current byte, advancing line/column
// bookkeeping across newlines.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return b
}

// Mark is a saved cursor position for computing a span of consumed text.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// SpanFrom returns the span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Off, End: c.Off}
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

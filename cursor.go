// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package untouched

import (
	"strings"

	"go4.org/mem"
)

// EOF is the character reported by a Cursor at the end of its input.
const EOF rune = -1

// A Cursor is a read position in an immutable text buffer. All observation
// goes through Char, which skips blanks first; blanks are the space, tab,
// and newline characters.
//
// A Cursor is not safe for concurrent use.
type Cursor struct {
	text mem.RO
	pos  int
}

// NewCursor constructs a Cursor positioned at the start of text.
func NewCursor(text string) *Cursor { return &Cursor{text: mem.S(text)} }

// NewCursorRO constructs a Cursor positioned at the start of text.
func NewCursorRO(text mem.RO) *Cursor { return &Cursor{text: text} }

// Pos reports the current byte offset of c.
func (c *Cursor) Pos() int { return c.pos }

// Len reports the length of the input in bytes.
func (c *Cursor) Len() int { return c.text.Len() }

// Reset moves c back to the start of its input.
func (c *Cursor) Reset() { c.pos = 0 }

// LineCol reports the line and column of byte offset pos.
func (c *Cursor) LineCol(pos int) LineCol { return lineColAt(c.text, pos) }

// Char skips blanks from the current position and returns the byte found
// there, or EOF if the input is exhausted. Repeated calls without advancing
// return the same result.
func (c *Cursor) Char() rune {
	c.skipBlanks()
	if c.pos >= c.text.Len() {
		return EOF
	}
	return rune(c.text.At(c.pos))
}

// Advance moves c forward by one byte, then past any blanks that follow.
// At the end of the input, Advance has no effect.
func (c *Cursor) Advance() {
	if c.pos < c.text.Len() {
		c.pos++
	}
	c.skipBlanks()
}

// Expect consumes want if it is the current character, or reports a
// *SyntaxError without moving.
func (c *Cursor) Expect(want byte) error {
	if c.Char() != rune(want) {
		return c.fail(string(want))
	}
	c.Advance()
	return nil
}

// ExpectOneOf reports the current character if it is one of wants, or a
// *SyntaxError naming all of them. It does not consume anything.
func (c *Cursor) ExpectOneOf(wants string) (rune, error) {
	if ch := c.Char(); c.oneOf(ch, wants) {
		return ch, nil
	}
	return 0, c.fail(wants)
}

// ReadUntil gathers characters from the current position until EOF or a
// member of stops, and returns them. The stopping character is not consumed.
// Blanks are not gathered, so "a b" reads as "ab".
func (c *Cursor) ReadUntil(stops string) string {
	var buf []byte
	for {
		ch := c.Char()
		if ch == EOF || c.oneOf(ch, stops) {
			return string(buf)
		}
		buf = append(buf, byte(ch))
		c.Advance()
	}
}

func (c *Cursor) skipBlanks() {
	for c.pos < c.text.Len() && isBlank(c.text.At(c.pos)) {
		c.pos++
	}
}

func (c *Cursor) oneOf(ch rune, set string) bool {
	return ch != EOF && strings.IndexByte(set, byte(ch)) >= 0
}

func (c *Cursor) fail(want string) *SyntaxError {
	return &SyntaxError{
		Offset:   c.pos,
		Location: c.LineCol(c.pos),
		Want:     want,
		Got:      c.Char(),
	}
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' || b == '\n' }

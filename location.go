// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package untouched

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt computes the line and column of offset pos in text. Offsets past
// the end of text are clamped to the end.
func lineColAt(text mem.RO, pos int) LineCol {
	pos = min(pos, text.Len())
	lc := LineCol{Line: 1}
	for i := 0; i < pos; i++ {
		if text.At(i) == '\n' {
			lc.Line++
			lc.Column = 0
		} else {
			lc.Column++
		}
	}
	return lc
}

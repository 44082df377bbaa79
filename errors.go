// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package untouched

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput is reported when a parser is constructed from a value
	// that is not text.
	ErrInvalidInput = errors.New("input is not text")

	// ErrUnexpectedChar is the underlying error of every *SyntaxError.
	ErrUnexpectedChar = errors.New("unexpected character")
)

// SyntaxError is the concrete type of errors reported when a required
// character is not found at the current position of a Cursor.
type SyntaxError struct {
	Offset   int     // byte offset of the offending character
	Location LineCol // line and column of Offset
	Want     string  // the characters that would have been accepted
	Got      rune    // the character found, or EOF
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: expected %s, got %s", s.Location, wantLabel(s.Want), charLabel(s.Got))
}

// Unwrap reports ErrUnexpectedChar, so that errors.Is recognizes any
// syntax error.
func (s *SyntaxError) Unwrap() error { return ErrUnexpectedChar }

func charLabel(ch rune) string {
	if ch == EOF {
		return "end of input"
	}
	return fmt.Sprintf("'%c'", ch)
}

// wantLabel renders a set of acceptable characters as "'a'", "'a' or 'b'",
// "'a', 'b' or 'c'" and so on.
func wantLabel(want string) string {
	if want == "" {
		return "nothing"
	}
	ss := make([]string, len(want))
	for i := 0; i < len(want); i++ {
		ss[i] = charLabel(rune(want[i]))
	}
	if len(ss) == 1 {
		return ss[0]
	}
	last := len(ss) - 1
	return strings.Join(ss[:last], ", ") + " or " + ss[last]
}

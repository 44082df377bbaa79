// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package untouched implements a permissive JSON reader that keeps the text
// of scalar values exactly as written.
//
// # Cursors
//
// The Cursor type is a blank-insensitive view over an input buffer. The
// buffer is never modified. Spaces, tabs, and newlines are skipped before
// every observation, so a caller only ever sees significant characters:
//
//	c := untouched.NewCursor(`[1, 2]`)
//	for c.Char() != untouched.EOF {
//	   log.Printf("At %d: %c", c.Pos(), c.Char())
//	   c.Advance()
//	}
//
// Expect consumes a single required character, and ReadUntil gathers a run
// of characters up to (but not including) a member of a stop set. When an
// expected character is not found, Expect reports an error of concrete type
// *untouched.SyntaxError giving the location of the problem and what was
// found instead.
//
// # Trees
//
// The ast subpackage builds syntax trees from a Cursor and renders them back
// to indented text:
//
//	v, err := ast.Parse(`{"a": [1, 2]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	fmt.Println(ast.Stringify(v))
//
// Object keys are restricted to ASCII letters, trailing commas are accepted,
// and scalars (numbers, strings, true, false, null, or anything else) are
// kept as raw text without interpretation.
package untouched

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/untouched"
	"go4.org/mem"
)

// Parse parses and returns a single value from the front of text. If text is
// empty, blank, or begins with "}" or "]", Parse returns nil and no error.
// In case of a syntax error, the returned error has type
// [*untouched.SyntaxError].
func Parse(text string) (Value, error) {
	p := &Parser{cur: untouched.NewCursor(text)}
	return p.Parse()
}

// A Parser reads values from a Cursor over its input. A Parser is not safe
// for concurrent use.
type Parser struct {
	cur *untouched.Cursor
}

// NewParser constructs a parser for src, which must be a string, a []byte,
// or a mem.RO. A []byte is copied, so the caller may reuse it. Any other type
// of input reports an error wrapping [untouched.ErrInvalidInput].
func NewParser(src any) (*Parser, error) {
	switch t := src.(type) {
	case string:
		return &Parser{cur: untouched.NewCursor(t)}, nil
	case []byte:
		return &Parser{cur: untouched.NewCursor(string(t))}, nil
	case mem.RO:
		return &Parser{cur: untouched.NewCursorRO(t)}, nil
	default:
		return nil, fmt.Errorf("%w: %T", untouched.ErrInvalidInput, src)
	}
}

// Parse parses a single value starting from the current position of p.
// Values are not required to span the whole input; calling Parse again
// resumes where the previous call stopped. A nil value with no error means
// there was no value at the current position.
//
// In case of a syntax error, the returned error has type
// [*untouched.SyntaxError] and no partial value is returned.
func (p *Parser) Parse() (v Value, err error) {
	defer func() {
		if x := recover(); x != nil {
			serr, ok := x.(*untouched.SyntaxError)
			if !ok {
				panic(x)
			}
			v, err = nil, serr
		}
	}()
	return p.parseValue(), nil
}

// Pos reports the byte offset at which the next call to Parse will begin.
func (p *Parser) Pos() int { return p.cur.Pos() }

// Reset rewinds p to the start of its input.
func (p *Parser) Reset() { p.cur.Reset() }

// parseValue dispatches on the next significant character. It returns nil if
// there is no value at the current position.
func (p *Parser) parseValue() Value {
	switch p.cur.Char() {
	case untouched.EOF, '}', ']':
		return nil
	case '[':
		return p.parseArray()
	case '{':
		return p.parseObject()
	default:
		return p.parseScalar()
	}
}

// parseArray consumes an array. An empty element position before "]" adds
// nothing, so a trailing comma is accepted.
func (p *Parser) parseArray() Array {
	p.expect('[')
	arr := Array{}
	for {
		if v := p.parseValue(); v != nil {
			arr = append(arr, v)
		}
		if p.separator(",]") == ']' {
			break
		}
		p.expect(',')
	}
	p.expect(']')
	return arr
}

// parseObject consumes an object. Members continue as long as the next
// character opens a key; a repeated key replaces the earlier value.
func (p *Parser) parseObject() Object {
	p.expect('{')
	obj := Object{}
	for p.cur.Char() == '"' {
		key := p.parseKey()
		p.expect(':')
		obj = obj.Set(key, p.parseValue())
		if p.separator(",}") == '}' {
			break
		}
		p.expect(',')
	}
	p.expect('}')
	return obj
}

// parseKey consumes a quoted key. Only ASCII letters are gathered; anything
// else must be the closing quotation mark.
func (p *Parser) parseKey() string {
	p.expect('"')
	var key []byte
	for ch := p.cur.Char(); isLetter(ch); ch = p.cur.Char() {
		key = append(key, byte(ch))
		p.cur.Advance()
	}
	p.expect('"')
	return string(key)
}

func (p *Parser) parseScalar() Scalar { return Scalar(p.cur.ReadUntil(",]}")) }

func (p *Parser) expect(want byte) {
	if err := p.cur.Expect(want); err != nil {
		panic(err)
	}
}

func (p *Parser) separator(wants string) rune {
	ch, err := p.cur.ExpectOneOf(wants)
	if err != nil {
		panic(err)
	}
	return ch
}

func isLetter(ch rune) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

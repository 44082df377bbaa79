// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"
	"strings"
)

// A Formatter carries the settings for rendering values as indented text.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is written once per level of nesting at the start of each
	// indented line. If empty, two spaces are used.
	Indent string
}

func (f Formatter) indent() string {
	if f.Indent == "" {
		return "  "
	}
	return f.Indent
}

// Format renders an indented representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// Stringify renders v as indented text with default settings.
func Stringify(v Value) string {
	var f Formatter
	return f.FormatToString(v)
}

// Format renders an indented representation of v to w using the settings
// from f.
func (f Formatter) Format(w io.Writer, v Value) error {
	_, err := io.WriteString(w, f.FormatToString(v))
	return err
}

// FormatToString renders v as indented text using the settings from f.
//
// Empty arrays and objects are rendered as "[]" and "{}". Otherwise each
// element or member goes on its own line, indented one level deeper than
// the enclosing brackets. Scalars and keys are written verbatim.
func (f Formatter) FormatToString(v Value) string {
	p := &printer{unit: f.indent()}
	p.value(v)
	return p.buf.String()
}

// A printer holds the state of a single formatting run.
type printer struct {
	buf   strings.Builder
	unit  string
	depth int
}

func (p *printer) value(v Value) {
	switch t := v.(type) {
	case Array:
		p.array(t)
	case Object:
		p.object(t)
	case Scalar:
		p.buf.WriteString(string(t))
	case nil:
		// An empty value position renders as nothing.
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func (p *printer) array(a Array) {
	p.buf.WriteByte('[')
	if len(a) == 0 {
		p.buf.WriteByte(']')
		return
	}
	p.depth++
	for i, elt := range a {
		p.newline()
		p.value(elt)
		if i < len(a)-1 {
			p.buf.WriteByte(',')
		}
	}
	p.depth--
	p.newline()
	p.buf.WriteByte(']')
}

func (p *printer) object(o Object) {
	p.buf.WriteByte('{')
	if len(o) == 0 {
		p.buf.WriteByte('}')
		return
	}
	p.depth++
	for i, m := range o {
		p.newline()
		p.buf.WriteByte('"')
		p.buf.WriteString(m.Key)
		p.buf.WriteString(`": `)
		p.value(m.Value)
		if i < len(o)-1 {
			p.buf.WriteByte(',')
		}
	}
	p.depth--
	p.newline()
	p.buf.WriteByte('}')
}

// newline starts a new line indented to the current depth.
func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(strings.Repeat(p.unit, p.depth))
}

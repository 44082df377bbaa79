// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a syntax tree for JSON values whose scalars keep their
// source text, a parser that builds trees from text, and a formatter that
// renders them back.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/untouched"
)

// A Value is a node of a syntax tree. The concrete type is one of Array,
// Object, or Scalar. A nil Value denotes an empty value position.
type Value interface {
	// JSON renders the value as compact text with no blanks.
	JSON() string

	isValue()
}

// An Array is a sequence of values.
type Array []Value

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elt := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(jsonOf(elt))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// An Object is an ordered collection of key-value members. Keys are unique
// within an object built by the parser.
type Object []*Member

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set replaces the value of the member of o with the given key, or adds a
// new member at the end if there is none. It returns the updated object.
func (o Object) Set(key string, v Value) Object {
	if m := o.Find(key); m != nil {
		m.Value = v
		return o
	}
	return append(o, &Member{Key: key, Value: v})
}

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// JSON renders m as "key":value. The key is not escaped.
func (m Member) JSON() string { return `"` + m.Key + `":` + jsonOf(m.Value) }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be acceptable to ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// A Scalar is the raw source text of a value that is neither an array nor an
// object. The text is not validated, so a Scalar may hold a number, a quoted
// string, a constant, or any other fragment of input.
type Scalar string

func (Scalar) isValue() {}

// JSON satisfies the Value interface. The text is returned verbatim.
func (s Scalar) JSON() string { return string(s) }

// IsQuoted reports whether s is enclosed in double quotation marks.
func (s Scalar) IsQuoted() bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// Unquote decodes s as a JSON string. It reports an error if s is not
// quoted or contains an incomplete escape.
func (s Scalar) Unquote() (string, error) { return untouched.Unquote(string(s)) }

// Quoted constructs a Scalar containing the JSON encoding of text.
func Quoted(text string) Scalar { return Scalar(untouched.Quote(text)) }

// ToValue converts a string, int, int64, float64, bool, nil, or Value into a
// Value. Strings are quoted. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Scalar("null")
	case bool:
		return Scalar(strconv.FormatBool(t))
	case string:
		return Quoted(t)
	case int:
		return Scalar(strconv.Itoa(t))
	case int64:
		return Scalar(strconv.FormatInt(t, 10))
	case float64:
		return Scalar(strconv.FormatFloat(t, 'g', -1, 64))
	case Value:
		return t
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}

// jsonOf renders v, treating nil as empty text.
func jsonOf(v Value) string {
	if v == nil {
		return ""
	}
	return v.JSON()
}

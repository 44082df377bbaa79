// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"errors"
	"testing"

	"github.com/creachadair/untouched"
	"github.com/creachadair/untouched/ast"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

type (
	A = ast.Array
	O = ast.Object
	M = ast.Member
	S = ast.Scalar
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ast.Value
	}{
		{"Empty", "", nil},
		{"Blank", " \t\n ", nil},
		{"CloseBrace", "}", nil},
		{"CloseSquare", "  ]", nil},

		{"EmptyArray", "[]", A{}},
		{"EmptyObject", "{}", O{}},
		{"BlankArray", "[ \n ]", A{}},
		{"BlankObject", "{\t}", O{}},

		{"Number", "  42  ", S("42")},
		{"String", `"hello"`, S(`"hello"`)},
		{"Constants", "[true, false, null]", A{S("true"), S("false"), S("null")}},
		{"Numbers", "[1, 2, 3]", A{S("1"), S("2"), S("3")}},
		{"Floats", "[-0.5, 1e9, 5.002]", A{S("-0.5"), S("1e9"), S("5.002")}},
		{"Unquoted", "[whatever, x:y]", A{S("whatever"), S("x:y")}},
		{"BlanksDropped", `["a b c", 1 2]`, A{S(`"abc"`), S("12")}},

		{"Member", `{"a": 1}`, O{{Key: "a", Value: S("1")}}},
		{"Members", `{"a": 1, "bee": "two"}`, O{
			{Key: "a", Value: S("1")},
			{Key: "bee", Value: S(`"two"`)},
		}},
		{"MixedCaseKey", `{"aBcD": null}`, O{{Key: "aBcD", Value: S("null")}}},
		{"EmptyKey", `{"": 1}`, O{{Key: "", Value: S("1")}}},
		{"Spacious", ` { "a" : [ 1 , 2 ] } `, O{{Key: "a", Value: A{S("1"), S("2")}}}},

		{"DuplicateKey", `{"a": 1, "a": 2}`, O{{Key: "a", Value: S("2")}}},
		{"DuplicateKeepsOrder", `{"a": 1, "b": 2, "a": 3}`, O{
			{Key: "a", Value: S("3")},
			{Key: "b", Value: S("2")},
		}},

		{"ArrayTrailingComma", "[1, 2,]", A{S("1"), S("2")}},
		{"ObjectTrailingComma", `{"a": 1,}`, O{{Key: "a", Value: S("1")}}},
		{"OnlyComma", "[,]", A{S("")}},
		{"EmptyElement", "[,1]", A{S(""), S("1")}},
		{"EmptyMember", `{"a":}`, O{{Key: "a", Value: nil}}},
		{"RunOnMember", `{"a":1 "b":2}`, O{{Key: "a", Value: S(`1"b":2`)}}},

		{"Nested", `[{"a":{"b":[]}}]`, A{O{{Key: "a", Value: O{{Key: "b", Value: A{}}}}}}},
		{"Demo", `[{"a": {"b": {}, "c": [1, 2, {"d": ["e", 5.002, {}, []]}]}}]`, A{
			O{{Key: "a", Value: O{
				{Key: "b", Value: O{}},
				{Key: "c", Value: A{
					S("1"), S("2"),
					O{{Key: "d", Value: A{S(`"e"`), S("5.002"), O{}, A{}}}},
				}},
			}}},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ast.Parse(test.input)
			if err != nil {
				t.Fatalf("Parse %#q: unexpected error: %v", test.input, err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Parse %#q: (-want, +got)\n%s", test.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		want   string
		got    rune
	}{
		{"MissingColon", `{"a" 1}`, 5, ":", '1'},
		{"DigitInKey", `{"a1": 2}`, 3, `"`, '1'},
		{"EscapeInKey", `{"a\"b": 2}`, 3, `"`, '\\'},
		{"UnquotedKey", `{a: 1}`, 1, "}", 'a'},
		{"NumberKey", `{1}`, 1, "}", '1'},
		{"UnclosedKey", `{"ab`, 4, `"`, untouched.EOF},
		{"UnclosedArray", `[1`, 2, ",]", untouched.EOF},
		{"UnclosedObject", `{"a": 1`, 7, ",}", untouched.EOF},
		{"UnclosedNested", `[[1]`, 4, ",]", untouched.EOF},
		{"WrongArrayClose", `{"a": [1}`, 8, ",]", '}'},
		{"WrongObjectClose", `[{"a": 1]`, 8, ",}", ']'},
		{"ObjectMissingKey", `{"a": 1, 2}`, 9, "}", '2'},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := ast.Parse(test.input)
			var serr *untouched.SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse %#q: got (%v, %v), want *SyntaxError", test.input, v, err)
			}
			t.Logf("Got expected error: %v", err)
			if v != nil {
				t.Errorf("Parse %#q: got partial value %v", test.input, v)
			}
			if serr.Offset != test.offset || serr.Want != test.want || serr.Got != test.got {
				t.Errorf("Parse %#q: got offset %d want %q got %q; expected %d %q %q",
					test.input, serr.Offset, serr.Want, serr.Got, test.offset, test.want, test.got)
			}
			if !errors.Is(err, untouched.ErrUnexpectedChar) {
				t.Errorf("Parse %#q: error %v is not ErrUnexpectedChar", test.input, err)
			}
		})
	}
}

func TestMissingColonMessage(t *testing.T) {
	_, err := ast.Parse(`{"a" 1}`)
	if got, want := err.Error(), "at 1:5: expected ':', got '1'"; got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
}

func TestNewParser(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		p, err := ast.NewParser(`[1]`)
		if err != nil {
			t.Fatalf("NewParser: unexpected error: %v", err)
		}
		checkParse(t, p, A{S("1")})
	})
	t.Run("RO", func(t *testing.T) {
		p, err := ast.NewParser(mem.S(`{"a": 1}`))
		if err != nil {
			t.Fatalf("NewParser: unexpected error: %v", err)
		}
		checkParse(t, p, O{{Key: "a", Value: S("1")}})
	})
	t.Run("Bytes", func(t *testing.T) {
		buf := []byte(`[abc]`)
		p, err := ast.NewParser(buf)
		if err != nil {
			t.Fatalf("NewParser: unexpected error: %v", err)
		}
		copy(buf, "{xyz}") // the parser must not see this
		checkParse(t, p, A{S("abc")})
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, src := range []any{nil, 42, 3.5, []rune("[]"), struct{}{}} {
			p, err := ast.NewParser(src)
			if !errors.Is(err, untouched.ErrInvalidInput) {
				t.Errorf("NewParser(%T): got (%v, %v), want ErrInvalidInput", src, p, err)
			} else {
				t.Logf("NewParser(%T): got expected error: %v", src, err)
			}
		}
	})
}

func TestParserResume(t *testing.T) {
	p, err := ast.NewParser("[1] {} [2]")
	if err != nil {
		t.Fatalf("NewParser: unexpected error: %v", err)
	}
	checkParse(t, p, A{S("1")})
	if got := p.Pos(); got != 4 {
		t.Errorf("Pos: got %d, want 4", got)
	}
	checkParse(t, p, O{})
	checkParse(t, p, A{S("2")})
	checkParse(t, p, nil)

	p.Reset()
	checkParse(t, p, A{S("1")})
}

func checkParse(t *testing.T, p *ast.Parser, want ast.Value) {
	t.Helper()
	got, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse: (-want, +got)\n%s", diff)
	}
}

// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/untouched"
	"github.com/tailscale/hujson"
	"go4.org/mem"
)

// ParseHuJSON parses a single value from src, which may contain comments
// and trailing commas (HuJSON, https://github.com/tailscale/hujson). The
// input is standardized to plain JSON before parsing; since standardization
// replaces comments with blanks, offsets in syntax errors refer to src.
//
// Unlike Parse, the input must be well-formed HuJSON, so malformed scalars
// and extra input after the value are reported by the standardizer.
func ParseHuJSON(src []byte) (Value, error) {
	std, err := hujson.Standardize(src)
	if err != nil {
		return nil, fmt.Errorf("invalid HuJSON: %w", err)
	}
	p := &Parser{cur: untouched.NewCursorRO(mem.B(std))}
	return p.Parse()
}

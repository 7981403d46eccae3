// Package normalize provides the per-column coercion rules that turn raw
// extract fields into typed, nullable canonical values. Every function is
// total over "any scalar or missing marker": bad input becomes nil (or false),
// never an error.
package normalize

import (
	"strconv"
	"strings"
)

// affirmative is the literal marker the extracts use for "yes" (有/無 flags).
const affirmative = "有"

// YesNo maps a 有/無 style flag to a tri-state boolean. Blank input means
// unknown (nil); only the exact affirmative marker maps to true, everything
// else - including the explicit negative marker - maps to false.
func YesNo(raw string) *bool {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v := s == affirmative
	return &v
}

// Numeric parses a decimal field, returning nil when blank or unparsable.
// Thousands separators show up in some price columns and are tolerated.
func Numeric(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Integer parses an integer-valued field (room counts, floor counts). The
// extracts sometimes carry these as "3.0"; any value with a fractional part
// is unparsable.
func Integer(raw string) *int {
	f := Numeric(raw)
	if f == nil {
		return nil
	}
	n := int(*f)
	if float64(n) != *f {
		return nil
	}
	return &n
}

// String trims free text, mapping blank to nil. It never returns a pointer to
// an empty string: empty means null.
func String(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// HasContent reports whether the trimmed value is non-empty. Unlike String it
// never returns nil; a missing value is simply false.
func HasContent(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

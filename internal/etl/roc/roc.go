// Package roc handles the Republic-of-China calendar date strings used by the
// land registration extracts. Dates are digits-only text: a 2-or-3-digit year
// (years since 1911) followed by 2-digit month and day. The year width is
// ambiguous and is inferred from the total string length.
package roc

import (
	"strconv"
	"strings"
	"time"
)

// Date canonicalizes a raw date token. Blank or non-numeric input yields nil,
// not an error: downstream treats nil as "unknown date" and drops the row only
// when the column is required. Leading zeros are removed, but the value stays
// an opaque ordered string; no Gregorian conversion happens here.
func Date(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	// Spreadsheet exports occasionally render the column as "1130101.0".
	if i := strings.IndexByte(s, '.'); i >= 0 {
		for _, c := range s[i+1:] {
			if c != '0' {
				return nil
			}
		}
		s = s[:i]
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	out := strconv.FormatInt(n, 10)
	return &out
}

// Year extracts the ROC calendar year from a canonical date string. Strings of
// 6 digits carry a 2-digit year, 7 digits a 3-digit year; anything else is a
// data-quality case and reports ok=false.
func Year(date string) (int, bool) {
	if len(date) != 6 && len(date) != 7 {
		return 0, false
	}
	for _, c := range date {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	width := 2
	if len(date) == 7 {
		width = 3
	}
	year, err := strconv.Atoi(date[:width])
	if err != nil {
		return 0, false
	}
	return year, true
}

// CurrentYear returns the ROC year for now, keeping age arithmetic in the same
// calendar as the stored dates.
func CurrentYear(now time.Time) int {
	return now.Year() - 1911
}

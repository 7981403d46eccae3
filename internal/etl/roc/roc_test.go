package roc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"seven digit date", "1130101", ptr("1130101")},
		{"six digit date", "990101", ptr("990101")},
		{"leading zeros dropped", "0990101", ptr("990101")},
		{"surrounding whitespace", " 1130101 ", ptr("1130101")},
		{"spreadsheet decimal tail", "1130101.0", ptr("1130101")},
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"non numeric", "民國113年", nil},
		{"fractional value", "1130101.5", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDateIdempotent(t *testing.T) {
	once := Date("0991231")
	require.NotNil(t, once)
	twice := Date(*once)
	require.NotNil(t, twice)
	assert.Equal(t, *once, *twice)
}

func TestYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1130101", 113, true},
		{"990101", 99, true},
		{"1041231", 104, true},
		{"", 0, false},
		{"12345", 0, false},
		{"12345678", 0, false},
		{"99a101", 0, false},
	}
	for _, tt := range tests {
		got, ok := Year(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestCurrentYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 114, CurrentYear(now))
}

func ptr(s string) *string { return &s }

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYesNo(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *bool
	}{
		{"affirmative", "有", boolPtr(true)},
		{"negative marker", "無", boolPtr(false)},
		{"arbitrary token is negative", "也許", boolPtr(false)},
		{"blank is unknown", "", nil},
		{"whitespace is unknown", "  ", nil},
		{"padded affirmative", " 有 ", boolPtr(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YesNo(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *float64
	}{
		{"plain integer", "12500000", floatPtr(12500000)},
		{"decimal", "33.06", floatPtr(33.06)},
		{"thousands separators", "1,250,000", floatPtr(1250000)},
		{"zero is a value", "0", floatPtr(0)},
		{"blank", "", nil},
		{"garbage", "NA", nil},
		{"mixed garbage", "約30坪", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Numeric(tt.in)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestInteger(t *testing.T) {
	assert.Equal(t, 3, *Integer("3"))
	assert.Equal(t, 3, *Integer("3.0"))
	assert.Equal(t, 0, *Integer("0"))
	assert.Nil(t, Integer("3.5"))
	assert.Nil(t, Integer(""))
	assert.Nil(t, Integer("三"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "信義路五段", *String("  信義路五段 "))
	assert.Nil(t, String(""))
	assert.Nil(t, String("   "))
}

// Normalizing an already-canonical value must be a no-op.
func TestStringIdempotent(t *testing.T) {
	once := String(" 大安區 ")
	require.NotNil(t, once)
	twice := String(*once)
	require.NotNil(t, twice)
	assert.Equal(t, *once, *twice)
}

func TestHasContent(t *testing.T) {
	assert.True(t, HasContent("備註"))
	assert.False(t, HasContent(""))
	assert.False(t, HasContent("  "))
}

func boolPtr(b bool) *bool { return &b }
func floatPtr(f float64) *float64 { return &f }

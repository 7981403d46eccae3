package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, table.Version())
}

func TestCityFor(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	tests := []struct {
		district string
		city     string
		ok       bool
	}{
		{"大安區", "臺北市", true}, // ambiguous name, first city in file order wins
		{"板橋區", "新北市", true},
		{"中壢區", "桃園市", true},
		{"西屯區", "臺中市", true},
		{"安平區", "臺南市", true},
		{"鳳山區", "高雄市", true},
		{" 信義區 ", "臺北市", true},
		{"不存在區", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		city, ok := table.CityFor(tt.district)
		assert.Equal(t, tt.ok, ok, "district %q", tt.district)
		assert.Equal(t, tt.city, city, "district %q", tt.district)
	}
}

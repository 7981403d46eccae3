package rest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/transactions", nil)

	page, err := parsePageRequest(r)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, 20, page.Limit)
	assert.True(t, page.OrderDesc)
	assert.Empty(t, page.OrderBy)
}

func TestParsePageRequestRejectsViolations(t *testing.T) {
	for _, query := range []string{"skip=-1", "limit=0", "limit=101", "limit=abc", "order_desc=maybe"} {
		r := httptest.NewRequest("GET", "/api/v1/transactions?"+query, nil)
		_, err := parsePageRequest(r)
		assert.Error(t, err, query)
	}
}

func TestParseTransactionFiltersPresence(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/transactions?price_min=0&unit_price_min=300000&has_elevator=false&city=臺北市", nil)

	filters, err := parseTransactionFilters(r)
	require.NoError(t, err)

	// Zero and false are real constraints, absence is nil.
	require.NotNil(t, filters.PriceMin)
	assert.Equal(t, 0.0, *filters.PriceMin)
	require.NotNil(t, filters.UnitPriceMin)
	assert.Equal(t, 300000.0, *filters.UnitPriceMin)
	require.NotNil(t, filters.HasElevator)
	assert.False(t, *filters.HasElevator)
	require.NotNil(t, filters.City)
	assert.Equal(t, "臺北市", *filters.City)

	assert.Nil(t, filters.PriceMax)
	assert.Nil(t, filters.UnitPriceMax)
	assert.Nil(t, filters.HasManagement)
	assert.Nil(t, filters.BuildingTypes)
	assert.Nil(t, filters.AgeMin)
}

func TestParseTransactionFiltersRepeatedValues(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/transactions?building_types=住宅大樓&building_types=公寓", nil)

	filters, err := parseTransactionFilters(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"住宅大樓", "公寓"}, filters.BuildingTypes)
}

func TestParseTransactionFiltersEmptySliceValue(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/transactions?building_types=", nil)

	filters, err := parseTransactionFilters(r)
	require.NoError(t, err)
	require.NotNil(t, filters.BuildingTypes)
	assert.Empty(t, filters.BuildingTypes)
}

func TestParseTransactionFiltersBadNumber(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/transactions?age_min=old", nil)

	_, err := parseTransactionFilters(r)
	assert.Error(t, err)
}

func TestParseRentalFilters(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/rentals?rent_max=30000&has_furniture=true&date_from=1130101", nil)

	filters, err := parseRentalFilters(r)
	require.NoError(t, err)
	require.NotNil(t, filters.RentMax)
	assert.Equal(t, 30000.0, *filters.RentMax)
	require.NotNil(t, filters.HasFurniture)
	assert.True(t, *filters.HasFurniture)
	require.NotNil(t, filters.DateFrom)
	assert.Equal(t, "1130101", *filters.DateFrom)
	assert.Nil(t, filters.HasManager)
}

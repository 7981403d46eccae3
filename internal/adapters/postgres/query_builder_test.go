package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lvr-storage-service/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }

func TestNoFiltersProducesEmptyWhere(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{}, 114)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestZeroBoundIsApplied(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		PriceMin: floatPtr(0),
	}, 114)
	assert.Equal(t, "WHERE total_price_ntd >= $1", where)
	assert.Equal(t, []interface{}{0.0}, args)
}

func TestPriceFiltersTargetTotalPrice(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		PriceMin: floatPtr(5000000),
		PriceMax: floatPtr(20000000),
	}, 114)
	assert.Equal(t, "WHERE total_price_ntd >= $1 AND total_price_ntd <= $2", where)
	assert.Equal(t, []interface{}{5000000.0, 20000000.0}, args)
}

func TestUnitPriceFiltersTargetUnitPrice(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		UnitPriceMin: floatPtr(300000),
	}, 114)
	assert.Equal(t, "WHERE unit_price_ntd >= $1", where)
	assert.Equal(t, []interface{}{300000.0}, args)
}

func TestFalseBoundIsApplied(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		HasElevator: boolPtr(false),
	}, 114)
	assert.Equal(t, "WHERE has_elevator = $1", where)
	assert.Equal(t, []interface{}{false}, args)
}

func TestNilSliceVersusEmptySlice(t *testing.T) {
	where, _ := applyTransactionFilters(domain.TransactionFilters{BuildingTypes: nil}, 114)
	assert.Empty(t, where)

	where, args := applyTransactionFilters(domain.TransactionFilters{BuildingTypes: []string{}}, 114)
	assert.Equal(t, "WHERE building_type = ANY($1)", where)
	assert.Equal(t, []interface{}{[]string{}}, args)
}

func TestAddressContainsIsCaseSensitive(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		AddressKeyword: strPtr("和平東路"),
	}, 114)
	assert.Equal(t, "WHERE land_location LIKE $1", where)
	assert.Equal(t, []interface{}{"%和平東路%"}, args)
}

func TestConditionsComposeWithAnd(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		City:     strPtr("臺北市"),
		District: strPtr("大安區"),
		DateFrom: strPtr("1130101"),
	}, 114)
	assert.Equal(t, "WHERE city = $1 AND district = $2 AND transaction_date >= $3", where)
	assert.Len(t, args, 3)
}

func TestAgeFilterDerivesYearBounds(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		AgeMin: intPtr(10),
		AgeMax: intPtr(30),
	}, 114)

	yearExpr := "(CASE WHEN construction_complete_date ~ '^[0-9]{6,7}$'" +
		" THEN CAST(substring(construction_complete_date from 1 for" +
		" CASE WHEN length(construction_complete_date) = 6 THEN 2 ELSE 3 END) AS INTEGER) END)"
	assert.Equal(t, "WHERE "+yearExpr+" <= $1 AND "+yearExpr+" >= $2", where)
	// age >= 10 means completion year <= 104, age <= 30 means year >= 84
	assert.Equal(t, []interface{}{104, 84}, args)
}

func TestAgeFilterGuardsCastAgainstBadDates(t *testing.T) {
	where, _ := applyTransactionFilters(domain.TransactionFilters{
		AgeMin: intPtr(10),
	}, 114)

	// Stored completion dates can be arbitrary text. The digit guard must sit
	// inside the CASE that performs the cast, not as a sibling condition,
	// because Postgres may evaluate sibling conditions in any order.
	assert.NotContains(t, where, "$' AND")
	assert.Contains(t, where, "CASE WHEN construction_complete_date ~ '^[0-9]{6,7}$' THEN CAST(")
}

func TestHasNotePresence(t *testing.T) {
	where, args := applyTransactionFilters(domain.TransactionFilters{
		HasNote: boolPtr(true),
	}, 114)
	assert.Equal(t, "WHERE (remarks IS NOT NULL AND remarks <> '')", where)
	assert.Empty(t, args)

	where, _ = applyTransactionFilters(domain.TransactionFilters{
		HasNote: boolPtr(false),
	}, 114)
	assert.Equal(t, "WHERE (remarks IS NULL OR remarks = '')", where)
}

func TestPlaceholderNumberingSkipsAbsentFilters(t *testing.T) {
	where, args := applyRentalFilters(domain.RentalFilters{
		RentMax:    floatPtr(30000),
		HasManager: boolPtr(true),
	})
	assert.Equal(t, "WHERE monthly_rent_ntd <= $1 AND has_manager = $2", where)
	assert.Equal(t, []interface{}{30000.0, true}, args)
}

func TestPresaleProjectNameContains(t *testing.T) {
	where, args := applyPresaleFilters(domain.PresaleFilters{
		ProjectName: strPtr("幸福"),
	})
	assert.Equal(t, "WHERE project_name LIKE $1", where)
	assert.Equal(t, []interface{}{"%幸福%"}, args)
}

func TestOrderClauseDispatchAndFallback(t *testing.T) {
	sortable := map[string]string{
		"transaction_date": "transaction_date",
		"total_price":      "total_price_ntd",
	}

	clause := orderClause(sortable, "transaction_date", domain.PageRequest{OrderBy: "total_price", OrderDesc: true})
	assert.Equal(t, "ORDER BY total_price_ntd DESC", clause)

	clause = orderClause(sortable, "transaction_date", domain.PageRequest{OrderBy: "no_such_field", OrderDesc: true})
	assert.Equal(t, "ORDER BY transaction_date DESC", clause)

	clause = orderClause(sortable, "transaction_date", domain.PageRequest{OrderBy: "transaction_date"})
	assert.Equal(t, "ORDER BY transaction_date ASC", clause)
}

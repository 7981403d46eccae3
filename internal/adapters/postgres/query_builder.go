package postgres

import (
	"fmt"
	"strings"

	"lvr-storage-service/internal/core/domain"
)

// queryBuilder accumulates AND-composed conditions with positional args.
// Every Add* method is presence-driven: a nil pointer adds nothing, a pointer
// to the zero value adds a real condition. Conditions are composable in any
// order because the arg counter owns the placeholder numbering.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddEqual(fieldName string, value *string) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

func (qb *queryBuilder) AddBoolEqual(fieldName string, value *bool) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

func (qb *queryBuilder) AddIntEqual(fieldName string, value *int) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

// AddContains matches a substring anywhere in the column, case-sensitive.
func (qb *queryBuilder) AddContains(fieldName string, keyword *string) {
	if keyword != nil {
		qb.addCondition("%s LIKE $%d", fieldName, "%"+*keyword+"%")
	}
}

// AddSet adds set membership. A nil slice is no constraint; a non-nil empty
// slice is kept and matches nothing, that distinction is deliberate.
func (qb *queryBuilder) AddSet(fieldName string, values []string) {
	if values != nil {
		qb.addCondition("%s = ANY($%d)", fieldName, values)
	}
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// AddStringRange bounds a text column lexicographically. Normalized date
// strings of equal year width order correctly this way.
func (qb *queryBuilder) AddStringRange(fieldName string, from *string, to *string) {
	if from != nil {
		qb.addCondition("%s >= $%d", fieldName, *from)
	}
	if to != nil {
		qb.addCondition("%s <= $%d", fieldName, *to)
	}
}

// AddPresence filters on whether an optional text column holds content.
func (qb *queryBuilder) AddPresence(fieldName string, present *bool) {
	if present == nil {
		return
	}
	if *present {
		qb.conditions = append(qb.conditions, fmt.Sprintf("(%s IS NOT NULL AND %s <> '')", fieldName, fieldName))
	} else {
		qb.conditions = append(qb.conditions, fmt.Sprintf("(%s IS NULL OR %s = '')", fieldName, fieldName))
	}
}

// rocYearExpr extracts the ROC year from a stored completion date. The width
// of the year is 2 digits for 6-character dates and 3 otherwise. The digit
// guard lives inside the same CASE as the cast: Postgres gives no evaluation
// order between sibling AND conditions, so a separate guard would not stop
// the cast from running first on a non-numeric date. A non-matching date
// yields NULL, and a NULL comparison drops the row.
func rocYearExpr(fieldName string) string {
	return fmt.Sprintf(
		"(CASE WHEN %s ~ '^[0-9]{6,7}$' THEN CAST(substring(%s from 1 for CASE WHEN length(%s) = 6 THEN 2 ELSE 3 END) AS INTEGER) END)",
		fieldName, fieldName, fieldName,
	)
}

// AddAgeFilter bounds the building age in whole ROC years, derived at query
// time from the completion-date column. Rows whose date is absent or not a
// 6-or-7-digit string drop out of the result.
func (qb *queryBuilder) AddAgeFilter(fieldName string, min *int, max *int, currentYear int) {
	if min == nil && max == nil {
		return
	}
	yearExpr := rocYearExpr(fieldName)
	if min != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s <= $%d", yearExpr, qb.argId))
		qb.args = append(qb.args, currentYear-*min)
		qb.argId++
	}
	if max != nil {
		qb.conditions = append(qb.conditions, fmt.Sprintf("%s >= $%d", yearExpr, qb.argId))
		qb.args = append(qb.args, currentYear-*max)
		qb.argId++
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// orderClause resolves the requested sort field through the category's
// dispatch table. Unrecognized names fall back to the default date column
// rather than erroring. Direction defaults to descending.
func orderClause(sortable map[string]string, defaultColumn string, page domain.PageRequest) string {
	column, ok := sortable[page.OrderBy]
	if !ok {
		column = defaultColumn
	}
	direction := "ASC"
	if page.OrderDesc {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}

// applyTransactionFilters composes the WHERE clause of a sale search.
func applyTransactionFilters(filters domain.TransactionFilters, currentYear int) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.AddEqual("city", filters.City)
	qb.AddEqual("district", filters.District)
	qb.AddSet("transaction_target", filters.TransactionTargets)
	qb.AddContains("land_location", filters.AddressKeyword)
	qb.AddStringRange("transaction_date", filters.DateFrom, filters.DateTo)

	qb.AddFloatFilter("total_price_ntd", filters.PriceMin, filters.PriceMax)
	qb.AddFloatFilter("unit_price_ntd", filters.UnitPriceMin, filters.UnitPriceMax)
	qb.AddFloatFilter("building_area_sqm", filters.AreaMin, filters.AreaMax)
	qb.AddFloatFilter("main_building_area", filters.MainAreaMin, filters.MainAreaMax)

	qb.AddSet("building_type", filters.BuildingTypes)
	qb.AddSet("main_use", filters.MainUsages)
	qb.AddSet("urban_land_use_type", filters.UrbanLandUses)

	qb.AddBoolEqual("has_elevator", filters.HasElevator)
	qb.AddBoolEqual("has_management", filters.HasManagement)
	qb.AddPresence("remarks", filters.HasNote)

	qb.AddIntFilter("total_floor_number", filters.FloorMin, filters.FloorMax)
	qb.AddIntEqual("building_rooms", filters.RoomCount)
	qb.AddIntEqual("building_halls", filters.LivingCount)
	qb.AddIntEqual("building_bathrooms", filters.BathroomCount)

	qb.AddAgeFilter("construction_complete_date", filters.AgeMin, filters.AgeMax, currentYear)

	return qb.build()
}

// applyPresaleFilters composes the WHERE clause of a pre-sale search.
func applyPresaleFilters(filters domain.PresaleFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.AddEqual("city", filters.City)
	qb.AddEqual("district", filters.District)
	qb.AddContains("project_name", filters.ProjectName)
	qb.AddStringRange("transaction_date", filters.DateFrom, filters.DateTo)
	qb.AddFloatFilter("total_price_ntd", filters.PriceMin, filters.PriceMax)
	qb.AddSet("building_type", filters.BuildingTypes)

	return qb.build()
}

// applyRentalFilters composes the WHERE clause of a rental search.
func applyRentalFilters(filters domain.RentalFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.AddEqual("city", filters.City)
	qb.AddEqual("district", filters.District)
	qb.AddStringRange("rental_date", filters.DateFrom, filters.DateTo)
	qb.AddFloatFilter("monthly_rent_ntd", filters.RentMin, filters.RentMax)
	qb.AddSet("building_type", filters.BuildingTypes)
	qb.AddBoolEqual("has_elevator", filters.HasElevator)
	qb.AddBoolEqual("has_furniture", filters.HasFurniture)
	qb.AddBoolEqual("has_manager", filters.HasManager)

	return qb.build()
}

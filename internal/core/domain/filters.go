package domain

// Filter structs use pointers for every optional constraint so that presence
// is explicit: a nil field means "no constraint", while a pointer to the zero
// value (price_min=0, has_elevator=false) is a real bound and is applied.
// Slice fields distinguish the same way: nil means unconstrained, a non-nil
// empty slice was provided explicitly and matches nothing.

// TransactionFilters is the full filter set for the sale-transaction search.
type TransactionFilters struct {
	City     *string
	District *string

	TransactionTargets []string
	AddressKeyword     *string

	DateFrom *string
	DateTo   *string

	PriceMin     *float64 // total price, NTD
	PriceMax     *float64
	UnitPriceMin *float64 // unit price, NTD per sqm
	UnitPriceMax *float64

	AreaMin     *float64 // building area, sqm
	AreaMax     *float64
	MainAreaMin *float64
	MainAreaMax *float64

	BuildingTypes []string
	MainUsages    []string
	UrbanLandUses []string

	HasElevator   *bool
	HasManagement *bool
	HasNote       *bool

	FloorMin *int
	FloorMax *int

	RoomCount     *int
	LivingCount   *int
	BathroomCount *int

	// Age bounds are derived at query time from the construction date; they
	// are not stored columns.
	AgeMin *int
	AgeMax *int
}

// PresaleFilters is the filter set for the pre-sale contract search.
type PresaleFilters struct {
	City        *string
	District    *string
	ProjectName *string

	DateFrom *string
	DateTo   *string

	PriceMin *float64 // total price, NTD
	PriceMax *float64

	BuildingTypes []string
}

// RentalFilters is the filter set for the rental search.
type RentalFilters struct {
	City     *string
	District *string

	DateFrom *string
	DateTo   *string

	RentMin *float64 // monthly rent, NTD
	RentMax *float64

	BuildingTypes []string

	HasElevator  *bool
	HasFurniture *bool
	HasManager   *bool
}

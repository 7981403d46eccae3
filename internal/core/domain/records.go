package domain

import "errors"

// ErrNotFound is returned by storage lookups for an absent record ID.
var ErrNotFound = errors.New("record not found")

// PropertyCommon is the field block shared by all three extract categories.
// Nullable scalars are pointers; booleans are tri-state (true/false/unknown)
// and are never defaulted to false. Records are immutable once persisted.
type PropertyCommon struct {
	ID                       int64
	District                 string
	TransactionTarget        *string
	LandLocation             *string
	UrbanLandUseType         *string
	NonUrbanLandUseType      *string
	NonUrbanLandUseCategory  *string
	BuildingType             *string
	MainUse                  *string
	MainBuildingMaterials    *string
	ConstructionCompleteDate *string // ROC date text, 2-or-3-digit year
	BuildingRooms            *int
	BuildingHalls            *int
	BuildingBathrooms        *int
	BuildingCompartments     *bool
	HasManagement            *bool
	TotalFloorNumber         *int
	UnitPriceNTD             *float64
	ParkingType              *string
	Remarks                  *string
	SerialNumber             *string
}

// Transaction is one completed sale from the a_lvr_land_a extracts.
type Transaction struct {
	PropertyCommon

	City                  string
	TransactionDate       string // ROC date text, required
	TransactionPenNumber  *string
	LandAreaSqm           *float64
	BuildingAreaSqm       *float64
	BuildingFloorNumber   *string
	TotalPriceNTD         float64
	ParkingAreaSqm        *float64
	ParkingPriceNTD       *float64
	MainBuildingArea      *float64
	AuxiliaryBuildingArea *float64
	BalconyArea           *float64
	HasElevator           *bool
}

// Presale is one pre-sale contract from the b_lvr_land_b extracts.
type Presale struct {
	PropertyCommon

	City                 string
	TransactionDate      string
	TransactionPenNumber *string
	LandAreaSqm          *float64
	BuildingAreaSqm      *float64
	BuildingFloorNumber  *string
	TotalPriceNTD        float64
	ParkingAreaSqm       *float64
	ParkingPriceNTD      *float64
	ProjectName          *string
	BuildingNumber       *string
	TerminationStatus    *string
}

// Rental is one lease from the c_lvr_land_c extracts.
type Rental struct {
	PropertyCommon

	City                string
	RentalDate          string
	RentalPenNumber     *string
	LandAreaSqm         *float64
	BuildingAreaSqm     *float64
	BuildingFloorNumber *string
	HasFurniture        *bool
	RentalType          *string
	HasManager          *bool
	RentalPeriod        *string
	HasElevator         *bool
	Equipment           *string
	RentalService       *string
	MonthlyRentNTD      float64
	ParkingAreaSqm      *float64
	ParkingRentNTD      *float64
}

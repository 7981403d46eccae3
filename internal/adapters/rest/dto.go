package rest

import (
	"lvr-storage-service/internal/core/domain"
)

// pageResponse is the wire shape of every search response.
type pageResponse[T any] struct {
	Total      int `json:"total"`
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

type propertyCommonDTO struct {
	ID                       int64    `json:"id"`
	City                     string   `json:"city"`
	District                 string   `json:"district"`
	TransactionTarget        *string  `json:"transaction_target"`
	LandLocation             *string  `json:"land_location"`
	UrbanLandUseType         *string  `json:"urban_land_use_type"`
	NonUrbanLandUseType      *string  `json:"non_urban_land_use_type"`
	NonUrbanLandUseCategory  *string  `json:"non_urban_land_use_category"`
	BuildingType             *string  `json:"building_type"`
	MainUse                  *string  `json:"main_use"`
	MainBuildingMaterials    *string  `json:"main_building_materials"`
	ConstructionCompleteDate *string  `json:"construction_complete_date"`
	BuildingRooms            *int     `json:"building_rooms"`
	BuildingHalls            *int     `json:"building_halls"`
	BuildingBathrooms        *int     `json:"building_bathrooms"`
	BuildingCompartments     *bool    `json:"building_compartments"`
	HasManagement            *bool    `json:"has_management"`
	TotalFloorNumber         *int     `json:"total_floor_number"`
	UnitPriceNTD             *float64 `json:"unit_price_ntd"`
	ParkingType              *string  `json:"parking_type"`
	Remarks                  *string  `json:"remarks"`
	SerialNumber             *string  `json:"serial_number"`
}

type transactionDTO struct {
	propertyCommonDTO

	TransactionDate       string   `json:"transaction_date"`
	TransactionPenNumber  *string  `json:"transaction_pen_number"`
	LandAreaSqm           *float64 `json:"land_area_sqm"`
	BuildingAreaSqm       *float64 `json:"building_area_sqm"`
	BuildingFloorNumber   *string  `json:"building_floor_number"`
	TotalPriceNTD         float64  `json:"total_price_ntd"`
	ParkingAreaSqm        *float64 `json:"parking_area_sqm"`
	ParkingPriceNTD       *float64 `json:"parking_price_ntd"`
	MainBuildingArea      *float64 `json:"main_building_area"`
	AuxiliaryBuildingArea *float64 `json:"auxiliary_building_area"`
	BalconyArea           *float64 `json:"balcony_area"`
	HasElevator           *bool    `json:"has_elevator"`
}

type presaleDTO struct {
	propertyCommonDTO

	TransactionDate      string   `json:"transaction_date"`
	TransactionPenNumber *string  `json:"transaction_pen_number"`
	LandAreaSqm          *float64 `json:"land_area_sqm"`
	BuildingAreaSqm      *float64 `json:"building_area_sqm"`
	BuildingFloorNumber  *string  `json:"building_floor_number"`
	TotalPriceNTD        float64  `json:"total_price_ntd"`
	ParkingAreaSqm       *float64 `json:"parking_area_sqm"`
	ParkingPriceNTD      *float64 `json:"parking_price_ntd"`
	ProjectName          *string  `json:"project_name"`
	BuildingNumber       *string  `json:"building_number"`
	TerminationStatus    *string  `json:"termination_status"`
}

type rentalDTO struct {
	propertyCommonDTO

	RentalDate          string   `json:"rental_date"`
	RentalPenNumber     *string  `json:"rental_pen_number"`
	LandAreaSqm         *float64 `json:"land_area_sqm"`
	BuildingAreaSqm     *float64 `json:"building_area_sqm"`
	BuildingFloorNumber *string  `json:"building_floor_number"`
	HasFurniture        *bool    `json:"has_furniture"`
	RentalType          *string  `json:"rental_type"`
	HasManager          *bool    `json:"has_manager"`
	RentalPeriod        *string  `json:"rental_period"`
	HasElevator         *bool    `json:"has_elevator"`
	Equipment           *string  `json:"equipment"`
	RentalService       *string  `json:"rental_service"`
	MonthlyRentNTD      float64  `json:"monthly_rent_ntd"`
	ParkingAreaSqm      *float64 `json:"parking_area_sqm"`
	ParkingRentNTD      *float64 `json:"parking_rent_ntd"`
}

func toCommonDTO(city string, c domain.PropertyCommon) propertyCommonDTO {
	return propertyCommonDTO{
		ID:                       c.ID,
		City:                     city,
		District:                 c.District,
		TransactionTarget:        c.TransactionTarget,
		LandLocation:             c.LandLocation,
		UrbanLandUseType:         c.UrbanLandUseType,
		NonUrbanLandUseType:      c.NonUrbanLandUseType,
		NonUrbanLandUseCategory:  c.NonUrbanLandUseCategory,
		BuildingType:             c.BuildingType,
		MainUse:                  c.MainUse,
		MainBuildingMaterials:    c.MainBuildingMaterials,
		ConstructionCompleteDate: c.ConstructionCompleteDate,
		BuildingRooms:            c.BuildingRooms,
		BuildingHalls:            c.BuildingHalls,
		BuildingBathrooms:        c.BuildingBathrooms,
		BuildingCompartments:     c.BuildingCompartments,
		HasManagement:            c.HasManagement,
		TotalFloorNumber:         c.TotalFloorNumber,
		UnitPriceNTD:             c.UnitPriceNTD,
		ParkingType:              c.ParkingType,
		Remarks:                  c.Remarks,
		SerialNumber:             c.SerialNumber,
	}
}

func toTransactionDTO(rec domain.Transaction) transactionDTO {
	return transactionDTO{
		propertyCommonDTO:     toCommonDTO(rec.City, rec.PropertyCommon),
		TransactionDate:       rec.TransactionDate,
		TransactionPenNumber:  rec.TransactionPenNumber,
		LandAreaSqm:           rec.LandAreaSqm,
		BuildingAreaSqm:       rec.BuildingAreaSqm,
		BuildingFloorNumber:   rec.BuildingFloorNumber,
		TotalPriceNTD:         rec.TotalPriceNTD,
		ParkingAreaSqm:        rec.ParkingAreaSqm,
		ParkingPriceNTD:       rec.ParkingPriceNTD,
		MainBuildingArea:      rec.MainBuildingArea,
		AuxiliaryBuildingArea: rec.AuxiliaryBuildingArea,
		BalconyArea:           rec.BalconyArea,
		HasElevator:           rec.HasElevator,
	}
}

func toPresaleDTO(rec domain.Presale) presaleDTO {
	return presaleDTO{
		propertyCommonDTO:    toCommonDTO(rec.City, rec.PropertyCommon),
		TransactionDate:      rec.TransactionDate,
		TransactionPenNumber: rec.TransactionPenNumber,
		LandAreaSqm:          rec.LandAreaSqm,
		BuildingAreaSqm:      rec.BuildingAreaSqm,
		BuildingFloorNumber:  rec.BuildingFloorNumber,
		TotalPriceNTD:        rec.TotalPriceNTD,
		ParkingAreaSqm:       rec.ParkingAreaSqm,
		ParkingPriceNTD:      rec.ParkingPriceNTD,
		ProjectName:          rec.ProjectName,
		BuildingNumber:       rec.BuildingNumber,
		TerminationStatus:    rec.TerminationStatus,
	}
}

func toRentalDTO(rec domain.Rental) rentalDTO {
	return rentalDTO{
		propertyCommonDTO:   toCommonDTO(rec.City, rec.PropertyCommon),
		RentalDate:          rec.RentalDate,
		RentalPenNumber:     rec.RentalPenNumber,
		LandAreaSqm:         rec.LandAreaSqm,
		BuildingAreaSqm:     rec.BuildingAreaSqm,
		BuildingFloorNumber: rec.BuildingFloorNumber,
		HasFurniture:        rec.HasFurniture,
		RentalType:          rec.RentalType,
		HasManager:          rec.HasManager,
		RentalPeriod:        rec.RentalPeriod,
		HasElevator:         rec.HasElevator,
		Equipment:           rec.Equipment,
		RentalService:       rec.RentalService,
		MonthlyRentNTD:      rec.MonthlyRentNTD,
		ParkingAreaSqm:      rec.ParkingAreaSqm,
		ParkingRentNTD:      rec.ParkingRentNTD,
	}
}

func toPageResponse[D any, T any](page *domain.Page[T], convert func(T) D) pageResponse[D] {
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}
	return pageResponse[D]{
		Total:      page.Total,
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

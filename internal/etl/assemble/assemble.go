// Package assemble turns raw extract rows into domain records. A row is
// rejected, never partially saved, when any required field is missing: the
// district must resolve to a known city, the event date must parse, and the
// monetary amount must be numeric. Optional fields degrade to nil.
package assemble

import (
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/etl/normalize"
	"lvr-storage-service/internal/etl/regions"
	"lvr-storage-service/internal/etl/roc"
)

// Native column names as they appear in the extract header row.
const (
	colDistrict             = "鄉鎮市區"
	colTransactionTarget    = "交易標的"
	colLandLocation         = "土地位置建物門牌"
	colUrbanLandUse         = "都市土地使用分區"
	colNonUrbanLandUse      = "非都市土地使用分區"
	colNonUrbanLandUseCat   = "非都市土地使用編定"
	colBuildingType         = "建物型態"
	colMainUse              = "主要用途"
	colMainMaterials        = "主要建材"
	colConstructionComplete = "建築完成年月"
	colRooms                = "建物現況格局-房"
	colHalls                = "建物現況格局-廳"
	colBathrooms            = "建物現況格局-衛"
	colCompartments         = "建物現況格局-隔間"
	colHasManagement        = "有無管理組織"
	colTotalFloors          = "總樓層數"
	colUnitPrice            = "單價元平方公尺"
	colParkingType          = "車位類別"
	colRemarks              = "備註"
	colSerialNumber         = "編號"

	colTransactionDate      = "交易年月日"
	colTransactionPenNumber = "交易筆棟數"
	colLandArea             = "土地移轉總面積平方公尺"
	colBuildingArea         = "建物移轉總面積平方公尺"
	colBuildingFloor        = "移轉層次"
	colTotalPrice           = "總價元"
	colParkingArea          = "車位移轉總面積平方公尺"
	colParkingPrice         = "車位總價元"
	colMainBuildingArea     = "主建物面積"
	colAuxiliaryArea        = "附屬建物面積"
	colBalconyArea          = "陽台面積"
	colHasElevator          = "電梯"

	colProjectName       = "建案名稱"
	colBuildingNumber    = "棟及號"
	colTerminationStatus = "解約情形"

	colRentalDate      = "租賃年月日"
	colRentalPenNumber = "租賃筆棟數"
	colRentalLandArea  = "土地面積平方公尺"
	colRentalBldgArea  = "建物總面積平方公尺"
	colRentalFloor     = "租賃層次"
	colHasFurniture    = "有無附傢俱"
	colRentalType      = "出租型態"
	colHasManager      = "有無管理員"
	colRentalPeriod    = "租賃期間"
	colRentalElevator  = "有無電梯"
	colEquipment       = "附屬設備"
	colRentalService   = "租賃住宅服務"
	colMonthlyRent     = "總額元"
	colRentParkingArea = "車位面積平方公尺"
	colRentParkingFee  = "車位總額元"
)

func common(row map[string]string) domain.PropertyCommon {
	return domain.PropertyCommon{
		TransactionTarget:        normalize.String(row[colTransactionTarget]),
		LandLocation:             normalize.String(row[colLandLocation]),
		UrbanLandUseType:         normalize.String(row[colUrbanLandUse]),
		NonUrbanLandUseType:      normalize.String(row[colNonUrbanLandUse]),
		NonUrbanLandUseCategory:  normalize.String(row[colNonUrbanLandUseCat]),
		BuildingType:             normalize.String(row[colBuildingType]),
		MainUse:                  normalize.String(row[colMainUse]),
		MainBuildingMaterials:    normalize.String(row[colMainMaterials]),
		ConstructionCompleteDate: normalize.String(row[colConstructionComplete]),
		BuildingRooms:            normalize.Integer(row[colRooms]),
		BuildingHalls:            normalize.Integer(row[colHalls]),
		BuildingBathrooms:        normalize.Integer(row[colBathrooms]),
		BuildingCompartments:     normalize.YesNo(row[colCompartments]),
		HasManagement:            normalize.YesNo(row[colHasManagement]),
		TotalFloorNumber:         normalize.Integer(row[colTotalFloors]),
		UnitPriceNTD:             normalize.Numeric(row[colUnitPrice]),
		ParkingType:              normalize.String(row[colParkingType]),
		Remarks:                  normalize.String(row[colRemarks]),
		SerialNumber:             normalize.String(row[colSerialNumber]),
	}
}

// locate resolves the district cell into a (city, district) pair.
func locate(row map[string]string, table *regions.Table) (string, string, bool) {
	district := normalize.String(row[colDistrict])
	if district == nil {
		return "", "", false
	}
	city, ok := table.CityFor(*district)
	if !ok {
		return "", "", false
	}
	return city, *district, true
}

// Transaction assembles one sale record. The second return is false when the
// row fails a required field and must be skipped.
func Transaction(row map[string]string, table *regions.Table) (*domain.Transaction, bool) {
	city, district, ok := locate(row, table)
	if !ok {
		return nil, false
	}
	date := roc.Date(row[colTransactionDate])
	if date == nil {
		return nil, false
	}
	price := normalize.Numeric(row[colTotalPrice])
	if price == nil {
		return nil, false
	}

	rec := &domain.Transaction{
		PropertyCommon:        common(row),
		City:                  city,
		TransactionDate:       *date,
		TransactionPenNumber:  normalize.String(row[colTransactionPenNumber]),
		LandAreaSqm:           normalize.Numeric(row[colLandArea]),
		BuildingAreaSqm:       normalize.Numeric(row[colBuildingArea]),
		BuildingFloorNumber:   normalize.String(row[colBuildingFloor]),
		TotalPriceNTD:         *price,
		ParkingAreaSqm:        normalize.Numeric(row[colParkingArea]),
		ParkingPriceNTD:       normalize.Numeric(row[colParkingPrice]),
		MainBuildingArea:      normalize.Numeric(row[colMainBuildingArea]),
		AuxiliaryBuildingArea: normalize.Numeric(row[colAuxiliaryArea]),
		BalconyArea:           normalize.Numeric(row[colBalconyArea]),
		HasElevator:           normalize.YesNo(row[colHasElevator]),
	}
	rec.District = district
	return rec, true
}

// Presale assembles one pre-sale contract record.
func Presale(row map[string]string, table *regions.Table) (*domain.Presale, bool) {
	city, district, ok := locate(row, table)
	if !ok {
		return nil, false
	}
	date := roc.Date(row[colTransactionDate])
	if date == nil {
		return nil, false
	}
	price := normalize.Numeric(row[colTotalPrice])
	if price == nil {
		return nil, false
	}

	rec := &domain.Presale{
		PropertyCommon:       common(row),
		City:                 city,
		TransactionDate:      *date,
		TransactionPenNumber: normalize.String(row[colTransactionPenNumber]),
		LandAreaSqm:          normalize.Numeric(row[colLandArea]),
		BuildingAreaSqm:      normalize.Numeric(row[colBuildingArea]),
		BuildingFloorNumber:  normalize.String(row[colBuildingFloor]),
		TotalPriceNTD:        *price,
		ParkingAreaSqm:       normalize.Numeric(row[colParkingArea]),
		ParkingPriceNTD:      normalize.Numeric(row[colParkingPrice]),
		ProjectName:          normalize.String(row[colProjectName]),
		BuildingNumber:       normalize.String(row[colBuildingNumber]),
		TerminationStatus:    normalize.String(row[colTerminationStatus]),
	}
	rec.District = district
	return rec, true
}

// Rental assembles one lease record.
func Rental(row map[string]string, table *regions.Table) (*domain.Rental, bool) {
	city, district, ok := locate(row, table)
	if !ok {
		return nil, false
	}
	date := roc.Date(row[colRentalDate])
	if date == nil {
		return nil, false
	}
	rent := normalize.Numeric(row[colMonthlyRent])
	if rent == nil {
		return nil, false
	}

	rec := &domain.Rental{
		PropertyCommon:      common(row),
		City:                city,
		RentalDate:          *date,
		RentalPenNumber:     normalize.String(row[colRentalPenNumber]),
		LandAreaSqm:         normalize.Numeric(row[colRentalLandArea]),
		BuildingAreaSqm:     normalize.Numeric(row[colRentalBldgArea]),
		BuildingFloorNumber: normalize.String(row[colRentalFloor]),
		HasFurniture:        normalize.YesNo(row[colHasFurniture]),
		RentalType:          normalize.String(row[colRentalType]),
		HasManager:          normalize.YesNo(row[colHasManager]),
		RentalPeriod:        normalize.String(row[colRentalPeriod]),
		HasElevator:         normalize.YesNo(row[colRentalElevator]),
		Equipment:           normalize.String(row[colEquipment]),
		RentalService:       normalize.String(row[colRentalService]),
		MonthlyRentNTD:      *rent,
		ParkingAreaSqm:      normalize.Numeric(row[colRentParkingArea]),
		ParkingRentNTD:      normalize.Numeric(row[colRentParkingFee]),
	}
	rec.District = district
	return rec, true
}

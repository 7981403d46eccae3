package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lvr-storage-service/internal/core/domain"
)

const rentalTable = "property_rentals"

const rentalColumns = `id, city, district, transaction_target, land_location,
	urban_land_use_type, non_urban_land_use_type, non_urban_land_use_category,
	building_type, main_use, main_building_materials, construction_complete_date,
	building_rooms, building_halls, building_bathrooms, building_compartments,
	has_management, total_floor_number, unit_price_ntd, parking_type, remarks,
	serial_number, rental_date, rental_pen_number, land_area_sqm,
	building_area_sqm, building_floor_number, has_furniture, rental_type,
	has_manager, rental_period, has_elevator, equipment, rental_service,
	monthly_rent_ntd, parking_area_sqm, parking_rent_ntd`

var rentalInsertColumns = []string{
	"city", "district", "transaction_target", "land_location",
	"urban_land_use_type", "non_urban_land_use_type", "non_urban_land_use_category",
	"building_type", "main_use", "main_building_materials", "construction_complete_date",
	"building_rooms", "building_halls", "building_bathrooms", "building_compartments",
	"has_management", "total_floor_number", "unit_price_ntd", "parking_type", "remarks",
	"serial_number", "rental_date", "rental_pen_number", "land_area_sqm",
	"building_area_sqm", "building_floor_number", "has_furniture", "rental_type",
	"has_manager", "rental_period", "has_elevator", "equipment", "rental_service",
	"monthly_rent_ntd", "parking_area_sqm", "parking_rent_ntd",
}

var rentalSortable = map[string]string{
	"rental_date":   "rental_date",
	"rent":          "monthly_rent_ntd",
	"building_area": "building_area_sqm",
}

// RentalStorageAdapter implements RentalStoragePort for PostgreSQL.
type RentalStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewRentalStorageAdapter(pool *pgxpool.Pool) (*RentalStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &RentalStorageAdapter{pool: pool}, nil
}

func scanRental(row pgx.Row) (*domain.Rental, error) {
	var rec domain.Rental
	err := row.Scan(
		&rec.ID, &rec.City, &rec.District, &rec.TransactionTarget, &rec.LandLocation,
		&rec.UrbanLandUseType, &rec.NonUrbanLandUseType, &rec.NonUrbanLandUseCategory,
		&rec.BuildingType, &rec.MainUse, &rec.MainBuildingMaterials, &rec.ConstructionCompleteDate,
		&rec.BuildingRooms, &rec.BuildingHalls, &rec.BuildingBathrooms, &rec.BuildingCompartments,
		&rec.HasManagement, &rec.TotalFloorNumber, &rec.UnitPriceNTD, &rec.ParkingType, &rec.Remarks,
		&rec.SerialNumber, &rec.RentalDate, &rec.RentalPenNumber, &rec.LandAreaSqm,
		&rec.BuildingAreaSqm, &rec.BuildingFloorNumber, &rec.HasFurniture, &rec.RentalType,
		&rec.HasManager, &rec.RentalPeriod, &rec.HasElevator, &rec.Equipment, &rec.RentalService,
		&rec.MonthlyRentNTD, &rec.ParkingAreaSqm, &rec.ParkingRentNTD,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *RentalStorageAdapter) Search(ctx context.Context, filters domain.RentalFilters, page domain.PageRequest) (*domain.Page[domain.Rental], error) {
	whereClause, args := applyRentalFilters(filters)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", rentalTable, whereClause)
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count rentals: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM %s %s %s LIMIT $%d OFFSET $%d",
		rentalColumns, rentalTable, whereClause,
		orderClause(rentalSortable, "rental_date", page),
		len(args)+1, len(args)+2,
	)
	dataArgs := append(args, page.Limit, page.Skip)

	rows, err := tx.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rentals: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Rental, 0, page.Limit)
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rental: %w", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rental rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit search transaction: %w", err)
	}

	return domain.NewPage(items, total, page.Skip, page.Limit), nil
}

func (a *RentalStorageAdapter) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", rentalColumns, rentalTable)
	rec, err := scanRental(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rental %d: %w", id, err)
	}
	return rec, nil
}

func (a *RentalStorageAdapter) BatchInsert(ctx context.Context, records []domain.Rental) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	copyRows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		copyRows = append(copyRows, []interface{}{
			rec.City, rec.District, rec.TransactionTarget, rec.LandLocation,
			rec.UrbanLandUseType, rec.NonUrbanLandUseType, rec.NonUrbanLandUseCategory,
			rec.BuildingType, rec.MainUse, rec.MainBuildingMaterials, rec.ConstructionCompleteDate,
			rec.BuildingRooms, rec.BuildingHalls, rec.BuildingBathrooms, rec.BuildingCompartments,
			rec.HasManagement, rec.TotalFloorNumber, rec.UnitPriceNTD, rec.ParkingType, rec.Remarks,
			rec.SerialNumber, rec.RentalDate, rec.RentalPenNumber, rec.LandAreaSqm,
			rec.BuildingAreaSqm, rec.BuildingFloorNumber, rec.HasFurniture, rec.RentalType,
			rec.HasManager, rec.RentalPeriod, rec.HasElevator, rec.Equipment, rec.RentalService,
			rec.MonthlyRentNTD, rec.ParkingAreaSqm, rec.ParkingRentNTD,
		})
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{rentalTable}, rentalInsertColumns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("failed to copy rentals: %w", err)
	}
	return tx.Commit(ctx)
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lvr-storage-service/internal/core/domain"
)

const presaleTable = "property_presales"

const presaleColumns = `id, city, district, transaction_target, land_location,
	urban_land_use_type, non_urban_land_use_type, non_urban_land_use_category,
	building_type, main_use, main_building_materials, construction_complete_date,
	building_rooms, building_halls, building_bathrooms, building_compartments,
	has_management, total_floor_number, unit_price_ntd, parking_type, remarks,
	serial_number, transaction_date, transaction_pen_number, land_area_sqm,
	building_area_sqm, building_floor_number, total_price_ntd, parking_area_sqm,
	parking_price_ntd, project_name, building_number, termination_status`

var presaleInsertColumns = []string{
	"city", "district", "transaction_target", "land_location",
	"urban_land_use_type", "non_urban_land_use_type", "non_urban_land_use_category",
	"building_type", "main_use", "main_building_materials", "construction_complete_date",
	"building_rooms", "building_halls", "building_bathrooms", "building_compartments",
	"has_management", "total_floor_number", "unit_price_ntd", "parking_type", "remarks",
	"serial_number", "transaction_date", "transaction_pen_number", "land_area_sqm",
	"building_area_sqm", "building_floor_number", "total_price_ntd", "parking_area_sqm",
	"parking_price_ntd", "project_name", "building_number", "termination_status",
}

var presaleSortable = map[string]string{
	"transaction_date": "transaction_date",
	"total_price":      "total_price_ntd",
	"building_area":    "building_area_sqm",
}

// PresaleStorageAdapter implements PresaleStoragePort for PostgreSQL.
type PresaleStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPresaleStorageAdapter(pool *pgxpool.Pool) (*PresaleStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PresaleStorageAdapter{pool: pool}, nil
}

func scanPresale(row pgx.Row) (*domain.Presale, error) {
	var rec domain.Presale
	err := row.Scan(
		&rec.ID, &rec.City, &rec.District, &rec.TransactionTarget, &rec.LandLocation,
		&rec.UrbanLandUseType, &rec.NonUrbanLandUseType, &rec.NonUrbanLandUseCategory,
		&rec.BuildingType, &rec.MainUse, &rec.MainBuildingMaterials, &rec.ConstructionCompleteDate,
		&rec.BuildingRooms, &rec.BuildingHalls, &rec.BuildingBathrooms, &rec.BuildingCompartments,
		&rec.HasManagement, &rec.TotalFloorNumber, &rec.UnitPriceNTD, &rec.ParkingType, &rec.Remarks,
		&rec.SerialNumber, &rec.TransactionDate, &rec.TransactionPenNumber, &rec.LandAreaSqm,
		&rec.BuildingAreaSqm, &rec.BuildingFloorNumber, &rec.TotalPriceNTD, &rec.ParkingAreaSqm,
		&rec.ParkingPriceNTD, &rec.ProjectName, &rec.BuildingNumber, &rec.TerminationStatus,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (a *PresaleStorageAdapter) Search(ctx context.Context, filters domain.PresaleFilters, page domain.PageRequest) (*domain.Page[domain.Presale], error) {
	whereClause, args := applyPresaleFilters(filters)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", presaleTable, whereClause)
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count presales: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM %s %s %s LIMIT $%d OFFSET $%d",
		presaleColumns, presaleTable, whereClause,
		orderClause(presaleSortable, "transaction_date", page),
		len(args)+1, len(args)+2,
	)
	dataArgs := append(args, page.Limit, page.Skip)

	rows, err := tx.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query presales: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Presale, 0, page.Limit)
	for rows.Next() {
		rec, err := scanPresale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan presale: %w", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read presale rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit search transaction: %w", err)
	}

	return domain.NewPage(items, total, page.Skip, page.Limit), nil
}

func (a *PresaleStorageAdapter) GetByID(ctx context.Context, id int64) (*domain.Presale, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", presaleColumns, presaleTable)
	rec, err := scanPresale(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get presale %d: %w", id, err)
	}
	return rec, nil
}

func (a *PresaleStorageAdapter) BatchInsert(ctx context.Context, records []domain.Presale) error {
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
			rec.SerialNumber, rec.TransactionDate, rec.TransactionPenNumber, rec.LandAreaSqm,
			rec.BuildingAreaSqm, rec.BuildingFloorNumber, rec.TotalPriceNTD, rec.ParkingAreaSqm,
			rec.ParkingPriceNTD, rec.ProjectName, rec.BuildingNumber, rec.TerminationStatus,
		})
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{presaleTable}, presaleInsertColumns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("failed to copy presales: %w", err)
	}
	return tx.Commit(ctx)
}

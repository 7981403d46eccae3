package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/etl/roc"
)

const transactionTable = "property_transactions"

const transactionColumns = `id, city, district, transaction_target, land_location,
	urban_land_use_type, non_urban_land_use_type, non_urban_land_use_category,
	building_type, main_use, main_building_materials, construction_complete_date,
	building_rooms, building_halls, building_bathrooms, building_compartments,
	has_management, total_floor_number, unit_price_ntd, parking_type, remarks,
	serial_number, transaction_date, transaction_pen_number, land_area_sqm,
	building_area_sqm, building_floor_number, total_price_ntd, parking_area_sqm,
	parking_price_ntd, main_building_area, auxiliary_building_area, balcony_area,
	has_elevator`

var transactionInsertColumns = []string{
	"city", "district", "transaction_target", "land_location",
	"urban_land_use_type", "non_urban_land_use_type", "non_urban_land_use_category",
	"building_type", "main_use", "main_building_materials", "construction_complete_date",
	"building_rooms", "building_halls", "building_bathrooms", "building_compartments",
	"has_management", "total_floor_number", "unit_price_ntd", "parking_type", "remarks",
	"serial_number", "transaction_date", "transaction_pen_number", "land_area_sqm",
	"building_area_sqm", "building_floor_number", "total_price_ntd", "parking_area_sqm",
	"parking_price_ntd", "main_building_area", "auxiliary_building_area", "balcony_area",
	"has_elevator",
}

var transactionSortable = map[string]string{
	"transaction_date": "transaction_date",
	"total_price":      "total_price_ntd",
	"unit_price":       "unit_price_ntd",
	"building_area":    "building_area_sqm",
}

// TransactionStorageAdapter implements TransactionStoragePort for PostgreSQL.
type TransactionStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewTransactionStorageAdapter(pool *pgxpool.Pool) (*TransactionStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TransactionStorageAdapter{pool: pool}, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var rec domain.Transaction
	err := row.Scan(
		&rec.ID, &rec.City, &rec.District, &rec.TransactionTarget, &rec.LandLocation,
		&rec.UrbanLandUseType, &rec.NonUrbanLandUseType, &rec.NonUrbanLandUseCategory,
		&rec.BuildingType, &rec.MainUse, &rec.MainBuildingMaterials, &rec.ConstructionCompleteDate,
		&rec.BuildingRooms, &rec.BuildingHalls, &rec.BuildingBathrooms, &rec.BuildingCompartments,
		&rec.HasManagement, &rec.TotalFloorNumber, &rec.UnitPriceNTD, &rec.ParkingType, &rec.Remarks,
		&rec.SerialNumber, &rec.TransactionDate, &rec.TransactionPenNumber, &rec.LandAreaSqm,
		&rec.BuildingAreaSqm, &rec.BuildingFloorNumber, &rec.TotalPriceNTD, &rec.ParkingAreaSqm,
		&rec.ParkingPriceNTD, &rec.MainBuildingArea, &rec.AuxiliaryBuildingArea, &rec.BalconyArea,
		&rec.HasElevator,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Search runs the count and the window query in one transaction so both see
// the same filtered set.
func (a *TransactionStorageAdapter) Search(ctx context.Context, filters domain.TransactionFilters, page domain.PageRequest) (*domain.Page[domain.Transaction], error) {
	whereClause, args := applyTransactionFilters(filters, roc.CurrentYear(time.Now()))

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s %s", transactionTable, whereClause)
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	dataQuery := fmt.Sprintf(
		"SELECT %s FROM %s %s %s LIMIT $%d OFFSET $%d",
		transactionColumns, transactionTable, whereClause,
		orderClause(transactionSortable, "transaction_date", page),
		len(args)+1, len(args)+2,
	)
	dataArgs := append(args, page.Limit, page.Skip)

	rows, err := tx.Query(ctx, dataQuery, dataArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Transaction, 0, page.Limit)
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit search transaction: %w", err)
	}

	return domain.NewPage(items, total, page.Skip, page.Limit), nil
}

func (a *TransactionStorageAdapter) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", transactionColumns, transactionTable)
	rec, err := scanTransaction(a.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return rec, nil
}

// BatchInsert writes one batch atomically through the COPY protocol.
func (a *TransactionStorageAdapter) BatchInsert(ctx context.Context, records []domain.Transaction) error {
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
			rec.ParkingPriceNTD, rec.MainBuildingArea, rec.AuxiliaryBuildingArea, rec.BalconyArea,
			rec.HasElevator,
		})
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{transactionTable}, transactionInsertColumns, pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("failed to copy transactions: %w", err)
	}
	return tx.Commit(ctx)
}

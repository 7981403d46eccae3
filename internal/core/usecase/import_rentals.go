package usecase

import (
	"context"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/etl/assemble"
	"lvr-storage-service/internal/etl/regions"
)

type ImportRentalsUseCase struct {
	source   port.ExtractSourcePort
	storage  port.RentalStoragePort
	reporter port.IngestReporterPort
	regions  *regions.Table
}

func NewImportRentalsUseCase(
	source port.ExtractSourcePort,
	storage port.RentalStoragePort,
	reporter port.IngestReporterPort,
	table *regions.Table,
) *ImportRentalsUseCase {
	return &ImportRentalsUseCase{source: source, storage: storage, reporter: reporter, regions: table}
}

func (uc *ImportRentalsUseCase) Execute(ctx context.Context, pattern string, batchSize int) (*domain.IngestReport, error) {
	return runImport(ctx, "rentals", pattern, batchSize, uc.source, uc.reporter,
		func(row map[string]string) (*domain.Rental, bool) {
			return assemble.Rental(row, uc.regions)
		},
		uc.storage.BatchInsert,
	)
}

package usecase

import (
	"context"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/etl/assemble"
	"lvr-storage-service/internal/etl/regions"
)

type ImportTransactionsUseCase struct {
	source   port.ExtractSourcePort
	storage  port.TransactionStoragePort
	reporter port.IngestReporterPort
	regions  *regions.Table
}

func NewImportTransactionsUseCase(
	source port.ExtractSourcePort,
	storage port.TransactionStoragePort,
	reporter port.IngestReporterPort,
	table *regions.Table,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{source: source, storage: storage, reporter: reporter, regions: table}
}

func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, pattern string, batchSize int) (*domain.IngestReport, error) {
	return runImport(ctx, "transactions", pattern, batchSize, uc.source, uc.reporter,
		func(row map[string]string) (*domain.Transaction, bool) {
			return assemble.Transaction(row, uc.regions)
		},
		uc.storage.BatchInsert,
	)
}

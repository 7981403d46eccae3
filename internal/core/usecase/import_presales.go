package usecase

import (
	"context"

	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/etl/assemble"
	"lvr-storage-service/internal/etl/regions"
)

type ImportPresalesUseCase struct {
	source   port.ExtractSourcePort
	storage  port.PresaleStoragePort
	reporter port.IngestReporterPort
	regions  *regions.Table
}

func NewImportPresalesUseCase(
	source port.ExtractSourcePort,
	storage port.PresaleStoragePort,
	reporter port.IngestReporterPort,
	table *regions.Table,
) *ImportPresalesUseCase {
	return &ImportPresalesUseCase{source: source, storage: storage, reporter: reporter, regions: table}
}

func (uc *ImportPresalesUseCase) Execute(ctx context.Context, pattern string, batchSize int) (*domain.IngestReport, error) {
	return runImport(ctx, "presales", pattern, batchSize, uc.source, uc.reporter,
		func(row map[string]string) (*domain.Presale, bool) {
			return assemble.Presale(row, uc.regions)
		},
		uc.storage.BatchInsert,
	)
}

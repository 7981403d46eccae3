package usecases_port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

// ImportExtractsUseCase runs one ingestion over a glob of extract files and
// returns the run report. One interface per extract category.
type ImportExtractsUseCase interface {
	Execute(ctx context.Context, pattern string, batchSize int) (*domain.IngestReport, error)
}

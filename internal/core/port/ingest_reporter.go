package port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

// IngestReporterPort publishes the summary of a finished ingestion run.
// Implementations may be a no-op when no broker is configured.
type IngestReporterPort interface {
	ReportIngestRun(ctx context.Context, report domain.IngestReport) error
}

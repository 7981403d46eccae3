package usecase

import (
	"context"
	"fmt"
	"time"

	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
)

// DefaultBatchSize is used when the caller passes a non-positive batch size.
const DefaultBatchSize = 1000

// runImport is the shared ingestion loop. Rows stream file by file; full
// batches are written as they fill, each in its own storage transaction. A
// failed batch aborts the run but earlier batches stay committed. A rejected
// row is counted and skipped, it never fails the run.
func runImport[T any](
	ctx context.Context,
	category string,
	pattern string,
	batchSize int,
	source port.ExtractSourcePort,
	reporter port.IngestReporterPort,
	build func(row map[string]string) (*T, bool),
	save func(ctx context.Context, records []T) error,
) (*domain.IngestReport, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ImportExtracts",
		"category": category,
		"pattern":  pattern,
	})
	logger.Info("Use case started", nil)

	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	files, err := source.List(pattern)
	if err != nil {
		logger.Error("Failed to expand input pattern", err, nil)
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no extract files match pattern %q", pattern)
	}

	report := &domain.IngestReport{
		Category:  category,
		Files:     len(files),
		StartedAt: time.Now().UTC(),
	}

	batch := make([]T, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := save(ctx, batch); err != nil {
			return err
		}
		report.RowsSaved += len(batch)
		report.Batches++
		batch = batch[:0]
		return nil
	}

	for _, file := range files {
		fileLogger := logger.WithFields(port.Fields{"file": file})
		fileLogger.Info("Reading extract file", nil)

		err := source.ReadRows(ctx, file, func(row map[string]string) error {
			report.RowsRead++
			rec, ok := build(row)
			if !ok {
				report.RowsSkipped++
				return nil
			}
			batch = append(batch, *rec)
			if len(batch) == batchSize {
				return flush()
			}
			return nil
		})
		if err != nil {
			fileLogger.Error("Ingestion aborted", err, port.Fields{
				"rows_saved": report.RowsSaved,
			})
			return nil, err
		}
	}

	if err := flush(); err != nil {
		logger.Error("Ingestion aborted on final batch", err, port.Fields{
			"rows_saved": report.RowsSaved,
		})
		return nil, err
	}

	report.FinishedAt = time.Now().UTC()

	if reporter != nil {
		if err := reporter.ReportIngestRun(ctx, *report); err != nil {
			// The data is already committed, a lost report is not fatal.
			logger.Warn("Failed to publish ingest report", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Use case finished successfully", port.Fields{
		"rows_read":    report.RowsRead,
		"rows_skipped": report.RowsSkipped,
		"rows_saved":   report.RowsSaved,
		"batches":      report.Batches,
	})
	return report, nil
}

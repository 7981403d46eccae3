package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lvr-storage-service/internal"
	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/core/port/usecases_port"
)

var (
	pattern   string
	batchSize int
)

func runImport(selectUseCase func(app *internal.IngestApp) usecases_port.ImportExtractsUseCase) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := internal.NewIngestApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx = contextkeys.ContextWithLogger(ctx, app.Logger())

		size := batchSize
		if size <= 0 {
			size = app.Config.Ingest.BatchSize
		}
		report, err := selectUseCase(app).Execute(ctx, pattern, size)
		if err != nil {
			return err
		}

		app.Logger().Info("Ingestion run complete", port.Fields{
			"category":     report.Category,
			"files":        report.Files,
			"rows_read":    report.RowsRead,
			"rows_skipped": report.RowsSkipped,
			"rows_saved":   report.RowsSaved,
			"batches":      report.Batches,
			"duration":     report.FinishedAt.Sub(report.StartedAt).String(),
		})
		return nil
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "lvr-ingest",
		Short: "Load government real-estate extract files into the database",
	}

	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", "", "glob pattern of extract files to load")
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch-size", 0, "rows per insert batch (0 uses the configured default)")
	rootCmd.MarkPersistentFlagRequired("pattern")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "transactions",
			Short: "Import sale transaction extracts",
			RunE: runImport(func(app *internal.IngestApp) usecases_port.ImportExtractsUseCase {
				return app.ImportTransactions
			}),
		},
		&cobra.Command{
			Use:   "presales",
			Short: "Import pre-sale contract extracts",
			RunE: runImport(func(app *internal.IngestApp) usecases_port.ImportExtractsUseCase {
				return app.ImportPresales
			}),
		},
		&cobra.Command{
			Use:   "rentals",
			Short: "Import rental extracts",
			RunE: runImport(func(app *internal.IngestApp) usecases_port.ImportExtractsUseCase {
				return app.ImportRentals
			}),
		},
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
}

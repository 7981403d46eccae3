package internal

import (
	"context"
	"fmt"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres_adapter "lvr-storage-service/internal/adapters/postgres"
	rabbitmq_adapter "lvr-storage-service/internal/adapters/rabbitmq"
	"lvr-storage-service/internal/configs"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/core/port/usecases_port"
	"lvr-storage-service/internal/core/usecase"
	"lvr-storage-service/internal/etl/regions"
	"lvr-storage-service/internal/etl/source"
)

// IngestApp is the composition root of the ingestion CLI. It wires the same
// storage adapters as the service, plus the extract reader and the optional
// report publisher.
type IngestApp struct {
	Config *configs.AppConfig

	ImportTransactions usecases_port.ImportExtractsUseCase
	ImportPresales     usecases_port.ImportExtractsUseCase
	ImportRentals      usecases_port.ImportExtractsUseCase

	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	reporter     *rabbitmq_adapter.IngestReportPublisher
	logger       port.LoggerPort
}

func NewIngestApp(ctx context.Context) (*IngestApp, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := buildLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "ingest"})

	regionTable, err := regions.Load()
	if err != nil {
		appLogger.Error("Failed to load region table", err, nil)
		return nil, fmt.Errorf("failed to load region table: %w", err)
	}
	appLogger.Info("Region table loaded", port.Fields{"version": regionTable.Version()})

	dbPool, err := postgres_adapter.NewClient(ctx, appConfig.Database.URL)
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	transactionStorage, err := postgres_adapter.NewTransactionStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	presaleStorage, err := postgres_adapter.NewPresaleStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	rentalStorage, err := postgres_adapter.NewRentalStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	var publisher *rabbitmq_adapter.IngestReportPublisher
	var reporter port.IngestReporterPort
	if appConfig.RabbitMQ.Enabled {
		publisher, err = rabbitmq_adapter.NewIngestReportPublisher(appConfig.RabbitMQ.URL)
		if err != nil {
			appLogger.Error("Failed to create ingest report publisher", err, nil)
			dbPool.Close()
			return nil, err
		}
		reporter = publisher
		appLogger.Info("Ingest report publisher initialized.", nil)
	}

	reader := source.NewReader(source.Options{Big5: appConfig.Ingest.Big5})

	return &IngestApp{
		Config:             appConfig,
		ImportTransactions: usecase.NewImportTransactionsUseCase(reader, transactionStorage, reporter, regionTable),
		ImportPresales:     usecase.NewImportPresalesUseCase(reader, presaleStorage, reporter, regionTable),
		ImportRentals:      usecase.NewImportRentalsUseCase(reader, rentalStorage, reporter, regionTable),
		dbPool:             dbPool,
		fluentClient:       fluentClient,
		reporter:           publisher,
		logger:             appLogger,
	}, nil
}

func (a *IngestApp) Logger() port.LoggerPort {
	return a.logger
}

func (a *IngestApp) Close() {
	if a.reporter != nil {
		if err := a.reporter.Close(); err != nil {
			a.logger.Error("Error closing ingest report publisher", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
	}
	if a.fluentClient != nil {
		a.fluentClient.Close()
	}
}

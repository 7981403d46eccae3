package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	logger_adapter "lvr-storage-service/internal/adapters/logger"
	postgres_adapter "lvr-storage-service/internal/adapters/postgres"
	"lvr-storage-service/internal/adapters/rest"
	"lvr-storage-service/internal/configs"
	"lvr-storage-service/internal/core/port"
	"lvr-storage-service/internal/core/usecase"
)

// App is the REST service application.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// buildLogger assembles the composite logger from the configuration: colored
// stdout always, Fluent Bit when enabled.
func buildLogger(appConfig *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	return baseLogger, fluentClient, nil
}

// NewApp is the composition root: all dependencies are created and wired here.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	baseLogger, fluentClient, err := buildLogger(appConfig)
	if err != nil {
		return nil, err
	}

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})

	dbPool, err := postgres_adapter.NewClient(context.Background(), appConfig.Database.URL)
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	transactionStorage, err := postgres_adapter.NewTransactionStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create transaction storage adapter: %w", err)
	}
	presaleStorage, err := postgres_adapter.NewPresaleStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create presale storage adapter: %w", err)
	}
	rentalStorage, err := postgres_adapter.NewRentalStorageAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create rental storage adapter: %w", err)
	}
	appLogger.Info("Postgres storage adapters initialized.", nil)

	searchTransactionsUseCase := usecase.NewSearchTransactionsUseCase(transactionStorage)
	getTransactionUseCase := usecase.NewGetTransactionUseCase(transactionStorage)
	searchPresalesUseCase := usecase.NewSearchPresalesUseCase(presaleStorage)
	getPresaleUseCase := usecase.NewGetPresaleUseCase(presaleStorage)
	searchRentalsUseCase := usecase.NewSearchRentalsUseCase(rentalStorage)
	getRentalUseCase := usecase.NewGetRentalUseCase(rentalStorage)
	appLogger.Info("All use cases initialized.", nil)

	transactionHandler := rest.NewTransactionHandler(searchTransactionsUseCase, getTransactionUseCase)
	presaleHandler := rest.NewPresaleHandler(searchPresalesUseCase, getPresaleUseCase)
	rentalHandler := rest.NewRentalHandler(searchRentalsUseCase, getRentalUseCase)

	apiServer := rest.NewServer(appConfig.Rest.PORT, transactionHandler, presaleHandler, rentalHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the HTTP server and blocks until a signal or a fatal error.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

package usecase

import (
	"context"

	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
)

type SearchPresalesUseCase struct {
	storage port.PresaleStoragePort
}

func NewSearchPresalesUseCase(storage port.PresaleStoragePort) *SearchPresalesUseCase {
	return &SearchPresalesUseCase{storage: storage}
}

func (uc *SearchPresalesUseCase) Execute(ctx context.Context, filters domain.PresaleFilters, page domain.PageRequest) (*domain.Page[domain.Presale], error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "SearchPresales",
		"skip":     page.Skip,
		"limit":    page.Limit,
	})
	logger.Info("Use case started", nil)

	if err := page.Validate(); err != nil {
		logger.Warn("Invalid page request", port.Fields{"error": err.Error()})
		return nil, err
	}

	result, err := uc.storage.Search(ctx, filters, page)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	logger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.Total,
		"items_on_page": len(result.Items),
	})
	return result, nil
}

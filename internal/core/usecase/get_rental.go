package usecase

import (
	"context"

	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
)

type GetRentalUseCase struct {
	storage port.RentalStoragePort
}

func NewGetRentalUseCase(storage port.RentalStoragePort) *GetRentalUseCase {
	return &GetRentalUseCase{storage: storage}
}

func (uc *GetRentalUseCase) Execute(ctx context.Context, id int64) (*domain.Rental, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetRental",
		"id":       id,
	})
	logger.Info("Use case started", nil)

	result, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		logger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	logger.Info("Use case finished successfully", nil)
	return result, nil
}

package usecase

import (
	"context"

	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
)

type GetPresaleUseCase struct {
	storage port.PresaleStoragePort
}

func NewGetPresaleUseCase(storage port.PresaleStoragePort) *GetPresaleUseCase {
	return &GetPresaleUseCase{storage: storage}
}

func (uc *GetPresaleUseCase) Execute(ctx context.Context, id int64) (*domain.Presale, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetPresale",
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

package usecase

import (
	"context"

	"lvr-storage-service/internal/contextkeys"
	"lvr-storage-service/internal/core/domain"
	"lvr-storage-service/internal/core/port"
)

type GetTransactionUseCase struct {
	storage port.TransactionStoragePort
}

func NewGetTransactionUseCase(storage port.TransactionStoragePort) *GetTransactionUseCase {
	return &GetTransactionUseCase{storage: storage}
}

func (uc *GetTransactionUseCase) Execute(ctx context.Context, id int64) (*domain.Transaction, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetTransaction",
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

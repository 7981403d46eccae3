package usecases_port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

type GetTransactionUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Transaction, error)
}

type GetPresaleUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Presale, error)
}

type GetRentalUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Rental, error)
}

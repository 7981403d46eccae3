package usecases_port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

type SearchTransactionsUseCase interface {
	Execute(ctx context.Context, filters domain.TransactionFilters, page domain.PageRequest) (*domain.Page[domain.Transaction], error)
}

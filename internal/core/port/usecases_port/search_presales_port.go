package usecases_port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

type SearchPresalesUseCase interface {
	Execute(ctx context.Context, filters domain.PresaleFilters, page domain.PageRequest) (*domain.Page[domain.Presale], error)
}

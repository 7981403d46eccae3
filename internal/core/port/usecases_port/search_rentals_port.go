package usecases_port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

type SearchRentalsUseCase interface {
	Execute(ctx context.Context, filters domain.RentalFilters, page domain.PageRequest) (*domain.Page[domain.Rental], error)
}

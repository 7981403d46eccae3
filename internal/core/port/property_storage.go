package port

import (
	"context"

	"lvr-storage-service/internal/core/domain"
)

// TransactionStoragePort is the persistence capability for sale transactions.
// Search evaluates the composed predicate once: the count and the window come
// from the same filtered set.
type TransactionStoragePort interface {
	Search(ctx context.Context, filters domain.TransactionFilters, page domain.PageRequest) (*domain.Page[domain.Transaction], error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	BatchInsert(ctx context.Context, records []domain.Transaction) error
}

// PresaleStoragePort is the persistence capability for pre-sale contracts.
type PresaleStoragePort interface {
	Search(ctx context.Context, filters domain.PresaleFilters, page domain.PageRequest) (*domain.Page[domain.Presale], error)
	GetByID(ctx context.Context, id int64) (*domain.Presale, error)
	BatchInsert(ctx context.Context, records []domain.Presale) error
}

// RentalStoragePort is the persistence capability for rentals.
type RentalStoragePort interface {
	Search(ctx context.Context, filters domain.RentalFilters, page domain.PageRequest) (*domain.Page[domain.Rental], error)
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	BatchInsert(ctx context.Context, records []domain.Rental) error
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// ProductFilterParams holds the filter parameters for listing products
type ProductFilterParams struct {
	Search     string
	LowStock   bool
	ActiveOnly bool
	Pagination pagination.PaginationParams
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListActive(ctx context.Context) ([]entity.Product, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)

	// DecrementStockBatch atomically subtracts the given quantities,
	// guarded so stock never goes negative. It returns the IDs of
	// products whose stock could not cover the decrement; when any are
	// returned no stock was changed for them.
	DecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error)

	// IncrementStockBatch atomically adds the given quantities.
	IncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error

	// StockValue returns Σ(available_stock × unit_price) over active products.
	StockValue(ctx context.Context) (float64, error)
}

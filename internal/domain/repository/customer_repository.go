package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// PartyFilterParams holds the filter parameters for listing customers or vendors
type PartyFilterParams struct {
	Search     string
	Pagination pagination.PaginationParams
}

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Customer, int64, error)

	// AddToBalance adjusts the receivable balance by delta (positive or
	// negative) as a single SQL update.
	AddToBalance(ctx context.Context, id uuid.UUID, delta float64) error

	// TopByBalance returns the customers with the highest outstanding balance.
	TopByBalance(ctx context.Context, limit int) ([]entity.Customer, error)
}

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PartyFilterParams) ([]entity.Vendor, int64, error)
	AddToBalance(ctx context.Context, id uuid.UUID, delta float64) error
}

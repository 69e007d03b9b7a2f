package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// BillFilterParams holds the filter parameters for listing bills
type BillFilterParams struct {
	CustomerID *uuid.UUID
	UserID     *uuid.UUID
	Status     *enum.BillStatus
	From       *time.Time
	To         *time.Time
	Pagination pagination.PaginationParams
}

// BillRepository defines the interface for bill data access
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	CreateItems(ctx context.Context, items []entity.BillItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	Update(ctx context.Context, bill *entity.Bill) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	Count(ctx context.Context) (int64, error)

	// SalesBetween returns bills dated within [from, to).
	SalesBetween(ctx context.Context, from, to time.Time) ([]entity.Bill, error)

	// SalesTotalBetween returns Σ(total_amount) over [from, to).
	SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error)

	// OutstandingTotal returns Σ(total_amount − paid_amount) over
	// unpaid bills.
	OutstandingTotal(ctx context.Context) (float64, error)
}

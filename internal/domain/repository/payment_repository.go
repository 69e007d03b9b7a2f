package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// PaymentFilterParams holds the filter parameters for listing payments
type PaymentFilterParams struct {
	CustomerID *uuid.UUID
	BillID     *uuid.UUID
	Pagination pagination.PaginationParams
}

// ExpenseFilterParams holds the filter parameters for listing expenses
type ExpenseFilterParams struct {
	VendorID   *uuid.UUID
	Category   string
	Pagination pagination.PaginationParams
}

// PaymentRepository defines the interface for payment and expense data access
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *entity.Payment) error
	ListPayments(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, int64, error)

	CreateExpense(ctx context.Context, expense *entity.Expense) error
	ListExpenses(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)

	// ExpenseTotalBetween returns Σ(amount) over [from, to).
	ExpenseTotalBetween(ctx context.Context, from, to time.Time) (float64, error)
}

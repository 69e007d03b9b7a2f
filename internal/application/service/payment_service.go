package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// PaymentService records customer payments and business expenses.
// Allocating a payment to a bill moves the bill's status and the
// customer's balance in the same transaction as the payment row.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
	vendorRepo   repository.VendorRepository
	tx           repository.Transactor
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	billRepo repository.BillRepository,
	customerRepo repository.CustomerRepository,
	vendorRepo repository.VendorRepository,
	tx repository.Transactor,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		billRepo:     billRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		tx:           tx,
	}
}

// RecordPaymentInput represents a customer payment
type RecordPaymentInput struct {
	CustomerID uuid.UUID
	BillID     *uuid.UUID
	Amount     float64
	Mode       enum.PaymentMode
	Notes      string
}

// RecordPayment records money received. With a bill ID the payment is
// allocated to that bill; without one it is an on-account payment that
// only reduces the customer's balance.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}
	if !input.Mode.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment mode: " + string(input.Mode))
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	var bill *entity.Bill
	if input.BillID != nil {
		bill, err = s.billRepo.GetByID(ctx, *input.BillID)
		if err != nil {
			return nil, err
		}
		if bill == nil {
			return nil, apperror.NewNotFoundError("Bill")
		}
		if bill.CustomerID != input.CustomerID {
			return nil, apperror.NewBadRequestError("Bill belongs to a different customer")
		}
		if bill.Status == enum.BillStatusPaid {
			return nil, apperror.NewBadRequestError("Bill is already fully paid")
		}
		if input.Amount > bill.Due()+totalTolerance {
			return nil, apperror.NewBadRequestError("Payment exceeds the amount due on the bill")
		}
	}

	payment := &entity.Payment{
		CustomerID: input.CustomerID,
		BillID:     input.BillID,
		Amount:     input.Amount,
		Mode:       input.Mode,
		Date:       time.Now(),
		Notes:      input.Notes,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
			return err
		}
		if bill != nil {
			bill.PaidAmount += input.Amount
			bill.Status = statusFor(bill.PaidAmount, bill.TotalAmount)
			if err := s.billRepo.Update(ctx, bill); err != nil {
				return err
			}
		}
		return s.customerRepo.AddToBalance(ctx, input.CustomerID, -input.Amount)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments lists payments with optional customer/bill filters
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.ListPayments(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// RecordExpenseInput represents an expense
type RecordExpenseInput struct {
	VendorID *uuid.UUID
	Category string
	Amount   float64
	Notes    string
}

// RecordExpense records money going out. With a vendor ID the expense
// also settles that much of the vendor's payable balance.
func (s *PaymentService) RecordExpense(ctx context.Context, input *RecordExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be positive")
	}
	if input.Category == "" {
		return nil, apperror.NewBadRequestError("Category is required")
	}

	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, apperror.NewNotFoundError("Vendor")
		}
	}

	expense := &entity.Expense{
		VendorID: input.VendorID,
		Category: input.Category,
		Amount:   input.Amount,
		Date:     time.Now(),
		Notes:    input.Notes,
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.paymentRepo.CreateExpense(ctx, expense); err != nil {
			return err
		}
		if input.VendorID != nil {
			return s.vendorRepo.AddToBalance(ctx, *input.VendorID, -input.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses lists expenses with optional vendor/category filters
func (s *PaymentService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.paymentRepo.ListExpenses(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

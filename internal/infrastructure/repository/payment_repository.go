package repository

import (
	"context"
	"time"

	"github.com/manikandans/billbook-api/internal/domain/entity"
	domainRepo "github.com/manikandans/billbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment/expense repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	return conn(ctx, r.db).Create(payment).Error
}

func (r *paymentRepository) ListPayments(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := conn(ctx, r.db).Model(&entity.Payment{})
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.BillID != nil {
		query = query.Where("bill_id = ?", *params.BillID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Order("date DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&payments).Error
	return payments, total, err
}

func (r *paymentRepository) CreateExpense(ctx context.Context, expense *entity.Expense) error {
	return conn(ctx, r.db).Create(expense).Error
}

func (r *paymentRepository) ListExpenses(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := conn(ctx, r.db).Model(&entity.Expense{})
	if params.VendorID != nil {
		query = query.Where("vendor_id = ?", *params.VendorID)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Vendor").
		Order("date DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&expenses).Error
	return expenses, total, err
}

func (r *paymentRepository) ExpenseTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := conn(ctx, r.db).Model(&entity.Expense{}).
		Where("date >= ? AND date < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

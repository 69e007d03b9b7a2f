package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	domainRepo "github.com/manikandans/billbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return conn(ctx, r.db).Create(bill).Error
}

func (r *billRepository) CreateItems(ctx context.Context, items []entity.BillItem) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&items).Error
}

func (r *billRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := conn(ctx, r.db).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	var bill entity.Bill
	err := conn(ctx, r.db).
		Preload("Customer").
		Preload("Items").
		First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &bill, err
}

func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return conn(ctx, r.db).Save(bill).Error
}

func (r *billRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := conn(ctx, r.db)
	if err := db.Delete(&entity.BillItem{}, "bill_id = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&entity.Bill{}, "id = ?", id).Error
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := conn(ctx, r.db).Model(&entity.Bill{})
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.From != nil {
		query = query.Where("date_of_bill >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("date_of_bill < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Customer").
		Order("date_of_bill DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&bills).Error
	return bills, total, err
}

func (r *billRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.Bill{}).Count(&total).Error
	return total, err
}

func (r *billRepository) SalesBetween(ctx context.Context, from, to time.Time) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := conn(ctx, r.db).
		Where("date_of_bill >= ? AND date_of_bill < ?", from, to).
		Order("date_of_bill DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := conn(ctx, r.db).Model(&entity.Bill{}).
		Where("date_of_bill >= ? AND date_of_bill < ?", from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *billRepository) OutstandingTotal(ctx context.Context) (float64, error) {
	var total float64
	err := conn(ctx, r.db).Model(&entity.Bill{}).
		Where("status <> ?", enum.BillStatusPaid).
		Select("COALESCE(SUM(total_amount - paid_amount), 0)").
		Scan(&total).Error
	return total, err
}

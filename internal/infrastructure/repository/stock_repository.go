package repository

import (
	"context"

	"github.com/manikandans/billbook-api/internal/domain/entity"
	domainRepo "github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/pagination"
	"gorm.io/gorm"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock entry/damage repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) CreateEntry(ctx context.Context, entry *entity.StockEntry) error {
	return conn(ctx, r.db).Create(entry).Error
}

func (r *stockRepository) ListEntries(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockEntry, int64, error) {
	var entries []entity.StockEntry
	var total int64

	query := conn(ctx, r.db).Model(&entity.StockEntry{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Product").Preload("Vendor").
		Order("entry_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&entries).Error
	return entries, total, err
}

func (r *stockRepository) CreateDamage(ctx context.Context, damage *entity.DamagedStock) error {
	return conn(ctx, r.db).Create(damage).Error
}

func (r *stockRepository) ListDamage(ctx context.Context, params *pagination.PaginationParams) ([]entity.DamagedStock, int64, error) {
	var records []entity.DamagedStock
	var total int64

	query := conn(ctx, r.db).Model(&entity.DamagedStock{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Product").
		Order("date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&records).Error
	return records, total, err
}

func (r *stockRepository) RecentDamage(ctx context.Context, limit int) ([]entity.DamagedStock, error) {
	var records []entity.DamagedStock
	err := conn(ctx, r.db).Preload("Product").
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

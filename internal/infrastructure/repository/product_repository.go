package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	domainRepo "github.com/manikandans/billbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).First(&product, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := conn(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.LowStock {
		query = query.Where("available_stock <= low_stock_threshold")
	}
	if params.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Order("created_at DESC").
		Offset(params.Pagination.Offset()).
		Limit(params.Pagination.PerPage).
		Find(&products).Error
	return products, total, err
}

func (r *productRepository) ListActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).Where("is_active = ?", true).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepository) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).
		Where("available_stock <= low_stock_threshold AND is_active = ?", true).
		Order("available_stock ASC").
		Find(&products).Error
	return products, err
}

// DecrementStockBatch subtracts quantities with a stock guard in the
// WHERE clause. A row that would go negative is not updated and its ID
// is reported back; inside a transaction the caller's rollback undoes
// the rows that did match.
func (r *productRepository) DecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	db := conn(ctx, r.db)

	for id, qty := range decrements {
		result := db.Model(&entity.Product{}).
			Where("id = ? AND available_stock >= ?", id, qty).
			Update("available_stock", gorm.Expr("available_stock - ?", qty))
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			failed = append(failed, id)
		}
	}
	return failed, nil
}

func (r *productRepository) IncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	db := conn(ctx, r.db)
	for id, qty := range increments {
		err := db.Model(&entity.Product{}).
			Where("id = ?", id).
			Update("available_stock", gorm.Expr("available_stock + ?", qty)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *productRepository) StockValue(ctx context.Context) (float64, error) {
	var value float64
	err := conn(ctx, r.db).Model(&entity.Product{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(available_stock * unit_price), 0)").
		Scan(&value).Error
	return value, err
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// ProductService handles catalog operations. Stock movements go through
// InventoryService and BillingService, never through product updates.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name              string
	Code              string
	LotSize           int
	UnitPrice         float64
	LowStockThreshold int
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	existing, err := s.productRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product code already in use")
	}

	if input.LotSize < 1 {
		input.LotSize = 1
	}
	threshold := input.LowStockThreshold
	if threshold <= 0 {
		threshold = 10
	}

	product := &entity.Product{
		Name:              input.Name,
		Code:              input.Code,
		LotSize:           input.LotSize,
		UnitPrice:         input.UnitPrice,
		LotPrice:          input.UnitPrice * float64(input.LotSize),
		LowStockThreshold: threshold,
		IsActive:          true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with optional search and low-stock filters
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// ListCatalog returns all active products, for the billing screen
func (s *ProductService) ListCatalog(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.ListActive(ctx)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID                uuid.UUID
	Name              *string
	LotSize           *int
	UnitPrice         *float64
	LowStockThreshold *int
	IsActive          *bool
}

// UpdateProduct updates a product. Lot price is re-derived from the unit
// price on save, so it is never set directly.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.LotSize != nil {
		if *input.LotSize < 1 {
			return nil, apperror.NewBadRequestError("Lot size must be at least 1")
		}
		product.LotSize = *input.LotSize
	}
	if input.UnitPrice != nil {
		product.UnitPrice = *input.UnitPrice
	}
	if input.LowStockThreshold != nil {
		product.LowStockThreshold = *input.LowStockThreshold
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.LotPrice = product.UnitPrice * float64(product.LotSize)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

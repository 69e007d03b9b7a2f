package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// InventoryService handles stock additions and damage write-offs. Both
// run inside a transaction so the ledger row and the stock counter never
// diverge.
type InventoryService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	vendorRepo  repository.VendorRepository
	paymentRepo repository.PaymentRepository
	tx          repository.Transactor
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	vendorRepo repository.VendorRepository,
	paymentRepo repository.PaymentRepository,
	tx repository.Transactor,
) *InventoryService {
	return &InventoryService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		vendorRepo:  vendorRepo,
		paymentRepo: paymentRepo,
		tx:          tx,
	}
}

// StockInInput represents a stock addition
type StockInInput struct {
	ProductID uuid.UUID
	VendorID  *uuid.UUID
	Quantity  int
	UnitCost  float64
	AddedBy   uuid.UUID

	// AmountPaid is how much of the purchase was settled immediately;
	// the remainder is added to the vendor's payable balance.
	AmountPaid float64
}

// StockIn adds purchased stock. When a vendor is given, the purchase is
// recorded as an expense and the unpaid remainder goes on the vendor's
// balance.
func (s *InventoryService) StockIn(ctx context.Context, input *StockInInput) (*entity.StockEntry, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
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

	entry := &entity.StockEntry{
		ProductID:     input.ProductID,
		VendorID:      input.VendorID,
		QuantityAdded: input.Quantity,
		UnitCost:      input.UnitCost,
		AddedBy:       input.AddedBy,
		EntryDate:     time.Now(),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.stockRepo.CreateEntry(ctx, entry); err != nil {
			return err
		}
		if err := s.productRepo.IncrementStockBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity}); err != nil {
			return err
		}

		if input.VendorID == nil || input.UnitCost <= 0 {
			return nil
		}

		cost := input.UnitCost * float64(input.Quantity)
		expense := &entity.Expense{
			VendorID: input.VendorID,
			Category: "stock_purchase",
			Amount:   cost,
			Date:     entry.EntryDate,
			Notes:    fmt.Sprintf("%d x %s", input.Quantity, product.Name),
		}
		if err := s.paymentRepo.CreateExpense(ctx, expense); err != nil {
			return err
		}

		unpaid := cost - input.AmountPaid
		if unpaid != 0 {
			return s.vendorRepo.AddToBalance(ctx, *input.VendorID, unpaid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListStockEntries lists stock additions, newest first
func (s *InventoryService) ListStockEntries(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockEntry], error) {
	entries, total, err := s.stockRepo.ListEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

// RecordDamageInput represents a damage write-off
type RecordDamageInput struct {
	ProductID  uuid.UUID
	Quantity   int
	Reason     string
	RecordedBy uuid.UUID
}

// RecordDamage writes off damaged stock. The decrement is guarded, so a
// write-off can never push available stock below zero.
func (s *InventoryService) RecordDamage(ctx context.Context, input *RecordDamageInput) (*entity.DamagedStock, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	damage := &entity.DamagedStock{
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Reason:     input.Reason,
		RecordedBy: input.RecordedBy,
		Date:       time.Now(),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		failed, err := s.productRepo.DecrementStockBatch(ctx, map[uuid.UUID]int{input.ProductID: input.Quantity})
		if err != nil {
			return err
		}
		if len(failed) > 0 {
			return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for %s", product.Name))
		}
		return s.stockRepo.CreateDamage(ctx, damage)
	})
	if err != nil {
		return nil, err
	}
	return damage, nil
}

// ListDamage lists damage records, newest first
func (s *InventoryService) ListDamage(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.DamagedStock], error) {
	records, total, err := s.stockRepo.ListDamage(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// GetLowStock returns products at or below their low-stock threshold
func (s *InventoryService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

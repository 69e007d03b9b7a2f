package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/billing"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// totalTolerance absorbs float accumulation differences between the
// client's running total and the server-side recomputation.
const totalTolerance = 0.01

// BillingService owns the bill lifecycle: draft editing, submission and
// delete-and-revert. Submission runs in a single transaction covering
// the bill, its items, stock decrements, the customer balance and order
// fulfilment.
type BillingService struct {
	billRepo     repository.BillRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	tx           repository.Transactor
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	tx repository.Transactor,
) *BillingService {
	return &BillingService{
		billRepo:     billRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		tx:           tx,
	}
}

// DraftState is the editor state returned after every draft operation:
// the full line list plus freshly computed totals. The client keeps the
// lines and sends them back with the next edit.
type DraftState struct {
	Items  []billing.Item     `json:"items"`
	Totals billing.BillTotals `json:"totals"`
}

// DraftInput carries the client-held editor state into a draft operation
type DraftInput struct {
	Items    []billing.Item
	Discount float64
	Tax      billing.TaxConfig
}

func (s *BillingService) catalogFor(ctx context.Context, items []billing.Item, extra ...uuid.UUID) ([]billing.CatalogEntry, error) {
	seen := make(map[uuid.UUID]bool, len(items)+len(extra))
	ids := make([]uuid.UUID, 0, len(items)+len(extra))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}
	for _, id := range extra {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]billing.CatalogEntry, len(products))
	for i, p := range products {
		entries[i] = billing.CatalogEntry{
			ID:             p.ID,
			Name:           p.Name,
			UnitPrice:      p.UnitPrice,
			LotSize:        p.LotSize,
			LotPrice:       p.LotPrice,
			AvailableStock: p.AvailableStock,
		}
	}
	return entries, nil
}

func (s *BillingService) draftState(d *billing.Draft, input *DraftInput) *DraftState {
	return &DraftState{
		Items:  d.Items(),
		Totals: d.Totals(input.Discount, input.Tax),
	}
}

// AddDraftItem appends a line for the product, seeded with one lot at
// catalog prices. Rejected when stock cannot cover a single lot.
func (s *BillingService) AddDraftItem(ctx context.Context, input *DraftInput, productID uuid.UUID) (*DraftState, error) {
	entries, err := s.catalogFor(ctx, input.Items, productID)
	if err != nil {
		return nil, err
	}

	draft := billing.NewDraftWith(entries, input.Items)
	if err := draft.Add(productID); err != nil {
		switch {
		case errors.Is(err, billing.ErrUnknownProduct):
			return nil, apperror.NewNotFoundError("Product")
		case errors.Is(err, billing.ErrInsufficientStock):
			return nil, apperror.NewBadRequestError(err.Error())
		}
		return nil, err
	}
	return s.draftState(draft, input), nil
}

// UpdateDraftItem applies one field edit to the line at the given index
func (s *BillingService) UpdateDraftItem(ctx context.Context, input *DraftInput, index int, edit billing.Edit) (*DraftState, error) {
	entries, err := s.catalogFor(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	draft := billing.NewDraftWith(entries, input.Items)
	if err := draft.Update(index, edit); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	return s.draftState(draft, input), nil
}

// RemoveDraftItem deletes the line at the given index
func (s *BillingService) RemoveDraftItem(ctx context.Context, input *DraftInput, index int) (*DraftState, error) {
	entries, err := s.catalogFor(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	draft := billing.NewDraftWith(entries, input.Items)
	if err := draft.Remove(index); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}
	return s.draftState(draft, input), nil
}

// PreviewDraft recomputes totals for the current lines without changing them
func (s *BillingService) PreviewDraft(ctx context.Context, input *DraftInput) (*DraftState, error) {
	return &DraftState{
		Items:  input.Items,
		Totals: billing.ComputeTotals(input.Items, input.Discount, input.Tax),
	}, nil
}

// CreateBillInput represents the bill submission input
type CreateBillInput struct {
	CustomerID uuid.UUID
	UserID     uuid.UUID
	OrderID    *uuid.UUID
	Items      []billing.Item
	Discount   float64
	Tax        billing.TaxConfig
	Comments   string

	// ExpectedTotal, when set, is the grand total the client displayed.
	// Submission is rejected when it disagrees with the server-side
	// recomputation beyond the float tolerance.
	ExpectedTotal *float64

	// AmountPaid is money collected at the counter; it is recorded as a
	// payment against the new bill. The remainder goes on the customer's
	// balance.
	AmountPaid  float64
	PaymentMode enum.PaymentMode
}

// CreateBill finalizes a bill. Totals are recomputed server-side from
// the submitted lines; the bill, its items, the stock decrements, the
// payment, the customer balance and order fulfilment commit atomically.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Bill must have at least one item")
	}
	if input.AmountPaid < 0 {
		return nil, apperror.NewBadRequestError("Paid amount cannot be negative")
	}
	if input.AmountPaid > 0 && !input.PaymentMode.Valid() {
		input.PaymentMode = enum.PaymentModeCash
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	totals := billing.ComputeTotals(input.Items, input.Discount, input.Tax)
	if input.ExpectedTotal != nil && math.Abs(totals.GrandTotal-*input.ExpectedTotal) > totalTolerance {
		return nil, apperror.NewBadRequestError(fmt.Sprintf(
			"Total mismatch: expected %.2f, computed %.2f", *input.ExpectedTotal, totals.GrandTotal))
	}
	if input.AmountPaid > totals.GrandTotal+totalTolerance {
		return nil, apperror.NewBadRequestError("Paid amount exceeds bill total")
	}

	// Aggregate decrements; the same product may appear on several lines.
	decrements := make(map[uuid.UUID]int)
	for _, it := range input.Items {
		if it.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		if it.UnitPrice <= 0 {
			return nil, apperror.NewBadRequestError("Item price must be positive")
		}
		decrements[it.ProductID] += it.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDsOf(decrements))
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	for id := range decrements {
		if _, ok := names[id]; !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", id))
		}
	}

	if input.OrderID != nil {
		order, err := s.orderRepo.GetWithItems(ctx, *input.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperror.NewNotFoundError("Order")
		}
		if order.CustomerID != input.CustomerID {
			return nil, apperror.NewBadRequestError("Order belongs to a different customer")
		}
		if order.Status != enum.OrderStatusPending {
			return nil, apperror.NewBadRequestError("Order is not pending")
		}
	}

	now := time.Now()
	bill := &entity.Bill{
		CustomerID:  input.CustomerID,
		UserID:      input.UserID,
		OrderID:     input.OrderID,
		DateOfBill:  now,
		IsGSTBill:   input.Tax.IsGSTBill,
		SGSTPercent: input.Tax.SGSTPercent,
		CGSTPercent: input.Tax.CGSTPercent,
		CESSPercent: input.Tax.CESSPercent,
		GSTAmount:   totals.GSTAmount(),
		Discount:    input.Discount,
		TotalAmount: totals.GrandTotal,
		PaidAmount:  input.AmountPaid,
		Status:      statusFor(input.AmountPaid, totals.GrandTotal),
		Comments:    input.Comments,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		seq, err := s.nextBillSequence(ctx, now)
		if err != nil {
			return err
		}
		bill.BillNo = fmt.Sprintf("B-%s-%04d", now.Format("20060102"), seq)

		failed, err := s.productRepo.DecrementStockBatch(ctx, decrements)
		if err != nil {
			return err
		}
		if len(failed) > 0 {
			short := make([]string, 0, len(failed))
			for _, id := range failed {
				short = append(short, names[id])
			}
			return apperror.NewBadRequestError(fmt.Sprintf("Insufficient stock for: %v", short))
		}

		if err := s.billRepo.Create(ctx, bill); err != nil {
			return err
		}

		items := make([]entity.BillItem, len(input.Items))
		for i, it := range input.Items {
			items[i] = entity.BillItem{
				BillID:      bill.ID,
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				LotSize:     it.LotSize,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				Total:       float64(it.Quantity) * it.UnitPrice,
			}
		}
		if err := s.billRepo.CreateItems(ctx, items); err != nil {
			return err
		}
		bill.Items = items

		if input.AmountPaid > 0 {
			payment := &entity.Payment{
				CustomerID: input.CustomerID,
				BillID:     &bill.ID,
				Amount:     input.AmountPaid,
				Mode:       input.PaymentMode,
				Date:       now,
			}
			if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
				return err
			}
		}

		if due := bill.Due(); due != 0 {
			if err := s.customerRepo.AddToBalance(ctx, input.CustomerID, due); err != nil {
				return err
			}
		}

		if input.OrderID != nil {
			return s.orderRepo.UpdateStatus(ctx, *input.OrderID, enum.OrderStatusFulfilled)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// nextBillSequence numbers bills per day, continuing past the highest
// suffix already issued so a deleted bill never frees its number for
// reuse. The unique constraint on bill_no catches the rare collision
// between concurrent submissions.
func (s *BillingService) nextBillSequence(ctx context.Context, now time.Time) (int, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	bills, err := s.billRepo.SalesBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, b := range bills {
		if i := strings.LastIndex(b.BillNo, "-"); i >= 0 {
			if n, err := strconv.Atoi(b.BillNo[i+1:]); err == nil && n > highest {
				highest = n
			}
		}
	}
	return highest + 1, nil
}

// GetBill retrieves a bill with its items and customer
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills lists bills with optional filters
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, pag), nil
}

// DeleteBill removes a bill and reverts its side effects: stock is
// restored, the unpaid remainder comes off the customer's balance and a
// fulfilled order goes back to pending. Payments already recorded stay
// on the ledger.
func (s *BillingService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetWithItems(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}

	increments := make(map[uuid.UUID]int)
	for _, it := range bill.Items {
		increments[it.ProductID] += it.Quantity
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if len(increments) > 0 {
			if err := s.productRepo.IncrementStockBatch(ctx, increments); err != nil {
				return err
			}
		}
		if due := bill.Due(); due != 0 {
			if err := s.customerRepo.AddToBalance(ctx, bill.CustomerID, -due); err != nil {
				return err
			}
		}
		if bill.OrderID != nil {
			if err := s.orderRepo.UpdateStatus(ctx, *bill.OrderID, enum.OrderStatusPending); err != nil {
				return err
			}
		}
		return s.billRepo.Delete(ctx, id)
	})
}

func statusFor(paid, total float64) enum.BillStatus {
	switch {
	case paid >= total-totalTolerance:
		return enum.BillStatusPaid
	case paid > 0:
		return enum.BillStatusPartial
	default:
		return enum.BillStatusOutstanding
	}
}

func productIDsOf(m map[uuid.UUID]int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

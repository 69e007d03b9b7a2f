package service_test

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/billing"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/pkg/apperror"
)

type billingFixture struct {
	svc       *service.BillingService
	bills     *fakeBillRepo
	products  *fakeProductRepo
	customers *fakeCustomerRepo
	orders    *fakeOrderRepo
	payments  *fakePaymentRepo
}

func newBillingFixture(products []*entity.Product, customers []*entity.Customer, orders []*entity.Order) *billingFixture {
	f := &billingFixture{
		bills:     newFakeBillRepo(),
		products:  newFakeProductRepo(products...),
		customers: newFakeCustomerRepo(customers...),
		orders:    newFakeOrderRepo(orders...),
		payments:  &fakePaymentRepo{},
	}
	f.svc = service.NewBillingService(f.bills, f.products, f.customers, f.orders, f.payments, fakeTransactor{})
	return f
}

func assertAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %d, got nil", code)
	}
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %d, got %d (%s)", code, appErr.Code, appErr.Message)
	}
	return appErr
}

func soapProduct() *entity.Product {
	return &entity.Product{
		ID:             uuid.New(),
		Name:           "Soap",
		Code:           "SOAP-01",
		LotSize:        12,
		UnitPrice:      10,
		LotPrice:       118,
		AvailableStock: 100,
		IsActive:       true,
	}
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, nil)

	// 10 units at an inclusive price of 118 each, 18% GST: base 1000,
	// SGST 90, CGST 90, grand total 1180.
	items := []billing.Item{{
		ProductID:   product.ID,
		ProductName: product.Name,
		LotSize:     product.LotSize,
		Lots:        "0",
		Quantity:    10,
		UnitPrice:   118,
	}}
	tax := billing.TaxConfig{IsGSTBill: true, SGSTPercent: 9, CGSTPercent: 9}

	bill, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID:  customer.ID,
		UserID:      uuid.New(),
		Items:       items,
		Tax:         tax,
		AmountPaid:  500,
		PaymentMode: enum.PaymentModeCash,
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if math.Abs(bill.TotalAmount-1180) > 0.001 {
		t.Errorf("total = %v, want 1180", bill.TotalAmount)
	}
	if math.Abs(bill.GSTAmount-180) > 0.001 {
		t.Errorf("gst amount = %v, want 180", bill.GSTAmount)
	}
	if bill.Status != enum.BillStatusPartial {
		t.Errorf("status = %v, want partial", bill.Status)
	}

	wantNo := fmt.Sprintf("B-%s-0001", time.Now().Format("20060102"))
	if bill.BillNo != wantNo {
		t.Errorf("bill no = %q, want %q", bill.BillNo, wantNo)
	}

	if product.AvailableStock != 90 {
		t.Errorf("stock = %d, want 90", product.AvailableStock)
	}
	if math.Abs(customer.Balance-680) > 0.001 {
		t.Errorf("customer balance = %v, want 680 (due)", customer.Balance)
	}
	if len(f.payments.payments) != 1 {
		t.Fatalf("payments recorded = %d, want 1", len(f.payments.payments))
	}
	if got := f.payments.payments[0]; got.Amount != 500 || got.BillID == nil || *got.BillID != bill.ID {
		t.Errorf("payment not allocated to bill: %+v", got)
	}
	if len(f.bills.items[bill.ID]) != 1 {
		t.Errorf("bill items persisted = %d, want 1", len(f.bills.items[bill.ID]))
	}
}

func TestCreateBillNumbersPerDay(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, nil)

	input := func() *service.CreateBillInput {
		return &service.CreateBillInput{
			CustomerID: customer.ID,
			UserID:     uuid.New(),
			Items: []billing.Item{{
				ProductID: product.ID, ProductName: product.Name,
				LotSize: product.LotSize, Quantity: 1, UnitPrice: 10,
			}},
		}
	}

	first, err := f.svc.CreateBill(ctx, input())
	if err != nil {
		t.Fatalf("first CreateBill: %v", err)
	}
	second, err := f.svc.CreateBill(ctx, input())
	if err != nil {
		t.Fatalf("second CreateBill: %v", err)
	}

	day := time.Now().Format("20060102")
	if first.BillNo != "B-"+day+"-0001" || second.BillNo != "B-"+day+"-0002" {
		t.Errorf("bill numbers = %q, %q; want per-day sequence", first.BillNo, second.BillNo)
	}
}

func TestCreateBillNeverReusesDeletedNumbers(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, nil)

	input := func() *service.CreateBillInput {
		return &service.CreateBillInput{
			CustomerID: customer.ID,
			UserID:     uuid.New(),
			Items: []billing.Item{{
				ProductID: product.ID, ProductName: product.Name,
				LotSize: product.LotSize, Quantity: 1, UnitPrice: 10,
			}},
		}
	}

	first, err := f.svc.CreateBill(ctx, input())
	if err != nil {
		t.Fatalf("first CreateBill: %v", err)
	}
	second, err := f.svc.CreateBill(ctx, input())
	if err != nil {
		t.Fatalf("second CreateBill: %v", err)
	}

	// Deleting an earlier bill leaves a gap; the sequence continues past
	// the highest number issued instead of refilling it.
	if err := f.svc.DeleteBill(ctx, first.ID); err != nil {
		t.Fatalf("DeleteBill: %v", err)
	}
	third, err := f.svc.CreateBill(ctx, input())
	if err != nil {
		t.Fatalf("third CreateBill: %v", err)
	}

	day := time.Now().Format("20060102")
	if third.BillNo != "B-"+day+"-0003" {
		t.Errorf("third bill no = %q, want B-%s-0003 (not %q again)", third.BillNo, day, second.BillNo)
	}
}

func TestCreateBillFullyPaid(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, nil)

	bill, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID: customer.ID,
		UserID:     uuid.New(),
		Items: []billing.Item{{
			ProductID: product.ID, ProductName: product.Name,
			LotSize: product.LotSize, Quantity: 5, UnitPrice: 10,
		}},
		AmountPaid:  50,
		PaymentMode: enum.PaymentModeOnline,
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if bill.Status != enum.BillStatusPaid {
		t.Errorf("status = %v, want paid", bill.Status)
	}
	if customer.Balance != 0 {
		t.Errorf("customer balance = %v, want 0", customer.Balance)
	}
}

func TestCreateBillValidation(t *testing.T) {
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}

	validItems := []billing.Item{{
		ProductID: product.ID, ProductName: product.Name,
		LotSize: product.LotSize, Quantity: 2, UnitPrice: 10,
	}}
	wrongTotal := 25.0

	tests := []struct {
		name     string
		input    *service.CreateBillInput
		wantCode int
		wantMsg  string
	}{
		{
			name:     "no items",
			input:    &service.CreateBillInput{CustomerID: customer.ID},
			wantCode: http.StatusBadRequest,
			wantMsg:  "at least one item",
		},
		{
			name: "unknown customer",
			input: &service.CreateBillInput{
				CustomerID: uuid.New(),
				Items:      validItems,
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "total mismatch",
			input: &service.CreateBillInput{
				CustomerID:    customer.ID,
				Items:         validItems,
				ExpectedTotal: &wrongTotal,
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Total mismatch",
		},
		{
			name: "paid exceeds total",
			input: &service.CreateBillInput{
				CustomerID: customer.ID,
				Items:      validItems,
				AmountPaid: 100,
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "exceeds bill total",
		},
		{
			name: "zero quantity line",
			input: &service.CreateBillInput{
				CustomerID: customer.ID,
				Items: []billing.Item{{
					ProductID: product.ID, ProductName: product.Name,
					LotSize: product.LotSize, Quantity: 0, UnitPrice: 10,
				}},
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "quantity must be positive",
		},
		{
			name: "negative price line hidden by a positive total",
			input: &service.CreateBillInput{
				CustomerID: customer.ID,
				Items: []billing.Item{
					{
						ProductID: product.ID, ProductName: product.Name,
						LotSize: product.LotSize, Quantity: 2, UnitPrice: 100,
					},
					{
						ProductID: product.ID, ProductName: product.Name,
						LotSize: product.LotSize, Quantity: 1, UnitPrice: -150,
					},
				},
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "price must be positive",
		},
		{
			name: "zero price line",
			input: &service.CreateBillInput{
				CustomerID: customer.ID,
				Items: []billing.Item{{
					ProductID: product.ID, ProductName: product.Name,
					LotSize: product.LotSize, Quantity: 1, UnitPrice: 0,
				}},
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "price must be positive",
		},
		{
			name: "unknown product",
			input: &service.CreateBillInput{
				CustomerID: customer.ID,
				Items: []billing.Item{{
					ProductID: uuid.New(), ProductName: "Ghost",
					LotSize: 1, Quantity: 1, UnitPrice: 10,
				}},
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := *product
			c := *customer
			f := newBillingFixture([]*entity.Product{&p}, []*entity.Customer{&c}, nil)

			_, err := f.svc.CreateBill(context.Background(), tt.input)
			appErr := assertAppError(t, err, tt.wantCode)
			if tt.wantMsg != "" && !strings.Contains(appErr.Message, tt.wantMsg) {
				t.Errorf("message = %q, want substring %q", appErr.Message, tt.wantMsg)
			}
			if len(f.bills.bills) != 0 {
				t.Errorf("bill was persisted despite rejection")
			}
		})
	}
}

func TestCreateBillInsufficientStock(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	product.AvailableStock = 3
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, nil)

	// The same product on two lines: the decrement is aggregated, so
	// 2 + 2 must be rejected against a stock of 3.
	line := billing.Item{
		ProductID: product.ID, ProductName: product.Name,
		LotSize: product.LotSize, Quantity: 2, UnitPrice: 10,
	}
	_, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID: customer.ID,
		UserID:     uuid.New(),
		Items:      []billing.Item{line, line},
	})

	appErr := assertAppError(t, err, http.StatusBadRequest)
	if !strings.Contains(appErr.Message, "Insufficient stock") || !strings.Contains(appErr.Message, "Soap") {
		t.Errorf("message = %q, want insufficient stock naming the product", appErr.Message)
	}
	if product.AvailableStock != 3 {
		t.Errorf("stock = %d, want untouched 3", product.AvailableStock)
	}
	if len(f.bills.bills) != 0 {
		t.Errorf("bill was persisted despite stock failure")
	}
	if customer.Balance != 0 {
		t.Errorf("customer balance = %v, want untouched 0", customer.Balance)
	}
}

func TestCreateBillFulfillsOrder(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Status: enum.OrderStatusPending}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, []*entity.Order{order})

	_, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID: customer.ID,
		UserID:     uuid.New(),
		OrderID:    &order.ID,
		Items: []billing.Item{{
			ProductID: product.ID, ProductName: product.Name,
			LotSize: product.LotSize, Quantity: 1, UnitPrice: 10,
		}},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if order.Status != enum.OrderStatusFulfilled {
		t.Errorf("order status = %v, want fulfilled", order.Status)
	}
}

func TestCreateBillRejectsForeignOrder(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	other := &entity.Customer{ID: uuid.New(), Name: "Lakshmi Traders"}
	order := &entity.Order{ID: uuid.New(), CustomerID: other.ID, Status: enum.OrderStatusPending}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer, other}, []*entity.Order{order})

	_, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID: customer.ID,
		OrderID:    &order.ID,
		Items: []billing.Item{{
			ProductID: product.ID, ProductName: product.Name,
			LotSize: product.LotSize, Quantity: 1, UnitPrice: 10,
		}},
	})
	assertAppError(t, err, http.StatusBadRequest)
}

func TestDeleteBillRevertsSideEffects(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	customer := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores"}
	order := &entity.Order{ID: uuid.New(), CustomerID: customer.ID, Status: enum.OrderStatusPending}
	f := newBillingFixture([]*entity.Product{product}, []*entity.Customer{customer}, []*entity.Order{order})

	bill, err := f.svc.CreateBill(ctx, &service.CreateBillInput{
		CustomerID:  customer.ID,
		UserID:      uuid.New(),
		OrderID:     &order.ID,
		Items: []billing.Item{{
			ProductID: product.ID, ProductName: product.Name,
			LotSize: product.LotSize, Quantity: 10, UnitPrice: 10,
		}},
		AmountPaid:  40,
		PaymentMode: enum.PaymentModeCash,
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if product.AvailableStock != 90 || math.Abs(customer.Balance-60) > 0.001 {
		t.Fatalf("precondition: stock = %d, balance = %v", product.AvailableStock, customer.Balance)
	}

	if err := f.svc.DeleteBill(ctx, bill.ID); err != nil {
		t.Fatalf("DeleteBill: %v", err)
	}

	if product.AvailableStock != 100 {
		t.Errorf("stock = %d, want restored 100", product.AvailableStock)
	}
	if math.Abs(customer.Balance) > 0.001 {
		t.Errorf("customer balance = %v, want 0 after revert", customer.Balance)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("order status = %v, want back to pending", order.Status)
	}
	if len(f.bills.bills) != 0 {
		t.Errorf("bill still present after delete")
	}
	// The cash already taken stays on the ledger.
	if len(f.payments.payments) != 1 {
		t.Errorf("payments = %d, want the original 1", len(f.payments.payments))
	}

	if err := f.svc.DeleteBill(ctx, bill.ID); err == nil {
		t.Error("second delete should report not found")
	}
}

func TestAddDraftItem(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	f := newBillingFixture([]*entity.Product{product}, nil, nil)

	state, err := f.svc.AddDraftItem(ctx, &service.DraftInput{}, product.ID)
	if err != nil {
		t.Fatalf("AddDraftItem: %v", err)
	}
	if len(state.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(state.Items))
	}
	it := state.Items[0]
	if it.Lots != "1" || it.Quantity != product.LotSize || it.UnitPrice != product.UnitPrice {
		t.Errorf("seeded line = %+v, want one lot at catalog prices", it)
	}
	if math.Abs(state.Totals.GrandTotal-120) > 0.001 {
		t.Errorf("grand total = %v, want 120", state.Totals.GrandTotal)
	}
}

func TestAddDraftItemErrors(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	product.AvailableStock = 5 // below one lot of 12
	f := newBillingFixture([]*entity.Product{product}, nil, nil)

	_, err := f.svc.AddDraftItem(ctx, &service.DraftInput{}, uuid.New())
	assertAppError(t, err, http.StatusNotFound)

	_, err = f.svc.AddDraftItem(ctx, &service.DraftInput{}, product.ID)
	assertAppError(t, err, http.StatusBadRequest)
}

func TestUpdateDraftItemRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	product := soapProduct()
	f := newBillingFixture([]*entity.Product{product}, nil, nil)

	input := &service.DraftInput{
		Items: []billing.Item{{
			ProductID: product.ID, ProductName: product.Name,
			LotSize: product.LotSize, Lots: "1",
			Quantity: product.LotSize, UnitPrice: product.UnitPrice,
			LotPrice: product.LotPrice,
		}},
	}

	state, err := f.svc.UpdateDraftItem(ctx, input, 0, billing.EditLots{Value: "3"})
	if err != nil {
		t.Fatalf("UpdateDraftItem: %v", err)
	}
	if state.Items[0].Quantity != 3*product.LotSize {
		t.Errorf("quantity = %d, want %d", state.Items[0].Quantity, 3*product.LotSize)
	}

	_, err = f.svc.UpdateDraftItem(ctx, input, 5, billing.EditLots{Value: "1"})
	assertAppError(t, err, http.StatusBadRequest)
}

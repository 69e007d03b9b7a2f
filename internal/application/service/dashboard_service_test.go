package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
)

func TestGetBillerDashboard(t *testing.T) {
	ctx := context.Background()
	bills := newFakeBillRepo()

	now := time.Now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 9, 15, 0, 0, now.Location())
	evening := time.Date(now.Year(), now.Month(), now.Day(), 18, 40, 0, 0, now.Location())
	yesterday := morning.AddDate(0, 0, -1)

	for _, b := range []*entity.Bill{
		{ID: uuid.New(), BillNo: "a", DateOfBill: morning, TotalAmount: 500},
		{ID: uuid.New(), BillNo: "b", DateOfBill: evening, TotalAmount: 250},
		{ID: uuid.New(), BillNo: "c", DateOfBill: yesterday, TotalAmount: 9999},
	} {
		bills.bills[b.ID] = b
	}

	svc := service.NewDashboardService(bills, newFakeProductRepo(), newFakeCustomerRepo(), &fakePaymentRepo{}, &fakeStockRepo{})
	data, err := svc.GetBillerDashboard(ctx)
	if err != nil {
		t.Fatalf("GetBillerDashboard: %v", err)
	}

	if data.TodayBills != 2 {
		t.Errorf("today bills = %d, want 2 (yesterday excluded)", data.TodayBills)
	}
	if math.Abs(data.TodaySales-750) > 0.001 {
		t.Errorf("today sales = %v, want 750", data.TodaySales)
	}
	if len(data.Hourly) != 24 {
		t.Fatalf("hourly slots = %d, want 24", len(data.Hourly))
	}
	if data.Hourly[9].Count != 1 || math.Abs(data.Hourly[9].Total-500) > 0.001 {
		t.Errorf("hour 9 = %+v, want count 1 total 500", data.Hourly[9])
	}
	if data.Hourly[18].Count != 1 {
		t.Errorf("hour 18 count = %d, want 1", data.Hourly[18].Count)
	}
}

func TestGetInventoryDashboard(t *testing.T) {
	ctx := context.Background()
	low := soapProduct()
	low.AvailableStock = 5
	low.LowStockThreshold = 10
	healthy := soapProduct()
	healthy.ID = uuid.New()
	healthy.Code = "SOAP-02"

	stock := &fakeStockRepo{}
	stock.damage = append(stock.damage, &entity.DamagedStock{ID: uuid.New(), ProductID: low.ID, Quantity: 2})

	svc := service.NewDashboardService(newFakeBillRepo(), newFakeProductRepo(low, healthy), newFakeCustomerRepo(), &fakePaymentRepo{}, stock)
	data, err := svc.GetInventoryDashboard(ctx)
	if err != nil {
		t.Fatalf("GetInventoryDashboard: %v", err)
	}

	if len(data.LowStock) != 1 || data.LowStock[0].ID != low.ID {
		t.Errorf("low stock = %d products, want only the one under threshold", len(data.LowStock))
	}
	if len(data.RecentDamage) != 1 {
		t.Errorf("recent damage = %d, want 1", len(data.RecentDamage))
	}

	// 5 x 10 + 100 x 10 over the two active products.
	if math.Abs(data.StockValue-1050) > 0.001 {
		t.Errorf("stock value = %v, want 1050", data.StockValue)
	}
}

func TestGetAdminDashboard(t *testing.T) {
	ctx := context.Background()
	bills := newFakeBillRepo()
	now := time.Now()

	paid := &entity.Bill{ID: uuid.New(), BillNo: "a", DateOfBill: now, TotalAmount: 1000, PaidAmount: 1000, Status: enum.BillStatusPaid}
	partial := &entity.Bill{ID: uuid.New(), BillNo: "b", DateOfBill: now, TotalAmount: 600, PaidAmount: 100, Status: enum.BillStatusPartial}
	bills.bills[paid.ID] = paid
	bills.bills[partial.ID] = partial

	payments := &fakePaymentRepo{}
	payments.expenses = append(payments.expenses, &entity.Expense{ID: uuid.New(), Category: "rent", Amount: 300, Date: now})

	debtor := &entity.Customer{ID: uuid.New(), Name: "Ravi Stores", Balance: 500}

	svc := service.NewDashboardService(bills, newFakeProductRepo(), newFakeCustomerRepo(debtor), payments, &fakeStockRepo{})
	data, err := svc.GetAdminDashboard(ctx)
	if err != nil {
		t.Fatalf("GetAdminDashboard: %v", err)
	}

	if math.Abs(data.TodaySales-1600) > 0.001 {
		t.Errorf("today sales = %v, want 1600", data.TodaySales)
	}
	if math.Abs(data.Outstanding-500) > 0.001 {
		t.Errorf("outstanding = %v, want 500 (unpaid remainder)", data.Outstanding)
	}
	if math.Abs(data.MonthExpenses-300) > 0.001 {
		t.Errorf("month expenses = %v, want 300", data.MonthExpenses)
	}
	if data.TotalBills != 2 {
		t.Errorf("total bills = %d, want 2", data.TotalBills)
	}
	if len(data.TopCustomers) != 1 {
		t.Errorf("top customers = %d, want 1", len(data.TopCustomers))
	}
}

package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// In-memory repository fakes. They ignore pagination and transactions;
// the transactor fake simply runs the function, so service logic is
// exercised without a database.

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.AvailableStock <= p.LowStockThreshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementStockBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		p, ok := r.products[id]
		if !ok || p.AvailableStock < qty {
			failed = append(failed, id)
			continue
		}
		p.AvailableStock -= qty
	}
	return failed, nil
}

func (r *fakeProductRepo) IncrementStockBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if p, ok := r.products[id]; ok {
			p.AvailableStock += qty
		}
	}
	return nil
}

func (r *fakeProductRepo) StockValue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range r.products {
		if p.IsActive {
			total += float64(p.AvailableStock) * p.UnitPrice
		}
	}
	return total, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *repository.PartyFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCustomerRepo) AddToBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	if c, ok := r.customers[id]; ok {
		c.Balance += delta
	}
	return nil
}

func (r *fakeCustomerRepo) TopByBalance(ctx context.Context, limit int) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		if c.Balance > 0 {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
	items map[uuid.UUID][]entity.BillItem
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{
		bills: make(map[uuid.UUID]*entity.Bill),
		items: make(map[uuid.UUID][]entity.BillItem),
	}
}

func (r *fakeBillRepo) Create(ctx context.Context, b *entity.Bill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bills[b.ID] = b
	return nil
}

func (r *fakeBillRepo) CreateItems(ctx context.Context, items []entity.BillItem) error {
	if len(items) == 0 {
		return nil
	}
	r.items[items[0].BillID] = append(r.items[items[0].BillID], items...)
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	return r.bills[id], nil
}

func (r *fakeBillRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	copied.Items = r.items[id]
	return &copied, nil
}

func (r *fakeBillRepo) Update(ctx context.Context, b *entity.Bill) error {
	r.bills[b.ID] = b
	return nil
}

func (r *fakeBillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	delete(r.items, id)
	return nil
}

func (r *fakeBillRepo) List(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBillRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.bills)), nil
}

func (r *fakeBillRepo) SalesBetween(ctx context.Context, from, to time.Time) ([]entity.Bill, error) {
	var out []entity.Bill
	for _, b := range r.bills {
		if !b.DateOfBill.Before(from) && b.DateOfBill.Before(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBillRepo) SalesTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	bills, _ := r.SalesBetween(ctx, from, to)
	var total float64
	for _, b := range bills {
		total += b.TotalAmount
	}
	return total, nil
}

func (r *fakeBillRepo) OutstandingTotal(ctx context.Context) (float64, error) {
	var total float64
	for _, b := range r.bills {
		if b.Status != enum.BillStatusPaid {
			total += b.TotalAmount - b.PaidAmount
		}
	}
	return total, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
	expenses []*entity.Expense
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, p *entity.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.payments = append(r.payments, p)
	return nil
}

func (r *fakePaymentRepo) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, int64, error) {
	var out []entity.Payment
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) CreateExpense(ctx context.Context, e *entity.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.expenses = append(r.expenses, e)
	return nil
}

func (r *fakePaymentRepo) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) ExpenseTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	for _, e := range r.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			total += e.Amount
		}
	}
	return total, nil
}

type fakeVendorRepo struct {
	vendors map[uuid.UUID]*entity.Vendor
}

func newFakeVendorRepo(vendors ...*entity.Vendor) *fakeVendorRepo {
	r := &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
	for _, v := range vendors {
		r.vendors[v.ID] = v
	}
	return r
}

func (r *fakeVendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.vendors[v.ID] = v
	return nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return r.vendors[id], nil
}

func (r *fakeVendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	r.vendors[v.ID] = v
	return nil
}

func (r *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(ctx context.Context, params *repository.PartyFilterParams) ([]entity.Vendor, int64, error) {
	var out []entity.Vendor
	for _, v := range r.vendors {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVendorRepo) AddToBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	if v, ok := r.vendors[id]; ok {
		v.Balance += delta
	}
	return nil
}

type fakeStockRepo struct {
	entries []*entity.StockEntry
	damage  []*entity.DamagedStock
}

func (r *fakeStockRepo) CreateEntry(ctx context.Context, e *entity.StockEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeStockRepo) ListEntries(ctx context.Context, params *pagination.PaginationParams) ([]entity.StockEntry, int64, error) {
	var out []entity.StockEntry
	for _, e := range r.entries {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStockRepo) CreateDamage(ctx context.Context, d *entity.DamagedStock) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.damage = append(r.damage, d)
	return nil
}

func (r *fakeStockRepo) ListDamage(ctx context.Context, params *pagination.PaginationParams) ([]entity.DamagedStock, int64, error) {
	var out []entity.DamagedStock
	for _, d := range r.damage {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *fakeStockRepo) RecentDamage(ctx context.Context, limit int) ([]entity.DamagedStock, error) {
	out, _, err := r.ListDamage(ctx, nil)
	return out, err
}

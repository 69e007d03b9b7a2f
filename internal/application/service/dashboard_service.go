package service

import (
	"context"
	"time"

	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
)

// DashboardService aggregates the per-role home screens. Each role sees
// a different slice: billers their counter for the day, inventory staff
// the stock position, admins and managers the money view.
type DashboardService struct {
	billRepo     repository.BillRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	stockRepo    repository.StockRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	billRepo repository.BillRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
	stockRepo repository.StockRepository,
) *DashboardService {
	return &DashboardService{
		billRepo:     billRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		stockRepo:    stockRepo,
	}
}

// HourlySales is one hour's slice of today's takings
type HourlySales struct {
	Hour  int     `json:"hour"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// BillerDashboard is the counter view for the day
type BillerDashboard struct {
	TodaySales  float64       `json:"today_sales"`
	TodayBills  int           `json:"today_bills"`
	Hourly      []HourlySales `json:"hourly"`
	RecentBills []entity.Bill `json:"recent_bills"`
}

// GetBillerDashboard builds today's counter summary
func (s *DashboardService) GetBillerDashboard(ctx context.Context) (*BillerDashboard, error) {
	dayStart, dayEnd := today()

	bills, err := s.billRepo.SalesBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	hourly := make([]HourlySales, 24)
	for i := range hourly {
		hourly[i].Hour = i
	}

	var total float64
	for _, b := range bills {
		total += b.TotalAmount
		h := b.DateOfBill.Hour()
		hourly[h].Count++
		hourly[h].Total += b.TotalAmount
	}

	recent := bills
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &BillerDashboard{
		TodaySales:  total,
		TodayBills:  len(bills),
		Hourly:      hourly,
		RecentBills: recent,
	}, nil
}

// InventoryDashboard is the stock position view
type InventoryDashboard struct {
	LowStock     []entity.Product      `json:"low_stock"`
	RecentDamage []entity.DamagedStock `json:"recent_damage"`
	StockValue   float64               `json:"stock_value"`
}

// GetInventoryDashboard builds the stock position summary
func (s *DashboardService) GetInventoryDashboard(ctx context.Context) (*InventoryDashboard, error) {
	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	recentDamage, err := s.stockRepo.RecentDamage(ctx, 10)
	if err != nil {
		return nil, err
	}
	stockValue, err := s.productRepo.StockValue(ctx)
	if err != nil {
		return nil, err
	}

	return &InventoryDashboard{
		LowStock:     lowStock,
		RecentDamage: recentDamage,
		StockValue:   stockValue,
	}, nil
}

// AdminDashboard is the money view for admins and managers
type AdminDashboard struct {
	TodaySales    float64           `json:"today_sales"`
	MonthSales    float64           `json:"month_sales"`
	MonthExpenses float64           `json:"month_expenses"`
	Outstanding   float64           `json:"outstanding"`
	TotalBills    int64             `json:"total_bills"`
	TopCustomers  []entity.Customer `json:"top_customers"`
}

// GetAdminDashboard builds the business summary
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	dayStart, dayEnd := today()
	monthStart := time.Date(dayStart.Year(), dayStart.Month(), 1, 0, 0, 0, 0, dayStart.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	todaySales, err := s.billRepo.SalesTotalBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	monthSales, err := s.billRepo.SalesTotalBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthExpenses, err := s.paymentRepo.ExpenseTotalBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	outstanding, err := s.billRepo.OutstandingTotal(ctx)
	if err != nil {
		return nil, err
	}
	totalBills, err := s.billRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	topCustomers, err := s.customerRepo.TopByBalance(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		TodaySales:    todaySales,
		MonthSales:    monthSales,
		MonthExpenses: monthExpenses,
		Outstanding:   outstanding,
		TotalBills:    totalBills,
		TopCustomers:  topCustomers,
	}, nil
}

func today() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

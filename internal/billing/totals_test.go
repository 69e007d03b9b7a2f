package billing_test

import (
	"math"
	"testing"

	"github.com/manikandans/billbook-api/internal/billing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func twoItems() []billing.Item {
	return []billing.Item{
		{ProductName: "A", Quantity: 10, UnitPrice: 100},
		{ProductName: "B", Quantity: 5, UnitPrice: 50},
	}
}

func TestComputeTotals_NonGST(t *testing.T) {
	tests := []struct {
		name      string
		items     []billing.Item
		discount  float64
		wantSub   float64
		wantTotal float64
	}{
		{"two items with discount", twoItems(), 50, 1250, 1200},
		{"no discount", twoItems(), 0, 1250, 1250},
		{"empty list", nil, 0, 0, 0},
		{"zero quantity line", []billing.Item{{Quantity: 0, UnitPrice: 99}}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.ComputeTotals(tt.items, tt.discount, billing.TaxConfig{})
			if got.Subtotal != tt.wantSub {
				t.Errorf("subtotal = %v, want %v", got.Subtotal, tt.wantSub)
			}
			if got.GrandTotal != tt.wantTotal {
				t.Errorf("grand total = %v, want %v", got.GrandTotal, tt.wantTotal)
			}
			if got.TaxableValue != got.Subtotal {
				t.Errorf("taxable value = %v, want subtotal %v", got.TaxableValue, got.Subtotal)
			}
			if got.SGSTAmount != 0 || got.CGSTAmount != 0 || got.CESSAmount != 0 {
				t.Errorf("tax amounts = %v/%v/%v, want all zero",
					got.SGSTAmount, got.CGSTAmount, got.CESSAmount)
			}
		})
	}
}

func TestComputeTotals_GSTScenario(t *testing.T) {
	tax := billing.TaxConfig{IsGSTBill: true, SGSTPercent: 9, CGSTPercent: 9}
	got := billing.ComputeTotals(twoItems(), 50, tax)

	// 1000/1.18 + 250/1.18
	wantTaxable := 1250.0 / 1.18
	if !approx(got.TaxableValue, wantTaxable) {
		t.Errorf("taxable value = %v, want %v", got.TaxableValue, wantTaxable)
	}
	if !approx(got.SGSTAmount, wantTaxable*0.09) {
		t.Errorf("sgst = %v, want %v", got.SGSTAmount, wantTaxable*0.09)
	}
	if !approx(got.CGSTAmount, got.SGSTAmount) {
		t.Errorf("cgst = %v, want equal to sgst %v", got.CGSTAmount, got.SGSTAmount)
	}
	if got.CESSAmount != 0 {
		t.Errorf("cess = %v, want 0", got.CESSAmount)
	}
	want := got.TaxableValue + got.SGSTAmount + got.CGSTAmount - 50
	if !approx(got.GrandTotal, want) {
		t.Errorf("grand total = %v, want %v", got.GrandTotal, want)
	}
	// Spot values from manual back-calculation.
	if math.Abs(got.TaxableValue-1271.19) > 0.01 {
		t.Errorf("taxable value = %.4f, want ~1271.19", got.TaxableValue)
	}
	if math.Abs(got.SGSTAmount-114.41) > 0.01 {
		t.Errorf("sgst = %.4f, want ~114.41", got.SGSTAmount)
	}
}

// Extracting tax from inclusive prices must preserve the identity
// base + sgst + cgst + cess == subtotal.
func TestComputeTotals_TaxAdditivity(t *testing.T) {
	tests := []struct {
		name string
		tax  billing.TaxConfig
	}{
		{"18 percent split", billing.TaxConfig{IsGSTBill: true, SGSTPercent: 9, CGSTPercent: 9}},
		{"with cess", billing.TaxConfig{IsGSTBill: true, SGSTPercent: 14, CGSTPercent: 14, CESSPercent: 12}},
		{"uneven split", billing.TaxConfig{IsGSTBill: true, SGSTPercent: 2.5, CGSTPercent: 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.ComputeTotals(twoItems(), 0, tt.tax)
			sum := got.TaxableValue + got.SGSTAmount + got.CGSTAmount + got.CESSAmount
			if !approx(sum, got.Subtotal) {
				t.Errorf("taxable+taxes = %v, want subtotal %v", sum, got.Subtotal)
			}
		})
	}
}

// The inclusive/exclusive round trip: base × (1+rate) recovers the
// entered line total.
func TestComputeTotals_BackCalculationIdentity(t *testing.T) {
	tax := billing.TaxConfig{IsGSTBill: true, SGSTPercent: 9, CGSTPercent: 9, CESSPercent: 1}
	item := billing.Item{Quantity: 7, UnitPrice: 123.45}
	got := billing.ComputeTotals([]billing.Item{item}, 0, tax)

	finalPrice := float64(item.Quantity) * item.UnitPrice
	if !approx(got.TaxableValue*(1+tax.TotalRate()), finalPrice) {
		t.Errorf("base*(1+r) = %v, want %v",
			got.TaxableValue*(1+tax.TotalRate()), finalPrice)
	}
}

func TestComputeTotals_ZeroRateGSTBill(t *testing.T) {
	got := billing.ComputeTotals(twoItems(), 10, billing.TaxConfig{IsGSTBill: true})
	if got.TaxableValue != 1250 {
		t.Errorf("taxable value = %v, want 1250", got.TaxableValue)
	}
	if got.GSTAmount() != 0 {
		t.Errorf("gst amount = %v, want 0", got.GSTAmount())
	}
	if got.GrandTotal != 1240 {
		t.Errorf("grand total = %v, want 1240", got.GrandTotal)
	}
}

func TestComputeTotals_NaNPercentTreatedAsZero(t *testing.T) {
	tax := billing.TaxConfig{IsGSTBill: true, SGSTPercent: math.NaN(), CGSTPercent: 18}
	got := billing.ComputeTotals(twoItems(), 0, tax)
	if math.IsNaN(got.TaxableValue) || math.IsNaN(got.GrandTotal) {
		t.Fatalf("totals contain NaN: %+v", got)
	}
	if got.SGSTAmount != 0 {
		t.Errorf("sgst = %v, want 0 for blank percentage", got.SGSTAmount)
	}
	if !approx(got.TaxableValue, 1250.0/1.18) {
		t.Errorf("taxable value = %v, want %v", got.TaxableValue, 1250.0/1.18)
	}
}

func TestTaxConfigTotalRate(t *testing.T) {
	tests := []struct {
		name string
		tax  billing.TaxConfig
		want float64
	}{
		{"standard", billing.TaxConfig{SGSTPercent: 9, CGSTPercent: 9}, 0.18},
		{"zero", billing.TaxConfig{}, 0},
		{"all NaN", billing.TaxConfig{SGSTPercent: math.NaN(), CGSTPercent: math.NaN(), CESSPercent: math.NaN()}, 0},
		{"negative clamped", billing.TaxConfig{SGSTPercent: -5, CGSTPercent: 18}, 0.18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tax.TotalRate(); math.Abs(got-tt.want) > tolerance {
				t.Errorf("TotalRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

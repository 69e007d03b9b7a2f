package billing_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/billing"
)

var (
	soapID  = uuid.New()
	riceID  = uuid.New()
	scarce  = uuid.New()
	catalog = []billing.CatalogEntry{
		{ID: soapID, Name: "Soap", UnitPrice: 20, LotSize: 12, LotPrice: 240, AvailableStock: 100},
		{ID: riceID, Name: "Rice 1kg", UnitPrice: 55, LotSize: 10, LotPrice: 550, AvailableStock: 30},
		{ID: scarce, Name: "Scarce", UnitPrice: 99, LotSize: 24, AvailableStock: 10},
	}
)

func TestDraftAdd(t *testing.T) {
	d := billing.NewDraft(catalog)
	if err := d.Add(soapID); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	items := d.Items()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	it := items[0]
	if it.Quantity != 12 || it.Lots != "1" {
		t.Errorf("new item seeded qty=%d lots=%q, want one lot (12, \"1\")", it.Quantity, it.Lots)
	}
	if it.UnitPrice != 20 || it.LotPrice != 240 {
		t.Errorf("new item prices %v/%v, want catalog 20/240", it.UnitPrice, it.LotPrice)
	}
}

func TestDraftAdd_StockGuard(t *testing.T) {
	d := billing.NewDraft(catalog)
	err := d.Add(scarce)
	if !errors.Is(err, billing.ErrInsufficientStock) {
		t.Fatalf("Add() error = %v, want ErrInsufficientStock", err)
	}
	if d.Len() != 0 {
		t.Errorf("draft mutated on rejected add: %d items", d.Len())
	}
}

func TestDraftAdd_UnknownProduct(t *testing.T) {
	d := billing.NewDraft(catalog)
	if err := d.Add(uuid.New()); !errors.Is(err, billing.ErrUnknownProduct) {
		t.Fatalf("Add() error = %v, want ErrUnknownProduct", err)
	}
}

func TestDraftRemove(t *testing.T) {
	d := billing.NewDraft(catalog)
	_ = d.Add(soapID)
	_ = d.Add(riceID)

	if err := d.Remove(0); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	items := d.Items()
	if len(items) != 1 || items[0].ProductName != "Rice 1kg" {
		t.Errorf("after remove: %+v, want only Rice 1kg", items)
	}

	if err := d.Remove(5); !errors.Is(err, billing.ErrItemIndex) {
		t.Errorf("Remove(5) error = %v, want ErrItemIndex", err)
	}
}

func TestEditLots(t *testing.T) {
	tests := []struct {
		name    string
		lots    string
		wantQty int
	}{
		{"three lots", "3", 36},
		{"empty string", "", 0},
		{"non numeric", "abc", 0},
		{"zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := billing.NewDraft(catalog)
			_ = d.Add(soapID)
			// Manual price override that the lots edit must discard.
			_ = d.Update(0, billing.EditUnitPrice{Value: 15})

			if err := d.Update(0, billing.EditLots{Value: tt.lots}); err != nil {
				t.Fatalf("Update() error = %v", err)
			}
			it := d.Items()[0]
			if it.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", it.Quantity, tt.wantQty)
			}
			if it.Lots != tt.lots {
				t.Errorf("lots = %q, want %q", it.Lots, tt.lots)
			}
			if it.UnitPrice != 20 || it.LotPrice != 240 {
				t.Errorf("prices %v/%v, want catalog 20/240 restored", it.UnitPrice, it.LotPrice)
			}
		})
	}
}

func TestEditLots_ProductGoneFromCatalog(t *testing.T) {
	line := billing.Item{
		ProductID:   uuid.New(),
		ProductName: "Retired",
		LotSize:     12,
		Lots:        "2",
		Quantity:    24,
		UnitPrice:   20,
		LotPrice:    240,
	}
	d := billing.NewDraftWith(catalog, []billing.Item{line})

	// The lots edit would snap prices back to the catalog, but the
	// product is no longer in the snapshot.
	if err := d.Update(0, billing.EditLots{Value: "3"}); !errors.Is(err, billing.ErrUnknownProduct) {
		t.Fatalf("Update(EditLots) error = %v, want ErrUnknownProduct", err)
	}
	it := d.Items()[0]
	if it.UnitPrice != 20 || it.LotPrice != 240 || it.Quantity != 24 {
		t.Errorf("line mutated on rejected edit: %+v", it)
	}

	// Edits that do not read catalog prices still work on the stale line.
	if err := d.Update(0, billing.EditQuantity{Value: 6}); err != nil {
		t.Fatalf("Update(EditQuantity) error = %v", err)
	}
	if got := d.Items()[0].Quantity; got != 6 {
		t.Errorf("quantity = %d, want 6", got)
	}
}

func TestEditQuantity(t *testing.T) {
	d := billing.NewDraft(catalog)
	_ = d.Add(soapID)
	_ = d.Update(0, billing.EditUnitPrice{Value: 18})

	if err := d.Update(0, billing.EditQuantity{Value: 7}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	it := d.Items()[0]
	if it.Quantity != 7 {
		t.Errorf("quantity = %d, want 7", it.Quantity)
	}
	if it.Lots != "" {
		t.Errorf("lots = %q, want cleared", it.Lots)
	}
	if it.UnitPrice != 18 || it.LotPrice != 18*12 {
		t.Errorf("prices %v/%v changed by quantity edit, want 18/216", it.UnitPrice, it.LotPrice)
	}
}

func TestEditUnitPrice(t *testing.T) {
	d := billing.NewDraft(catalog)
	_ = d.Add(soapID)

	if err := d.Update(0, billing.EditUnitPrice{Value: 25}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	it := d.Items()[0]
	if it.LotPrice != 300 {
		t.Errorf("lot price = %v, want 300", it.LotPrice)
	}
	if it.Quantity != 12 || it.Lots != "1" {
		t.Errorf("quantity/lots changed by price edit: %d/%q", it.Quantity, it.Lots)
	}
}

func TestEditLotPrice(t *testing.T) {
	d := billing.NewDraft(catalog)
	_ = d.Add(soapID)

	if err := d.Update(0, billing.EditLotPrice{Value: 360}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	it := d.Items()[0]
	if it.UnitPrice != 30 {
		t.Errorf("unit price = %v, want 360/12 = 30", it.UnitPrice)
	}
}

func TestEditLotPrice_ZeroLotSizeGuard(t *testing.T) {
	it := billing.Item{LotSize: 0, UnitPrice: 10, LotPrice: 0}
	got := it.Apply(billing.EditLotPrice{Value: 100}, billing.CatalogEntry{})
	if got.UnitPrice != 10 {
		t.Errorf("unit price = %v, want untouched 10 when lot size is zero", got.UnitPrice)
	}
	if got.LotPrice != 100 {
		t.Errorf("lot price = %v, want 100", got.LotPrice)
	}
}

func TestDraftTotals(t *testing.T) {
	d := billing.NewDraft(catalog)
	_ = d.Add(soapID)                              // 12 × 20 = 240
	_ = d.Update(0, billing.EditLots{Value: "2"})  // 24 × 20 = 480
	_ = d.Add(riceID)                              // 10 × 55 = 550
	_ = d.Update(1, billing.EditQuantity{Value: 4}) // 4 × 55 = 220

	got := d.Totals(20, billing.TaxConfig{})
	if got.Subtotal != 700 {
		t.Errorf("subtotal = %v, want 700", got.Subtotal)
	}
	if got.GrandTotal != 680 {
		t.Errorf("grand total = %v, want 680", got.GrandTotal)
	}
}

// Package billing holds the pure bill calculation core: line items, the
// draft editor and the GST-aware totals computation. Nothing in this
// package touches the database or the HTTP layer.
package billing

import "math"

// TaxConfig is fixed per bill at creation time. The percentages are only
// meaningful when IsGSTBill is set.
type TaxConfig struct {
	IsGSTBill   bool    `json:"is_gst_bill"`
	SGSTPercent float64 `json:"sgst_percent"`
	CGSTPercent float64 `json:"cgst_percent"`
	CESSPercent float64 `json:"cess_percent"`
}

// TotalRate returns the combined GST rate as a fraction, e.g. 0.18 for
// 9% SGST + 9% CGST. Blank/undefined percentages arrive as NaN from
// loosely-typed clients and are treated as zero.
func (t TaxConfig) TotalRate() float64 {
	return (pct(t.SGSTPercent) + pct(t.CGSTPercent) + pct(t.CESSPercent)) / 100
}

func pct(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// BillTotals is derived from a line-item list, a discount and a TaxConfig.
// It is never stored independently of its inputs. Values are unrounded;
// rounding to currency precision happens at render time only.
type BillTotals struct {
	Subtotal     float64 `json:"subtotal"`
	TaxableValue float64 `json:"taxable_value"`
	SGSTAmount   float64 `json:"sgst_amount"`
	CGSTAmount   float64 `json:"cgst_amount"`
	CESSAmount   float64 `json:"cess_amount"`
	Discount     float64 `json:"discount"`
	GrandTotal   float64 `json:"grand_total"`
}

// GSTAmount returns the combined tax extracted from the entered prices.
func (t BillTotals) GSTAmount() float64 {
	return t.SGSTAmount + t.CGSTAmount + t.CESSAmount
}

// ComputeTotals derives BillTotals from the items. Entered unit prices are
// tax-inclusive on a GST bill, so the taxable base of each line is
// recovered by dividing out the combined rate, never by adding tax on
// top. Tax components are summed per line and then totalled.
func ComputeTotals(items []Item, discount float64, tax TaxConfig) BillTotals {
	totals := BillTotals{Discount: discount}

	for _, it := range items {
		totals.Subtotal += float64(it.Quantity) * it.UnitPrice
	}

	if !tax.IsGSTBill {
		totals.TaxableValue = totals.Subtotal
		totals.GrandTotal = totals.Subtotal - discount
		return totals
	}

	rate := tax.TotalRate()
	if rate == 0 {
		// Zero-rate GST bill: the base equals the inclusive sum and no
		// tax is extracted.
		totals.TaxableValue = totals.Subtotal
		totals.GrandTotal = totals.Subtotal - discount
		return totals
	}

	for _, it := range items {
		finalPrice := float64(it.Quantity) * it.UnitPrice
		base := finalPrice / (1 + rate)
		totals.TaxableValue += base
		totals.SGSTAmount += base * pct(tax.SGSTPercent) / 100
		totals.CGSTAmount += base * pct(tax.CGSTPercent) / 100
		totals.CESSAmount += base * pct(tax.CESSPercent) / 100
	}

	totals.GrandTotal = totals.TaxableValue + totals.SGSTAmount + totals.CGSTAmount + totals.CESSAmount - discount
	return totals
}

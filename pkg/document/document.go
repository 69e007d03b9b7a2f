// Package document renders a finalized bill as a fixed-layout printable
// page. One renderer serves both shapes behind a Kind discriminator: the
// plain receipt and the statutory-style tax invoice. The document is a
// value object composed from bill data at render time, never persisted.
package document

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strings"

	"github.com/manikandans/billbook-api/pkg/numwords"
)

// Kind selects the output shape.
type Kind string

const (
	KindReceipt    Kind = "receipt"
	KindTaxInvoice Kind = "tax_invoice"
)

// ParseKind maps a query-string value to a Kind, defaulting to receipt.
func ParseKind(s string) Kind {
	if strings.EqualFold(s, string(KindTaxInvoice)) || strings.EqualFold(s, "invoice") {
		return KindTaxInvoice
	}
	return KindReceipt
}

// Placeholder texts substituted when no company profile is configured.
const (
	PlaceholderName    = "YOUR COMPANY NAME"
	PlaceholderAddress = "Your Company Address"
)

// Party identifies the buyer printed on the document.
type Party struct {
	Name          string
	Address       string
	GSTNumber     string
	ContactNumber string
}

// Seller identifies the issuing business. Empty fields fall back to the
// placeholder texts.
type Seller struct {
	Name          string
	Address       string
	GSTNumber     string
	ContactNumber string
	BankDetails   string
}

// Line is one printed bill line. Amount is quantity × unit price,
// unrounded; formatting happens in the template.
type Line struct {
	SerialNo  int
	Name      string
	HSNCode   string
	Quantity  int
	UnitPrice float64
	Amount    float64
}

// Totals mirrors the calculator output. Values are unrounded; the
// renderer is the only place currency rounding is applied.
type Totals struct {
	Subtotal     float64
	TaxableValue float64
	SGSTAmount   float64
	CGSTAmount   float64
	CESSAmount   float64
	Discount     float64
	GrandTotal   float64
}

// GSTAmount is the combined extracted tax.
func (t Totals) GSTAmount() float64 {
	return t.SGSTAmount + t.CGSTAmount + t.CESSAmount
}

// Data carries everything the renderer needs for one document.
type Data struct {
	Kind        Kind
	BillNo      string
	Date        string
	Seller      Seller
	Buyer       Party
	Lines       []Line
	Totals      Totals
	IsGSTBill   bool
	SGSTPercent float64
	CGSTPercent float64
	CESSPercent float64
	Comments    string
}

// AmountInWords renders the grand total in words, integer rupees only.
// The fractional part is dropped by rounding to the nearest rupee.
func (d Data) AmountInWords() string {
	return numwords.Convert(int64(math.Round(d.Totals.GrandTotal))) + " Rupees Only"
}

// TaxAmountInWords renders the combined GST amount in words.
func (d Data) TaxAmountInWords() string {
	return numwords.Convert(int64(math.Round(d.Totals.GSTAmount()))) + " Rupees Only"
}

// SellerName and friends apply the placeholder fallbacks.
func (d Data) SellerName() string {
	if d.Seller.Name == "" {
		return PlaceholderName
	}
	return d.Seller.Name
}

func (d Data) SellerAddress() string {
	if d.Seller.Address == "" {
		return PlaceholderAddress
	}
	return d.Seller.Address
}

// Money formats a currency value to exactly two decimal places.
func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

var funcs = template.FuncMap{
	"money": Money,
}

var (
	receiptTmpl = template.Must(template.New("receipt").Funcs(funcs).Parse(receiptHTML))
	invoiceTmpl = template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTML))
)

// Render writes the document as a self-contained A4 HTML page. Totals
// printed come straight from Data.Totals; the renderer never recomputes
// them.
func Render(w io.Writer, d Data) error {
	if d.Kind == KindTaxInvoice {
		return invoiceTmpl.Execute(w, d)
	}
	return receiptTmpl.Execute(w, d)
}

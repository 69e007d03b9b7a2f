package printer

import (
	"github.com/manikandans/billbook-api/pkg/document"
)

// BuildReceipt renders the same bill data the HTML renderer consumes as
// an ESC/POS stream for a thermal printer. Currency values are formatted
// to two decimals here, never earlier.
func BuildReceipt(data document.Data, charWidth int) []byte {
	d := NewDocument(charWidth)

	d.SetAlign(AlignCenter).SetBold(true)
	d.Text(data.SellerName())
	d.SetBold(false)
	d.Text(data.SellerAddress())
	if data.Seller.ContactNumber != "" {
		d.Text("Ph: " + data.Seller.ContactNumber)
	}
	d.Separator('=')

	d.SetAlign(AlignLeft)
	d.KeyValue("Bill No", data.BillNo)
	d.KeyValue("Date", data.Date)
	if data.Buyer.Name != "" {
		d.KeyValue("Customer", data.Buyer.Name)
	}
	d.Separator('-')

	for _, line := range data.Lines {
		d.Text(line.Name)
		d.ItemLine(line.Quantity, "@ "+document.Money(line.UnitPrice), document.Money(line.Amount))
	}
	d.Separator('-')

	d.KeyValue("Subtotal", document.Money(data.Totals.Subtotal))
	if data.IsGSTBill {
		d.KeyValue("SGST", document.Money(data.Totals.SGSTAmount))
		d.KeyValue("CGST", document.Money(data.Totals.CGSTAmount))
		if data.Totals.CESSAmount > 0 {
			d.KeyValue("CESS", document.Money(data.Totals.CESSAmount))
		}
	}
	if data.Totals.Discount > 0 {
		d.KeyValue("Discount", document.Money(data.Totals.Discount))
	}
	d.SetBold(true)
	d.KeyValue("TOTAL", document.Money(data.Totals.GrandTotal))
	d.SetBold(false)
	d.Separator('=')

	d.SetAlign(AlignCenter)
	d.Text("Thank you, visit again!")
	d.FeedLines(3)
	d.Cut()

	return d.Bytes()
}

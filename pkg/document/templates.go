package document

// Both layouts target an A4 page with fixed column widths so the printed
// output lines up regardless of content length.

const receiptHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.BillNo}}</title>
<style>
  @page { size: A4; margin: 15mm; }
  body { font-family: Arial, sans-serif; font-size: 12px; width: 180mm; margin: auto; }
  .header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 8px; }
  .parties { display: flex; justify-content: space-between; margin: 12px 0; }
  .parties div { width: 48%; }
  table.items { width: 100%; border-collapse: collapse; margin-top: 8px; }
  table.items th, table.items td { border: 1px solid #000; padding: 4px 6px; }
  table.items th { background: #eee; }
  td.num, th.num { text-align: right; width: 22mm; }
  .totals td { border: none; }
  .totals tr td:first-child { text-align: right; }
  .comments { margin-top: 10px; font-style: italic; }
</style>
</head>
<body>
  <div class="header">
    <h2>{{.SellerName}}</h2>
    <div>{{.SellerAddress}}</div>
    {{if .Seller.ContactNumber}}<div>Phone: {{.Seller.ContactNumber}}</div>{{end}}
    <h3>RECEIPT</h3>
  </div>
  <div class="parties">
    <div>
      <strong>Billed To:</strong><br>
      {{.Buyer.Name}}<br>
      {{.Buyer.Address}}<br>
      {{if .Buyer.ContactNumber}}Phone: {{.Buyer.ContactNumber}}{{end}}
    </div>
    <div>
      <strong>Receipt No:</strong> {{.BillNo}}<br>
      <strong>Date:</strong> {{.Date}}
    </div>
  </div>
  <table class="items">
    <tr><th>#</th><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{.SerialNo}}</td>
      <td>{{.Name}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{money .Amount}}</td>
    </tr>
    {{end}}
  </table>
  <table class="items totals" style="margin-top:6px">
    <tr><td>Subtotal</td><td class="num">{{money .Totals.Subtotal}}</td></tr>
    {{if .IsGSTBill}}<tr><td>GST</td><td class="num">{{money .Totals.GSTAmount}}</td></tr>{{end}}
    <tr><td>Discount</td><td class="num">{{money .Totals.Discount}}</td></tr>
    <tr><td><strong>Total</strong></td><td class="num"><strong>{{money .Totals.GrandTotal}}</strong></td></tr>
  </table>
  {{if .Comments}}<div class="comments">{{.Comments}}</div>{{end}}
</body>
</html>
`

const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Tax Invoice {{.BillNo}}</title>
<style>
  @page { size: A4; margin: 12mm; }
  body { font-family: Arial, sans-serif; font-size: 11px; width: 186mm; margin: auto; }
  .frame { border: 1px solid #000; }
  .title { text-align: center; font-size: 15px; font-weight: bold; border-bottom: 1px solid #000; padding: 4px; }
  .grid { display: flex; border-bottom: 1px solid #000; }
  .grid div { padding: 5px; }
  .grid .cell { width: 50%; border-right: 1px solid #000; }
  .grid .cell:last-child { border-right: none; }
  table { width: 100%; border-collapse: collapse; }
  table.items th, table.items td { border: 1px solid #000; padding: 3px 5px; }
  td.num, th.num { text-align: right; width: 20mm; }
  .words { border-bottom: 1px solid #000; padding: 5px; }
  .bank { padding: 5px; border-bottom: 1px solid #000; }
  .footer { display: flex; }
  .footer div { width: 50%; padding: 5px; }
  .sign { text-align: right; }
</style>
</head>
<body>
<div class="frame">
  <div class="title">TAX INVOICE</div>
  <div class="grid">
    <div class="cell">
      <strong>{{.SellerName}}</strong><br>
      {{.SellerAddress}}<br>
      {{if .Seller.GSTNumber}}GSTIN: {{.Seller.GSTNumber}}<br>{{end}}
      {{if .Seller.ContactNumber}}Phone: {{.Seller.ContactNumber}}{{end}}
    </div>
    <div class="cell">
      <strong>Invoice No:</strong> {{.BillNo}}<br>
      <strong>Dated:</strong> {{.Date}}
    </div>
  </div>
  <div class="grid">
    <div class="cell">
      <strong>Consignee (Ship To)</strong><br>
      {{.Buyer.Name}}<br>
      {{.Buyer.Address}}<br>
      {{if .Buyer.GSTNumber}}GSTIN: {{.Buyer.GSTNumber}}{{end}}
    </div>
    <div class="cell">
      <strong>Buyer (Bill To)</strong><br>
      {{.Buyer.Name}}<br>
      {{.Buyer.Address}}<br>
      {{if .Buyer.ContactNumber}}Phone: {{.Buyer.ContactNumber}}{{end}}
    </div>
  </div>
  <table class="items">
    <tr>
      <th>Sl</th><th>Description of Goods</th><th>HSN/SAC</th>
      <th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th>
    </tr>
    {{range .Lines}}
    <tr>
      <td>{{.SerialNo}}</td>
      <td>{{.Name}}</td>
      <td>{{.HSNCode}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{money .Amount}}</td>
    </tr>
    {{end}}
    <tr>
      <td colspan="5" style="text-align:right"><strong>Subtotal</strong></td>
      <td class="num">{{money .Totals.Subtotal}}</td>
    </tr>
    {{if gt .Totals.Discount 0.0}}
    <tr>
      <td colspan="5" style="text-align:right">Discount</td>
      <td class="num">{{money .Totals.Discount}}</td>
    </tr>
    {{end}}
    <tr>
      <td colspan="5" style="text-align:right"><strong>Grand Total</strong></td>
      <td class="num"><strong>{{money .Totals.GrandTotal}}</strong></td>
    </tr>
  </table>
  {{if .IsGSTBill}}
  <table class="items">
    <tr>
      <th class="num">Taxable Value</th>
      <th class="num">CGST {{money .CGSTPercent}}%</th>
      <th class="num">SGST {{money .SGSTPercent}}%</th>
      <th class="num">CESS {{money .CESSPercent}}%</th>
      <th class="num">Total Tax</th>
    </tr>
    <tr>
      <td class="num">{{money .Totals.TaxableValue}}</td>
      <td class="num">{{money .Totals.CGSTAmount}}</td>
      <td class="num">{{money .Totals.SGSTAmount}}</td>
      <td class="num">{{money .Totals.CESSAmount}}</td>
      <td class="num">{{money .Totals.GSTAmount}}</td>
    </tr>
  </table>
  {{end}}
  <div class="words">
    <strong>Amount Chargeable (in words):</strong> {{.AmountInWords}}<br>
    {{if .IsGSTBill}}<strong>Tax Amount (in words):</strong> {{.TaxAmountInWords}}{{end}}
  </div>
  {{if .Seller.BankDetails}}
  <div class="bank"><strong>Bank Details:</strong> {{.Seller.BankDetails}}</div>
  {{end}}
  <div class="footer">
    <div>
      <strong>Declaration:</strong> We declare that this invoice shows the
      actual price of the goods described and that all particulars are
      true and correct.
      {{if .Comments}}<br><em>{{.Comments}}</em>{{end}}
    </div>
    <div class="sign">
      for {{.SellerName}}<br><br><br>
      Authorised Signatory
    </div>
  </div>
</div>
</body>
</html>
`

package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/domain/entity"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/pkg/apperror"
	"github.com/manikandans/billbook-api/pkg/document"
	"github.com/manikandans/billbook-api/pkg/printer"
)

// DocumentService turns a stored bill into its printable forms: the A4
// HTML page (receipt or tax invoice) and the ESC/POS counter receipt.
type DocumentService struct {
	billRepo    repository.BillRepository
	companyRepo repository.CompanyRepository
	printer     printer.Printer
	charWidth   int
}

// NewDocumentService creates a new document service
func NewDocumentService(
	billRepo repository.BillRepository,
	companyRepo repository.CompanyRepository,
	p printer.Printer,
	charWidth int,
) *DocumentService {
	if charWidth <= 0 {
		charWidth = 42
	}
	return &DocumentService{
		billRepo:    billRepo,
		companyRepo: companyRepo,
		printer:     p,
		charWidth:   charWidth,
	}
}

func (s *DocumentService) buildData(ctx context.Context, billID uuid.UUID, kind document.Kind) (*document.Data, error) {
	bill, err := s.billRepo.GetWithItems(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}

	profile, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	data := document.Data{
		Kind:   kind,
		BillNo: bill.BillNo,
		Date:   bill.DateOfBill.Format("02-01-2006"),
		Buyer: document.Party{
			Name:          bill.Customer.Name,
			Address:       bill.Customer.Address,
			GSTNumber:     bill.Customer.GSTNumber,
			ContactNumber: bill.Customer.Mobile,
		},
		Lines:       linesOf(bill.Items),
		Totals:      totalsOf(bill),
		IsGSTBill:   bill.IsGSTBill,
		SGSTPercent: bill.SGSTPercent,
		CGSTPercent: bill.CGSTPercent,
		CESSPercent: bill.CESSPercent,
		Comments:    bill.Comments,
	}
	if profile != nil {
		data.Seller = document.Seller{
			Name:          profile.Name,
			Address:       profile.Address,
			GSTNumber:     profile.GSTNumber,
			ContactNumber: profile.Phone,
			BankDetails:   profile.BankDetails,
		}
	}
	return &data, nil
}

// RenderBill writes the bill as a self-contained A4 HTML page
func (s *DocumentService) RenderBill(ctx context.Context, w io.Writer, billID uuid.UUID, kind document.Kind) error {
	data, err := s.buildData(ctx, billID, kind)
	if err != nil {
		return err
	}
	return document.Render(w, *data)
}

// PrintBill sends the bill to the configured thermal printer
func (s *DocumentService) PrintBill(ctx context.Context, billID uuid.UUID) error {
	if !s.printer.IsConnected() {
		return apperror.NewAppError(503, "Printer is not connected")
	}

	data, err := s.buildData(ctx, billID, document.KindReceipt)
	if err != nil {
		return err
	}
	return s.printer.Print(printer.BuildReceipt(*data, s.charWidth))
}

// PrinterStatus reports whether the configured printer is reachable
func (s *DocumentService) PrinterStatus() bool {
	return s.printer.IsConnected()
}

func linesOf(items []entity.BillItem) []document.Line {
	lines := make([]document.Line, len(items))
	for i, it := range items {
		lines[i] = document.Line{
			SerialNo:  i + 1,
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    float64(it.Quantity) * it.UnitPrice,
		}
	}
	return lines
}

// totalsOf reconstructs the totals breakdown from the stored bill. The
// stored grand total and GST amount are authoritative; the per-component
// split is re-derived from the stored percentages.
func totalsOf(bill *entity.Bill) document.Totals {
	var subtotal float64
	for _, it := range bill.Items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}

	t := document.Totals{
		Subtotal:   subtotal,
		Discount:   bill.Discount,
		GrandTotal: bill.TotalAmount,
	}

	if !bill.IsGSTBill || bill.GSTAmount == 0 {
		t.TaxableValue = subtotal
		return t
	}

	t.TaxableValue = subtotal - bill.GSTAmount
	totalPct := bill.SGSTPercent + bill.CGSTPercent + bill.CESSPercent
	if totalPct > 0 {
		t.SGSTAmount = bill.GSTAmount * bill.SGSTPercent / totalPct
		t.CGSTAmount = bill.GSTAmount * bill.CGSTPercent / totalPct
		t.CESSAmount = bill.GSTAmount * bill.CESSPercent / totalPct
	}
	return t
}

package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/billing"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/internal/presentation/http/dto/response"
	"github.com/manikandans/billbook-api/pkg/document"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// BillHandler handles bill lifecycle HTTP requests: draft editing,
// submission, listing, deletion and the printable outputs.
type BillHandler struct {
	billingService  *service.BillingService
	documentService *service.DocumentService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, documentService *service.DocumentService) *BillHandler {
	return &BillHandler{
		billingService:  billingService,
		documentService: documentService,
	}
}

// draftRequest is the client-held editor state sent with every draft operation
type draftRequest struct {
	Items       []billing.Item `json:"items"`
	Discount    float64        `json:"discount"`
	IsGSTBill   bool           `json:"is_gst_bill"`
	SGSTPercent float64        `json:"sgst_percent"`
	CGSTPercent float64        `json:"cgst_percent"`
	CESSPercent float64        `json:"cess_percent"`
}

func (r *draftRequest) toInput() *service.DraftInput {
	return &service.DraftInput{
		Items:    r.Items,
		Discount: r.Discount,
		Tax: billing.TaxConfig{
			IsGSTBill:   r.IsGSTBill,
			SGSTPercent: r.SGSTPercent,
			CGSTPercent: r.CGSTPercent,
			CESSPercent: r.CESSPercent,
		},
	}
}

// AddDraftItem handles appending a product line to the draft
func (h *BillHandler) AddDraftItem(c *gin.Context) {
	var req struct {
		draftRequest
		ProductID uuid.UUID `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.billingService.AddDraftItem(c.Request.Context(), req.toInput(), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", state)
}

// UpdateDraftItem handles one field edit on a draft line. Exactly one of
// lots, quantity, unit_price or lot_price must be present.
func (h *BillHandler) UpdateDraftItem(c *gin.Context) {
	var req struct {
		draftRequest
		Index     int      `json:"index"`
		Lots      *string  `json:"lots"`
		Quantity  *int     `json:"quantity"`
		UnitPrice *float64 `json:"unit_price"`
		LotPrice  *float64 `json:"lot_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var edit billing.Edit
	edits := 0
	if req.Lots != nil {
		edit = billing.EditLots{Value: *req.Lots}
		edits++
	}
	if req.Quantity != nil {
		edit = billing.EditQuantity{Value: *req.Quantity}
		edits++
	}
	if req.UnitPrice != nil {
		edit = billing.EditUnitPrice{Value: *req.UnitPrice}
		edits++
	}
	if req.LotPrice != nil {
		edit = billing.EditLotPrice{Value: *req.LotPrice}
		edits++
	}
	if edits != 1 {
		response.BadRequest(c, "Exactly one of lots, quantity, unit_price or lot_price must be set")
		return
	}

	state, err := h.billingService.UpdateDraftItem(c.Request.Context(), req.toInput(), req.Index, edit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", state)
}

// RemoveDraftItem handles removing a draft line
func (h *BillHandler) RemoveDraftItem(c *gin.Context) {
	var req struct {
		draftRequest
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.billingService.RemoveDraftItem(c.Request.Context(), req.toInput(), req.Index)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", state)
}

// PreviewDraft handles recomputing totals for the current draft
func (h *BillHandler) PreviewDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.billingService.PreviewDraft(c.Request.Context(), req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Totals computed", state)
}

// Create handles bill submission
func (h *BillHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		draftRequest
		CustomerID    uuid.UUID  `json:"customer_id" binding:"required"`
		OrderID       *uuid.UUID `json:"order_id"`
		Comments      string     `json:"comments"`
		ExpectedTotal *float64   `json:"expected_total"`
		AmountPaid    float64    `json:"amount_paid" binding:"min=0"`
		PaymentMode   string     `json:"payment_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := req.toInput()
	bill, err := h.billingService.CreateBill(c.Request.Context(), &service.CreateBillInput{
		CustomerID:    req.CustomerID,
		UserID:        *userID,
		OrderID:       req.OrderID,
		Items:         input.Items,
		Discount:      input.Discount,
		Tax:           input.Tax,
		Comments:      req.Comments,
		ExpectedTotal: req.ExpectedTotal,
		AmountPaid:    req.AmountPaid,
		PaymentMode:   enum.PaymentMode(req.PaymentMode),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// Get handles retrieving a bill with its items
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// List handles listing bills with filters
func (h *BillHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.BillFilterParams{
		Pagination: pagination.PaginationParams{Page: page, PerPage: perPage},
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		if id, err := uuid.Parse(customerID); err == nil {
			params.CustomerID = &id
		}
	}
	if statusStr := c.Query("status"); statusStr != "" {
		var status enum.BillStatus
		switch statusStr {
		case "outstanding":
			status = enum.BillStatusOutstanding
		case "partial":
			status = enum.BillStatusPartial
		case "paid":
			status = enum.BillStatusPaid
		default:
			response.BadRequest(c, "Unknown bill status: "+statusStr)
			return
		}
		params.Status = &status
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			params.From = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			end := to.AddDate(0, 0, 1)
			params.To = &end
		}
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Delete handles deleting a bill and reverting its side effects
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Render handles the printable HTML output. The kind query parameter
// selects receipt (default) or tax_invoice.
func (h *BillHandler) Render(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	kind := document.ParseKind(c.Query("kind"))

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(200)
	if err := h.documentService.RenderBill(c.Request.Context(), c.Writer, id, kind); err != nil {
		response.Error(c, err)
		return
	}
}

// Print handles sending the bill to the thermal printer
func (h *BillHandler) Print(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.documentService.PrintBill(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill sent to printer", nil)
}

// PrinterStatus reports whether the configured printer is reachable
func (h *BillHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status", gin.H{"connected": h.documentService.PrinterStatus()})
}

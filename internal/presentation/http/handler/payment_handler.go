package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/domain/enum"
	"github.com/manikandans/billbook-api/internal/domain/repository"
	"github.com/manikandans/billbook-api/internal/presentation/http/dto/response"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// PaymentHandler handles payment and expense HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPayment handles recording a customer payment
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
		BillID     *uuid.UUID `json:"bill_id"`
		Amount     float64    `json:"amount" binding:"required,gt=0"`
		Mode       string     `json:"mode" binding:"required"`
		Notes      string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		CustomerID: req.CustomerID,
		BillID:     req.BillID,
		Amount:     req.Amount,
		Mode:       enum.PaymentMode(req.Mode),
		Notes:      req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

// ListPayments handles listing payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PaymentFilterParams{
		Pagination: pagination.PaginationParams{Page: page, PerPage: perPage},
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		if id, err := uuid.Parse(customerID); err == nil {
			params.CustomerID = &id
		}
	}
	if billID := c.Query("bill_id"); billID != "" {
		if id, err := uuid.Parse(billID); err == nil {
			params.BillID = &id
		}
	}

	result, err := h.paymentService.ListPayments(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", result)
}

// RecordExpense handles recording an expense
func (h *PaymentHandler) RecordExpense(c *gin.Context) {
	var req struct {
		VendorID *uuid.UUID `json:"vendor_id"`
		Category string     `json:"category" binding:"required,max=100"`
		Amount   float64    `json:"amount" binding:"required,gt=0"`
		Notes    string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.paymentService.RecordExpense(c.Request.Context(), &service.RecordExpenseInput{
		VendorID: req.VendorID,
		Category: req.Category,
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// ListExpenses handles listing expenses
func (h *PaymentHandler) ListExpenses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ExpenseFilterParams{
		Category:   c.Query("category"),
		Pagination: pagination.PaginationParams{Page: page, PerPage: perPage},
	}
	if vendorID := c.Query("vendor_id"); vendorID != "" {
		if id, err := uuid.Parse(vendorID); err == nil {
			params.VendorID = &id
		}
	}

	result, err := h.paymentService.ListExpenses(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

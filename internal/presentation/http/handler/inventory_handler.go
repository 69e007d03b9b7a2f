package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/presentation/http/dto/response"
	"github.com/manikandans/billbook-api/pkg/pagination"
)

// InventoryHandler handles stock-in and damage HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// StockIn handles adding purchased stock
func (h *InventoryHandler) StockIn(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		ProductID  uuid.UUID  `json:"product_id" binding:"required"`
		VendorID   *uuid.UUID `json:"vendor_id"`
		Quantity   int        `json:"quantity" binding:"required,min=1"`
		UnitCost   float64    `json:"unit_cost" binding:"min=0"`
		AmountPaid float64    `json:"amount_paid" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.inventoryService.StockIn(c.Request.Context(), &service.StockInInput{
		ProductID:  req.ProductID,
		VendorID:   req.VendorID,
		Quantity:   req.Quantity,
		UnitCost:   req.UnitCost,
		AddedBy:    *userID,
		AmountPaid: req.AmountPaid,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock added successfully", entry)
}

// ListStockEntries handles listing stock additions
func (h *InventoryHandler) ListStockEntries(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	result, err := h.inventoryService.ListStockEntries(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Stock entries retrieved successfully", result)
}

// RecordDamage handles writing off damaged stock
func (h *InventoryHandler) RecordDamage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		ProductID uuid.UUID `json:"product_id" binding:"required"`
		Quantity  int       `json:"quantity" binding:"required,min=1"`
		Reason    string    `json:"reason" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	damage, err := h.inventoryService.RecordDamage(c.Request.Context(), &service.RecordDamageInput{
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		RecordedBy: *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Damage recorded successfully", damage)
}

// ListDamage handles listing damage records
func (h *InventoryHandler) ListDamage(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	result, err := h.inventoryService.ListDamage(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Damage records retrieved successfully", result)
}

// LowStock handles listing products at or below their threshold
func (h *InventoryHandler) LowStock(c *gin.Context) {
	products, err := h.inventoryService.GetLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

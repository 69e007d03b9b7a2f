package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/presentation/http/dto/response"
)

// CompanyHandler handles seller profile HTTP requests
type CompanyHandler struct {
	companyService *service.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get handles retrieving the seller profile
func (h *CompanyHandler) Get(c *gin.Context) {
	profile, err := h.companyService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile retrieved successfully", profile)
}

// Update handles creating or replacing the seller profile. Admin only.
func (h *CompanyHandler) Update(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=255"`
		Address     string `json:"address"`
		GSTNumber   string `json:"gst_number" binding:"omitempty,max=20"`
		Phone       string `json:"phone" binding:"omitempty,max=15"`
		BankDetails string `json:"bank_details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.companyService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		GSTNumber:   req.GSTNumber,
		Phone:       req.Phone,
		BankDetails: req.BankDetails,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", profile)
}

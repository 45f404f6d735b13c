package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/nexyrt/agsa-finance/internal/application/service"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/dto/response"
)

// CompanyHandler exposes the company block printed on invoices
type CompanyHandler struct {
	printService *service.InvoicePrintService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(printService *service.InvoicePrintService) *CompanyHandler {
	return &CompanyHandler{printService: printService}
}

// GetProfile returns the current company profile, or the fallback company
// @Summary Company profile
// @Tags company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /company-profile [get]
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	info, err := h.printService.CompanyInfo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile retrieved successfully", info)
}

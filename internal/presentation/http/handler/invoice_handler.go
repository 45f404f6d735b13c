package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nexyrt/agsa-finance/internal/application/service"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/dto/request"
	"github.com/nexyrt/agsa-finance/internal/presentation/http/dto/response"
	"github.com/shopspring/decimal"
)

const contentTypePDF = "application/pdf"

// InvoiceHandler handles invoice printing HTTP requests
type InvoiceHandler struct {
	printService *service.InvoicePrintService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(printService *service.InvoicePrintService) *InvoiceHandler {
	return &InvoiceHandler{printService: printService}
}

// DownloadPDF renders an invoice and sends it as an attachment
// @Summary Download invoice PDF
// @Tags invoices
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Param dp_amount query number false "Down payment amount"
// @Param pelunasan_amount query number false "Settlement amount"
// @Success 200 {file} binary
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	h.renderPDF(c, "attachment")
}

// PreviewPDF renders an invoice and streams it inline
// @Summary Preview invoice PDF
// @Tags invoices
// @Security BearerAuth
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Router /invoices/{id}/pdf/preview [get]
func (h *InvoiceHandler) PreviewPDF(c *gin.Context) {
	h.renderPDF(c, "inline")
}

// PrintData returns the assembled invoice document as JSON
// @Summary Invoice print data
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /invoices/{id}/print-data [get]
func (h *InvoiceHandler) PrintData(c *gin.Context) {
	id, dp, pelunasan, ok := parsePrintRequest(c)
	if !ok {
		return
	}

	doc, err := h.printService.PrintData(c.Request.Context(), id, dp, pelunasan)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice print data retrieved successfully", doc)
}

func (h *InvoiceHandler) renderPDF(c *gin.Context, disposition string) {
	id, dp, pelunasan, ok := parsePrintRequest(c)
	if !ok {
		return
	}

	rendered, err := h.printService.GeneratePDF(c.Request.Context(), id, dp, pelunasan)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Attachment(c, disposition, rendered.Filename, contentTypePDF, rendered.Content)
}

func parsePrintRequest(c *gin.Context) (uuid.UUID, *decimal.Decimal, *decimal.Decimal, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return uuid.Nil, nil, nil, false
	}

	var query request.InvoicePrintQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid payment amount")
		return uuid.Nil, nil, nil, false
	}

	dp, pelunasan, err := query.Amounts()
	if err != nil {
		response.BadRequest(c, "Invalid payment amount")
		return uuid.Nil, nil, nil, false
	}

	return id, dp, pelunasan, true
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/syedahad2205/dajaj-pos/internal/application/service"
	"github.com/syedahad2205/dajaj-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the receipt data anyway (useful when printer type is "none")
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"receipt": receipt,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": receipt,
	})
}

// PrintBill prints the receipt for a finalized bill.
func (h *PrinterHandler) PrintBill(c *gin.Context) {
	receipt, err := h.printerService.PrintBillReceipt(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		// If the receipt was built but printing failed, return it with a warning
		if receipt != nil {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": receipt,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
	})
}

// GetReceipt builds the receipt for a bill without printing it.
func (h *PrinterHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.printerService.GetReceipt(c.Request.Context(), c.Param("billNo"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt generated", gin.H{
		"receipt": receipt,
	})
}

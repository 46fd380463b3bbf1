package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workpaysg/timecard-payslip/dto"
	"github.com/workpaysg/timecard-payslip/service"
)

type PayslipHandler struct {
	payslipService *service.PayslipService
}

func NewPayslipHandler(payslipService *service.PayslipService) *PayslipHandler {
	return &PayslipHandler{
		payslipService: payslipService,
	}
}

// Calculate handles the POST /api/v1/payslip/calculate endpoint.
func (h *PayslipHandler) Calculate(c *gin.Context) {
	var input dto.PayslipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	response, err := h.payslipService.Calculate(input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, dto.ErrNoEntries) {
			status = http.StatusUnprocessableEntity
		}
		h.sendError(c, status, "Failed to calculate payslip", err)
		return
	}

	log.Printf("Calculated payslip %s: net pay %.2f, %d warnings",
		response.ID, response.Payslip.NetPay, len(response.Payslip.Warnings))
	c.JSON(http.StatusOK, response)
}

// History handles the GET /api/v1/payslip/history endpoint.
func (h *PayslipHandler) History(c *gin.Context) {
	entries, err := h.payslipService.History()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to load history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// HistoryEntry handles the GET /api/v1/payslip/history/:id endpoint.
func (h *PayslipHandler) HistoryEntry(c *gin.Context) {
	entry, err := h.payslipService.HistoryEntry(c.Param("id"))
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			h.sendError(c, http.StatusNotFound, "Payslip not found", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to load history", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteHistoryEntry handles the DELETE /api/v1/payslip/history/:id endpoint.
func (h *PayslipHandler) DeleteHistoryEntry(c *gin.Context) {
	if err := h.payslipService.DeleteHistoryEntry(c.Param("id")); err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			h.sendError(c, http.StatusNotFound, "Payslip not found", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to delete history entry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ClearHistory handles the DELETE /api/v1/payslip/history endpoint.
func (h *PayslipHandler) ClearHistory(c *gin.Context) {
	if err := h.payslipService.ClearHistory(); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to clear history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// sendError sends a structured error response
func (h *PayslipHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "PAYSLIP_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

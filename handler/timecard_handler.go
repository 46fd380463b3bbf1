package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/workpaysg/timecard-payslip/dto"
	"github.com/workpaysg/timecard-payslip/service"
	"github.com/workpaysg/timecard-payslip/utils/timecard"
)

type TimecardHandler struct {
	timecardService *service.TimecardService
}

func NewTimecardHandler(timecardService *service.TimecardService) *TimecardHandler {
	return &TimecardHandler{
		timecardService: timecardService,
	}
}

// Parse handles the POST /api/v1/timecard/parse endpoint.
// It accepts one or more timecard images or PDFs plus optional year/month
// override form fields.
func (h *TimecardHandler) Parse(c *gin.Context) {
	log.Println("Received timecard parse request")

	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		h.sendError(c, http.StatusBadRequest, dto.ErrNoFiles.Error(), nil)
		return
	}

	overrideYear, _ := strconv.Atoi(c.PostForm("year"))
	overrideMonth, _ := strconv.Atoi(c.PostForm("month"))
	if m := c.PostForm("month"); m != "" && (overrideMonth < 1 || overrideMonth > 12) {
		h.sendError(c, http.StatusBadRequest, dto.ErrInvalidMonth.Error(), nil)
		return
	}

	log.Printf("Processing %d timecard files", len(files))

	result, err := h.timecardService.ParseTimecards(files, overrideYear, overrideMonth)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to parse timecards", err)
		return
	}

	log.Printf("Parsed %d entries for %04d-%02d", len(result.Entries), result.Year, result.Month)
	c.JSON(http.StatusOK, result)
}

// Fill handles the POST /api/v1/timecard/fill endpoint.
// It completes the given preview rows to every calendar day of the month.
func (h *TimecardHandler) Fill(c *gin.Context) {
	var req dto.FillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	rows := timecard.FillMissingDays(req.Rows, req.Year, req.Month)
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

// Remap handles the POST /api/v1/timecard/remap endpoint.
// It moves an existing parse to a different year/month, dropping days that
// do not exist in the target month.
func (h *TimecardHandler) Remap(c *gin.Context) {
	var req dto.RemapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	rows, entries := timecard.RemapYearMonth(req.Rows, req.Entries, req.Year, req.Month)
	c.JSON(http.StatusOK, dto.RemapResponse{Rows: rows, Entries: entries})
}

// sendError sends a structured error response
func (h *TimecardHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TIMECARD_PARSE_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

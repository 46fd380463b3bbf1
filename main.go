package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/workpaysg/timecard-payslip/client"
	"github.com/workpaysg/timecard-payslip/config"
	"github.com/workpaysg/timecard-payslip/handler"
	"github.com/workpaysg/timecard-payslip/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// VERY IMPORTANT: Set correct tessdata prefix for Tesseract v5
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize OCR clients
	paddleClient := client.NewPaddleClient(cfg.PaddleAPIURL, cfg.PaddleTimeout)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	timecardService := service.NewTimecardService(paddleClient, tesseractClient, pdfProcessor)
	historyStore := service.NewHistoryStore(cfg.HistoryFile, cfg.HistoryMaxSize)
	payslipService := service.NewPayslipService(historyStore)

	// Initialize handler layer
	timecardHandler := handler.NewTimecardHandler(timecardService)
	payslipHandler := handler.NewPayslipHandler(payslipService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Timecard Payslip",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		timecardGroup := api.Group("/timecard")
		{
			timecardGroup.POST("/parse", timecardHandler.Parse)
			timecardGroup.POST("/fill", timecardHandler.Fill)
			timecardGroup.POST("/remap", timecardHandler.Remap)
		}

		payslip := api.Group("/payslip")
		{
			payslip.POST("/calculate", payslipHandler.Calculate)
			payslip.GET("/history", payslipHandler.History)
			payslip.DELETE("/history", payslipHandler.ClearHistory)
			payslip.GET("/history/:id", payslipHandler.HistoryEntry)
			payslip.DELETE("/history/:id", payslipHandler.DeleteHistoryEntry)
		}
	}

	// Start server
	log.Printf("Starting Timecard Payslip Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

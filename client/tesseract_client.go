package client

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/workpaysg/timecard-payslip/dto"
)

// TesseractClient is the local fallback OCR engine, used when the
// PaddleOCR service is unreachable or returns nothing.
type TesseractClient struct {
	tessdataPrefix string
}

func NewTesseractClient(tessdataPrefix string) *TesseractClient {
	return &TesseractClient{
		tessdataPrefix: tessdataPrefix,
	}
}

// ExtractLinesFromFile runs OCR on an uploaded file and returns one raw
// line per recognized text line, with its bounding box.
func (tc *TesseractClient) ExtractLinesFromFile(fileHeader *multipart.FileHeader) ([]dto.RawLine, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	tempFile, err := tc.CreateTempFile(file, fileHeader.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile)

	return tc.ExtractLines(tempFile)
}

// CreateTempFile creates a temporary file from uploaded content
func (tc *TesseractClient) CreateTempFile(file multipart.File, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tempFile, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", err
	}
	defer tempFile.Close()

	if _, err := io.Copy(tempFile, file); err != nil {
		os.Remove(tempFile.Name())
		return "", err
	}

	return tempFile.Name(), nil
}

// ExtractLines runs Tesseract on an image file on disk.
func (tc *TesseractClient) ExtractLines(filePath string) ([]dto.RawLine, error) {
	client := gosseract.NewClient()
	defer client.Close()

	// VERY IMPORTANT: Explicitly set correct tessdata path
	client.SetTessdataPrefix(tc.tessdataPrefix)

	if err := client.SetLanguage("eng"); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImage(filePath); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		// Without line geometry, fall back to plain text split on newlines.
		text, terr := client.Text()
		if terr != nil {
			return nil, fmt.Errorf("failed to extract text: %w", terr)
		}
		return linesFromText(text), nil
	}

	var lines []dto.RawLine
	for _, box := range boxes {
		r := box.Box
		quad := dto.FourPoints{
			{float64(r.Min.X), float64(r.Min.Y)},
			{float64(r.Max.X), float64(r.Min.Y)},
			{float64(r.Max.X), float64(r.Max.Y)},
			{float64(r.Min.X), float64(r.Max.Y)},
		}
		lines = append(lines, dto.RawLine{
			Text:       box.Word,
			Confidence: box.Confidence / 100,
			Box:        &quad,
		})
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("tesseract extracted no text from image")
	}

	log.Printf("Tesseract extracted %d lines", len(lines))
	return lines, nil
}

func linesFromText(text string) []dto.RawLine {
	var lines []dto.RawLine
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, dto.RawLine{Text: l})
	}
	return lines
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	log.Println("Tesseract client closed")
}

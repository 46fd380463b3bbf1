package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/workpaysg/timecard-payslip/client"
	"github.com/workpaysg/timecard-payslip/dto"
	"github.com/workpaysg/timecard-payslip/engine"
	"github.com/workpaysg/timecard-payslip/utils/timecard"
)

// minPDFTextChars is the threshold below which a PDF's text layer is
// considered a scan artifact and its embedded images are OCR'd instead.
const minPDFTextChars = 50

type TimecardService struct {
	paddleClient    *client.PaddleClient
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
}

func NewTimecardService(
	paddleClient *client.PaddleClient,
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
) *TimecardService {
	return &TimecardService{
		paddleClient:    paddleClient,
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ParseTimecards processes the uploaded files in upload order and merges
// them into one month. Files are pages or photos of the same physical
// timecard, so a later file's reading of a day wins over an earlier one.
// Year/month come from the first file whose header yields them, unless
// overridden. Preview rows are filled to the complete calendar month once,
// after the merge.
func (s *TimecardService) ParseTimecards(files []*multipart.FileHeader, overrideYear, overrideMonth int) (dto.ParsedTimecard, error) {
	if len(files) == 0 {
		return dto.ParsedTimecard{}, dto.ErrNoFiles
	}

	var (
		year, month int
		rowsByDate  = make(map[string]dto.PreviewRow)
		entryByDate = make(map[string]dto.DayEntry)
		failures    int
		lastErr     error
	)

	for _, file := range files {
		parsed, err := s.parseOneFile(file, overrideYear, overrideMonth)
		if err != nil {
			log.Printf("Warning: failed to parse %s: %v", file.Filename, err)
			failures++
			lastErr = err
			continue
		}

		if year == 0 {
			year, month = parsed.Year, parsed.Month
		}
		mergeParsed(rowsByDate, entryByDate, parsed)
	}

	if failures == len(files) {
		return dto.ParsedTimecard{}, fmt.Errorf("no timecard file could be processed: %w", lastErr)
	}

	rows := make([]dto.PreviewRow, 0, len(rowsByDate))
	for _, row := range rowsByDate {
		rows = append(rows, row)
	}

	result := dto.ParsedTimecard{
		Year:  year,
		Month: month,
		Rows:  timecard.FillMissingDays(rows, year, month),
	}

	holidays := engine.PublicHolidays(year)
	dates := make([]string, 0, len(entryByDate))
	for date := range entryByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for _, date := range dates {
		entry := entryByDate[date]
		entry.DayType = engine.AutoDayType(entry.Date, holidays)
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// mergeParsed folds one file's reading into the accumulated maps. The
// later file wins per date: a row that carries no entry clears any entry
// an earlier file produced for that date, the same way a repeated day
// inside a single document does.
func mergeParsed(rowsByDate map[string]dto.PreviewRow, entryByDate map[string]dto.DayEntry, parsed dto.ParsedTimecard) {
	entries := make(map[string]dto.DayEntry, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		entries[entry.Date] = entry
	}
	for _, row := range parsed.Rows {
		rowsByDate[row.Date] = row
		if entry, ok := entries[row.Date]; ok {
			entryByDate[row.Date] = entry
		} else {
			delete(entryByDate, row.Date)
		}
	}
}

func (s *TimecardService) parseOneFile(file *multipart.FileHeader, overrideYear, overrideMonth int) (dto.ParsedTimecard, error) {
	f, err := file.Open()
	if err != nil {
		return dto.ParsedTimecard{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return dto.ParsedTimecard{}, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return s.parsePDF(fileBytes, overrideYear, overrideMonth)
	}

	lines, err := s.ocrImage(fileBytes, file)
	if err != nil {
		return dto.ParsedTimecard{}, err
	}
	return timecard.ParseDocument(lines, overrideYear, overrideMonth), nil
}

func (s *TimecardService) parsePDF(pdfBytes []byte, overrideYear, overrideMonth int) (dto.ParsedTimecard, error) {
	// Digital PDFs carry a usable text layer; scans need image OCR.
	text, err := s.pdfProcessor.ExtractText(pdfBytes)
	if err == nil && len(strings.TrimSpace(text)) >= minPDFTextChars {
		return timecard.ParseText(text, overrideYear, overrideMonth), nil
	}

	images, err := s.pdfProcessor.ExtractImages(pdfBytes)
	if err != nil {
		return dto.ParsedTimecard{}, fmt.Errorf("failed to extract PDF images: %w", err)
	}
	if len(images) == 0 {
		return dto.ParsedTimecard{}, fmt.Errorf("PDF contains no extractable text or images")
	}

	var allLines []dto.RawLine
	for i, imgBytes := range images {
		lines, err := s.ocrImage(imgBytes, nil)
		if err != nil {
			log.Printf("Warning: OCR failed on PDF image %d: %v", i+1, err)
			continue
		}
		allLines = append(allLines, lines...)
	}
	if len(allLines) == 0 {
		return dto.ParsedTimecard{}, fmt.Errorf("OCR extracted nothing from PDF images")
	}

	return timecard.ParseDocument(allLines, overrideYear, overrideMonth), nil
}

// ocrImage tries PaddleOCR first and falls back to local Tesseract.
// fileHeader may be nil when the bytes come from inside a PDF.
func (s *TimecardService) ocrImage(imageBytes []byte, fileHeader *multipart.FileHeader) ([]dto.RawLine, error) {
	lines, err := s.paddleClient.ExtractLines(imageBytes)
	if err == nil {
		return lines, nil
	}
	log.Printf("PaddleOCR failed, falling back to Tesseract: %v", err)

	if fileHeader != nil {
		return s.tesseractClient.ExtractLinesFromFile(fileHeader)
	}

	tempFile, err := os.CreateTemp("", "timecard-img-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(imageBytes); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("failed to write temp image: %w", err)
	}
	tempFile.Close()

	return s.tesseractClient.ExtractLines(tempFile.Name())
}

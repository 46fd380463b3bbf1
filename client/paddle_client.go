package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/workpaysg/timecard-payslip/dto"
)

// PaddleClient talks to a PaddleOCR REST service. Paddle is the primary
// engine because it returns per-line geometry, which the parser needs to
// reassemble the timecard grid.
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewPaddleClient creates a client for the PaddleOCR HTTP API.
func NewPaddleClient(apiURL string, timeout time.Duration) *PaddleClient {
	log.Printf("PaddleOCR client initialized with API: %s", apiURL)
	return &PaddleClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ExtractLines sends image bytes to the PaddleOCR service and returns the
// recognized lines with their confidence and bounding quadrilateral.
func (p *PaddleClient) ExtractLines(imageBytes []byte) ([]dto.RawLine, error) {
	encoded := base64.StdEncoding.EncodeToString(imageBytes)

	payload := map[string]interface{}{
		"images": []string{encoded},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.httpClient.Post(p.apiURL, "application/json", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results [][]struct {
			Text       string       `json:"text"`
			Confidence float64      `json:"confidence"`
			TextRegion [][2]float64 `json:"text_region"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var lines []dto.RawLine
	if len(result.Results) > 0 {
		for _, l := range result.Results[0] {
			line := dto.RawLine{Text: l.Text, Confidence: l.Confidence}
			if len(l.TextRegion) == 4 {
				var box dto.FourPoints
				copy(box[:], l.TextRegion)
				line.Box = &box
			}
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("PaddleOCR extracted no text from image")
	}

	log.Printf("PaddleOCR extracted %d lines", len(lines))
	return lines, nil
}

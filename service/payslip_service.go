package service

import (
	"fmt"

	"github.com/workpaysg/timecard-payslip/dto"
	"github.com/workpaysg/timecard-payslip/engine"
	"github.com/workpaysg/timecard-payslip/utils"
)

// PayslipService validates calculation input, runs the wage engine and
// records the result in history.
type PayslipService struct {
	history *HistoryStore
}

func NewPayslipService(history *HistoryStore) *PayslipService {
	return &PayslipService{history: history}
}

// Calculate computes an itemized payslip and saves it to history.
func (s *PayslipService) Calculate(input dto.PayslipInput) (dto.CalculateResponse, error) {
	if err := utils.ValidatePayslipInput(input); err != nil {
		return dto.CalculateResponse{}, err
	}

	payslip := engine.CalcPayslip(input)

	entry, err := s.history.Add(input, payslip)
	if err != nil {
		// The payslip itself is still valid; surface the save failure.
		return dto.CalculateResponse{}, fmt.Errorf("failed to save payslip to history: %w", err)
	}

	return dto.CalculateResponse{ID: entry.ID, Payslip: payslip}, nil
}

// History returns all saved payslips, newest first.
func (s *PayslipService) History() ([]dto.HistoryEntry, error) {
	return s.history.List()
}

// HistoryEntry returns one saved payslip by id.
func (s *PayslipService) HistoryEntry(id string) (dto.HistoryEntry, error) {
	return s.history.Get(id)
}

// DeleteHistoryEntry removes one saved payslip by id.
func (s *PayslipService) DeleteHistoryEntry(id string) error {
	return s.history.Delete(id)
}

// ClearHistory removes every saved payslip.
func (s *PayslipService) ClearHistory() error {
	return s.history.Clear()
}

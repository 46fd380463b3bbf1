package service

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/workpaysg/timecard-payslip/dto"
)

// HistoryStore persists computed payslips as a plain JSON array on disk,
// newest last. When the cap is exceeded the oldest entries are evicted.
type HistoryStore struct {
	mu       sync.Mutex
	filePath string
	maxSize  int
}

func NewHistoryStore(filePath string, maxSize int) *HistoryStore {
	return &HistoryStore{
		filePath: filePath,
		maxSize:  maxSize,
	}
}

func (h *HistoryStore) load() ([]dto.HistoryEntry, error) {
	data, err := os.ReadFile(h.filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var entries []dto.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt history file should not block new saves.
		log.Printf("Warning: history file %s is corrupt, starting fresh: %v", h.filePath, err)
		return nil, nil
	}
	return entries, nil
}

func (h *HistoryStore) save(entries []dto.HistoryEntry) error {
	if dir := filepath.Dir(h.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create history dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(h.filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Add appends a computed payslip and returns its generated id.
func (h *HistoryStore) Add(input dto.PayslipInput, payslip dto.PayslipResult) (dto.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return dto.HistoryEntry{}, err
	}

	entry := dto.HistoryEntry{
		ID:            uuid.New().String(),
		SavedAt:       time.Now().UTC().Format(time.RFC3339),
		EmployeeName:  input.EmployeeName,
		MonthlySalary: input.MonthlySalary,
		Payslip:       payslip,
	}
	entries = append(entries, entry)

	if h.maxSize > 0 && len(entries) > h.maxSize {
		entries = entries[len(entries)-h.maxSize:]
	}

	if err := h.save(entries); err != nil {
		return dto.HistoryEntry{}, err
	}
	return entry, nil
}

// List returns all saved payslips, newest first.
func (h *HistoryStore) List() ([]dto.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return nil, err
	}

	out := make([]dto.HistoryEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Get returns one saved payslip by id.
func (h *HistoryStore) Get(id string) (dto.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return dto.HistoryEntry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return dto.HistoryEntry{}, dto.ErrNotFound
}

// Delete removes one saved payslip by id.
func (h *HistoryStore) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return dto.ErrNotFound
	}
	return h.save(kept)
}

// Clear removes every saved payslip.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.save([]dto.HistoryEntry{})
}

package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"tokenhub/internal/modules/ledger/domain"
	ledgerout "tokenhub/internal/modules/ledger/port/out"
)

// FileStore keeps the ledger as one JSON array on disk, the original device
// storage model: every mutation loads the whole collection, rewrites it, and
// stores it back, so the mutex covers the full cycle.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Append(_ context.Context, record domain.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return err
	}
	records = append(records, record)
	return s.save(records)
}

func (s *FileStore) QueryAll(_ context.Context, userID string) ([]domain.ScanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.ScanRecord, 0, len(records))
	for _, record := range records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	return out, nil
}

func (s *FileStore) CountAutomatedToday(_ context.Context, userID, category string, window domain.DayWindow) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, record := range records {
		if record.UserID != userID || record.Type != domain.TypeAutomated || record.Category != category {
			continue
		}
		if window.Contains(record.Timestamp) {
			total += record.Amount
		}
	}
	return total, nil
}

func (s *FileStore) ClearAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save([]domain.ScanRecord{})
}

func (s *FileStore) ClearUser(_ context.Context, userID string) error {
	return s.filter(func(record domain.ScanRecord) bool {
		return record.UserID != userID
	})
}

func (s *FileStore) ClearTodayUser(_ context.Context, userID string, window domain.DayWindow) error {
	return s.filter(func(record domain.ScanRecord) bool {
		return !(record.UserID == userID && window.Contains(record.Timestamp))
	})
}

func (s *FileStore) filter(keep func(domain.ScanRecord) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]domain.ScanRecord, 0, len(records))
	for _, record := range records {
		if keep(record) {
			kept = append(kept, record)
		}
	}
	return s.save(kept)
}

func (s *FileStore) load() ([]domain.ScanRecord, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ScanRecord{}, nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	records := []domain.ScanRecord{}
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode ledger file: %w", err)
	}
	return records, nil
}

func (s *FileStore) save(records []domain.ScanRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	return nil
}

var _ ledgerout.Store = (*FileStore)(nil)

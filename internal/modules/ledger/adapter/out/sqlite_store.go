package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tokenhub/internal/modules/ledger/domain"
	ledgerout "tokenhub/internal/modules/ledger/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the durable scan ledger. A single mutex serializes every
// operation: clear actions from other app surfaces can race an in-flight
// scan, and interleaved read-modify-write cycles would lose or duplicate
// records.
type SQLiteStore struct {
	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open ledger sqlite: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS scans (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  type TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  mood TEXT NOT NULL DEFAULT '',
  amount INTEGER NOT NULL,
  timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_user_ts ON scans(user_id, timestamp);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create scans table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Append(ctx context.Context, record domain.ScanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	const stmt = `INSERT INTO scans (id, user_id, type, category, mood, amount, timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, stmt, record.ID, record.UserID, record.Type, record.Category, record.Mood, record.Amount, record.Timestamp); err != nil {
		return fmt.Errorf("append scan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) QueryAll(ctx context.Context, userID string) ([]domain.ScanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	const query = `SELECT id, user_id, type, category, mood, amount, timestamp FROM scans WHERE user_id = ? ORDER BY timestamp DESC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ScanRecord, 0)
	for rows.Next() {
		record := domain.ScanRecord{}
		if err := rows.Scan(&record.ID, &record.UserID, &record.Type, &record.Category, &record.Mood, &record.Amount, &record.Timestamp); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger rows: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) CountAutomatedToday(ctx context.Context, userID, category string, window domain.DayWindow) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	const query = `
SELECT COALESCE(SUM(amount), 0)
FROM scans
WHERE user_id = ? AND type = ? AND category = ? AND timestamp >= ? AND timestamp <= ?`
	var total int
	if err := s.db.QueryRowContext(ctx, query, userID, domain.TypeAutomated, category, window.Start, window.End).Scan(&total); err != nil {
		return 0, fmt.Errorf("count automated scans: %w", err)
	}
	return total, nil
}

func (s *SQLiteStore) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scans`); err != nil {
		return fmt.Errorf("clear scans: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear user scans: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ClearTodayUser(ctx context.Context, userID string, window domain.DayWindow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	const stmt = `DELETE FROM scans WHERE user_id = ? AND timestamp >= ? AND timestamp <= ?`
	if _, err := s.db.ExecContext(ctx, stmt, userID, window.Start, window.End); err != nil {
		return fmt.Errorf("clear today's scans: %w", err)
	}
	return nil
}

var _ ledgerout.Store = (*SQLiteStore)(nil)

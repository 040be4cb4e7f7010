package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tokenhub/internal/modules/mirror/domain"
	mirrorout "tokenhub/internal/modules/mirror/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHubStore persists mirrored documents on the hub, keyed by
// (space, user, record id) so repeated mirrors of the same scan upsert.
type SQLiteHubStore struct {
	db *sql.DB
}

func NewSQLiteHubStore(dbPath string) (*SQLiteHubStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create hub db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open hub sqlite: %w", err)
	}
	s := &SQLiteHubStore{db: db}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteHubStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS mirrored_scans (
  space TEXT NOT NULL,
  user_id TEXT NOT NULL,
  id TEXT NOT NULL,
  type TEXT NOT NULL,
  category TEXT NOT NULL DEFAULT '',
  mood TEXT NOT NULL DEFAULT '',
  amount INTEGER NOT NULL,
  timestamp INTEGER NOT NULL,
  PRIMARY KEY (space, user_id, id)
);
CREATE INDEX IF NOT EXISTS idx_mirrored_scans_space_ts ON mirrored_scans(space, timestamp);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create mirrored_scans table: %w", err)
	}
	return nil
}

func (s *SQLiteHubStore) SaveScan(ctx context.Context, space string, doc domain.Document) error {
	const stmt = `
INSERT INTO mirrored_scans (space, user_id, id, type, category, mood, amount, timestamp)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(space, user_id, id) DO UPDATE SET
  type = excluded.type,
  category = excluded.category,
  mood = excluded.mood,
  amount = excluded.amount,
  timestamp = excluded.timestamp;
`
	if _, err := s.db.ExecContext(ctx, stmt, space, doc.UserID, doc.ID, doc.Type, doc.Category, doc.Mood, doc.Amount, doc.Timestamp); err != nil {
		return fmt.Errorf("upsert mirrored scan: %w", err)
	}
	return nil
}

func (s *SQLiteHubStore) ClearUser(ctx context.Context, space, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mirrored_scans WHERE space = ? AND user_id = ?`, space, userID); err != nil {
		return fmt.Errorf("clear mirrored scans: %w", err)
	}
	return nil
}

func (s *SQLiteHubStore) ClearToday(ctx context.Context, space, userID string, startMillis, endMillis int64) error {
	const stmt = `DELETE FROM mirrored_scans WHERE space = ? AND user_id = ? AND timestamp >= ? AND timestamp <= ?`
	if _, err := s.db.ExecContext(ctx, stmt, space, userID, startMillis, endMillis); err != nil {
		return fmt.Errorf("clear today's mirrored scans: %w", err)
	}
	return nil
}

func (s *SQLiteHubStore) List(ctx context.Context, space, userID string) ([]domain.Document, error) {
	query := `SELECT id, user_id, type, category, mood, amount, timestamp FROM mirrored_scans WHERE space = ?`
	args := []any{space}
	if userID != "" {
		query += ` AND user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mirrored scans: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Document, 0)
	for rows.Next() {
		doc := domain.Document{}
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.Type, &doc.Category, &doc.Mood, &doc.Amount, &doc.Timestamp); err != nil {
			return nil, fmt.Errorf("scan mirrored row: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mirrored rows: %w", err)
	}
	return out, nil
}

var _ mirrorout.RemoteStore = (*SQLiteHubStore)(nil)

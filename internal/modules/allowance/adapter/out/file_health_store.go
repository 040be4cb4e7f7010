package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tokenhub/internal/modules/allowance/domain"
	allowanceout "tokenhub/internal/modules/allowance/port/out"
	apperrors "tokenhub/internal/platform/errors"
)

// FileHealthStore keeps one JSON snapshot file per user under dir.
type FileHealthStore struct {
	dir string
}

var _ allowanceout.HealthStore = (*FileHealthStore)(nil)

func NewFileHealthStore(dir string) *FileHealthStore {
	return &FileHealthStore{dir: dir}
}

func (s *FileHealthStore) Save(_ context.Context, userID string, snapshot domain.HealthSnapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create health dir: %w", err)
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode health snapshot: %w", err)
	}
	if err := os.WriteFile(s.path(userID), data, 0o644); err != nil {
		return fmt.Errorf("write health snapshot: %w", err)
	}
	return nil
}

func (s *FileHealthStore) Load(_ context.Context, userID string) (domain.HealthSnapshot, error) {
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return domain.HealthSnapshot{}, apperrors.ErrNoHealthSnapshot
	}
	if err != nil {
		return domain.HealthSnapshot{}, fmt.Errorf("read health snapshot: %w", err)
	}
	var snapshot domain.HealthSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.HealthSnapshot{}, fmt.Errorf("decode health snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *FileHealthStore) path(userID string) string {
	// User ids come from CLI flags; keep path separators out of filenames.
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, userID)
	return filepath.Join(s.dir, "health-"+safe+".json")
}

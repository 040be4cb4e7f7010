package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tokenhub/internal/modules/family/domain"
	familyout "tokenhub/internal/modules/family/port/out"
	apperrors "tokenhub/internal/platform/errors"
)

type FileSpaceStore struct {
	path string
}

var _ familyout.SpaceStore = (*FileSpaceStore)(nil)

func NewFileSpaceStore(path string) *FileSpaceStore {
	return &FileSpaceStore{path: path}
}

func (s *FileSpaceStore) Save(_ context.Context, space domain.Space) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create family dir: %w", err)
	}
	payload, err := json.MarshalIndent(space, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal family space: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write family space: %w", err)
	}
	return nil
}

func (s *FileSpaceStore) Load(_ context.Context) (domain.Space, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Space{}, apperrors.ErrNoFamilySpace
		}
		return domain.Space{}, fmt.Errorf("read family space: %w", err)
	}
	space := domain.Space{}
	if err := json.Unmarshal(payload, &space); err != nil {
		return domain.Space{}, fmt.Errorf("decode family space: %w", err)
	}
	if space.Name == "" {
		return domain.Space{}, apperrors.ErrNoFamilySpace
	}
	return space, nil
}

func (s *FileSpaceStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear family space: %w", err)
	}
	return nil
}

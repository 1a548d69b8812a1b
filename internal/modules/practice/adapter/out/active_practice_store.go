package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kickclock/internal/modules/practice/domain"
	practiceout "kickclock/internal/modules/practice/port/out"
	apperrors "kickclock/internal/platform/errors"
)

type FileActivePracticeStore struct {
	path string
}

func NewFileActivePracticeStore(path string) practiceout.ActivePracticeStore {
	return &FileActivePracticeStore{path: path}
}

func (s *FileActivePracticeStore) SaveActive(_ context.Context, practice domain.Practice) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active practice dir: %w", err)
	}
	payload, err := json.MarshalIndent(practice, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active practice: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write active practice: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace active practice: %w", err)
	}
	return nil
}

func (s *FileActivePracticeStore) LoadActive(_ context.Context) (domain.Practice, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Practice{}, apperrors.ErrNoActivePractice
		}
		return domain.Practice{}, fmt.Errorf("read active practice: %w", err)
	}
	practice := domain.Practice{}
	if err := json.Unmarshal(payload, &practice); err != nil {
		return domain.Practice{}, fmt.Errorf("decode active practice: %w", err)
	}
	if practice.ID == "" {
		return domain.Practice{}, apperrors.ErrNoActivePractice
	}
	return practice, nil
}

func (s *FileActivePracticeStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active practice: %w", err)
	}
	return nil
}

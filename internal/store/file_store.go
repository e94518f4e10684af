package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	model "task-manager.com/task-manager/internal/models"
)

// FileStore keeps the whole snapshot in a single pretty-printed JSON file.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

func NewFileStore(path string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: path, logger: logger}, nil
}

func (s *FileStore) Path() string {
	return s.path
}

// Load reads the snapshot from disk. A missing or unreadable file yields
// the default dataset instead of an error.
func (s *FileStore) Load(ctx context.Context) (*model.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().
				Err(err).
				Str("path", s.path).
				Msg("failed to read data file, using defaults")
		}
		return DefaultData(time.Now()), nil
	}

	var data model.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn().
			Err(err).
			Str("path", s.path).
			Msg("failed to decode data file, using defaults")
		return DefaultData(time.Now()), nil
	}

	if data.Tasks == nil {
		data.Tasks = []*model.Task{}
	}
	if data.Employees == nil {
		data.Employees = []*model.Employee{}
	}

	return &data, nil
}

func (s *FileStore) Save(ctx context.Context, data *model.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	// Write through a temp file so a failed save never truncates the
	// previous snapshot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

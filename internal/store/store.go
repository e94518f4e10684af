package store

import (
	"context"

	model "task-manager.com/task-manager/internal/models"
)

// Store persists the application snapshot. Load never fails the session:
// drivers fall back to the built-in default dataset when no usable store
// exists. Save failures are reported to the caller, which treats them as
// non-fatal.
type Store interface {
	Load(ctx context.Context) (*model.AppData, error)
	Save(ctx context.Context, data *model.AppData) error
	Path() string
}

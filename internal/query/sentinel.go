package query

import (
	"time"

	model "task-manager.com/task-manager/internal/models"
)

var (
	minDate = time.Time{}
	maxDate = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

func dueOr(t *model.Task, fallback time.Time) time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return fallback
}

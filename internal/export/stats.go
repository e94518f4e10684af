package export

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

type reportStats struct {
	Total      int
	New        int
	InProgress int
	Completed  int
	Overdue    int
}

func buildStats(tasks []*model.Task, now time.Time) reportStats {
	var stats reportStats
	stats.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case constants.StatusNew:
			stats.New++
		case constants.StatusInProgress:
			stats.InProgress++
		case constants.StatusCompleted:
			stats.Completed++
		}
		if isOverdue(t, now) {
			stats.Overdue++
		}
	}
	return stats
}

// isOverdue flags tasks whose due date has passed and that are still
// open. Comparison is date-only.
func isOverdue(t *model.Task, now time.Time) bool {
	if t.DueDate == nil || t.Status.Terminal() {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today)
}

func formatDue(t *model.Task) string {
	if t.DueDate == nil {
		return "-"
	}
	return t.DueDate.Format("02.01.2006")
}

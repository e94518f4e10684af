package model

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
)

// Task ids are assigned by the manager from a monotonically increasing
// counter and are never reused within a session.
type Task struct {
	ID          int                    `gorm:"primaryKey" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description"`
	CreatedDate time.Time              `json:"createdDate"`
	DueDate     *time.Time             `json:"dueDate,omitempty"`
	Priority    constants.TaskPriority `gorm:"type:varchar(20);not null" json:"priority"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null" json:"status"`
	AssignedTo  string                 `json:"assignedTo"`
}

// Clone returns a deep copy so callers outside the manager cannot alias
// the authoritative record.
func (t *Task) Clone() *Task {
	c := *t
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	return &c
}

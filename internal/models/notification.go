package model

import "task-manager.com/task-manager/internal/constants"

// Notification is a derived due-date alert. It is rebuilt from scratch on
// every mutation and never persisted.
type Notification struct {
	Task     *Task                      `json:"task"`
	Type     constants.NotificationType `json:"type"`
	Message  string                     `json:"message"`
	DaysInfo int                        `json:"daysInfo"`
}

package constants

// TaskStatus is the lifecycle state of a task. The editor may set any
// status directly; transitions are not validated.
type TaskStatus string

const (
	StatusNew        TaskStatus = "new"
	StatusInProgress TaskStatus = "in_progress"
	StatusOnHold     TaskStatus = "on_hold"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

var statusRank = map[TaskStatus]int{
	StatusNew:        0,
	StatusInProgress: 1,
	StatusOnHold:     2,
	StatusCompleted:  3,
	StatusCancelled:  4,
}

// Rank returns the ordinal position used by status sorting.
// Unknown values sort after all known ones.
func (s TaskStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return len(statusRank)
}

func (s TaskStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether the status excludes a task from due-date alerts.
func (s TaskStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

var priorityRank = map[TaskPriority]int{
	PriorityLow:      0,
	PriorityMedium:   1,
	PriorityHigh:     2,
	PriorityCritical: 3,
}

func (p TaskPriority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

func (p TaskPriority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// SortOption selects the single sort key applied to the filtered view.
type SortOption string

const (
	SortDueDateAsc      SortOption = "due_date_asc"
	SortDueDateDesc     SortOption = "due_date_desc"
	SortPriorityDesc    SortOption = "priority_desc"
	SortPriorityAsc     SortOption = "priority_asc"
	SortStatusAsc       SortOption = "status_asc"
	SortCreatedDateDesc SortOption = "created_date_desc"
	SortTitleAsc        SortOption = "title_asc"
)

func (o SortOption) Valid() bool {
	switch o {
	case SortDueDateAsc, SortDueDateDesc, SortPriorityDesc, SortPriorityAsc,
		SortStatusAsc, SortCreatedDateDesc, SortTitleAsc:
		return true
	}
	return false
}

// NotificationType orders alert groups: overdue first, then due today,
// then due soon.
type NotificationType string

const (
	NotificationOverdue  NotificationType = "overdue"
	NotificationDueToday NotificationType = "due_today"
	NotificationDueSoon  NotificationType = "due_soon"
)

var notificationRank = map[NotificationType]int{
	NotificationOverdue:  0,
	NotificationDueToday: 1,
	NotificationDueSoon:  2,
}

func (t NotificationType) Rank() int {
	if r, ok := notificationRank[t]; ok {
		return r
	}
	return len(notificationRank)
}

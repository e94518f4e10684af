package export

import "task-manager.com/task-manager/internal/constants"

// Display labels match the report language of the rest of the data.

func priorityLabel(p constants.TaskPriority) string {
	switch p {
	case constants.PriorityLow:
		return "Низкий"
	case constants.PriorityMedium:
		return "Средний"
	case constants.PriorityHigh:
		return "Высокий"
	case constants.PriorityCritical:
		return "Критический"
	}
	return "Неизвестно"
}

func statusLabel(s constants.TaskStatus) string {
	switch s {
	case constants.StatusNew:
		return "Новая"
	case constants.StatusInProgress:
		return "В работе"
	case constants.StatusOnHold:
		return "Приостановлена"
	case constants.StatusCompleted:
		return "Завершена"
	case constants.StatusCancelled:
		return "Отменена"
	}
	return "Неизвестно"
}

package notify

import (
	"fmt"
	"sort"
	"time"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

// DueSoonWindow is the number of days ahead (exclusive of today) that
// still produces a "due soon" alert.
const DueSoonWindow = 3

// Derive scans the full task collection and produces due-date alerts for
// tasks that are not completed or cancelled. Day arithmetic is date-only:
// the time of day on both sides is ignored.
//
// The result is ordered overdue first, then due today, then due soon;
// within a group the smallest day offset comes first, so the most overdue
// task leads the list.
func Derive(tasks []*model.Task, now time.Time) []model.Notification {
	today := dateOf(now)

	var notifications []model.Notification
	for _, t := range tasks {
		if t.Status.Terminal() {
			continue
		}
		if t.DueDate == nil {
			continue
		}

		days := daysBetween(today, dateOf(*t.DueDate))

		switch {
		case days < 0:
			notifications = append(notifications, model.Notification{
				Task:     t,
				Type:     constants.NotificationOverdue,
				Message:  fmt.Sprintf("Просрочена на %d дн.", -days),
				DaysInfo: days,
			})
		case days == 0:
			notifications = append(notifications, model.Notification{
				Task:     t,
				Type:     constants.NotificationDueToday,
				Message:  "Срок сегодня!",
				DaysInfo: 0,
			})
		case days <= DueSoonWindow:
			notifications = append(notifications, model.Notification{
				Task:     t,
				Type:     constants.NotificationDueSoon,
				Message:  fmt.Sprintf("Осталось %d дн.", days),
				DaysInfo: days,
			})
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		if notifications[i].Type.Rank() != notifications[j].Type.Rank() {
			return notifications[i].Type.Rank() < notifications[j].Type.Rank()
		}
		return notifications[i].DaysInfo < notifications[j].DaysInfo
	})

	return notifications
}

// OverdueCount counts the overdue alerts in a derived list.
func OverdueCount(notifications []model.Notification) int {
	count := 0
	for _, n := range notifications {
		if n.Type == constants.NotificationOverdue {
			count++
		}
	}
	return count
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

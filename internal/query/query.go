package query

import (
	"sort"
	"strings"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

// Criteria is the combination of search text, filters, and sort option
// driving view derivation. All filters are optional and combine with
// logical AND; unset filters match everything.
type Criteria struct {
	SearchText string                  `json:"searchText"`
	Status     *constants.TaskStatus   `json:"status,omitempty"`
	Priority   *constants.TaskPriority `json:"priority,omitempty"`
	Employee   string                  `json:"employee"`
	Sort       constants.SortOption    `json:"sort"`
}

// DefaultCriteria matches every task and sorts by due date ascending.
func DefaultCriteria() Criteria {
	return Criteria{Sort: constants.SortDueDateAsc}
}

// Stats are aggregate counts. All but Filtered are computed over the
// unfiltered collection and do not depend on the active criteria.
type Stats struct {
	Total      int `json:"total"`
	Filtered   int `json:"filtered"`
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Apply filters and sorts the collection according to the criteria and
// returns the resulting view together with aggregate counts. The input
// slice is never modified.
func Apply(tasks []*model.Task, c Criteria) ([]*model.Task, Stats) {
	view := make([]*model.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, c) {
			view = append(view, t)
		}
	}

	sortView(view, c.Sort)

	stats := Stats{
		Total:    len(tasks),
		Filtered: len(view),
	}
	for _, t := range tasks {
		switch t.Status {
		case constants.StatusNew:
			stats.New++
		case constants.StatusInProgress:
			stats.InProgress++
		case constants.StatusCompleted:
			stats.Completed++
		}
	}

	return view, stats
}

func matches(t *model.Task, c Criteria) bool {
	if s := strings.TrimSpace(c.SearchText); s != "" {
		search := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) &&
			!strings.Contains(strings.ToLower(t.AssignedTo), search) {
			return false
		}
	}
	if c.Status != nil && t.Status != *c.Status {
		return false
	}
	if c.Priority != nil && t.Priority != *c.Priority {
		return false
	}
	if c.Employee != "" && t.AssignedTo != c.Employee {
		return false
	}
	return true
}

// sortView orders the view by the single chosen key. The sort is stable:
// tasks with equal keys keep their relative order from the input.
func sortView(view []*model.Task, opt constants.SortOption) {
	var less func(a, b *model.Task) bool

	switch opt {
	case constants.SortDueDateDesc:
		// Tasks without a due date sort as the minimum instant, i.e. last.
		less = func(a, b *model.Task) bool {
			return dueOr(b, minDate).Before(dueOr(a, minDate))
		}
	case constants.SortPriorityDesc:
		less = func(a, b *model.Task) bool { return a.Priority.Rank() > b.Priority.Rank() }
	case constants.SortPriorityAsc:
		less = func(a, b *model.Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case constants.SortStatusAsc:
		less = func(a, b *model.Task) bool { return a.Status.Rank() < b.Status.Rank() }
	case constants.SortCreatedDateDesc:
		less = func(a, b *model.Task) bool { return b.CreatedDate.Before(a.CreatedDate) }
	case constants.SortTitleAsc:
		less = func(a, b *model.Task) bool { return a.Title < b.Title }
	default:
		// SortDueDateAsc; tasks without a due date sort as the maximum
		// instant, i.e. last.
		less = func(a, b *model.Task) bool {
			return dueOr(a, maxDate).Before(dueOr(b, maxDate))
		}
	}

	sort.SliceStable(view, func(i, j int) bool { return less(view[i], view[j]) })
}

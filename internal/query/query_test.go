package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

func datePtr(t time.Time) *time.Time { return &t }

func fixtureTasks(now time.Time) []*model.Task {
	return []*model.Task{
		{
			ID:          1,
			Title:       "Подготовить отчёт",
			Description: "Квартальный отчёт",
			CreatedDate: now.AddDate(0, 0, -5),
			DueDate:     datePtr(now.AddDate(0, 0, 2)),
			Priority:    constants.PriorityHigh,
			Status:      constants.StatusInProgress,
			AssignedTo:  "Иванов Иван Иванович",
		},
		{
			ID:          2,
			Title:       "Провести совещание",
			Description: "Еженедельное совещание",
			CreatedDate: now.AddDate(0, 0, -2),
			DueDate:     datePtr(now.AddDate(0, 0, -1)),
			Priority:    constants.PriorityMedium,
			Status:      constants.StatusNew,
			AssignedTo:  "Петров Пётр Петрович",
		},
		{
			ID:          3,
			Title:       "Обновить документацию",
			Description: "Исправить баг в примерах",
			CreatedDate: now.AddDate(0, 0, -10),
			DueDate:     nil,
			Priority:    constants.PriorityLow,
			Status:      constants.StatusCompleted,
			AssignedTo:  "Сидоров Сергей Сергеевич",
		},
		{
			ID:          4,
			Title:       "Code review",
			Description: "",
			CreatedDate: now.AddDate(0, 0, -1),
			DueDate:     datePtr(now.AddDate(0, 0, 5)),
			Priority:    constants.PriorityCritical,
			Status:      constants.StatusNew,
			AssignedTo:  "Иванов Иван Иванович",
		},
	}
}

func ids(tasks []*model.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApplyNoCriteriaDueDateAsc(t *testing.T) {
	now := time.Now()
	view, stats := Apply(fixtureTasks(now), DefaultCriteria())

	// Task 3 has no due date and must come last.
	assert.Equal(t, []int{2, 1, 4, 3}, ids(view))
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 4, stats.Filtered)
}

func TestApplyDueDateDescNilLast(t *testing.T) {
	now := time.Now()
	view, _ := Apply(fixtureTasks(now), Criteria{Sort: constants.SortDueDateDesc})

	assert.Equal(t, []int{4, 1, 2, 3}, ids(view))
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)

	// "баг" appears only in task 3's description.
	view, _ := Apply(tasks, Criteria{SearchText: "баг", Sort: constants.SortDueDateAsc})
	require.Len(t, view, 1)
	assert.Equal(t, 3, view[0].ID)

	// Assignee matches, case-insensitive.
	view, _ = Apply(tasks, Criteria{SearchText: "иванов и", Sort: constants.SortDueDateAsc})
	assert.Equal(t, []int{1, 4}, ids(view))

	// Latin search text is folded too.
	view, _ = Apply(tasks, Criteria{SearchText: "CODE", Sort: constants.SortDueDateAsc})
	require.Len(t, view, 1)
	assert.Equal(t, 4, view[0].ID)
}

func TestApplyFiltersCombineWithAnd(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)

	status := constants.StatusNew
	priority := constants.PriorityCritical

	view, _ := Apply(tasks, Criteria{
		Status:   &status,
		Priority: &priority,
		Sort:     constants.SortDueDateAsc,
	})
	require.Len(t, view, 1)
	assert.Equal(t, 4, view[0].ID)

	view, _ = Apply(tasks, Criteria{
		Status:   &status,
		Employee: "Петров Пётр Петрович",
		Sort:     constants.SortDueDateAsc,
	})
	require.Len(t, view, 1)
	assert.Equal(t, 2, view[0].ID)
}

func TestApplyEveryResultSatisfiesPredicates(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)
	status := constants.StatusNew

	view, _ := Apply(tasks, Criteria{
		Status:   &status,
		Employee: "Иванов Иван Иванович",
		Sort:     constants.SortTitleAsc,
	})
	for _, task := range view {
		assert.Equal(t, constants.StatusNew, task.Status)
		assert.Equal(t, "Иванов Иван Иванович", task.AssignedTo)
	}
}

func TestApplyPrioritySort(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)

	view, _ := Apply(tasks, Criteria{Sort: constants.SortPriorityDesc})
	assert.Equal(t, []int{4, 1, 2, 3}, ids(view))

	view, _ = Apply(tasks, Criteria{Sort: constants.SortPriorityAsc})
	assert.Equal(t, []int{3, 2, 1, 4}, ids(view))
}

func TestApplyStatusSortOrdinal(t *testing.T) {
	now := time.Now()
	view, _ := Apply(fixtureTasks(now), Criteria{Sort: constants.SortStatusAsc})

	// New < InProgress < Completed; equal keys keep input order (2 before 4).
	assert.Equal(t, []int{2, 4, 1, 3}, ids(view))
}

func TestApplyCreatedDateDesc(t *testing.T) {
	now := time.Now()
	view, _ := Apply(fixtureTasks(now), Criteria{Sort: constants.SortCreatedDateDesc})

	assert.Equal(t, []int{4, 2, 1, 3}, ids(view))
}

func TestApplySortIsStable(t *testing.T) {
	now := time.Now()
	due := now.AddDate(0, 0, 1)

	tasks := []*model.Task{
		{ID: 10, Title: "a", DueDate: datePtr(due), Priority: constants.PriorityMedium, Status: constants.StatusNew},
		{ID: 11, Title: "b", DueDate: datePtr(due), Priority: constants.PriorityMedium, Status: constants.StatusNew},
		{ID: 12, Title: "c", DueDate: datePtr(due), Priority: constants.PriorityMedium, Status: constants.StatusNew},
	}

	for _, sort := range []constants.SortOption{
		constants.SortDueDateAsc,
		constants.SortDueDateDesc,
		constants.SortPriorityAsc,
		constants.SortStatusAsc,
	} {
		view, _ := Apply(tasks, Criteria{Sort: sort})
		assert.Equal(t, []int{10, 11, 12}, ids(view), "sort %s must preserve input order on ties", sort)
	}
}

func TestApplyStatsIgnoreFilters(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)
	status := constants.StatusCompleted

	_, unfiltered := Apply(tasks, DefaultCriteria())
	view, filtered := Apply(tasks, Criteria{Status: &status, Sort: constants.SortDueDateAsc})

	assert.Equal(t, unfiltered.Total, filtered.Total)
	assert.Equal(t, unfiltered.New, filtered.New)
	assert.Equal(t, unfiltered.InProgress, filtered.InProgress)
	assert.Equal(t, unfiltered.Completed, filtered.Completed)
	assert.Equal(t, len(view), filtered.Filtered)

	assert.Equal(t, 2, unfiltered.New)
	assert.Equal(t, 1, unfiltered.InProgress)
	assert.Equal(t, 1, unfiltered.Completed)
}

func TestApplyIsIdempotent(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)
	c := Criteria{SearchText: "о", Sort: constants.SortTitleAsc}

	first, firstStats := Apply(tasks, c)
	second, secondStats := Apply(tasks, c)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, firstStats, secondStats)
}

func TestApplyEmptyResultIsNotAnError(t *testing.T) {
	now := time.Now()
	view, stats := Apply(fixtureTasks(now), Criteria{SearchText: "нет такого", Sort: constants.SortDueDateAsc})

	assert.Empty(t, view)
	assert.Equal(t, 0, stats.Filtered)
	assert.Equal(t, 4, stats.Total)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	now := time.Now()
	tasks := fixtureTasks(now)
	before := ids(tasks)

	Apply(tasks, Criteria{Sort: constants.SortTitleAsc})

	assert.Equal(t, before, ids(tasks))
}

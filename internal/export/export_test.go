package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

func sampleTasks(now time.Time) []*model.Task {
	overdue := now.AddDate(0, 0, -2)
	upcoming := now.AddDate(0, 0, 3)
	return []*model.Task{
		{
			ID:          1,
			Title:       "Подготовить отчёт",
			Description: "Квартальный отчёт",
			CreatedDate: now.AddDate(0, 0, -5),
			DueDate:     &overdue,
			Priority:    constants.PriorityHigh,
			Status:      constants.StatusInProgress,
			AssignedTo:  "Иванов Иван Иванович",
		},
		{
			ID:          2,
			Title:       "Провести совещание",
			CreatedDate: now.AddDate(0, 0, -1),
			DueDate:     &upcoming,
			Priority:    constants.PriorityMedium,
			Status:      constants.StatusNew,
			AssignedTo:  "Петров Пётр Петрович",
		},
		{
			ID:          3,
			Title:       "Без срока",
			CreatedDate: now,
			Priority:    constants.PriorityLow,
			Status:      constants.StatusCompleted,
		},
	}
}

func TestWriteExcel(t *testing.T) {
	now := time.Now()
	path := filepath.Join(t.TempDir(), "tasks.xlsx")

	require.NoError(t, writeExcel(sampleTasks(now), path, now))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(tasksSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	title, err := f.GetCellValue(tasksSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Подготовить отчёт", title)

	noDue, err := f.GetCellValue(tasksSheet, "H4")
	require.NoError(t, err)
	assert.Equal(t, "-", noDue)

	total, err := f.GetCellValue(statsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	overdue, err := f.GetCellValue(statsSheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "1", overdue)
}

func TestWriteExcelEmptyView(t *testing.T) {
	now := time.Now()
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	require.NoError(t, writeExcel(nil, path, now))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue(statsSheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "0", total)
}

func TestWritePDF(t *testing.T) {
	now := time.Now()
	path := filepath.Join(t.TempDir(), "tasks.pdf")

	require.NoError(t, writePDF(sampleTasks(now), path, now))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)

	yesterday := now.AddDate(0, 0, -1)
	todayMorning := time.Date(2025, time.March, 10, 1, 0, 0, 0, time.Local)

	assert.True(t, isOverdue(&model.Task{DueDate: &yesterday, Status: constants.StatusNew}, now))
	assert.False(t, isOverdue(&model.Task{DueDate: &todayMorning, Status: constants.StatusNew}, now))
	assert.False(t, isOverdue(&model.Task{DueDate: &yesterday, Status: constants.StatusCompleted}, now))
	assert.False(t, isOverdue(&model.Task{Status: constants.StatusNew}, now))
}

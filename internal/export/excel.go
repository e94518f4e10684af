package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

const (
	tasksSheet = "Задачи"
	statsSheet = "Статистика"
)

var priorityFill = map[constants.TaskPriority]string{
	constants.PriorityLow:      "C8E6C9",
	constants.PriorityMedium:   "FFE0B2",
	constants.PriorityHigh:     "FFCDD2",
	constants.PriorityCritical: "E1BEE7",
}

var statusFill = map[constants.TaskStatus]string{
	constants.StatusNew:        "BBDEFB",
	constants.StatusInProgress: "FFE0B2",
	constants.StatusOnHold:     "E0E0E0",
	constants.StatusCompleted:  "C8E6C9",
	constants.StatusCancelled:  "FFCDD2",
}

// writeExcel renders the view to an xlsx workbook: one sheet with the
// task table, one with aggregate statistics.
func writeExcel(tasks []*model.Task, path string, now time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", tasksSheet); err != nil {
		return err
	}

	headers := []string{"ID", "Название", "Описание", "Исполнитель", "Приоритет", "Статус", "Дата создания", "Срок выполнения"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(tasksSheet, cell, h); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1976D2"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(tasksSheet, "A1", "H1", headerStyle); err != nil {
		return err
	}

	overdueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FF0000"},
	})
	if err != nil {
		return err
	}

	for i, t := range tasks {
		row := i + 2
		values := []interface{}{
			t.ID,
			t.Title,
			t.Description,
			t.AssignedTo,
			priorityLabel(t.Priority),
			statusLabel(t.Status),
			t.CreatedDate.Format("02.01.2006 15:04"),
			formatDue(t),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(tasksSheet, cell, v); err != nil {
				return err
			}
		}

		if err := fillCell(f, fmt.Sprintf("E%d", row), priorityFill[t.Priority]); err != nil {
			return err
		}
		if err := fillCell(f, fmt.Sprintf("F%d", row), statusFill[t.Status]); err != nil {
			return err
		}
		if isOverdue(t, now) {
			cell := fmt.Sprintf("H%d", row)
			if err := f.SetCellStyle(tasksSheet, cell, cell, overdueStyle); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(tasksSheet, "B", "D", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(tasksSheet, "E", "H", 18); err != nil {
		return err
	}

	if err := writeStatsSheet(f, tasks, now); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func fillCell(f *excelize.File, cell, color string) error {
	if color == "" {
		return nil
	}
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return err
	}
	return f.SetCellStyle(tasksSheet, cell, cell, style)
}

func writeStatsSheet(f *excelize.File, tasks []*model.Task, now time.Time) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return err
	}

	stats := buildStats(tasks, now)

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellValue(statsSheet, "A1", "Статистика задач"); err != nil {
		return err
	}
	if err := f.SetCellStyle(statsSheet, "A1", "A1", titleStyle); err != nil {
		return err
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Всего задач:", stats.Total},
		{"Новых:", stats.New},
		{"В работе:", stats.InProgress},
		{"Завершено:", stats.Completed},
		{"Просрочено:", stats.Overdue},
	}
	for i, r := range rows {
		row := i + 3
		if err := f.SetCellValue(statsSheet, fmt.Sprintf("A%d", row), r.label); err != nil {
			return err
		}
		if err := f.SetCellValue(statsSheet, fmt.Sprintf("B%d", row), r.value); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(statsSheet, "A9", "Дата формирования:"); err != nil {
		return err
	}
	if err := f.SetCellValue(statsSheet, "B9", now.Format("02.01.2006 15:04")); err != nil {
		return err
	}

	return f.SetColWidth(statsSheet, "A", "B", 22)
}

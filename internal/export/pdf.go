package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	model "task-manager.com/task-manager/internal/models"
)

// writePDF renders the view to a landscape A4 report: title block,
// statistics, then the task table. Text goes through a cp1251 translator
// so the Cyrillic labels survive the core fonts.
func writePDF(tasks []*model.Task, path string, now time.Time) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 8,
			tr(fmt.Sprintf("Страница %d из {nb}", pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})
	pdf.AliasNbPages("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(25, 118, 210)
	pdf.CellFormat(0, 10, "TaskManager", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 7, tr("Отчёт по задачам"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Дата формирования: "+now.Format("02.01.2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	writeStatsBlock(pdf, tr, tasks, now)
	pdf.Ln(4)
	writeTaskTable(pdf, tr, tasks, now)

	return pdf.OutputFileAndClose(path)
}

func writeStatsBlock(pdf *fpdf.Fpdf, tr func(string) string, tasks []*model.Task, now time.Time) {
	stats := buildStats(tasks, now)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr("Статистика"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	lines := []string{
		fmt.Sprintf("Всего: %d", stats.Total),
		fmt.Sprintf("Новых: %d", stats.New),
		fmt.Sprintf("В работе: %d", stats.InProgress),
		fmt.Sprintf("Завершено: %d", stats.Completed),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	if stats.Overdue > 0 {
		pdf.SetTextColor(211, 47, 47)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Просрочено: %d", stats.Overdue)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
}

func writeTaskTable(pdf *fpdf.Fpdf, tr func(string) string, tasks []*model.Task, now time.Time) {
	widths := []float64{12, 55, 75, 45, 25, 30, 25}
	headers := []string{"ID", "Название", "Описание", "Исполнитель", "Приоритет", "Статус", "Срок"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(25, 118, 210)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, t := range tasks {
		overdue := isOverdue(t, now)
		if overdue {
			pdf.SetFillColor(255, 205, 210)
			pdf.SetTextColor(183, 28, 28)
		} else {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetTextColor(0, 0, 0)
		}

		cells := []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Description,
			t.AssignedTo,
			priorityLabel(t.Priority),
			statusLabel(t.Status),
			formatDue(t),
		}
		for i, c := range cells {
			align := "L"
			if i == 0 || i >= 4 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, overdue, 0, "")
		}
		pdf.Ln(-1)
	}
}

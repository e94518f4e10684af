package export

import (
	"time"

	model "task-manager.com/task-manager/internal/models"
)

// Writer renders task views to spreadsheet and document files.
type Writer struct {
	now func() time.Time
}

func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

func (w *Writer) WriteExcel(tasks []*model.Task, path string) error {
	return writeExcel(tasks, path, w.now())
}

func (w *Writer) WritePDF(tasks []*model.Task, path string) error {
	return writePDF(tasks, path, w.now())
}

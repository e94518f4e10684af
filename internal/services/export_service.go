package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	errs "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
)

type ExportFormat string

const (
	ExportExcel ExportFormat = "excel"
	ExportPDF   ExportFormat = "pdf"
)

type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// ExportJob tracks one fire-and-forget export of the current view.
type ExportJob struct {
	ID        string       `json:"id"`
	Format    ExportFormat `json:"format"`
	Path      string       `json:"path"`
	Status    JobStatus    `json:"status"`
	Error     string       `json:"error,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ExportWriter renders a task view to a file on disk.
type ExportWriter interface {
	WriteExcel(tasks []*model.Task, path string) error
	WritePDF(tasks []*model.Task, path string) error
}

type exportRequest struct {
	jobID  string
	format ExportFormat
	tasks  []*model.Task
	path   string
}

// ExportService runs exports on a small worker pool. Jobs never touch
// the task or employee collections: each job carries its own snapshot of
// the view taken at submission time.
type ExportService struct {
	queue  chan exportRequest
	wg     sync.WaitGroup
	writer ExportWriter
	logger zerolog.Logger

	mu   sync.Mutex
	jobs map[string]*ExportJob
}

func NewExportService(writer ExportWriter, workers, queueSize int, logger zerolog.Logger) *ExportService {
	s := &ExportService{
		queue:  make(chan exportRequest, queueSize),
		writer: writer,
		logger: logger,
		jobs:   make(map[string]*ExportJob),
	}

	for i := 1; i <= workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	return s
}

// Submit enqueues an export job and returns it immediately. The caller
// polls Job for the outcome.
func (s *ExportService) Submit(format ExportFormat, tasks []*model.Task, path string) (ExportJob, error) {
	job := &ExportJob{
		ID:        uuid.NewString(),
		Format:    format,
		Path:      path,
		Status:    JobPending,
		CreatedAt: time.Now(),
	}

	req := exportRequest{jobID: job.ID, format: format, tasks: tasks, path: path}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	select {
	case s.queue <- req:
		return *job, nil
	default:
		s.mu.Lock()
		delete(s.jobs, job.ID)
		s.mu.Unlock()
		return ExportJob{}, errs.ErrExportQueueFull
	}
}

// Job returns the current state of a submitted job.
func (s *ExportService) Job(id string) (ExportJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return ExportJob{}, false
	}
	return *job, true
}

func (s *ExportService) worker(workerID int) {
	defer s.wg.Done()

	for req := range s.queue {
		s.handle(workerID, req)
	}
}

func (s *ExportService) handle(workerID int, req exportRequest) {
	s.setStatus(req.jobID, JobRunning, "")

	var err error
	switch req.format {
	case ExportPDF:
		err = s.writer.WritePDF(req.tasks, req.path)
	default:
		err = s.writer.WriteExcel(req.tasks, req.path)
	}

	if err != nil {
		s.logger.Error().
			Err(err).
			Int("worker", workerID).
			Str("job", req.jobID).
			Str("path", req.path).
			Msg("export failed")
		s.setStatus(req.jobID, JobFailed, err.Error())
		return
	}

	s.logger.Info().
		Int("worker", workerID).
		Str("job", req.jobID).
		Str("path", req.path).
		Msg("export finished")
	s.setStatus(req.jobID, JobDone, "")
}

func (s *ExportService) setStatus(jobID string, status JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobs[jobID]; ok {
		job.Status = status
		job.Error = errMsg
	}
}

// Shutdown drains the queue and waits for in-flight jobs, bounded by the
// context deadline.
func (s *ExportService) Shutdown(ctx context.Context) {
	close(s.queue)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info().Msg("export pool shut down cleanly")
	case <-ctx.Done():
		s.logger.Warn().Msg("export pool shutdown timed out")
	}
}

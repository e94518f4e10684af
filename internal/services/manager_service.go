package services

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"task-manager.com/task-manager/internal/constants"
	errs "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/internal/models"
	"task-manager.com/task-manager/internal/notify"
	"task-manager.com/task-manager/internal/query"
	"task-manager.com/task-manager/internal/store"
)

// ManagerService is the single authoritative owner of the task and
// employee collections. Every mutation goes through it: it updates the
// collections, re-derives the view and the notifications, and persists
// the snapshot best-effort. A mutex serializes mutations so a second
// add/edit/delete cannot race an in-flight save.
type ManagerService struct {
	mu     sync.Mutex
	logger zerolog.Logger
	store  store.Store
	now    func() time.Time

	tasks          []*model.Task
	employees      []*model.Employee
	nextTaskID     int
	nextEmployeeID int

	criteria        query.Criteria
	view            []*model.Task
	stats           query.Stats
	notifications   []model.Notification
	overdueCount    int
	employeeFilters []string
	selectedID      int
}

// Snapshot is the derived state handed to the presentation layer. Tasks
// are deep copies: the caller can hold them across later mutations.
type Snapshot struct {
	Tasks           []*model.Task        `json:"tasks"`
	Stats           query.Stats          `json:"stats"`
	Criteria        query.Criteria       `json:"criteria"`
	Notifications   []model.Notification `json:"notifications"`
	OverdueCount    int                  `json:"overdueCount"`
	EmployeeFilters []string             `json:"employeeFilters"`
	SelectedID      int                  `json:"selectedId"`
}

func NewManagerService(st store.Store, logger zerolog.Logger) *ManagerService {
	return &ManagerService{
		logger:   logger,
		store:    st,
		now:      time.Now,
		criteria: query.DefaultCriteria(),
	}
}

// Load replaces the in-memory state with the persisted snapshot and
// derives the initial view and notifications.
func (s *ManagerService) Load(ctx context.Context) error {
	data, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = data.Tasks
	s.employees = data.Employees
	s.nextTaskID = data.NextTaskID
	s.nextEmployeeID = data.NextEmployeeID

	s.refresh()

	s.logger.Info().
		Int("tasks", len(s.tasks)).
		Int("employees", len(s.employees)).
		Str("path", s.store.Path()).
		Msg("loaded data")

	return nil
}

// AddTask assigns a fresh id, appends the task, re-derives everything,
// persists, and reports the new task as the current selection.
func (s *ManagerService) AddTask(ctx context.Context, draft model.Task) (*model.Task, error) {
	draft.Title = strings.TrimSpace(draft.Title)
	if draft.Title == "" {
		return nil, errs.ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &draft
	task.ID = s.nextTaskID
	s.nextTaskID++

	if task.CreatedDate.IsZero() {
		task.CreatedDate = s.now()
	}
	if task.Priority == "" {
		task.Priority = constants.PriorityMedium
	}
	if task.Status == "" {
		task.Status = constants.StatusNew
	}

	s.tasks = append(s.tasks, task)
	s.refresh()
	s.selectedID = task.ID
	s.persist(ctx)

	return task.Clone(), nil
}

// EditTask replaces the task with the given id in place, preserving its
// position and original creation date. An unknown id is a no-op and
// returns nil.
func (s *ManagerService) EditTask(ctx context.Context, id int, replacement model.Task) (*model.Task, error) {
	replacement.Title = strings.TrimSpace(replacement.Title)
	if replacement.Title == "" {
		return nil, errs.ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return nil, nil
	}

	replacement.ID = id
	replacement.CreatedDate = s.tasks[idx].CreatedDate
	if replacement.Priority == "" {
		replacement.Priority = constants.PriorityMedium
	}
	if replacement.Status == "" {
		replacement.Status = constants.StatusNew
	}

	s.tasks[idx] = &replacement
	s.refresh()
	s.selectedID = id
	s.persist(ctx)

	return replacement.Clone(), nil
}

// DeleteTask removes the task with the given id. An unknown id leaves
// the collections and the derived view untouched. After a removal the
// first task of the re-derived view becomes the selection.
func (s *ManagerService) DeleteTask(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.taskIndex(id)
	if idx < 0 {
		return false
	}

	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.refresh()
	if len(s.view) > 0 {
		s.selectedID = s.view[0].ID
	} else {
		s.selectedID = 0
	}
	s.persist(ctx)

	return true
}

// SelectTask marks a task as the current selection. Unknown ids are
// ignored.
func (s *ManagerService) SelectTask(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(id) >= 0 {
		s.selectedID = id
	}
}

// SetCriteria installs new filter/sort/search criteria and re-derives
// the view. Criteria are session state and are not persisted.
func (s *ManagerService) SetCriteria(c query.Criteria) {
	if !c.Sort.Valid() {
		c.Sort = constants.SortDueDateAsc
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = c
	s.refresh()
}

// ClearFilters resets search text, all filters, and the sort option.
func (s *ManagerService) ClearFilters() {
	s.SetCriteria(query.DefaultCriteria())
}

func (s *ManagerService) AddEmployee(ctx context.Context, draft model.Employee) (*model.Employee, error) {
	draft.FullName = strings.TrimSpace(draft.FullName)
	if draft.FullName == "" {
		return nil, errs.ErrFullNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp := &draft
	emp.ID = s.nextEmployeeID
	s.nextEmployeeID++
	trimEmployee(emp)

	s.employees = append(s.employees, emp)
	s.refresh()
	s.persist(ctx)

	return emp.Clone(), nil
}

func (s *ManagerService) EditEmployee(ctx context.Context, id int, replacement model.Employee) (*model.Employee, error) {
	replacement.FullName = strings.TrimSpace(replacement.FullName)
	if replacement.FullName == "" {
		return nil, errs.ErrFullNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return nil, nil
	}

	replacement.ID = id
	trimEmployee(&replacement)
	s.employees[idx] = &replacement
	s.refresh()
	s.persist(ctx)

	return replacement.Clone(), nil
}

func (s *ManagerService) DeleteEmployee(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.employeeIndex(id)
	if idx < 0 {
		return false
	}

	s.employees = append(s.employees[:idx], s.employees[idx+1:]...)
	s.refresh()
	s.persist(ctx)

	return true
}

// Employees returns a copy of the full roster.
func (s *ManagerService) Employees() []*model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		out = append(out, e.Clone())
	}
	return out
}

// ActiveEmployees returns the employees eligible for assignment pickers.
// Inactive employees stay valid as assignees on existing tasks.
func (s *ManagerService) ActiveEmployees() []*model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*model.Employee
	for _, e := range s.employees {
		if e.IsActive {
			out = append(out, e.Clone())
		}
	}
	return out
}

// EmployeeFilters returns the filter option list: a leading empty
// "no filter" sentinel followed by the sorted names of active employees.
func (s *ManagerService) EmployeeFilters() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.employeeFilters))
	copy(out, s.employeeFilters)
	return out
}

// Snapshot returns the current derived state for presentation.
func (s *ManagerService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	clones := make(map[int]*model.Task, len(s.tasks))
	cloneOf := func(t *model.Task) *model.Task {
		if c, ok := clones[t.ID]; ok {
			return c
		}
		c := t.Clone()
		clones[t.ID] = c
		return c
	}

	snap := Snapshot{
		Tasks:           make([]*model.Task, 0, len(s.view)),
		Stats:           s.stats,
		Criteria:        s.criteria,
		Notifications:   make([]model.Notification, 0, len(s.notifications)),
		OverdueCount:    s.overdueCount,
		EmployeeFilters: make([]string, len(s.employeeFilters)),
		SelectedID:      s.selectedID,
	}
	for _, t := range s.view {
		snap.Tasks = append(snap.Tasks, cloneOf(t))
	}
	for _, n := range s.notifications {
		n.Task = cloneOf(n.Task)
		snap.Notifications = append(snap.Notifications, n)
	}
	copy(snap.EmployeeFilters, s.employeeFilters)

	return snap
}

// DataFilePath reports where the snapshot is persisted.
func (s *ManagerService) DataFilePath() string {
	return s.store.Path()
}

// refresh re-derives the view, statistics, notifications, and employee
// filter options from scratch. Callers must hold the mutex.
func (s *ManagerService) refresh() {
	s.view, s.stats = query.Apply(s.tasks, s.criteria)
	s.notifications = notify.Derive(s.tasks, s.now())
	s.overdueCount = notify.OverdueCount(s.notifications)
	s.employeeFilters = buildEmployeeFilters(s.employees)

	if s.selectedID != 0 && !s.viewContains(s.selectedID) {
		if len(s.view) > 0 {
			s.selectedID = s.view[0].ID
		} else {
			s.selectedID = 0
		}
	}
}

// persist saves the snapshot best-effort. A failed save is logged and
// the in-memory state stays authoritative for the rest of the session.
// Callers must hold the mutex.
func (s *ManagerService) persist(ctx context.Context) {
	data := &model.AppData{
		Tasks:          s.tasks,
		Employees:      s.employees,
		NextTaskID:     s.nextTaskID,
		NextEmployeeID: s.nextEmployeeID,
	}

	if err := s.store.Save(ctx, data); err != nil {
		s.logger.Warn().
			Err(err).
			Str("path", s.store.Path()).
			Msg("failed to persist data, continuing with in-memory state")
	}
}

func (s *ManagerService) taskIndex(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *ManagerService) employeeIndex(id int) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *ManagerService) viewContains(id int) bool {
	for _, t := range s.view {
		if t.ID == id {
			return true
		}
	}
	return false
}

func buildEmployeeFilters(employees []*model.Employee) []string {
	names := make([]string, 0, len(employees))
	seen := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		if !e.IsActive {
			continue
		}
		if _, ok := seen[e.FullName]; ok {
			continue
		}
		seen[e.FullName] = struct{}{}
		names = append(names, e.FullName)
	}
	sort.Strings(names)

	// Leading empty entry is the "no filter" option.
	return append([]string{""}, names...)
}

func trimEmployee(e *model.Employee) {
	e.Position = strings.TrimSpace(e.Position)
	e.Department = strings.TrimSpace(e.Department)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
}

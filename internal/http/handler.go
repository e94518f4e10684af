package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	errs "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
)

type Handler struct {
	manager *services.ManagerService
	exports *services.ExportService
}

func NewHandler(manager *services.ManagerService, exports *services.ExportService) *Handler {
	return &Handler{
		manager: manager,
		exports: exports,
	}
}

func httpError(err error) error {
	return echo.NewHTTPError(errs.StatusCode(err), err.Error())
}

// ListTasks returns the current view. Query parameters, when present,
// replace the active criteria before the view is derived.
func (h *Handler) ListTasks(c echo.Context) error {
	if len(c.QueryParams()) > 0 {
		req := dto.CriteriaRequest{
			SearchText: c.QueryParam("search"),
			Status:     c.QueryParam("status"),
			Priority:   c.QueryParam("priority"),
			Employee:   c.QueryParam("assignee"),
			Sort:       c.QueryParam("sort"),
		}
		criteria, err := validators.ParseCriteria(&req)
		if err != nil {
			return httpError(err)
		}
		h.manager.SetCriteria(criteria)
	}

	return c.JSON(http.StatusOK, h.manager.Snapshot())
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.manager.AddTask(c.Request().Context(), req.Task())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask replaces a task wholesale. An unknown id is a no-op: the
// response carries a null task instead of an error.
func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.TaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.manager.EditTask(c.Request().Context(), id, req.Task())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"task": task})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	deleted := h.manager.DeleteTask(c.Request().Context(), id)
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

func (h *Handler) SelectTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return httpError(err)
	}

	h.manager.SelectTask(id)
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) SetCriteria(c echo.Context) error {
	var req dto.CriteriaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	criteria, err := validators.ParseCriteria(&req)
	if err != nil {
		return httpError(err)
	}

	h.manager.SetCriteria(criteria)
	return c.JSON(http.StatusOK, h.manager.Snapshot())
}

func (h *Handler) ClearCriteria(c echo.Context) error {
	h.manager.ClearFilters()
	return c.JSON(http.StatusOK, h.manager.Snapshot())
}

func (h *Handler) ListNotifications(c echo.Context) error {
	snap := h.manager.Snapshot()
	return c.JSON(http.StatusOK, echo.Map{
		"notifications": snap.Notifications,
		"overdueCount":  snap.OverdueCount,
	})
}

func (h *Handler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.Snapshot().Stats)
}

func (h *Handler) ListEmployees(c echo.Context) error {
	if c.QueryParam("active") == "true" {
		return c.JSON(http.StatusOK, h.manager.ActiveEmployees())
	}
	return c.JSON(http.StatusOK, h.manager.Employees())
}

func (h *Handler) EmployeeFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.EmployeeFilters())
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	var req dto.EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateEmployeeRequest(&req); err != nil {
		return httpError(err)
	}

	employee, err := h.manager.AddEmployee(c.Request().Context(), req.Employee())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, employee)
}

func (h *Handler) UpdateEmployee(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateEmployeeRequest(&req); err != nil {
		return httpError(err)
	}

	employee, err := h.manager.EditEmployee(c.Request().Context(), id, req.Employee())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"employee": employee})
}

func (h *Handler) DeleteEmployee(c echo.Context) error {
	id, err := employeeID(c)
	if err != nil {
		return httpError(err)
	}

	deleted := h.manager.DeleteEmployee(c.Request().Context(), id)
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}

// CreateExport snapshots the current view and queues a fire-and-forget
// export job for it.
func (h *Handler) CreateExport(c echo.Context) error {
	var format services.ExportFormat
	switch c.Param("format") {
	case "excel":
		format = services.ExportExcel
	case "pdf":
		format = services.ExportPDF
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "format must be excel or pdf")
	}

	var req dto.ExportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Path == "" {
		return httpError(errs.ErrExportPathRequired)
	}

	job, err := h.exports.Submit(format, h.manager.Snapshot().Tasks, req.Path)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusAccepted, job)
}

func (h *Handler) GetExport(c echo.Context) error {
	job, ok := h.exports.Job(c.Param("id"))
	if !ok {
		return httpError(errs.ErrExportNotFound)
	}
	return c.JSON(http.StatusOK, job)
}

func taskID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errs.ErrTaskIDRequired
	}
	return id, nil
}

func employeeID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errs.ErrEmployeeNotFound
	}
	return id, nil
}

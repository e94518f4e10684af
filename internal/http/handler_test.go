package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager.com/task-manager/internal/export"
	"task-manager.com/task-manager/internal/services"
	"task-manager.com/task-manager/internal/store"
)

func setupServer(t *testing.T) (*echo.Echo, *services.ManagerService) {
	t.Helper()

	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"), zerolog.Nop())
	require.NoError(t, err)

	manager := services.NewManagerService(st, zerolog.Nop())
	require.NoError(t, manager.Load(context.Background()))

	exports := services.NewExportService(export.NewWriter(), 1, 4, zerolog.Nop())
	t.Cleanup(func() { exports.Shutdown(context.Background()) })

	e := echo.New()
	Register(e, NewHandler(manager, exports), 1000)
	return e, manager
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListTasksReturnsDefaultDataset(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 6, snap.Stats.Total)
	assert.Len(t, snap.Tasks, 6)
}

func TestListTasksAppliesQueryCriteria(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks?status=new&sort=title_asc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, 2, snap.Stats.Filtered)
	// Aggregates still cover the whole collection.
	assert.Equal(t, 6, snap.Stats.Total)
}

func TestListTasksRejectsUnknownStatus(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTask(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"Новая задача","priority":"high"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var task struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, 7, task.ID)
	assert.Equal(t, "Новая задача", task.Title)
}

func TestCreateTaskRequiresTitle(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUnknownTaskIsNoOp(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodPut, "/tasks/999", `{"title":"Ghost"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Task *json.RawMessage `json:"task"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Task)
}

func TestDeleteTask(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Deleted bool `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Deleted)

	rec = doJSON(e, http.MethodDelete, "/tasks/1", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Deleted)
}

func TestNotificationsEndpoint(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Notifications []json.RawMessage `json:"notifications"`
		OverdueCount  int               `json:"overdueCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// The default dataset has tasks due today and tomorrow; the only
	// overdue task is already completed.
	assert.NotEmpty(t, body.Notifications)
	assert.Equal(t, 0, body.OverdueCount)
}

func TestEmployeeFiltersEndpoint(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/employees/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var filters []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filters))
	require.Len(t, filters, 8)
	assert.Equal(t, "", filters[0])
}

func TestExportRequiresPath(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodPost, "/exports/excel", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportRoundTrip(t *testing.T) {
	e, _ := setupServer(t)
	out := filepath.Join(t.TempDir(), "tasks.xlsx")

	rec := doJSON(e, http.MethodPost, "/exports/excel", `{"path":"`+out+`"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var job services.ExportJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	require.NotEmpty(t, job.ID)

	status := doJSON(e, http.MethodGet, "/exports/"+job.ID+"/status", "")
	assert.Equal(t, http.StatusOK, status.Code)
}

func TestUnknownExportJob(t *testing.T) {
	e, _ := setupServer(t)

	rec := doJSON(e, http.MethodGet, "/exports/missing/status", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

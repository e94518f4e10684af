package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-manager.com/task-manager/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/select", h.SelectTask)

	e.POST("/criteria", h.SetCriteria)
	e.DELETE("/criteria", h.ClearCriteria)

	e.GET("/notifications", h.ListNotifications)
	e.GET("/stats", h.GetStats)

	e.GET("/employees", h.ListEmployees)
	e.GET("/employees/filters", h.EmployeeFilters)
	e.POST("/employees", h.CreateEmployee)
	e.PUT("/employees/:id", h.UpdateEmployee)
	e.DELETE("/employees/:id", h.DeleteEmployee)

	e.POST("/exports/:format", h.CreateExport)
	e.GET("/exports/:id/status", h.GetExport)
}

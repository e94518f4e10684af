package dto

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

// TaskRequest is the fully-populated record supplied by the client for
// both create and edit. Id and creation date are owned by the manager.
type TaskRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	DueDate     *time.Time             `json:"dueDate"`
	Priority    constants.TaskPriority `json:"priority"`
	Status      constants.TaskStatus   `json:"status"`
	AssignedTo  string                 `json:"assignedTo"`
}

func (r TaskRequest) Task() model.Task {
	return model.Task{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    r.Priority,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
	}
}

type EmployeeRequest struct {
	FullName   string `json:"fullName"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IsActive   bool   `json:"isActive"`
}

func (r EmployeeRequest) Employee() model.Employee {
	return model.Employee{
		FullName:   r.FullName,
		Position:   r.Position,
		Department: r.Department,
		Email:      r.Email,
		Phone:      r.Phone,
		IsActive:   r.IsActive,
	}
}

type ExportRequest struct {
	Path string `json:"path"`
}

type CriteriaRequest struct {
	SearchText string `json:"searchText"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Employee   string `json:"employee"`
	Sort       string `json:"sort"`
}

package validators

import (
	"strings"

	"task-manager.com/task-manager/internal/constants"
	dto "task-manager.com/task-manager/internal/data_models"
	errs "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/query"
)

func ValidateTaskRequest(r *dto.TaskRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return errs.ErrTitleRequired
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return errs.ErrInvalidCriteria
	}
	if r.Status != "" && !r.Status.Valid() {
		return errs.ErrInvalidCriteria
	}
	return nil
}

func ValidateEmployeeRequest(r *dto.EmployeeRequest) error {
	if strings.TrimSpace(r.FullName) == "" {
		return errs.ErrFullNameRequired
	}
	return nil
}

// ParseCriteria converts the raw filter strings into typed criteria.
// Empty fields mean "no filter"; unknown enum values are rejected.
func ParseCriteria(r *dto.CriteriaRequest) (query.Criteria, error) {
	c := query.Criteria{
		SearchText: r.SearchText,
		Employee:   r.Employee,
		Sort:       constants.SortDueDateAsc,
	}

	if r.Status != "" {
		status := constants.TaskStatus(r.Status)
		if !status.Valid() {
			return query.Criteria{}, errs.ErrInvalidCriteria
		}
		c.Status = &status
	}
	if r.Priority != "" {
		priority := constants.TaskPriority(r.Priority)
		if !priority.Valid() {
			return query.Criteria{}, errs.ErrInvalidCriteria
		}
		c.Priority = &priority
	}
	if r.Sort != "" {
		sort := constants.SortOption(r.Sort)
		if !sort.Valid() {
			return query.Criteria{}, errs.ErrInvalidCriteria
		}
		c.Sort = sort
	}

	return c, nil
}

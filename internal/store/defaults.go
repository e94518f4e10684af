package store

import (
	"time"

	"task-manager.com/task-manager/internal/constants"
	model "task-manager.com/task-manager/internal/models"
)

// DefaultData is the dataset a fresh installation starts with. Due dates
// are expressed relative to the load time so the sample alerts stay
// meaningful.
func DefaultData(now time.Time) *model.AppData {
	due := func(days int) *time.Time {
		d := now.AddDate(0, 0, days)
		return &d
	}

	return &model.AppData{
		NextTaskID:     7,
		NextEmployeeID: 8,
		Employees: []*model.Employee{
			{ID: 1, FullName: "Иванов Иван Иванович", Position: "Менеджер проекта", Department: "IT", Email: "ivanov@company.ru", Phone: "+7 (999) 111-11-11", IsActive: true},
			{ID: 2, FullName: "Петров Пётр Петрович", Position: "Разработчик", Department: "IT", Email: "petrov@company.ru", Phone: "+7 (999) 222-22-22", IsActive: true},
			{ID: 3, FullName: "Сидоров Сергей Сергеевич", Position: "Тестировщик", Department: "QA", Email: "sidorov@company.ru", Phone: "+7 (999) 333-33-33", IsActive: true},
			{ID: 4, FullName: "Козлов Константин Константинович", Position: "Разработчик", Department: "IT", Email: "kozlov@company.ru", Phone: "+7 (999) 444-44-44", IsActive: true},
			{ID: 5, FullName: "Новикова Наталья Николаевна", Position: "Аналитик", Department: "Аналитика", Email: "novikova@company.ru", Phone: "+7 (999) 555-55-55", IsActive: true},
			{ID: 6, FullName: "Смирнов Сергей Александрович", Position: "DevOps", Department: "IT", Email: "smirnov@company.ru", Phone: "+7 (999) 666-66-66", IsActive: true},
			{ID: 7, FullName: "Кузнецова Анна Андреевна", Position: "Дизайнер", Department: "Дизайн", Email: "kuznetsova@company.ru", Phone: "+7 (999) 777-77-77", IsActive: true},
		},
		Tasks: []*model.Task{
			{
				ID:          1,
				Title:       "Подготовить отчёт",
				Description: "Подготовить квартальный отчёт по продажам",
				CreatedDate: now.AddDate(0, 0, -5),
				DueDate:     due(2),
				Priority:    constants.PriorityHigh,
				Status:      constants.StatusInProgress,
				AssignedTo:  "Иванов Иван Иванович",
			},
			{
				ID:          2,
				Title:       "Провести совещание",
				Description: "Еженедельное совещание команды разработки",
				CreatedDate: now.AddDate(0, 0, -2),
				DueDate:     due(1),
				Priority:    constants.PriorityMedium,
				Status:      constants.StatusNew,
				AssignedTo:  "Петров Пётр Петрович",
			},
			{
				ID:          3,
				Title:       "Обновить документацию",
				Description: "Обновить техническую документацию проекта",
				CreatedDate: now.AddDate(0, 0, -10),
				DueDate:     due(7),
				Priority:    constants.PriorityLow,
				Status:      constants.StatusNew,
				AssignedTo:  "Сидоров Сергей Сергеевич",
			},
			{
				ID:          4,
				Title:       "Исправить критический баг",
				Description: "Срочно исправить ошибку в модуле авторизации",
				CreatedDate: now,
				DueDate:     due(0),
				Priority:    constants.PriorityCritical,
				Status:      constants.StatusInProgress,
				AssignedTo:  "Козлов Константин Константинович",
			},
			{
				ID:          5,
				Title:       "Тестирование новой версии",
				Description: "Провести полное тестирование версии 2.0",
				CreatedDate: now.AddDate(0, 0, -3),
				DueDate:     due(5),
				Priority:    constants.PriorityHigh,
				Status:      constants.StatusOnHold,
				AssignedTo:  "Новикова Наталья Николаевна",
			},
			{
				ID:          6,
				Title:       "Внедрение CI/CD",
				Description: "Настроить автоматическую сборку и деплой",
				CreatedDate: now.AddDate(0, 0, -7),
				DueDate:     due(-1),
				Priority:    constants.PriorityHigh,
				Status:      constants.StatusCompleted,
				AssignedTo:  "Смирнов Сергей Александрович",
			},
		},
	}
}

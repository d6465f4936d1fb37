package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reminder-app/reminder/broker"
	"reminder-app/reminder/database"
	"reminder-app/reminder/models"
)

const (
	MineCreated  = "created"
	MineAssigned = "assigned"
)

// TaskInput is the raw content of the task form.
type TaskInput struct {
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
	Priority    string `form:"priority"`
	Details     string `form:"details"`
	Status      string `form:"status"`
	AssigneeID  string `form:"assignee_id"`
}

// TaskFilter narrows the task list. Unknown values mean "no filter".
type TaskFilter struct {
	Status  string
	Mine    string
	ActorID uint
}

type TaskServiceInterface interface {
	CreateTask(db *database.Database, actor models.User, input TaskInput) (models.Task, error)
	GetTaskById(db *database.Database, id uint) (models.Task, error)
	UpdateTask(db *database.Database, id uint, actor models.User, input TaskInput) (models.Task, error)
	SetStatus(db *database.Database, id uint, status models.Status, actorID uint) (models.Task, error)
	DeleteTask(db *database.Database, id uint, actorID uint) error
	GetTasks(db *database.Database, filter TaskFilter) ([]models.Task, error)
	GetOpenTasksForAssignee(db *database.Database, assigneeID uint) ([]models.Task, error)
}

type TaskService struct {
	producer broker.Producer
	logger   zerolog.Logger
}

func NewTaskService(producer broker.Producer, logger zerolog.Logger) *TaskService {
	return &TaskService{producer: producer, logger: logger}
}

// taskFields holds validated form input.
type taskFields struct {
	description string
	dueDate     *models.Date
	priority    models.Priority
	details     string
	status      models.Status
	assigneeID  uint
}

// normalize validates input. Description and due date errors reject the
// input; priority, status and assignee fall back to defaults.
func normalize(tx *gorm.DB, actor models.User, input TaskInput) (taskFields, error) {
	fields := taskFields{
		description: strings.TrimSpace(input.Description),
		priority:    models.ParsePriority(input.Priority),
		details:     input.Details,
		status:      models.ParseStatus(input.Status),
		assigneeID:  actor.ID,
	}

	if n := utf8.RuneCountInString(fields.description); n == 0 || n > models.MaxDescriptionLength {
		return taskFields{}, ErrInvalidDescription
	}

	if due := strings.TrimSpace(input.DueDate); due != "" {
		d, err := models.ParseDate(due)
		if err != nil {
			return taskFields{}, ErrInvalidDueDate
		}
		fields.dueDate = &d
	}

	if id, err := strconv.ParseUint(strings.TrimSpace(input.AssigneeID), 10, 64); err == nil && id > 0 {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return taskFields{}, err
		}
		if count > 0 {
			fields.assigneeID = uint(id)
		}
	}

	return fields, nil
}

func (f taskFields) apply(task *models.Task) {
	task.Description = f.description
	task.DueDate = f.dueDate
	task.Priority = f.priority
	task.Details = f.details
	task.Status = f.status
	task.AssigneeID = f.assigneeID
}

func (s *TaskService) CreateTask(db *database.Database, actor models.User, input TaskInput) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	fields, err := normalize(tx, actor, input)
	if err != nil {
		tx.Rollback()
		return models.Task{}, err
	}

	task := models.Task{CreatorID: actor.ID}
	fields.apply(&task)

	if err := tx.Omit(clause.Associations).Create(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.Task{}, err
	}

	s.publish(broker.TaskCreated, actor.ID, map[string]interface{}{
		"task_id":     task.ID,
		"description": task.Description,
		"creator_id":  task.CreatorID,
		"assignee_id": task.AssigneeID,
		"status":      task.Status,
	})

	return task, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id uint) (models.Task, error) {
	var task models.Task
	if err := db.DB.Preload("Creator").Preload("Assignee").First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask replaces every editable field of the task. Concurrent edits
// are last-write-wins.
func (s *TaskService) UpdateTask(db *database.Database, id uint, actor models.User, input TaskInput) (models.Task, error) {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	fields, err := normalize(tx, actor, input)
	if err != nil {
		tx.Rollback()
		return models.Task{}, err
	}
	fields.apply(&task)

	if err := tx.Omit(clause.Associations).Save(&task).Error; err != nil {
		tx.Rollback()
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return models.Task{}, err
	}

	s.publish(broker.TaskUpdated, actor.ID, map[string]interface{}{
		"task_id":     task.ID,
		"description": task.Description,
		"assignee_id": task.AssigneeID,
		"status":      task.Status,
	})

	return task, nil
}

func (s *TaskService) SetStatus(db *database.Database, id uint, status models.Status, actorID uint) (models.Task, error) {
	if _, ok := models.LookupStatus(string(status)); !ok {
		return models.Task{}, ErrInvalidStatus
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Task{}, tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if err := tx.Model(&task).Update("status", status).Error; err != nil {
		tx.Rollback()
		return models.Task{}, fmt.Errorf("failed to update task status: %w", err)
	}
	task.Status = status

	if err := tx.Commit().Error; err != nil {
		return models.Task{}, err
	}

	s.publish(broker.TaskStatusChanged, actorID, map[string]interface{}{
		"task_id": task.ID,
		"status":  task.Status,
	})

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, id uint, actorID uint) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var task models.Task
	if err := tx.First(&task, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	if err := tx.Delete(&task).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.publish(broker.TaskDeleted, actorID, map[string]interface{}{
		"task_id": task.ID,
	})

	return nil
}

// GetTasks returns the filtered task list in display order.
func (s *TaskService) GetTasks(db *database.Database, filter TaskFilter) ([]models.Task, error) {
	query := db.DB.Preload("Creator").Preload("Assignee")

	if status, ok := models.LookupStatus(filter.Status); ok {
		query = query.Where("status = ?", status)
	}

	switch filter.Mine {
	case MineCreated:
		query = query.Where("creator_id = ?", filter.ActorID)
	case MineAssigned:
		query = query.Where("assignee_id = ?", filter.ActorID)
	}

	var tasks []models.Task
	if err := query.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	models.SortTasks(tasks)
	return tasks, nil
}

// GetOpenTasksForAssignee returns the open tasks of one user in display order.
func (s *TaskService) GetOpenTasksForAssignee(db *database.Database, assigneeID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.DB.
		Where("assignee_id = ? AND status = ?", assigneeID, models.StatusOpen).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	models.SortTasks(tasks)
	return tasks, nil
}

func (s *TaskService) publish(eventType broker.EventType, actorID uint, data map[string]interface{}) {
	publishEvent(s.producer, s.logger, eventType, "task", actorID, data)
}

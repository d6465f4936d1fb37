package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reminder-app/reminder/database"
	"reminder-app/reminder/middleware"
	"reminder-app/reminder/models"
	"reminder-app/reminder/services"
)

const (
	flashTaskCreated   = "Aufgabe erstellt."
	flashTaskUpdated   = "Aufgabe aktualisiert."
	flashStatusChanged = "Status geändert."
	flashInvalidStatus = "Ungültiger Status."
	flashTaskDeleted   = "Aufgabe gelöscht."
	flashTaskNotFound  = "Aufgabe nicht gefunden."

	msgInvalidDescription = "Beschreibung ist Pflicht und max. 100 Zeichen."
	msgInvalidDueDate     = "Ungültiges Datum (JJJJ-MM-TT)."
)

func RegisterTaskRoutes(group *gin.RouterGroup, db *database.Database, taskService services.TaskServiceInterface, userService services.UserServiceInterface) {
	group.GET("/tasks", func(c *gin.Context) { GetTasks(c, db, taskService) })
	group.GET("/tasks/new", func(c *gin.Context) { NewTaskForm(c, db, userService) })
	group.POST("/tasks/new", func(c *gin.Context) { CreateTask(c, db, taskService, userService) })
	group.GET("/tasks/:id/edit", func(c *gin.Context) { EditTaskForm(c, db, taskService, userService) })
	group.POST("/tasks/:id/edit", func(c *gin.Context) { UpdateTask(c, db, taskService, userService) })
	group.POST("/tasks/:id/status", func(c *gin.Context) { ChangeTaskStatus(c, db, taskService) })
	group.POST("/tasks/:id/delete", func(c *gin.Context) { DeleteTask(c, db, taskService) })
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	me, _ := middleware.CurrentUser(c)
	filter := services.TaskFilter{
		Status:  c.Query("status"),
		Mine:    c.Query("mine"),
		ActorID: me.ID,
	}

	tasks, err := taskService.GetTasks(db, filter)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, http.StatusOK, "tasks.html", gin.H{
		"Me":       me,
		"Tasks":    tasks,
		"Filter":   filter,
		"Statuses": models.Statuses,
	})
}

func NewTaskForm(c *gin.Context, db *database.Database, userService services.UserServiceInterface) {
	me, _ := middleware.CurrentUser(c)
	input := services.TaskInput{
		Priority:   string(models.PriorityNormal),
		Status:     string(models.StatusOpen),
		AssigneeID: strconv.FormatUint(uint64(me.ID), 10),
	}
	renderTaskForm(c, db, userService, http.StatusOK, "/tasks/new", "Neue Aufgabe", input, "")
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface, userService services.UserServiceInterface) {
	me, _ := middleware.CurrentUser(c)

	var input services.TaskInput
	if err := c.ShouldBind(&input); err != nil {
		renderTaskForm(c, db, userService, http.StatusBadRequest, "/tasks/new", "Neue Aufgabe", input, err.Error())
		return
	}

	_, err := taskService.CreateTask(db, me, input)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			renderTaskForm(c, db, userService, http.StatusOK, "/tasks/new", "Neue Aufgabe", input, msg)
			return
		}
		renderError(c, err)
		return
	}

	redirectWithFlash(c, "/tasks", flashTaskCreated)
}

func EditTaskForm(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface, userService services.UserServiceInterface) {
	task, ok := loadTask(c, db, taskService)
	if !ok {
		return
	}

	input := services.TaskInput{
		Description: task.Description,
		Priority:    string(task.Priority),
		Details:     task.Details,
		Status:      string(task.Status),
		AssigneeID:  strconv.FormatUint(uint64(task.AssigneeID), 10),
	}
	if task.DueDate != nil {
		input.DueDate = task.DueDate.String()
	}
	renderTaskForm(c, db, userService, http.StatusOK, editPath(task.ID), "Aufgabe bearbeiten", input, "")
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface, userService services.UserServiceInterface) {
	me, _ := middleware.CurrentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}

	var input services.TaskInput
	if err := c.ShouldBind(&input); err != nil {
		renderTaskForm(c, db, userService, http.StatusBadRequest, editPath(id), "Aufgabe bearbeiten", input, err.Error())
		return
	}

	_, err := taskService.UpdateTask(db, id, me, input)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			redirectWithFlash(c, "/tasks", flashTaskNotFound)
			return
		}
		if msg, ok := validationMessage(err); ok {
			renderTaskForm(c, db, userService, http.StatusOK, editPath(id), "Aufgabe bearbeiten", input, msg)
			return
		}
		renderError(c, err)
		return
	}

	redirectWithFlash(c, "/tasks", flashTaskUpdated)
}

// ChangeTaskStatus sets only the status. Unlike the full form, an unknown
// status is rejected instead of being coerced.
func ChangeTaskStatus(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	me, _ := middleware.CurrentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}

	_, err := taskService.SetStatus(db, id, models.Status(c.PostForm("status")), me.ID)
	switch {
	case err == nil:
		redirectWithFlash(c, "/tasks", flashStatusChanged)
	case errors.Is(err, services.ErrTaskNotFound):
		redirectWithFlash(c, "/tasks", flashTaskNotFound)
	case errors.Is(err, services.ErrInvalidStatus):
		redirectWithFlash(c, "/tasks", flashInvalidStatus)
	default:
		renderError(c, err)
	}
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	me, _ := middleware.CurrentUser(c)
	id, ok := taskID(c)
	if !ok {
		return
	}

	err := taskService.DeleteTask(db, id, me.ID)
	switch {
	case err == nil:
		redirectWithFlash(c, "/tasks", flashTaskDeleted)
	case errors.Is(err, services.ErrTaskNotFound):
		redirectWithFlash(c, "/tasks", flashTaskNotFound)
	default:
		renderError(c, err)
	}
}

func renderTaskForm(c *gin.Context, db *database.Database, userService services.UserServiceInterface, status int, action, title string, input services.TaskInput, errMsg string) {
	me, _ := middleware.CurrentUser(c)
	users, err := userService.GetUsers(db)
	if err != nil {
		renderError(c, err)
		return
	}

	render(c, status, "task_form.html", gin.H{
		"Me":         me,
		"Title":      title,
		"Action":     action,
		"Input":      input,
		"Error":      errMsg,
		"Users":      users,
		"Priorities": models.Priorities,
		"Statuses":   models.Statuses,
	})
}

// loadTask resolves :id, redirecting to the list when it does not exist.
func loadTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) (models.Task, bool) {
	id, ok := taskID(c)
	if !ok {
		return models.Task{}, false
	}
	task, err := taskService.GetTaskById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			redirectWithFlash(c, "/tasks", flashTaskNotFound)
			return models.Task{}, false
		}
		renderError(c, err)
		return models.Task{}, false
	}
	return task, true
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		redirectWithFlash(c, "/tasks", flashTaskNotFound)
		return 0, false
	}
	return uint(id), true
}

func editPath(id uint) string {
	return fmt.Sprintf("/tasks/%d/edit", id)
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, services.ErrInvalidDescription):
		return msgInvalidDescription, true
	case errors.Is(err, services.ErrInvalidDueDate):
		return msgInvalidDueDate, true
	}
	return "", false
}

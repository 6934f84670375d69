package handlers

import (
	"errors"
	"net/http"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/apierrors"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/models"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/query"
	"github.com/Himon-SYNCRAFT/taskplus-api/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

// withRelations loads the relations ToMap expands. Single and list
// responses render tasks in the same shape.
func (h *TaskHandler) withRelations() *gorm.DB {
	return h.db.
		Preload("Status").
		Preload("Type").
		Preload("Creator").
		Preload("Contractor").
		Preload("Content")
}

// Get returns a single task with its status, type, users and content
// expanded one level.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}

	var task models.Task
	err := h.withRelations().First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, task.ToMap())
}

// Create builds a task from the validated body. The creation timestamp is
// set server-side. A reference to a missing type, status or user surfaces as
// a conflict.
func (h *TaskHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task, err := models.NewTaskFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Task cannot be created")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, task.ToMap())
}

// Update merges whitelisted fields into an existing task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}

	var task models.Task
	if err := h.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	task.UpdateFromMap(data)

	if err := h.db.Save(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Task cannot be updated")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, task.ToMap())
}

// Delete removes a task. A task that still owns attribute values cannot be
// deleted.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}

	var task models.Task
	if err := h.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Task cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns tasks matching the flat query-string filter.
func (h *TaskHandler) List(c *gin.Context) {
	fields, err := validation.TaskQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var tasks []models.Task
	if err := query.ByFields(h.withRelations(), models.TaskDescriptor(), fields, &tasks); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

// Search returns tasks matching a {value, operator} filter body.
func (h *TaskHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.TaskSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var tasks []models.Task
	if err := query.FromMap(h.withRelations(), models.TaskDescriptor(), filter, &tasks); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

// Index lists every task. This is the root endpoint.
func (h *TaskHandler) Index(c *gin.Context) {
	var tasks []models.Task
	if err := h.withRelations().Find(&tasks).Error; err != nil {
		apierrors.InternalError(c, "")
		return
	}

	out := make([]map[string]any, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

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

type TaskTypeHandler struct {
	db *gorm.DB
}

func NewTaskTypeHandler(db *gorm.DB) *TaskTypeHandler {
	return &TaskTypeHandler{db: db}
}

func (h *TaskTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "type_id")
	if !ok {
		return
	}

	var taskType models.TaskType
	if err := h.db.First(&taskType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, taskType.ToMap())
}

func (h *TaskTypeHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskTypeCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	taskType, err := models.NewTaskTypeFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(taskType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Type name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, taskType.ToMap())
}

func (h *TaskTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "type_id")
	if !ok {
		return
	}

	var taskType models.TaskType
	if err := h.db.First(&taskType, id).Error; err != nil {
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

	data, err := validation.TaskTypeUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	taskType.UpdateFromMap(data)

	if err := h.db.Save(&taskType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Type name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, taskType.ToMap())
}

func (h *TaskTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "type_id")
	if !ok {
		return
	}

	var taskType models.TaskType
	if err := h.db.First(&taskType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&taskType).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Type cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskTypeHandler) List(c *gin.Context) {
	fields, err := validation.TaskTypeQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var taskTypes []models.TaskType
	if err := query.ByFields(h.db, models.TaskTypeDescriptor(), fields, &taskTypes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(taskTypes))
	for _, taskType := range taskTypes {
		out = append(out, taskType.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *TaskTypeHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.TaskTypeSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var taskTypes []models.TaskType
	if err := query.FromMap(h.db, models.TaskTypeDescriptor(), filter, &taskTypes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(taskTypes))
	for _, taskType := range taskTypes {
		out = append(out, taskType.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

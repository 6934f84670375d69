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

type TaskStatusHandler struct {
	db *gorm.DB
}

func NewTaskStatusHandler(db *gorm.DB) *TaskStatusHandler {
	return &TaskStatusHandler{db: db}
}

func (h *TaskStatusHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "status_id")
	if !ok {
		return
	}

	var status models.TaskStatus
	if err := h.db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, status.ToMap())
}

func (h *TaskStatusHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskStatusCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	status, err := models.NewTaskStatusFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Status name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, status.ToMap())
}

func (h *TaskStatusHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "status_id")
	if !ok {
		return
	}

	var status models.TaskStatus
	if err := h.db.First(&status, id).Error; err != nil {
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

	data, err := validation.TaskStatusUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	status.UpdateFromMap(data)

	if err := h.db.Save(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Status name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, status.ToMap())
}

func (h *TaskStatusHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "status_id")
	if !ok {
		return
	}

	var status models.TaskStatus
	if err := h.db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Status cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskStatusHandler) List(c *gin.Context) {
	fields, err := validation.TaskStatusQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var statuses []models.TaskStatus
	if err := query.ByFields(h.db, models.TaskStatusDescriptor(), fields, &statuses); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *TaskStatusHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.TaskStatusSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var statuses []models.TaskStatus
	if err := query.FromMap(h.db, models.TaskStatusDescriptor(), filter, &statuses); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

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

// AttributeValueHandler serves the dynamic content of tasks, one value per
// (task, attribute) pair.
type AttributeValueHandler struct {
	db *gorm.DB
}

func NewAttributeValueHandler(db *gorm.DB) *AttributeValueHandler {
	return &AttributeValueHandler{db: db}
}

func (h *AttributeValueHandler) find(c *gin.Context) (*models.TaskAttributeValue, bool) {
	taskID, ok := pathID(c, "task_id")
	if !ok {
		return nil, false
	}
	attributeID, ok := pathID(c, "task_attribute_id")
	if !ok {
		return nil, false
	}

	var value models.TaskAttributeValue
	err := h.db.
		Where("task_id = ? AND task_attribute_id = ?", taskID, attributeID).
		First(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return nil, false
		}
		apierrors.InternalError(c, "")
		return nil, false
	}

	return &value, true
}

func (h *AttributeValueHandler) Get(c *gin.Context) {
	value, ok := h.find(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, value.ToMap())
}

func (h *AttributeValueHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.AttributeValueCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	value, err := models.NewAttributeValueFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(value).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Value for that type already exist for given task.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, value.ToMap())
}

func (h *AttributeValueHandler) Update(c *gin.Context) {
	value, ok := h.find(c)
	if !ok {
		return
	}

	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.AttributeValueUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	value.UpdateFromMap(data)

	if err := h.db.Save(value).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Value for that type already exist for given task.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, value.ToMap())
}

func (h *AttributeValueHandler) Delete(c *gin.Context) {
	value, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Delete(value).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Value cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AttributeValueHandler) List(c *gin.Context) {
	fields, err := validation.AttributeValueQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var values []models.TaskAttributeValue
	if err := query.ByFields(h.db, models.AttributeValueDescriptor(), fields, &values); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(values))
	for _, value := range values {
		out = append(out, value.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *AttributeValueHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.AttributeValueSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var values []models.TaskAttributeValue
	if err := query.FromMap(h.db, models.AttributeValueDescriptor(), filter, &values); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(values))
	for _, value := range values {
		out = append(out, value.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

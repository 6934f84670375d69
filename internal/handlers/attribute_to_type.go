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

// AttributeToTypeHandler serves the bindings between task types and the
// attributes they expose. The resource is addressed by its composite key.
type AttributeToTypeHandler struct {
	db *gorm.DB
}

func NewAttributeToTypeHandler(db *gorm.DB) *AttributeToTypeHandler {
	return &AttributeToTypeHandler{db: db}
}

func (h *AttributeToTypeHandler) find(c *gin.Context) (*models.TaskAttributeToTaskType, bool) {
	typeID, ok := pathID(c, "task_type_id")
	if !ok {
		return nil, false
	}
	attributeID, ok := pathID(c, "task_attribute_id")
	if !ok {
		return nil, false
	}

	var binding models.TaskAttributeToTaskType
	err := h.db.
		Where("task_type_id = ? AND task_attribute_id = ?", typeID, attributeID).
		First(&binding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return nil, false
		}
		apierrors.InternalError(c, "")
		return nil, false
	}

	return &binding, true
}

func (h *AttributeToTypeHandler) Get(c *gin.Context) {
	binding, ok := h.find(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, binding.ToMap())
}

// Create binds an attribute to a task type. An already existing pair, or a
// reference to a missing type or attribute, is a conflict.
func (h *AttributeToTypeHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.AttributeToTypeCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	binding, err := models.NewAttributeToTypeFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(binding).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Item cannot be created")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, binding.ToMap())
}

func (h *AttributeToTypeHandler) Update(c *gin.Context) {
	binding, ok := h.find(c)
	if !ok {
		return
	}

	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.AttributeToTypeUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	binding.UpdateFromMap(data)

	if err := h.db.Save(binding).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Item cannot be updated")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, binding.ToMap())
}

func (h *AttributeToTypeHandler) Delete(c *gin.Context) {
	binding, ok := h.find(c)
	if !ok {
		return
	}

	if err := h.db.Delete(binding).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Item cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AttributeToTypeHandler) List(c *gin.Context) {
	fields, err := validation.AttributeToTypeQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var bindings []models.TaskAttributeToTaskType
	if err := query.ByFields(h.db, models.AttributeToTypeDescriptor(), fields, &bindings); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(bindings))
	for _, binding := range bindings {
		out = append(out, binding.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *AttributeToTypeHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.AttributeToTypeSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var bindings []models.TaskAttributeToTaskType
	if err := query.FromMap(h.db, models.AttributeToTypeDescriptor(), filter, &bindings); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(bindings))
	for _, binding := range bindings {
		out = append(out, binding.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

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

type TaskAttributeTypeHandler struct {
	db *gorm.DB
}

func NewTaskAttributeTypeHandler(db *gorm.DB) *TaskAttributeTypeHandler {
	return &TaskAttributeTypeHandler{db: db}
}

func (h *TaskAttributeTypeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "attribute_type_id")
	if !ok {
		return
	}

	var attributeType models.TaskAttributeType
	if err := h.db.First(&attributeType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, attributeType.ToMap())
}

func (h *TaskAttributeTypeHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskAttributeTypeCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	attributeType, err := models.NewTaskAttributeTypeFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(attributeType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Type name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, attributeType.ToMap())
}

func (h *TaskAttributeTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "attribute_type_id")
	if !ok {
		return
	}

	var attributeType models.TaskAttributeType
	if err := h.db.First(&attributeType, id).Error; err != nil {
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

	data, err := validation.TaskAttributeTypeUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	attributeType.UpdateFromMap(data)

	if err := h.db.Save(&attributeType).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Type name must be unique.")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, attributeType.ToMap())
}

func (h *TaskAttributeTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "attribute_type_id")
	if !ok {
		return
	}

	var attributeType models.TaskAttributeType
	if err := h.db.First(&attributeType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&attributeType).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Type cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskAttributeTypeHandler) List(c *gin.Context) {
	fields, err := validation.TaskAttributeTypeQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var attributeTypes []models.TaskAttributeType
	if err := query.ByFields(h.db, models.TaskAttributeTypeDescriptor(), fields, &attributeTypes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(attributeTypes))
	for _, attributeType := range attributeTypes {
		out = append(out, attributeType.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *TaskAttributeTypeHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.TaskAttributeTypeSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var attributeTypes []models.TaskAttributeType
	if err := query.FromMap(h.db, models.TaskAttributeTypeDescriptor(), filter, &attributeTypes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(attributeTypes))
	for _, attributeType := range attributeTypes {
		out = append(out, attributeType.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

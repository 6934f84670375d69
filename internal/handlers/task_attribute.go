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

type TaskAttributeHandler struct {
	db *gorm.DB
}

func NewTaskAttributeHandler(db *gorm.DB) *TaskAttributeHandler {
	return &TaskAttributeHandler{db: db}
}

func (h *TaskAttributeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "attribute_id")
	if !ok {
		return
	}

	var attribute models.TaskAttribute
	if err := h.db.First(&attribute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, attribute.ToMap())
}

// Create adds an attribute. The name must be unique and the type must exist.
func (h *TaskAttributeHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.TaskAttributeCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	attribute, err := models.NewTaskAttributeFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Attribute name must be unique.")
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Attribute type does not exist")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, attribute.ToMap())
}

func (h *TaskAttributeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "attribute_id")
	if !ok {
		return
	}

	var attribute models.TaskAttribute
	if err := h.db.First(&attribute, id).Error; err != nil {
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

	data, err := validation.TaskAttributeUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	attribute.UpdateFromMap(data)

	if err := h.db.Save(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Attribute name must be unique.")
			return
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Attribute type does not exist")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, attribute.ToMap())
}

func (h *TaskAttributeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "attribute_id")
	if !ok {
		return
	}

	var attribute models.TaskAttribute
	if err := h.db.First(&attribute, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&attribute).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "Attribute cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskAttributeHandler) List(c *gin.Context) {
	fields, err := validation.TaskAttributeQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var attributes []models.TaskAttribute
	if err := query.ByFields(h.db, models.TaskAttributeDescriptor(), fields, &attributes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(attributes))
	for _, attribute := range attributes {
		out = append(out, attribute.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

func (h *TaskAttributeHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.TaskAttributeSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var attributes []models.TaskAttribute
	if err := query.FromMap(h.db, models.TaskAttributeDescriptor(), filter, &attributes); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(attributes))
	for _, attribute := range attributes {
		out = append(out, attribute.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

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

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// Get returns a single user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, user.ToMap())
}

// Create registers a new user. The password is hashed, never stored verbatim.
func (h *UserHandler) Create(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	data, err := validation.UserCreate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	user, err := models.NewUserFromMap(data)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Login already in use")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, user.ToMap())
}

// Update merges whitelisted fields into an existing user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
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

	data, err := validation.UserUpdate.Validate(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	user.UpdateFromMap(data)

	if err := h.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			apierrors.Conflict(c, "Login already in use")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, user.ToMap())
}

// Delete removes a user unless a task references them.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			apierrors.Conflict(c, "User cannot be deleted")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns users matching the flat (equality-only) query-string filter.
func (h *UserHandler) List(c *gin.Context) {
	fields, err := validation.UserQuery.ValidateStrict(queryValues(c))
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var users []models.User
	if err := query.ByFields(h.db, models.UserDescriptor(), fields, &users); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(users))
	for _, user := range users {
		out = append(out, user.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

// Search returns users matching a {value, operator} filter body.
func (h *UserHandler) Search(c *gin.Context) {
	body, ok := bindObject(c)
	if !ok {
		return
	}

	filter, err := validation.UserSearch.ValidateStrict(body)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	var users []models.User
	if err := query.FromMap(h.db, models.UserDescriptor(), filter, &users); err != nil {
		respondQueryError(c, err)
		return
	}

	out := make([]map[string]any, 0, len(users))
	for _, user := range users {
		out = append(out, user.ToMap())
	}
	c.JSON(http.StatusOK, out)
}

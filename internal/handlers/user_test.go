package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/user", map[string]any{
		"login":         "konnow",
		"first_name":    "Konrad",
		"last_name":     "Nowak",
		"password":      "zaq1@WSX",
		"is_creator":    true,
		"is_contractor": false,
		"is_admin":      false,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "konnow", body["login"])
	assert.Equal(t, true, body["is_creator"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
}

func TestCreateUserDuplicateLogin(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodPost, "/user", map[string]any{
		"login":         "admin",
		"first_name":    "Konrad",
		"last_name":     "Nowak",
		"password":      "zaq1@WSX",
		"is_creator":    false,
		"is_contractor": false,
		"is_admin":      false,
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Login already in use", body["message"])
}

func TestCreateUserMissingField(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/user", map[string]any{
		"login":      "konnow",
		"first_name": "Konrad",
		"last_name":  "Nowak",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Invalid value for password. required key not provided", body["message"])
}

func TestGetUser(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/user/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "admin", body["login"])
	assert.Equal(t, "Daniel", body["first_name"])
}

func TestGetUserNotFound(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/user/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserInvalidID(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/user/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodPut, "/user/3", map[string]any{
		"last_name": "Kowalski",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "przoci", body["login"])
	assert.Equal(t, "Kowalski", body["last_name"])
}

func TestDeleteUser(t *testing.T) {
	r, _ := setupSeededRouter(t)

	// przoci is referenced by nothing.
	w := performRequest(t, r, http.MethodDelete, "/user/3", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(t, r, http.MethodGet, "/user/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUserReferencedByTask(t *testing.T) {
	r, _ := setupSeededRouter(t)

	// danzaw created the seed tasks.
	w := performRequest(t, r, http.MethodDelete, "/user/2", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "User cannot be deleted", body["message"])
}

func TestListUsers(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 3)
}

func TestListUsersFiltered(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users?first_name=Daniel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = performRequest(t, r, http.MethodGet, "/users?is_admin=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeList(t, w)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0]["login"])
}

func TestListUsersUnknownParam(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users?colour=blue", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Invalid value for colour. extra keys not allowed", body["message"])
}

func TestSearchUsers(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": map[string]any{"value": "Daniel", "operator": "!="},
	})

	require.Equal(t, http.StatusOK, w.Code)
	users := decodeList(t, w)
	require.Len(t, users, 1)
	assert.Equal(t, "przoci", users[0]["login"])
}

func TestSearchUsersUnrecognizedOperator(t *testing.T) {
	r, _ := setupSeededRouter(t)

	// An operator outside the comparison set falls back to equality.
	w := performRequest(t, r, http.MethodPost, "/users", map[string]any{
		"first_name": map[string]any{"value": "Daniel", "operator": "!!"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestSearchUsersUnknownField(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", map[string]any{
		"colour": map[string]any{"value": "blue"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Invalid value for colour. extra keys not allowed", body["message"])
}

func TestSearchUsersNonObjectBody(t *testing.T) {
	r, _ := setupSeededRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", []any{1, 2})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Invalid request body", body["message"])
}

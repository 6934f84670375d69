package models

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var isoMicroseconds = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`)

func TestNewTaskFromMap(t *testing.T) {
	before := time.Now()
	task, err := NewTaskFromMap(map[string]any{
		"name":       "Zmiana ceny produktu",
		"type_id":    1,
		"status_id":  1,
		"creator_id": 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Zmiana ceny produktu", task.Name)
	assert.Equal(t, uint(1), task.TypeID)
	assert.Equal(t, uint(2), task.CreatorID)
	assert.Nil(t, task.ContractorID)
	assert.Nil(t, task.EndDate)
	assert.False(t, task.CreateDate.Before(before), "creation timestamp is set on construction")
}

func TestNewTaskFromMapOptionalFields(t *testing.T) {
	end := time.Date(2018, 5, 12, 10, 30, 0, 0, time.UTC)
	task, err := NewTaskFromMap(map[string]any{
		"name":                "Dodaj produkt",
		"external_identifier": "EXT-7",
		"type_id":             2,
		"status_id":           1,
		"creator_id":          2,
		"contractor_id":       3,
		"end_date":            end,
	})
	require.NoError(t, err)

	assert.Equal(t, "EXT-7", task.ExternalIdentifier)
	require.NotNil(t, task.ContractorID)
	assert.Equal(t, uint(3), *task.ContractorID)
	require.NotNil(t, task.EndDate)
	assert.True(t, task.EndDate.Equal(end))
}

func TestNewTaskFromMapMissingField(t *testing.T) {
	_, err := NewTaskFromMap(map[string]any{
		"name":       "Zmiana ceny",
		"status_id":  1,
		"creator_id": 2,
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid value for type_id. required key not provided", err.Error())
}

func TestTaskUpdateFromMapKeepsCreateDate(t *testing.T) {
	created := time.Date(2018, 5, 12, 10, 30, 0, 0, time.UTC)
	task := Task{Name: "Zmiana ceny", TypeID: 1, StatusID: 1, CreatorID: 2, CreateDate: created}

	task.UpdateFromMap(map[string]any{
		"name":        "Zmiana ceny produktu",
		"status_id":   2,
		"create_date": time.Now(),
	})

	assert.Equal(t, "Zmiana ceny produktu", task.Name)
	assert.Equal(t, uint(2), task.StatusID)
	assert.True(t, task.CreateDate.Equal(created), "create_date is immutable")
}

func TestTaskToMap(t *testing.T) {
	contractor := uint(3)
	task := Task{
		ID:           1,
		Name:         "Zmiana ceny",
		TypeID:       1,
		StatusID:     1,
		CreatorID:    2,
		ContractorID: &contractor,
		CreateDate:   time.Date(2018, 5, 12, 10, 30, 0, 123456000, time.UTC),
	}

	out := task.ToMap()

	assert.Equal(t, uint(1), out["id"])
	assert.Equal(t, "2018-05-12T10:30:00.123456", out["create_date"])
	assert.Equal(t, uint(3), out["contractor_id"])
	assert.Nil(t, out["end_date"])

	// Relations are expanded only when loaded.
	assert.NotContains(t, out, "status")
	assert.NotContains(t, out, "content")
}

func TestTaskToMapExpandsLoadedRelations(t *testing.T) {
	task := Task{
		ID:         1,
		Name:       "Zmiana ceny",
		TypeID:     1,
		StatusID:   1,
		CreatorID:  2,
		CreateDate: time.Now(),
		Status:     TaskStatus{ID: 1, Name: "Nowe"},
		Type:       TaskType{ID: 1, Name: "Zmiana ceny"},
		Creator:    User{ID: 2, Login: "danzaw", FirstName: "Daniel", LastName: "Zawadzki"},
		Content: []TaskAttributeValue{
			{TaskID: 1, TaskAttributeID: 1, Value: "Buty"},
		},
	}

	out := task.ToMap()

	status, ok := out["status"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Nowe", status["name"])

	creator, ok := out["creator"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "danzaw", creator["login"])
	assert.NotContains(t, creator, "password")

	content, ok := out["content"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, content, 1)
	assert.Equal(t, "Buty", content[0]["value"])

	createDate, ok := out["create_date"].(string)
	require.True(t, ok)
	assert.Regexp(t, isoMicroseconds, createDate)
}

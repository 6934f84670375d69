package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskType is a lookup entity describing what kind of work a task is. The
// attributes applicable to a type are bound through TaskAttributeToTaskType.
type TaskType struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"type:varchar(128);uniqueIndex;not null"`
}

func NewTaskTypeFromMap(fields map[string]any) (*TaskType, error) {
	if err := requireFields(fields, "name"); err != nil {
		return nil, err
	}

	taskType := &TaskType{}
	taskType.Name, _ = stringField(fields, "name")
	return taskType, nil
}

func (t *TaskType) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		t.Name = v
	}
}

func (t TaskType) ToMap() map[string]any {
	return map[string]any{
		"id":   t.ID,
		"name": t.Name,
	}
}

func TaskTypeDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskType{},
		Columns: map[string]string{
			"id":   "id",
			"name": "name",
		},
	}
}

package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskStatus is a lookup entity. Deletion is blocked while any task
// references it.
type TaskStatus struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"type:varchar(128);uniqueIndex;not null"`
}

func NewTaskStatusFromMap(fields map[string]any) (*TaskStatus, error) {
	if err := requireFields(fields, "name"); err != nil {
		return nil, err
	}

	status := &TaskStatus{}
	status.Name, _ = stringField(fields, "name")
	return status, nil
}

func (s *TaskStatus) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		s.Name = v
	}
}

func (s TaskStatus) ToMap() map[string]any {
	return map[string]any{
		"id":   s.ID,
		"name": s.Name,
	}
}

func TaskStatusDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskStatus{},
		Columns: map[string]string{
			"id":   "id",
			"name": "name",
		},
	}
}

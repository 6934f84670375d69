package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskAttributeToTaskType binds an attribute to a task type, with a sort
// position and optional validation rules. The (type, attribute) pair is the
// composite primary key, so the same binding cannot exist twice.
type TaskAttributeToTaskType struct {
	TaskTypeID      uint   `gorm:"primarykey;autoIncrement:false"`
	TaskAttributeID uint   `gorm:"primarykey;autoIncrement:false"`
	Sort            int    `gorm:"not null;default:0"`
	Rules           string `gorm:"type:text"`

	TaskType      TaskType      `gorm:"foreignKey:TaskTypeID;constraint:OnDelete:RESTRICT"`
	TaskAttribute TaskAttribute `gorm:"foreignKey:TaskAttributeID;constraint:OnDelete:RESTRICT"`
}

func NewAttributeToTypeFromMap(fields map[string]any) (*TaskAttributeToTaskType, error) {
	if err := requireFields(fields, "task_type_id", "task_attribute_id"); err != nil {
		return nil, err
	}

	binding := &TaskAttributeToTaskType{}
	binding.TaskTypeID, _ = intField(fields, "task_type_id")
	binding.TaskAttributeID, _ = intField(fields, "task_attribute_id")

	if v, ok := intField(fields, "sort"); ok {
		binding.Sort = int(v)
	}
	if v, ok := stringField(fields, "rules"); ok {
		binding.Rules = v
	}

	return binding, nil
}

// UpdateFromMap merges the non-key fields. The composite key is immutable.
func (b *TaskAttributeToTaskType) UpdateFromMap(fields map[string]any) {
	if v, ok := intField(fields, "sort"); ok {
		b.Sort = int(v)
	}
	if v, ok := stringField(fields, "rules"); ok {
		b.Rules = v
	}
}

func (b TaskAttributeToTaskType) ToMap() map[string]any {
	return map[string]any{
		"task_type_id":      b.TaskTypeID,
		"task_attribute_id": b.TaskAttributeID,
		"sort":              b.Sort,
		"rules":             b.Rules,
	}
}

func AttributeToTypeDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskAttributeToTaskType{},
		Columns: map[string]string{
			"task_type_id":      "task_type_id",
			"task_attribute_id": "task_attribute_id",
			"sort":              "sort",
			"rules":             "rules",
		},
	}
}

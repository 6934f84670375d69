package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskAttributeValue holds one piece of a task's dynamic content. A task can
// carry at most one value per attribute, enforced by the composite key.
type TaskAttributeValue struct {
	TaskID          uint   `gorm:"primarykey;autoIncrement:false"`
	TaskAttributeID uint   `gorm:"primarykey;autoIncrement:false"`
	Value           string `gorm:"type:text;not null"`

	Task          Task          `gorm:"foreignKey:TaskID;constraint:OnDelete:RESTRICT"`
	TaskAttribute TaskAttribute `gorm:"foreignKey:TaskAttributeID;constraint:OnDelete:RESTRICT"`
}

func NewAttributeValueFromMap(fields map[string]any) (*TaskAttributeValue, error) {
	if err := requireFields(fields, "task_id", "task_attribute_id", "value"); err != nil {
		return nil, err
	}

	value := &TaskAttributeValue{}
	value.TaskID, _ = intField(fields, "task_id")
	value.TaskAttributeID, _ = intField(fields, "task_attribute_id")
	value.Value, _ = stringField(fields, "value")
	return value, nil
}

// UpdateFromMap merges the value. The composite key is immutable.
func (v *TaskAttributeValue) UpdateFromMap(fields map[string]any) {
	if s, ok := stringField(fields, "value"); ok {
		v.Value = s
	}
}

func (v TaskAttributeValue) ToMap() map[string]any {
	return map[string]any{
		"task_id":           v.TaskID,
		"task_attribute_id": v.TaskAttributeID,
		"value":             v.Value,
	}
}

func AttributeValueDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskAttributeValue{},
		Columns: map[string]string{
			"task_id":           "task_id",
			"task_attribute_id": "task_attribute_id",
			"value":             "value",
		},
	}
}

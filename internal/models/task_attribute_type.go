package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskAttributeType names the data kind of an attribute's value: string,
// int, float, list or json.
type TaskAttributeType struct {
	ID   uint   `gorm:"primarykey"`
	Name string `gorm:"type:varchar(128);uniqueIndex;not null"`
}

func NewTaskAttributeTypeFromMap(fields map[string]any) (*TaskAttributeType, error) {
	if err := requireFields(fields, "name"); err != nil {
		return nil, err
	}

	attributeType := &TaskAttributeType{}
	attributeType.Name, _ = stringField(fields, "name")
	return attributeType, nil
}

func (t *TaskAttributeType) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		t.Name = v
	}
}

func (t TaskAttributeType) ToMap() map[string]any {
	return map[string]any{
		"id":   t.ID,
		"name": t.Name,
	}
}

func TaskAttributeTypeDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskAttributeType{},
		Columns: map[string]string{
			"id":   "id",
			"name": "name",
		},
	}
}

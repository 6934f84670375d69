package models

import "github.com/Himon-SYNCRAFT/taskplus-api/internal/query"

// TaskAttribute is a named, typed slot that task types can expose.
type TaskAttribute struct {
	ID     uint   `gorm:"primarykey"`
	Name   string `gorm:"type:varchar(128);uniqueIndex;not null"`
	TypeID uint   `gorm:"not null"`

	Type TaskAttributeType `gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
}

func NewTaskAttributeFromMap(fields map[string]any) (*TaskAttribute, error) {
	if err := requireFields(fields, "name", "type_id"); err != nil {
		return nil, err
	}

	attribute := &TaskAttribute{}
	attribute.Name, _ = stringField(fields, "name")
	attribute.TypeID, _ = intField(fields, "type_id")
	return attribute, nil
}

func (a *TaskAttribute) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		a.Name = v
	}
	if v, ok := intField(fields, "type_id"); ok {
		a.TypeID = v
	}
}

func (a TaskAttribute) ToMap() map[string]any {
	return map[string]any{
		"id":      a.ID,
		"name":    a.Name,
		"type_id": a.TypeID,
	}
}

func TaskAttributeDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &TaskAttribute{},
		Columns: map[string]string{
			"id":      "id",
			"name":    "name",
			"type_id": "type_id",
		},
	}
}

package models

import (
	"time"

	"github.com/Himon-SYNCRAFT/taskplus-api/internal/query"
)

// Task is the central entity. Its dynamic content lives in TaskAttributeValue
// rows keyed by the attributes its type allows.
type Task struct {
	ID                 uint   `gorm:"primarykey"`
	Name               string `gorm:"type:varchar(128);not null"`
	ExternalIdentifier string `gorm:"type:varchar(128)"`
	TypeID             uint   `gorm:"not null"`
	StatusID           uint   `gorm:"not null"`
	CreatorID          uint   `gorm:"not null"`
	ContractorID       *uint
	CreateDate         time.Time `gorm:"not null"`
	EndDate            *time.Time

	Type       TaskType             `gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
	Status     TaskStatus           `gorm:"foreignKey:StatusID;constraint:OnDelete:RESTRICT"`
	Creator    User                 `gorm:"foreignKey:CreatorID;constraint:OnDelete:RESTRICT"`
	Contractor *User                `gorm:"foreignKey:ContractorID;constraint:OnDelete:RESTRICT"`
	Content    []TaskAttributeValue `gorm:"foreignKey:TaskID;constraint:OnDelete:RESTRICT"`
}

// NewTaskFromMap constructs a task from validated fields. The creation
// timestamp is always set here, never taken from the client.
func NewTaskFromMap(fields map[string]any) (*Task, error) {
	if err := requireFields(fields, "name", "type_id", "status_id", "creator_id"); err != nil {
		return nil, err
	}

	task := &Task{CreateDate: time.Now()}
	task.Name, _ = stringField(fields, "name")
	task.TypeID, _ = intField(fields, "type_id")
	task.StatusID, _ = intField(fields, "status_id")
	task.CreatorID, _ = intField(fields, "creator_id")

	if v, ok := stringField(fields, "external_identifier"); ok {
		task.ExternalIdentifier = v
	}
	if v, ok := intField(fields, "contractor_id"); ok {
		task.ContractorID = &v
	}
	if v, ok := timeField(fields, "end_date"); ok {
		task.EndDate = &v
	}

	return task, nil
}

// UpdateFromMap merges mutable fields into the task. CreateDate is immutable
// after construction and is not part of the whitelist.
func (t *Task) UpdateFromMap(fields map[string]any) {
	if v, ok := stringField(fields, "name"); ok {
		t.Name = v
	}
	if v, ok := stringField(fields, "external_identifier"); ok {
		t.ExternalIdentifier = v
	}
	if v, ok := intField(fields, "type_id"); ok {
		t.TypeID = v
	}
	if v, ok := intField(fields, "status_id"); ok {
		t.StatusID = v
	}
	if v, ok := intField(fields, "creator_id"); ok {
		t.CreatorID = v
	}
	if v, ok := intField(fields, "contractor_id"); ok {
		t.ContractorID = &v
	}
	if v, ok := timeField(fields, "end_date"); ok {
		t.EndDate = &v
	}
}

// ToMap serializes the task, expanding loaded relations one level deep.
func (t Task) ToMap() map[string]any {
	out := map[string]any{
		"id":                  t.ID,
		"name":                t.Name,
		"external_identifier": t.ExternalIdentifier,
		"type_id":             t.TypeID,
		"status_id":           t.StatusID,
		"creator_id":          t.CreatorID,
		"create_date":         formatTime(t.CreateDate),
	}

	if t.ContractorID != nil {
		out["contractor_id"] = *t.ContractorID
	} else {
		out["contractor_id"] = nil
	}

	if t.EndDate != nil {
		out["end_date"] = formatTime(*t.EndDate)
	} else {
		out["end_date"] = nil
	}

	if t.Status.ID != 0 {
		out["status"] = t.Status.ToMap()
	}
	if t.Type.ID != 0 {
		out["type"] = t.Type.ToMap()
	}
	if t.Creator.ID != 0 {
		out["creator"] = t.Creator.ToMap()
	}
	if t.Contractor != nil && t.Contractor.ID != 0 {
		out["contractor"] = t.Contractor.ToMap()
	}
	if len(t.Content) > 0 {
		content := make([]map[string]any, len(t.Content))
		for i, value := range t.Content {
			content[i] = value.ToMap()
		}
		out["content"] = content
	}

	return out
}

// TaskDescriptor exposes the filterable task fields to the query builder.
func TaskDescriptor() query.Descriptor {
	return query.Descriptor{
		Model: &Task{},
		Columns: map[string]string{
			"id":                  "id",
			"name":                "name",
			"external_identifier": "external_identifier",
			"type_id":             "type_id",
			"status_id":           "status_id",
			"creator_id":          "creator_id",
			"contractor_id":       "contractor_id",
			"create_date":         "create_date",
			"end_date":            "end_date",
		},
	}
}

package validation

// Rule sets for task attributes and the two associative entities binding
// attributes to task types and tasks.
var (
	TaskAttributeCreate = NewSchema(
		Required("name", String(1, 128)),
		Required("type_id", Int()),
	)

	TaskAttributeUpdate = NewSchema(
		Optional("name", String(1, 128)),
		Optional("type_id", Int()),
	)

	TaskAttributeQuery = NewSchema(
		Optional("id", CoercedInt()),
		Optional("name", String(1, 128)),
		Optional("type_id", CoercedInt()),
	)

	TaskAttributeSearch = NewSchema(
		Optional("id", Pair(Int())),
		Optional("name", Pair(String(1, 128))),
		Optional("type_id", Pair(Int())),
	)
)

var (
	AttributeToTypeCreate = NewSchema(
		Required("task_type_id", Int()),
		Required("task_attribute_id", Int()),
		Optional("sort", Int()),
		Optional("rules", String(0, 65535)),
	)

	AttributeToTypeUpdate = NewSchema(
		Optional("sort", Int()),
		Optional("rules", String(0, 65535)),
	)

	AttributeToTypeQuery = NewSchema(
		Optional("task_type_id", CoercedInt()),
		Optional("task_attribute_id", CoercedInt()),
		Optional("sort", CoercedInt()),
		Optional("rules", String(0, 65535)),
	)

	AttributeToTypeSearch = NewSchema(
		Optional("task_type_id", Pair(Int())),
		Optional("task_attribute_id", Pair(Int())),
		Optional("sort", Pair(Int())),
		Optional("rules", Pair(String(0, 65535))),
	)
)

var (
	AttributeValueCreate = NewSchema(
		Required("task_id", Int()),
		Required("task_attribute_id", Int()),
		Required("value", String(1, 65535)),
	)

	AttributeValueUpdate = NewSchema(
		Optional("value", String(1, 65535)),
	)

	AttributeValueQuery = NewSchema(
		Optional("task_id", CoercedInt()),
		Optional("task_attribute_id", CoercedInt()),
		Optional("value", String(1, 65535)),
	)

	AttributeValueSearch = NewSchema(
		Optional("task_id", Pair(Int())),
		Optional("task_attribute_id", Pair(Int())),
		Optional("value", Pair(String(1, 65535))),
	)
)

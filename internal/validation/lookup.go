package validation

// The three lookup entities (task status, task type, task attribute type)
// share the same shape: a unique name and a numeric id.
func lookupCreate() Schema {
	return NewSchema(
		Required("name", String(1, 128)),
	)
}

func lookupUpdate() Schema {
	return NewSchema(
		Optional("name", String(1, 128)),
	)
}

func lookupQuery() Schema {
	return NewSchema(
		Optional("id", CoercedInt()),
		Optional("name", String(1, 128)),
	)
}

func lookupSearch() Schema {
	return NewSchema(
		Optional("id", Pair(Int())),
		Optional("name", Pair(String(1, 128))),
	)
}

var (
	TaskStatusCreate = lookupCreate()
	TaskStatusUpdate = lookupUpdate()
	TaskStatusQuery  = lookupQuery()
	TaskStatusSearch = lookupSearch()

	TaskTypeCreate = lookupCreate()
	TaskTypeUpdate = lookupUpdate()
	TaskTypeQuery  = lookupQuery()
	TaskTypeSearch = lookupSearch()

	TaskAttributeTypeCreate = lookupCreate()
	TaskAttributeTypeUpdate = lookupUpdate()
	TaskAttributeTypeQuery  = lookupQuery()
	TaskAttributeTypeSearch = lookupSearch()
)

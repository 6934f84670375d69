package validation

// Rule sets for the task entity. create_date appears in filters only; on
// create it is always set server-side.
var (
	TaskCreate = NewSchema(
		Required("name", String(1, 128)),
		Optional("external_identifier", String(1, 128)),
		Required("type_id", Int()),
		Required("status_id", Int()),
		Required("creator_id", Int()),
		Optional("contractor_id", Int()),
		Optional("end_date", Date()),
	)

	TaskUpdate = NewSchema(
		Optional("name", String(1, 128)),
		Optional("external_identifier", String(1, 128)),
		Optional("type_id", Int()),
		Optional("status_id", Int()),
		Optional("creator_id", Int()),
		Optional("contractor_id", Int()),
		Optional("end_date", Date()),
	)

	TaskQuery = NewSchema(
		Optional("id", CoercedInt()),
		Optional("name", String(1, 128)),
		Optional("external_identifier", String(1, 128)),
		Optional("type_id", CoercedInt()),
		Optional("status_id", CoercedInt()),
		Optional("creator_id", CoercedInt()),
		Optional("contractor_id", CoercedInt()),
		Optional("create_date", Date()),
		Optional("end_date", Date()),
	)

	TaskSearch = NewSchema(
		Optional("id", Pair(Int())),
		Optional("name", Pair(String(1, 128))),
		Optional("external_identifier", Pair(String(1, 128))),
		Optional("type_id", Pair(Int())),
		Optional("status_id", Pair(Int())),
		Optional("creator_id", Pair(Int())),
		Optional("contractor_id", Pair(Int())),
		Optional("create_date", Pair(Date())),
		Optional("end_date", Pair(Date())),
	)
)

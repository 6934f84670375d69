package validation

// Rule sets for the user entity. Passwords are accepted only on create and
// are hashed before storage, never echoed back.
var (
	UserCreate = NewSchema(
		Required("login", String(1, 128)),
		Required("first_name", String(1, 128)),
		Required("last_name", String(1, 128)),
		Required("password", String(6, 128)),
		Required("is_creator", Bool()),
		Required("is_contractor", Bool()),
		Required("is_admin", Bool()),
	)

	UserUpdate = NewSchema(
		Optional("login", String(1, 128)),
		Optional("first_name", String(1, 128)),
		Optional("last_name", String(1, 128)),
		Optional("is_creator", Bool()),
		Optional("is_contractor", Bool()),
		Optional("is_admin", Bool()),
	)

	UserQuery = NewSchema(
		Optional("id", CoercedInt()),
		Optional("login", String(1, 128)),
		Optional("first_name", String(1, 128)),
		Optional("last_name", String(1, 128)),
		Optional("is_creator", CoercedBool()),
		Optional("is_contractor", CoercedBool()),
		Optional("is_admin", CoercedBool()),
	)

	UserSearch = NewSchema(
		Optional("id", Pair(Int())),
		Optional("login", Pair(String(1, 128))),
		Optional("first_name", Pair(String(1, 128))),
		Optional("last_name", Pair(String(1, 128))),
		Optional("is_creator", Pair(Bool())),
		Optional("is_contractor", Pair(Bool())),
		Optional("is_admin", Pair(Bool())),
	)
)

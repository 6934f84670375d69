package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredAndOptional(t *testing.T) {
	schema := NewSchema(
		Required("name", String(1, 128)),
		Optional("sort", Int()),
	)

	out, err := schema.Validate(map[string]any{"name": "Cena", "sort": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, "Cena", out["name"])
	assert.Equal(t, 2, out["sort"])

	out, err = schema.Validate(map[string]any{"name": "Cena"})
	require.NoError(t, err)
	_, present := out["sort"]
	assert.False(t, present)
}

func TestValidateMissingRequired(t *testing.T) {
	schema := NewSchema(
		Required("login", String(1, 128)),
		Required("first_name", String(1, 128)),
	)

	_, err := schema.Validate(map[string]any{"first_name": "Daniel"})
	require.Error(t, err)
	assert.Equal(t, "Invalid value for login. required key not provided", err.Error())

	// The first missing rule in schema order wins.
	_, err = schema.Validate(map[string]any{})
	require.Error(t, err)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "login", verr.Field)
}

func TestValidateIgnoresExtraKeys(t *testing.T) {
	schema := NewSchema(Required("name", String(1, 128)))

	out, err := schema.Validate(map[string]any{"name": "Opis", "colour": "blue"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Opis"}, out)
}

func TestValidateStrictRejectsExtraKeys(t *testing.T) {
	schema := NewSchema(Optional("name", String(1, 128)))

	_, err := schema.ValidateStrict(map[string]any{"colour": "blue"})
	require.Error(t, err)
	assert.Equal(t, "Invalid value for colour. extra keys not allowed", err.Error())

	out, err := schema.ValidateStrict(map[string]any{"name": "Opis"})
	require.NoError(t, err)
	assert.Equal(t, "Opis", out["name"])
}

func TestStringBounds(t *testing.T) {
	check := String(6, 128)

	_, err := check("short")
	require.Error(t, err)

	v, err := check("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", v)

	_, err = check(42)
	require.Error(t, err)
}

func TestIntAcceptsIntegralFloats(t *testing.T) {
	check := Int()

	v, err := check(float64(7))
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = check(7.5)
	require.Error(t, err)

	_, err = check("7")
	require.Error(t, err)
}

func TestDateLayouts(t *testing.T) {
	check := Date()

	tests := []struct {
		name  string
		input string
	}{
		{"microseconds", "2018-05-12T10:30:00.123456"},
		{"seconds only", "2018-05-12T10:30:00"},
		{"rfc3339", "2018-05-12T10:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := check(tt.input)
			require.NoError(t, err)
			parsed, ok := v.(time.Time)
			require.True(t, ok)
			assert.Equal(t, 2018, parsed.Year())
		})
	}

	_, err := check("12/05/2018")
	require.Error(t, err)

	_, err = check(20180512)
	require.Error(t, err)
}

func TestCoercedInt(t *testing.T) {
	check := CoercedInt()

	v, err := check("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = check(float64(42))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = check("abc")
	require.Error(t, err)
}

func TestCoercedBool(t *testing.T) {
	check := CoercedBool()

	v, err := check("true")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = check("0")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = check("maybe")
	require.Error(t, err)
}

func TestPair(t *testing.T) {
	check := Pair(String(1, 128))

	v, err := check(map[string]any{"value": "Daniel", "operator": "!="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": "Daniel", "operator": "!="}, v)

	// Operator defaults to equality.
	v, err = check(map[string]any{"value": "Daniel"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": "Daniel", "operator": "="}, v)

	_, err = check(map[string]any{"operator": "="})
	require.Error(t, err)

	_, err = check("Daniel")
	require.Error(t, err)

	_, err = check(map[string]any{"value": "Daniel", "operator": 7})
	require.Error(t, err)

	// The inner check still applies to the value.
	_, err = check(map[string]any{"value": 7})
	require.Error(t, err)
}

func TestPairCoercesValue(t *testing.T) {
	check := Pair(Int())

	v, err := check(map[string]any{"value": float64(3), "operator": ">"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": 3, "operator": ">"}, v)
}

func TestUserCreateSchema(t *testing.T) {
	payload := map[string]any{
		"login":         "danzaw",
		"first_name":    "Daniel",
		"last_name":     "Zawadzki",
		"password":      "zaq1@WSX",
		"is_creator":    true,
		"is_contractor": false,
		"is_admin":      false,
	}

	out, err := UserCreate.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, "danzaw", out["login"])

	delete(payload, "password")
	_, err = UserCreate.Validate(payload)
	require.Error(t, err)
	assert.Equal(t, "Invalid value for password. required key not provided", err.Error())
}

func TestTaskSearchSchema(t *testing.T) {
	out, err := TaskSearch.ValidateStrict(map[string]any{
		"id": map[string]any{"value": float64(1), "operator": ">"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"value": 1, "operator": ">"}, out["id"])

	_, err = TaskSearch.ValidateStrict(map[string]any{
		"owner": map[string]any{"value": float64(1)},
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid value for owner. extra keys not allowed", err.Error())
}

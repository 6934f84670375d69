package validation

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Error is a field-level validation failure, surfaced to clients as a 400.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("Invalid value for %s. %s", e.Field, e.Message)
}

// FieldFunc validates a single raw value and returns its coerced form.
type FieldFunc func(v any) (any, error)

// Field is one named rule inside a Schema.
type Field struct {
	Name     string
	Check    FieldFunc
	Required bool
}

// Required builds a mandatory field rule.
func Required(name string, check FieldFunc) Field {
	return Field{Name: name, Check: check, Required: true}
}

// Optional builds an optional field rule.
func Optional(name string, check FieldFunc) Field {
	return Field{Name: name, Check: check}
}

// Schema is an ordered set of field rules for one entity operation. Order
// matters: the first missing required field is the one reported.
type Schema struct {
	fields []Field
}

// NewSchema builds a Schema from field rules.
func NewSchema(fields ...Field) Schema {
	return Schema{fields: fields}
}

// Validate checks data against the schema and returns the coerced values.
// Keys not covered by the schema are ignored, matching the create/update
// convention where extra client fields are allowed but unused.
func (s Schema) Validate(data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		raw, ok := data[f.Name]
		if !ok {
			if f.Required {
				return nil, &Error{Field: f.Name, Message: "required key not provided"}
			}
			continue
		}

		v, err := f.Check(raw)
		if err != nil {
			return nil, &Error{Field: f.Name, Message: err.Error()}
		}
		out[f.Name] = v
	}

	return out, nil
}

// ValidateStrict is Validate with unknown keys rejected. Query and search
// filters use it so that a misspelled field never reaches the query builder.
func (s Schema) ValidateStrict(data map[string]any) (map[string]any, error) {
	for key := range data {
		if !s.has(key) {
			return nil, &Error{Field: key, Message: "extra keys not allowed"}
		}
	}
	return s.Validate(data)
}

func (s Schema) has(name string) bool {
	for _, f := range s.fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// dateLayouts are tried in order when parsing date fields. The first is the
// ISO-8601 microsecond form the API also uses when serializing.
var dateLayouts = []string{
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// String validates a string with length bounds.
func String(min, max int) FieldFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected str")
		}
		if len(s) < min || len(s) > max {
			return nil, fmt.Errorf("length of value must be between %d and %d", min, max)
		}
		return s, nil
	}
}

// Int validates an integer. JSON numbers arrive as float64, so integral
// floats are accepted and truncating ones are not.
func Int() FieldFunc {
	return func(v any) (any, error) {
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		case float64:
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("expected int")
			}
			return int(n), nil
		}
		return nil, fmt.Errorf("expected int")
	}
}

// Float validates a floating point number.
func Float() FieldFunc {
	return func(v any) (any, error) {
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
		return nil, fmt.Errorf("expected float")
	}
}

// Bool validates a boolean.
func Bool() FieldFunc {
	return func(v any) (any, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool")
		}
		return b, nil
	}
}

// Date parses an ISO-8601 timestamp with up to microsecond precision.
func Date() FieldFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected ISO-8601 date string")
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("expected ISO-8601 date string")
	}
}

// CoercedInt coerces a query-string value to an integer.
func CoercedInt() FieldFunc {
	return func(v any) (any, error) {
		if s, ok := v.(string); ok {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("expected int")
			}
			return n, nil
		}
		return Int()(v)
	}
}

// CoercedBool coerces a query-string value to a boolean.
func CoercedBool() FieldFunc {
	return func(v any) (any, error) {
		if s, ok := v.(string); ok {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return nil, fmt.Errorf("expected bool")
			}
			return b, nil
		}
		return Bool()(v)
	}
}

// Pair validates a {value, operator} search condition. The value is coerced
// with inner, the operator is optional and defaults to "=". Operator strings
// outside the comparison set are passed through untouched; the query builder
// treats them as "=".
func Pair(inner FieldFunc) FieldFunc {
	return func(v any) (any, error) {
		item, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("expected an object with value and optional operator")
		}

		raw, ok := item["value"]
		if !ok {
			return nil, fmt.Errorf("expected an object with value and optional operator")
		}

		value, err := inner(raw)
		if err != nil {
			return nil, err
		}

		operator := "="
		if op, present := item["operator"]; present {
			s, ok := op.(string)
			if !ok {
				return nil, fmt.Errorf("expected operator to be str")
			}
			operator = s
		}

		return map[string]any{"value": value, "operator": operator}, nil
	}
}
